package browser

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/playwright-community/playwright-go"
	"github.com/tebeka/selenium"

	"web_controls/domain/entities"
)

// WebDriver error codes, see https://www.w3.org/TR/webdriver/#errors
const (
	wdNoSuchElement  = "no such element"
	wdStaleElement   = "stale element reference"
	wdTimeout        = "timeout"
	wdScriptTimeout  = "script timeout"
	wdNilReturnValue = "nil return value"
)

// fromSelenium translates WebDriver errors into the entities taxonomy
func fromSelenium(err error) error {
	if err == nil {
		return nil
	}

	var wdErr *selenium.Error
	if !errors.As(err, &wdErr) {
		return err
	}
	switch wdErr.Err {
	case wdNoSuchElement:
		return errors.Wrap(entities.ErrNotFound, wdErr.Message)
	case wdStaleElement:
		return errors.Wrap(entities.ErrStaleElement, wdErr.Message)
	case wdTimeout, wdScriptTimeout:
		return errors.Wrap(entities.ErrTimeout, wdErr.Message)
	}
	return err
}

// playwright reports a node that left the document with one of these
var detachedMessages = []string{
	"not attached to the DOM",
	"Element is detached",
	"Execution context was destroyed",
}

// fromPlaywright translates playwright errors into the entities taxonomy
func fromPlaywright(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, playwright.ErrTimeout) {
		return errors.Wrap(entities.ErrTimeout, err.Error())
	}

	msg := err.Error()
	for _, detached := range detachedMessages {
		if strings.Contains(msg, detached) {
			return errors.Wrap(entities.ErrStaleElement, msg)
		}
	}
	return err
}
