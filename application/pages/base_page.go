// Package pages holds page objects for the practice site. Each accessor
// locates its control when called, so a control always reflects the page
// as it is at that moment.
package pages

import (
	"context"
	"math"

	"github.com/pkg/errors"

	"web_controls/application/controls"
	"web_controls/domain/entities"
	"web_controls/domain/interfaces"
)

const (
	heightScript = "return document.body.scrollHeight"
	widthScript  = "return document.body.scrollWidth"
	scrollScript = "window.scrollTo(arguments[0], arguments[1]);"
)

// BasePage is embedded by every page object
type BasePage struct {
	driver interfaces.Driver
	url    string
	opts   []controls.Option
}

func NewBasePage(driver interfaces.Driver, url string, opts ...controls.Option) *BasePage {
	return &BasePage{driver: driver, url: url, opts: opts}
}

func (p *BasePage) URL() string {
	return p.url
}

// GoTo opens the page in the browser
func (p *BasePage) GoTo(ctx context.Context) error {
	return p.driver.Navigate(ctx, p.url)
}

func (p *BasePage) Title(ctx context.Context) (string, error) {
	return p.driver.GetPageTitle(ctx)
}

// Height returns the scroll height of the document body in pixels
func (p *BasePage) Height(ctx context.Context) (int, error) {
	return p.scriptInt(ctx, heightScript)
}

// Width returns the scroll width of the document body in pixels
func (p *BasePage) Width(ctx context.Context) (int, error) {
	return p.scriptInt(ctx, widthScript)
}

// Scroll scrolls the window to x, y measured from the top left corner
func (p *BasePage) Scroll(ctx context.Context, x, y int) error {
	_, err := p.driver.ExecuteScript(ctx, scrollScript, x, y)
	return err
}

func (p *BasePage) ScrollToBottom(ctx context.Context) error {
	height, err := p.Height(ctx)
	if err != nil {
		return err
	}
	return p.Scroll(ctx, 0, height)
}

func (p *BasePage) ScrollToTop(ctx context.Context) error {
	return p.Scroll(ctx, 0, 0)
}

// Info summarises the page the browser is showing
func (p *BasePage) Info(ctx context.Context) (entities.PageInfo, error) {
	var (
		info entities.PageInfo
		err  error
	)
	if info.URL, err = p.driver.GetCurrentURL(ctx); err != nil {
		return info, err
	}
	if info.Title, err = p.driver.GetPageTitle(ctx); err != nil {
		return info, err
	}
	if info.Width, err = p.Width(ctx); err != nil {
		return info, err
	}
	if info.Height, err = p.Height(ctx); err != nil {
		return info, err
	}
	return info, nil
}

// scriptInt runs script and expects a whole number back. WebDriver decodes
// JSON numbers as float64, so integral floats are accepted.
func (p *BasePage) scriptInt(ctx context.Context, script string) (int, error) {
	v, err := p.driver.ExecuteScript(ctx, script)
	if err != nil {
		return 0, err
	}

	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n == math.Trunc(n) {
			return int(n), nil
		}
	}
	return 0, errors.Wrapf(entities.ErrUnexpectedType, "%q returned %v (%T)", script, v, v)
}
