// Package controls wraps located page elements in typed widgets. Actions that
// change the page wait for the element to be present first; reads go straight
// to the element handle.
package controls

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"web_controls/domain/entities"
	"web_controls/domain/interfaces"
	"web_controls/infrastructure/waiter"
)

// Control is the behaviour shared by every widget
type Control interface {
	fmt.Stringer
	Locator() entities.Locator
	Click(ctx context.Context) error
	IsDisplayed(ctx context.Context) (bool, error)
}

// control binds a driver, a locator and the element handle found at
// construction. The handle is never re-bound.
type control struct {
	settings
	driver  interfaces.Driver
	locator entities.Locator
	element interfaces.Element
}

func newControl(ctx context.Context, driver interfaces.Driver, loc entities.Locator, opts []Option) (control, error) {
	s := newSettings(opts)

	el, err := driver.FindElement(ctx, loc)
	if err != nil {
		return control{}, errors.Wrapf(err, "locate %s", loc)
	}

	s.log = s.log.WithField("control", loc.String())
	return control{
		settings: s,
		driver:   driver,
		locator:  loc,
		element:  el,
	}, nil
}

func (c *control) String() string {
	return fmt.Sprintf("<WebElement: %s>", c.locator)
}

func (c *control) Locator() entities.Locator {
	return c.locator
}

// guard waits up to the presence timeout for ready and then runs op. When
// ready never holds op is not run and the error wraps entities.ErrPrecondition.
// Errors from op are returned as they are.
func (c *control) guard(ctx context.Context, ready waiter.Condition, op func() error) error {
	err := waiter.Until(ctx, c.pollInterval, c.presenceTimeout, ready)
	if err != nil {
		if errors.Is(err, entities.ErrTimeout) {
			c.log.WithField("timeout", c.presenceTimeout).Debug("guard timed out")
			return errors.Wrapf(entities.ErrPrecondition, "%s is not present", c)
		}
		return err
	}
	return op()
}

// present holds once the locator resolves to at least one element
func (c *control) present(ctx context.Context) (bool, error) {
	els, err := c.driver.FindElements(ctx, c.locator)
	if err != nil {
		return false, err
	}
	return len(els) > 0, nil
}

// clickable holds once the first match is present, displayed and enabled
func (c *control) clickable(ctx context.Context) (bool, error) {
	els, err := c.driver.FindElements(ctx, c.locator)
	if err != nil || len(els) == 0 {
		return false, err
	}

	displayed, err := els[0].IsDisplayed(ctx)
	if err != nil {
		return false, ignoreStale(err)
	}
	enabled, err := els[0].IsEnabled(ctx)
	if err != nil {
		return false, ignoreStale(err)
	}
	return displayed && enabled, nil
}

// ignoreStale lets a poll continue when the node it just found was replaced
func ignoreStale(err error) error {
	if errors.Is(err, entities.ErrStaleElement) {
		return nil
	}
	return err
}

// Click waits for presence and clicks the element
func (c *control) Click(ctx context.Context) error {
	return c.guard(ctx, c.present, func() error {
		c.log.Debug("click")
		return c.element.Click(ctx)
	})
}

func (c *control) HoverOver(ctx context.Context) error {
	return c.guard(ctx, c.present, func() error {
		return c.element.Hover(ctx)
	})
}

// IsDisplayed asks the cached handle without waiting
func (c *control) IsDisplayed(ctx context.Context) (bool, error) {
	return c.element.IsDisplayed(ctx)
}

func (c *control) IsEnabled(ctx context.Context) (bool, error) {
	return c.element.IsEnabled(ctx)
}

// IsPresent waits up to the presence timeout for the locator to match.
// Running out of time is reported as false, not as an error.
func (c *control) IsPresent(ctx context.Context) (bool, error) {
	err := waiter.Until(ctx, c.pollInterval, c.presenceTimeout, c.present)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, entities.ErrTimeout):
		return false, nil
	default:
		return false, err
	}
}
