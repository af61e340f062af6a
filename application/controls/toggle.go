package controls

import (
	"context"

	"web_controls/domain/entities"
	"web_controls/domain/interfaces"
)

// Checkbox toggles on click. Select and Deselect only click when the state
// has to change, and wait for the box to be displayed and enabled first.
type Checkbox struct {
	control
}

func NewCheckbox(ctx context.Context, driver interfaces.Driver, loc entities.Locator, opts ...Option) (*Checkbox, error) {
	c, err := newControl(ctx, driver, loc, opts)
	if err != nil {
		return nil, err
	}
	return &Checkbox{control: c}, nil
}

func (c *Checkbox) IsChecked(ctx context.Context) (bool, error) {
	return c.element.IsSelected(ctx)
}

func (c *Checkbox) Select(ctx context.Context) error {
	return c.guard(ctx, c.clickable, func() error {
		return c.setChecked(ctx, true)
	})
}

func (c *Checkbox) Deselect(ctx context.Context) error {
	return c.guard(ctx, c.clickable, func() error {
		return c.setChecked(ctx, false)
	})
}

func (c *Checkbox) setChecked(ctx context.Context, want bool) error {
	checked, err := c.element.IsSelected(ctx)
	if err != nil {
		return err
	}
	if checked == want {
		return nil
	}
	c.log.WithField("checked", want).Debug("toggle")
	return c.element.Click(ctx)
}

// Radiobutton can only be turned on; another button in its group turns it off
type Radiobutton struct {
	control
}

func NewRadiobutton(ctx context.Context, driver interfaces.Driver, loc entities.Locator, opts ...Option) (*Radiobutton, error) {
	c, err := newControl(ctx, driver, loc, opts)
	if err != nil {
		return nil, err
	}
	return &Radiobutton{control: c}, nil
}

func (r *Radiobutton) IsChecked(ctx context.Context) (bool, error) {
	return r.element.IsSelected(ctx)
}

func (r *Radiobutton) Select(ctx context.Context) error {
	return r.guard(ctx, r.clickable, func() error {
		checked, err := r.element.IsSelected(ctx)
		if err != nil || checked {
			return err
		}
		return r.element.Click(ctx)
	})
}
