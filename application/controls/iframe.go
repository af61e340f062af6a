package controls

import (
	"context"

	"github.com/pkg/errors"

	"web_controls/domain/entities"
	"web_controls/domain/interfaces"
)

type IFrame struct {
	control
}

func NewIFrame(ctx context.Context, driver interfaces.Driver, loc entities.Locator, opts ...Option) (*IFrame, error) {
	c, err := newControl(ctx, driver, loc, opts)
	if err != nil {
		return nil, err
	}
	return &IFrame{control: c}, nil
}

// Within scopes the driver to the frame document while fn runs. The driver is
// switched back to the top document even when fn fails.
func (f *IFrame) Within(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	err = f.guard(ctx, f.present, func() error {
		return f.driver.SwitchToFrame(ctx, f.element)
	})
	if err != nil {
		return err
	}

	defer func() {
		if backErr := f.driver.SwitchToDefault(ctx); backErr != nil && err == nil {
			err = errors.Wrap(backErr, "leave frame")
		}
	}()

	return fn(ctx)
}
