package controls

import (
	"context"

	"github.com/pkg/errors"

	"web_controls/domain/entities"
	"web_controls/domain/interfaces"
)

// Button is a plain clickable control
type Button struct {
	control
}

func NewButton(ctx context.Context, driver interfaces.Driver, loc entities.Locator, opts ...Option) (*Button, error) {
	c, err := newControl(ctx, driver, loc, opts)
	if err != nil {
		return nil, err
	}
	return &Button{control: c}, nil
}

// GetText returns the button caption
func (b *Button) GetText(ctx context.Context) (string, error) {
	return b.element.Text(ctx)
}

// Label is read-only text
type Label struct {
	control
}

func NewLabel(ctx context.Context, driver interfaces.Driver, loc entities.Locator, opts ...Option) (*Label, error) {
	c, err := newControl(ctx, driver, loc, opts)
	if err != nil {
		return nil, err
	}
	return &Label{control: c}, nil
}

// GetText returns the rendered text without waiting
func (l *Label) GetText(ctx context.Context) (string, error) {
	return l.element.Text(ctx)
}

type Link struct {
	control
}

func NewLink(ctx context.Context, driver interfaces.Driver, loc entities.Locator, opts ...Option) (*Link, error) {
	c, err := newControl(ctx, driver, loc, opts)
	if err != nil {
		return nil, err
	}
	return &Link{control: c}, nil
}

func (l *Link) GetText(ctx context.Context) (string, error) {
	return l.element.Text(ctx)
}

// GetHref returns the href attribute, failing with entities.ErrNoAttribute when unset
func (l *Link) GetHref(ctx context.Context) (string, error) {
	return l.element.GetAttribute(ctx, "href")
}

// Textbox is a free text input
type Textbox struct {
	control
}

func NewTextbox(ctx context.Context, driver interfaces.Driver, loc entities.Locator, opts ...Option) (*Textbox, error) {
	c, err := newControl(ctx, driver, loc, opts)
	if err != nil {
		return nil, err
	}
	return &Textbox{control: c}, nil
}

// GetText returns the current input value
func (t *Textbox) GetText(ctx context.Context) (string, error) {
	v, err := t.element.GetAttribute(ctx, "value")
	if errors.Is(err, entities.ErrNoAttribute) {
		return "", nil
	}
	return v, err
}

// SetText replaces the input value with text and reads it back. A different
// value afterwards (an input mask, a maxlength) fails with entities.ErrValueMismatch.
func (t *Textbox) SetText(ctx context.Context, text string) error {
	return t.guard(ctx, t.present, func() error {
		if err := t.element.Clear(ctx); err != nil {
			return err
		}
		if err := t.element.SendKeys(ctx, text); err != nil {
			return err
		}

		got, err := t.GetText(ctx)
		if err != nil {
			return err
		}
		if got != text {
			return errors.Wrapf(entities.ErrValueMismatch, "%s: typed %q, reads %q", t, text, got)
		}
		t.log.WithField("text", text).Debug("text set")
		return nil
	})
}
