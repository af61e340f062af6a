package controls

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"web_controls/domain/entities"
	"web_controls/domain/interfaces"
	"web_controls/infrastructure/waiter"
)

// StaticDropdown is a native <select>
type StaticDropdown struct {
	control
}

func NewStaticDropdown(ctx context.Context, driver interfaces.Driver, loc entities.Locator, opts ...Option) (*StaticDropdown, error) {
	c, err := newControl(ctx, driver, loc, opts)
	if err != nil {
		return nil, err
	}
	return &StaticDropdown{control: c}, nil
}

// Select picks the option whose visible text equals value. Without such an
// option the selection is left alone and entities.ErrOptionNotFound is returned.
func (d *StaticDropdown) Select(ctx context.Context, value string) error {
	return d.guard(ctx, d.present, func() error {
		d.log.WithField("value", value).Debug("select")
		return d.element.SelectByVisibleText(ctx, value)
	})
}

// GetText returns the text of the first selected option
func (d *StaticDropdown) GetText(ctx context.Context) (string, error) {
	return d.element.SelectedOptionText(ctx)
}

// DynamicDropdown is a type-ahead input. Typing makes a suggestion list
// appear; an entry is picked by clicking the item locator formatted with the
// wanted value.
type DynamicDropdown struct {
	control
	list entities.Locator
	item entities.Locator
}

// NewDynamicDropdown binds the input at loc. list matches the suggestion
// entries and item is a template (one %s) matching a single entry by value.
func NewDynamicDropdown(ctx context.Context, driver interfaces.Driver, loc, list, item entities.Locator, opts ...Option) (*DynamicDropdown, error) {
	c, err := newControl(ctx, driver, loc, opts)
	if err != nil {
		return nil, err
	}
	return &DynamicDropdown{control: c, list: list, item: item}, nil
}

// Select types the whole value and clicks the matching suggestion
func (d *DynamicDropdown) Select(ctx context.Context, value string) error {
	return d.guard(ctx, d.present, func() error {
		return d.choose(ctx, value, value)
	})
}

// SelectByPartialValue types only the first charNum characters of the
// lowercased value but still clicks the suggestion matching the full value.
// A negative charNum drops that many characters from the end instead.
func (d *DynamicDropdown) SelectByPartialValue(ctx context.Context, value string, charNum int) error {
	typed := prefix(strings.ToLower(value), charNum)
	return d.guard(ctx, d.present, func() error {
		return d.choose(ctx, typed, value)
	})
}

func (d *DynamicDropdown) choose(ctx context.Context, typed, value string) error {
	log := d.log.WithField("typed", typed).WithField("value", value)

	if err := d.element.Clear(ctx); err != nil {
		return err
	}
	if typed != "" {
		if err := d.element.SendKeys(ctx, typed); err != nil {
			return err
		}
	}

	err := waiter.Until(ctx, d.pollInterval, d.suggestionTimeout, func(ctx context.Context) (bool, error) {
		els, err := d.driver.FindElements(ctx, d.list)
		if err != nil {
			return false, err
		}
		return len(els) > 0, nil
	})
	if err != nil {
		log.Debug("no suggestions")
		return errors.Wrapf(err, "suggestions %s", d.list)
	}

	item, err := d.driver.FindElement(ctx, d.item.Format(value))
	if err != nil {
		return err
	}
	log.Debug("select suggestion")
	return item.Click(ctx)
}

// GetText returns the input value, falling back to its placeholder
func (d *DynamicDropdown) GetText(ctx context.Context) (string, error) {
	v, err := d.element.GetAttribute(ctx, "value")
	if err != nil && !errors.Is(err, entities.ErrNoAttribute) {
		return "", err
	}
	if v != "" {
		return v, nil
	}

	v, err = d.element.GetAttribute(ctx, "placeholder")
	if errors.Is(err, entities.ErrNoAttribute) {
		return "", nil
	}
	return v, err
}

// prefix returns the first n runes of s, clamped to its length. A negative n
// counts from the end.
func prefix(s string, n int) string {
	r := []rune(s)
	if n < 0 {
		n += len(r)
	}
	switch {
	case n < 0:
		n = 0
	case n > len(r):
		n = len(r)
	}
	return string(r[:n])
}
