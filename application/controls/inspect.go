package controls

import (
	"context"

	"github.com/pkg/errors"

	"web_controls/domain/entities"
	"web_controls/domain/interfaces"
)

// Inspect takes a snapshot of the first element matching loc
func Inspect(ctx context.Context, driver interfaces.Driver, loc entities.Locator) (entities.PageElement, error) {
	snapshot := entities.PageElement{Locator: loc}

	el, err := driver.FindElement(ctx, loc)
	if err != nil {
		return snapshot, errors.Wrapf(err, "inspect %s", loc)
	}

	if snapshot.TagName, err = el.TagName(ctx); err != nil {
		return snapshot, err
	}
	if snapshot.Text, err = el.Text(ctx); err != nil {
		return snapshot, err
	}
	if snapshot.IsVisible, err = el.IsDisplayed(ctx); err != nil {
		return snapshot, err
	}
	if snapshot.IsEnabled, err = el.IsEnabled(ctx); err != nil {
		return snapshot, err
	}
	return snapshot, nil
}
