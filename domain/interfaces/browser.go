package interfaces

import (
	"context"

	"web_controls/domain/entities"
)

// Driver is the browser session capability the controls are built on.
// Implementations are not safe for concurrent use.
type Driver interface {
	// FindElement returns the first element matching loc or an error wrapping entities.ErrNotFound
	FindElement(ctx context.Context, loc entities.Locator) (Element, error)

	// FindElements returns all matches; an empty result is not an error
	FindElements(ctx context.Context, loc entities.Locator) ([]Element, error)

	// Navigate navigates to a URL
	Navigate(ctx context.Context, url string) error

	// GetCurrentURL returns the current page URL
	GetCurrentURL(ctx context.Context) (string, error)

	// GetPageTitle returns the current page title
	GetPageTitle(ctx context.Context) (string, error)

	// ExecuteScript runs a function body (it may "return" a value) in the page
	ExecuteScript(ctx context.Context, script string, args ...interface{}) (interface{}, error)

	// SwitchToFrame scopes further lookups to the document of an iframe element
	SwitchToFrame(ctx context.Context, frame Element) error

	// SwitchToDefault scopes lookups back to the top level document
	SwitchToDefault(ctx context.Context) error

	// TakeScreenshot takes a PNG screenshot
	TakeScreenshot(ctx context.Context) ([]byte, error)

	// Close closes the browser
	Close() error
}

// Element is a handle to a single node. Every method may fail with
// entities.ErrStaleElement once the node has left the document.
type Element interface {
	Click(ctx context.Context) error
	Clear(ctx context.Context) error
	SendKeys(ctx context.Context, text string) error
	Hover(ctx context.Context) error

	IsDisplayed(ctx context.Context) (bool, error)
	IsEnabled(ctx context.Context) (bool, error)
	IsSelected(ctx context.Context) (bool, error)

	TagName(ctx context.Context) (string, error)
	Text(ctx context.Context) (string, error)

	// GetAttribute fails with entities.ErrNoAttribute when the attribute is absent
	GetAttribute(ctx context.Context, name string) (string, error)

	// SelectByVisibleText selects the <option> whose normalized text equals text,
	// failing with entities.ErrOptionNotFound
	SelectByVisibleText(ctx context.Context, text string) error

	// SelectedOptionText returns the text of the first selected <option>
	SelectedOptionText(ctx context.Context) (string, error)

	FindElement(ctx context.Context, loc entities.Locator) (Element, error)
	FindElements(ctx context.Context, loc entities.Locator) ([]Element, error)
}
