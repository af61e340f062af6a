package entities

import "fmt"

// By is a element lookup strategy, named after the WebDriver strategies
type By string

const (
	ByID              By = "id"
	ByXPath           By = "xpath"
	ByLinkText        By = "link text"
	ByPartialLinkText By = "partial link text"
	ByName            By = "name"
	ByTagName         By = "tag name"
	ByClassName       By = "class name"
	ByCSSSelector     By = "css selector"
)

// Valid reports whether b is one of the known strategies
func (b By) Valid() bool {
	switch b {
	case ByID, ByXPath, ByLinkText, ByPartialLinkText, ByName, ByTagName, ByClassName, ByCSSSelector:
		return true
	}
	return false
}

// Locator identifies zero or more elements in a live document.
// Locators are values; copying one never shares state.
type Locator struct {
	By    By     `json:"by" yaml:"by"`
	Value string `json:"value" yaml:"value"`
}

// NewLocator builds a locator pair
func NewLocator(by By, value string) Locator {
	return Locator{By: by, Value: value}
}

// ID locates by the id attribute
func ID(value string) Locator {
	return NewLocator(ByID, value)
}

// CSS locates by CSS selector
func CSS(value string) Locator {
	return NewLocator(ByCSSSelector, value)
}

func XPath(value string) Locator {
	return NewLocator(ByXPath, value)
}

// Format substitutes args into a templated Value (fmt verbs, usually %s) and
// returns a new locator with the same strategy.
func (l Locator) Format(args ...interface{}) Locator {
	return Locator{By: l.By, Value: fmt.Sprintf(l.Value, args...)}
}

func (l Locator) String() string {
	return fmt.Sprintf("(%s, %s)", l.By, l.Value)
}
