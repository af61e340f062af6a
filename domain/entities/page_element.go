package entities

// PageElement is a point-in-time snapshot of a located element
type PageElement struct {
	Locator   Locator `json:"locator"`
	TagName   string  `json:"tag_name"`
	Text      string  `json:"text"`
	IsVisible bool    `json:"is_visible"`
	IsEnabled bool    `json:"is_enabled"`
}
