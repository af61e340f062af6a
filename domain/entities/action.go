package entities

// ActionType represents the type of action the console can perform
type ActionType string

const (
	ActionNavigate  ActionType = "goto"
	ActionClick     ActionType = "click"
	ActionText      ActionType = "text"
	ActionDisplayed ActionType = "displayed"
	ActionSelect    ActionType = "select"
	ActionTypeAhead ActionType = "type-ahead"
	ActionPartial   ActionType = "partial"
	ActionSetText   ActionType = "set"
	ActionCheck     ActionType = "check"
	ActionUncheck   ActionType = "uncheck"
	ActionTable     ActionType = "table"
	ActionTitle     ActionType = "title"
	ActionInspect   ActionType = "inspect"
	ActionShot      ActionType = "screenshot"
	ActionQuit      ActionType = "quit"
)

// Action represents a single parsed console command.
// ListLocator and ItemLocator are only set for dynamic dropdown actions.
type Action struct {
	Type        ActionType `json:"type"`
	Locator     Locator    `json:"locator,omitempty"`
	ListLocator Locator    `json:"list_locator,omitempty"`
	ItemLocator Locator    `json:"item_locator,omitempty"`
	Text        string     `json:"text,omitempty"`
	URL         string     `json:"url,omitempty"`
	CharNum     int        `json:"char_num,omitempty"`
}

// ActionResult represents the result of an action
type ActionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    string `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}
