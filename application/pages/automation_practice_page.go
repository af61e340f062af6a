package pages

import (
	"context"
	"fmt"

	"web_controls/application/controls"
	"web_controls/domain/entities"
	"web_controls/domain/interfaces"
)

const AutomationPracticePath = "/AutomationPractice/"

var (
	practiceRadiobutton     = entities.CSS("input[value='radio%d']")
	practiceDynamicDropdown = entities.ID("autocomplete")
	practiceDynamicList     = entities.CSS("#ui-id-1 li")
	practiceDynamicItem     = entities.XPath("//li[@class='ui-menu-item']/div[text()='%s']")
	practiceStaticDropdown  = entities.ID("dropdown-class-example")
	practiceCheckbox        = entities.ID("checkBoxOption%d")
	practiceOpenWindow      = entities.ID("openwindow")
	practiceOpenTab         = entities.ID("opentab")
	practiceAlertTextbox    = entities.ID("name")
	practiceAlertButton     = entities.ID("alertbtn")
	practiceConfirmButton   = entities.ID("confirmbtn")
	practiceStaticTable     = entities.CSS(".table-display")
	practiceFixedTable      = entities.CSS(".tableFixHead table")
	practiceFixedTableLabel = entities.XPath("/html/body/div[3]/div[2]/fieldset[2]/div[2]")
	practiceHideButton      = entities.ID("hide-textbox")
	practiceShowButton      = entities.ID("show-textbox")
	practiceHideShowTextbox = entities.ID("displayed-text")
	practiceMouseHover      = entities.ID("mousehover")
	practiceHoverTop        = entities.XPath("//a[text()='Top']")
	practiceHoverReload     = entities.XPath("//a[text()='Reload']")
	practiceIFrame          = entities.ID("courses-iframe")
	practiceBlinkingLink    = entities.CSS(".blinkingText")
)

// AutomationPracticePage has one example of every basic control
type AutomationPracticePage struct {
	*BasePage
	baseURL string
}

func NewAutomationPracticePage(driver interfaces.Driver, baseURL string, opts ...controls.Option) *AutomationPracticePage {
	return &AutomationPracticePage{
		BasePage: NewBasePage(driver, baseURL+AutomationPracticePath, opts...),
		baseURL:  baseURL,
	}
}

// Radiobutton returns radio button n, 1 to 3
func (p *AutomationPracticePage) Radiobutton(ctx context.Context, n int) (*controls.Radiobutton, error) {
	if n < 1 || n > 3 {
		return nil, fmt.Errorf("no radio button %d", n)
	}
	return controls.NewRadiobutton(ctx, p.driver, practiceRadiobutton.Format(n), p.opts...)
}

// Checkbox returns checkbox n, 1 to 3
func (p *AutomationPracticePage) Checkbox(ctx context.Context, n int) (*controls.Checkbox, error) {
	if n < 1 || n > 3 {
		return nil, fmt.Errorf("no checkbox %d", n)
	}
	return controls.NewCheckbox(ctx, p.driver, practiceCheckbox.Format(n), p.opts...)
}

// DynamicDropdown is the country auto-suggest input
func (p *AutomationPracticePage) DynamicDropdown(ctx context.Context) (*controls.DynamicDropdown, error) {
	return controls.NewDynamicDropdown(ctx, p.driver, practiceDynamicDropdown, practiceDynamicList, practiceDynamicItem, p.opts...)
}

func (p *AutomationPracticePage) StaticDropdown(ctx context.Context) (*controls.StaticDropdown, error) {
	return controls.NewStaticDropdown(ctx, p.driver, practiceStaticDropdown, p.opts...)
}

func (p *AutomationPracticePage) OpenWindowButton(ctx context.Context) (*controls.Button, error) {
	return controls.NewButton(ctx, p.driver, practiceOpenWindow, p.opts...)
}

func (p *AutomationPracticePage) OpenTabButton(ctx context.Context) (*controls.Button, error) {
	return controls.NewButton(ctx, p.driver, practiceOpenTab, p.opts...)
}

func (p *AutomationPracticePage) AlertTextbox(ctx context.Context) (*controls.Textbox, error) {
	return controls.NewTextbox(ctx, p.driver, practiceAlertTextbox, p.opts...)
}

func (p *AutomationPracticePage) AlertButton(ctx context.Context) (*controls.Button, error) {
	return controls.NewButton(ctx, p.driver, practiceAlertButton, p.opts...)
}

// ConfirmButton opens a confirm popup
func (p *AutomationPracticePage) ConfirmButton(ctx context.Context) (*controls.Button, error) {
	return controls.NewButton(ctx, p.driver, practiceConfirmButton, p.opts...)
}

// StaticTable is the "Web Table Example" with headings in its first row
func (p *AutomationPracticePage) StaticTable(ctx context.Context) (*controls.Table, error) {
	return controls.NewTable(ctx, p.driver, practiceStaticTable, controls.HeadingsTable, p.opts...)
}

// FixedHeaderTable is the "Web Table Fixed header" example
func (p *AutomationPracticePage) FixedHeaderTable(ctx context.Context) (*controls.Table, error) {
	return controls.NewTable(ctx, p.driver, practiceFixedTable, controls.HeaderBodyTable, p.opts...)
}

// FixedHeaderTableLabel is the total amount below the fixed header table
func (p *AutomationPracticePage) FixedHeaderTableLabel(ctx context.Context) (*controls.Label, error) {
	return controls.NewLabel(ctx, p.driver, practiceFixedTableLabel, p.opts...)
}

func (p *AutomationPracticePage) HideButton(ctx context.Context) (*controls.Button, error) {
	return controls.NewButton(ctx, p.driver, practiceHideButton, p.opts...)
}

func (p *AutomationPracticePage) ShowButton(ctx context.Context) (*controls.Button, error) {
	return controls.NewButton(ctx, p.driver, practiceShowButton, p.opts...)
}

func (p *AutomationPracticePage) HideShowTextbox(ctx context.Context) (*controls.Textbox, error) {
	return controls.NewTextbox(ctx, p.driver, practiceHideShowTextbox, p.opts...)
}

func (p *AutomationPracticePage) MouseHoverButton(ctx context.Context) (*controls.Button, error) {
	return controls.NewButton(ctx, p.driver, practiceMouseHover, p.opts...)
}

// MouseHoverTop is only displayed while the mouse hover button is hovered
func (p *AutomationPracticePage) MouseHoverTop(ctx context.Context) (*controls.Link, error) {
	return controls.NewLink(ctx, p.driver, practiceHoverTop, p.opts...)
}

func (p *AutomationPracticePage) MouseHoverReload(ctx context.Context) (*controls.Link, error) {
	return controls.NewLink(ctx, p.driver, practiceHoverReload, p.opts...)
}

func (p *AutomationPracticePage) BlinkingTextLink(ctx context.Context) (*controls.Link, error) {
	return controls.NewLink(ctx, p.driver, practiceBlinkingLink, p.opts...)
}

// CoursesFrame is the iframe showing the academy page
func (p *AutomationPracticePage) CoursesFrame(ctx context.Context) (*controls.IFrame, error) {
	return controls.NewIFrame(ctx, p.driver, practiceIFrame, p.opts...)
}

// WithinCoursesFrame runs fn with the academy page inside the iframe
func (p *AutomationPracticePage) WithinCoursesFrame(ctx context.Context, fn func(ctx context.Context, academy *AcademyPage) error) error {
	frame, err := p.CoursesFrame(ctx)
	if err != nil {
		return err
	}
	academy := NewAcademyPage(p.driver, p.baseURL, p.opts...)
	return frame.Within(ctx, func(ctx context.Context) error {
		return fn(ctx, academy)
	})
}
