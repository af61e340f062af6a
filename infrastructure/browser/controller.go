package browser

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/playwright-community/playwright-go"
	"github.com/sirupsen/logrus"

	"web_controls/domain/entities"
	"web_controls/domain/interfaces"
)

// Options configures both browser adapters
type Options struct {
	Headless bool

	// DriverPath and ChromeBinary are only used by the selenium adapter
	DriverPath   string
	ChromeBinary string
	Port         int
}

const (
	navigationTimeout = 30000
	actionTimeout     = 10000
)

type browserController struct {
	pw         *playwright.Playwright
	browser    playwright.Browser
	context    playwright.BrowserContext
	page       playwright.Page
	pages      []playwright.Page
	frame      playwright.Frame
	pagesMutex sync.Mutex
	storage    interfaces.Storage
	logger     *logrus.Logger
}

// NewBrowserController - starts chromium through playwright. Session state
// (cookies, local storage) is restored from storage and written back on Close.
func NewBrowserController(opts Options, storage interfaces.Storage, logger *logrus.Logger) (interfaces.Driver, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	contextOptions := playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{
			Width:  1280,
			Height: 720,
		},
		JavaScriptEnabled: playwright.Bool(true),
		IgnoreHttpsErrors: playwright.Bool(true),
	}

	if storageState, err := loadStorageState(storage); err != nil {
		logger.Warnf("Ignoring saved browser state: %v", err)
	} else if storageState != nil {
		contextOptions.StorageState = storageState.ToOptionalStorageState()
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(opts.Headless),
		Args: []string{
			"--disable-popup-blocking",
			"--disable-blink-features=AutomationControlled",
			"--disable-dev-shm-usage",
			"--no-sandbox",
		},
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browserContext, err := browser.NewContext(contextOptions)
	if err != nil {
		browser.Close()
		pw.Stop()
		return nil, fmt.Errorf("failed to create context: %w", err)
	}

	page, err := browserContext.NewPage()
	if err != nil {
		browser.Close()
		pw.Stop()
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	controller := &browserController{
		pw:      pw,
		browser: browser,
		context: browserContext,
		page:    page,
		pages:   []playwright.Page{page},
		storage: storage,
		logger:  logger,
	}

	page.OnDialog(func(dialog playwright.Dialog) {
		logger.Infof("Accepting %s dialog: %s", dialog.Type(), dialog.Message())
		dialog.Accept()
	})

	// windows opened by the page (target=_blank, window.open) become current
	browserContext.OnPage(func(newPage playwright.Page) {
		controller.pagesMutex.Lock()
		defer controller.pagesMutex.Unlock()

		controller.pages = append(controller.pages, newPage)
		controller.page = newPage
		controller.frame = nil

		newPage.OnClose(func(closedPage playwright.Page) {
			controller.pagesMutex.Lock()
			defer controller.pagesMutex.Unlock()

			for i, p := range controller.pages {
				if p == closedPage {
					controller.pages = append(controller.pages[:i], controller.pages[i+1:]...)
					break
				}
			}

			if controller.page == closedPage && len(controller.pages) > 0 {
				controller.page = controller.pages[0]
				controller.frame = nil
			}
		})
	})

	return controller, nil
}

func loadStorageState(storage interfaces.Storage) (*playwright.StorageState, error) {
	if storage == nil {
		return nil, nil
	}
	state, err := storage.LoadState()
	if err != nil || len(state) == 0 {
		return nil, err
	}

	data, err := json.Marshal(state)
	if err != nil {
		return nil, err
	}
	var storageState playwright.StorageState
	if err := json.Unmarshal(data, &storageState); err != nil {
		return nil, err
	}
	return &storageState, nil
}

func (b *browserController) currentPage() playwright.Page {
	b.pagesMutex.Lock()
	defer b.pagesMutex.Unlock()
	return b.page
}

// scope returns the frame lookups run in
func (b *browserController) scope() playwright.Frame {
	b.pagesMutex.Lock()
	defer b.pagesMutex.Unlock()
	if b.frame != nil {
		return b.frame
	}
	return b.page.MainFrame()
}

// Navigate - navigates to the specified URL
func (b *browserController) Navigate(ctx context.Context, url string) error {
	b.logger.Infof("Navigating to: %s", url)

	_, err := b.currentPage().Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateNetworkidle,
		Timeout:   playwright.Float(navigationTimeout),
	})
	if err != nil {
		return fmt.Errorf("failed to navigate to %s: %w", url, fromPlaywright(err))
	}

	b.pagesMutex.Lock()
	b.frame = nil
	b.pagesMutex.Unlock()
	return nil
}

func (b *browserController) FindElement(ctx context.Context, loc entities.Locator) (interfaces.Element, error) {
	selector, err := playwrightSelector(loc)
	if err != nil {
		return nil, err
	}
	handle, err := b.scope().QuerySelector(selector)
	if err != nil {
		return nil, fromPlaywright(err)
	}
	if handle == nil {
		return nil, errors.Wrapf(entities.ErrNotFound, "%s", loc)
	}
	return &pwElement{handle: handle}, nil
}

func (b *browserController) FindElements(ctx context.Context, loc entities.Locator) ([]interfaces.Element, error) {
	selector, err := playwrightSelector(loc)
	if err != nil {
		return nil, err
	}
	handles, err := b.scope().QuerySelectorAll(selector)
	if err != nil {
		return nil, fromPlaywright(err)
	}
	return wrapHandles(handles), nil
}

func (b *browserController) GetCurrentURL(ctx context.Context) (string, error) {
	return b.currentPage().URL(), nil
}

func (b *browserController) GetPageTitle(ctx context.Context) (string, error) {
	return b.currentPage().Title()
}

// ExecuteScript - runs script as the body of a function; arguments are
// available through the arguments object
func (b *browserController) ExecuteScript(ctx context.Context, script string, args ...interface{}) (interface{}, error) {
	callArgs := make([]interface{}, 0, len(args))
	for _, arg := range args {
		if el, ok := arg.(*pwElement); ok {
			arg = el.handle
		}
		callArgs = append(callArgs, arg)
	}

	result, err := b.scope().Evaluate(functionBody(script), callArgs)
	if err != nil {
		return nil, fromPlaywright(err)
	}
	return result, nil
}

func functionBody(script string) string {
	return fmt.Sprintf("(args) => (function () {\n%s\n}).apply(null, args)", script)
}

func (b *browserController) SwitchToFrame(ctx context.Context, frame interfaces.Element) error {
	el, ok := frame.(*pwElement)
	if !ok {
		return fmt.Errorf("unsupported element type %T", frame)
	}
	content, err := el.handle.ContentFrame()
	if err != nil {
		return fromPlaywright(err)
	}
	if content == nil {
		return errors.New("element is not a frame")
	}

	b.pagesMutex.Lock()
	b.frame = content
	b.pagesMutex.Unlock()
	return nil
}

func (b *browserController) SwitchToDefault(ctx context.Context) error {
	b.pagesMutex.Lock()
	b.frame = nil
	b.pagesMutex.Unlock()
	return nil
}

// TakeScreenshot - takes a full page screenshot of the current page
func (b *browserController) TakeScreenshot(ctx context.Context) ([]byte, error) {
	return b.currentPage().Screenshot(playwright.PageScreenshotOptions{
		FullPage: playwright.Bool(true),
	})
}

func (b *browserController) saveState() error {
	if b.storage == nil || b.context == nil {
		return nil
	}
	storageState, err := b.context.StorageState()
	if err != nil {
		return err
	}

	data, err := json.Marshal(storageState)
	if err != nil {
		return err
	}
	var state map[string]interface{}
	if err := json.Unmarshal(data, &state); err != nil {
		return err
	}
	return b.storage.SaveState(state)
}

// Close - closes the browser and saves state
func (b *browserController) Close() error {
	if err := b.saveState(); err != nil {
		b.logger.Warnf("Failed to save browser state: %v", err)
	}

	var closeErr error

	if b.context != nil {
		if err := b.context.Close(); err != nil && !isClosed(err) {
			closeErr = fmt.Errorf("failed to close context: %w", err)
		}
		b.context = nil
	}

	if b.browser != nil {
		if err := b.browser.Close(); err != nil && !isClosed(err) {
			if closeErr != nil {
				closeErr = fmt.Errorf("%v; failed to close browser: %w", closeErr, err)
			} else {
				closeErr = fmt.Errorf("failed to close browser: %w", err)
			}
		}
		b.browser = nil
	}

	if b.pw != nil {
		if err := b.pw.Stop(); err != nil && closeErr == nil {
			closeErr = fmt.Errorf("failed to stop playwright: %w", err)
		}
		b.pw = nil
	}

	return closeErr
}

func isClosed(err error) bool {
	return strings.Contains(err.Error(), "closed")
}

// pwElement adapts a playwright element handle
type pwElement struct {
	handle playwright.ElementHandle
}

func wrapHandles(handles []playwright.ElementHandle) []interfaces.Element {
	out := make([]interfaces.Element, 0, len(handles))
	for _, h := range handles {
		out = append(out, &pwElement{handle: h})
	}
	return out
}

func (e *pwElement) Click(ctx context.Context) error {
	return fromPlaywright(e.handle.Click(playwright.ElementHandleClickOptions{
		Timeout: playwright.Float(actionTimeout),
	}))
}

func (e *pwElement) Clear(ctx context.Context) error {
	return fromPlaywright(e.handle.Fill("", playwright.ElementHandleFillOptions{
		Timeout: playwright.Float(actionTimeout),
	}))
}

func (e *pwElement) SendKeys(ctx context.Context, text string) error {
	return fromPlaywright(e.handle.Type(text, playwright.ElementHandleTypeOptions{
		Timeout: playwright.Float(actionTimeout),
	}))
}

func (e *pwElement) Hover(ctx context.Context) error {
	return fromPlaywright(e.handle.Hover(playwright.ElementHandleHoverOptions{
		Timeout: playwright.Float(actionTimeout),
	}))
}

func (e *pwElement) IsDisplayed(ctx context.Context) (bool, error) {
	visible, err := e.handle.IsVisible()
	return visible, fromPlaywright(err)
}

func (e *pwElement) IsEnabled(ctx context.Context) (bool, error) {
	enabled, err := e.handle.IsEnabled()
	return enabled, fromPlaywright(err)
}

func (e *pwElement) IsSelected(ctx context.Context) (bool, error) {
	v, err := e.evaluate("el => !!(el.checked || el.selected)")
	if err != nil {
		return false, err
	}
	selected, _ := v.(bool)
	return selected, nil
}

func (e *pwElement) TagName(ctx context.Context) (string, error) {
	return e.evaluateString("el => el.tagName.toLowerCase()")
}

func (e *pwElement) Text(ctx context.Context) (string, error) {
	text, err := e.handle.InnerText()
	return text, fromPlaywright(err)
}

// GetAttribute - reads the live value property for "value", like WebDriver does
func (e *pwElement) GetAttribute(ctx context.Context, name string) (string, error) {
	v, err := e.evaluate(`(el, name) => (name === "value" && "value" in el) ? String(el.value) : el.getAttribute(name)`, name)
	if err != nil {
		return "", err
	}
	if v == nil {
		return "", errors.Wrapf(entities.ErrNoAttribute, "%s", name)
	}
	return fmt.Sprint(v), nil
}

func (e *pwElement) SelectByVisibleText(ctx context.Context, text string) error {
	option, err := e.handle.QuerySelector("xpath=" + optionXPath(text))
	if err != nil {
		return fromPlaywright(err)
	}
	if option == nil {
		return errors.Wrapf(entities.ErrOptionNotFound, "%q", text)
	}

	v, err := option.Evaluate("o => o.index")
	if err != nil {
		return fromPlaywright(err)
	}
	index, err := toInt(v)
	if err != nil {
		return err
	}

	_, err = e.handle.SelectOption(playwright.SelectOptionValues{
		Indexes: &[]int{index},
	}, playwright.ElementHandleSelectOptionOptions{
		Timeout: playwright.Float(actionTimeout),
	})
	return fromPlaywright(err)
}

func (e *pwElement) SelectedOptionText(ctx context.Context) (string, error) {
	v, err := e.evaluate("el => { const o = el.selectedOptions && el.selectedOptions[0]; return o ? o.text : null }")
	if err != nil {
		return "", err
	}
	if v == nil {
		return "", errors.Wrap(entities.ErrOptionNotFound, "no option selected")
	}
	return fmt.Sprint(v), nil
}

func (e *pwElement) FindElement(ctx context.Context, loc entities.Locator) (interfaces.Element, error) {
	selector, err := playwrightSelector(loc)
	if err != nil {
		return nil, err
	}
	handle, err := e.handle.QuerySelector(selector)
	if err != nil {
		return nil, fromPlaywright(err)
	}
	if handle == nil {
		return nil, errors.Wrapf(entities.ErrNotFound, "%s", loc)
	}
	return &pwElement{handle: handle}, nil
}

func (e *pwElement) FindElements(ctx context.Context, loc entities.Locator) ([]interfaces.Element, error) {
	selector, err := playwrightSelector(loc)
	if err != nil {
		return nil, err
	}
	handles, err := e.handle.QuerySelectorAll(selector)
	if err != nil {
		return nil, fromPlaywright(err)
	}
	return wrapHandles(handles), nil
}

func (e *pwElement) evaluate(expression string, arg ...interface{}) (interface{}, error) {
	v, err := e.handle.Evaluate(expression, arg...)
	return v, fromPlaywright(err)
}

func (e *pwElement) evaluateString(expression string) (string, error) {
	v, err := e.evaluate(expression)
	if err != nil {
		return "", err
	}
	return fmt.Sprint(v), nil
}

// toInt - normalizes a number decoded from a script result
func toInt(v interface{}) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		return int(n), nil
	}
	return 0, errors.Wrapf(entities.ErrUnexpectedType, "%T", v)
}
