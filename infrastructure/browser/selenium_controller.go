package browser

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/tebeka/selenium"
	"github.com/tebeka/selenium/chrome"

	"web_controls/domain/entities"
	"web_controls/domain/interfaces"
)

const defaultDriverPort = 9515

type SeleniumController struct {
	wd          selenium.WebDriver
	service     *selenium.Service
	logger      *logrus.Logger
	userDataDir string
}

// findChromeDriver - finds ChromeDriver executable path
func findChromeDriver(preferred string) (string, error) {
	if preferred != "" {
		if _, err := os.Stat(preferred); err == nil {
			return preferred, nil
		}
	}

	commonPaths := []string{
		"/usr/local/bin/chromedriver",
		"/usr/bin/chromedriver",
		"/opt/homebrew/bin/chromedriver",
		filepath.Join(os.Getenv("HOME"), "bin", "chromedriver"),
	}

	for _, path := range commonPaths {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	if path, err := exec.LookPath("chromedriver"); err == nil {
		return path, nil
	}

	return "", fmt.Errorf("chromedriver not found. Please install it or set BROWSER_DRIVER_PATH environment variable")
}

// findChromeBinary - finds Chrome/Chromium browser executable path
func findChromeBinary(preferred string) string {
	if preferred != "" {
		if _, err := os.Stat(preferred); err == nil {
			return preferred
		}
	}

	chromePaths := []string{
		"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
		"/Applications/Chromium.app/Contents/MacOS/Chromium",
		"/usr/bin/google-chrome",
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
	}

	for _, path := range chromePaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	for _, name := range []string{"google-chrome", "chromium", "chromium-browser"} {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}

	return ""
}

// getOrCreateUserDataDir - gets or creates user data directory for persistent sessions
func getOrCreateUserDataDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}

	userDataDir := filepath.Join(homeDir, ".web_controls", "chrome_profile")
	if err := os.MkdirAll(userDataDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create user data directory: %w", err)
	}

	return userDataDir, nil
}

// NewSeleniumController - starts chromedriver and opens a WebDriver session
func NewSeleniumController(opts Options, logger *logrus.Logger) (*SeleniumController, error) {
	driverPath, err := findChromeDriver(opts.DriverPath)
	if err != nil {
		return nil, fmt.Errorf("failed to find chromedriver: %w", err)
	}

	logger.Infof("Using ChromeDriver at: %s", driverPath)

	chromeBinary := findChromeBinary(opts.ChromeBinary)
	if chromeBinary != "" {
		logger.Infof("Using Chrome binary at: %s", chromeBinary)
	}

	userDataDir, err := getOrCreateUserDataDir()
	if err != nil {
		return nil, fmt.Errorf("failed to setup user data directory: %w", err)
	}
	logger.Infof("Using user data directory: %s (sessions will be preserved)", userDataDir)

	port := opts.Port
	if port == 0 {
		port = defaultDriverPort
	}

	service, err := selenium.NewChromeDriverService(driverPath, port)
	if err != nil {
		return nil, fmt.Errorf("failed to start chromedriver: %w", err)
	}

	caps := selenium.Capabilities{
		"browserName": "chrome",
	}

	chromeCaps := chrome.Capabilities{
		Args: []string{
			"--disable-blink-features=AutomationControlled",
			"--disable-dev-shm-usage",
			"--no-sandbox",
			fmt.Sprintf("--user-data-dir=%s", userDataDir),
		},
	}
	if opts.Headless {
		chromeCaps.Args = append(chromeCaps.Args, "--headless=new")
	}
	if chromeBinary != "" {
		chromeCaps.Path = chromeBinary
	}

	caps.AddChrome(chromeCaps)

	wd, err := selenium.NewRemote(caps, fmt.Sprintf("http://localhost:%d/wd/hub", port))
	if err != nil {
		service.Stop()
		if strings.Contains(err.Error(), "cannot find Chrome binary") {
			return nil, fmt.Errorf("failed to create webdriver: Chrome browser not found. Please install Google Chrome or set CHROME_BINARY_PATH environment variable. Error: %w", err)
		}
		return nil, fmt.Errorf("failed to create webdriver: %w", err)
	}

	return &SeleniumController{
		wd:          wd,
		service:     service,
		logger:      logger,
		userDataDir: userDataDir,
	}, nil
}

// Navigate - navigates browser to specified URL
func (s *SeleniumController) Navigate(ctx context.Context, url string) error {
	s.logger.Infof("Navigating to: %s", url)
	return fromSelenium(s.wd.Get(url))
}

func (s *SeleniumController) FindElement(ctx context.Context, loc entities.Locator) (interfaces.Element, error) {
	el, err := s.wd.FindElement(string(loc.By), loc.Value)
	if err != nil {
		return nil, errors.WithMessagef(fromSelenium(err), "%s", loc)
	}
	return &wdElement{el: el}, nil
}

// FindElements - an empty result is not an error
func (s *SeleniumController) FindElements(ctx context.Context, loc entities.Locator) ([]interfaces.Element, error) {
	els, err := s.wd.FindElements(string(loc.By), loc.Value)
	if err != nil {
		err = fromSelenium(err)
		if errors.Is(err, entities.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return wrapWebElements(els), nil
}

// GetCurrentURL - returns current page URL
func (s *SeleniumController) GetCurrentURL(ctx context.Context) (string, error) {
	return s.wd.CurrentURL()
}

// GetPageTitle - returns current page title
func (s *SeleniumController) GetPageTitle(ctx context.Context) (string, error) {
	return s.wd.Title()
}

func (s *SeleniumController) ExecuteScript(ctx context.Context, script string, args ...interface{}) (interface{}, error) {
	callArgs := make([]interface{}, 0, len(args))
	for _, arg := range args {
		if el, ok := arg.(*wdElement); ok {
			arg = el.el
		}
		callArgs = append(callArgs, arg)
	}

	result, err := s.wd.ExecuteScript(script, callArgs)
	return result, fromSelenium(err)
}

func (s *SeleniumController) SwitchToFrame(ctx context.Context, frame interfaces.Element) error {
	el, ok := frame.(*wdElement)
	if !ok {
		return fmt.Errorf("unsupported element type %T", frame)
	}
	return fromSelenium(s.wd.SwitchFrame(el.el))
}

func (s *SeleniumController) SwitchToDefault(ctx context.Context) error {
	return fromSelenium(s.wd.SwitchFrame(nil))
}

// TakeScreenshot - takes screenshot of current page
func (s *SeleniumController) TakeScreenshot(ctx context.Context) ([]byte, error) {
	return s.wd.Screenshot()
}

// Close - closes browser and stops ChromeDriver service
func (s *SeleniumController) Close() error {
	if s.wd != nil {
		if err := s.wd.Quit(); err != nil {
			s.logger.Warnf("Failed to quit webdriver: %v", err)
		}
	}
	if s.service != nil {
		return s.service.Stop()
	}
	return nil
}

// wdElement adapts a WebDriver element
type wdElement struct {
	el selenium.WebElement
}

func wrapWebElements(els []selenium.WebElement) []interfaces.Element {
	out := make([]interfaces.Element, 0, len(els))
	for _, el := range els {
		out = append(out, &wdElement{el: el})
	}
	return out
}

func (e *wdElement) Click(ctx context.Context) error {
	return fromSelenium(e.el.Click())
}

func (e *wdElement) Clear(ctx context.Context) error {
	return fromSelenium(e.el.Clear())
}

func (e *wdElement) SendKeys(ctx context.Context, text string) error {
	return fromSelenium(e.el.SendKeys(text))
}

func (e *wdElement) Hover(ctx context.Context) error {
	return fromSelenium(e.el.MoveTo(0, 0))
}

func (e *wdElement) IsDisplayed(ctx context.Context) (bool, error) {
	displayed, err := e.el.IsDisplayed()
	return displayed, fromSelenium(err)
}

func (e *wdElement) IsEnabled(ctx context.Context) (bool, error) {
	enabled, err := e.el.IsEnabled()
	return enabled, fromSelenium(err)
}

func (e *wdElement) IsSelected(ctx context.Context) (bool, error) {
	selected, err := e.el.IsSelected()
	return selected, fromSelenium(err)
}

func (e *wdElement) TagName(ctx context.Context) (string, error) {
	name, err := e.el.TagName()
	return strings.ToLower(name), fromSelenium(err)
}

func (e *wdElement) Text(ctx context.Context) (string, error) {
	text, err := e.el.Text()
	return text, fromSelenium(err)
}

// GetAttribute - tebeka/selenium reports a null attribute as "nil return value"
func (e *wdElement) GetAttribute(ctx context.Context, name string) (string, error) {
	v, err := e.el.GetAttribute(name)
	if err != nil {
		if err.Error() == wdNilReturnValue {
			return "", errors.Wrapf(entities.ErrNoAttribute, "%s", name)
		}
		return "", fromSelenium(err)
	}
	return v, nil
}

func (e *wdElement) SelectByVisibleText(ctx context.Context, text string) error {
	option, err := e.el.FindElement(selenium.ByXPATH, optionXPath(text))
	if err != nil {
		err = fromSelenium(err)
		if errors.Is(err, entities.ErrNotFound) {
			return errors.Wrapf(entities.ErrOptionNotFound, "%q", text)
		}
		return err
	}

	selected, err := option.IsSelected()
	if err != nil || selected {
		return fromSelenium(err)
	}
	return fromSelenium(option.Click())
}

func (e *wdElement) SelectedOptionText(ctx context.Context) (string, error) {
	option, err := e.el.FindElement(selenium.ByCSSSelector, "option:checked")
	if err != nil {
		err = fromSelenium(err)
		if errors.Is(err, entities.ErrNotFound) {
			return "", errors.Wrap(entities.ErrOptionNotFound, "no option selected")
		}
		return "", err
	}
	text, err := option.Text()
	return text, fromSelenium(err)
}

func (e *wdElement) FindElement(ctx context.Context, loc entities.Locator) (interfaces.Element, error) {
	el, err := e.el.FindElement(string(loc.By), loc.Value)
	if err != nil {
		return nil, errors.WithMessagef(fromSelenium(err), "%s", loc)
	}
	return &wdElement{el: el}, nil
}

func (e *wdElement) FindElements(ctx context.Context, loc entities.Locator) ([]interfaces.Element, error) {
	els, err := e.el.FindElements(string(loc.By), loc.Value)
	if err != nil {
		err = fromSelenium(err)
		if errors.Is(err, entities.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return wrapWebElements(els), nil
}

var (
	_ interfaces.Driver  = (*SeleniumController)(nil)
	_ interfaces.Element = (*wdElement)(nil)
	_ interfaces.Element = (*pwElement)(nil)
)
