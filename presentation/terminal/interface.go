package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"web_controls/application/controls"
	"web_controls/application/pages"
	"web_controls/config"
	"web_controls/domain/entities"
	"web_controls/domain/interfaces"
)

var (
	okColor     = color.New(color.FgGreen)
	errColor    = color.New(color.FgRed)
	promptColor = color.New(color.FgCyan, color.Bold)
)

// TerminalInterface is an interactive console driving controls by hand
type TerminalInterface struct {
	driver  interfaces.Driver
	storage interfaces.Storage
	logger  *logrus.Logger
	reader  *bufio.Reader
	out     io.Writer
	parser  parser
	opts    []controls.Option
	baseURL string
}

// Deps is what the console needs from the rest of the app
type Deps struct {
	Driver   interfaces.Driver
	Storage  interfaces.Storage
	Logger   *logrus.Logger
	Locators config.Locators
	Options  []controls.Option
	BaseURL  string
}

func NewTerminalInterface(deps Deps, in io.Reader, out io.Writer) *TerminalInterface {
	return &TerminalInterface{
		driver:  deps.Driver,
		storage: deps.Storage,
		logger:  deps.Logger,
		reader:  bufio.NewReader(in),
		out:     out,
		parser:  parser{locators: deps.Locators},
		opts:    deps.Options,
		baseURL: deps.BaseURL,
	}
}

// Run reads commands until quit, end of input or ctx is done
func (t *TerminalInterface) Run(ctx context.Context) error {
	fmt.Fprintln(t.out, "Web Controls Console")
	fmt.Fprintln(t.out, "====================")
	fmt.Fprintln(t.out, "Type 'help' for commands, or 'quit' to exit")
	fmt.Fprintln(t.out)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	lines := t.readLines(ctx)

	for {
		promptColor.Fprint(t.out, "> ")

		var line inputLine
		select {
		case <-ctx.Done():
			fmt.Fprintln(t.out)
			t.logger.Info("Console interrupted")
			return nil
		case line = <-lines:
		}
		if line.err != nil && !errors.Is(line.err, io.EOF) {
			return line.err
		}
		eof := line.err != nil

		input := strings.TrimSpace(line.text)
		switch {
		case input == "" && eof:
			return nil
		case input == "":
			continue
		case input == "help":
			fmt.Fprintf(t.out, "%s\n", usage)
			continue
		}

		action, parseErr := t.parser.parse(input)
		if parseErr != nil {
			errColor.Fprintf(t.out, "%v\n", parseErr)
		} else if action.Type == entities.ActionQuit {
			fmt.Fprintln(t.out, "Bye!")
			return nil
		} else {
			t.print(t.Execute(ctx, action))
		}

		if eof {
			return nil
		}
	}
}

type inputLine struct {
	text string
	err  error
}

// readLines feeds lines from the reader until it fails or ctx is done.
// The last line carries the read error, io.EOF included.
func (t *TerminalInterface) readLines(ctx context.Context) <-chan inputLine {
	lines := make(chan inputLine)
	go func() {
		for {
			text, err := t.reader.ReadString('\n')
			select {
			case lines <- inputLine{text: text, err: err}:
			case <-ctx.Done():
				return
			}
			if err != nil {
				return
			}
		}
	}()
	return lines
}

func (t *TerminalInterface) print(result entities.ActionResult) {
	if !result.Success {
		errColor.Fprintf(t.out, "%s: %s\n", result.Message, result.Error)
		return
	}
	okColor.Fprintln(t.out, result.Message)
	if result.Data != "" {
		fmt.Fprintln(t.out, result.Data)
	}
}

// Execute runs one action against the browser
func (t *TerminalInterface) Execute(ctx context.Context, action entities.Action) entities.ActionResult {
	t.logger.Debugf("Executing %s %s", action.Type, action.Locator)

	data, err := t.execute(ctx, action)
	if err != nil {
		return entities.ActionResult{
			Message: fmt.Sprintf("%s failed", action.Type),
			Error:   err.Error(),
		}
	}
	return entities.ActionResult{
		Success: true,
		Message: fmt.Sprintf("%s ok", action.Type),
		Data:    data,
	}
}

func (t *TerminalInterface) execute(ctx context.Context, action entities.Action) (string, error) {
	switch action.Type {
	case entities.ActionNavigate:
		return "", t.driver.Navigate(ctx, t.resolveURL(action.URL))

	case entities.ActionTitle:
		return t.driver.GetPageTitle(ctx)

	case entities.ActionShot:
		png, err := t.driver.TakeScreenshot(ctx)
		if err != nil {
			return "", err
		}
		return t.storage.SaveScreenshot(action.Text, png)

	case entities.ActionInspect:
		snapshot, err := controls.Inspect(ctx, t.driver, action.Locator)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("<%s> %q visible=%t enabled=%t", snapshot.TagName, snapshot.Text, snapshot.IsVisible, snapshot.IsEnabled), nil

	case entities.ActionClick:
		button, err := controls.NewButton(ctx, t.driver, action.Locator, t.opts...)
		if err != nil {
			return "", err
		}
		return "", button.Click(ctx)

	case entities.ActionText:
		label, err := controls.NewLabel(ctx, t.driver, action.Locator, t.opts...)
		if err != nil {
			return "", err
		}
		return label.GetText(ctx)

	case entities.ActionDisplayed:
		label, err := controls.NewLabel(ctx, t.driver, action.Locator, t.opts...)
		if err != nil {
			return "", err
		}
		displayed, err := label.IsDisplayed(ctx)
		return strconv.FormatBool(displayed), err

	case entities.ActionSelect:
		dropdown, err := controls.NewStaticDropdown(ctx, t.driver, action.Locator, t.opts...)
		if err != nil {
			return "", err
		}
		if err := dropdown.Select(ctx, action.Text); err != nil {
			return "", err
		}
		return dropdown.GetText(ctx)

	case entities.ActionTypeAhead, entities.ActionPartial:
		dropdown, err := controls.NewDynamicDropdown(ctx, t.driver, action.Locator, action.ListLocator, action.ItemLocator, t.opts...)
		if err != nil {
			return "", err
		}
		if action.Type == entities.ActionPartial {
			err = dropdown.SelectByPartialValue(ctx, action.Text, action.CharNum)
		} else {
			err = dropdown.Select(ctx, action.Text)
		}
		if err != nil {
			return "", err
		}
		return dropdown.GetText(ctx)

	case entities.ActionSetText:
		textbox, err := controls.NewTextbox(ctx, t.driver, action.Locator, t.opts...)
		if err != nil {
			return "", err
		}
		return "", textbox.SetText(ctx, action.Text)

	case entities.ActionCheck, entities.ActionUncheck:
		checkbox, err := controls.NewCheckbox(ctx, t.driver, action.Locator, t.opts...)
		if err != nil {
			return "", err
		}
		if action.Type == entities.ActionCheck {
			return "", checkbox.Select(ctx)
		}
		return "", checkbox.Deselect(ctx)

	case entities.ActionTable:
		strategy, err := tableStrategy(action.Text)
		if err != nil {
			return "", err
		}
		table, err := controls.NewTable(ctx, t.driver, action.Locator, strategy, t.opts...)
		if err != nil {
			return "", err
		}
		rows, err := table.GetTable(ctx)
		if err != nil {
			return "", err
		}
		return formatRows(rows), nil
	}

	return "", fmt.Errorf("unsupported action %q", action.Type)
}

// resolveURL expands page names into the configured site
func (t *TerminalInterface) resolveURL(target string) string {
	switch target {
	case "practice":
		return t.baseURL + pages.AutomationPracticePath
	case "academy":
		return t.baseURL + pages.AcademyPath
	case "shop":
		return t.baseURL + pages.ShopPath
	}
	return target
}

func tableStrategy(name string) (controls.TableStrategy, error) {
	switch name {
	case "", "simple":
		return controls.SimpleTable, nil
	case "headings":
		return controls.HeadingsTable, nil
	case "header-body":
		return controls.HeaderBodyTable, nil
	case "mixed":
		return controls.MixedTable, nil
	}
	return nil, fmt.Errorf("unknown table layout %q", name)
}

func formatRows(rows [][]string) string {
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, strings.Join(row, " | "))
	}
	return strings.Join(lines, "\n")
}

func (t *TerminalInterface) Close() error {
	return t.driver.Close()
}
