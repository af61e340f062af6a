package clicmds

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"web_controls/application/controls"
	"web_controls/application/pages"
	"web_controls/infrastructure/storage"
)

// ErrSmokeFailed is returned when at least one smoke check fails
var ErrSmokeFailed = errors.New("smoke checks failed")

func SmokeFlags() []cli.Flag {
	return append(commonFlags(),
		&cli.StringFlag{
			Name:  "country",
			Usage: "country to pick from the autocomplete",
			Value: "India",
		},
		&cli.IntFlag{
			Name:  "chars",
			Usage: "characters of the country to type",
			Value: 3,
		},
	)
}

// Smoke drives the practice page through every kind of control once
func Smoke(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	logger := cfg.NewLogger()

	store, err := storage.NewBrowserState(cfg.StateDir)
	if err != nil {
		return err
	}
	driver, err := openDriver(cfg, store, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := driver.Close(); err != nil {
			logger.Warnf("Failed to close browser: %v", err)
		}
	}()

	page := pages.NewAutomationPracticePage(driver, cfg.BaseURL, cfg.ControlOptions(logger)...)
	return RunSmoke(ctx.Context, page, SmokeInput{Country: ctx.String("country"), CharNum: ctx.Int("chars")}, os.Stdout)
}

// SmokeInput parameterises the dynamic dropdown check
type SmokeInput struct {
	Country string
	CharNum int
}

type smokeCheck struct {
	name string
	run  func(ctx context.Context, page *pages.AutomationPracticePage) error
}

// RunSmoke opens the practice page and runs each check, reporting to out.
// All checks run even when an earlier one fails.
func RunSmoke(ctx context.Context, page *pages.AutomationPracticePage, in SmokeInput, out io.Writer) error {
	if err := page.GoTo(ctx); err != nil {
		return errors.Wrapf(err, "open %s", page.URL())
	}

	failed := 0
	for _, check := range smokeChecks(in) {
		if err := check.run(ctx, page); err != nil {
			failed++
			color.New(color.FgRed).Fprintf(out, "FAIL %s: %v\n", check.name, err)
			continue
		}
		color.New(color.FgGreen).Fprintf(out, "ok   %s\n", check.name)
	}

	if failed > 0 {
		return errors.Wrapf(ErrSmokeFailed, "%d of %d", failed, len(smokeChecks(in)))
	}
	return nil
}

func smokeChecks(in SmokeInput) []smokeCheck {
	return []smokeCheck{
		{name: "title", run: func(ctx context.Context, page *pages.AutomationPracticePage) error {
			title, err := page.Title(ctx)
			if err != nil {
				return err
			}
			if title == "" {
				return errors.New("page has no title")
			}
			return nil
		}},
		{name: "static dropdown", run: func(ctx context.Context, page *pages.AutomationPracticePage) error {
			dropdown, err := page.StaticDropdown(ctx)
			if err != nil {
				return err
			}
			if err := dropdown.Select(ctx, "Option2"); err != nil {
				return err
			}
			return expectText(ctx, dropdown, "Option2")
		}},
		{name: "dynamic dropdown", run: func(ctx context.Context, page *pages.AutomationPracticePage) error {
			dropdown, err := page.DynamicDropdown(ctx)
			if err != nil {
				return err
			}
			if err := dropdown.SelectByPartialValue(ctx, in.Country, in.CharNum); err != nil {
				return err
			}
			return expectText(ctx, dropdown, in.Country)
		}},
		{name: "checkbox", run: func(ctx context.Context, page *pages.AutomationPracticePage) error {
			checkbox, err := page.Checkbox(ctx, 1)
			if err != nil {
				return err
			}
			if err := checkbox.Select(ctx); err != nil {
				return err
			}
			return expectState(checkbox.IsChecked(ctx))
		}},
		{name: "hide textbox", run: func(ctx context.Context, page *pages.AutomationPracticePage) error {
			textbox, err := page.HideShowTextbox(ctx)
			if err != nil {
				return err
			}
			hide, err := page.HideButton(ctx)
			if err != nil {
				return err
			}
			if err := hide.Click(ctx); err != nil {
				return err
			}
			displayed, err := textbox.IsDisplayed(ctx)
			return expectState(!displayed, err)
		}},
		{name: "static table", run: func(ctx context.Context, page *pages.AutomationPracticePage) error {
			table, err := page.StaticTable(ctx)
			if err != nil {
				return err
			}
			headers, err := table.GetHeaders(ctx)
			if err != nil {
				return err
			}
			if len(headers) == 0 {
				return errors.New("table has no headers")
			}
			return nil
		}},
	}
}

type textControl interface {
	GetText(ctx context.Context) (string, error)
}

func expectText(ctx context.Context, c textControl, want string) error {
	got, err := c.GetText(ctx)
	if err != nil {
		return err
	}
	if got != want {
		return fmt.Errorf("got %q, want %q", got, want)
	}
	return nil
}

func expectState(ok bool, err error) error {
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("unexpected state")
	}
	return nil
}

var (
	_ textControl = (*controls.StaticDropdown)(nil)
	_ textControl = (*controls.DynamicDropdown)(nil)
)
