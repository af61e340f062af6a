package clicmds

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"web_controls/application/controls"
	"web_controls/application/pages"
	"web_controls/domain/entities"
	"web_controls/testutil/fakedom"
)

const baseURL = "https://rahulshettyacademy.com"

func practiceBrowser() *fakedom.Browser {
	b := fakedom.NewBrowser()
	b.Title = "Practice Page"

	b.Add(entities.ID("dropdown-class-example"), fakedom.Select("Select", "Option1", "Option2", "Option3"))

	country := fakedom.Input("text")
	item := fakedom.El("div", "India")
	item.OnClick = func() { country.Value = "India" }
	country.OnKeys = func(string) {
		b.Add(entities.CSS("#ui-id-1 li"), fakedom.El("li", "India"))
		b.Add(entities.XPath("//li[@class='ui-menu-item']/div[text()='India']"), item)
	}
	b.Add(entities.ID("autocomplete"), country)

	b.Add(entities.ID("checkBoxOption1"), fakedom.Input("checkbox"))

	textbox := fakedom.Input("text")
	hide := fakedom.El("input", "")
	hide.OnClick = func() { textbox.Displayed = false }
	b.Add(entities.ID("displayed-text"), textbox)
	b.Add(entities.ID("hide-textbox"), hide)

	header := fakedom.El("tr", "").Child(entities.CSS("th"), fakedom.El("th", "Instructor"), fakedom.El("th", "Course"))
	b.Add(entities.CSS(".table-display"), fakedom.El("table", "").Child(entities.CSS("tr"), header))
	return b
}

func practicePage(b *fakedom.Browser) *pages.AutomationPracticePage {
	return pages.NewAutomationPracticePage(b, baseURL,
		controls.WithPresenceTimeout(30*time.Millisecond),
		controls.WithSuggestionTimeout(30*time.Millisecond),
		controls.WithPollInterval(5*time.Millisecond),
	)
}

func TestRunSmoke(t *testing.T) {
	color.NoColor = true
	b := practiceBrowser()
	out := &bytes.Buffer{}

	err := RunSmoke(context.Background(), practicePage(b), SmokeInput{Country: "India", CharNum: 3}, out)
	require.NoError(t, err, out.String())

	assert.Equal(t, []string{baseURL + pages.AutomationPracticePath}, b.Visited)
	assert.NotContains(t, out.String(), "FAIL")
	assert.Contains(t, out.String(), "ok   dynamic dropdown")
}

func TestRunSmoke_ReportsFailures(t *testing.T) {
	color.NoColor = true
	b := practiceBrowser()
	b.Title = ""
	b.Remove(entities.ID("checkBoxOption1"))
	out := &bytes.Buffer{}

	err := RunSmoke(context.Background(), practicePage(b), SmokeInput{Country: "India", CharNum: 3}, out)
	require.ErrorIs(t, err, ErrSmokeFailed)
	assert.Contains(t, err.Error(), "2 of 6")
	assert.Contains(t, out.String(), "FAIL title: page has no title")
	assert.Contains(t, out.String(), "FAIL checkbox:")
	assert.Contains(t, out.String(), "ok   static table")
}

func runLoadConfig(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var got string
	app := cli.NewApp()
	app.Commands = []*cli.Command{
		{
			Name:  "check",
			Flags: commonFlags(),
			Action: func(ctx *cli.Context) error {
				cfg, err := loadConfig(ctx)
				if err != nil {
					return err
				}
				got = cfg.Driver + " " + cfg.BaseURL
				return nil
			},
		},
	}

	args = append([]string{"app", "check", "--env", t.TempDir() + "/missing.env"}, args...)
	return got, app.Run(args)
}

func TestLoadConfig_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("BROWSER_DRIVER", "playwright")
	t.Setenv("BASE_URL", "http://env.example")

	got, err := runLoadConfig(t, "--driver", "Selenium")
	require.NoError(t, err)
	assert.Equal(t, "selenium http://env.example", got)
}

func TestLoadConfig_UnknownDriverFlag(t *testing.T) {
	t.Setenv("BROWSER_DRIVER", "playwright")

	_, err := runLoadConfig(t, "--driver", "lynx")
	assert.ErrorContains(t, err, `"lynx"`)
}
