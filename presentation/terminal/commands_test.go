package terminal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"web_controls/config"
	"web_controls/domain/entities"
)

func TestParser_Parse(t *testing.T) {
	p := parser{locators: config.Locators{
		"country": entities.ID("autocomplete"),
	}}

	tests := []struct {
		line string
		want entities.Action
	}{
		{
			line: "goto practice",
			want: entities.Action{Type: entities.ActionNavigate, URL: "practice"},
		},
		{
			line: "title",
			want: entities.Action{Type: entities.ActionTitle},
		},
		{
			line: "exit",
			want: entities.Action{Type: entities.ActionQuit},
		},
		{
			line: "CLICK id=alertbtn",
			want: entities.Action{Type: entities.ActionClick, Locator: entities.ID("alertbtn")},
		},
		{
			line: `text "xpath=//a[text()='Top']"`,
			want: entities.Action{Type: entities.ActionText, Locator: entities.XPath("//a[text()='Top']")},
		},
		{
			line: `select id=dropdown-class-example "Option 2"`,
			want: entities.Action{Type: entities.ActionSelect, Locator: entities.ID("dropdown-class-example"), Text: "Option 2"},
		},
		{
			line: `type-ahead @country "css=#ui-id-1 li" "xpath=//li/div[text()='%s']" India`,
			want: entities.Action{
				Type:        entities.ActionTypeAhead,
				Locator:     entities.ID("autocomplete"),
				ListLocator: entities.CSS("#ui-id-1 li"),
				ItemLocator: entities.XPath("//li/div[text()='%s']"),
				Text:        "India",
			},
		},
		{
			line: `partial @country "css=#ui-id-1 li" "xpath=//li/div[text()='%s']" India 3`,
			want: entities.Action{
				Type:        entities.ActionPartial,
				Locator:     entities.ID("autocomplete"),
				ListLocator: entities.CSS("#ui-id-1 li"),
				ItemLocator: entities.XPath("//li/div[text()='%s']"),
				Text:        "India",
				CharNum:     3,
			},
		},
		{
			line: "table css=.table-display headings",
			want: entities.Action{Type: entities.ActionTable, Locator: entities.CSS(".table-display"), Text: "headings"},
		},
		{
			line: "screenshot",
			want: entities.Action{Type: entities.ActionShot, Text: "screenshot"},
		},
		{
			line: "check link=Free",
			want: entities.Action{Type: entities.ActionCheck, Locator: entities.NewLocator(entities.ByLinkText, "Free")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := p.parse(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParser_ParseErrors(t *testing.T) {
	p := parser{}

	tests := []string{
		"dance",
		"click",
		"click alertbtn",
		"click foo=bar",
		"click @missing",
		"click id=",
		`select id=x "unterminated`,
		"partial id=a css=b xpath=c India many",
		"title now",
		"table",
	}

	for _, line := range tests {
		t.Run(line, func(t *testing.T) {
			_, err := p.parse(line)
			assert.Error(t, err)
		})
	}
}
