package pages

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"web_controls/application/controls"
	"web_controls/domain/entities"
	"web_controls/testutil/fakedom"
)

const baseURL = "https://rahulshettyacademy.com"

func fast() []controls.Option {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return []controls.Option{
		controls.WithPresenceTimeout(50 * time.Millisecond),
		controls.WithSuggestionTimeout(50 * time.Millisecond),
		controls.WithPollInterval(5 * time.Millisecond),
		controls.WithLogger(logrus.NewEntry(log)),
	}
}

func TestAutomationPracticePage_URL(t *testing.T) {
	page := NewAutomationPracticePage(fakedom.NewBrowser(), baseURL)
	assert.Equal(t, "https://rahulshettyacademy.com/AutomationPractice/", page.URL())
}

func TestAutomationPracticePage_Radiobuttons(t *testing.T) {
	ctx := context.Background()
	b := fakedom.NewBrowser()
	radios := map[int]*fakedom.Node{}
	for _, n := range []int{1, 2, 3} {
		radios[n] = fakedom.Input("radio")
		b.Add(entities.CSS(fmt.Sprintf("input[value='radio%d']", n)), radios[n])
	}
	page := NewAutomationPracticePage(b, baseURL, fast()...)

	radio, err := page.Radiobutton(ctx, 2)
	require.NoError(t, err)
	require.NoError(t, radio.Select(ctx))
	assert.True(t, radios[2].Selected)
	assert.False(t, radios[1].Selected)

	_, err = page.Radiobutton(ctx, 4)
	assert.Error(t, err)
}

func TestAutomationPracticePage_Checkboxes(t *testing.T) {
	ctx := context.Background()
	b := fakedom.NewBrowser()
	box := fakedom.Input("checkbox")
	b.Add(entities.ID("checkBoxOption3"), box)
	page := NewAutomationPracticePage(b, baseURL, fast()...)

	checkbox, err := page.Checkbox(ctx, 3)
	require.NoError(t, err)
	require.NoError(t, checkbox.Select(ctx))
	assert.True(t, box.Selected)

	_, err = page.Checkbox(ctx, 0)
	assert.Error(t, err)
}

func TestAutomationPracticePage_Dropdowns(t *testing.T) {
	ctx := context.Background()
	b := fakedom.NewBrowser()
	b.Add(entities.ID("dropdown-class-example"), fakedom.Select("Select", "Option1", "Option2", "Option3"))

	input := fakedom.Input("text")
	india := fakedom.El("div", "India")
	input.OnKeys = func(string) {
		b.Add(entities.CSS("#ui-id-1 li"), fakedom.El("li", "India"))
		b.Add(entities.XPath("//li[@class='ui-menu-item']/div[text()='India']"), india)
	}
	b.Add(entities.ID("autocomplete"), input)

	page := NewAutomationPracticePage(b, baseURL, fast()...)

	static, err := page.StaticDropdown(ctx)
	require.NoError(t, err)
	require.NoError(t, static.Select(ctx, "Option3"))
	text, err := static.GetText(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Option3", text)

	dynamic, err := page.DynamicDropdown(ctx)
	require.NoError(t, err)
	require.NoError(t, dynamic.SelectByPartialValue(ctx, "India", 3))
	assert.Equal(t, []string{"ind"}, input.Typed)
	assert.Equal(t, 1, india.Clicks)
}

func TestAutomationPracticePage_Tables(t *testing.T) {
	ctx := context.Background()
	b := fakedom.NewBrowser()

	head := fakedom.El("tr", "").
		Child(entities.CSS("th"), fakedom.El("th", "Instructor"), fakedom.El("th", "Course"), fakedom.El("th", "Price"))
	body := fakedom.El("tr", "").
		Child(entities.CSS("td"), fakedom.El("td", "Rahul Shetty"), fakedom.El("td", "Appium"), fakedom.El("td", "30"))
	b.Add(entities.CSS(".table-display"), fakedom.El("table", "").Child(entities.CSS("tr"), head, body))
	b.Add(entities.XPath("/html/body/div[3]/div[2]/fieldset[2]/div[2]"), fakedom.El("div", "Total Amount Collected: 296"))

	page := NewAutomationPracticePage(b, baseURL, fast()...)

	table, err := page.StaticTable(ctx)
	require.NoError(t, err)
	rows, err := table.GetTable(ctx)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Instructor", "Course", "Price"},
		{"Rahul Shetty", "Appium", "30"},
	}, rows)

	label, err := page.FixedHeaderTableLabel(ctx)
	require.NoError(t, err)
	text, err := label.GetText(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Total Amount Collected: 296", text)
}

func TestAutomationPracticePage_HideShow(t *testing.T) {
	ctx := context.Background()
	b := fakedom.NewBrowser()
	textbox := fakedom.Input("text")
	hide := fakedom.El("input", "")
	hide.OnClick = func() { textbox.Displayed = false }
	show := fakedom.El("input", "")
	show.OnClick = func() { textbox.Displayed = true }
	b.Add(entities.ID("displayed-text"), textbox)
	b.Add(entities.ID("hide-textbox"), hide)
	b.Add(entities.ID("show-textbox"), show)

	page := NewAutomationPracticePage(b, baseURL, fast()...)

	box, err := page.HideShowTextbox(ctx)
	require.NoError(t, err)
	hideButton, err := page.HideButton(ctx)
	require.NoError(t, err)
	showButton, err := page.ShowButton(ctx)
	require.NoError(t, err)

	require.NoError(t, hideButton.Click(ctx))
	displayed, err := box.IsDisplayed(ctx)
	require.NoError(t, err)
	assert.False(t, displayed)

	require.NoError(t, showButton.Click(ctx))
	displayed, err = box.IsDisplayed(ctx)
	require.NoError(t, err)
	assert.True(t, displayed)
}

func TestAutomationPracticePage_WithinCoursesFrame(t *testing.T) {
	ctx := context.Background()
	inner := fakedom.NewDocument()
	courses := fakedom.El("a", "Courses").WithAttr("href", "https://courses.rahulshettyacademy.com/courses")
	inner.Add(entities.XPath("//a[text()='Courses']"), courses)

	b := fakedom.NewBrowser()
	b.Add(entities.ID("courses-iframe"), fakedom.IFrame(inner))
	page := NewAutomationPracticePage(b, baseURL, fast()...)

	var href string
	err := page.WithinCoursesFrame(ctx, func(ctx context.Context, academy *AcademyPage) error {
		assert.Equal(t, "https://rahulshettyacademy.com/", academy.URL())
		link, err := academy.CoursesLink(ctx)
		if err != nil {
			return err
		}
		href, err = link.GetHref(ctx)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, "https://courses.rahulshettyacademy.com/courses", href)
	assert.False(t, b.InFrame())
}
