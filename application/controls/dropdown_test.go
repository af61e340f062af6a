package controls

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"web_controls/domain/entities"
	"web_controls/testutil/fakedom"
)

func TestStaticDropdown_Select(t *testing.T) {
	ctx := context.Background()
	loc := entities.ID("dropdown-class-example")
	b := fakedom.NewBrowser()
	sel := fakedom.Select("Select", "Option1", "Option2", "  Option3 ")
	b.Add(loc, sel)

	dd, err := NewStaticDropdown(ctx, b, loc, fast()...)
	require.NoError(t, err)

	require.NoError(t, dd.Select(ctx, "Option2"))
	text, err := dd.GetText(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Option2", text)

	require.NoError(t, dd.Select(ctx, "Option3"))
	text, err = dd.GetText(ctx)
	require.NoError(t, err)
	assert.Equal(t, "  Option3 ", text)

	err = dd.Select(ctx, "Option9")
	assert.True(t, errors.Is(err, entities.ErrOptionNotFound))
	text, err = dd.GetText(ctx)
	require.NoError(t, err)
	assert.Equal(t, "  Option3 ", text)

	// only the option text is normalized, never the wanted value
	err = dd.Select(ctx, "  Option2 ")
	assert.True(t, errors.Is(err, entities.ErrOptionNotFound))
	text, err = dd.GetText(ctx)
	require.NoError(t, err)
	assert.Equal(t, "  Option3 ", text)
}

func TestStaticDropdown_Absent(t *testing.T) {
	ctx := context.Background()
	loc := entities.ID("dropdown-class-example")
	b := fakedom.NewBrowser()
	b.Add(loc, fakedom.Select("Select", "Option1"))

	dd, err := NewStaticDropdown(ctx, b, loc, fast()...)
	require.NoError(t, err)
	b.Unlist(loc)

	err = dd.Select(ctx, "Option1")
	assert.True(t, errors.Is(err, entities.ErrPrecondition))
	text, err := dd.GetText(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Select", text)
}

var (
	countryInput = entities.ID("autocomplete")
	countryList  = entities.CSS("#ui-id-1 li")
	countryItem  = entities.XPath("//li[@class='ui-menu-item']/div[text()='%s']")
)

// suggestionPage shows the suggestions for names as soon as anything is typed
func suggestionPage(names ...string) (*fakedom.Browser, *fakedom.Node, map[string]*fakedom.Node) {
	b := fakedom.NewBrowser()
	input := fakedom.Input("text").WithAttr("placeholder", "Type to Select Countries")
	b.Add(countryInput, input)

	items := make(map[string]*fakedom.Node, len(names))
	var entries []*fakedom.Node
	for _, name := range names {
		entry := fakedom.El("li", name)
		item := fakedom.El("div", name)
		item.OnClick = func() { input.Value = item.Content }
		items[name] = item
		entries = append(entries, entry)
	}

	input.OnKeys = func(string) {
		b.Unlist(countryList)
		b.Add(countryList, entries...)
		for name, item := range items {
			b.Unlist(countryItem.Format(name))
			b.Add(countryItem.Format(name), item)
		}
	}
	return b, input, items
}

func TestDynamicDropdown_Select(t *testing.T) {
	ctx := context.Background()
	b, input, items := suggestionPage("India", "British Indian Ocean Territory")

	dd, err := NewDynamicDropdown(ctx, b, countryInput, countryList, countryItem, fast()...)
	require.NoError(t, err)

	require.NoError(t, dd.Select(ctx, "India"))
	assert.Equal(t, []string{"India"}, input.Typed)
	assert.Equal(t, 1, input.Clears)
	assert.Equal(t, 1, items["India"].Clicks)
	assert.Equal(t, 0, items["British Indian Ocean Territory"].Clicks)

	text, err := dd.GetText(ctx)
	require.NoError(t, err)
	assert.Equal(t, "India", text)
}

func TestDynamicDropdown_DelayedSuggestions(t *testing.T) {
	ctx := context.Background()
	b := fakedom.NewBrowser()
	input := fakedom.Input("text")
	b.Add(countryInput, input)
	item := fakedom.El("div", "Brazil")
	input.OnKeys = func(string) {
		b.AddAfter(countryList, 20*time.Millisecond, fakedom.El("li", "Brazil"))
		b.AddAfter(countryItem.Format("Brazil"), 20*time.Millisecond, item)
	}

	dd, err := NewDynamicDropdown(ctx, b, countryInput, countryList, countryItem, fast()...)
	require.NoError(t, err)

	require.NoError(t, dd.Select(ctx, "Brazil"))
	assert.Equal(t, 1, item.Clicks)
}

func TestDynamicDropdown_NoSuggestions(t *testing.T) {
	ctx := context.Background()
	b := fakedom.NewBrowser()
	input := fakedom.Input("text")
	b.Add(countryInput, input)
	stray := fakedom.El("div", "India")
	b.Add(countryItem.Format("India"), stray)

	dd, err := NewDynamicDropdown(ctx, b, countryInput, countryList, countryItem, fast()...)
	require.NoError(t, err)

	err = dd.Select(ctx, "India")
	assert.True(t, errors.Is(err, entities.ErrTimeout))
	assert.False(t, errors.Is(err, entities.ErrPrecondition))
	assert.Equal(t, 0, stray.Clicks)
}

func TestDynamicDropdown_NoMatchingItem(t *testing.T) {
	ctx := context.Background()
	b, _, _ := suggestionPage("India")

	dd, err := NewDynamicDropdown(ctx, b, countryInput, countryList, countryItem, fast()...)
	require.NoError(t, err)

	err = dd.Select(ctx, "Indonesia")
	assert.True(t, errors.Is(err, entities.ErrNotFound))
}

func TestDynamicDropdown_Absent(t *testing.T) {
	ctx := context.Background()
	b, input, _ := suggestionPage("India")

	dd, err := NewDynamicDropdown(ctx, b, countryInput, countryList, countryItem, fast()...)
	require.NoError(t, err)
	b.Unlist(countryInput)

	err = dd.Select(ctx, "India")
	assert.True(t, errors.Is(err, entities.ErrPrecondition))
	assert.Equal(t, 0, input.Clears)
	assert.Empty(t, input.Typed)
}

func TestDynamicDropdown_SelectByPartialValue(t *testing.T) {
	ctx := context.Background()
	b, input, items := suggestionPage("Alice", "Albert")

	dd, err := NewDynamicDropdown(ctx, b, countryInput, countryList, countryItem, fast()...)
	require.NoError(t, err)

	require.NoError(t, dd.SelectByPartialValue(ctx, "Alice", 2))
	assert.Equal(t, []string{"al"}, input.Typed)
	assert.Equal(t, 1, items["Alice"].Clicks)
	assert.Equal(t, 0, items["Albert"].Clicks)
}

func TestDynamicDropdown_SelectByPartialValueZero(t *testing.T) {
	ctx := context.Background()
	b := fakedom.NewBrowser()
	input := fakedom.Input("text")
	input.Value = "stale"
	b.Add(countryInput, input)

	dd, err := NewDynamicDropdown(ctx, b, countryInput, countryList, countryItem, fast()...)
	require.NoError(t, err)

	err = dd.SelectByPartialValue(ctx, "Alice", 0)
	assert.True(t, errors.Is(err, entities.ErrTimeout))
	assert.Empty(t, input.Typed)
	assert.Equal(t, 1, input.Clears)
	assert.Empty(t, input.Value)
}

func TestDynamicDropdown_GetText(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		node *fakedom.Node
		want string
	}{
		{name: "value", node: fakedom.Input("text").WithAttr("placeholder", "Country"), want: "Poland"},
		{name: "placeholder", node: fakedom.Input("text").WithAttr("placeholder", "Country")},
		{name: "nothing", node: fakedom.Input("text")},
	}
	tests[0].node.Value = "Poland"
	tests[1].want = "Country"

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := fakedom.NewBrowser()
			b.Add(countryInput, tt.node)

			dd, err := NewDynamicDropdown(ctx, b, countryInput, countryList, countryItem, fast()...)
			require.NoError(t, err)

			got, err := dd.GetText(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrefix(t *testing.T) {
	tests := []struct {
		s    string
		n    int
		want string
	}{
		{s: "alice", n: 2, want: "al"},
		{s: "alice", n: 0, want: ""},
		{s: "alice", n: 5, want: "alice"},
		{s: "alice", n: 50, want: "alice"},
		{s: "alice", n: -2, want: "ali"},
		{s: "alice", n: -10, want: ""},
		{s: "łódź", n: 2, want: "łó"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, prefix(tt.s, tt.n), "prefix(%q, %d)", tt.s, tt.n)
	}
}
