package pages

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"web_controls/domain/entities"
	"web_controls/testutil/fakedom"
)

func TestBasePage_GoToAndTitle(t *testing.T) {
	ctx := context.Background()
	b := fakedom.NewBrowser()
	b.Title = "Practice Page"

	page := NewBasePage(b, "https://rahulshettyacademy.com/AutomationPractice/")
	require.NoError(t, page.GoTo(ctx))
	assert.Equal(t, []string{"https://rahulshettyacademy.com/AutomationPractice/"}, b.Visited)

	title, err := page.Title(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Practice Page", title)
}

func TestBasePage_Dimensions(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		value   interface{}
		want    int
		wantErr bool
	}{
		{name: "int", value: 1200, want: 1200},
		{name: "int64", value: int64(900), want: 900},
		{name: "integral float", value: float64(3456), want: 3456},
		{name: "fractional float", value: 10.5, wantErr: true},
		{name: "string", value: "1200px", wantErr: true},
		{name: "null", value: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := fakedom.NewBrowser()
			b.Scripts[heightScript] = tt.value
			page := NewBasePage(b, "")

			got, err := page.Height(ctx)
			if tt.wantErr {
				assert.True(t, errors.Is(err, entities.ErrUnexpectedType))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBasePage_Scroll(t *testing.T) {
	ctx := context.Background()
	b := fakedom.NewBrowser()
	b.Scripts[heightScript] = float64(2000)
	page := NewBasePage(b, "")

	require.NoError(t, page.ScrollToBottom(ctx))
	require.NoError(t, page.ScrollToTop(ctx))
	assert.Equal(t, []string{heightScript, scrollScript, scrollScript}, b.Executed)
}

func TestBasePage_Info(t *testing.T) {
	ctx := context.Background()
	b := fakedom.NewBrowser()
	b.URL = "https://rahulshettyacademy.com/"
	b.Title = "Rahul Shetty Academy"
	b.Scripts[heightScript] = float64(4000)
	b.Scripts[widthScript] = float64(1280)

	info, err := NewBasePage(b, b.URL).Info(ctx)
	require.NoError(t, err)
	assert.Equal(t, entities.PageInfo{
		URL:    "https://rahulshettyacademy.com/",
		Title:  "Rahul Shetty Academy",
		Width:  1280,
		Height: 4000,
	}, info)
}
