package surface_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/microcosm-cc/bluemonday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/loginkit/pkg/surface"
	"github.com/dmitrymomot/loginkit/pkg/validator"
)

func TestController_Ensure(t *testing.T) {
	t.Parallel()

	c := surface.NewController()

	s := c.Ensure("email")
	require.NotNil(t, s)
	assert.Equal(t, "email-error", s.ID)
	assert.Equal(t, "email", s.Host)
	assert.Equal(t, surface.Hidden, s.State())
	assert.Equal(t, surface.DefaultHeight, s.Height)
	assert.Zero(t, s.Opacity)

	t.Run("repeated calls reuse the surface", func(t *testing.T) {
		assert.Same(t, s, c.Ensure("email"))
		assert.Same(t, s, c.Ensure("email"))
		assert.Equal(t, 1, c.Len())
	})

	t.Run("other hosts get their own surface", func(t *testing.T) {
		other := c.Ensure("password")
		assert.NotSame(t, s, other)
		assert.Equal(t, 2, c.Len())
	})

	t.Run("lookup does not create", func(t *testing.T) {
		_, ok := c.Lookup("phone")
		assert.False(t, ok)
		found, ok := c.Lookup("email")
		assert.True(t, ok)
		assert.Same(t, s, found)
	})
}

func TestController_ShowHide(t *testing.T) {
	t.Parallel()

	c := surface.NewController()
	s := c.Ensure("email")

	c.Show(s, "This field is required.")
	assert.Equal(t, surface.Visible, s.State())
	assert.True(t, s.Visible())
	assert.Equal(t, "This field is required.", s.Message)
	assert.Equal(t, float64(1), s.Opacity)
	assert.Equal(t, surface.DefaultHeight, s.Height)

	c.Hide(s)
	assert.Equal(t, surface.Hidden, s.State())
	assert.Zero(t, s.Opacity)
	assert.Equal(t, "This field is required.", s.Message, "hiding keeps the text so the fade-out has content")
	assert.Equal(t, surface.DefaultHeight, s.Height)
}

func TestController_ShowStripsMarkup(t *testing.T) {
	t.Parallel()

	c := surface.NewController()
	s := c.Ensure("name")

	c.Show(s, `<b>Bad</b> <script>alert(1)</script>value & more `)
	assert.Equal(t, "Bad value & more", s.Message)
}

func TestController_Sync(t *testing.T) {
	t.Parallel()

	rules := validator.ParseRules("required,email")
	empty := validator.Evaluate(validator.FieldState{Value: ""}, rules)
	invalid := validator.Evaluate(validator.FieldState{Value: "abc"}, rules)
	valid := validator.Evaluate(validator.FieldState{Value: "abc@de.com"}, rules)

	tests := []struct {
		name    string
		res     validator.Result
		touched bool
		state   surface.State
		message string
	}{
		{"untouched failure stays hidden", empty, false, surface.Hidden, ""},
		{"touched failure shows first message", empty, true, surface.Visible, "This field is required."},
		{"message follows the earliest failure", invalid, true, surface.Visible, "This field must be a valid email address."},
		{"valid hides", valid, true, surface.Hidden, "This field must be a valid email address."},
		{"untouched again hides", invalid, false, surface.Hidden, "This field must be a valid email address."},
	}

	c := surface.NewController()
	s := c.Ensure("email")

	for _, tt := range tests {
		got := c.Sync(s, tt.res, tt.touched)
		assert.Equal(t, tt.state, got, tt.name)
		assert.Equal(t, tt.message, s.Message, tt.name)
	}
}

func TestController_DisplayInvariant(t *testing.T) {
	t.Parallel()

	rules := validator.ParseRules("required")
	failing := validator.Evaluate(validator.FieldState{Value: ""}, rules)
	passing := validator.Evaluate(validator.FieldState{Value: "x"}, rules)

	updates := []struct {
		res     validator.Result
		touched bool
	}{
		{failing, false}, {failing, true}, {failing, true}, {passing, true},
		{failing, true}, {passing, false}, {failing, false}, {failing, true},
	}

	c := surface.NewController(surface.WithHeight("14px"))
	s := c.Ensure("field")

	for i, u := range updates {
		c.Sync(s, u.res, u.touched)
		want := u.touched && !u.res.Empty()
		assert.Equal(t, want, s.Visible(), "update %d", i)
		assert.Equal(t, "14px", s.Height, "update %d", i)
	}
}

func TestWithHeight_PanicsOnEmpty(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { surface.WithHeight("") })
}

func TestWithPolicy(t *testing.T) {
	t.Parallel()

	c := surface.NewController(surface.WithPolicy(bluemonday.UGCPolicy()))
	s := c.Ensure("bio")
	c.Show(s, "<b>bold</b>")
	assert.Equal(t, "<b>bold</b>", s.Message)

	c = surface.NewController(surface.WithPolicy(nil))
	s = c.Ensure("bio")
	c.Show(s, "<b>bold</b>")
	assert.Equal(t, "bold", s.Message)
}

func TestComponent(t *testing.T) {
	t.Parallel()

	c := surface.NewController()
	s := c.Ensure("email")

	render := func() string {
		var buf bytes.Buffer
		require.NoError(t, surface.Component(s).Render(context.Background(), &buf))
		return buf.String()
	}

	hidden := render()
	assert.Contains(t, hidden, `id="email-error"`)
	assert.Contains(t, hidden, `class="custom-error-container"`)
	assert.Contains(t, hidden, `data-state="hidden"`)
	assert.Contains(t, hidden, "visibility: hidden")
	assert.Contains(t, hidden, "opacity: 0")
	assert.Contains(t, hidden, "height: 10px")
	assert.Contains(t, hidden, "transition: visibility 0s, opacity 0.3s ease-in-out, height 0s ease-out")

	c.Show(s, `Must be "quoted" & <escaped>`)
	visible := render()
	assert.Contains(t, visible, `data-state="visible"`)
	assert.Contains(t, visible, "visibility: visible")
	assert.Contains(t, visible, "opacity: 1")
	assert.Contains(t, visible, "height: 10px")
	assert.Contains(t, visible, "Must be &#34;quoted&#34; &amp;")
	assert.NotContains(t, visible, "<escaped>")

	assert.Equal(t, "#email-error", surface.Selector(s))
}
