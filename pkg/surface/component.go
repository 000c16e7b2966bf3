package surface

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Component renders the surface as a div whose id is stable across states,
// so it can be patched in place.
func Component(s *Surface) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w,
			`<div id="`+templ.EscapeString(s.ID)+`"`+
				` class="`+ClassName+`"`+
				` data-state="`+s.State().String()+`"`+
				` style="`+templ.EscapeString(s.Style())+`">`+
				templ.EscapeString(s.Message)+
				`</div>`)
		return err
	})
}

// Selector returns the CSS selector that targets the surface element.
func Selector(s *Surface) string {
	return "#" + s.ID
}
