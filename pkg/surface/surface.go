package surface

import (
	"fmt"
	"strings"
)

// State is the display state of an error surface.
type State int

const (
	Hidden State = iota
	Visible
)

func (s State) String() string {
	if s == Visible {
		return "visible"
	}
	return "hidden"
}

// DefaultHeight is the space reserved below a field for its error text.
const DefaultHeight = "10px"

// IDSuffix is appended to the host field name to form the surface element id.
const IDSuffix = "-error"

// ClassName marks error surfaces in rendered markup.
const ClassName = "custom-error-container"

const transition = "visibility 0s, opacity 0.3s ease-in-out, height 0s ease-out"

// Surface is the reserved-space error slot of one field.
// Height never changes after creation, whatever the state.
type Surface struct {
	ID      string
	Host    string
	Message string
	Opacity float64
	Height  string
	visible bool
}

// State reports whether the surface is showing its message.
func (s *Surface) State() State {
	if s.visible {
		return Visible
	}
	return Hidden
}

func (s *Surface) Visible() bool {
	return s.visible
}

// Style returns the inline CSS for the current state.
func (s *Surface) Style() string {
	visibility := "hidden"
	if s.visible {
		visibility = "visible"
	}

	var b strings.Builder
	b.WriteString("color: red; font-size: 10px; padding-left: 5px; margin-top: -2px; ")
	fmt.Fprintf(&b, "height: %s; visibility: %s; opacity: %g; transition: %s;", s.Height, visibility, s.Opacity, transition)
	return b.String()
}
