package surface

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/dmitrymomot/loginkit/pkg/validator"
)

// Option configures a Controller.
type Option func(*Controller)

// WithHeight overrides the reserved height of every surface the controller creates.
func WithHeight(height string) Option {
	if height == "" {
		panic("surface: WithHeight: height cannot be empty")
	}
	return func(c *Controller) { c.height = height }
}

// WithPolicy replaces the sanitizer applied to messages before they are shown.
func WithPolicy(p *bluemonday.Policy) Option {
	return func(c *Controller) {
		if p != nil {
			c.policy = p
		}
	}
}

// Controller owns one error surface per host field.
type Controller struct {
	mu       sync.Mutex
	surfaces map[string]*Surface
	height   string
	policy   *bluemonday.Policy
}

// NewController returns a controller with no surfaces attached yet.
func NewController(opts ...Option) *Controller {
	c := &Controller{
		surfaces: make(map[string]*Surface),
		height:   DefaultHeight,
		policy:   bluemonday.StrictPolicy(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Ensure returns the surface attached to host, creating a hidden one on first use.
// Repeated calls for the same host return the same surface.
func (c *Controller) Ensure(host string) *Surface {
	c.mu.Lock()
	defer c.mu.Unlock()

	if s, ok := c.surfaces[host]; ok {
		return s
	}

	s := &Surface{
		ID:      host + IDSuffix,
		Host:    host,
		Height:  c.height,
		Opacity: 0,
	}
	c.surfaces[host] = s
	return s
}

// Lookup returns the surface attached to host without creating one.
func (c *Controller) Lookup(host string) (*Surface, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.surfaces[host]
	return s, ok
}

// Len returns the number of attached surfaces.
func (c *Controller) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.surfaces)
}

// Show makes the surface visible with message as plain text.
func (c *Controller) Show(s *Surface, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s.Message = c.plain(message)
	s.visible = true
	s.Opacity = 1
}

// Hide fades the surface out. The message and reserved height stay in place.
func (c *Controller) Hide(s *Surface) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s.visible = false
	s.Opacity = 0
}

// Sync drives the surface from an evaluation: touched fields with failures show
// the earliest-declared message, everything else is hidden.
func (c *Controller) Sync(s *Surface, res validator.Result, touched bool) State {
	first, failed := res.First()
	if touched && failed {
		c.Show(s, first.Message)
	} else {
		c.Hide(s)
	}
	return s.State()
}

// plain strips markup from message so it can only ever render as text.
func (c *Controller) plain(message string) string {
	return strings.TrimSpace(html.UnescapeString(c.policy.Sanitize(message)))
}
