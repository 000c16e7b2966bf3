// Package surface renders validation outcomes into per-field error slots.
//
// Every field gets exactly one Surface, attached lazily by Controller.Ensure.
// A surface reserves a fixed height below its field from the moment it is
// created, so switching between Hidden and Visible never shifts the layout:
// only visibility and opacity change, and opacity fades through a CSS
// transition.
//
// Controller.Sync implements the display policy. A touched field with at
// least one failed rule shows the message of the earliest-declared failure;
// any other combination hides the surface. Messages are reduced to plain text
// with a bluemonday strict policy before they are stored.
//
// Component renders a surface as a templ component with a stable element id
// ("<field>-error"), which lets handlers patch a single surface in place.
package surface
