// Package form binds declarative form definitions to the validation engine
// and to error surfaces.
//
// Definitions are YAML documents listing fields with their input type and a
// comma-separated rule string:
//
//	id: login
//	action: /login
//	fields:
//	  - name: email
//	    type: email
//	    rules: required,email
//	  - name: password
//	    type: password
//	    rules: required,noWhitespace
//
// A Form is the per-request host binding. Change records a new value, Blur
// marks a field touched, and both re-evaluate that field and sync its error
// surface. Submit touches every field so that all failures become visible and
// reports whether the form may be submitted. Read-only and disabled fields are
// never validated.
package form
