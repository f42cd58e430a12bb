// Package uischema models the rendering schema that accompanies a template
// version: a JSON-Schema-shaped tree plus the x-prefixed extension flags the
// form engine understands. It is the structural fallback when no definition
// tree is available and the source of UI-only constraints when one is.
package uischema
