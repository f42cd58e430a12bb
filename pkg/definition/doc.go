// Package definition models the versioned submodel-template definition tree
// supplied by the template service. A tree is loaded once per template
// version and treated as read-only; every consumer in this module derives
// its output (validators, defaults, patch operations, hints) from the same
// immutable tree.
package definition
