// Package validation derives validators from a template's definition tree
// and rendering schema. It produces two independent artifacts: a composable
// Validator tree built once per template and reused across validate calls,
// and declarative message passes (ValidateSchema, ValidateReadOnly,
// ValidateEitherOr) whose results are data, never errors.
//
// Template metadata is externally authored, so malformed constraints such
// as broken regular expressions or unparsable range strings are tolerated
// by dropping the constraint rather than failing the field.
package validation
