// Package dppform is the form engine behind the Digital Product Passport
// console: it derives validation schemas, seed values, patch operations,
// and documentation hints from externally supplied submodel templates. The
// engine performs no I/O of its own; it transforms definition trees and
// data snapshots into derived artifacts.
package dppform

import (
	"github.com/hadijannat/mini-dpp-platform-sub000/pkg/definition"
	"github.com/hadijannat/mini-dpp-platform-sub000/pkg/dochints"
	"github.com/hadijannat/mini-dpp-platform-sub000/pkg/patch"
	"github.com/hadijannat/mini-dpp-platform-sub000/pkg/uischema"
	"github.com/hadijannat/mini-dpp-platform-sub000/pkg/validation"
)

// Node is one element of a template definition tree.
type Node = definition.Node

// RenderingSchema is the JSON-Schema-like companion tree of a template.
type RenderingSchema = uischema.RenderingSchema

// Operation is one patch instruction of the partial-update payload.
type Operation = patch.Operation

// HintPayload is the documentation-hint sidecar of a template version.
type HintPayload = dochints.Payload

// Validator is the composable validator tree built once per template.
type Validator = validation.Validator

// Messages maps dot-joined field paths to error messages.
type Messages = validation.Messages

// SeedDefaults builds the initial working copy for a template's rendering
// schema.
func SeedDefaults(schema *RenderingSchema) map[string]any {
	return uischema.SeedDefaults(schema)
}

// BuildValidator constructs the composable validator for a template,
// preferring the definition tree and falling back to the rendering schema.
func BuildValidator(root *Node, schema *RenderingSchema) Validator {
	return validation.Build(root, schema)
}

// ValidateSnapshot runs the declarative message passes over a snapshot:
// schema messages plus either-or group failures.
func ValidateSnapshot(root *Node, schema *RenderingSchema, data any) (Messages, []string) {
	return validation.ValidateSchema(schema, data), validation.ValidateEitherOr(root, data)
}

// Diff computes the ordered patch-operation list between two snapshots.
func Diff(root *Node, current, next any) []Operation {
	return patch.BuildPatchOperations(root, current, next)
}
