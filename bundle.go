package dppform

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/hadijannat/mini-dpp-platform-sub000/internal/openapi"
	"github.com/hadijannat/mini-dpp-platform-sub000/pkg/definition"
	"github.com/hadijannat/mini-dpp-platform-sub000/pkg/dochints"
	"github.com/hadijannat/mini-dpp-platform-sub000/pkg/uischema"
)

// Bundle is one template version as shipped by the template service: the
// definition tree, an optional rendering schema, and an optional doc-hint
// sidecar. Load once per version; all three are read-only afterwards.
type Bundle struct {
	Definition *Node
	Schema     *RenderingSchema
	Hints      *HintPayload
}

// Bundle file names. Definition and schema accept a YAML variant; template
// services that publish their rendering metadata as an OpenAPI document
// ship it as openapi.json instead of a bare schema file.
const (
	definitionFile     = "definition.json"
	definitionFileYAML = "definition.yaml"
	schemaFile         = "uischema.json"
	schemaFileYAML     = "uischema.yaml"
	openapiFile        = "openapi.json"
	hintsFile          = "hints.json"
)

// LoadBundle reads a template bundle from a filesystem. The definition is
// required; schema and hints are optional and yield nil fields when absent.
// When the bundle carries an OpenAPI document instead of a bare schema, the
// component schema named after the definition root is normalized.
func LoadBundle(fsys fs.FS) (*Bundle, error) {
	if fsys == nil {
		return nil, errors.New("dppform: bundle filesystem is nil")
	}

	bundle := &Bundle{}

	raw, name, err := readFirst(fsys, definitionFile, definitionFileYAML)
	if err != nil {
		return nil, fmt.Errorf("dppform: bundle has no definition: %w", err)
	}
	bundle.Definition, err = definition.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("dppform: %s: %w", name, err)
	}

	if raw, name, err := readFirst(fsys, schemaFile, schemaFileYAML); err == nil {
		bundle.Schema, err = uischema.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("dppform: %s: %w", name, err)
		}
	} else if raw, err := fs.ReadFile(fsys, openapiFile); err == nil {
		bundle.Schema, err = openapi.NormalizeComponent(context.Background(), raw, bundle.Definition.IDShort)
		if err != nil {
			return nil, fmt.Errorf("dppform: %s: %w", openapiFile, err)
		}
	}

	if raw, err := fs.ReadFile(fsys, hintsFile); err == nil {
		bundle.Hints, err = dochints.ParsePayload(raw)
		if err != nil {
			return nil, fmt.Errorf("dppform: %s: %w", hintsFile, err)
		}
	}

	return bundle, nil
}

func readFirst(fsys fs.FS, names ...string) ([]byte, string, error) {
	var lastErr error
	for _, name := range names {
		raw, err := fs.ReadFile(fsys, name)
		if err == nil {
			return raw, name, nil
		}
		lastErr = err
	}
	return nil, "", lastErr
}
