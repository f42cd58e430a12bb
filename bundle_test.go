package dppform_test

import (
	"testing"
	"testing/fstest"

	dppform "github.com/hadijannat/mini-dpp-platform-sub000"
)

const bundleDefinition = `{
	"idShort": "Nameplate",
	"modelType": "Submodel",
	"children": [
		{"idShort": "SerialNumber", "modelType": "Property", "valueType": "xs:string"},
		{"idShort": "ManufacturerName", "modelType": "MultiLanguageProperty"}
	]
}`

const bundleSchema = `{
	"type": "object",
	"required": ["SerialNumber"],
	"properties": {
		"SerialNumber": {"type": "string", "pattern": "^SN-"},
		"ManufacturerName": {"type": "object", "x-multi-language": true}
	}
}`

const bundleHints = `{
	"by_id_short_path": {
		"SerialNumber": {"helpText": "Printed on the nameplate"}
	}
}`

func TestLoadBundle(t *testing.T) {
	fsys := fstest.MapFS{
		"definition.json": {Data: []byte(bundleDefinition)},
		"uischema.json":   {Data: []byte(bundleSchema)},
		"hints.json":      {Data: []byte(bundleHints)},
	}

	bundle, err := dppform.LoadBundle(fsys)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if bundle.Definition == nil || bundle.Definition.IDShort != "Nameplate" {
		t.Fatalf("unexpected definition: %+v", bundle.Definition)
	}
	if len(bundle.Definition.Children) != 2 {
		t.Fatalf("unexpected children: %v", bundle.Definition.Children)
	}
	if bundle.Schema == nil || bundle.Schema.Property("SerialNumber") == nil {
		t.Fatalf("expected schema to load")
	}
	if bundle.Hints == nil || bundle.Hints.ByIDShortPath["SerialNumber"].HelpText == "" {
		t.Fatalf("expected hints to load")
	}
}

func TestLoadBundleDefinitionOnly(t *testing.T) {
	fsys := fstest.MapFS{
		"definition.yaml": {Data: []byte("idShort: Nameplate\nmodelType: Submodel\n")},
	}

	bundle, err := dppform.LoadBundle(fsys)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if bundle.Definition.IDShort != "Nameplate" {
		t.Fatalf("unexpected definition: %+v", bundle.Definition)
	}
	if bundle.Schema != nil || bundle.Hints != nil {
		t.Fatalf("expected optional parts to stay nil")
	}
}

const bundleOpenAPI = `{
	"openapi": "3.0.3",
	"info": {"title": "Template Service", "version": "1.0.0"},
	"paths": {},
	"components": {
		"schemas": {
			"Nameplate": {
				"type": "object",
				"required": ["SerialNumber"],
				"properties": {
					"SerialNumber": {"type": "string", "pattern": "^SN-"},
					"ManufacturerName": {"type": "object", "x-multi-language": true}
				}
			}
		}
	}
}`

func TestLoadBundleOpenAPISchema(t *testing.T) {
	fsys := fstest.MapFS{
		"definition.json": {Data: []byte(bundleDefinition)},
		"openapi.json":    {Data: []byte(bundleOpenAPI)},
	}

	bundle, err := dppform.LoadBundle(fsys)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	serial := bundle.Schema.Property("SerialNumber")
	if serial == nil || serial.Pattern != "^SN-" {
		t.Fatalf("expected normalized component schema, got %+v", bundle.Schema)
	}
	if name := bundle.Schema.Property("ManufacturerName"); name == nil || !name.MultiLanguage {
		t.Fatalf("expected extension flags to survive normalization")
	}

	messages, _ := dppform.ValidateSnapshot(bundle.Definition, bundle.Schema, map[string]any{"SerialNumber": ""})
	if messages["SerialNumber"] == "" {
		t.Fatalf("expected required message from the normalized schema, got %v", messages)
	}
}

func TestLoadBundleOpenAPISchemaTakesLowerPrecedence(t *testing.T) {
	fsys := fstest.MapFS{
		"definition.json": {Data: []byte(bundleDefinition)},
		"uischema.json":   {Data: []byte(bundleSchema)},
		"openapi.json":    {Data: []byte(`{not even json`)},
	}

	bundle, err := dppform.LoadBundle(fsys)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if bundle.Schema == nil || bundle.Schema.Property("SerialNumber") == nil {
		t.Fatalf("expected bare schema file to win over the OpenAPI document")
	}
}

func TestLoadBundleOpenAPIMissingComponent(t *testing.T) {
	fsys := fstest.MapFS{
		"definition.json": {Data: []byte(`{"idShort": "Unlisted", "modelType": "Submodel"}`)},
		"openapi.json":    {Data: []byte(bundleOpenAPI)},
	}
	if _, err := dppform.LoadBundle(fsys); err == nil {
		t.Fatalf("expected an error when no component matches the definition root")
	}
}

func TestLoadBundleMissingDefinition(t *testing.T) {
	if _, err := dppform.LoadBundle(fstest.MapFS{}); err == nil {
		t.Fatalf("expected an error without a definition file")
	}
	if _, err := dppform.LoadBundle(nil); err == nil {
		t.Fatalf("expected an error for a nil filesystem")
	}
}

func TestEngineEndToEnd(t *testing.T) {
	fsys := fstest.MapFS{
		"definition.json": {Data: []byte(bundleDefinition)},
		"uischema.json":   {Data: []byte(bundleSchema)},
	}
	bundle, err := dppform.LoadBundle(fsys)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	seeded := dppform.SeedDefaults(bundle.Schema)
	if _, ok := seeded["SerialNumber"]; !ok {
		t.Fatalf("expected seeded value for SerialNumber, got %v", seeded)
	}

	validator := dppform.BuildValidator(bundle.Definition, bundle.Schema)
	if !validator.Validate(map[string]any{"SerialNumber": "SN-1"}) {
		t.Fatalf("expected valid snapshot to pass")
	}

	messages, groups := dppform.ValidateSnapshot(bundle.Definition, bundle.Schema, map[string]any{"SerialNumber": ""})
	if messages["SerialNumber"] == "" {
		t.Fatalf("expected required message, got %v", messages)
	}
	if len(groups) != 0 {
		t.Fatalf("expected no either-or failures, got %v", groups)
	}

	ops := dppform.Diff(bundle.Definition,
		map[string]any{"SerialNumber": "SN-1"},
		map[string]any{"SerialNumber": "SN-2"})
	if len(ops) != 1 || ops[0].Path != "SerialNumber" {
		t.Fatalf("unexpected ops: %v", ops)
	}
}
