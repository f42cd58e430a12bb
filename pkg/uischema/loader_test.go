package uischema_test

import (
	"testing"

	"github.com/hadijannat/mini-dpp-platform-sub000/pkg/uischema"
)

func TestParseJSON(t *testing.T) {
	raw := []byte(`{
		"type": "object",
		"required": ["ManufacturerName"],
		"properties": {
			"ManufacturerName": {"type": "object", "x-multi-language": true, "x-required-languages": ["en"]},
			"Voltage": {"type": "integer", "minimum": 0, "maximum": 400},
			"Documents": {
				"type": "array",
				"minItems": 1,
				"items": {"type": "object", "properties": {"file": {"type": "object", "x-file-upload": true}}}
			}
		}
	}`)

	schema, err := uischema.Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	name := schema.Property("ManufacturerName")
	if name == nil || !name.MultiLanguage {
		t.Fatalf("expected x-multi-language flag on ManufacturerName")
	}
	if len(name.RequiredLanguages) != 1 || name.RequiredLanguages[0] != "en" {
		t.Fatalf("unexpected required languages: %v", name.RequiredLanguages)
	}

	voltage := schema.Property("Voltage")
	if voltage == nil || voltage.Minimum == nil || *voltage.Minimum != 0 || voltage.Maximum == nil || *voltage.Maximum != 400 {
		t.Fatalf("unexpected voltage bounds: %+v", voltage)
	}

	documents := schema.Property("Documents")
	if documents == nil || documents.MinItems == nil || *documents.MinItems != 1 {
		t.Fatalf("expected minItems 1 on Documents")
	}
	if file := documents.ItemSchema().Property("file"); file == nil || !file.FileUpload {
		t.Fatalf("expected x-file-upload on Documents items file")
	}
}

func TestParseYAML(t *testing.T) {
	raw := []byte(`
type: object
properties:
  SerialNumber:
    type: string
    pattern: "^SN-"
  Status:
    type: string
    enum: [active, retired]
    x-edit-id-short: false
`)

	schema, err := uischema.Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := schema.Property("SerialNumber").Pattern; got != "^SN-" {
		t.Fatalf("unexpected pattern: %q", got)
	}
	status := schema.Property("Status")
	if len(status.Enum) != 2 {
		t.Fatalf("unexpected enum: %v", status.Enum)
	}
	if status.EditIDShort == nil || *status.EditIDShort {
		t.Fatalf("expected x-edit-id-short false")
	}
}

func TestParseEmpty(t *testing.T) {
	if _, err := uischema.Parse([]byte("   ")); err == nil {
		t.Fatalf("expected an error for an empty document")
	}
}

func TestSchemaAtPath(t *testing.T) {
	schema := &uischema.RenderingSchema{
		Type: "object",
		Properties: map[string]*uischema.RenderingSchema{
			"Documents": {
				Type: "array",
				Items: &uischema.RenderingSchema{
					Type: "object",
					Properties: map[string]*uischema.RenderingSchema{
						"title": {Type: "string"},
					},
				},
			},
		},
	}

	title := uischema.SchemaAtPath(schema, []string{"Documents", "2", "title"})
	if title == nil || title.Type != "string" {
		t.Fatalf("expected title schema, got %+v", title)
	}

	if got := uischema.SchemaAtPath(schema, []string{"Documents", "2", "title", "missing"}); got != nil {
		t.Fatalf("expected traversal past a leaf to fall through to nil, got %+v", got)
	}
	if got := uischema.SchemaAtPath(nil, []string{"x"}); got != nil {
		t.Fatalf("expected nil schema to stay nil")
	}
}
