package uischema_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hadijannat/mini-dpp-platform-sub000/pkg/uischema"
)

func TestDefaultValueTotality(t *testing.T) {
	cases := []struct {
		name   string
		schema *uischema.RenderingSchema
		want   any
	}{
		{"absent schema", nil, ""},
		{"explicit default", &uischema.RenderingSchema{Type: "string", Default: "preset"}, "preset"},
		{"enum first entry", &uischema.RenderingSchema{Enum: []any{"a", "b"}}, "a"},
		{"multi language", &uischema.RenderingSchema{MultiLanguage: true}, map[string]any{}},
		{"range", &uischema.RenderingSchema{Range: true}, map[string]any{"min": nil, "max": nil}},
		{"file upload", &uischema.RenderingSchema{FileUpload: true}, map[string]any{"contentType": "", "value": ""}},
		{"reference", &uischema.RenderingSchema{Reference: true}, map[string]any{"type": "ModelReference", "keys": []any{}}},
		{
			"entity",
			&uischema.RenderingSchema{Entity: true},
			map[string]any{"entityType": "SelfManagedEntity", "globalAssetId": "", "statements": map[string]any{}},
		},
		{"relationship", &uischema.RenderingSchema{Relationship: true}, map[string]any{"first": nil, "second": nil}},
		{
			"annotated relationship",
			&uischema.RenderingSchema{AnnotatedRelationship: true},
			map[string]any{"first": nil, "second": nil, "annotations": map[string]any{}},
		},
		{"object", &uischema.RenderingSchema{Type: "object"}, map[string]any{}},
		{"array", &uischema.RenderingSchema{Type: "array"}, []any{}},
		{"number", &uischema.RenderingSchema{Type: "number"}, nil},
		{"integer", &uischema.RenderingSchema{Type: "integer"}, nil},
		{"boolean", &uischema.RenderingSchema{Type: "boolean"}, false},
		{"string", &uischema.RenderingSchema{Type: "string"}, ""},
		{"untyped", &uischema.RenderingSchema{}, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := uischema.DefaultValue(tc.schema)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("unexpected default (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDefaultValuePrecedence(t *testing.T) {
	// default beats enum beats extension flags beats the type switch.
	schema := &uischema.RenderingSchema{
		Type:          "object",
		Default:       "explicit",
		Enum:          []any{"first"},
		MultiLanguage: true,
	}
	if got := uischema.DefaultValue(schema); got != "explicit" {
		t.Fatalf("expected explicit default to win, got %v", got)
	}

	schema.Default = nil
	if got := uischema.DefaultValue(schema); got != "first" {
		t.Fatalf("expected enum to win over extension flags, got %v", got)
	}

	schema.Enum = nil
	got := uischema.DefaultValue(schema)
	if diff := cmp.Diff(map[string]any{}, got); diff != "" {
		t.Fatalf("expected extension flag to win over type switch (-want +got):\n%s", diff)
	}
}

func TestSeedDefaults(t *testing.T) {
	schema := &uischema.RenderingSchema{
		Type: "object",
		Properties: map[string]*uischema.RenderingSchema{
			"ManufacturerName": {MultiLanguage: true},
			"SerialNumber":     {Type: "string"},
			"Documents":        {Type: "array"},
		},
	}

	want := map[string]any{
		"ManufacturerName": map[string]any{},
		"SerialNumber":     "",
		"Documents":        []any{},
	}
	if diff := cmp.Diff(want, uischema.SeedDefaults(schema)); diff != "" {
		t.Fatalf("unexpected seed (-want +got):\n%s", diff)
	}
}
