package definition_test

import (
	"encoding/json"
	"testing"

	"github.com/hadijannat/mini-dpp-platform-sub000/pkg/definition"
)

func TestAllowedRangeObjectForm(t *testing.T) {
	var quals definition.SMTQualifiers
	if err := json.Unmarshal([]byte(`{"allowed_range": {"min": -40, "max": 125.5}}`), &quals); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if quals.AllowedRange == nil || quals.AllowedRange.Min == nil || quals.AllowedRange.Max == nil {
		t.Fatalf("expected both bounds, got %+v", quals.AllowedRange)
	}
	if *quals.AllowedRange.Min != -40 || *quals.AllowedRange.Max != 125.5 {
		t.Fatalf("unexpected bounds: %v..%v", *quals.AllowedRange.Min, *quals.AllowedRange.Max)
	}
}

func TestAllowedRangeRawForm(t *testing.T) {
	var quals definition.SMTQualifiers
	if err := json.Unmarshal([]byte(`{"allowed_range": "0..100"}`), &quals); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if quals.AllowedRange == nil || quals.AllowedRange.Min == nil || quals.AllowedRange.Max == nil {
		t.Fatalf("expected both bounds, got %+v", quals.AllowedRange)
	}
	if *quals.AllowedRange.Min != 0 || *quals.AllowedRange.Max != 100 {
		t.Fatalf("unexpected bounds: %v..%v", *quals.AllowedRange.Min, *quals.AllowedRange.Max)
	}
}

func TestAllowedRangeMalformedRawYieldsNoBounds(t *testing.T) {
	var quals definition.SMTQualifiers
	if err := json.Unmarshal([]byte(`{"allowed_range": "between 0 and 100"}`), &quals); err != nil {
		t.Fatalf("malformed raw range must not fail parsing: %v", err)
	}
	if quals.AllowedRange == nil {
		t.Fatalf("expected an empty range value")
	}
	if quals.AllowedRange.Min != nil || quals.AllowedRange.Max != nil {
		t.Fatalf("expected no bounds, got %+v", quals.AllowedRange)
	}
}

func TestKindPredicates(t *testing.T) {
	list := &definition.Node{ModelType: definition.ModelTypeSubmodelElementList}
	if !definition.IsList(list) || definition.IsCollection(list) {
		t.Fatalf("list predicate mismatch")
	}

	for _, modelType := range []string{
		definition.ModelTypeBlob,
		definition.ModelTypeOperation,
		definition.ModelTypeCapability,
		definition.ModelTypeBasicEventElement,
	} {
		if !definition.IsReadOnlyType(&definition.Node{ModelType: modelType}) {
			t.Fatalf("expected %s to be read-only", modelType)
		}
	}
	if definition.IsReadOnlyType(&definition.Node{ModelType: definition.ModelTypeProperty}) {
		t.Fatalf("property must not be read-only")
	}

	unknown := &definition.Node{ModelType: "FutureElementKind"}
	if definition.IsProperty(unknown) || definition.IsCollection(unknown) || definition.IsReadOnlyType(unknown) {
		t.Fatalf("unknown model type must satisfy no predicate")
	}
}

func TestExtractSemanticIDs(t *testing.T) {
	fragment := map[string]any{
		"semanticId": map[string]any{
			"keys": []any{
				map[string]any{"type": "GlobalReference", "value": " https://admin-shell.io/zvei/nameplate/2/0/Nameplate "},
				map[string]any{"type": "GlobalReference", "value": "   "},
				map[string]any{"type": "GlobalReference", "value": "urn:iec:61406"},
			},
		},
	}

	ids := definition.ExtractSemanticIDs(fragment)
	if len(ids) != 2 {
		t.Fatalf("expected 2 ids, got %v", ids)
	}
	if ids[0] != "https://admin-shell.io/zvei/nameplate/2/0/Nameplate" || ids[1] != "urn:iec:61406" {
		t.Fatalf("unexpected ids: %v", ids)
	}

	if got := definition.ExtractSemanticID(fragment); got != "https://admin-shell.io/zvei/nameplate/2/0/Nameplate" {
		t.Fatalf("unexpected first id: %q", got)
	}
	if got := definition.ExtractSemanticID(map[string]any{}); got != "" {
		t.Fatalf("expected empty id for fragment without semanticId, got %q", got)
	}
}
