package formdata_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hadijannat/mini-dpp-platform-sub000/pkg/definition"
	"github.com/hadijannat/mini-dpp-platform-sub000/pkg/formdata"
)

func TestValuesAtPatternBroadcast(t *testing.T) {
	data := map[string]any{
		"ContactInformation": []any{
			map[string]any{"Phone": "111"},
			map[string]any{"Phone": "222"},
			map[string]any{"Email": "a@b.c"},
		},
	}

	values := formdata.ValuesAtPattern(data, []string{"ContactInformation", definition.ArrayMarker, "Phone"})
	want := []any{"111", "222"}
	if diff := cmp.Diff(want, values); diff != "" {
		t.Fatalf("unexpected values (-want +got):\n%s", diff)
	}
}

func TestValuesAtPatternNoMatch(t *testing.T) {
	data := map[string]any{"Other": "x"}
	if values := formdata.ValuesAtPattern(data, []string{"ContactInformation", definition.ArrayMarker, "Phone"}); len(values) != 0 {
		t.Fatalf("expected no values, got %v", values)
	}
}

func TestValuesAtPatternNestedLists(t *testing.T) {
	data := map[string]any{
		"Markings": []any{
			map[string]any{"Files": []any{map[string]any{"name": "ce.pdf"}}},
			map[string]any{"Files": []any{map[string]any{"name": "ul.pdf"}, map[string]any{"name": "fcc.pdf"}}},
		},
	}

	values := formdata.ValuesAtPattern(data, []string{
		"Markings", definition.ArrayMarker, "Files", definition.ArrayMarker, "name",
	})
	want := []any{"ce.pdf", "ul.pdf", "fcc.pdf"}
	if diff := cmp.Diff(want, values); diff != "" {
		t.Fatalf("unexpected values (-want +got):\n%s", diff)
	}
}
