package dochints

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Hint is one resolved documentation entry for a field: help text, label
// and info overrides, and an optional external document reference with a
// page number.
type Hint struct {
	HelpText  string
	FormTitle string
	FormInfo  string
	FormURL   string
	PDFRef    string
	Page      *int
}

// UnmarshalJSON accepts the flexible sidecar field naming: camel case is
// primary with snake_case fallbacks for the form_* fields, blank strings
// collapse to absent, and page may arrive as a string or a finite number.
func (h *Hint) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("dochints: parse hint: %w", err)
	}

	h.HelpText = stringField(raw, "helpText", "help_text")
	h.FormTitle = stringField(raw, "formTitle", "form_title")
	h.FormInfo = stringField(raw, "formInfo", "form_info")
	h.FormURL = stringField(raw, "formUrl", "form_url")
	h.PDFRef = stringField(raw, "pdfRef", "pdf_ref")
	h.Page = pageField(raw)
	return nil
}

func stringField(raw map[string]any, primary, fallback string) string {
	for _, key := range []string{primary, fallback} {
		if value, ok := raw[key].(string); ok {
			if trimmed := strings.TrimSpace(value); trimmed != "" {
				return trimmed
			}
		}
	}
	return ""
}

func pageField(raw map[string]any) *int {
	value, ok := raw["page"]
	if !ok {
		return nil
	}
	switch typed := value.(type) {
	case float64:
		if math.IsNaN(typed) || math.IsInf(typed, 0) {
			return nil
		}
		page := int(typed)
		return &page
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(typed))
		if err != nil {
			return nil
		}
		return &parsed
	default:
		return nil
	}
}

// Payload is the sidecar hint document for one template version. Resolution
// runs over the two keyed maps; any other sidecar fields are ignored.
type Payload struct {
	BySemanticID  map[string]Hint `json:"by_semantic_id"`
	ByIDShortPath map[string]Hint `json:"by_id_short_path"`
}

// ParsePayload decodes a hint sidecar from JSON bytes and normalizes its
// lookup keys.
func ParsePayload(data []byte) (*Payload, error) {
	var payload Payload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("dochints: parse payload: %w", err)
	}
	payload.normalizeKeys()
	return &payload, nil
}

func (p *Payload) normalizeKeys() {
	if len(p.BySemanticID) > 0 {
		normalized := make(map[string]Hint, len(p.BySemanticID))
		for key, hint := range p.BySemanticID {
			normalized[normalizeSemanticKey(key)] = hint
		}
		p.BySemanticID = normalized
	}
	if len(p.ByIDShortPath) > 0 {
		normalized := make(map[string]Hint, len(p.ByIDShortPath))
		for key, hint := range p.ByIDShortPath {
			normalized[strings.TrimSpace(key)] = hint
		}
		p.ByIDShortPath = normalized
	}
}

func normalizeSemanticKey(key string) string {
	return strings.ToLower(strings.TrimRight(strings.TrimSpace(key), "/"))
}
