package dochints

import (
	"strconv"
	"strings"

	"github.com/hadijannat/mini-dpp-platform-sub000/pkg/definition"
)

// Resolve finds the most specific hint for a field. The node's own
// semantic id always wins when the payload carries a matching entry, even
// if a path-based hint exists for the same field; the id-short path is the
// fallback.
//
// fieldPath is dot-separated with numeric segments denoting list indices,
// e.g. "ContactInformation.0.Phone".
func Resolve(node *definition.Node, fieldPath string, payload *Payload) (Hint, bool) {
	if payload == nil {
		return Hint{}, false
	}

	if node != nil && node.SemanticID != "" {
		key := definition.NormalizeSemanticID(node.SemanticID)
		if hint, ok := payload.BySemanticID[key]; ok {
			return hint, true
		}
	}

	if key := IDShortPathKey(fieldPath); key != "" {
		if hint, ok := payload.ByIDShortPath[key]; ok {
			return hint, true
		}
	}

	return Hint{}, false
}

// IDShortPathKey converts a dot-separated field path into the sidecar's
// slash-delimited id-short key form, collapsing each numeric segment into a
// "[]" suffix on its preceding segment:
//
//	"ContactInformation.0.Phone" → "ContactInformation[]/Phone"
func IDShortPathKey(fieldPath string) string {
	trimmed := strings.TrimSpace(fieldPath)
	if trimmed == "" {
		return ""
	}

	var segments []string
	for _, segment := range strings.Split(trimmed, ".") {
		if segment == "" {
			continue
		}
		if _, err := strconv.Atoi(segment); err == nil && len(segments) > 0 {
			segments[len(segments)-1] += definition.ArrayMarker
			continue
		}
		segments = append(segments, segment)
	}
	return strings.Join(segments, "/")
}

// BuildDescription renders a hint into a single description line: help
// text (preferred) or form info as the base, with a "PDF: ref, p. N"
// suffix when a document reference exists. Returns false when the hint
// carries neither text nor a reference.
func BuildDescription(hint Hint) (string, bool) {
	base := sanitizeText(hint.HelpText)
	if base == "" {
		base = sanitizeText(hint.FormInfo)
	}

	var refParts []string
	if ref := sanitizeText(hint.PDFRef); ref != "" {
		refParts = append(refParts, "PDF: "+ref)
	}
	if hint.Page != nil {
		refParts = append(refParts, "p. "+strconv.Itoa(*hint.Page))
	}
	suffix := strings.Join(refParts, ", ")

	switch {
	case base != "" && suffix != "":
		return base + " | " + suffix, true
	case base != "":
		return base, true
	case suffix != "":
		return suffix, true
	default:
		return "", false
	}
}
