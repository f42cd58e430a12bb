package definition

import "strings"

// ArrayMarker is the segment token standing for "every element of the list
// at this point" in a pattern path. Definition paths encode it as a "[]"
// suffix on the preceding segment name.
const ArrayMarker = "[]"

// PathSegments splits a slash-delimited definition path into ordered
// segments. A leading segment equal to rootIDShort is dropped so the result
// addresses into the data mapping directly, and any segment carrying the
// "[]" suffix expands into the base name followed by the ArrayMarker token.
//
//	PathSegments("Nameplate/ContactInformation[]/Phone", "Nameplate")
//	  → ["ContactInformation", "[]", "Phone"]
func PathSegments(path, rootIDShort string) []string {
	trimmed := strings.Trim(strings.TrimSpace(path), "/")
	if trimmed == "" {
		return nil
	}

	parts := strings.Split(trimmed, "/")
	segments := make([]string, 0, len(parts)+1)
	for i, part := range parts {
		if part == "" {
			continue
		}
		base := strings.TrimSuffix(part, ArrayMarker)
		if i == 0 && rootIDShort != "" && base == rootIDShort {
			if base != part {
				segments = append(segments, ArrayMarker)
			}
			continue
		}
		if base == "" {
			segments = append(segments, ArrayMarker)
			continue
		}
		segments = append(segments, base)
		if base != part {
			segments = append(segments, ArrayMarker)
		}
	}
	return segments
}
