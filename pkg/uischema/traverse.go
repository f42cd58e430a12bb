package uischema

import "strconv"

// SchemaAtPath descends the rendering tree along data-path segments: a
// numeric segment steps into the array item schema, any other segment into
// the named property. Leaf value shapes (language maps, ranges, files and
// friends) carry no child schemas, so traversal falls through to nil once
// it runs past the declared structure.
func SchemaAtPath(schema *RenderingSchema, segments []string) *RenderingSchema {
	current := schema
	for _, segment := range segments {
		if current == nil {
			return nil
		}
		if _, err := strconv.Atoi(segment); err == nil {
			current = current.Items
			continue
		}
		current = current.Property(segment)
	}
	return current
}
