// Package patch computes the minimal ordered set of operations that takes a
// passport's last-saved data snapshot to its edited state. The operation
// list is the wire payload of the repository's partial-update API; the
// transport itself lives outside this module.
package patch

// Operation kinds. Each operation addresses one field by its slash-joined
// path from the submodel root (list positions as plain indices).
const (
	OpSetValue       = "set_value"
	OpSetMultiLang   = "set_multilang"
	OpAddListItem    = "add_list_item"
	OpRemoveListItem = "remove_list_item"
	OpSetFileRef     = "set_file_ref"
)

// Operation is one typed, path-addressed delta instruction.
type Operation struct {
	Op    string `json:"op"`
	Path  string `json:"path"`
	Value any    `json:"value,omitempty"`
	Index *int   `json:"index,omitempty"`
}
