package uischema

// RenderingSchema is one node of the JSON-Schema-like rendering tree. The
// x-prefixed fields are the engine's extension vocabulary; absent flags are
// zero values. When a definition node exists for the same field, its
// qualifiers win for validation bounds and this tree only supplies
// structural fallback.
type RenderingSchema struct {
	Type       string                      `json:"type,omitempty" yaml:"type,omitempty"`
	Properties map[string]*RenderingSchema `json:"properties,omitempty" yaml:"properties,omitempty"`
	Items      *RenderingSchema            `json:"items,omitempty" yaml:"items,omitempty"`
	Required   []string                    `json:"required,omitempty" yaml:"required,omitempty"`
	Enum       []any                       `json:"enum,omitempty" yaml:"enum,omitempty"`
	Default    any                         `json:"default,omitempty" yaml:"default,omitempty"`
	Pattern    string                      `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Minimum    *float64                    `json:"minimum,omitempty" yaml:"minimum,omitempty"`
	Maximum    *float64                    `json:"maximum,omitempty" yaml:"maximum,omitempty"`
	MinItems   *int                        `json:"minItems,omitempty" yaml:"minItems,omitempty"`
	ReadOnly   bool                        `json:"readOnly,omitempty" yaml:"readOnly,omitempty"`

	MultiLanguage         bool     `json:"x-multi-language,omitempty" yaml:"x-multi-language,omitempty"`
	Range                 bool     `json:"x-range,omitempty" yaml:"x-range,omitempty"`
	FileUpload            bool     `json:"x-file-upload,omitempty" yaml:"x-file-upload,omitempty"`
	Reference             bool     `json:"x-reference,omitempty" yaml:"x-reference,omitempty"`
	Entity                bool     `json:"x-entity,omitempty" yaml:"x-entity,omitempty"`
	Relationship          bool     `json:"x-relationship,omitempty" yaml:"x-relationship,omitempty"`
	AnnotatedRelationship bool     `json:"x-annotated-relationship,omitempty" yaml:"x-annotated-relationship,omitempty"`
	ReadOnlyExt           bool     `json:"x-readonly,omitempty" yaml:"x-readonly,omitempty"`
	RequiredLanguages     []string `json:"x-required-languages,omitempty" yaml:"x-required-languages,omitempty"`
	EditIDShort           *bool    `json:"x-edit-id-short,omitempty" yaml:"x-edit-id-short,omitempty"`
	AllowedIDShort        []string `json:"x-allowed-id-short,omitempty" yaml:"x-allowed-id-short,omitempty"`
	Naming                string   `json:"x-naming,omitempty" yaml:"x-naming,omitempty"`
	AllowedRange          *Bounds  `json:"x-allowed-range,omitempty" yaml:"x-allowed-range,omitempty"`
	ContentTypePattern    string   `json:"x-content-type-pattern,omitempty" yaml:"x-content-type-pattern,omitempty"`
}

// Bounds is a min/max pair used by the x-allowed-range extension.
type Bounds struct {
	Min *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max *float64 `json:"max,omitempty" yaml:"max,omitempty"`
}

// IsReadOnly reports whether the schema marks its subtree immutable via
// either the standard readOnly keyword or the x-readonly extension.
func (s *RenderingSchema) IsReadOnly() bool {
	return s != nil && (s.ReadOnly || s.ReadOnlyExt)
}

// Property returns the declared child schema for a property name, or nil.
func (s *RenderingSchema) Property(name string) *RenderingSchema {
	if s == nil || s.Properties == nil {
		return nil
	}
	return s.Properties[name]
}

// ItemSchema returns the element schema of an array node, or nil.
func (s *RenderingSchema) ItemSchema() *RenderingSchema {
	if s == nil {
		return nil
	}
	return s.Items
}
