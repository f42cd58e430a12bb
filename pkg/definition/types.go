package definition

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Model type vocabulary used by submodel templates. Values outside this set
// are carried through opaquely; tree walks must treat them as unconstrained
// rather than failing.
const (
	ModelTypeProperty                     = "Property"
	ModelTypeMultiLanguageProperty        = "MultiLanguageProperty"
	ModelTypeRange                        = "Range"
	ModelTypeFile                         = "File"
	ModelTypeBlob                         = "Blob"
	ModelTypeReferenceElement             = "ReferenceElement"
	ModelTypeEntity                       = "Entity"
	ModelTypeRelationshipElement          = "RelationshipElement"
	ModelTypeAnnotatedRelationshipElement = "AnnotatedRelationshipElement"
	ModelTypeSubmodelElementCollection    = "SubmodelElementCollection"
	ModelTypeSubmodelElementList          = "SubmodelElementList"
	ModelTypeOperation                    = "Operation"
	ModelTypeCapability                   = "Capability"
	ModelTypeBasicEventElement            = "BasicEventElement"
)

// Cardinality values carried by SMT qualifiers.
const (
	CardinalityOne        = "One"
	CardinalityOneToMany  = "OneToMany"
	CardinalityZeroToOne  = "ZeroToOne"
	CardinalityZeroToMany = "ZeroToMany"
)

// Node is one element of a template definition tree. Which structural fields
// are meaningful is determined entirely by ModelType: Children for
// collections, Items for lists, Statements for entities, Annotations and
// First/Second for relationship kinds. The tree is externally authored and
// must never be mutated after loading.
type Node struct {
	IDShort     string            `json:"idShort,omitempty"`
	Path        string            `json:"path,omitempty"`
	ModelType   string            `json:"modelType"`
	ValueType   string            `json:"valueType,omitempty"`
	SemanticID  string            `json:"semanticId,omitempty"`
	DisplayName map[string]string `json:"displayName,omitempty"`
	Description map[string]string `json:"description,omitempty"`
	SMT         *SMTQualifiers    `json:"smt,omitempty"`
	Children    []*Node           `json:"children,omitempty"`
	Items       *Node             `json:"items,omitempty"`
	Statements  []*Node           `json:"statements,omitempty"`
	Annotations []*Node           `json:"annotations,omitempty"`
	First       *Node             `json:"first,omitempty"`
	Second      *Node             `json:"second,omitempty"`
}

// SMTQualifiers carries the authoring-time qualifiers a template attaches to
// a node. All fields are optional; zero values mean "no constraint".
type SMTQualifiers struct {
	Cardinality       string        `json:"cardinality,omitempty"`
	EitherOr          string        `json:"either_or,omitempty"`
	AllowedValueRegex string        `json:"allowed_value_regex,omitempty"`
	AllowedRange      *AllowedRange `json:"allowed_range,omitempty"`
	FormChoices       []string      `json:"form_choices,omitempty"`
	RequiredLang      []string      `json:"required_lang,omitempty"`
	FormTitle         string        `json:"form_title,omitempty"`
	FormInfo          string        `json:"form_info,omitempty"`
	AllowedIDShort    []string      `json:"allowed_id_short,omitempty"`
	EditIDShort       *bool         `json:"edit_id_short,omitempty"`
	Naming            string        `json:"naming,omitempty"`
}

// AllowedRange is a numeric bound pair. Templates author it either as an
// object with explicit min/max or as a raw "min..max" string; a raw string
// that does not match that shape yields no bounds.
type AllowedRange struct {
	Min *float64
	Max *float64
}

var rawRangePattern = regexp.MustCompile(`^\s*(-?\d+(?:\.\d+)?)\s*\.\.\s*(-?\d+(?:\.\d+)?)\s*$`)

// UnmarshalJSON accepts both the object form {"min":0,"max":10} and the raw
// string form "0..10".
func (r *AllowedRange) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, `"`) {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("definition: allowed_range: %w", err)
		}
		*r = parseRawRange(raw)
		return nil
	}

	var obj struct {
		Min *json.Number `json:"min"`
		Max *json.Number `json:"max"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("definition: allowed_range: %w", err)
	}
	*r = AllowedRange{Min: numberToFloat(obj.Min), Max: numberToFloat(obj.Max)}
	return nil
}

func parseRawRange(raw string) AllowedRange {
	match := rawRangePattern.FindStringSubmatch(raw)
	if match == nil {
		return AllowedRange{}
	}
	min, errMin := strconv.ParseFloat(match[1], 64)
	max, errMax := strconv.ParseFloat(match[2], 64)
	if errMin != nil || errMax != nil {
		return AllowedRange{}
	}
	return AllowedRange{Min: &min, Max: &max}
}

func numberToFloat(n *json.Number) *float64 {
	if n == nil {
		return nil
	}
	value, err := n.Float64()
	if err != nil {
		return nil
	}
	return &value
}

// Qualifiers returns the node's SMT qualifiers, or an empty set when the
// template declares none. Callers can read fields without nil checks.
func (n *Node) Qualifiers() SMTQualifiers {
	if n == nil || n.SMT == nil {
		return SMTQualifiers{}
	}
	return *n.SMT
}
