package definition

// Kind predicates over a node's declared modelType. All are total: a nil
// node or an unrecognized modelType satisfies none of them.

func IsProperty(n *Node) bool              { return n != nil && n.ModelType == ModelTypeProperty }
func IsMultiLanguageProperty(n *Node) bool { return n != nil && n.ModelType == ModelTypeMultiLanguageProperty }
func IsRange(n *Node) bool                 { return n != nil && n.ModelType == ModelTypeRange }
func IsFile(n *Node) bool                  { return n != nil && n.ModelType == ModelTypeFile }
func IsBlob(n *Node) bool                  { return n != nil && n.ModelType == ModelTypeBlob }
func IsReferenceElement(n *Node) bool      { return n != nil && n.ModelType == ModelTypeReferenceElement }
func IsEntity(n *Node) bool                { return n != nil && n.ModelType == ModelTypeEntity }
func IsCollection(n *Node) bool            { return n != nil && n.ModelType == ModelTypeSubmodelElementCollection }
func IsList(n *Node) bool                  { return n != nil && n.ModelType == ModelTypeSubmodelElementList }

func IsRelationshipElement(n *Node) bool {
	return n != nil && n.ModelType == ModelTypeRelationshipElement
}

func IsAnnotatedRelationshipElement(n *Node) bool {
	return n != nil && n.ModelType == ModelTypeAnnotatedRelationshipElement
}

// IsReadOnlyType reports whether the node's kind is one the form never lets
// users edit directly: blobs and the operational/event kinds.
func IsReadOnlyType(n *Node) bool {
	if n == nil {
		return false
	}
	switch n.ModelType {
	case ModelTypeBlob, ModelTypeOperation, ModelTypeCapability, ModelTypeBasicEventElement:
		return true
	default:
		return false
	}
}
