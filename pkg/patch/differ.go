package patch

import (
	"strconv"

	"github.com/hadijannat/mini-dpp-platform-sub000/pkg/definition"
	"github.com/hadijannat/mini-dpp-platform-sub000/pkg/formdata"
)

// BuildPatchOperations walks two data snapshots in lock-step with the
// definition tree and emits the ordered delta from current to next.
//
// Root elements absent from next are skipped entirely: the differ describes
// forward changes present in the edited snapshot and never emits deletions
// of whole root fields. Whole-root deletion is unsupported by the patch
// protocol; flagged for product clarification rather than inferred here.
func BuildPatchOperations(root *definition.Node, current, next any) []Operation {
	if root == nil {
		return nil
	}
	nextMap, ok := next.(map[string]any)
	if !ok {
		return nil
	}
	currentMap, _ := current.(map[string]any)

	var ops []Operation
	for _, element := range root.Children {
		if element == nil || element.IDShort == "" {
			continue
		}
		nextValue, ok := nextMap[element.IDShort]
		if !ok {
			continue
		}
		ops = append(ops, diffNode(element, currentMap[element.IDShort], nextValue, element.IDShort)...)
	}
	return ops
}

func diffNode(node *definition.Node, current, next any, path string) []Operation {
	switch node.ModelType {
	case definition.ModelTypeSubmodelElementCollection:
		return diffCollection(node, current, next, path)
	case definition.ModelTypeSubmodelElementList:
		return diffList(node, current, next, path)
	case definition.ModelTypeMultiLanguageProperty:
		return diffMultiLang(current, next, path)
	case definition.ModelTypeFile, definition.ModelTypeBlob:
		return diffFile(current, next, path)
	default:
		// Properties and every other kind, known or not, diff as one raw
		// set_value when the snapshots disagree.
		if formdata.DeepEqual(current, next) {
			return nil
		}
		return []Operation{{Op: OpSetValue, Path: path, Value: next}}
	}
}

func diffCollection(node *definition.Node, current, next any, path string) []Operation {
	nextMap, ok := next.(map[string]any)
	if !ok {
		return nil
	}
	currentMap, _ := current.(map[string]any)

	var ops []Operation
	for _, child := range node.Children {
		if child == nil || child.IDShort == "" {
			continue
		}
		nextValue, ok := nextMap[child.IDShort]
		if !ok {
			continue
		}
		ops = append(ops, diffNode(child, currentMap[child.IDShort], nextValue, path+"/"+child.IDShort)...)
	}
	return ops
}

// diffList emits removals for trailing indices in descending order, then
// in-place updates for the shared prefix in ascending order, then
// additions in ascending order. Descending removal keeps repeated removals
// valid against a server-side list without index renumbering surprises.
func diffList(node *definition.Node, current, next any, path string) []Operation {
	nextSeq, ok := next.([]any)
	if !ok {
		return nil
	}
	currentSeq, _ := current.([]any)

	var ops []Operation
	for index := len(currentSeq) - 1; index >= len(nextSeq); index-- {
		removed := index
		ops = append(ops, Operation{Op: OpRemoveListItem, Path: path, Index: &removed})
	}

	shared := len(nextSeq)
	if len(currentSeq) < shared {
		shared = len(currentSeq)
	}
	for index := 0; index < shared; index++ {
		if node.Items == nil {
			if !formdata.DeepEqual(currentSeq[index], nextSeq[index]) {
				ops = append(ops, Operation{Op: OpSetValue, Path: path + "/" + strconv.Itoa(index), Value: nextSeq[index]})
			}
			continue
		}
		ops = append(ops, diffNode(node.Items, currentSeq[index], nextSeq[index], path+"/"+strconv.Itoa(index))...)
	}

	for index := shared; index < len(nextSeq); index++ {
		ops = append(ops, Operation{Op: OpAddListItem, Path: path, Value: wrapListElement(nextSeq[index])})
	}
	return ops
}

// wrapListElement carries mapping elements raw and wraps scalars so the
// server always receives an object payload.
func wrapListElement(element any) any {
	if _, ok := element.(map[string]any); ok {
		return element
	}
	return map[string]any{"value": element}
}

// diffMultiLang emits the full next language map in one operation; the
// protocol has no per-language delta.
func diffMultiLang(current, next any, path string) []Operation {
	nextMap, ok := next.(map[string]any)
	if !ok {
		return nil
	}
	if formdata.DeepEqual(current, nextMap) {
		return nil
	}
	return []Operation{{Op: OpSetMultiLang, Path: path, Value: nextMap}}
}

// diffFile renames the stored value field to url in the emitted operation,
// matching the upload API's contract.
func diffFile(current, next any, path string) []Operation {
	nextMap, ok := next.(map[string]any)
	if !ok {
		return nil
	}
	if formdata.DeepEqual(current, nextMap) {
		return nil
	}
	value := map[string]any{
		"contentType": nextMap["contentType"],
		"url":         nextMap["value"],
	}
	return []Operation{{Op: OpSetFileRef, Path: path, Value: value}}
}
