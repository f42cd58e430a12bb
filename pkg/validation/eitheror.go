package validation

import (
	"fmt"
	"sort"

	"github.com/hadijannat/mini-dpp-platform-sub000/pkg/definition"
	"github.com/hadijannat/mini-dpp-platform-sub000/pkg/formdata"
)

// ValidateEitherOr enforces the either_or qualifier: all nodes sharing a
// group tag form one group, and the group is satisfied when any member
// holds a non-empty value anywhere its pattern path matches, repeated list
// contexts included. Each failing group yields one message
// naming the tag. No tagged nodes, no messages.
func ValidateEitherOr(root *definition.Node, data any) []string {
	groups := collectEitherOrGroups(root)
	if len(groups) == 0 {
		return nil
	}

	tags := make([]string, 0, len(groups))
	for tag := range groups {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	rootIDShort := ""
	if root != nil {
		rootIDShort = root.IDShort
	}

	var messages []string
	for _, tag := range tags {
		if eitherOrSatisfied(groups[tag], rootIDShort, data) {
			continue
		}
		messages = append(messages, fmt.Sprintf("either-or group %q requires at least one value", tag))
	}
	return messages
}

func eitherOrSatisfied(members []*definition.Node, rootIDShort string, data any) bool {
	for _, member := range members {
		segments := definition.PathSegments(member.Path, rootIDShort)
		for _, value := range formdata.ValuesAtPattern(data, segments) {
			if !formdata.IsEmptyValue(value) {
				return true
			}
		}
	}
	return false
}

func collectEitherOrGroups(root *definition.Node) map[string][]*definition.Node {
	groups := make(map[string][]*definition.Node)
	var walk func(node *definition.Node)
	walk = func(node *definition.Node) {
		if node == nil {
			return
		}
		if tag := node.Qualifiers().EitherOr; tag != "" {
			groups[tag] = append(groups[tag], node)
		}
		for _, child := range node.Children {
			walk(child)
		}
		walk(node.Items)
	}
	walk(root)
	return groups
}
