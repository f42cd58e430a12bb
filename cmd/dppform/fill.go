package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	dppform "github.com/hadijannat/mini-dpp-platform-sub000"
	"github.com/hadijannat/mini-dpp-platform-sub000/pkg/definition"
	"github.com/hadijannat/mini-dpp-platform-sub000/pkg/dochints"
	"github.com/hadijannat/mini-dpp-platform-sub000/pkg/formdata"
	"github.com/hadijannat/mini-dpp-platform-sub000/pkg/uischema"
)

// fillInteractively prompts for every scalar field the rendering schema
// declares, walking objects depth-first in name order. Composite value
// shapes (language maps, ranges, references) are left to their seeded
// values; the console edits those with dedicated widgets, not a terminal
// prompt.
func fillInteractively(bundle *dppform.Bundle, data any) (any, error) {
	if bundle.Schema == nil {
		return data, nil
	}
	return fillObject(bundle, bundle.Schema, data, nil)
}

func fillObject(bundle *dppform.Bundle, schema *uischema.RenderingSchema, data any, path []string) (any, error) {
	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	current := data
	for _, name := range names {
		child := schema.Properties[name]
		childPath := append(append([]string(nil), path...), name)

		switch {
		case child == nil:
			continue
		case child.IsReadOnly():
			continue
		case child.Type == "object" && len(child.Properties) > 0:
			updated, err := fillObject(bundle, child, current, childPath)
			if err != nil {
				return nil, err
			}
			current = updated
		case isScalarSchema(child):
			value, err := promptScalar(bundle, child, childPath, current)
			if err != nil {
				return nil, err
			}
			current = formdata.WithValueAtPath(current, childPath, value)
		}
	}
	return current, nil
}

func isScalarSchema(schema *uischema.RenderingSchema) bool {
	if schema.MultiLanguage || schema.Range || schema.FileUpload || schema.Reference ||
		schema.Entity || schema.Relationship || schema.AnnotatedRelationship {
		return false
	}
	switch schema.Type {
	case "object", "array":
		return false
	default:
		return true
	}
}

func promptScalar(bundle *dppform.Bundle, schema *uischema.RenderingSchema, path []string, data any) (any, error) {
	label := dotPath(path)
	help := hintFor(bundle, path)

	if len(schema.Enum) > 0 {
		options := make([]string, 0, len(schema.Enum))
		for _, choice := range schema.Enum {
			options = append(options, fmt.Sprintf("%v", choice))
		}
		var selected string
		prompt := &survey.Select{Message: label, Options: options, Help: help}
		if err := survey.AskOne(prompt, &selected); err != nil {
			return nil, err
		}
		return selected, nil
	}

	switch schema.Type {
	case "boolean":
		var confirmed bool
		prompt := &survey.Confirm{Message: label, Help: help}
		if err := survey.AskOne(prompt, &confirmed); err != nil {
			return nil, err
		}
		return confirmed, nil
	case "number", "integer":
		var raw string
		prompt := &survey.Input{Message: label, Help: help}
		if err := survey.AskOne(prompt, &raw); err != nil {
			return nil, err
		}
		if raw == "" {
			return nil, nil
		}
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", label, err)
		}
		return parsed, nil
	default:
		existing := ""
		if value, ok := formdata.ValueAtPath(data, path); ok {
			if str, ok := value.(string); ok {
				existing = str
			}
		}
		var answer string
		prompt := &survey.Input{Message: label, Default: existing, Help: help}
		if err := survey.AskOne(prompt, &answer); err != nil {
			return nil, err
		}
		return answer, nil
	}
}

func hintFor(bundle *dppform.Bundle, path []string) string {
	if bundle.Hints == nil {
		return ""
	}
	node := nodeAtPath(bundle.Definition, path)
	hint, ok := dochints.Resolve(node, dotPath(path), bundle.Hints)
	if !ok {
		return ""
	}
	description, ok := dochints.BuildDescription(hint)
	if !ok {
		return ""
	}
	return description
}

func nodeAtPath(root *definition.Node, path []string) *definition.Node {
	current := root
	for _, segment := range path {
		if current == nil {
			return nil
		}
		if _, err := strconv.Atoi(segment); err == nil {
			current = current.Items
			continue
		}
		current = childByIDShort(current, segment)
	}
	return current
}

func childByIDShort(node *definition.Node, idShort string) *definition.Node {
	for _, child := range node.Children {
		if child != nil && child.IDShort == idShort {
			return child
		}
	}
	return nil
}

func dotPath(path []string) string {
	return strings.Join(path, ".")
}
