package validation

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/hadijannat/mini-dpp-platform-sub000/pkg/uischema"
)

// idShortPolicy is the compiled dynamic-key policy for one object schema
// node. Dynamic keys are entries in the data mapping beyond the schema's
// declared properties; templates constrain them three ways, checked in
// this order of precedence.
type idShortPolicy struct {
	editForbidden bool
	templates     []*regexp.Regexp
	naming        *regexp.Regexp
}

var (
	placeholderPattern = regexp.MustCompile(`\{\d+\}`)
	idShortNamePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*$`)
)

// compileIDShortPolicy returns nil when the schema declares no dynamic-key
// policy at all; in that case dynamic keys are unconstrained.
func compileIDShortPolicy(schema *uischema.RenderingSchema) *idShortPolicy {
	if schema == nil {
		return nil
	}

	if schema.EditIDShort != nil && !*schema.EditIDShort {
		return &idShortPolicy{editForbidden: true}
	}

	if len(schema.AllowedIDShort) > 0 {
		policy := &idShortPolicy{}
		for _, template := range schema.AllowedIDShort {
			if compiled := compileIDShortTemplate(template); compiled != nil {
				policy.templates = append(policy.templates, compiled)
			}
		}
		if len(policy.templates) > 0 {
			return policy
		}
	}

	if naming := strings.TrimSpace(schema.Naming); naming != "" && naming != "dynamic" {
		if compiled := compileNamingRule(naming); compiled != nil {
			return &idShortPolicy{naming: compiled}
		}
	}

	return nil
}

// compileIDShortTemplate turns a naming template such as "PCF{00}" into an
// anchored regular expression where each zero-padded placeholder matches a
// fixed-width digit run.
func compileIDShortTemplate(template string) *regexp.Regexp {
	trimmed := strings.TrimSpace(template)
	if trimmed == "" {
		return nil
	}

	var expr strings.Builder
	expr.WriteString("^")
	remaining := trimmed
	for {
		loc := placeholderPattern.FindStringIndex(remaining)
		if loc == nil {
			expr.WriteString(regexp.QuoteMeta(remaining))
			break
		}
		expr.WriteString(regexp.QuoteMeta(remaining[:loc[0]]))
		width := loc[1] - loc[0] - 2
		expr.WriteString(`\d{` + strconv.Itoa(width) + `}`)
		remaining = remaining[loc[1]:]
	}
	expr.WriteString("$")
	return compilePattern(expr.String())
}

func compileNamingRule(rule string) *regexp.Regexp {
	switch {
	case rule == "idShort":
		return idShortNamePattern
	case strings.HasPrefix(rule, "regex:"):
		return compilePattern(strings.TrimPrefix(rule, "regex:"))
	default:
		return compilePattern(rule)
	}
}

// check returns a message for a dynamic key violating the policy, or "".
func (p *idShortPolicy) check(key string) string {
	if p == nil {
		return ""
	}
	if p.editForbidden {
		return "id-short " + key + " is not editable"
	}
	if len(p.templates) > 0 {
		for _, template := range p.templates {
			if template.MatchString(key) {
				return ""
			}
		}
		return "id-short " + key + " is not allowed"
	}
	if p.naming != nil && !p.naming.MatchString(key) {
		return "id-short " + key + " violates naming rule"
	}
	return ""
}
