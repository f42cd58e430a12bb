// Package dochints resolves sidecar documentation hints for form fields.
// A hint payload arrives alongside a template version, keyed by normalized
// semantic id and by normalized id-short path; resolution prefers the
// semantic-id match. Hint text is externally authored and is sanitized
// before it reaches any rendered description.
package dochints
