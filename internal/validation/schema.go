// Package validation holds the declarative form schemas the admin UI
// submits against. Validation runs before anything reaches a
// repository; it is pure and has no storage dependency.
package validation

import (
	"net/mail"
	"net/url"
	"regexp"
	"unicode/utf8"
)

// Rule checks one field value and returns an error message, or "" when
// the value passes.
type Rule func(value string) string

// CrossRule checks a relationship between fields. On failure it names
// the field the message belongs to.
type CrossRule func(values map[string]string) (field, message string)

// Field binds a form field name to its ordered rules. The first failing
// rule's message is reported.
type Field struct {
	Name  string
	Rules []Rule
}

// Schema is the full rule set for one form.
type Schema struct {
	Fields []Field
	Cross  []CrossRule
}

// Validate runs the schema against the submitted values and returns a
// field → message map. An empty map means the form passes.
func (s Schema) Validate(values map[string]string) map[string]string {
	errs := make(map[string]string)
	for _, f := range s.Fields {
		v := values[f.Name]
		for _, rule := range f.Rules {
			if msg := rule(v); msg != "" {
				errs[f.Name] = msg
				break
			}
		}
	}
	for _, cross := range s.Cross {
		if field, msg := cross(values); msg != "" {
			if _, taken := errs[field]; !taken {
				errs[field] = msg
			}
		}
	}
	return errs
}

// ValidatePartial runs only the rules for fields present in values. Edit
// forms that submit a subset of fields validate what they send; absent
// fields keep their stored values and are not re-checked.
func (s Schema) ValidatePartial(values map[string]string) map[string]string {
	errs := make(map[string]string)
	for _, f := range s.Fields {
		v, ok := values[f.Name]
		if !ok {
			continue
		}
		for _, rule := range f.Rules {
			if msg := rule(v); msg != "" {
				errs[f.Name] = msg
				break
			}
		}
	}
	return errs
}

// Required fails on the empty string.
func Required(message string) Rule {
	return func(v string) string {
		if v == "" {
			return message
		}
		return ""
	}
}

// MinLen fails when the value is shorter than n runes.
func MinLen(n int, message string) Rule {
	return func(v string) string {
		if utf8.RuneCountInString(v) < n {
			return message
		}
		return ""
	}
}

// MaxLen fails when the value is longer than n runes. Empty values pass.
func MaxLen(n int, message string) Rule {
	return func(v string) string {
		if utf8.RuneCountInString(v) > n {
			return message
		}
		return ""
	}
}

// OptionalURL passes the empty string, otherwise requires an absolute URL.
func OptionalURL(message string) Rule {
	return func(v string) string {
		if v == "" {
			return ""
		}
		parsed, err := url.Parse(v)
		if err != nil || !parsed.IsAbs() || parsed.Host == "" {
			return message
		}
		return ""
	}
}

// Pattern fails when the value does not match the expression.
func Pattern(re *regexp.Regexp, message string) Rule {
	return func(v string) string {
		if !re.MatchString(v) {
			return message
		}
		return ""
	}
}

// Email requires an RFC 5322 address.
func Email(message string) Rule {
	return func(v string) string {
		if _, err := mail.ParseAddress(v); err != nil {
			return message
		}
		return ""
	}
}

// FieldsEqual adds a cross-field equality check, reporting on the
// second field.
func FieldsEqual(a, b, message string) CrossRule {
	return func(values map[string]string) (string, string) {
		if values[a] != values[b] {
			return b, message
		}
		return b, ""
	}
}
