package domain

import (
	"errors"
	"regexp"
)

// Rule identifies which validation rule a rejected mutation violated.
type Rule int

const (
	RuleRequired Rule = iota + 1
	RuleDuplicateName
	RuleMissingSelection
	RuleDuplicateOffering
	RuleIncompleteFields
	RuleEmailShape
)

func (r Rule) String() string {
	switch r {
	case RuleRequired:
		return "required"
	case RuleDuplicateName:
		return "duplicate_name"
	case RuleMissingSelection:
		return "missing_selection"
	case RuleDuplicateOffering:
		return "duplicate_offering"
	case RuleIncompleteFields:
		return "incomplete_fields"
	case RuleEmailShape:
		return "email_shape"
	default:
		return "unknown"
	}
}

// ValidationError rejects a proposed mutation. Message is shown to the user
// verbatim.
type ValidationError struct {
	Rule    Rule
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Invalid builds a ValidationError.
func Invalid(rule Rule, message string) *ValidationError {
	return &ValidationError{Rule: rule, Message: message}
}

// AsValidation unwraps err into a ValidationError when it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// notSpaceOrAt matches one character that is neither "@" nor whitespace,
// where whitespace includes the Unicode space separators.
const notSpaceOrAt = `[^\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}@]`

var emailPattern = regexp.MustCompile(`^` + notSpaceOrAt + `+@` + notSpaceOrAt + `+\.` + notSpaceOrAt + `+$`)

// ValidEmail reports whether s has the local@domain.tld shape.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}
