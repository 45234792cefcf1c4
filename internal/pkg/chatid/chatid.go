// Package chatid validates chat identifiers, which are 24-character
// hexadecimal strings (the textual form of a MongoDB ObjectID).
package chatid

import (
	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
)

const (
	strictPattern = `\A[0-9A-Fa-f]{24}\z`
	loosePattern  = `[0-9A-Fa-f]{24}`
)

type Validator struct {
	re *regexp2.Regexp
}

// NewValidator returns a Validator. A strict validator accepts exactly 24 hex
// characters. A loose one accepts any string containing such a run, which is
// what older clients were allowed to send.
func NewValidator(strict bool) *Validator {
	pattern := loosePattern
	if strict {
		pattern = strictPattern
	}

	return &Validator{
		re: regexp2.MustCompile(pattern, regexp2.None),
	}
}

func (v *Validator) IsValid(id string) bool {
	ok, err := v.re.MatchString(id)
	return err == nil && ok
}

// Rule adapts the validator to ozzo-validation.
func (v *Validator) Rule() validation.Rule {
	return validation.NewStringRule(v.IsValid, "must be a 24-character hexadecimal id")
}
