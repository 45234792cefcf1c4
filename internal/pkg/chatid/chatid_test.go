package chatid

import (
	"testing"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/stretchr/testify/assert"
)

func TestValidator_IsValid(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		strict bool
		loose  bool
	}{
		{name: "object id", id: "65f1a2b3c4d5e6f708192a3b", strict: true, loose: true},
		{name: "upper case", id: "65F1A2B3C4D5E6F708192A3B", strict: true, loose: true},
		{name: "too short", id: "abc", strict: false, loose: false},
		{name: "empty", id: "", strict: false, loose: false},
		{name: "23 chars", id: "65f1a2b3c4d5e6f708192a3", strict: false, loose: false},
		{name: "25 chars", id: "65f1a2b3c4d5e6f708192a3bc", strict: false, loose: true},
		{name: "prefixed", id: "chat-65f1a2b3c4d5e6f708192a3b", strict: false, loose: true},
		{name: "trailing newline", id: "65f1a2b3c4d5e6f708192a3b\n", strict: false, loose: true},
		{name: "non hex", id: "65f1a2b3c4d5e6f708192a3z", strict: false, loose: false},
	}

	strict := NewValidator(true)
	loose := NewValidator(false)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.strict, strict.IsValid(tt.id), "strict")
			assert.Equal(t, tt.loose, loose.IsValid(tt.id), "loose")
		})
	}
}

func TestValidator_Rule(t *testing.T) {
	v := NewValidator(true)

	assert.NoError(t, validation.Validate("65f1a2b3c4d5e6f708192a3b", v.Rule()))
	assert.Error(t, validation.Validate("abc", v.Rule()))
	// Empty values are left to validation.Required.
	assert.NoError(t, validation.Validate("", v.Rule()))
}
