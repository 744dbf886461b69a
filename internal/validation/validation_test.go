package validation

import (
	"errors"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharath018/event-registration-backend/internal/apperrors"
)

type sample struct {
	FullName string `json:"fullName" binding:"required,min=2"`
	CPF      string `json:"cpf" binding:"required,cpf"`
	IsMinor  string `json:"isMinor" binding:"required,oneof=sim nao"`
}

func TestValidCPF(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"12345678909", true},
		{"123.456.789-09", true},
		{"123.456.789", false},
		{"1234567890a", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidCPF(tt.in))
		})
	}
}

func TestTranslateBindingErrors(t *testing.T) {
	Register()

	err := binding.Validator.ValidateStruct(&sample{FullName: "A", CPF: "123", IsMinor: "talvez"})
	require.Error(t, err)

	out := Translate(err)
	var verr *apperrors.ValidationError
	require.True(t, errors.As(out, &verr))

	fields := map[string]string{}
	for _, f := range verr.Fields {
		fields[f.Field] = f.Message
	}
	assert.Equal(t, "must be at least 2 characters", fields["fullName"])
	assert.Equal(t, "must contain 11 digits", fields["cpf"])
	assert.Equal(t, "must be one of [sim nao]", fields["isMinor"])
}

func TestTranslatePassesNil(t *testing.T) {
	assert.NoError(t, Translate(nil))
}
