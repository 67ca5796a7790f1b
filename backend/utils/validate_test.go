package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateName(t *testing.T) {
	assert.NoError(t, ValidateName("Ana María Pérez"))

	// Too short, too long.
	assert.Error(t, ValidateName("Ana"))
	assert.Error(t, ValidateName(string(make([]byte, 60))))

	// Digits are rejected regardless of length.
	err := ValidateName("Carlos 2ndo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "números")

	// Symbols beyond letters and spaces.
	assert.Error(t, ValidateName("Anita_Lopez"))
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("ana@example.com"))
	assert.Error(t, ValidateEmail(""))
	assert.Error(t, ValidateEmail("sin-arroba"))
	assert.Error(t, ValidateEmail("dos@@example.com "))

	long := make([]byte, 250)
	for i := range long {
		long[i] = 'a'
	}
	assert.Error(t, ValidateEmail(string(long)+"@example.com"))
}

func TestValidatePasswordPolicy(t *testing.T) {
	name := "Ana María Pérez"
	email := "ana@example.com"

	assert.NoError(t, ValidatePassword("Zx9!kqWr", name, email))

	cases := []struct {
		password string
		fragment string
	}{
		{"", "no puede estar vacío"},
		{"Zx9! kqWr", "espacios"},
		{"Zx9!k", "mínimo de 8"},
		{"Zx9!kqWrZx9!kqWr", "mínimo de 8"},
		{"Zx9kqWrt", "carácter especial"},
		{"zx9!kqwr", "mayúscula"},
		{"ZX9!KQWR", "minúscula"},
		{"Zxc!kqWr", "número"},
	}
	for _, tc := range cases {
		err := ValidatePassword(tc.password, name, email)
		require.Error(t, err, tc.password)
		assert.Contains(t, err.Error(), tc.fragment, tc.password)
	}
}

func TestValidatePasswordRejectsPersonalInfo(t *testing.T) {
	// Identical to the name: similarity 1.0, above the threshold, rejected
	// even though the password is otherwise well formed.
	err := ValidatePassword("AnaGomez1!", "AnaGomez1!", "otro@example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "información personal")

	// Identical to the email.
	err = ValidatePassword("Ab1!x@e.com", "Nombre Distinto", "ab1!x@e.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "información personal")
}

func TestSequenceSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, SequenceSimilarity("hola", "HOLA"), 0.001)
	assert.InDelta(t, 0.0, SequenceSimilarity("abcd", "wxyz"), 0.001)

	mid := SequenceSimilarity("programador", "programadora")
	assert.Greater(t, mid, 0.5)
	assert.Less(t, mid, 1.0)
}
