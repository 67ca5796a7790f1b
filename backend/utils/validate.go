package utils

import (
	"errors"
	"regexp"
	"strings"
	"unicode"

	"github.com/xrash/smetrics"
)

const (
	NameMinLen     = 5
	NameMaxLen     = 50
	EmailMaxLen    = 254
	PasswordMinLen = 8
	PasswordMaxLen = 12
	// A candidate password closer than this to the user's name or email is
	// considered personal information and rejected.
	SimilarityThreshold = 0.5
)

var (
	emailPattern       = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	specialCharPattern = regexp.MustCompile("[!@#$%^&*()\\-_=+{};:,<.>/?\\[\\]'\"`~\\\\|]")
)

// ValidateName checks length bounds and charset. Rules are checked in a fixed
// order and the first violation wins.
func ValidateName(name string) error {
	if len(name) < NameMinLen || len(name) > NameMaxLen {
		return errors.New("Por favor, ingrese un nombre válido con longitud de 5 a 50 caracteres")
	}
	for _, r := range name {
		if unicode.IsDigit(r) {
			return errors.New("Por favor, evite incluir números en el nombre")
		}
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsSpace(r) {
			return errors.New("Por favor, utilice únicamente letras y espacios en el nombre")
		}
	}
	return nil
}

// ValidateEmail checks presence, length and well-formedness.
func ValidateEmail(email string) error {
	if email == "" {
		return errors.New("Por favor, asegúrate de ingresar tu correo electrónico. Este campo no puede estar vacío")
	}
	if len(email) > EmailMaxLen {
		return errors.New("Por favor, ingrese un correo válido con un máximo de 254 caracteres")
	}
	if !emailPattern.MatchString(email) {
		return errors.New("Por favor, verifica que el correo esté escrito correctamente debido a que has ingresado uno no válido")
	}
	return nil
}

// ValidatePassword enforces the password policy: length bounds, no spaces,
// all four character classes, and no similarity with the owner's name or
// email beyond the threshold.
func ValidatePassword(password, name, email string) error {
	if password == "" {
		return errors.New("Por favor, asegúrate de ingresar tu contraseña. Este campo no puede estar vacío")
	}
	if strings.Contains(password, " ") {
		return errors.New("Por favor, asegurate que tu contraseña no contenga espacios")
	}
	if len(password) < PasswordMinLen || len(password) > PasswordMaxLen {
		return errors.New("Por favor, ingresa una contraseña con un mínimo de 8 caracteres y un máximo de 12 caracteres")
	}
	if !specialCharPattern.MatchString(password) {
		return errors.New("Por favor, asegúrate de incluir al menos un carácter especial en tu contraseña")
	}
	if !strings.ContainsFunc(password, unicode.IsUpper) {
		return errors.New("Por favor, asegúrate de incluir al menos una letra mayúscula en tu contraseña")
	}
	if !strings.ContainsFunc(password, unicode.IsLower) {
		return errors.New("Por favor, asegúrate de incluir al menos una letra minúscula en tu contraseña")
	}
	if !strings.ContainsFunc(password, unicode.IsDigit) {
		return errors.New("Por favor, asegúrate de incluir al menos un número en tu contraseña")
	}
	if SequenceSimilarity(name, password) > SimilarityThreshold ||
		SequenceSimilarity(email, password) > SimilarityThreshold {
		return errors.New("Por favor, elige una contraseña que no contenga información personal")
	}
	return nil
}

// SequenceSimilarity returns a ratio in [0, 1] between two strings, case
// insensitive. Computed from the Levenshtein distance with substitutions
// costing as much as a delete plus an insert, so identical strings score 1
// and disjoint strings 0.
func SequenceSimilarity(a, b string) float64 {
	a = strings.ToLower(a)
	b = strings.ToLower(b)
	total := len(a) + len(b)
	if total == 0 {
		return 1
	}
	dist := smetrics.WagnerFischer(a, b, 1, 1, 2)
	return 1 - float64(dist)/float64(total)
}
