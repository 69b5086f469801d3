package validation

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

// ======================================================
// Primitivas de validação por campo
// ======================================================

var emailRegex = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@(.+)$`)

func NotBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return true
		}
	}
	return false
}

func LengthBetween(s string, min, max int) bool {
	n := utf8.RuneCountInString(s)
	return n >= min && n <= max
}

func MaxLength(s string, max int) bool {
	return utf8.RuneCountInString(s) <= max
}

// LettersOnly aceita letras (com acentos) e espaços
func LettersOnly(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && r != ' ' {
			return false
		}
	}
	return true
}

func DigitsOnly(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func ValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}
