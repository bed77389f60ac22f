package utils

import "strings"

// NormalizeCardNumber strips the spaces customers type between digit groups.
func NormalizeCardNumber(raw string) string {
	return strings.ReplaceAll(raw, " ", "")
}

// MaskCardNumber keeps only the last four characters of a card number.
// Numbers shorter than four characters are masked entirely.
func MaskCardNumber(raw string) string {
	digits := []rune(NormalizeCardNumber(raw))
	if len(digits) < 4 {
		return "****"
	}
	return "**** **** **** " + string(digits[len(digits)-4:])
}
