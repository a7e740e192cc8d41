// Package core provides the work-log domain types and parsing utilities.
//
// This file contains the numeric-input parser used at the entry boundary
// for hours and advance amounts.
package core

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseAmount converts a user-supplied decimal string to a positive float.
//
// It accepts both dot (12.5) and comma (12,5) decimal separators. Signs,
// empty input, non-numeric characters, zero and negative values are all
// rejected with ErrInvalidAmount, so a refused parse never reaches storage.
//
// Examples:
//
//	ParseAmount("7.5")  -> 7.5, nil
//	ParseAmount("7,5")  -> 7.5, nil
//	ParseAmount("0")    -> 0, ErrInvalidAmount
//	ParseAmount("-3")   -> 0, ErrInvalidAmount
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	// Normalize decimal comma to dot
	s = strings.ReplaceAll(s, ",", ".")
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		// Only unsigned positive values allowed
		return 0, ErrInvalidAmount
	}
	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0, ErrInvalidAmount
	}
	for _, part := range parts {
		for _, r := range part {
			if !unicode.IsDigit(r) {
				return 0, ErrInvalidAmount
			}
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	if v <= 0 {
		return 0, ErrInvalidAmount
	}
	return v, nil
}
