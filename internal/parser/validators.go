package parser

import (
	"strings"

	"github.com/leengari/mini-dataframe/internal/domain/errors"
)

// parseSeparator accepts a single character, or "tab" / `\t` for a tab
func parseSeparator(lit string) (byte, error) {
	switch {
	case strings.EqualFold(lit, "tab"), lit == `\t`:
		return '\t', nil
	case len(lit) == 1:
		return lit[0], nil
	default:
		return 0, &errors.InvalidArgumentError{Argument: "separator", Value: lit, Reason: "must be a single character"}
	}
}

// parseDirection maps asc/des/desc to a descending flag
func parseDirection(lit string) (bool, error) {
	switch strings.ToLower(lit) {
	case "asc":
		return false, nil
	case "des", "desc":
		return true, nil
	default:
		return false, &errors.InvalidArgumentError{Argument: "direction", Value: lit, Reason: "use asc or des"}
	}
}
