package lyrics

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseSelection turns a 1-based choice into a 0-based index.
// Non-numeric input and numbers outside 1..count fail with ErrInput.
func ParseSelection(raw string, count int) (int, error) {
	raw = strings.TrimSpace(raw)

	choice, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInput, raw)
	}

	if choice < 1 || choice > count {
		return 0, fmt.Errorf("%w: %d is out of range 1-%d", ErrInput, choice, count)
	}

	return choice - 1, nil
}

// IsCancel reports whether the input asks to leave the current list.
func IsCancel(raw string) bool {
	return strings.EqualFold(strings.TrimSpace(raw), CancelKey)
}

// ParseYesNo accepts y/yes and n/no; an empty answer means no.
func ParseYesNo(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "y", "yes":
		return true, nil
	case "n", "no", "":
		return false, nil
	default:
		return false, fmt.Errorf("%w: answer y or n", ErrInput)
	}
}

// CancelKey is the input that cancels a selection.
const CancelKey = "q"
