package task

import "strings"

// ValidateTitle is applied on create only; updates may set any title.
// The title is stored as given, surrounding whitespace included.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	return nil
}
