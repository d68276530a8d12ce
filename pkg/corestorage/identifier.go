package corestorage

import "github.com/google/uuid"

// canonicalUUIDLength is the length of the hyphenated 8-4-4-4-12 form.
const canonicalUUIDLength = 36

// IsValidIdentifier reports whether s is a volume or family identifier in
// canonical hyphenated UUID form. Identifiers are interpolated into diskutil
// argument vectors, so anything else is rejected.
func IsValidIdentifier(s string) bool {
	if len(s) != canonicalUUIDLength {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

func validateIdentifier(op, id string) error {
	if !IsValidIdentifier(id) {
		return &Error{
			Code:    CodeInvalidArgument,
			Op:      op,
			ID:      id,
			Message: "invalid identifier",
		}
	}
	return nil
}
