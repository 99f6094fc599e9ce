package postgres

import (
	"fmt"

	"github.com/google/uuid"
)

// IsUUID validates if the given string is a valid UUID.
func IsUUID(u string) error {
	if u == "" {
		return fmt.Errorf("%w: UUID cannot be empty", ErrInvalidUUID)
	}

	_, err := uuid.Parse(u)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidUUID, err)
	}

	return nil
}

// ValidateUUIDs validates a list of UUID strings.
func ValidateUUIDs(ids []string) error {
	for _, id := range ids {
		if err := IsUUID(id); err != nil {
			return err
		}
	}
	return nil
}
