package utils

import (
	"github.com/google/uuid"
)

// GenerateUUIDString returns a random (v4) UUID in canonical form.
func GenerateUUIDString() string {
	return uuid.New().String()
}
