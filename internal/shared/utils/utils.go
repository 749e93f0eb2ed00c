package utils

import (
	"strings"

	"github.com/google/uuid"
)

// ParseUUID returns uuid.Nil for blank or malformed input.
func ParseUUID(s string) (uuid.UUID, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(s)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}
