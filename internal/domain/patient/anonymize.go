package patient

import (
	"strings"

	"github.com/google/uuid"
)

// fixedMask is returned for contacts too short to partially reveal.
const fixedMask = "******"

// NewAnonymizedName produces a display token like "Patient-3FA81C02":
// a fixed prefix plus 8 uppercase hex characters from a random UUID.
// 32 bits of suffix entropy makes collisions negligible without any
// uniqueness check against storage.
func NewAnonymizedName() string {
	suffix := strings.ToUpper(uuid.New().String()[:8])
	return "Patient-" + suffix
}

// MaskContact hides all but the last 4 characters of a contact string.
// Contacts of 4 characters or fewer get the fixed mask so their length
// leaks nothing.
func MaskContact(raw string) string {
	if len(raw) > 4 {
		return strings.Repeat("*", len(raw)-4) + raw[len(raw)-4:]
	}
	return fixedMask
}
