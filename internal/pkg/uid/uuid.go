package uid

import "github.com/google/uuid"

// UUID generates RFC 4122 UUID strings. Version 7 ids are preferred because
// they sort by creation time, which keeps log correlation readable.
type UUID struct{}

// NewUUID returns a UUID generator.
func NewUUID() *UUID {
	return &UUID{}
}

// Generate returns a new UUID string. When v7 generation fails it falls
// back to a random v4, which never errors.
func (u *UUID) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
