// Package uuid hides ID generation behind an interface so repositories can be tested
package uuid

//go:generate mockgen -destination=mock/mock.go -package=mockuuid -source=uuid.go

import (
	"github.com/google/uuid"
)

// Generator produces identifiers for stored character descriptions
type Generator interface {
	New() string
}

// GoogleUUIDGenerator implements Generator with random (v4) UUIDs
type GoogleUUIDGenerator struct{}

// New returns a fresh UUID string
func (g *GoogleUUIDGenerator) New() string {
	return uuid.NewString()
}

// NewGoogleUUIDGenerator creates a new GoogleUUIDGenerator
func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}

// IsValid reports whether id parses as a UUID
func IsValid(id string) bool {
	return uuid.Validate(id) == nil
}
