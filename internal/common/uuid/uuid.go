package uuid

import (
	"strings"

	"github.com/google/uuid"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/mafiad/internal/common/uuid Generator

// Generator produces room identifiers
type Generator interface {
	NewID() string
}

// DefaultGenerator produces random (version 4) UUIDs rendered as 32 hex digits
type DefaultGenerator struct{}

func New() *DefaultGenerator {
	return &DefaultGenerator{}
}

// NewID returns a new identifier without dashes
func (d *DefaultGenerator) NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
