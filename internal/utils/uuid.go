package utils

import "github.com/google/uuid"

// UUIDGenerator produces string identifiers. The zero value yields
// time-ordered UUIDv7 values; NewRandomUUIDGenerator yields UUIDv4.
type UUIDGenerator struct {
	random bool
}

// NewUUIDGenerator returns a generator of time-ordered ids, used for
// database keys.
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// NewRandomUUIDGenerator returns a generator of random ids, used for chat
// session ids that must not reveal their creation time.
func NewRandomUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{random: true}
}

func (g *UUIDGenerator) Generate() string {
	if g.random {
		return uuid.NewString()
	}

	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
