package store

import "github.com/MKhiriev/mentem-portal/internal/logger"

// Storages groups the repositories the services depend on.
type Storages struct {
	UserRepository UserRepository
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, log),
	}
}
