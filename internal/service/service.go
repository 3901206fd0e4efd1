package service

import (
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-notebook/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Entries *EntryStore
}

// NewService creates a new Service with the given storage.
func NewService(store *storage.Storage, logger *logrus.Logger) *Service {
	return &Service{
		Entries: NewEntryStore(store, logger),
	}
}
