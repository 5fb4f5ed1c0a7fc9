package store

import "github.com/yourname/wellnesstracker/internal"

func NewMemoryRepositories(logger internal.Logger) (UserRepository, WellnessLogRepository) {
	store := NewMemoryStore(logger)
	return store, store
}

func NewPostgresRepositories(dsn string, logger internal.Logger) (UserRepository, WellnessLogRepository, error) {
	store, err := NewPostgresStore(dsn, logger)
	if err != nil {
		return nil, nil, err
	}
	return store, store, nil
}
