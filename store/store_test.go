package store

import (
	"context"
)

// memoryStorage implementa database.Storage em memória para os testes
type memoryStorage struct {
	data map[string]string
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{data: map[string]string{}}
}

func (m *memoryStorage) Get(ctx context.Context, key string) (string, error) {
	return m.data[key], nil
}

func (m *memoryStorage) Set(ctx context.Context, key string, value string) error {
	m.data[key] = value
	return nil
}
