package session

import "github.com/google/uuid"

// SessionStorage abstracts the browser sessionStorage the source reads
// dullahan_client_id from (spec §6.2); a real UI layer backs this with
// the DOM API, tests back it with an in-memory map.
type SessionStorage interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

const clientIDStorageKey = "dullahan_client_id"

// LoadOrCreateClientID reads the persisted client ID from storage,
// generating and persisting a fresh UUIDv4 if absent (spec §4.5
// "clientId is read from session storage or freshly generated (UUIDv4)
// and persisted").
func LoadOrCreateClientID(storage SessionStorage) string {
	if id, ok := storage.Get(clientIDStorageKey); ok && id != "" {
		return id
	}
	id := uuid.NewString()
	storage.Set(clientIDStorageKey, id)
	return id
}

// MemorySessionStorage is an in-memory SessionStorage, usable both in
// tests and as a fallback when no browser-equivalent storage exists.
type MemorySessionStorage struct {
	values map[string]string
}

func NewMemorySessionStorage() *MemorySessionStorage {
	return &MemorySessionStorage{values: make(map[string]string)}
}

func (s *MemorySessionStorage) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s *MemorySessionStorage) Set(key, value string) {
	s.values[key] = value
}
