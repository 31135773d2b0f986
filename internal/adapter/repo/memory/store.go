package memory

import (
	"sync"

	"hexforge/internal/app/ports"
)

type Store struct {
	mu    sync.RWMutex
	maps  map[string]ports.MapRecord
	order []string
}

func NewStore() *Store {
	return &Store{
		maps: make(map[string]ports.MapRecord),
	}
}
