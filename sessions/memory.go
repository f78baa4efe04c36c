// file: sessions/memory.go
package sessions

import (
	"context"
	"sync"
	"time"

	"github.com/hemanthrajvardhan/ctf/utils"
)

type memoryEntry struct {
	userID    uint32
	expiresAt time.Time
}

// MemoryStore 进程内会话存储，未配置 Redis 时的兜底实现，也用于测试
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (s *MemoryStore) Create(_ context.Context, userID uint32, ttl time.Duration) (string, error) {
	token := utils.GenerateSessionToken()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked()
	s.entries[token] = memoryEntry{userID: userID, expiresAt: s.now().Add(ttl)}
	return token, nil
}

func (s *MemoryStore) Get(_ context.Context, token string) (uint32, error) {
	s.mu.RLock()
	entry, ok := s.entries[token]
	s.mu.RUnlock()
	if !ok {
		return 0, ErrNotFound
	}
	if s.now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.entries, token)
		s.mu.Unlock()
		return 0, ErrNotFound
	}
	return entry.userID, nil
}

func (s *MemoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, token)
	return nil
}

// sweepLocked 顺手清理过期条目，调用方须持有写锁
func (s *MemoryStore) sweepLocked() {
	now := s.now()
	for token, entry := range s.entries {
		if now.After(entry.expiresAt) {
			delete(s.entries, token)
		}
	}
}
