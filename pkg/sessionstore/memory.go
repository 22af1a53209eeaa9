package sessionstore

import (
	"context"
	"time"

	cmap "github.com/orcaman/concurrent-map/v2"
)

type memoryItem struct {
	val      []byte
	expireAt time.Time
}

// MemoryStore 内存实现，单进程部署时的默认选择
type MemoryStore struct {
	items cmap.ConcurrentMap[string, memoryItem]
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{
		items: cmap.New[memoryItem](),
	}
	go s.janitor()
	return s
}

func (s *MemoryStore) Put(_ context.Context, key string, val []byte, ttl time.Duration) error {
	s.items.Set(key, memoryItem{
		val:      val,
		expireAt: time.Now().Add(ttl),
	})
	return nil
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	item, ok := s.items.Get(key)
	if !ok {
		return nil, ErrNotFound
	}
	if time.Now().After(item.expireAt) {
		s.items.Remove(key)
		return nil, ErrNotFound
	}
	return item.val, nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.items.Remove(key)
	return nil
}

// janitor 定期清理过期会话，防止长时间运行后内存涨上去
func (s *MemoryStore) janitor() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		now := time.Now()
		for kv := range s.items.IterBuffered() {
			if now.After(kv.Val.expireAt) {
				s.items.Remove(kv.Key)
			}
		}
	}
}
