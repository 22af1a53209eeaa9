// Package sessionstore 测验会话的键值存储。
// 进程内共享可变 map 容易在并发请求下互相覆盖，这里收敛成一个带 TTL 的显式接口，
// 配了 Redis 走 Redis，否则退回并发安全的内存实现。
package sessionstore

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("sessionstore: key not found")

type Store interface {
	// Put 写入并设置过期时间
	Put(ctx context.Context, key string, val []byte, ttl time.Duration) error

	// Get 不存在或已过期返回 ErrNotFound
	Get(ctx context.Context, key string) ([]byte, error)

	Delete(ctx context.Context, key string) error
}
