package sessionstore

import (
	"LexNote/config"
	"LexNote/pkg/log"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// NewStore 根据配置选择实现
func NewStore(conf *config.Config) Store {
	if conf.Redis.Enabled() {
		client := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", conf.Redis.Address, conf.Redis.Port),
			Username: conf.Redis.Username,
			Password: conf.Redis.Password,
			DB:       conf.Redis.Database,
		})
		log.L.Info("quiz session store: redis")
		return NewRedisStore(client)
	}
	log.L.Info("quiz session store: memory")
	return NewMemoryStore()
}
