package storage

import (
	"LexNote/config"
	"LexNote/pkg/log"

	"go.uber.org/zap"
)

// NewStorage 配了 OSS 用 OSS，否则本地磁盘
func NewStorage(conf *config.Config) Storage {
	if conf.Oss.Enabled() {
		log.L.Info("worksheet storage: oss", zap.String("bucket", conf.Oss.Bucket))
		return NewOssStorage(conf.Oss)
	}

	root := conf.Upload.Root()
	s, err := NewLocalStorage(root)
	if err != nil {
		log.L.Fatal("failed to init local storage", zap.String("dir", root), zap.Error(err))
	}
	log.L.Info("worksheet storage: local", zap.String("dir", root))
	return s
}
