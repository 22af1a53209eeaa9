package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
)

// LocalStorage 本地磁盘实现，目录固定，文件名永远用服务端生成的
type LocalStorage struct {
	root string
}

var _ Storage = (*LocalStorage)(nil)

func NewLocalStorage(root string) (*LocalStorage, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &LocalStorage{root: root}, nil
}

func (s *LocalStorage) path(filename string) string {
	// filename 是服务端生成的 uuid 名，Base 再兜一层，杜绝路径穿越
	return filepath.Join(s.root, filepath.Base(filename))
}

func (s *LocalStorage) Save(_ context.Context, filename string, r io.Reader) error {
	f, err := os.Create(s.path(filename))
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(f, r)
	return err
}

func (s *LocalStorage) Open(_ context.Context, filename string) (io.ReadCloser, error) {
	return os.Open(s.path(filename))
}

func (s *LocalStorage) Remove(_ context.Context, filename string) error {
	err := os.Remove(s.path(filename))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (s *LocalStorage) Copy(_ context.Context, srcFilename, dstFilename string) error {
	src, err := os.Open(s.path(srcFilename))
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(s.path(dstFilename))
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}
