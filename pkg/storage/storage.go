// Package storage 学习单文件的落盘抽象。
// 默认写本地磁盘；配置了 OSS 时写对象存储，数据库里只记生成的文件名。
package storage

import (
	"context"
	"io"
)

type Storage interface {
	// Save 按生成的文件名写入内容
	Save(ctx context.Context, filename string, r io.Reader) error

	// Open 按文件名读出内容
	Open(ctx context.Context, filename string) (io.ReadCloser, error)

	// Remove 删除文件，文件不存在不算错
	Remove(ctx context.Context, filename string) error

	// Copy 复制一份（笔记复制时学习单跟着复制）
	Copy(ctx context.Context, srcFilename, dstFilename string) error
}
