package storage

import (
	"context"
	"io"

	"LexNote/config"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss/credentials"
)

const ossKeyPrefix = "worksheets/"

// OssStorage 对象存储实现
type OssStorage struct {
	client *oss.Client
	bucket string
}

var _ Storage = (*OssStorage)(nil)

func NewOssStorage(cfg *config.OssConfig) *OssStorage {
	ossCfg := oss.LoadDefaultConfig().
		WithEndpoint(cfg.Endpoint).
		WithRegion(cfg.Region).
		WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				cfg.AccessKeyID,
				cfg.AccessKeySecret,
			),
		)

	return &OssStorage{
		client: oss.NewClient(ossCfg),
		bucket: cfg.Bucket,
	}
}

func (s *OssStorage) Save(ctx context.Context, filename string, r io.Reader) error {
	_, err := s.client.PutObject(ctx, &oss.PutObjectRequest{
		Bucket: oss.Ptr(s.bucket),
		Key:    oss.Ptr(ossKeyPrefix + filename),
		Body:   r,
	})
	return err
}

func (s *OssStorage) Open(ctx context.Context, filename string) (io.ReadCloser, error) {
	out, err := s.client.GetObject(ctx, &oss.GetObjectRequest{
		Bucket: oss.Ptr(s.bucket),
		Key:    oss.Ptr(ossKeyPrefix + filename),
	})
	if err != nil {
		return nil, err
	}
	return out.Body, nil
}

func (s *OssStorage) Remove(ctx context.Context, filename string) error {
	_, err := s.client.DeleteObject(ctx, &oss.DeleteObjectRequest{
		Bucket: oss.Ptr(s.bucket),
		Key:    oss.Ptr(ossKeyPrefix + filename),
	})
	return err
}

func (s *OssStorage) Copy(ctx context.Context, srcFilename, dstFilename string) error {
	_, err := s.client.CopyObject(ctx, &oss.CopyObjectRequest{
		Bucket:       oss.Ptr(s.bucket),
		Key:          oss.Ptr(ossKeyPrefix + dstFilename),
		SourceBucket: oss.Ptr(s.bucket),
		SourceKey:    oss.Ptr(ossKeyPrefix + srcFilename),
	})
	return err
}
