package dao

import (
	"context"

	"gorm.io/gorm"
)

// Repo 各实体 DAO 共用的基础操作
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

func (r *Repo[T]) Create(ctx context.Context, m *T) error {
	return r.Db.WithContext(ctx).Create(m).Error
}

func (r *Repo[T]) FindByID(ctx context.Context, id int64) (*T, error) {
	var m T
	err := r.Db.WithContext(ctx).First(&m, id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Repo[T]) FindByWhere(ctx context.Context, query string, args ...interface{}) (*T, error) {
	var m T
	err := r.Db.WithContext(ctx).Where(query, args...).First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Repo[T]) IsExist(ctx context.Context, query string, args ...interface{}) (bool, error) {
	var count int64
	err := r.Db.WithContext(ctx).Model(new(T)).Where(query, args...).Count(&count).Error
	return count > 0, err
}

func (r *Repo[T]) DeleteByID(ctx context.Context, id int64) error {
	return r.Db.WithContext(ctx).Delete(new(T), id).Error
}
