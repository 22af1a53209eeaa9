package dao

import (
	"LexNote/models"
	"LexNote/pkg/database"
	"context"

	"gorm.io/gorm"
)

type EntryDAO struct {
	Repo[models.Entry]
}

func NewEntryDAO(db database.DictDB) *EntryDAO {
	return &EntryDAO{Repo: NewRepo[models.Entry](db.DB)}
}

// ListAll 词条总览，按词组字母序
func (d *EntryDAO) ListAll(ctx context.Context) ([]*models.Entry, error) {
	var entries []*models.Entry
	err := d.Db.WithContext(ctx).
		Order("word_phrase ASC").
		Find(&entries).Error
	return entries, err
}

// IsWordPhraseExist 判断词组是否已收录
func (d *EntryDAO) IsWordPhraseExist(ctx context.Context, wordPhrase string) bool {
	exist, _ := d.Repo.IsExist(ctx, "word_phrase = ?", wordPhrase)
	return exist
}

// IncrementViews 公开浏览时 +1
func (d *EntryDAO) IncrementViews(ctx context.Context, id int64) error {
	return d.Db.WithContext(ctx).
		Model(&models.Entry{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("COALESCE(views, 0) + 1")).Error
}

// UpdateByID 编辑词条，last_updated 由 autoUpdateTime 刷新
func (d *EntryDAO) UpdateByID(ctx context.Context, id int64, data map[string]interface{}) error {
	if len(data) == 0 {
		return nil
	}
	return d.Db.WithContext(ctx).
		Model(&models.Entry{}).
		Where("id = ?", id).
		Updates(data).Error
}

// FindByIDs 按 ID 列表查询（笔记关联词条用）
func (d *EntryDAO) FindByIDs(ctx context.Context, ids []int64) ([]*models.Entry, error) {
	if len(ids) == 0 {
		return []*models.Entry{}, nil
	}
	var entries []*models.Entry
	err := d.Db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&entries).Error
	return entries, err
}

// FindRandomByUnit 按单元随机取词条，出题用
func (d *EntryDAO) FindRandomByUnit(ctx context.Context, unitNumber, limit int) ([]*models.Entry, error) {
	var entries []*models.Entry
	err := d.Db.WithContext(ctx).
		Where("unit_number = ?", unitNumber).
		Order("RANDOM()").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

// FindByUnit 单元下全部词条
func (d *EntryDAO) FindByUnit(ctx context.Context, unitNumber int) ([]*models.Entry, error) {
	var entries []*models.Entry
	err := d.Db.WithContext(ctx).
		Where("unit_number = ?", unitNumber).
		Find(&entries).Error
	return entries, err
}
