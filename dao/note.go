package dao

import (
	"LexNote/models"
	"LexNote/pkg/database"
	"context"

	"gorm.io/gorm"
)

type NoteDAO struct {
	Repo[models.Note]
}

func NewNoteDAO(db database.NotesDB) *NoteDAO {
	return &NoteDAO{Repo: NewRepo[models.Note](db.DB)}
}

// ListAll 笔记总览：有单元号的在前、单元号倒序，组内按更新时间倒序
func (d *NoteDAO) ListAll(ctx context.Context) ([]*models.Note, error) {
	var notes []*models.Note
	err := d.Db.WithContext(ctx).
		Order("CASE WHEN unit_number IS NULL THEN 1 ELSE 0 END").
		Order("unit_number DESC").
		Order("last_updated DESC").
		Find(&notes).Error
	return notes, err
}

// UpdateByID 编辑笔记
func (d *NoteDAO) UpdateByID(ctx context.Context, id int64, data map[string]interface{}) error {
	if len(data) == 0 {
		return nil
	}
	return d.Db.WithContext(ctx).
		Model(&models.Note{}).
		Where("id = ?", id).
		Updates(data).Error
}

// IncrementViews 浏览计数
func (d *NoteDAO) IncrementViews(ctx context.Context, id int64) error {
	return d.Db.WithContext(ctx).
		Model(&models.Note{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("COALESCE(views, 0) + 1")).Error
}

// SetHasWorksheet 学习单增删后重算的标记落库
func (d *NoteDAO) SetHasWorksheet(ctx context.Context, id int64, has bool) error {
	return d.Db.WithContext(ctx).
		Model(&models.Note{}).
		Where("id = ?", id).
		UpdateColumn("has_worksheet", has).Error
}

// FindRandomByUnit 按单元随机取笔记，出题用
func (d *NoteDAO) FindRandomByUnit(ctx context.Context, unitNumber, limit int) ([]*models.Note, error) {
	var notes []*models.Note
	err := d.Db.WithContext(ctx).
		Where("unit_number = ?", unitNumber).
		Order("RANDOM()").
		Limit(limit).
		Find(&notes).Error
	return notes, err
}

// FindByUnit 单元下全部笔记
func (d *NoteDAO) FindByUnit(ctx context.Context, unitNumber int) ([]*models.Note, error) {
	var notes []*models.Note
	err := d.Db.WithContext(ctx).
		Where("unit_number = ?", unitNumber).
		Find(&notes).Error
	return notes, err
}
