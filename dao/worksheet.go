package dao

import (
	"LexNote/models"
	"LexNote/pkg/database"
	"context"
)

type WorksheetDAO struct {
	Repo[models.WorksheetImage]
}

func NewWorksheetDAO(db database.NotesDB) *WorksheetDAO {
	return &WorksheetDAO{Repo: NewRepo[models.WorksheetImage](db.DB)}
}

// FindByNoteID 笔记下的学习单，新的在前
func (d *WorksheetDAO) FindByNoteID(ctx context.Context, noteID int64) ([]*models.WorksheetImage, error) {
	var images []*models.WorksheetImage
	err := d.Db.WithContext(ctx).
		Where("note_id = ?", noteID).
		Order("upload_date DESC").
		Find(&images).Error
	return images, err
}

// CountByNoteID has_worksheet 标记以这个数为准重算
func (d *WorksheetDAO) CountByNoteID(ctx context.Context, noteID int64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.WorksheetImage{}).
		Where("note_id = ?", noteID).
		Count(&count).Error
	return count, err
}

// DeleteByNoteID 删除笔记时级联清掉记录，文件由上层删
func (d *WorksheetDAO) DeleteByNoteID(ctx context.Context, noteID int64) error {
	return d.Db.WithContext(ctx).
		Where("note_id = ?", noteID).
		Delete(&models.WorksheetImage{}).Error
}
