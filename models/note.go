package models

import (
	"time"
)

// Note 学习笔记
type Note struct {
	ID             int64     `gorm:"column:id;primaryKey" json:"id"`
	Title          string    `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Content        string    `gorm:"column:content;type:text;not null" json:"content"`
	UnitNumber     *int      `gorm:"column:unit_number;index:idx_notes_unit" json:"unit_number"`
	Tags           string    `gorm:"column:tags;type:text" json:"tags"`
	RelatedEntries string    `gorm:"column:related_entries;type:text" json:"related_entries"` // 词条 ID 列表，如 "1,4,5"
	Comments       string    `gorm:"column:comments;type:text" json:"comments"`
	Views          int       `gorm:"column:views;not null;default:0" json:"views"`
	IsFavorite     bool      `gorm:"column:is_favorite;not null;default:false;index:idx_notes_favorite" json:"is_favorite"`
	HasWorksheet   bool      `gorm:"column:has_worksheet;not null;default:false" json:"has_worksheet"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`
	LastUpdated    time.Time `gorm:"column:last_updated;autoUpdateTime" json:"last_updated"`
}

func (Note) TableName() string {
	return "notes"
}
