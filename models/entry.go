package models

import (
	"time"
)

// Entry 法律词条
type Entry struct {
	ID          int64     `gorm:"column:id;primaryKey" json:"id"`
	WordPhrase  string    `gorm:"column:word_phrase;type:varchar(255);not null;uniqueIndex:idx_word_phrase" json:"word_phrase"`
	Definition  string    `gorm:"column:definition;type:text;not null" json:"definition"`
	Example     string    `gorm:"column:example;type:text" json:"example"`
	Views       int       `gorm:"column:views;not null;default:0;index:idx_views" json:"views"`
	UnitNumber  *int      `gorm:"column:unit_number;index:idx_unit" json:"unit_number"`
	Comments    string    `gorm:"column:comments;type:text" json:"comments"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	LastUpdated time.Time `gorm:"column:last_updated;autoUpdateTime" json:"last_updated"`
}

func (Entry) TableName() string {
	return "entries"
}
