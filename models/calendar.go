package models

import (
	"time"

	"gorm.io/datatypes"
)

// CalendarEntry 学习日程，按用户隔离
type CalendarEntry struct {
	ID          int64          `gorm:"column:id;primaryKey" json:"id"`
	UserID      int64          `gorm:"column:user_id;not null;index:idx_calendar_user_date,priority:1" json:"user_id"`
	EntryDate   datatypes.Date `gorm:"column:entry_date;not null;index:idx_calendar_user_date,priority:2" json:"entry_date"`
	Title       string         `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Description string         `gorm:"column:description;type:text" json:"description"`
	CreatedAt   time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at" json:"updated_at"`
}

func (CalendarEntry) TableName() string {
	return "calendar_entries"
}
