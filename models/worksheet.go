package models

import "time"

// WorksheetImage 笔记附带的学习单文件，文件本体在对象存储/磁盘上，这里只存元数据
type WorksheetImage struct {
	ID               int64     `gorm:"column:id;primaryKey" json:"id"`
	NoteID           int64     `gorm:"column:note_id;not null;index:idx_worksheet_note_id" json:"note_id"`
	Filename         string    `gorm:"column:filename;type:varchar(255);not null" json:"filename"`
	OriginalFilename string    `gorm:"column:original_filename;type:varchar(255);not null" json:"original_filename"` // 用户上传名，仅做展示，绝不拼路径
	Width            int       `gorm:"column:width" json:"width"`
	Height           int       `gorm:"column:height" json:"height"`
	UploadDate       time.Time `gorm:"column:upload_date;autoCreateTime" json:"upload_date"`
}

func (WorksheetImage) TableName() string {
	return "worksheet_images"
}
