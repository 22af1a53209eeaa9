package database

import (
	"LexNote/config"
	"LexNote/models"
	"LexNote/pkg/log"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// 四个库各自独立，用不同的具名类型让 wire 能区分注入
type (
	DictDB struct{ *gorm.DB }

	NotesDB struct{ *gorm.DB }

	CalendarDB struct{ *gorm.DB }

	UserDB struct{ *gorm.DB }
)

func open(path string, dst ...interface{}) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.L.Fatal("failed to open database", zap.String("path", path), zap.Error(err))
	}
	if err := db.AutoMigrate(dst...); err != nil {
		log.L.Fatal("failed to migrate database", zap.String("path", path), zap.Error(err))
	}
	log.L.Info("open database success", zap.String("path", path))
	return db
}

// NewDictDB 词典库
func NewDictDB(conf *config.Config) DictDB {
	return DictDB{open(conf.Database.Dictionary, &models.Entry{})}
}

// NewNotesDB 笔记库，学习单元数据和笔记同库
func NewNotesDB(conf *config.Config) NotesDB {
	return NotesDB{open(conf.Database.Notes, &models.Note{}, &models.WorksheetImage{})}
}

// NewCalendarDB 日程库
func NewCalendarDB(conf *config.Config) CalendarDB {
	return CalendarDB{open(conf.Database.Calendar, &models.CalendarEntry{})}
}

// NewUserDB 用户库
func NewUserDB(conf *config.Config) UserDB {
	return UserDB{open(conf.Database.Users, &models.User{})}
}
