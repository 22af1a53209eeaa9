package dao

import (
	"LexNote/models"
	"LexNote/pkg/database"
	"context"
	"time"
)

type CalendarDAO struct {
	Repo[models.CalendarEntry]
}

func NewCalendarDAO(db database.CalendarDB) *CalendarDAO {
	return &CalendarDAO{Repo: NewRepo[models.CalendarEntry](db.DB)}
}

// FindByMonth 取 [start, end) 区间内某用户的日程，按日期排序
func (d *CalendarDAO) FindByMonth(ctx context.Context, userID int64, start, end time.Time) ([]*models.CalendarEntry, error) {
	var entries []*models.CalendarEntry
	err := d.Db.WithContext(ctx).
		Where("user_id = ? AND entry_date >= ? AND entry_date < ?", userID, start, end).
		Order("entry_date ASC").
		Find(&entries).Error
	return entries, err
}

// FindOwned 带属主校验的单条查询
func (d *CalendarDAO) FindOwned(ctx context.Context, id, userID int64) (*models.CalendarEntry, error) {
	return d.Repo.FindByWhere(ctx, "id = ? AND user_id = ?", id, userID)
}

// UpdateOwned 只允许属主更新
func (d *CalendarDAO) UpdateOwned(ctx context.Context, id, userID int64, data map[string]interface{}) error {
	return d.Db.WithContext(ctx).
		Model(&models.CalendarEntry{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(data).Error
}

// DeleteOwned 只允许属主删除
func (d *CalendarDAO) DeleteOwned(ctx context.Context, id, userID int64) error {
	return d.Db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.CalendarEntry{}).Error
}
