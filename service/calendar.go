package service

import (
	"LexNote/dao"
	"LexNote/models"
	"LexNote/pkg/response"
	"LexNote/types"
	"context"
	"errors"
	"net/http"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CalendarService struct {
	CalendarDAO *dao.CalendarDAO
}

var _ ICalendarService = (*CalendarService)(nil)

type ICalendarService interface {
	GetMonth(ctx context.Context, userID int64, query *types.MonthQuery) (*types.CalendarMonthResp, error)
	CreateEntry(ctx context.Context, userID int64, req *types.CreateCalendarEntryReq) (int64, error)
	UpdateEntry(ctx context.Context, userID, id int64, req *types.UpdateCalendarEntryReq) error
	DeleteEntry(ctx context.Context, userID, id int64) error
}

// GetMonth 取一个月的日程，按日期（2006-01-02）聚合；年月不传用当月
func (s *CalendarService) GetMonth(ctx context.Context, userID int64, query *types.MonthQuery) (*types.CalendarMonthResp, error) {
	now := time.Now()
	year, month := query.Year, query.Month
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}
	if month < 1 || month > 12 {
		return nil, response.NewError(http.StatusBadRequest, "月份不合法")
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	entries, err := s.CalendarDAO.FindByMonth(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	resp := &types.CalendarMonthResp{
		Year:    year,
		Month:   month,
		Entries: make(map[string][]*models.CalendarEntry),
	}
	for _, e := range entries {
		key := time.Time(e.EntryDate).Format("2006-01-02")
		resp.Entries[key] = append(resp.Entries[key], e)
	}
	return resp, nil
}

func (s *CalendarService) CreateEntry(ctx context.Context, userID int64, req *types.CreateCalendarEntryReq) (int64, error) {
	day, err := time.Parse("2006-01-02", req.EntryDate)
	if err != nil {
		return 0, response.NewError(http.StatusBadRequest, "日期格式应为 2006-01-02")
	}

	entry := &models.CalendarEntry{
		UserID:      userID,
		EntryDate:   datatypes.Date(day),
		Title:       req.Title,
		Description: req.Description,
	}
	if err := s.CalendarDAO.Create(ctx, entry); err != nil {
		return 0, err
	}
	return entry.ID, nil
}

// UpdateEntry 只动标题和描述，日期不可改；非属主按不存在处理
func (s *CalendarService) UpdateEntry(ctx context.Context, userID, id int64, req *types.UpdateCalendarEntryReq) error {
	if _, err := s.CalendarDAO.FindOwned(ctx, id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewError(http.StatusNotFound, "日程不存在")
		}
		return err
	}
	return s.CalendarDAO.UpdateOwned(ctx, id, userID, map[string]interface{}{
		"title":       req.Title,
		"description": req.Description,
	})
}

func (s *CalendarService) DeleteEntry(ctx context.Context, userID, id int64) error {
	if _, err := s.CalendarDAO.FindOwned(ctx, id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewError(http.StatusNotFound, "日程不存在")
		}
		return err
	}
	return s.CalendarDAO.DeleteOwned(ctx, id, userID)
}
