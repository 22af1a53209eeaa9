package types

import "LexNote/models"

// CreateCalendarEntryReq 日期格式 2006-01-02
type CreateCalendarEntryReq struct {
	EntryDate   string `json:"entry_date" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

type UpdateCalendarEntryReq struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

// MonthQuery 不传取当月
type MonthQuery struct {
	Year  int `form:"year"`
	Month int `form:"month"`
}

// CalendarMonthResp 按日期聚合
type CalendarMonthResp struct {
	Year    int                                `json:"year"`
	Month   int                                `json:"month"`
	Entries map[string][]*models.CalendarEntry `json:"entries"`
}
