package handler

import (
	"LexNote/config"
	"LexNote/middleware"
	"LexNote/pkg/context"
	"LexNote/pkg/response"
	"LexNote/service"
	"LexNote/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Calendar struct {
	Config          *config.Config
	CalendarService service.ICalendarService
}

// RegisterRouter 日程全部按用户隔离，整组都要登录
func (h *Calendar) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))

	g := r.Group("/api/calendar", authorize)
	g.GET("", context.Wrap(h.GetMonth))
	g.POST("", context.Wrap(h.CreateEntry))
	g.PUT("/:id", context.Wrap(h.UpdateEntry))
	g.DELETE("/:id", context.Wrap(h.DeleteEntry))
}

func (h *Calendar) GetMonth(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	var query types.MonthQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	resp, err := h.CalendarService.GetMonth(c.Request.Context(), userID, &query)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Calendar) CreateEntry(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	var req types.CreateCalendarEntryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	id, err := h.CalendarService.CreateEntry(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"id": id})
	return nil
}

func (h *Calendar) UpdateEntry(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req types.UpdateCalendarEntryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	if err := h.CalendarService.UpdateEntry(c.Request.Context(), userID, id, &req); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *Calendar) DeleteEntry(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.CalendarService.DeleteEntry(c.Request.Context(), userID, id); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}
