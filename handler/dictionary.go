package handler

import (
	"LexNote/config"
	"LexNote/middleware"
	"LexNote/pkg/context"
	"LexNote/pkg/response"
	"LexNote/service"
	"LexNote/types"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Dictionary struct {
	Config            *config.Config
	DictionaryService service.IDictionaryService
}

func (h *Dictionary) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))

	g := r.Group("/api/dictionary")
	g.GET("", context.Wrap(h.ListEntries))
	g.GET("/:id", context.Wrap(h.GetEntry))
	g.POST("", authorize, context.Wrap(h.CreateEntry))
	g.PUT("/:id", authorize, context.Wrap(h.UpdateEntry))
	g.DELETE("/:id", authorize, context.Wrap(h.DeleteEntry))
}

func (h *Dictionary) ListEntries(c *gin.Context) error {
	entries, err := h.DictionaryService.ListEntries(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, entries)
	return nil
}

func (h *Dictionary) CreateEntry(c *gin.Context) error {
	var req types.CreateEntryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	entryID, err := h.DictionaryService.CreateEntry(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, types.CreateEntryResp{EntryID: entryID})
	return nil
}

// GetEntry 未登录访问算公开浏览，计入浏览数；带 token 的不计
func (h *Dictionary) GetEntry(c *gin.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	public := c.GetHeader("Authorization") == ""
	detail, err := h.DictionaryService.GetEntry(c.Request.Context(), id, public)
	if err != nil {
		return err
	}
	response.Success(c, detail)
	return nil
}

func (h *Dictionary) UpdateEntry(c *gin.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req types.UpdateEntryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	if err := h.DictionaryService.UpdateEntry(c.Request.Context(), id, &req); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *Dictionary) DeleteEntry(c *gin.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.DictionaryService.DeleteEntry(c.Request.Context(), id); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

// parseID 路径参数里的数字 ID
func parseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, response.NewError(http.StatusBadRequest, "ID 不合法")
	}
	return id, nil
}
