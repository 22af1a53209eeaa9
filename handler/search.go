package handler

import (
	"LexNote/pkg/log"
	"LexNote/service"
	"LexNote/types"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SearchHandler struct {
	SearchService service.ISearchService
}

func (h *SearchHandler) RegisterRouter(r gin.IRouter) {
	api := r.Group("/api/search")
	api.GET("/dictionary", h.SearchDictionary)
	api.GET("/notes", h.SearchNotes)

	r.GET("/search", h.UnifiedSearchPage)
	r.GET("/dictionary/search", h.DictionarySearchPage)
}

// SearchDictionary 词典搜索接口，直接回数组，出错回 {"error": ...}
func (h *SearchHandler) SearchDictionary(c *gin.Context) {
	query := c.Query("q")

	results, err := h.SearchService.SearchEntries(c.Request.Context(), query)
	if err != nil {
		log.L.Error("search dictionary failed", zap.String("query", query), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if results == nil {
		results = []types.SearchDictItem{}
	}
	c.JSON(http.StatusOK, results)
}

// SearchNotes 笔记搜索接口，返回形状同上
func (h *SearchHandler) SearchNotes(c *gin.Context) {
	query := c.Query("q")

	results, err := h.SearchService.SearchNotes(c.Request.Context(), query)
	if err != nil {
		log.L.Error("search notes failed", zap.String("query", query), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if results == nil {
		results = []types.SearchNoteItem{}
	}
	c.JSON(http.StatusOK, results)
}

// UnifiedSearchPage 聚合搜索页，词典和笔记两栏并列
func (h *SearchHandler) UnifiedSearchPage(c *gin.Context) {
	query := c.Query("q")
	result := h.SearchService.UnifiedSearch(c.Request.Context(), query)
	c.HTML(http.StatusOK, "search.html", result)
}

// DictionarySearchPage 词典搜索页，出错重定向回词典列表
func (h *SearchHandler) DictionarySearchPage(c *gin.Context) {
	query := c.Query("q")

	results, err := h.SearchService.SearchEntries(c.Request.Context(), query)
	if err != nil {
		log.L.Error("dictionary search page failed", zap.String("query", query), zap.Error(err))
		c.Redirect(http.StatusFound, "/dictionary?flash="+url.QueryEscape("搜索出错，请重试"))
		return
	}
	c.HTML(http.StatusOK, "dictionary.html", gin.H{
		"Query":   query,
		"Results": results,
	})
}
