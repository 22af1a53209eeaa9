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

type Quiz struct {
	Config      *config.Config
	QuizService service.IQuizService
}

func (h *Quiz) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))

	r.GET("/api/test/generate", authorize, context.Wrap(h.GenerateTest))

	g := r.Group("/api/quiz", authorize)
	g.POST("/start", context.Wrap(h.StartQuiz))
	g.GET("/:session_id", context.Wrap(h.GetQuiz))
	g.POST("/submit", context.Wrap(h.SubmitQuiz))
}

// GenerateTest 规则出题，按单元
func (h *Quiz) GenerateTest(c *gin.Context) error {
	unit, err := strconv.Atoi(c.Query("unit"))
	if err != nil || unit <= 0 {
		return response.NewError(http.StatusBadRequest, "unit 参数不合法")
	}

	resp, err := h.QuizService.GenerateTest(c.Request.Context(), unit)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Quiz) StartQuiz(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	var req types.StartQuizReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}
	if req.UnitNumber <= 0 {
		return response.NewError(http.StatusBadRequest, "unit_number 参数不合法")
	}

	resp, err := h.QuizService.StartQuiz(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Quiz) GetQuiz(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	sessionID := c.Param("session_id")
	resp, err := h.QuizService.GetQuiz(c.Request.Context(), userID, sessionID)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Quiz) SubmitQuiz(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	var req types.SubmitQuizReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	resp, err := h.QuizService.SubmitQuiz(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}
