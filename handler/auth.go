package handler

import (
	"LexNote/pkg/context"
	"LexNote/pkg/response"
	"LexNote/service"
	"LexNote/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Auth struct {
	AuthService service.IAuthService
}

func (h *Auth) RegisterRouter(r gin.IRouter) {
	r.POST("/api/auth/login", context.Wrap(h.Login))
}

func (h *Auth) Login(c *gin.Context) error {
	var req types.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	resp, err := h.AuthService.Login(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}
