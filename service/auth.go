package service

import (
	"LexNote/config"
	"LexNote/dao"
	"LexNote/models"
	"LexNote/pkg/jwt"
	"LexNote/pkg/response"
	"LexNote/types"
	"context"
	"errors"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	Config  *config.Config
	UserDAO *dao.UserDAO
}

var _ IAuthService = (*AuthService)(nil)

type IAuthService interface {
	Login(ctx context.Context, req *types.LoginReq) (*types.LoginResp, error)
	CreateUser(ctx context.Context, username, password, name, email string) (int64, error)
}

// Login 校验口令并签发 JWT；用户名不存在和密码错误返回同一句话
func (s *AuthService) Login(ctx context.Context, req *types.LoginReq) (*types.LoginResp, error) {
	user, err := s.UserDAO.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewError(http.StatusUnauthorized, "用户名或密码错误")
		}
		return nil, err
	}
	if user.Status != "active" {
		return nil, response.NewError(http.StatusForbidden, "账号已停用")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, response.NewError(http.StatusUnauthorized, "用户名或密码错误")
	}

	token, err := jwt.GenerateToken(
		[]byte(s.Config.Jwt.Secret),
		user.ID,
		user.Username,
		time.Duration(s.Config.Jwt.Expire)*time.Second,
	)
	if err != nil {
		return nil, err
	}

	return &types.LoginResp{
		Token:    token,
		UserID:   user.ID,
		Username: user.Username,
		Name:     user.Name,
	}, nil
}

// CreateUser 建账号，create-user 子命令用
func (s *AuthService) CreateUser(ctx context.Context, username, password, name, email string) (int64, error) {
	if s.UserDAO.IsUsernameExist(ctx, username) {
		return 0, response.NewError(http.StatusBadRequest, "用户名已存在")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	user := &models.User{
		Username: username,
		Password: string(hash),
		Name:     name,
		Email:    email,
		Status:   "active",
		Role:     "user",
	}
	if err := s.UserDAO.Create(ctx, user); err != nil {
		return 0, err
	}
	return user.ID, nil
}
