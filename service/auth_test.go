package service

import (
	"LexNote/config"
	"LexNote/dao"
	"LexNote/models"
	"LexNote/pkg/database"
	"LexNote/pkg/response"
	"LexNote/types"
	"context"
	"errors"
	"testing"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	db := database.UserDB{DB: openTestDB(t, &models.User{})}
	return &AuthService{
		Config: &config.Config{
			Jwt: &config.Jwt{Secret: "test-secret", Expire: 3600},
		},
		UserDAO: dao.NewUserDAO(db),
	}
}

func TestLogin(t *testing.T) {
	s := newAuthService(t)
	ctx := context.Background()

	if _, err := s.CreateUser(ctx, "alex", "pass123", "Alex", "alex@example.com"); err != nil {
		t.Fatalf("create user: %v", err)
	}

	resp, err := s.Login(ctx, &types.LoginReq{Username: "alex", Password: "pass123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("expected a token")
	}
	if resp.Username != "alex" || resp.Name != "Alex" {
		t.Fatalf("unexpected identity: %+v", resp)
	}
}

// 用户不存在和密码错误不能从报错文案里区分出来
func TestLogin_BadCredentials(t *testing.T) {
	s := newAuthService(t)
	ctx := context.Background()

	if _, err := s.CreateUser(ctx, "alex", "pass123", "", ""); err != nil {
		t.Fatalf("create user: %v", err)
	}

	var msgs []string
	for _, req := range []*types.LoginReq{
		{Username: "alex", Password: "wrong"},
		{Username: "nobody", Password: "pass123"},
	} {
		_, err := s.Login(ctx, req)
		var be *response.BizError
		if !errors.As(err, &be) {
			t.Fatalf("expected a business error, got %v", err)
		}
		msgs = append(msgs, be.Msg)
	}
	if msgs[0] != msgs[1] {
		t.Fatalf("error messages leak which part failed: %q vs %q", msgs[0], msgs[1])
	}
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	s := newAuthService(t)
	ctx := context.Background()

	if _, err := s.CreateUser(ctx, "alex", "pass123", "", ""); err != nil {
		t.Fatalf("create user: %v", err)
	}
	_, err := s.CreateUser(ctx, "alex", "other", "", "")
	var be *response.BizError
	if !errors.As(err, &be) {
		t.Fatalf("duplicate username should be a business error, got %v", err)
	}
}

func TestCreateUser_PasswordIsHashed(t *testing.T) {
	s := newAuthService(t)
	ctx := context.Background()

	if _, err := s.CreateUser(ctx, "alex", "pass123", "", ""); err != nil {
		t.Fatalf("create user: %v", err)
	}
	user, err := s.UserDAO.FindByUsername(ctx, "alex")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if user.Password == "pass123" {
		t.Fatal("password stored in plaintext")
	}
}
