package dao

import (
	"LexNote/models"
	"LexNote/pkg/database"
	"context"
)

type UserDAO struct {
	Repo[models.User]
}

func NewUserDAO(db database.UserDB) *UserDAO {
	return &UserDAO{Repo: NewRepo[models.User](db.DB)}
}

// FindByUsername 登录用
func (d *UserDAO) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return d.Repo.FindByWhere(ctx, "username = ?", username)
}

// IsUsernameExist 判断用户名是否被占用
func (d *UserDAO) IsUsernameExist(ctx context.Context, username string) bool {
	exist, _ := d.Repo.IsExist(ctx, "username = ?", username)
	return exist
}
