package repository

import (
	"context"

	"github.com/JesusGGUNCC/Student-Made/internal/domain/model"
)

type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*model.User, error)

	FindByEmail(ctx context.Context, email string) (*model.User, error)

	// ログインはusernameでもemailでも可
	FindByUsernameOrEmail(ctx context.Context, usernameOrEmail string) (*model.User, error)

	Create(ctx context.Context, user *model.User) error

	UpdateRole(ctx context.Context, username string, role model.Role) error
}
