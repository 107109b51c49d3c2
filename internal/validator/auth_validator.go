package validator

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/JesusGGUNCC/Student-Made/internal/repository"
	"github.com/JesusGGUNCC/Student-Made/internal/usecase"
)

var (
	// 入力が不正
	ErrInvalidInput = errors.New("invalid input")

	// usernameが既に使用済み
	ErrUsernameAlreadyUsed = errors.New("username already used")

	// emailが既に使用済み
	ErrEmailAlreadyUsed = errors.New("email already used")
)

type authValidator struct {
	users repository.UserRepository
}

// Usecaseは interface を依存注入
func NewAuthValidator(users repository.UserRepository) usecase.AuthValidator {
	return &authValidator{users: users}
}

// サインアップの入力を検証
func (v *authValidator) ValidateRegister(ctx context.Context, username string, email string, password string) error {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	// 必須チェック
	if username == "" || email == "" || password == "" {
		return ErrInvalidInput
	}

	// username形式（英数字と_、3〜30文字）
	if !isUsernameLike(username) {
		return ErrInvalidInput
	}

	// email形式
	if !isEmailLike(email) {
		return ErrInvalidInput
	}

	// パスワード最低文字数（MVP: 8）
	if len(password) < 8 {
		return ErrInvalidInput
	}

	// 重複チェック（DBが必要）
	if u, err := v.users.FindByUsername(ctx, username); err == nil && u != nil {
		return ErrUsernameAlreadyUsed
	}
	if u, err := v.users.FindByEmail(ctx, email); err == nil && u != nil {
		return ErrEmailAlreadyUsed
	}

	return nil
}

// ログインの入力を検証。usernameはemailでも良いので形式は見ない
func (v *authValidator) ValidateLogin(ctx context.Context, usernameOrEmail string, password string) error {
	if strings.TrimSpace(usernameOrEmail) == "" || password == "" {
		return ErrInvalidInput
	}

	return nil
}

func isUsernameLike(s string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9_]{3,30}$`)
	return re.MatchString(s)
}

// 簡易メール形式をチェック
func isEmailLike(s string) bool {
	re := regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	return re.MatchString(s)
}
