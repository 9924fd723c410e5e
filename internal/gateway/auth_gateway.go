package gateway

import (
	"context"

	"app/internal/domain/model"
)

// 会員登録の入力
type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// ログイン結果（tokenは呼び出し側で保存する）
type LoginResult struct {
	Token string        `json:"token"`
	User  model.Profile `json:"user"`
}

// 認証系エンドポイント
type AuthGateway interface {
	Login(ctx context.Context, email string, password string) (LoginResult, error)
	Register(ctx context.Context, in RegisterInput) error
	ForgotPassword(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email string, otp string) error
	ResetPassword(ctx context.Context, email string, newPassword string) error
}

// プロフィール取得（bearer必須）
type ProfileGateway interface {
	FetchProfile(ctx context.Context) (model.Profile, error)
}
