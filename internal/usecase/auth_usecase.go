package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"app/internal/domain/model"
	"app/internal/gateway"
)

// bearerトークンの保管先（ファイル実装はinfra/session）
type SessionStore interface {
	Save(token string) error
	// 有効なトークンが無ければ ok=false（期限切れも含む）
	Token() (token string, ok bool)
	Clear() error
}

type AuthUsecase struct {
	auth    gateway.AuthGateway
	session SessionStore
}

// DI
func NewAuthUsecase(auth gateway.AuthGateway, session SessionStore) *AuthUsecase {
	return &AuthUsecase{auth: auth, session: session}
}

// ログインしてトークンを保存する
func (u *AuthUsecase) Login(ctx context.Context, email string, password string) (model.Profile, error) {
	email = strings.TrimSpace(email)

	// 必須チェック
	if email == "" || password == "" {
		return model.Profile{}, NewHTTPError(http.StatusBadRequest, "please fill in all fields")
	}

	res, err := u.auth.Login(ctx, email, password)
	if errors.Is(err, gateway.ErrUnauthorized) {
		return model.Profile{}, NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}
	if err != nil {
		return model.Profile{}, NewHTTPError(http.StatusBadGateway, "login failed")
	}

	if err := u.session.Save(res.Token); err != nil {
		return model.Profile{}, NewHTTPError(http.StatusInternalServerError, "failed to store session")
	}

	return res.User, nil
}

// 会員登録
func (u *AuthUsecase) Register(ctx context.Context, in gateway.RegisterInput) error {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)

	// 必須チェック
	if in.Username == "" || in.Email == "" || in.Phone == "" || in.Password == "" {
		return NewHTTPError(http.StatusBadRequest, "please fill in all fields")
	}

	if err := u.auth.Register(ctx, in); err != nil {
		return NewHTTPError(http.StatusBadGateway, "registration failed")
	}
	return nil
}

// パスワード再設定のOTPを送る
func (u *AuthUsecase) ForgotPassword(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return NewHTTPError(http.StatusBadRequest, "please enter your email")
	}
	if err := u.auth.ForgotPassword(ctx, email); err != nil {
		return NewHTTPError(http.StatusBadGateway, "failed to send otp")
	}
	return nil
}

// OTP確認
func (u *AuthUsecase) VerifyOTP(ctx context.Context, email string, otp string) error {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(otp) == "" {
		return NewHTTPError(http.StatusBadRequest, "please fill in all fields")
	}
	if err := u.auth.VerifyOTP(ctx, email, otp); err != nil {
		return NewHTTPError(http.StatusBadRequest, "invalid otp")
	}
	return nil
}

// 新しいパスワードを設定
func (u *AuthUsecase) ResetPassword(ctx context.Context, email string, newPassword string) error {
	if strings.TrimSpace(email) == "" || newPassword == "" {
		return NewHTTPError(http.StatusBadRequest, "please fill in all fields")
	}
	if err := u.auth.ResetPassword(ctx, email, newPassword); err != nil {
		return NewHTTPError(http.StatusBadGateway, "failed to reset password")
	}
	return nil
}

// ログアウト（セッション破棄のみ）
func (u *AuthUsecase) Logout() error {
	return u.session.Clear()
}

// 有効なセッションを持っているか
func (u *AuthUsecase) Authenticated() bool {
	_, ok := u.session.Token()
	return ok
}
