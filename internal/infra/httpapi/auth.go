package httpapi

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	"app/internal/gateway"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool          `json:"success"`
	Token   string        `json:"token"`
	User    model.Profile `json:"user"`
}

func (c *Client) Login(ctx context.Context, email string, password string) (gateway.LoginResult, error) {
	var res loginResponse
	err := c.doJSON(ctx, http.MethodPost, "/app/api/v1/auth/login", loginRequest{
		Email:    email,
		Password: password,
	}, &res, false)
	if err != nil {
		return gateway.LoginResult{}, err
	}
	if !res.Success || res.Token == "" {
		return gateway.LoginResult{}, gateway.ErrUnauthorized
	}
	return gateway.LoginResult{Token: res.Token, User: res.User}, nil
}

func (c *Client) Register(ctx context.Context, in gateway.RegisterInput) error {
	return c.doJSON(ctx, http.MethodPost, "/app/api/v1/auth/register", in, nil, false)
}

type emailRequest struct {
	Email string `json:"email"`
}

func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	return c.doJSON(ctx, http.MethodPost, "/app/api/forgotpassword/forgotpass", emailRequest{Email: email}, nil, false)
}

type verifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

func (c *Client) VerifyOTP(ctx context.Context, email string, otp string) error {
	return c.doJSON(ctx, http.MethodPost, "/app/api/forgotpassword/verifyOtp", verifyOTPRequest{
		Email: email,
		OTP:   otp,
	}, nil, false)
}

type resetPasswordRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *Client) ResetPassword(ctx context.Context, email string, newPassword string) error {
	return c.doJSON(ctx, http.MethodPost, "/app/api/resetpassword/resetpassword", resetPasswordRequest{
		Email:    email,
		Password: newPassword,
	}, nil, false)
}

func (c *Client) FetchProfile(ctx context.Context) (model.Profile, error) {
	var p model.Profile
	if err := c.doJSON(ctx, http.MethodGet, "/app/api/v1/profile", nil, &p, true); err != nil {
		return model.Profile{}, err
	}
	return p, nil
}

// interfaceの実装チェック
var (
	_ gateway.AuthGateway    = (*Client)(nil)
	_ gateway.ProfileGateway = (*Client)(nil)
)
