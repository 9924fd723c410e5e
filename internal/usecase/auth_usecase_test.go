package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"app/internal/domain/model"
	"app/internal/gateway"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks
// =====================

type AuthGatewayMock struct{ mock.Mock }

func (m *AuthGatewayMock) Login(ctx context.Context, email string, password string) (gateway.LoginResult, error) {
	args := m.Called(ctx, email, password)
	res, _ := args.Get(0).(gateway.LoginResult)
	return res, args.Error(1)
}

func (m *AuthGatewayMock) Register(ctx context.Context, in gateway.RegisterInput) error {
	args := m.Called(ctx, in)
	return args.Error(0)
}

func (m *AuthGatewayMock) ForgotPassword(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *AuthGatewayMock) VerifyOTP(ctx context.Context, email string, otp string) error {
	args := m.Called(ctx, email, otp)
	return args.Error(0)
}

func (m *AuthGatewayMock) ResetPassword(ctx context.Context, email string, newPassword string) error {
	args := m.Called(ctx, email, newPassword)
	return args.Error(0)
}

type SessionStoreMock struct {
	mock.Mock
}

func (m *SessionStoreMock) Save(token string) error {
	args := m.Called(token)
	return args.Error(0)
}

func (m *SessionStoreMock) Token() (string, bool) {
	args := m.Called()
	return args.String(0), args.Bool(1)
}

func (m *SessionStoreMock) Clear() error {
	args := m.Called()
	return args.Error(0)
}

// =====================
// Login
// =====================

func TestAuthUsecase_Login_Success(t *testing.T) {
	g := new(AuthGatewayMock)
	s := new(SessionStoreMock)
	uc := usecase.NewAuthUsecase(g, s)

	g.On("Login", mock.Anything, "ps@example.com", "secret").Return(gateway.LoginResult{
		Token: "tok-1",
		User:  model.Profile{ID: "u1", Username: "prakhar"},
	}, nil)
	s.On("Save", "tok-1").Return(nil)

	user, err := uc.Login(context.Background(), " ps@example.com ", "secret")
	assert.NoError(t, err)
	assert.Equal(t, "prakhar", user.Username)
	s.AssertCalled(t, "Save", "tok-1")
}

func TestAuthUsecase_Login_MissingFields(t *testing.T) {
	uc := usecase.NewAuthUsecase(new(AuthGatewayMock), new(SessionStoreMock))

	_, err := uc.Login(context.Background(), "", "secret")

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
	assert.Equal(t, "please fill in all fields", he.Message)
}

func TestAuthUsecase_Login_InvalidCredentials(t *testing.T) {
	g := new(AuthGatewayMock)
	g.On("Login", mock.Anything, "ps@example.com", "wrong").Return(gateway.LoginResult{}, gateway.ErrUnauthorized)
	uc := usecase.NewAuthUsecase(g, new(SessionStoreMock))

	_, err := uc.Login(context.Background(), "ps@example.com", "wrong")

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Status)
}

// =====================
// Register
// =====================

func TestAuthUsecase_Register_MissingFields(t *testing.T) {
	uc := usecase.NewAuthUsecase(new(AuthGatewayMock), new(SessionStoreMock))

	err := uc.Register(context.Background(), gateway.RegisterInput{
		Username: "prakhar", Email: "", Phone: "7400102195", Password: "secret",
	})

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
}

func TestAuthUsecase_Register_Success(t *testing.T) {
	g := new(AuthGatewayMock)
	in := gateway.RegisterInput{Username: "prakhar", Email: "ps@example.com", Phone: "7400102195", Password: "secret"}
	g.On("Register", mock.Anything, in).Return(nil)
	uc := usecase.NewAuthUsecase(g, new(SessionStoreMock))

	err := uc.Register(context.Background(), in)
	assert.NoError(t, err)
}

// =====================
// Password reset flow
// =====================

func TestAuthUsecase_ForgotPassword_EmptyEmail(t *testing.T) {
	uc := usecase.NewAuthUsecase(new(AuthGatewayMock), new(SessionStoreMock))

	err := uc.ForgotPassword(context.Background(), "  ")

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
}

func TestAuthUsecase_VerifyOTP_Invalid(t *testing.T) {
	g := new(AuthGatewayMock)
	g.On("VerifyOTP", mock.Anything, "ps@example.com", "0000").Return(assert.AnError)
	uc := usecase.NewAuthUsecase(g, new(SessionStoreMock))

	err := uc.VerifyOTP(context.Background(), "ps@example.com", "0000")

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
	assert.Equal(t, "invalid otp", he.Message)
}

func TestAuthUsecase_ResetPassword_Success(t *testing.T) {
	g := new(AuthGatewayMock)
	g.On("ResetPassword", mock.Anything, "ps@example.com", "newpass").Return(nil)
	uc := usecase.NewAuthUsecase(g, new(SessionStoreMock))

	err := uc.ResetPassword(context.Background(), "ps@example.com", "newpass")
	assert.NoError(t, err)
}

// =====================
// Session
// =====================

func TestAuthUsecase_Authenticated(t *testing.T) {
	s := new(SessionStoreMock)
	s.On("Token").Return("tok-1", true).Once()
	s.On("Token").Return("", false).Once()
	uc := usecase.NewAuthUsecase(new(AuthGatewayMock), s)

	assert.True(t, uc.Authenticated())
	assert.False(t, uc.Authenticated())
}

func TestAuthUsecase_Logout(t *testing.T) {
	s := new(SessionStoreMock)
	s.On("Clear").Return(nil)
	uc := usecase.NewAuthUsecase(new(AuthGatewayMock), s)

	assert.NoError(t, uc.Logout())
	s.AssertCalled(t, "Clear")
}
