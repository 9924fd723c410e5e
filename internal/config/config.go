package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Configはクライアント全体の設定
type Config struct {
	APIBaseURL   string        // バックエンドのベースURL
	PollInterval time.Duration // 注文ステータスのポーリング間隔
	TokenPath    string        // bearerトークンの保存先
}

// Loadは環境変数
func Load() (Config, error) {
	cfg := Config{
		APIBaseURL: os.Getenv("API_BASE_URL"),
	}

	//必須チェック
	if cfg.APIBaseURL == "" {
		return Config{}, fmt.Errorf("API_BASE_URL is required")
	}

	// ポーリング間隔（default 60秒）
	seconds := 60
	if v := os.Getenv("POLL_INTERVAL_SECONDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("POLL_INTERVAL_SECONDS must be a positive number")
		}
		seconds = n
	}
	cfg.PollInterval = time.Duration(seconds) * time.Second

	// トークン保存先（default ~/.canteen/token）
	cfg.TokenPath = os.Getenv("TOKEN_PATH")
	if cfg.TokenPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("TOKEN_PATH is required when home dir is unavailable: %w", err)
		}
		cfg.TokenPath = filepath.Join(home, ".canteen", "token")
	}

	return cfg, nil
}

// StubConfigはローカルスタブサーバーの設定
type StubConfig struct {
	Port      string // サーバーポート（8080）
	JWTSecret string // JWT署名シークレット
}

func LoadStub() (StubConfig, error) {
	cfg := StubConfig{
		Port:      os.Getenv("PORT"),
		JWTSecret: os.Getenv("JWT_SECRET"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	//必須チェック
	if cfg.JWTSecret == "" {
		return StubConfig{}, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}
