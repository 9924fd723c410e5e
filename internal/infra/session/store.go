// Package session はbearerトークンのファイル保管。
package session

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type FileStore struct {
	path string
}

// DI
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// トークンをファイルへ保存（0600）
func (s *FileStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(token), 0o600)
}

// 有効なトークンを返す。無い・期限切れは ok=false。
func (s *FileStore) Token() (string, bool) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return "", false
	}
	token := strings.TrimSpace(string(b))
	if token == "" {
		return "", false
	}
	if expired(token, time.Now()) {
		return "", false
	}
	return token, true
}

func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// expクレームで期限切れかを見る。
// 署名鍵はサーバーしか知らないので検証はしない（期限の判定だけ）。
// パースできない・expが無いトークンは期限切れ扱い。
func expired(token string, now time.Time) bool {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}
	return !now.Before(exp.Time)
}
