// Package httpapi はバックエンドREST APIのHTTP/JSONクライアント実装。
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"app/internal/gateway"
)

// bearerトークンの供給。okがfalseならAuthorizationヘッダを付けない。
type TokenSource interface {
	Token() (token string, ok bool)
}

type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

// DI
func NewClient(baseURL string, tokens TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
		tokens: tokens,
	}
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// JSONリクエストを投げてJSONレスポンスをoutへ読む。
// 401はErrUnauthorized、404はErrNotFoundへ寄せる。
func (c *Client) doJSON(ctx context.Context, method string, path string, in any, out any, authed bool) error {
	var reqBody io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	if authed {
		token, ok := c.tokens.Token()
		if !ok {
			// トークン無し・期限切れはリクエストを投げる前に返す
			return gateway.ErrUnauthorized
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return gateway.ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return gateway.ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		var eb errorBody
		if err := json.Unmarshal(body, &eb); err == nil {
			msg := eb.Error
			if msg == "" {
				msg = eb.Message
			}
			if msg != "" {
				return fmt.Errorf("api error (%d): %s", resp.StatusCode, msg)
			}
		}
		return fmt.Errorf("api error (%d)", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
