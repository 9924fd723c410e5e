// Package gateway はクライアントが消費する外部コラボレーターの約束ごと。
// 実装は internal/infra 配下。
package gateway

import "errors"

// 対象が見つからない
var ErrNotFound = errors.New("not found")

// トークン無し・期限切れ
var ErrUnauthorized = errors.New("unauthorized")
