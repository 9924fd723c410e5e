// Package notify はローカル通知コラボレーターの実装。
package notify

import (
	"log/slog"

	"app/internal/gateway"
)

// 端末通知の代わりにslogへ出す
type LogNotifier struct {
	log *slog.Logger
}

// DI
func NewLogNotifier(log *slog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(title string, body string) {
	n.log.Info("notification", "title", title, "body", body)
}

var _ gateway.Notifier = (*LogNotifier)(nil)
