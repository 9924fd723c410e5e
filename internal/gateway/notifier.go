package gateway

// ローカル通知。戻り値は見ない（fire-and-forget）。
type Notifier interface {
	Notify(title string, body string)
}
