package job

// 任务类型
const (
	TypeWelcomeEmail = "welcome_email"
	TypeWeeklyReport = "weekly_report"
)

// EmailPayload 邮件任务载荷
type EmailPayload struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// ReportPayload 周报任务载荷，按用户扇出
type ReportPayload struct {
	UserID uint64 `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}
