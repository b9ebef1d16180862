package job

import (
	"Photoshare/internal/pkg/mailer"
	"Photoshare/internal/pkg/queue"
	"context"
	"fmt"

	"github.com/goccy/go-json"
)

// NewEmailHandler 返回邮件队列的消费函数
func NewEmailHandler(m *mailer.Mailer) queue.Handler {
	return func(ctx context.Context, j *queue.Job) error {
		switch j.Type {
		case TypeWelcomeEmail:
			var payload EmailPayload
			if err := json.Unmarshal(j.Payload, &payload); err != nil {
				return fmt.Errorf("failed to unmarshal email payload: %w", err)
			}
			return m.Send(payload.To, payload.Subject, payload.Body)
		default:
			return fmt.Errorf("unknown email job type: %s", j.Type)
		}
	}
}
