package job

import (
	"Photoshare/internal/pkg/mailer"
	"Photoshare/internal/pkg/queue"
	"Photoshare/internal/repository"
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

// NewReportHandler 返回周报队列的消费函数：
// 统计用户关注对象近一周的新帖数并发送摘要邮件
func NewReportHandler(m *mailer.Mailer, followRepo repository.FollowRepo, postRepo repository.PostRepo) queue.Handler {
	return func(ctx context.Context, j *queue.Job) error {
		if j.Type != TypeWeeklyReport {
			return fmt.Errorf("unknown report job type: %s", j.Type)
		}

		var payload ReportPayload
		if err := json.Unmarshal(j.Payload, &payload); err != nil {
			return fmt.Errorf("failed to unmarshal report payload: %w", err)
		}

		followeeIDs, err := followRepo.ListFolloweeIDs(ctx, payload.UserID)
		if err != nil {
			return err
		}

		since := time.Now().AddDate(0, 0, -7)
		newPosts, err := postRepo.CountByUsersSince(ctx, followeeIDs, since)
		if err != nil {
			return err
		}

		subject := "你的 Photoshare 周报"
		body := fmt.Sprintf(
			"Hi %s，过去一周你关注的 %d 位用户共发布了 %d 条新内容，快去看看吧！",
			payload.Name, len(followeeIDs), newPosts)
		return m.Send(payload.Email, subject, body)
	}
}
