package job

import (
	"Photoshare/internal/pkg/consts"
	"Photoshare/internal/pkg/logger"
	"Photoshare/internal/pkg/queue"
	redisutil "Photoshare/internal/pkg/redis"
	"Photoshare/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// WeeklyReportJob 周报扇出任务：为每个 active 用户
// 各入队一条报告任务，由 report worker 逐个生成并发送
type WeeklyReportJob struct {
	rdb         *redis.Client
	userRepo    repository.UserRepo
	reportQueue *queue.Queue
}

func NewWeeklyReportJob(rdb *redis.Client, userRepo repository.UserRepo, reportQueue *queue.Queue) *WeeklyReportJob {
	return &WeeklyReportJob{
		rdb:         rdb,
		userRepo:    userRepo,
		reportQueue: reportQueue,
	}
}

func (s *WeeklyReportJob) Run() {
	traceID := "job-report-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	// 多实例部署时只允许一个实例扇出
	locked, err := redisutil.TryLock(ctx, s.rdb, consts.ReportFanoutLock, time.Hour)
	if err != nil {
		log.ErrorContext(ctx, "acquire report fanout lock error", "err", err)
		return
	}
	if !locked {
		return
	}

	users, err := s.userRepo.ListActive(ctx)
	if err != nil {
		log.ErrorContext(ctx, "list active users error", "err", err)
		return
	}

	enqueued := 0
	for _, u := range users {
		payload := ReportPayload{
			UserID: u.ID,
			Email:  u.Email,
			Name:   u.Name,
		}
		if err = s.reportQueue.Enqueue(ctx, TypeWeeklyReport, payload); err != nil {
			log.ErrorContext(ctx, "enqueue weekly report error", "uid", u.ID, "err", err)
			continue
		}
		enqueued++
	}

	log.InfoContext(ctx, "weekly report fanout success",
		"user_count", len(users),
		"enqueued_count", enqueued)
}
