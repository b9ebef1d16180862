package job

import (
	"Photoshare/internal/pkg/consts"
	"Photoshare/internal/pkg/logger"
	redisutil "Photoshare/internal/pkg/redis"
	"Photoshare/internal/pkg/util"
	"Photoshare/internal/repository"
	"context"
	log "log/slog"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// CounterReconcileJob 对账任务：把脏帖子的冗余计数
// 与 likes / comments 表中的真实行数对齐
type CounterReconcileJob struct {
	rdb         *redis.Client
	postRepo    repository.PostRepo
	likeRepo    repository.LikeRepo
	commentRepo repository.CommentRepo
}

func NewCounterReconcileJob(
	rdb *redis.Client,
	postRepo repository.PostRepo,
	likeRepo repository.LikeRepo,
	commentRepo repository.CommentRepo,
) *CounterReconcileJob {
	return &CounterReconcileJob{
		rdb:         rdb,
		postRepo:    postRepo,
		likeRepo:    likeRepo,
		commentRepo: commentRepo,
	}
}

func (s *CounterReconcileJob) Run() {
	traceID := "job-reconcile-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	processingKey := consts.PostDirtyKey + ":processing"
	ok, err := redisutil.RenameSet(ctx, s.rdb, consts.PostDirtyKey, processingKey)
	if err != nil {
		log.ErrorContext(ctx, "rename post dirty set error", "err", err)
		return
	}
	if !ok {
		return
	}

	members, err := redisutil.DrainSet(ctx, s.rdb, processingKey)
	if err != nil {
		log.ErrorContext(ctx, "drain post dirty set error", "err", err)
		return
	}

	postIDs, err := util.StrSliceToUInt64Slice(members)
	if err != nil {
		log.ErrorContext(ctx, "convert post set to int slice error", "err", err)
		return
	}

	synced := 0
	for _, pid := range postIDs {
		likes, err := s.likeRepo.CountByPost(ctx, pid)
		if err != nil {
			log.ErrorContext(ctx, "count post likes error", "pid", pid, "err", err)
			continue
		}
		comments, err := s.commentRepo.CountByPost(ctx, pid)
		if err != nil {
			log.ErrorContext(ctx, "count post comments error", "pid", pid, "err", err)
			continue
		}

		if err = s.postRepo.SetCounters(ctx, pid, likes, comments); err != nil {
			log.ErrorContext(ctx, "set post counters error", "pid", pid, "err", err)
			continue
		}
		synced++
	}

	log.InfoContext(ctx, "reconcile post counters success",
		"dirty_count", len(postIDs),
		"synced_count", synced)
}
