package queue

import (
	"context"
	log "log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

// Handler 处理一条任务，返回错误则按退避策略重试
type Handler func(ctx context.Context, job *Job) error

// WorkerPool 消费单个队列的工作池
type WorkerPool struct {
	queue       *Queue
	handler     Handler
	concurrency int
}

func NewWorkerPool(q *Queue, concurrency int, handler Handler) *WorkerPool {
	if concurrency < 1 {
		concurrency = 1
	}
	return &WorkerPool{
		queue:       q,
		handler:     handler,
		concurrency: concurrency,
	}
}

// Run 启动工作池，阻塞直到 ctx 取消
func (w *WorkerPool) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < w.concurrency; i++ {
		g.Go(func() error {
			return w.loop(ctx)
		})
	}
	return g.Wait()
}

func (w *WorkerPool) loop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		job, err := w.queue.Dequeue(ctx, 5*time.Second)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			log.ErrorContext(ctx, "Failed to dequeue job", "queue", w.queue.key, "err", err)
			time.Sleep(time.Second)
			continue
		}
		if job == nil {
			continue
		}

		w.process(ctx, job)
	}
}

func (w *WorkerPool) process(ctx context.Context, job *Job) {
	if err := w.handler(ctx, job); err != nil {
		job.Attempts++
		log.ErrorContext(ctx, "Job failed",
			"queue", w.queue.key, "job_id", job.ID, "type", job.Type,
			"attempts", job.Attempts, "err", err)

		if ShouldRetry(job.Attempts, w.queue.maxAttempts) {
			select {
			case <-ctx.Done():
			case <-time.After(RetryDelay(w.queue.backoff, job.Attempts)):
			}
		}
		if rqErr := w.queue.requeue(context.WithoutCancel(ctx), job); rqErr != nil {
			log.ErrorContext(ctx, "Failed to requeue job", "queue", w.queue.key, "job_id", job.ID, "err", rqErr)
		}
		return
	}

	log.InfoContext(ctx, "Job completed", "queue", w.queue.key, "job_id", job.ID, "type", job.Type)
}
