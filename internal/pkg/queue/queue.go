package queue

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Job 队列中的一条任务
type Job struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	Payload    json.RawMessage `json:"payload"`
	Attempts   int             `json:"attempts"`
	EnqueuedAt time.Time       `json:"enqueued_at"`
}

// Queue 基于 Redis List 的任务队列，LPUSH 入队，BRPOP 出队
type Queue struct {
	rdb         *redis.Client
	key         string
	maxAttempts int
	backoff     time.Duration
}

func NewQueue(rdb *redis.Client, key string, maxAttempts int, backoffSeconds int) *Queue {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &Queue{
		rdb:         rdb,
		key:         key,
		maxAttempts: maxAttempts,
		backoff:     time.Duration(backoffSeconds) * time.Second,
	}
}

func (q *Queue) Key() string {
	return q.key
}

// Enqueue 序列化任务并入队
func (q *Queue) Enqueue(ctx context.Context, jobType string, payload interface{}) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal job payload: %w", err)
	}

	job := Job{
		ID:         uuid.NewString(),
		Type:       jobType,
		Payload:    raw,
		Attempts:   0,
		EnqueuedAt: time.Now(),
	}

	data, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}

	return q.rdb.LPush(ctx, q.key, data).Err()
}

// Dequeue 阻塞地弹出一条任务，超时返回 nil
func (q *Queue) Dequeue(ctx context.Context, timeout time.Duration) (*Job, error) {
	res, err := q.rdb.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	if len(res) != 2 {
		return nil, nil
	}

	var job Job
	if err = json.Unmarshal([]byte(res[1]), &job); err != nil {
		return nil, fmt.Errorf("failed to unmarshal job: %w", err)
	}
	return &job, nil
}

// requeue 重试入队，超过最大次数后转入失败队列
func (q *Queue) requeue(ctx context.Context, job *Job) error {
	data, err := json.Marshal(job)
	if err != nil {
		return err
	}
	if job.Attempts >= q.maxAttempts {
		return q.rdb.LPush(ctx, q.key+":failed", data).Err()
	}
	return q.rdb.LPush(ctx, q.key, data).Err()
}

// RetryDelay 按尝试次数计算指数退避的等待时间
func RetryDelay(base time.Duration, attempts int) time.Duration {
	if attempts < 1 {
		attempts = 1
	}
	delay := base
	for i := 1; i < attempts; i++ {
		delay *= 2
	}
	if delay > 5*time.Minute {
		delay = 5 * time.Minute
	}
	return delay
}

// ShouldRetry 判断失败任务是否还有重试额度
func ShouldRetry(attempts, maxAttempts int) bool {
	return attempts < maxAttempts
}
