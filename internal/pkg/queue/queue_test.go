package queue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestShouldRetry(t *testing.T) {
	assert.True(t, ShouldRetry(1, 3))
	assert.True(t, ShouldRetry(2, 3))
	assert.False(t, ShouldRetry(3, 3))
	assert.False(t, ShouldRetry(4, 3))
}

func TestRetryDelay(t *testing.T) {
	base := 5 * time.Second
	assert.Equal(t, 5*time.Second, RetryDelay(base, 1))
	assert.Equal(t, 10*time.Second, RetryDelay(base, 2))
	assert.Equal(t, 20*time.Second, RetryDelay(base, 3))

	// 上限 5 分钟
	assert.Equal(t, 5*time.Minute, RetryDelay(base, 20))

	// 非法次数按 1 处理
	assert.Equal(t, base, RetryDelay(base, 0))
}
