package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// TryLock 尝试获取分布式锁，成功返回 true
func TryLock(ctx context.Context, rdb *redis.Client, key string, ttl time.Duration) (bool, error) {
	ok, err := rdb.SetNX(ctx, key, 1, ttl).Result()
	if err != nil {
		return false, err
	}
	return ok, nil
}

// UnLock 释放分布式锁
func UnLock(ctx context.Context, rdb *redis.Client, key string) error {
	return rdb.Del(ctx, key).Err()
}

// AddToSet 将成员加入集合
func AddToSet(ctx context.Context, rdb *redis.Client, key string, members ...interface{}) error {
	return rdb.SAdd(ctx, key, members...).Err()
}

// RenameSet 原子地重命名集合，源不存在时返回 false
func RenameSet(ctx context.Context, rdb *redis.Client, src, dst string) (bool, error) {
	err := rdb.Rename(ctx, src, dst).Err()
	if err != nil {
		if errors.Is(err, redis.Nil) || err.Error() == "ERR no such key" {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// DrainSet 弹出集合中的全部成员并删除该集合
func DrainSet(ctx context.Context, rdb *redis.Client, key string) ([]string, error) {
	members, err := rdb.SMembers(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	if err = rdb.Del(ctx, key).Err(); err != nil {
		return nil, err
	}
	return members, nil
}
