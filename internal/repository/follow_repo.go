package repository

import (
	"Photoshare/internal/model"
	"context"

	"gorm.io/gorm"
)

type FollowRepo interface {
	Exists(ctx context.Context, followerID, followeeID uint64) (bool, error)
	Create(ctx context.Context, followerID, followeeID uint64) error
	Delete(ctx context.Context, followerID, followeeID uint64) (int64, error)
	ListFollowers(ctx context.Context, userID uint64, page, limit int) ([]*model.User, int64, error)
	ListFollowing(ctx context.Context, userID uint64, page, limit int) ([]*model.User, int64, error)
	CountFollowing(ctx context.Context, userID uint64) (int64, error)
	ListFolloweeIDs(ctx context.Context, followerID uint64) ([]uint64, error)
}

type FollowRepoImpl struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepo {
	return &FollowRepoImpl{
		db: db,
	}
}

func (s FollowRepoImpl) Exists(ctx context.Context, followerID, followeeID uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Follow{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).Count(&count).Error
	return count > 0, err
}

func (s FollowRepoImpl) Create(ctx context.Context, followerID, followeeID uint64) error {
	return s.db.WithContext(ctx).Create(&model.Follow{FollowerID: followerID, FolloweeID: followeeID}).Error
}

func (s FollowRepoImpl) Delete(ctx context.Context, followerID, followeeID uint64) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).Delete(&model.Follow{})
	return res.RowsAffected, res.Error
}

func (s FollowRepoImpl) ListFollowers(ctx context.Context, userID uint64, page, limit int) ([]*model.User, int64, error) {
	base := s.db.WithContext(ctx).Model(&model.Follow{}).Where("followee_id = ?", userID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []*model.User
	err := s.db.WithContext(ctx).Model(&model.User{}).
		Joins("INNER JOIN follows ON follows.follower_id = users.id").
		Where("follows.followee_id = ?", userID).
		Order("follows.id desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (s FollowRepoImpl) ListFollowing(ctx context.Context, userID uint64, page, limit int) ([]*model.User, int64, error) {
	base := s.db.WithContext(ctx).Model(&model.Follow{}).Where("follower_id = ?", userID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []*model.User
	err := s.db.WithContext(ctx).Model(&model.User{}).
		Joins("INNER JOIN follows ON follows.followee_id = users.id").
		Where("follows.follower_id = ?", userID).
		Order("follows.id desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (s FollowRepoImpl) CountFollowing(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Follow{}).Where("follower_id = ?", userID).Count(&count).Error
	return count, err
}

// ListFolloweeIDs 取出某用户关注的全部用户 id，供周报任务做扇出
func (s FollowRepoImpl) ListFolloweeIDs(ctx context.Context, followerID uint64) ([]uint64, error) {
	var ids []uint64
	err := s.db.WithContext(ctx).Model(&model.Follow{}).
		Where("follower_id = ?", followerID).Pluck("followee_id", &ids).Error
	return ids, err
}
