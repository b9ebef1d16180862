package repository

import (
	"Photoshare/internal/model"
	"context"

	"gorm.io/gorm"
)

type LikeRepo interface {
	ExistsPostLike(ctx context.Context, userID, postID uint64) (bool, error)
	CreatePostLike(ctx context.Context, userID, postID uint64) error
	DeletePostLike(ctx context.Context, userID, postID uint64) (int64, error)
	CountByPost(ctx context.Context, postID uint64) (int64, error)

	ExistsCommentLike(ctx context.Context, userID, commentID uint64) (bool, error)
	CreateCommentLike(ctx context.Context, userID, commentID uint64) error
	DeleteCommentLike(ctx context.Context, userID, commentID uint64) (int64, error)
}

type LikeRepoImpl struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepo {
	return &LikeRepoImpl{
		db: db,
	}
}

func (s LikeRepoImpl) ExistsPostLike(ctx context.Context, userID, postID uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Like{}).
		Where("user_id = ? AND post_id = ?", userID, postID).Count(&count).Error
	return count > 0, err
}

func (s LikeRepoImpl) CreatePostLike(ctx context.Context, userID, postID uint64) error {
	return s.db.WithContext(ctx).Create(&model.Like{UserID: userID, PostID: &postID}).Error
}

func (s LikeRepoImpl) DeletePostLike(ctx context.Context, userID, postID uint64) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).Delete(&model.Like{})
	return res.RowsAffected, res.Error
}

func (s LikeRepoImpl) CountByPost(ctx context.Context, postID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Like{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

func (s LikeRepoImpl) ExistsCommentLike(ctx context.Context, userID, commentID uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Like{}).
		Where("user_id = ? AND comment_id = ?", userID, commentID).Count(&count).Error
	return count > 0, err
}

func (s LikeRepoImpl) CreateCommentLike(ctx context.Context, userID, commentID uint64) error {
	return s.db.WithContext(ctx).Create(&model.Like{UserID: userID, CommentID: &commentID}).Error
}

func (s LikeRepoImpl) DeleteCommentLike(ctx context.Context, userID, commentID uint64) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("user_id = ? AND comment_id = ?", userID, commentID).Delete(&model.Like{})
	return res.RowsAffected, res.Error
}
