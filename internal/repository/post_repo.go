package repository

import (
	"Photoshare/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
)

type PostRepo interface {
	CreatePost(ctx context.Context, post *model.Post) error
	GetPost(ctx context.Context, id uint64) (*model.Post, error)
	UpdatePost(ctx context.Context, post *model.Post) error
	DeletePost(ctx context.Context, id uint64) (int64, error)
	FindAll(ctx context.Context, search string, page, limit int) ([]*model.Post, int64, error)
	ListByUser(ctx context.Context, userID uint64, page, limit int) ([]*model.Post, int64, error)

	CountByUsersSince(ctx context.Context, userIDs []uint64, since time.Time) (int64, error)

	IncreaseLikeCount(ctx context.Context, id uint64, n int) error
	DecreaseLikeCount(ctx context.Context, id uint64, n int) error
	IncreaseCommentCount(ctx context.Context, id uint64, n int) error
	DecreaseCommentCount(ctx context.Context, id uint64, n int) error
	SetCounters(ctx context.Context, id uint64, likes, comments int64) error
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepo {
	return &PostRepoImpl{
		db: db,
	}
}

func (s PostRepoImpl) CreatePost(ctx context.Context, post *model.Post) error {
	return s.db.WithContext(ctx).Create(post).Error
}

func (s PostRepoImpl) GetPost(ctx context.Context, id uint64) (*model.Post, error) {
	var post model.Post
	err := s.db.WithContext(ctx).Preload("User").First(&post, id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (s PostRepoImpl) UpdatePost(ctx context.Context, post *model.Post) error {
	return s.db.WithContext(ctx).Model(&model.Post{}).Where("id = ?", post.ID).Updates(map[string]interface{}{
		"caption":    post.Caption,
		"visibility": post.Visibility,
	}).Error
}

// DeletePost 硬删除帖子，返回受影响行数
func (s PostRepoImpl) DeletePost(ctx context.Context, id uint64) (int64, error) {
	res := s.db.WithContext(ctx).Delete(&model.Post{}, id)
	return res.RowsAffected, res.Error
}

func (s PostRepoImpl) FindAll(ctx context.Context, search string, page, limit int) ([]*model.Post, int64, error) {
	query := s.db.WithContext(ctx).Model(&model.Post{}).Where("visibility = ?", "public")
	if search != "" {
		query = query.Where("caption LIKE ?", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []*model.Post
	err := query.Preload("User").
		Order("id desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (s PostRepoImpl) ListByUser(ctx context.Context, userID uint64, page, limit int) ([]*model.Post, int64, error) {
	query := s.db.WithContext(ctx).Model(&model.Post{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []*model.Post
	err := query.Order("id desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// CountByUsersSince 统计一批用户自某时刻起发布的帖子数，供周报使用
func (s PostRepoImpl) CountByUsersSince(ctx context.Context, userIDs []uint64, since time.Time) (int64, error) {
	if len(userIDs) == 0 {
		return 0, nil
	}
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Post{}).
		Where("user_id IN ? AND created_at >= ?", userIDs, since).Count(&count).Error
	return count, err
}

func (s PostRepoImpl) IncreaseLikeCount(ctx context.Context, id uint64, n int) error {
	return s.db.WithContext(ctx).Model(&model.Post{}).Where("id = ?", id).
		UpdateColumn("likes_count", gorm.Expr("likes_count + ?", n)).Error
}

func (s PostRepoImpl) DecreaseLikeCount(ctx context.Context, id uint64, n int) error {
	return s.db.WithContext(ctx).Model(&model.Post{}).Where("id = ?", id).
		UpdateColumn("likes_count", gorm.Expr("likes_count - ?", n)).Error
}

func (s PostRepoImpl) IncreaseCommentCount(ctx context.Context, id uint64, n int) error {
	return s.db.WithContext(ctx).Model(&model.Post{}).Where("id = ?", id).
		UpdateColumn("comments_count", gorm.Expr("comments_count + ?", n)).Error
}

func (s PostRepoImpl) DecreaseCommentCount(ctx context.Context, id uint64, n int) error {
	return s.db.WithContext(ctx).Model(&model.Post{}).Where("id = ?", id).
		UpdateColumn("comments_count", gorm.Expr("comments_count - ?", n)).Error
}

// SetCounters 用真实行数覆盖冗余计数，供对账任务使用
func (s PostRepoImpl) SetCounters(ctx context.Context, id uint64, likes, comments int64) error {
	return s.db.WithContext(ctx).Model(&model.Post{}).Where("id = ?", id).Updates(map[string]interface{}{
		"likes_count":    likes,
		"comments_count": comments,
	}).Error
}
