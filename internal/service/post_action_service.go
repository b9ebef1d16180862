package service

import (
	"Photoshare/internal/pkg/consts"
	redisutil "Photoshare/internal/pkg/redis"
	"Photoshare/internal/repository"
	"context"
	"errors"
	log "log/slog"

	"github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const mysqlDuplicateEntry = 1062

type PostActionService interface {
	LikePost(ctx context.Context, userID, postID uint64) error
	UnlikePost(ctx context.Context, userID, postID uint64) error
	LikeComment(ctx context.Context, userID, commentID uint64) error
	UnlikeComment(ctx context.Context, userID, commentID uint64) error
}

type PostActionServiceImpl struct {
	likeRepo    repository.LikeRepo
	postRepo    repository.PostRepo
	commentRepo repository.CommentRepo
	rdb         *redis.Client
}

func NewPostActionService(likeRepo repository.LikeRepo, postRepo repository.PostRepo, commentRepo repository.CommentRepo, rdb *redis.Client) PostActionService {
	return &PostActionServiceImpl{
		likeRepo:    likeRepo,
		postRepo:    postRepo,
		commentRepo: commentRepo,
		rdb:         rdb,
	}
}

// LikePost 点赞帖子，重复点赞返回冲突，成功后点赞数 +1
func (s PostActionServiceImpl) LikePost(ctx context.Context, userID, postID uint64) error {
	if _, err := s.postRepo.GetPost(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPostNotFound
		}
		return err
	}

	exists, err := s.likeRepo.ExistsPostLike(ctx, userID, postID)
	if err != nil {
		return err
	}
	if exists {
		return ErrAlreadyLiked
	}

	if err = s.likeRepo.CreatePostLike(ctx, userID, postID); err != nil {
		// 并发下唯一索引兜底
		if isDuplicateEntry(err) {
			return ErrAlreadyLiked
		}
		return err
	}

	if err = s.postRepo.IncreaseLikeCount(ctx, postID, 1); err != nil {
		log.ErrorContext(ctx, "Failed to increase like count", "post_id", postID, "err", err)
	}
	s.markDirty(ctx, postID)
	return nil
}

// UnlikePost 取消点赞，未点赞返回 NotFound，成功后点赞数 -1
func (s PostActionServiceImpl) UnlikePost(ctx context.Context, userID, postID uint64) error {
	affected, err := s.likeRepo.DeletePostLike(ctx, userID, postID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrLikeNotFound
	}

	if err = s.postRepo.DecreaseLikeCount(ctx, postID, 1); err != nil {
		log.ErrorContext(ctx, "Failed to decrease like count", "post_id", postID, "err", err)
	}
	s.markDirty(ctx, postID)
	return nil
}

func (s PostActionServiceImpl) LikeComment(ctx context.Context, userID, commentID uint64) error {
	if _, err := s.commentRepo.GetComment(ctx, commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}

	exists, err := s.likeRepo.ExistsCommentLike(ctx, userID, commentID)
	if err != nil {
		return err
	}
	if exists {
		return ErrAlreadyLiked
	}

	if err = s.likeRepo.CreateCommentLike(ctx, userID, commentID); err != nil {
		if isDuplicateEntry(err) {
			return ErrAlreadyLiked
		}
		return err
	}
	return nil
}

func (s PostActionServiceImpl) UnlikeComment(ctx context.Context, userID, commentID uint64) error {
	affected, err := s.likeRepo.DeleteCommentLike(ctx, userID, commentID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrLikeNotFound
	}
	return nil
}

func (s PostActionServiceImpl) markDirty(ctx context.Context, postID uint64) {
	if err := redisutil.AddToSet(ctx, s.rdb, consts.PostDirtyKey, postID); err != nil {
		log.WarnContext(ctx, "Failed to mark post dirty", "post_id", postID, "err", err)
	}
}

func isDuplicateEntry(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == mysqlDuplicateEntry
}
