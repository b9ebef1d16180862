package service

import (
	"Photoshare/internal/api/dto"
	"Photoshare/internal/model"
	"Photoshare/internal/pkg/consts"
	redisutil "Photoshare/internal/pkg/redis"
	"Photoshare/internal/pkg/security"
	"Photoshare/internal/pkg/util"
	"context"
	"errors"
	log "log/slog"

	"github.com/jinzhu/copier"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"Photoshare/internal/repository"
)

type CommentService interface {
	CreateComment(ctx context.Context, userID uint64, req *dto.CreateCommentRequest) (*dto.CommentDTO, error)
	GetComment(ctx context.Context, id uint64) (*dto.CommentDTO, error)
	UpdateComment(ctx context.Context, actorID uint64, actorRole string, id uint64, req *dto.UpdateCommentRequest) error
	DeleteComment(ctx context.Context, actorID uint64, actorRole string, id uint64) (int64, error)
	ListByPost(ctx context.Context, postID uint64, query *dto.PageQuery) (*dto.CommentListResponse, error)
}

type CommentServiceImpl struct {
	commentRepo repository.CommentRepo
	postRepo    repository.PostRepo
	rdb         *redis.Client
}

func NewCommentService(commentRepo repository.CommentRepo, postRepo repository.PostRepo, rdb *redis.Client) CommentService {
	return &CommentServiceImpl{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		rdb:         rdb,
	}
}

// CreateComment 创建评论或回复，成功后帖子评论数 +1
func (s CommentServiceImpl) CreateComment(ctx context.Context, userID uint64, req *dto.CreateCommentRequest) (*dto.CommentDTO, error) {
	if _, err := s.postRepo.GetPost(ctx, req.PostID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	if req.ParentID != nil {
		parent, err := s.commentRepo.GetComment(ctx, *req.ParentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrParentCommentNotFound
			}
			return nil, err
		}
		if parent.PostID != req.PostID {
			return nil, ErrParentPostMismatch
		}
	}

	comment := &model.Comment{
		UserID:   userID,
		PostID:   req.PostID,
		Comment:  req.Comment,
		ParentID: req.ParentID,
	}
	if err := s.commentRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	if err := s.postRepo.IncreaseCommentCount(ctx, req.PostID, 1); err != nil {
		log.ErrorContext(ctx, "Failed to increase comment count", "post_id", req.PostID, "err", err)
	}
	s.markDirty(ctx, req.PostID)

	var result dto.CommentDTO
	if err := copier.Copy(&result, comment); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s CommentServiceImpl) GetComment(ctx context.Context, id uint64) (*dto.CommentDTO, error) {
	comment, err := s.commentRepo.GetComment(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}

	var result dto.CommentDTO
	if err = copier.Copy(&result, comment); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s CommentServiceImpl) UpdateComment(ctx context.Context, actorID uint64, actorRole string, id uint64, req *dto.UpdateCommentRequest) error {
	comment, err := s.commentRepo.GetComment(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}
	if !security.CanManage(actorID, actorRole, comment.UserID) {
		return UnauthorizedError
	}

	affected, err := s.commentRepo.UpdateComment(ctx, id, req.Comment)
	if err != nil {
		return err
	}
	// 已确认评论存在，0 行受影响说明内容与原文相同
	if affected == 0 {
		return ErrNothingUpdated
	}
	return nil
}

// DeleteComment 删除评论及其整棵回复子树，
// 返回实际删除的行数并按该值扣减帖子评论数
func (s CommentServiceImpl) DeleteComment(ctx context.Context, actorID uint64, actorRole string, id uint64) (int64, error) {
	comment, err := s.commentRepo.GetComment(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrCommentNotFound
		}
		return 0, err
	}
	if !security.CanManage(actorID, actorRole, comment.UserID) {
		return 0, UnauthorizedError
	}

	deleted, err := s.commentRepo.DeleteTree(ctx, id)
	if err != nil {
		return 0, err
	}
	if deleted == 0 {
		return 0, ErrCommentNotFound
	}

	if err = s.postRepo.DecreaseCommentCount(ctx, comment.PostID, int(deleted)); err != nil {
		log.ErrorContext(ctx, "Failed to decrease comment count", "post_id", comment.PostID, "n", deleted, "err", err)
	}
	s.markDirty(ctx, comment.PostID)

	return deleted, nil
}

func (s CommentServiceImpl) ListByPost(ctx context.Context, postID uint64, query *dto.PageQuery) (*dto.CommentListResponse, error) {
	if _, err := s.postRepo.GetPost(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	comments, total, err := s.commentRepo.ListByPost(ctx, postID, query.Page, query.Limit, query.SortBy, query.Order)
	if err != nil {
		return nil, err
	}

	result := make([]dto.CommentDTO, 0, len(comments))
	for _, c := range comments {
		var item dto.CommentDTO
		if err = copier.Copy(&item, c); err != nil {
			return nil, err
		}
		result = append(result, item)
	}

	return &dto.CommentListResponse{
		Comments:   result,
		Pagination: util.NewPagination(total, query.Page, query.Limit),
	}, nil
}

// markDirty 把帖子标记为计数待对账，失败只记日志
func (s CommentServiceImpl) markDirty(ctx context.Context, postID uint64) {
	if err := redisutil.AddToSet(ctx, s.rdb, consts.PostDirtyKey, postID); err != nil {
		log.WarnContext(ctx, "Failed to mark post dirty", "post_id", postID, "err", err)
	}
}
