package service

import (
	"Photoshare/internal/api/dto"
	"Photoshare/internal/model"
	"Photoshare/internal/pkg/consts"
	"Photoshare/internal/pkg/util"
	"context"
	"errors"

	"github.com/jinzhu/copier"
	"gorm.io/gorm"

	"Photoshare/internal/repository"
)

type FollowService interface {
	Follow(ctx context.Context, followerID, followeeID uint64) error
	Unfollow(ctx context.Context, followerID, followeeID uint64) error
	ListFollowers(ctx context.Context, userID uint64, query *dto.PageQuery) (*dto.UserListResponse, error)
	ListFollowing(ctx context.Context, userID uint64, query *dto.PageQuery) (*dto.UserListResponse, error)
}

type FollowServiceImpl struct {
	followRepo repository.FollowRepo
	userRepo   repository.UserRepo
}

func NewFollowService(followRepo repository.FollowRepo, userRepo repository.UserRepo) FollowService {
	return &FollowServiceImpl{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// Follow 关注用户，不允许自关注和重复关注
func (s FollowServiceImpl) Follow(ctx context.Context, followerID, followeeID uint64) error {
	if followerID == followeeID {
		return ErrUserFollowSelf
	}

	if _, err := s.userRepo.GetUser(ctx, followeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	exists, err := s.followRepo.Exists(ctx, followerID, followeeID)
	if err != nil {
		return err
	}
	if exists {
		return ErrUserFollowExist
	}

	count, err := s.followRepo.CountFollowing(ctx, followerID)
	if err != nil {
		return err
	}
	if count >= consts.MaxFollowingCount {
		return ErrUserFollowLimit
	}

	if err = s.followRepo.Create(ctx, followerID, followeeID); err != nil {
		if isDuplicateEntry(err) {
			return ErrUserFollowExist
		}
		return err
	}
	return nil
}

func (s FollowServiceImpl) Unfollow(ctx context.Context, followerID, followeeID uint64) error {
	affected, err := s.followRepo.Delete(ctx, followerID, followeeID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserFollowNotFound
	}
	return nil
}

func (s FollowServiceImpl) ListFollowers(ctx context.Context, userID uint64, query *dto.PageQuery) (*dto.UserListResponse, error) {
	users, total, err := s.followRepo.ListFollowers(ctx, userID, query.Page, query.Limit)
	if err != nil {
		return nil, err
	}
	return toUserListResponse(users, total, query)
}

func (s FollowServiceImpl) ListFollowing(ctx context.Context, userID uint64, query *dto.PageQuery) (*dto.UserListResponse, error) {
	users, total, err := s.followRepo.ListFollowing(ctx, userID, query.Page, query.Limit)
	if err != nil {
		return nil, err
	}
	return toUserListResponse(users, total, query)
}

func toUserListResponse(users []*model.User, total int64, query *dto.PageQuery) (*dto.UserListResponse, error) {
	result := make([]dto.UserDTO, 0, len(users))
	for _, u := range users {
		var item dto.UserDTO
		if err := copier.Copy(&item, u); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return &dto.UserListResponse{
		Users:      result,
		Pagination: util.NewPagination(total, query.Page, query.Limit),
	}, nil
}
