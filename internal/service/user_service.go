package service

import (
	"Photoshare/internal/api/dto"
	"Photoshare/internal/job"
	"Photoshare/internal/model"
	"Photoshare/internal/pkg/consts"
	"Photoshare/internal/pkg/queue"
	"Photoshare/internal/pkg/security"
	"Photoshare/internal/pkg/util"
	"context"
	"errors"
	"fmt"
	log "log/slog"

	"github.com/jinzhu/copier"
	"gorm.io/gorm"

	"Photoshare/internal/repository"
)

type UserService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserDTO, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	GetProfile(ctx context.Context, id uint64) (*dto.UserDTO, error)
	UpdateProfile(ctx context.Context, id uint64, req *dto.UpdateUserRequest) error
	ResetPassword(ctx context.Context, id uint64, req *dto.ResetPasswordRequest) error
	SetStatus(ctx context.Context, id uint64, status string) error
	ListUsers(ctx context.Context, query *dto.PageQuery) (*dto.UserListResponse, error)
}

type UserServiceImpl struct {
	userRepo   repository.UserRepo
	emailQueue *queue.Queue
}

func NewUserService(userRepo repository.UserRepo, emailQueue *queue.Queue) UserService {
	return &UserServiceImpl{
		userRepo:   userRepo,
		emailQueue: emailQueue,
	}
}

// Register 注册新用户，成功后异步发送欢迎邮件
func (s UserServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserDTO, error) {
	if _, err := s.userRepo.GetUserByUsername(ctx, req.Username); err == nil {
		return nil, ErrUserUsernameExist
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if _, err := s.userRepo.GetUserByEmail(ctx, req.Email); err == nil {
		return nil, ErrUserEmailExist
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Password: hashed,
		Role:     consts.RoleUser,
		Avatar:   consts.DefaultAvatarURL,
		Mobile:   req.Mobile,
		Gender:   req.Gender,
		Status:   consts.UserStatusActive,
	}
	if err = s.userRepo.CreateUser(ctx, user); err != nil {
		if isDuplicateEntry(err) {
			return nil, ErrUserUsernameExist
		}
		return nil, err
	}

	payload := job.EmailPayload{
		To:      user.Email,
		Subject: "欢迎加入 Photoshare",
		Body:    fmt.Sprintf("Hi %s，欢迎加入 Photoshare！", user.Name),
	}
	if err = s.emailQueue.Enqueue(ctx, job.TypeWelcomeEmail, payload); err != nil {
		log.WarnContext(ctx, "Failed to enqueue welcome email", "user_id", user.ID, "err", err)
	}

	var result dto.UserDTO
	if err = copier.Copy(&result, user); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s UserServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if err = security.CheckPasswordHash(req.Password, user.Password); err != nil {
		return nil, ErrPasswordIncorrect
	}
	if user.Status != consts.UserStatusActive {
		return nil, ErrUserInactive
	}

	token, err := security.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	var userDTO dto.UserDTO
	if err = copier.Copy(&userDTO, user); err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: userDTO}, nil
}

func (s UserServiceImpl) GetProfile(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	var result dto.UserDTO
	if err = copier.Copy(&result, user); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s UserServiceImpl) UpdateProfile(ctx context.Context, id uint64, req *dto.UpdateUserRequest) error {
	user, err := s.userRepo.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Avatar != "" {
		user.Avatar = req.Avatar
	}
	if req.Mobile != "" {
		user.Mobile = req.Mobile
	}
	if req.Gender != "" {
		user.Gender = req.Gender
	}
	return s.userRepo.UpdateUser(ctx, user)
}

func (s UserServiceImpl) ResetPassword(ctx context.Context, id uint64, req *dto.ResetPasswordRequest) error {
	user, err := s.userRepo.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err = security.CheckPasswordHash(req.OldPassword, user.Password); err != nil {
		return ErrPasswordIncorrect
	}

	hashed, err := security.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	return s.userRepo.UpdatePassword(ctx, id, hashed)
}

// SetStatus 启用或停用用户，供管理端调用
func (s UserServiceImpl) SetStatus(ctx context.Context, id uint64, status string) error {
	if _, err := s.userRepo.GetUser(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	affected, err := s.userRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNothingUpdated
	}
	return nil
}

func (s UserServiceImpl) ListUsers(ctx context.Context, query *dto.PageQuery) (*dto.UserListResponse, error) {
	users, total, err := s.userRepo.FindAll(ctx, query.Search, query.Page, query.Limit)
	if err != nil {
		return nil, err
	}

	result := make([]dto.UserDTO, 0, len(users))
	for _, u := range users {
		var item dto.UserDTO
		if err = copier.Copy(&item, u); err != nil {
			return nil, err
		}
		result = append(result, item)
	}

	return &dto.UserListResponse{
		Users:      result,
		Pagination: util.NewPagination(total, query.Page, query.Limit),
	}, nil
}
