package repository

import (
	"Photoshare/internal/model"
	"context"

	"gorm.io/gorm"
)

type UserRepo interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, id uint64) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	UpdateUser(ctx context.Context, user *model.User) error
	UpdatePassword(ctx context.Context, id uint64, hashed string) error
	UpdateStatus(ctx context.Context, id uint64, status string) (int64, error)
	FindAll(ctx context.Context, search string, page, limit int) ([]*model.User, int64, error)
	ListActive(ctx context.Context) ([]*model.User, error)
}

type UserRepoImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepo {
	return &UserRepoImpl{
		db: db,
	}
}

func (s UserRepoImpl) CreateUser(ctx context.Context, user *model.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

func (s UserRepoImpl) GetUser(ctx context.Context, id uint64) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s UserRepoImpl) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s UserRepoImpl) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s UserRepoImpl) UpdateUser(ctx context.Context, user *model.User) error {
	return s.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", user.ID).Updates(map[string]interface{}{
		"name":   user.Name,
		"avatar": user.Avatar,
		"mobile": user.Mobile,
		"gender": user.Gender,
	}).Error
}

func (s UserRepoImpl) UpdatePassword(ctx context.Context, id uint64, hashed string) error {
	return s.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Update("password", hashed).Error
}

// UpdateStatus 变更用户状态，返回受影响行数，0 表示状态未变或用户不存在
func (s UserRepoImpl) UpdateStatus(ctx context.Context, id uint64, status string) (int64, error) {
	res := s.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Update("status", status)
	return res.RowsAffected, res.Error
}

func (s UserRepoImpl) FindAll(ctx context.Context, search string, page, limit int) ([]*model.User, int64, error) {
	query := s.db.WithContext(ctx).Model(&model.User{})
	if search != "" {
		query = query.Where("username LIKE ? OR name LIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []*model.User
	err := query.Order("id desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// ListActive 取出所有 active 用户，供周报任务使用
func (s UserRepoImpl) ListActive(ctx context.Context) ([]*model.User, error) {
	var users []*model.User
	err := s.db.WithContext(ctx).Where("status = ?", "active").Find(&users).Error
	return users, err
}
