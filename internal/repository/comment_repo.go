package repository

import (
	"Photoshare/internal/model"
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// 评论树的最大展开深度，防御成环的脏数据
const maxCommentTreeDepth = 128

// MySQL 5.7 不认识 WITH RECURSIVE，报语法错误
const mysqlParseError = 1064

var commentSortFields = map[string]string{
	"id":         "id",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

type CommentRepo interface {
	CreateComment(ctx context.Context, comment *model.Comment) error
	GetComment(ctx context.Context, id uint64) (*model.Comment, error)
	UpdateComment(ctx context.Context, id uint64, text string) (int64, error)
	DeleteTree(ctx context.Context, id uint64) (int64, error)
	ListByPost(ctx context.Context, postID uint64, page, limit int, sortBy, order string) ([]*model.Comment, int64, error)
	CountByPost(ctx context.Context, postID uint64) (int64, error)
}

type CommentRepoImpl struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepo {
	return &CommentRepoImpl{
		db: db,
	}
}

func (s CommentRepoImpl) CreateComment(ctx context.Context, comment *model.Comment) error {
	return s.db.WithContext(ctx).Create(comment).Error
}

func (s CommentRepoImpl) GetComment(ctx context.Context, id uint64) (*model.Comment, error) {
	var comment model.Comment
	err := s.db.WithContext(ctx).Preload("User").First(&comment, id).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// UpdateComment 更新评论内容，返回受影响行数，0 表示评论不存在
func (s CommentRepoImpl) UpdateComment(ctx context.Context, id uint64, text string) (int64, error) {
	res := s.db.WithContext(ctx).Model(&model.Comment{}).Where("id = ?", id).Update("comment", text)
	return res.RowsAffected, res.Error
}

// DeleteTree 在一个事务内删除评论及其全部后代，返回删除的行数。
// 评论不存在时返回 0 且不报错，由调用方决定语义。
func (s CommentRepoImpl) DeleteTree(ctx context.Context, id uint64) (int64, error) {
	var deleted int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ids, err := collectSubtreeIDs(tx, id)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}
		res := tx.Where("id IN ?", ids).Delete(&model.Comment{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}

// collectSubtreeIDs 优先用递归 CTE 取出整棵子树的 id，
// 数据库不支持时退化为逐层 BFS
func collectSubtreeIDs(tx *gorm.DB, rootID uint64) ([]uint64, error) {
	var ids []uint64
	err := tx.Raw(`WITH RECURSIVE comment_tree AS (
		SELECT id FROM comments WHERE id = ?
		UNION ALL
		SELECT c.id FROM comments c INNER JOIN comment_tree ct ON c.parent_id = ct.id
	) SELECT id FROM comment_tree`, rootID).Scan(&ids).Error
	if err == nil {
		return ids, nil
	}
	if !cteUnsupported(err) {
		return nil, err
	}
	return collectSubtreeIDsBFS(tx, rootID)
}

// cteUnsupported 仅当错误表明数据库不支持递归 CTE 语法时成立，
// 取消、连接中断等错误不触发退化，原样上抛
func cteUnsupported(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlParseError
}

func collectSubtreeIDsBFS(tx *gorm.DB, rootID uint64) ([]uint64, error) {
	var root int64
	if err := tx.Model(&model.Comment{}).Where("id = ?", rootID).Count(&root).Error; err != nil {
		return nil, err
	}
	if root == 0 {
		return nil, nil
	}

	all := []uint64{rootID}
	frontier := []uint64{rootID}
	for depth := 0; depth < maxCommentTreeDepth && len(frontier) > 0; depth++ {
		var children []uint64
		if err := tx.Model(&model.Comment{}).Where("parent_id IN ?", frontier).Pluck("id", &children).Error; err != nil {
			return nil, err
		}
		all = append(all, children...)
		frontier = children
	}
	return all, nil
}

func (s CommentRepoImpl) ListByPost(ctx context.Context, postID uint64, page, limit int, sortBy, order string) ([]*model.Comment, int64, error) {
	query := s.db.WithContext(ctx).Model(&model.Comment{}).Where("post_id = ?", postID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	field, ok := commentSortFields[sortBy]
	if !ok {
		field = "id"
	}
	if order != "asc" {
		order = "desc"
	}

	var comments []*model.Comment
	err := query.Preload("User").
		Order(field + " " + order).
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&comments).Error
	if err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}

func (s CommentRepoImpl) CountByPost(ctx context.Context, postID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Comment{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}
