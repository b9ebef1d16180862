package service

import (
	"Photoshare/internal/api/config"
	"Photoshare/internal/api/dto"
	"Photoshare/internal/model"
	"Photoshare/internal/pkg/consts"
	minioutil "Photoshare/internal/pkg/minio"
	"Photoshare/internal/pkg/security"
	"Photoshare/internal/pkg/util"
	"context"
	"errors"
	log "log/slog"
	"mime/multipart"
	"time"

	"github.com/jinzhu/copier"
	"github.com/minio/minio-go/v7"
	"gorm.io/gorm"

	"Photoshare/internal/repository"
)

const mediaURLExpiry = 24 * time.Hour

type PostService interface {
	CreatePost(ctx context.Context, userID uint64, caption, visibility string, file *multipart.FileHeader) (*dto.PostDTO, error)
	GetPost(ctx context.Context, id uint64) (*dto.PostDTO, error)
	UpdatePost(ctx context.Context, actorID uint64, actorRole string, id uint64, req *dto.UpdatePostRequest) error
	DeletePost(ctx context.Context, actorID uint64, actorRole string, id uint64) error
	ListPosts(ctx context.Context, query *dto.PageQuery) (*dto.PostListResponse, error)
	ListByUser(ctx context.Context, userID uint64, query *dto.PageQuery) (*dto.PostListResponse, error)
}

type PostServiceImpl struct {
	postRepo repository.PostRepo
	minio    *minio.Client
}

func NewPostService(postRepo repository.PostRepo, minioClient *minio.Client) PostService {
	return &PostServiceImpl{
		postRepo: postRepo,
		minio:    minioClient,
	}
}

// CreatePost 上传媒体文件并创建帖子，图片额外生成缩略图
func (s PostServiceImpl) CreatePost(ctx context.Context, userID uint64, caption, visibility string, file *multipart.FileHeader) (*dto.PostDTO, error) {
	mimeType := file.Header.Get("Content-Type")
	mediaType, ok := util.DetectMediaType(mimeType)
	if !ok {
		return nil, ErrFileNotSupported
	}

	upload := config.Cfg.Upload
	maxSize := upload.MaxImageSize
	if mediaType == consts.MediaTypeVideo {
		maxSize = upload.MaxVideoSize
	}
	if file.Size > maxSize {
		return nil, ErrFileTooLarge
	}

	if visibility == "" {
		visibility = consts.VisibilityPublic
	}
	if !validVisibility(visibility) {
		return nil, ErrParamInvalid
	}

	objectName := util.BuildObjectName(file.Filename)

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	if err = minioutil.UploadObject(ctx, s.minio, objectName, src, file.Size, mimeType); err != nil {
		return nil, err
	}

	if mediaType == consts.MediaTypeImage || mediaType == consts.MediaTypeGif {
		s.uploadThumbnail(ctx, file, objectName)
	}

	post := &model.Post{
		UserID:           userID,
		Caption:          caption,
		Filename:         objectName,
		OriginalFilename: file.Filename,
		MediaType:        mediaType,
		MimeType:         mimeType,
		Size:             file.Size,
		Visibility:       visibility,
	}
	if err = s.postRepo.CreatePost(ctx, post); err != nil {
		return nil, err
	}

	return s.toDTO(ctx, post)
}

func validVisibility(v string) bool {
	switch v {
	case consts.VisibilityPublic, consts.VisibilityPrivate, consts.VisibilityFriends, consts.VisibilityCustom:
		return true
	}
	return false
}

// uploadThumbnail 缩略图生成失败不阻断发帖，只记日志
func (s PostServiceImpl) uploadThumbnail(ctx context.Context, file *multipart.FileHeader, objectName string) {
	src, err := file.Open()
	if err != nil {
		log.WarnContext(ctx, "Failed to reopen media for thumbnail", "object", objectName, "err", err)
		return
	}
	defer src.Close()

	buf, err := util.GenerateThumbnail(src, config.Cfg.Upload.ThumbWidth, config.Cfg.Upload.ThumbHeight)
	if err != nil {
		log.WarnContext(ctx, "Failed to generate thumbnail", "object", objectName, "err", err)
		return
	}

	thumbName := util.ThumbObjectName(objectName)
	if err = minioutil.UploadObject(ctx, s.minio, thumbName, buf, int64(buf.Len()), "image/jpeg"); err != nil {
		log.WarnContext(ctx, "Failed to upload thumbnail", "object", thumbName, "err", err)
	}
}

func (s PostServiceImpl) GetPost(ctx context.Context, id uint64) (*dto.PostDTO, error) {
	post, err := s.postRepo.GetPost(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return s.toDTO(ctx, post)
}

func (s PostServiceImpl) UpdatePost(ctx context.Context, actorID uint64, actorRole string, id uint64, req *dto.UpdatePostRequest) error {
	post, err := s.postRepo.GetPost(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPostNotFound
		}
		return err
	}
	if !security.CanManage(actorID, actorRole, post.UserID) {
		return UnauthorizedError
	}

	if req.Caption != "" {
		post.Caption = req.Caption
	}
	if req.Visibility != "" {
		post.Visibility = req.Visibility
	}
	return s.postRepo.UpdatePost(ctx, post)
}

func (s PostServiceImpl) DeletePost(ctx context.Context, actorID uint64, actorRole string, id uint64) error {
	post, err := s.postRepo.GetPost(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPostNotFound
		}
		return err
	}
	if !security.CanManage(actorID, actorRole, post.UserID) {
		return UnauthorizedError
	}

	affected, err := s.postRepo.DeletePost(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrPostNotFound
	}

	// 对象清理失败不影响删除结果
	if err = minioutil.RemoveObject(ctx, s.minio, post.Filename); err != nil {
		log.WarnContext(ctx, "Failed to remove media object", "object", post.Filename, "err", err)
	}
	if post.MediaType != consts.MediaTypeVideo {
		thumbName := util.ThumbObjectName(post.Filename)
		if err = minioutil.RemoveObject(ctx, s.minio, thumbName); err != nil {
			log.WarnContext(ctx, "Failed to remove thumbnail object", "object", thumbName, "err", err)
		}
	}
	return nil
}

func (s PostServiceImpl) ListPosts(ctx context.Context, query *dto.PageQuery) (*dto.PostListResponse, error) {
	posts, total, err := s.postRepo.FindAll(ctx, query.Search, query.Page, query.Limit)
	if err != nil {
		return nil, err
	}
	return s.toListResponse(ctx, posts, total, query)
}

func (s PostServiceImpl) ListByUser(ctx context.Context, userID uint64, query *dto.PageQuery) (*dto.PostListResponse, error) {
	posts, total, err := s.postRepo.ListByUser(ctx, userID, query.Page, query.Limit)
	if err != nil {
		return nil, err
	}
	return s.toListResponse(ctx, posts, total, query)
}

func (s PostServiceImpl) toListResponse(ctx context.Context, posts []*model.Post, total int64, query *dto.PageQuery) (*dto.PostListResponse, error) {
	result := make([]dto.PostDTO, 0, len(posts))
	for _, p := range posts {
		item, err := s.toDTO(ctx, p)
		if err != nil {
			return nil, err
		}
		result = append(result, *item)
	}
	return &dto.PostListResponse{
		Posts:      result,
		Pagination: util.NewPagination(total, query.Page, query.Limit),
	}, nil
}

func (s PostServiceImpl) toDTO(ctx context.Context, post *model.Post) (*dto.PostDTO, error) {
	var result dto.PostDTO
	if err := copier.Copy(&result, post); err != nil {
		return nil, err
	}

	mediaURL, err := minioutil.PresignedGetURL(ctx, s.minio, post.Filename, mediaURLExpiry)
	if err != nil {
		log.WarnContext(ctx, "Failed to presign media url", "object", post.Filename, "err", err)
	} else {
		result.MediaURL = mediaURL
	}
	return &result, nil
}
