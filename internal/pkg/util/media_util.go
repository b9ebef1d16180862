package util

import (
	"Photoshare/internal/pkg/consts"
	"bytes"
	"fmt"
	"image/jpeg"
	"io"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// DetectMediaType 根据 MIME 类型归类媒体类型，gif 单独成类
func DetectMediaType(mimeType string) (string, bool) {
	switch {
	case mimeType == "image/gif":
		return consts.MediaTypeGif, true
	case strings.HasPrefix(mimeType, consts.MimePrefixImage):
		return consts.MediaTypeImage, true
	case strings.HasPrefix(mimeType, consts.MimePrefixVideo):
		return consts.MediaTypeVideo, true
	default:
		return "", false
	}
}

// BuildObjectName 生成对象存储中的文件名，保留原始扩展名
func BuildObjectName(originalFilename string) string {
	ext := strings.ToLower(filepath.Ext(originalFilename))
	return uuid.NewString() + ext
}

// ThumbObjectName 缩略图对象名约定为主文件名加 thumb_ 前缀
func ThumbObjectName(objectName string) string {
	return "thumb_" + strings.TrimSuffix(objectName, filepath.Ext(objectName)) + ".jpg"
}

// GenerateThumbnail 将图片等比缩放到给定尺寸内并编码为 JPEG
func GenerateThumbnail(r io.Reader, width, height int) (*bytes.Buffer, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	thumb := imaging.Fit(img, width, height, imaging.Lanczos)

	buf := new(bytes.Buffer)
	if err = jpeg.Encode(buf, thumb, &jpeg.Options{Quality: 85}); err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail: %w", err)
	}
	return buf, nil
}
