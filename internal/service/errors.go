package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	Conflict            = 409
	InternalServerError = 500
)

var (
	ErrParamInvalid          = errors.New("参数错误")
	ErrUserNotFound          = errors.New("用户不存在")
	ErrUserInactive          = errors.New("用户已被停用")
	ErrUserUsernameExist     = errors.New("用户名已存在")
	ErrUserEmailExist        = errors.New("邮箱已注册")
	ErrPasswordIncorrect     = errors.New("密码错误")
	ErrPostNotFound          = errors.New("帖子不存在")
	ErrCommentNotFound       = errors.New("评论不存在")
	ErrParentCommentNotFound = errors.New("父评论不存在")
	ErrParentPostMismatch    = errors.New("父评论不属于该帖子")
	ErrNothingUpdated        = errors.New("内容无变化")
	ErrAlreadyLiked          = errors.New("已点赞")
	ErrLikeNotFound          = errors.New("未点赞")
	ErrUserFollowExist       = errors.New("用户已关注")
	ErrUserFollowLimit       = errors.New("用户关注数量超过限制")
	ErrUserFollowSelf        = errors.New("用户不能关注自己")
	ErrUserFollowNotFound    = errors.New("未关注该用户")
	ErrFileNotSupported      = errors.New("不支持的文件类型")
	ErrFileTooLarge          = errors.New("文件大小超过限制")
	UnauthorizedError        = errors.New("权限不足")
	UnExpectedError          = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:          BadRequest,
	ErrUserNotFound:          NotFound,
	ErrUserInactive:          Forbidden,
	ErrUserUsernameExist:     Conflict,
	ErrUserEmailExist:        Conflict,
	ErrPasswordIncorrect:     Unauthorized,
	ErrPostNotFound:          NotFound,
	ErrCommentNotFound:       NotFound,
	ErrParentCommentNotFound: NotFound,
	ErrParentPostMismatch:    BadRequest,
	ErrNothingUpdated:        BadRequest,
	ErrAlreadyLiked:          Conflict,
	ErrLikeNotFound:          NotFound,
	ErrUserFollowExist:       Conflict,
	ErrUserFollowLimit:       BadRequest,
	ErrUserFollowSelf:        BadRequest,
	ErrUserFollowNotFound:    NotFound,
	ErrFileNotSupported:      BadRequest,
	ErrFileTooLarge:          BadRequest,
	UnauthorizedError:        Forbidden,
	UnExpectedError:          InternalServerError,
}
