package consts

const (
	MimePrefixImage = "image/"
	MimePrefixVideo = "video/"
)

const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
	MediaTypeGif   = "gif"
)

const (
	VisibilityPublic  = "public"
	VisibilityPrivate = "private"
	VisibilityFriends = "friends"
	VisibilityCustom  = "custom"
)

const (
	RoleUser      = "user"
	RoleModerator = "moderator"
	RoleAdmin     = "admin"
)

const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

const (
	DefaultAvatarURL = "default_avatar.png"
)

// MaxFollowingCount 单个用户允许的最大关注数
const MaxFollowingCount = 5000
