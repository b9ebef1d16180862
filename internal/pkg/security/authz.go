package security

import "Photoshare/internal/pkg/consts"

// CanManage 判断操作者是否有权管理某个资源：
// 资源属主、moderator 和 admin 均可操作
func CanManage(actorID uint64, actorRole string, ownerID uint64) bool {
	if actorID == ownerID {
		return true
	}
	return actorRole == consts.RoleModerator || actorRole == consts.RoleAdmin
}
