package api

import (
	"Photoshare/internal/api/middleware"
	"Photoshare/internal/pkg/consts"
	"Photoshare/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		userGroup := apiGroup.Group("/user")
		{
			// 无需登录即可访问的接口
			userGroup.POST("/register", group.UserHandler.Register)
			userGroup.POST("/login", group.UserHandler.Login)
			userGroup.GET("/search", group.UserHandler.SearchUser)
			userGroup.GET("/:user_id", group.UserHandler.GetUserByID)
			userGroup.GET("/:user_id/posts", group.PostHandler.ListUserPosts)
			userGroup.GET("/:user_id/followers", group.UserFollowHandler.ListFollowers)
			userGroup.GET("/:user_id/following", group.UserFollowHandler.ListFollowing)

			authGroup := userGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.GET("/info", group.UserHandler.GetUserInfo)
				authGroup.PUT("/info", group.UserHandler.UpdateUserInfo)
				authGroup.PUT("/password", group.UserHandler.ResetPassword)
				authGroup.POST("/:user_id/follow", group.UserFollowHandler.Follow)
				authGroup.DELETE("/:user_id/follow", group.UserFollowHandler.Unfollow)
			}

			// 管理端接口，仅 moderator/admin 可用
			adminGroup := userGroup.Group("")
			adminGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles(consts.RoleModerator, consts.RoleAdmin))
			{
				adminGroup.PUT("/:user_id/status", group.UserHandler.UpdateUserStatus)
			}
		}

		postGroup := apiGroup.Group("/post")
		{
			postGroup.GET("", group.PostHandler.ListPosts)
			postGroup.GET("/:post_id", group.PostHandler.GetPost)
			postGroup.GET("/:post_id/comments", group.CommentHandler.ListComments)

			authGroup := postGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("", group.PostHandler.CreatePost)
				authGroup.PUT("/:post_id", group.PostHandler.UpdatePost)
				authGroup.DELETE("/:post_id", group.PostHandler.DeletePost)
				authGroup.POST("/:post_id/like", group.PostActionHandler.LikePost)
				authGroup.DELETE("/:post_id/like", group.PostActionHandler.UnlikePost)
			}
		}

		commentGroup := apiGroup.Group("/comment")
		{
			commentGroup.GET("/:comment_id", group.CommentHandler.GetComment)

			authGroup := commentGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("", group.CommentHandler.CreateComment)
				authGroup.PUT("/:comment_id", group.CommentHandler.UpdateComment)
				authGroup.DELETE("/:comment_id", group.CommentHandler.DeleteComment)
				authGroup.POST("/:comment_id/like", group.PostActionHandler.LikeComment)
				authGroup.DELETE("/:comment_id/like", group.PostActionHandler.UnlikeComment)
			}
		}
	}

	return r
}
