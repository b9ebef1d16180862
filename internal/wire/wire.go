package wire

import (
	"Photoshare/internal/api"
	"Photoshare/internal/api/config"
	"Photoshare/internal/api/handler"
	"Photoshare/internal/job"
	"Photoshare/internal/pkg/consts"
	"Photoshare/internal/pkg/cron"
	"Photoshare/internal/pkg/mailer"
	"Photoshare/internal/pkg/queue"
	"Photoshare/internal/repository"
	"Photoshare/internal/service"

	"github.com/gin-gonic/gin"
	minioclient "github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router        *gin.Engine
	DB            *gorm.DB
	CronMgr       *cron.Manager
	EmailWorkers  *queue.WorkerPool
	ReportWorkers *queue.WorkerPool
}

func BuildApplication(db *gorm.DB, rdb *redis.Client, minioClient *minioclient.Client, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	followRepo := repository.NewFollowRepository(db)

	emailQueue := queue.NewQueue(rdb, consts.QueueEmailKey, cfg.Queue.MaxAttempts, cfg.Queue.BackoffSeconds)
	reportQueue := queue.NewQueue(rdb, consts.QueueReportKey, cfg.Queue.MaxAttempts, cfg.Queue.BackoffSeconds)

	userService := service.NewUserService(userRepo, emailQueue)
	postService := service.NewPostService(postRepo, minioClient)
	commentService := service.NewCommentService(commentRepo, postRepo, rdb)
	actionService := service.NewPostActionService(likeRepo, postRepo, commentRepo, rdb)
	followService := service.NewFollowService(followRepo, userRepo)

	handlers := &api.HandlersGroup{
		UserHandler:       handler.NewUserHandler(userService),
		UserFollowHandler: handler.NewUserFollowHandler(followService),
		PostHandler:       handler.NewPostHandler(postService),
		PostActionHandler: handler.NewPostActionHandler(actionService),
		CommentHandler:    handler.NewCommentHandler(commentService),
	}

	router := api.SetupRouter(handlers)

	reconcileJob := job.NewCounterReconcileJob(rdb, postRepo, likeRepo, commentRepo)
	reportJob := job.NewWeeklyReportJob(rdb, userRepo, reportQueue)
	cronMgr := cron.NewCronManager(reconcileJob, reportJob)

	m := mailer.NewMailer(&cfg.SMTP)
	emailWorkers := queue.NewWorkerPool(emailQueue, cfg.Queue.EmailConcurrency, job.NewEmailHandler(m))
	reportWorkers := queue.NewWorkerPool(reportQueue, cfg.Queue.ReportConcurrency, job.NewReportHandler(m, followRepo, postRepo))

	return &ApplicationContainer{
		Router:        router,
		DB:            db,
		CronMgr:       cronMgr,
		EmailWorkers:  emailWorkers,
		ReportWorkers: reportWorkers,
	}, nil
}
