package cron

import (
	"Photoshare/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine       *cron.Cron
	reconcileJob *job.CounterReconcileJob
	reportJob    *job.WeeklyReportJob
}

func NewCronManager(reconcileJob *job.CounterReconcileJob, reportJob *job.WeeklyReportJob) *Manager {
	return &Manager{
		engine:       cron.New(cron.WithSeconds()),
		reconcileJob: reconcileJob,
		reportJob:    reportJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob("@every 5m", s.reconcileJob); err != nil {
		return err
	}
	if _, err := s.engine.AddJob("@weekly", s.reportJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	s.engine.Stop()
}
