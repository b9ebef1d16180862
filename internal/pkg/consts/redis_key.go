package consts

const (
	// PostDirtyKey 计数待对账的帖子集合
	PostDirtyKey = "post:dirty"
)

const (
	QueueEmailKey  = "queue:email"
	QueueReportKey = "queue:report"
)

const (
	ReportFanoutLock = "report:fanout:lock"
)
