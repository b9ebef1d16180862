package config

// Config 配置主体
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	DB     DBConfig     `mapstructure:"database"`
	Redis  RedisConfig  `mapstructure:"redis"`
	MinIO  MinIOConfig  `mapstructure:"minio"`
	JWT    JWTConfig    `mapstructure:"jwt"`
	SMTP   SMTPConfig   `mapstructure:"smtp"`
	Upload UploadConfig `mapstructure:"upload"`
	Queue  QueueConfig  `mapstructure:"queue"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port string `mapstructure:"port"`
}

// DBConfig 数据库配置
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// MinIOConfig MinIO配置
type MinIOConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Bucket    string `mapstructure:"bucket"`
	UseSSL    bool   `mapstructure:"use_ssl"`
}

// JWTConfig JWT签发配置
type JWTConfig struct {
	Secret     string `mapstructure:"secret"`
	Issuer     string `mapstructure:"issuer"`
	ExpireHour int    `mapstructure:"expire_hour"`
}

// SMTPConfig 邮件发送配置
type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
	FromName string `mapstructure:"from_name"`
	StartTLS bool   `mapstructure:"starttls"`
}

// UploadConfig 上传限制
type UploadConfig struct {
	MaxImageSize int64 `mapstructure:"max_image_size"`
	MaxVideoSize int64 `mapstructure:"max_video_size"`
	ThumbWidth   int   `mapstructure:"thumb_width"`
	ThumbHeight  int   `mapstructure:"thumb_height"`
}

// QueueConfig 任务队列配置
type QueueConfig struct {
	EmailConcurrency  int `mapstructure:"email_concurrency"`
	ReportConcurrency int `mapstructure:"report_concurrency"`
	MaxAttempts       int `mapstructure:"max_attempts"`
	BackoffSeconds    int `mapstructure:"backoff_seconds"`
}
