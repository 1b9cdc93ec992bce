package structures

import "time"

type CliFlags struct {
	ConfigPath string
	DebugMode  bool
}

type RemoteConfig struct {
	BaseURL string        `yaml:"baseURL" validate:"required|fullUrl"`
	Timeout time.Duration `yaml:"timeout" validate:"required|min:1"`
}

type SessionConfig struct {
	FilePath string `yaml:"filePath" validate:"required|unixPath"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type BackupConfig struct {
	Dir          string        `yaml:"dir" validate:"required|unixPath"`
	ArchiveAfter time.Duration `yaml:"archiveAfter"`
}

type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Size    int           `yaml:"size"`
	TTL     time.Duration `yaml:"ttl"`
}

type MaintainConfig struct {
	TargetExtension string `yaml:"targetExtension" validate:"required"`
	IndexPadding    int    `yaml:"indexPadding"`
}

type Config struct {
	AppName  string
	Debug    bool
	Path     string
	Remote   RemoteConfig   `yaml:"remote"`
	Session  SessionConfig  `yaml:"session"`
	Logger   LoggerConfig   `yaml:"logger"`
	Backup   BackupConfig   `yaml:"backup"`
	Cache    CacheConfig    `yaml:"cache"`
	Maintain MaintainConfig `yaml:"maintain"`
}
