package providers

import (
	"cloudtidy/internal/structures"
	"fmt"
	"github.com/spf13/viper"
	"path/filepath"
	"strings"
	"time"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.SetDefault("maintain.targetExtension", ".pdf")
	viper.SetDefault("maintain.indexPadding", 3)
	viper.SetDefault("cache.ttl", 5*time.Minute)
	viper.SetDefault("remote.timeout", 30*time.Second)

	viper.BindEnv("logger.level", "CLOUDTIDY_LOG_LEVEL")
	viper.BindEnv("remote.baseURL", "CLOUDTIDY_REMOTE_URL")
	viper.BindEnv("session.filePath", "CLOUDTIDY_SESSION_FILE")
	viper.BindEnv("cache.enabled", "CLOUDTIDY_CACHE_ENABLED")
	viper.BindEnv("cache.size", "CLOUDTIDY_CACHE_SIZE")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "cloudtidy"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode
	if conf.Debug {
		conf.Logger.Level = "debug"
	}

	return &conf, nil
}
