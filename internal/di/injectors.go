//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"

	"cloudtidy/internal"
	"cloudtidy/internal/maintain"
	"cloudtidy/internal/providers"
	"cloudtidy/internal/remote"
	"cloudtidy/internal/services"
	"cloudtidy/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewCacheProvider,
		providers.NewConsolePrompter,
		providers.NewProgressFactory,

		services.NewSessionService,
		remote.NewClient,
		remote.NewCachedClient,

		maintain.NewZstdCompressor,
		maintain.NewExecutor,
		maintain.NewBackupWriter,
		maintain.NewArchiver,
		internal.NewApp,
	)

	return nil, nil
}
