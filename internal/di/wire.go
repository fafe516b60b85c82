//go:build wireinject
// +build wireinject

package di

import (
	"FinPlan/pkg/config"
	"FinPlan/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Ambient
		ProvideLogger,
		ProvideRegistry,
		ProvideMetrics,
		ProvideEndpointMetrics,

		// Infrastructure
		ProvideCacheStore,
		ProvideCachePolicy,
		ProvideLimiter,
		ProvideSources,
		ProvideSnapshotPublisher,

		// Use cases
		ProvideMarketDataService,
		ProvideMarketContextAggregator,
		ProvidePlanningService,

		// HTTP
		ProvideHandlers,
		ProvideHTTPServer,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
