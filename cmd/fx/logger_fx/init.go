package logger_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Provide(
	provideLogger)

func provideLogger() (*zap.Logger, error) {
	return zap.NewProduction()
}
