package logutils

import (
	"go.uber.org/zap"
)

func NewLogger(env string) (*zap.Logger, error) {
	switch env {
	case "prod":
		return zap.NewProduction()
	case "quiet":
		return zap.NewNop(), nil
	default:
		return zap.NewDevelopment()
	}
}
