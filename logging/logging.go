// Package logging 构建分析器各组件共享的 zap 日志器。
package logging

import (
	"fmt"

	"go.uber.org/zap"
)

// New 返回控制台日志器。调试模式记录全部日志，否则只输出警告和错误，避免干扰诊断输出。
func New(debug bool) (*zap.SugaredLogger, error) {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	cfg.Encoding = "console"
	cfg.OutputPaths = []string{"stderr"}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger.Sugar(), nil
}

// OrNop 返回 l，l 为 nil 时返回空日志器。
func OrNop(l *zap.SugaredLogger) *zap.SugaredLogger {
	if l == nil {
		return zap.NewNop().Sugar()
	}
	return l
}
