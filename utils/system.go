package utils

import (
	"strconv"

	"github.com/shirou/gopsutil/v3/cpu"
	"go.uber.org/zap"
)

// SessionCount determines how many browser sessions may run concurrently,
// from config or from system resources when set to "auto".
func SessionCount(configValue string) int {
	if manual, err := strconv.Atoi(configValue); err == nil && manual > 0 {
		zap.L().Info("using manually configured session count", zap.Int("sessions", manual))
		return manual
	}

	if configValue != "auto" {
		zap.L().Warn("invalid workers value, defaulting to auto", zap.String("value", configValue))
	}

	// Logical cores: the scroll-wait loop is mostly idle time, so
	// hyper-threading helps more than it hurts.
	cpuCores, err := cpu.Counts(true)
	if err != nil {
		zap.L().Warn("could not detect CPU cores, falling back to 2 sessions", zap.Error(err))
		return 2
	}

	// Half the cores, each session being a full browser instance.
	optimal := cpuCores / 2
	if optimal < 1 {
		optimal = 1
	}
	if optimal > 8 {
		optimal = 8
	}

	zap.L().Info("session count set from system resources",
		zap.Int("cores", cpuCores),
		zap.Int("sessions", optimal),
	)
	return optimal
}
