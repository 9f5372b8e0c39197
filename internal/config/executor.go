package config

import (
	"os"
	"strconv"
	"time"
)

type ExecutorConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
}

func NewExecutorConfig() *ExecutorConfig {
	timeoutSec, err := strconv.Atoi(os.Getenv("EXECUTOR_TIMEOUT_SEC"))
	if err != nil {
		timeoutSec = 30
	}
	return &ExecutorConfig{
		BaseURL:        getEnv("EXECUTOR_BASE_URL", "http://localhost:8090"),
		RequestTimeout: time.Duration(timeoutSec) * time.Second,
	}
}
