package config

import "time"

// JudgeConfig drives the judge protocol adapter and the execution
// orchestrator. All knobs come from the environment; the chunk and
// initial-batch sizes are tunables, not protocol constants.
type JudgeConfig struct {
	BaseURL          string
	AuthToken        string
	MaxPollRetries   int
	PollInterval     time.Duration
	ChunkSize        int
	InitialBatchSize int
}

func NewJudgeConfig() *JudgeConfig {
	pollIntervalMs := getIntEnv("JUDGE_POLL_INTERVAL_MS", 1000)
	return &JudgeConfig{
		BaseURL:          getEnv("JUDGE_BASE_URL", "http://localhost:2358"),
		AuthToken:        getEnv("JUDGE_AUTH_TOKEN", ""),
		MaxPollRetries:   getIntEnv("JUDGE_MAX_POLL_RETRIES", 30),
		PollInterval:     time.Duration(pollIntervalMs) * time.Millisecond,
		ChunkSize:        getIntEnv("JUDGE_CHUNK_SIZE", 20),
		InitialBatchSize: getIntEnv("JUDGE_INITIAL_BATCH_SIZE", 5),
	}
}
