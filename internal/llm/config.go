package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of language model task being performed.
type TaskType string

const (
	// TaskExtract pulls structured fields out of a respondent utterance.
	TaskExtract TaskType = "extract"
	// TaskFollowUp phrases a conversational follow-up question.
	TaskFollowUp TaskType = "followup"
)

// TaskConfig holds per-task model parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides the global timeout if > 0
}

// Config holds all configuration for the language model subsystem.
type Config struct {
	Enabled    bool
	LogCalls   bool
	Endpoint   string
	Model      string
	TimeoutMs  int
	MaxRetries int
	Tasks      map[TaskType]TaskConfig
}

// DefaultConfig returns a Config with sensible defaults. The model is
// enabled by default: an unreachable server degrades to the deterministic
// fallback paths rather than failing turns.
func DefaultConfig() Config {
	return Config{
		Enabled:    true,
		LogCalls:   false,
		Endpoint:   "http://localhost:11434",
		Model:      "llama3.2",
		TimeoutMs:  8000,
		MaxRetries: 0,
		Tasks: map[TaskType]TaskConfig{
			// Extraction wants determinism; follow-ups tolerate a little color.
			TaskExtract:  {Temperature: 0.0, MaxTokens: 512, TimeoutMs: 8000},
			TaskFollowUp: {Temperature: 0.4, MaxTokens: 256, TimeoutMs: 5000},
		},
	}
}

// LoadConfig reads language model configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("INTAKE_LLM_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("INTAKE_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("INTAKE_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("INTAKE_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("INTAKE_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("INTAKE_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}

	applyTaskTimeoutEnv(&cfg, TaskExtract, "INTAKE_LLM_EXTRACT_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskFollowUp, "INTAKE_LLM_FOLLOWUP_TIMEOUT_MS")

	return cfg
}

// TaskTimeout returns the effective timeout for a task: the task-specific
// value if set, otherwise the global one.
func (c Config) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

func applyTaskTimeoutEnv(cfg *Config, task TaskType, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	tc := cfg.Tasks[task]
	tc.TimeoutMs = n
	cfg.Tasks[task] = tc
}
