package chat

import "time"

// Config is the explicit settings object handed to the chat service. Nothing
// in the pipeline reads the environment at request time.
type Config struct {
	AutoExpenseDefault       bool
	CompletionProvider       string `validate:"required,oneof=openrouter openai gemini"`
	CompletionModel          string
	Timezone                 string        `validate:"required"`
	CompletionTimeout        time.Duration `validate:"gt=0"`
	CacheTTL                 time.Duration `validate:"gte=0"`
	AdvisoryExpenseThreshold int64         `validate:"gt=0"`
	RequestTimeout           time.Duration `validate:"gt=0"`
}

func DefaultConfig() Config {
	return Config{
		AutoExpenseDefault:       false,
		CompletionProvider:       "openrouter",
		Timezone:                 "Asia/Jakarta",
		CompletionTimeout:        25 * time.Second,
		CacheTTL:                 10 * time.Minute,
		AdvisoryExpenseThreshold: 10_000_000,
		RequestTimeout:           30 * time.Second,
	}
}
