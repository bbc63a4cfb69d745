package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Database.validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.LLM.validate(); err != nil {
		return fmt.Errorf("llm: %w", err)
	}

	if err := c.Generation.validate(); err != nil {
		return fmt.Errorf("generation: %w", err)
	}

	return nil
}

func (d *DatabaseConfig) validate() error {
	if d.MaxConns <= 0 {
		return fmt.Errorf("max_conns must be > 0 (got %d)", d.MaxConns)
	}
	if d.MinConns < 0 || d.MinConns > d.MaxConns {
		return fmt.Errorf("min_conns must be within [0, max_conns] (got %d)", d.MinConns)
	}
	if d.ConnectTimeout < 0 {
		return fmt.Errorf("connect_timeout must be >= 0 (got %s)", d.ConnectTimeout)
	}
	return nil
}

func (l *LLMConfig) validate() error {
	if strings.TrimSpace(l.BaseURL) == "" {
		return fmt.Errorf("base_url is required")
	}
	if strings.TrimSpace(l.Model) == "" {
		return fmt.Errorf("model is required")
	}
	if l.MaxRetries < 1 {
		return fmt.Errorf("max_retries must be >= 1 (got %d)", l.MaxRetries)
	}
	if l.InitialDelay <= 0 {
		return fmt.Errorf("initial_delay must be > 0 (got %s)", l.InitialDelay)
	}
	if l.MaxDelay < l.InitialDelay {
		return fmt.Errorf("max_delay (%s) must be >= initial_delay (%s)", l.MaxDelay, l.InitialDelay)
	}
	if l.Temperature < 0 || l.Temperature > 2 {
		return fmt.Errorf("temperature must be within [0, 2] (got %v)", l.Temperature)
	}
	return nil
}

func (g *GenerationConfig) validate() error {
	if g.MinTextLength <= 0 {
		return fmt.Errorf("min_text_length must be > 0 (got %d)", g.MinTextLength)
	}
	if g.MaxTextLength < g.MinTextLength {
		return fmt.Errorf("max_text_length (%d) must be >= min_text_length (%d)", g.MaxTextLength, g.MinTextLength)
	}
	if g.MaxBulkApprove <= 0 {
		return fmt.Errorf("max_bulk_approve must be > 0 (got %d)", g.MaxBulkApprove)
	}
	if g.RateLimitPerMinute < 0 {
		return fmt.Errorf("rate_limit_per_minute must be >= 0 (got %d)", g.RateLimitPerMinute)
	}
	return nil
}
