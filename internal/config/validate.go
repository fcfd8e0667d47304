package config

import (
	"fmt"

	"github.com/heartmarshall/curator-backend/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %s)", c.Auth.AccessTokenTTL)
	}
	if c.Auth.PasswordHashCost < 4 || c.Auth.PasswordHashCost > 31 {
		return fmt.Errorf("auth.password_hash_cost must be in [4, 31] (got %d)", c.Auth.PasswordHashCost)
	}
	if c.RateLimit.AnalyzePerMinute < 0 || c.RateLimit.AnalyzeBurst < 0 {
		return fmt.Errorf("rate_limit values must be >= 0")
	}

	return c.validateEnrichment()
}

func (c *Config) validateEnrichment() error {
	switch c.LLM.Provider {
	case ProviderGroq, ProviderAnthropic:
	default:
		return fmt.Errorf("llm.provider must be %q or %q (got %q)", ProviderGroq, ProviderAnthropic, c.LLM.Provider)
	}
	if c.LLM.MaxTokens <= 0 {
		return fmt.Errorf("llm.max_tokens must be > 0 (got %d)", c.LLM.MaxTokens)
	}
	if c.LLM.Timeout <= 0 {
		return fmt.Errorf("llm.timeout must be > 0 (got %s)", c.LLM.Timeout)
	}
	if c.LLM.Breaker.Enabled && c.LLM.Breaker.FailureThreshold == 0 {
		return fmt.Errorf("llm.breaker.failure_threshold must be > 0 when the breaker is enabled")
	}
	if !domain.ReadMode(c.Enrichment.ReadMode).IsValid() {
		return fmt.Errorf("enrichment.read_mode must be %q or %q (got %q)",
			domain.ReadModeLazy, domain.ReadModeStrict, c.Enrichment.ReadMode)
	}
	return nil
}
