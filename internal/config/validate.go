package config

import (
	"fmt"
	"strings"

	"github.com/robfig/cron/v3"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.PasswordHashCost < 4 || c.Auth.PasswordHashCost > 31 {
		return fmt.Errorf("auth.password_hash_cost must be in [4, 31] (got %d)", c.Auth.PasswordHashCost)
	}

	if err := c.Storage.validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	if err := c.Processing.validate(); err != nil {
		return fmt.Errorf("processing: %w", err)
	}
	if err := c.AI.validate(); err != nil {
		return fmt.Errorf("ai: %w", err)
	}
	if c.Redis.RecentLimit <= 0 {
		return fmt.Errorf("redis: recent_limit must be > 0 (got %d)", c.Redis.RecentLimit)
	}
	if err := c.Scheduler.validate(); err != nil {
		return fmt.Errorf("scheduler: %w", err)
	}
	if c.Scheduler.StaleAfter > 0 && c.Scheduler.StaleAfter <= c.Processing.ZipTimeout {
		return fmt.Errorf("scheduler: stale_after (%s) must exceed processing.zip_timeout (%s)",
			c.Scheduler.StaleAfter, c.Processing.ZipTimeout)
	}

	return nil
}

func (s *StorageConfig) validate() error {
	if strings.TrimSpace(s.UploadDir) == "" {
		return fmt.Errorf("upload_dir is required")
	}
	if s.MaxUploadBytes <= 0 {
		return fmt.Errorf("max_upload_bytes must be > 0 (got %d)", s.MaxUploadBytes)
	}
	return nil
}

func (p *ProcessingConfig) validate() error {
	if p.Workers <= 0 {
		return fmt.Errorf("workers must be > 0 (got %d)", p.Workers)
	}
	if p.ZipMaxEntries <= 0 {
		return fmt.Errorf("zip_max_entries must be > 0 (got %d)", p.ZipMaxEntries)
	}
	if p.DocxChunkChars <= 0 {
		return fmt.Errorf("docx_chunk_chars must be > 0 (got %d)", p.DocxChunkChars)
	}
	return nil
}

func (a *AIConfig) validate() error {
	if a.MaxRetries < 1 {
		return fmt.Errorf("max_retries must be >= 1 (got %d)", a.MaxRetries)
	}
	if a.RequestsPerSec <= 0 {
		return fmt.Errorf("requests_per_sec must be > 0 (got %v)", a.RequestsPerSec)
	}
	if a.Temperature < 0 || a.Temperature > 2 {
		return fmt.Errorf("temperature must be in [0, 2] (got %v)", a.Temperature)
	}
	return nil
}

func (s *SchedulerConfig) validate() error {
	if !s.Enabled {
		return nil
	}
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	if _, err := parser.Parse(s.ReindexSpec); err != nil {
		return fmt.Errorf("reindex_spec %q: %w", s.ReindexSpec, err)
	}
	if _, err := parser.Parse(s.CleanupSpec); err != nil {
		return fmt.Errorf("cleanup_spec %q: %w", s.CleanupSpec, err)
	}
	if s.StaleAfter <= 0 {
		return fmt.Errorf("stale_after must be > 0 (got %s)", s.StaleAfter)
	}
	return nil
}
