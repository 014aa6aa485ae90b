package runtimeconfig_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-portfolio/internal/runtimeconfig"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := runtimeconfig.DefaultConfig().Validate(); err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*runtimeconfig.Config)
		want   error
	}{
		{"content dir", func(c *runtimeconfig.Config) { c.ContentDir = " " }, runtimeconfig.ErrContentDirRequired},
		{"no extensions", func(c *runtimeconfig.Config) { c.Extensions = nil }, runtimeconfig.ErrExtensionsRequired},
		{"bad extension", func(c *runtimeconfig.Config) { c.Extensions = []string{"mdx"} }, runtimeconfig.ErrExtensionInvalid},
		{"words per minute", func(c *runtimeconfig.Config) { c.ReadingTime.WordsPerMinute = 0 }, runtimeconfig.ErrWordsPerMinuteInvalid},
		{"cache ttl", func(c *runtimeconfig.Config) {
			c.Features.Cache = true
			c.Cache.TTL = 0
		}, runtimeconfig.ErrCacheTTLInvalid},
		{"watch without cache", func(c *runtimeconfig.Config) { c.Features.Watch = true }, runtimeconfig.ErrWatchRequiresCache},
		{"theme without feature", func(c *runtimeconfig.Config) { c.Themes.Name = "academic" }, runtimeconfig.ErrThemesFeatureRequired},
		{"missing provider", func(c *runtimeconfig.Config) { c.Logging.Provider = "" }, runtimeconfig.ErrLoggingProviderRequired},
		{"unknown provider", func(c *runtimeconfig.Config) { c.Logging.Provider = "syslog" }, runtimeconfig.ErrLoggingProviderUnknown},
		{"bad level", func(c *runtimeconfig.Config) { c.Logging.Level = "loud" }, runtimeconfig.ErrLoggingLevelInvalid},
		{"bad gologger format", func(c *runtimeconfig.Config) {
			c.Logging.Provider = "gologger"
			c.Logging.Format = "xml"
		}, runtimeconfig.ErrLoggingFormatInvalid},
		{"console has no formats", func(c *runtimeconfig.Config) { c.Logging.Format = "json" }, runtimeconfig.ErrLoggingFormatInvalid},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := runtimeconfig.DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestConfigValidate_AllowsZapJSON(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Logging.Provider = "ZAP"
	cfg.Logging.Format = "json"

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}
}

func TestConfigValidate_SkipsLoggingWhenFeatureDisabled(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = false
	cfg.Logging.Provider = "syslog"

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}
}
