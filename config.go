package portfolio

import "github.com/goliatone/go-portfolio/internal/runtimeconfig"

var (
	ErrContentDirRequired      = runtimeconfig.ErrContentDirRequired
	ErrExtensionsRequired      = runtimeconfig.ErrExtensionsRequired
	ErrExtensionInvalid        = runtimeconfig.ErrExtensionInvalid
	ErrWordsPerMinuteInvalid   = runtimeconfig.ErrWordsPerMinuteInvalid
	ErrCacheTTLInvalid         = runtimeconfig.ErrCacheTTLInvalid
	ErrWatchRequiresCache      = runtimeconfig.ErrWatchRequiresCache
	ErrThemesFeatureRequired   = runtimeconfig.ErrThemesFeatureRequired
	ErrLoggingProviderRequired = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown  = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid     = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid    = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config            = runtimeconfig.Config
	ReadingTimeConfig = runtimeconfig.ReadingTimeConfig
	QueryConfig       = runtimeconfig.QueryConfig
	CacheConfig       = runtimeconfig.CacheConfig
	ThemeConfig       = runtimeconfig.ThemeConfig
	Features          = runtimeconfig.Features
	LoggingConfig     = runtimeconfig.LoggingConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
