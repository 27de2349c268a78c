package config

// Config holds runtime configuration for the server.
type Config struct {
	Port      string
	Provider  string
	Timezone  string
	Store     StoreConfig
	Featured  FeaturedConfig
	Cache     CacheConfig
	ESPN      ESPNConfig
	YouTube   YouTubeConfig
	Enrich    EnrichConfig
	Snapshots SnapshotsConfig
	Metrics   MetricsConfig
}

// StoreConfig selects and configures the recap store backend.
type StoreConfig struct {
	Backend    string // "mongo" or "memory"
	MongoURI   string
	Database   string
	Collection string
}

// FeaturedConfig controls the featuring engine selection size.
type FeaturedConfig struct {
	Limit int
}

// CacheConfig controls the TTL response cache.
type CacheConfig struct {
	TTL Duration
}

// ESPNConfig controls the ESPN upstream client.
type ESPNConfig struct {
	BaseURL string
	Timeout Duration
}

// YouTubeConfig controls the highlights channel scrape.
type YouTubeConfig struct {
	ChannelURL string
	Timeout    Duration
}

// EnrichConfig controls the background ESPN game-ID enrichment worker.
type EnrichConfig struct {
	Enabled  bool
	Interval Duration
	Days     int
}

// SnapshotsConfig controls the on-disk day-response fallback.
type SnapshotsConfig struct {
	Enabled bool
	Dir     string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:     envOrDefault(envPort, defaultPort),
		Provider: envOrDefault(envProvider, defaultProvider),
		Timezone: envOrDefault(envTimezone, defaultTimezone),
		Store: StoreConfig{
			Backend:    envOrDefault(envStoreBackend, defaultStoreBackend),
			MongoURI:   envOrDefault(envMongoURI, ""),
			Database:   envOrDefault(envMongoDatabase, defaultMongoDatabase),
			Collection: envOrDefault(envMongoColl, defaultMongoColl),
		},
		Featured: FeaturedConfig{
			Limit: intEnvOrDefault(envFeaturedLimit, defaultFeaturedLimit),
		},
		Cache: CacheConfig{
			TTL: durationEnvOrDefault(envCacheTTL, defaultCacheTTL),
		},
		ESPN: ESPNConfig{
			BaseURL: envOrDefault(envESPNBaseURL, defaultESPNBaseURL),
			Timeout: durationEnvOrDefault(envESPNTimeout, defaultESPNTimeout),
		},
		YouTube: YouTubeConfig{
			ChannelURL: envOrDefault(envYouTubeURL, defaultYouTubeURL),
			Timeout:    durationEnvOrDefault(envYouTubeWait, defaultYouTubeWait),
		},
		Enrich: EnrichConfig{
			Enabled:  boolEnvOrDefault(envEnrichOn, defaultEnrichOn),
			Interval: durationEnvOrDefault(envEnrichRate, defaultEnrichRate),
			Days:     intEnvOrDefault(envEnrichDays, defaultEnrichDays),
		},
		Snapshots: SnapshotsConfig{
			Enabled: boolEnvOrDefault(envSnapshotOn, defaultSnapshotOn),
			Dir:     envOrDefault(envSnapshotDir, defaultSnapshotDir),
		},
		Metrics: loadMetrics(),
	}
}
