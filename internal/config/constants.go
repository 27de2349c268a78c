package config

import "time"

const (
	envPort          = "PORT"
	envProvider      = "PROVIDER"
	envStoreBackend  = "STORE_BACKEND"
	envMongoURI      = "MONGO_URI"
	envMongoDatabase = "MONGO_DATABASE"
	envMongoColl     = "MONGO_COLLECTION"
	envFeaturedLimit = "FEATURED_LIMIT"
	envCacheTTL      = "CACHE_TTL"
	envTimezone      = "TIMEZONE"
	envESPNBaseURL   = "ESPN_BASE_URL"
	envESPNTimeout   = "ESPN_TIMEOUT"
	envYouTubeURL    = "YOUTUBE_CHANNEL_URL"
	envYouTubeWait   = "YOUTUBE_TIMEOUT"
	envEnrichOn      = "ENRICH_ENABLED"
	envEnrichRate    = "ENRICH_INTERVAL"
	envEnrichDays    = "ENRICH_DAYS"
	envSnapshotOn    = "SNAPSHOT_ENABLED"
	envSnapshotDir   = "SNAPSHOT_DIR"
	envMetricsPort   = "METRICS_PORT"
	envMetricsOn     = "METRICS_ENABLED"
	envOtelEndpoint  = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService   = "OTEL_SERVICE_NAME"
	envOtelInsecure  = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort          = "4000"
	defaultProvider      = "espn"
	defaultStoreBackend  = "mongo"
	defaultMongoDatabase = "app"
	defaultMongoColl     = "game_recaps"
	defaultFeaturedLimit = 3
	// Matches the 5-minute client cache the site has always used.
	defaultCacheTTL = 5 * Duration(time.Minute)
	// The editorial pipeline and its readers live on Israel time.
	defaultTimezone    = "Asia/Jerusalem"
	defaultESPNBaseURL = "https://site.web.api.espn.com/apis/site/v2/sports/basketball/nba"
	defaultESPNTimeout = 10 * Duration(time.Second)
	defaultYouTubeURL  = "https://www.youtube.com/@TheGametimeHighlights/videos"
	defaultYouTubeWait = 15 * Duration(time.Second)
	defaultEnrichOn    = true
	// Spaced well apart; ESPN scoreboard data only changes a few times a day.
	defaultEnrichRate  = 15 * Duration(time.Minute)
	defaultEnrichDays  = 3
	defaultSnapshotOn  = true
	defaultSnapshotDir = "data/snapshots"
	defaultMetricsPort = "9090"
)
