package constants

import "time"

const (
	StatsAPIBaseURL = "https://statsapi.mlb.com/api/v1"
)

const (
	GameCacheTTL        = 30 * time.Minute
	GameStoreTTL        = 6 * time.Hour
	ExportTTL           = 15 * time.Minute
	ExportSweepInterval = 1 * time.Minute
	CacheSweepInterval  = 5 * time.Minute
	StorePurgeInterval  = 1 * time.Hour
)

const (
	ExternalAPITimeout = 10 * time.Second
	DatabaseTimeout    = 5 * time.Second
	GameRequestTimeout = 30 * time.Second
	// batches run sequentially, one external call per identifier
	BatchRequestTimeout = 5 * time.Minute
)

const (
	DBMaxOpenConns    = 100
	DBMaxIdleConns    = 10
	DBConnMaxLifetime = 1 * time.Hour
	DBMaxIdleTime     = 10 * time.Minute
	DBBatchSize       = 100
)

const (
	ShutdownTimeout = 5 * time.Second
)

const (
	NoDataMessage = "no data found for the provided GamePk(s)"
)
