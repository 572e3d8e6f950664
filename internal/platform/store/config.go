package store

import (
	"time"

	"bizquery/internal/platform/config"
)

// Config aggregates per backend configuration
type Config struct {
	// AppName is reported to Postgres as application_name
	AppName string

	PG PGConfig
}

// PGConfig configures postgres connectivity and tracing
type PGConfig struct {
	Enabled     bool
	URL         string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int

	// ReadOnly makes every session default to read-only transactions
	ReadOnly bool
	// StatementTimeout is a session wide ceiling; 0 leaves the server default
	StatementTimeout time.Duration

	ConnectRetries int           // ping attempts before giving up, default 6
	PingTimeout    time.Duration // per attempt, default 3s
}

const (
	defaultConnectRetries = 6
	defaultPingTimeout    = 3 * time.Second
)

// FromConf reads SERVICE_PGSQL_* keys. The URL is only required when enabled
func FromConf(appName string, c config.Conf) Config {
	pc := c.Prefix("SERVICE_PGSQL_")
	cfg := Config{
		AppName: appName,
		PG: PGConfig{
			Enabled:          pc.MayBool("ENABLED", false),
			MaxConns:         int32(pc.MayIntIn("MAX_CONNS", 4, 1, 64)),
			LogSQL:           pc.MayBool("LOG_SQL", false),
			SlowQueryMs:      pc.MayInt("SLOW_MS", 250),
			ReadOnly:         pc.MayBool("READ_ONLY", true),
			StatementTimeout: pc.MayDuration("STATEMENT_TIMEOUT", 0),
			ConnectRetries:   pc.MayInt("CONNECT_RETRIES", defaultConnectRetries),
			PingTimeout:      pc.MayDuration("PING_TIMEOUT", defaultPingTimeout),
		},
	}
	if cfg.PG.Enabled {
		cfg.PG.URL = pc.MustString("DBURL")
	}
	return cfg
}
