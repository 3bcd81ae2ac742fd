package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection,
//   privileged accounts), security settings
// - default: Values common across all environments (timeouts, economic
//   parameter defaults), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server ServerConfig
	DB     DBConfig
	NATS   NATSConfig
	CORS   CORSConfig
	Log    LogConfig
	JWT    JWTConfig
	Engine EngineConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	// Journal writes are best-effort; an empty host disables the journal.
	Enabled bool `envconfig:"DB_JOURNAL_ENABLED" default:"true"`
}

type NATSConfig struct {
	URL     string        `envconfig:"NATS_URL" default:""`
	Name    string        `envconfig:"NATS_CLIENT_NAME" default:"sessionbook"`
	Timeout time.Duration `envconfig:"NATS_CONNECT_TIMEOUT" default:"5s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// EngineConfig seeds the escrow engine: the privileged accounts and the
// initial global economic parameters. The parameters are only starting
// values; the owner can change them at runtime, and in-flight bookings keep
// the snapshot taken when they were created.
type EngineConfig struct {
	Owner    string `envconfig:"ENGINE_OWNER" required:"true"`
	Oracle   string `envconfig:"ENGINE_ORACLE" required:"true"`
	Treasury string `envconfig:"ENGINE_TREASURY" required:"true"`

	FeeBps               int64         `envconfig:"ENGINE_FEE_BPS" default:"300"`
	LateCancelPenaltyBps int64         `envconfig:"ENGINE_LATE_CANCEL_PENALTY_BPS" default:"2000"`
	ChallengeBond        int64         `envconfig:"ENGINE_CHALLENGE_BOND" default:"10000000"`
	ChallengeWindow      time.Duration `envconfig:"ENGINE_CHALLENGE_WINDOW" default:"24h"`
	NoAttestBuffer       time.Duration `envconfig:"ENGINE_NO_ATTEST_BUFFER" default:"24h"`
	DisputeTimeout       time.Duration `envconfig:"ENGINE_DISPUTE_TIMEOUT" default:"72h"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			Enabled:  false,
		},
		Log: LogConfig{
			Level: "error", // Error level only for tests
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Engine: EngineConfig{
			Owner:    "00000000-0000-0000-0000-00000000a001",
			Oracle:   "00000000-0000-0000-0000-00000000a002",
			Treasury: "00000000-0000-0000-0000-00000000a003",

			FeeBps:               300,
			LateCancelPenaltyBps: 2000,
			ChallengeBond:        10_000_000,
			ChallengeWindow:      24 * time.Hour,
			NoAttestBuffer:       24 * time.Hour,
			DisputeTimeout:       72 * time.Hour,
		},
	}
}
