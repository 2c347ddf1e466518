package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, secrets)
// - default: Values common across all environments (clinic timezone, windows, timeouts)
//
// Notification gateway credentials are NOT here: they are clinic settings kept
// in the store and loaded once per request (see shared.NotificationSettings).
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Clinic    ClinicConfig
	Reminder  ReminderConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
	// Shared secret presented by the external scheduler on /api/internal routes.
	TriggerToken string `envconfig:"INTERNAL_TRIGGER_TOKEN"`
}

type DBConfig struct {
	Host     string        `envconfig:"DB_HOST" default:"localhost"`
	Port     string        `envconfig:"DB_PORT" default:"5432"`
	User     string        `envconfig:"DB_USER" required:"true"`
	Password string        `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string        `envconfig:"DB_NAME" required:"true"`
	SSLMode  string        `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string        `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32         `envconfig:"DB_MAX_CONNS" default:"10"`
	Timeout  time.Duration `envconfig:"STORE_TIMEOUT" default:"10s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
}

type ClinicConfig struct {
	UTCOffsetSeconds int `envconfig:"CLINIC_UTC_OFFSET_SECONDS" default:"-10800"` // UTC-3
	HorizonDays      int `envconfig:"BOOKING_HORIZON_DAYS" default:"60"`
	// Default region used when a stored phone number carries no country code.
	PhoneRegion string `envconfig:"CLINIC_PHONE_REGION" default:"BR"`
	// In-process reaper schedule; empty leaves reaping to availability reads
	// and the internal trigger route.
	ReapSchedule string `envconfig:"RESERVATION_REAP_SCHEDULE" default:"@every 5m"`
}

type ReminderConfig struct {
	Schedule            string        `envconfig:"REMINDER_SCHEDULE" default:"@every 10m"`
	LeadMin             time.Duration `envconfig:"REMINDER_LEAD_MIN" default:"45m"`
	LeadMax             time.Duration `envconfig:"REMINDER_LEAD_MAX" default:"75m"`
	MarkSentOnFailure   bool          `envconfig:"REMINDER_MARK_SENT_ON_FAILURE" default:"true"`
	GatewayTimeout      time.Duration `envconfig:"NOTIFICATION_TIMEOUT" default:"10s"`
	PostCommitTaskLimit time.Duration `envconfig:"POST_COMMIT_TASK_TIMEOUT" default:"15s"`
	JobTimeout          time.Duration `envconfig:"SCHEDULED_JOB_TIMEOUT" default:"2m"`
}

type RateLimitConfig struct {
	PerMinute int `envconfig:"RATE_LIMIT_PER_MINUTE" default:"20"`
	Burst     int `envconfig:"RATE_LIMIT_BURST" default:"5"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Clinic.HorizonDays < 0 {
		return fmt.Errorf("BOOKING_HORIZON_DAYS must not be negative, got %d", c.Clinic.HorizonDays)
	}
	if c.Reminder.LeadMin <= 0 || c.Reminder.LeadMax < c.Reminder.LeadMin {
		return fmt.Errorf("invalid reminder window [%s, %s]", c.Reminder.LeadMin, c.Reminder.LeadMax)
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:         "8889", // Test port
			TriggerToken: "test-trigger-token",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 4,
			Timeout:  10 * time.Second,
		},
		CORS: CORSConfig{
			AllowOrigins:     []string{"http://localhost:3000", "http://localhost:8080"},
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret: "test-secret",
		},
		Clinic: ClinicConfig{
			UTCOffsetSeconds: -10800,
			HorizonDays:      60,
			PhoneRegion:      "BR",
			ReapSchedule:     "",
		},
		Reminder: ReminderConfig{
			Schedule:            "",
			LeadMin:             45 * time.Minute,
			LeadMax:             75 * time.Minute,
			MarkSentOnFailure:   true,
			GatewayTimeout:      5 * time.Second,
			PostCommitTaskLimit: 5 * time.Second,
			JobTimeout:          30 * time.Second,
		},
		RateLimit: RateLimitConfig{
			PerMinute: 1000,
			Burst:     100,
		},
	}
}
