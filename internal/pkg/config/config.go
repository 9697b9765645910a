package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	Booking BookingConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host           string `envconfig:"DB_HOST" default:"localhost"`
	Port           string `envconfig:"DB_PORT" default:"5432"`
	User           string `envconfig:"DB_USER" required:"true"`
	Password       string `envconfig:"DB_PASSWORD" required:"true"`
	DBName         string `envconfig:"DB_NAME" required:"true"`
	SSLMode        string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone       string `envconfig:"DB_TIMEZONE" default:"Europe/Lisbon"`
	MigrationsPath string `envconfig:"DB_MIGRATIONS_PATH" default:"migrations"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:4200,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Lisbon"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// BookingConfig holds the fixed display and slot-generation parameters.
// The day timeline range is a product constant, not derived from any
// barber's actual working hours.
type BookingConfig struct {
	DayStartHour       int `envconfig:"BOOKING_DAY_START_HOUR" default:"8"`
	DayEndHour         int `envconfig:"BOOKING_DAY_END_HOUR" default:"20"`
	SlotGranularityMin int `envconfig:"BOOKING_SLOT_GRANULARITY_MIN" default:"15"`
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
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:           "localhost",
			Port:           "15433", // Test DB port
			User:           "test",
			Password:       "test",
			DBName:         "test_db",
			SSLMode:        "disable",
			TimeZone:       "Europe/Lisbon",
			MigrationsPath: "migrations",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Europe/Lisbon",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Booking: BookingConfig{
			DayStartHour:       8,
			DayEndHour:         20,
			SlotGranularityMin: 15,
		},
	}
}
