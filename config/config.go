package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr       string `mapstructure:"REDIS_ADDR"`
	RedisPassword   string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB    int    `mapstructure:"REDIS_CACHE_DB"`
	RedisOTPDB      int    `mapstructure:"REDIS_OTP_DB"`
	RedisPresenceDB int    `mapstructure:"REDIS_PRESENCE_DB"`

	// SMTP configuration for transactional mail.
	SMTPHost   string `mapstructure:"SMTP_HOST"`
	SMTPPort   int    `mapstructure:"SMTP_PORT"`
	SMTPUser   string `mapstructure:"SMTP_USER"`
	SMTPPass   string `mapstructure:"SMTP_PASS"`
	MailSender string `mapstructure:"MAIL_SENDER"`

	// FrontendBaseURL is where password-reset links point.
	FrontendBaseURL string `mapstructure:"FRONTEND_BASE_URL"`

	// Salon business policy. The slot algorithm is parameterized by these;
	// it never hardcodes operating hours.
	SalonOpenTime       string `mapstructure:"SALON_OPEN_TIME"`
	SalonCloseTime      string `mapstructure:"SALON_CLOSE_TIME"`
	SlotIntervalMinutes int    `mapstructure:"SLOT_INTERVAL_MINUTES"`
	BookingLeadMinutes  int    `mapstructure:"BOOKING_LEAD_MINUTES"`
	BusinessTimeZone    string `mapstructure:"BUSINESS_TIMEZONE"`
	PresenceTTLMinutes  int    `mapstructure:"PRESENCE_TTL_MINUTES"`
	OTPTTLMinutes       int    `mapstructure:"OTP_TTL_MINUTES"`

	// Default admin bootstrap.
	DefaultAdminEmail    string `mapstructure:"DEFAULT_ADMIN_EMAIL"`
	DefaultAdminName     string `mapstructure:"DEFAULT_ADMIN_NAME"`
	DefaultAdminPhone    string `mapstructure:"DEFAULT_ADMIN_PHONE"`
	DefaultAdminPassword string `mapstructure:"DEFAULT_ADMIN_PASSWORD"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "glamazon")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_OTP_DB", 2)
	viper.SetDefault("REDIS_PRESENCE_DB", 3)
	viper.SetDefault("SMTP_HOST", "smtp.gmail.com")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:5174")
	viper.SetDefault("SALON_OPEN_TIME", "11:00")
	viper.SetDefault("SALON_CLOSE_TIME", "22:00")
	viper.SetDefault("SLOT_INTERVAL_MINUTES", 30)
	viper.SetDefault("BOOKING_LEAD_MINUTES", 30)
	viper.SetDefault("BUSINESS_TIMEZONE", "Local")
	viper.SetDefault("PRESENCE_TTL_MINUTES", 5)
	viper.SetDefault("OTP_TTL_MINUTES", 10)
	viper.SetDefault("DEFAULT_ADMIN_EMAIL", "")
	viper.SetDefault("DEFAULT_ADMIN_NAME", "Administrator")
	viper.SetDefault("DEFAULT_ADMIN_PHONE", "")
	viper.SetDefault("DEFAULT_ADMIN_PASSWORD", "")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// BusinessLocation resolves the configured business time zone. All calendar-day
// comparisons (past-date checks, same-day buffers) run in this location so the
// definition of a business day does not drift with the host clock.
func BusinessLocation() *time.Location {
	tz := AppConfig.BusinessTimeZone
	if tz == "" || tz == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Printf("Invalid BUSINESS_TIMEZONE %q, falling back to local time: %v", tz, err)
		return time.Local
	}
	return loc
}
