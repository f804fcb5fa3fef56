package config

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the site.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`

	Server   ServerConfig   `mapstructure:",squash"`
	Content  ContentConfig  `mapstructure:",squash"`
	Carousel CarouselConfig `mapstructure:",squash"`
	Contact  ContactConfig  `mapstructure:",squash"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	// Port is the port where the server will listen.
	Port int `mapstructure:"SERVER_PORT" default:"8080" required:"true"`
	// StaticDir is served under /static and /images.
	StaticDir string `mapstructure:"STATIC_DIR" default:"./static"`
}

// ContentConfig describes where the JSON content files live.
type ContentConfig struct {
	// Dir is the local directory holding hero.json, projects.json, ...
	Dir string `mapstructure:"CONTENT_DIR" default:"./data"`
	// BaseURL, when set, makes the site fetch content over HTTP instead of Dir.
	BaseURL string `mapstructure:"CONTENT_BASE_URL"`
	// TimeoutSeconds bounds a single content fetch.
	TimeoutSeconds int `mapstructure:"CONTENT_TIMEOUT_SECONDS" default:"10"`
	// RedisURL enables the shared Redis cache, format redis://[:password@]host[:port][/database].
	RedisURL string `mapstructure:"REDIS_URL"`
	// WhatsAppHeader overrides the number used by the header button.
	WhatsAppHeader string `mapstructure:"WHATSAPP_HEADER_NUMBER"`
	// WhatsAppFloat overrides the number used by the floating button.
	WhatsAppFloat string `mapstructure:"WHATSAPP_FLOAT_NUMBER"`
}

// CarouselConfig holds the rotation timings, in milliseconds.
type CarouselConfig struct {
	IntervalMS         int `mapstructure:"CAROUSEL_INTERVAL_MS" default:"5000"`
	TrainingIntervalMS int `mapstructure:"TRAINING_INTERVAL_MS" default:"6000"`
	CooldownMS         int `mapstructure:"CAROUSEL_COOLDOWN_MS" default:"10000"`
	TestimonialDelayMS int `mapstructure:"TESTIMONIAL_START_DELAY_MS" default:"2000"`
}

// ContactConfig holds the SMTP credentials for the contact form.
// Without SMTPUser and SMTPPass submissions are only logged.
type ContactConfig struct {
	SMTPHost string `mapstructure:"SMTP_HOST" default:"smtp.gmail.com"`
	SMTPPort int    `mapstructure:"SMTP_PORT" default:"587"`
	SMTPUser string `mapstructure:"SMTP_USER"`
	SMTPPass string `mapstructure:"SMTP_PASS"`
	To       string `mapstructure:"CONTACT_TO"`
}

// Interval is the default auto-advance period.
func (c CarouselConfig) Interval() time.Duration {
	return time.Duration(c.IntervalMS) * time.Millisecond
}

// TrainingInterval is the auto-advance period of the training rotator.
func (c CarouselConfig) TrainingInterval() time.Duration {
	return time.Duration(c.TrainingIntervalMS) * time.Millisecond
}

// Cooldown is the pause after a manual interaction before auto-advance resumes.
func (c CarouselConfig) Cooldown() time.Duration {
	return time.Duration(c.CooldownMS) * time.Millisecond
}

// TestimonialDelay postpones the first testimonial tick after start.
func (c CarouselConfig) TestimonialDelay() time.Duration {
	return time.Duration(c.TestimonialDelayMS) * time.Millisecond
}

// Timeout is the per-request content fetch timeout.
func (c ContentConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// SMTPEnabled reports whether credentials for outgoing mail are present.
func (c ContactConfig) SMTPEnabled() bool {
	return c.SMTPUser != "" && c.SMTPPass != ""
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	if config.Carousel.IntervalMS < 0 || config.Carousel.TrainingIntervalMS < 0 || config.Carousel.CooldownMS < 0 {
		return nil, fmt.Errorf("carousel timings must not be negative")
	}

	return &config, nil
}

// processTags walks the struct fields, binds each key to the environment and registers defaults.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		if key == "" {
			continue
		}

		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("failed to bind %s: %w", key, err)
		}

		if defaultValue := field.Tag.Get("default"); defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		if field.Tag.Get("required") == "true" && isZero(val.Field(i)) {
			return fmt.Errorf("missing required configuration: %s", field.Tag.Get("mapstructure"))
		}
	}
	return nil
}

// isZero checks if a reflect.Value is the zero value for its type.
func isZero(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return v.String() == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}
