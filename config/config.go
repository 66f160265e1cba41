package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Completion API
	OpenAI OpenAIConfig

	// Skill endpoint
	Skill SkillConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// OpenAIConfig holds the chat completions settings sent with every request.
type OpenAIConfig struct {
	APIKey           string
	BaseURL          string
	Model            string
	Temperature      float32
	MaxTokens        int
	TopP             float32
	PresencePenalty  float32
	FrequencyPenalty float32
	Timeout          time.Duration
}

// SkillConfig holds the checks applied to inbound skill requests.
// Zero values disable the corresponding check.
type SkillConfig struct {
	ApplicationID      string
	RateLimitPerMin    int
	TimestampTolerance time.Duration

	// TunnelAPI is the local ngrok API used to announce the public endpoint
	// during development, e.g. http://localhost:4040.
	TunnelAPI string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	return load(v)
}

// LoadFile loads configuration from an explicit path.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// OpenAI
	cfg.OpenAI.APIKey = expandEnvVar(v, v.GetString("openai.api_key"))
	if apiKey := v.GetString("openai_api_key"); apiKey != "" {
		cfg.OpenAI.APIKey = apiKey
	}
	cfg.OpenAI.BaseURL = v.GetString("openai.base_url")
	cfg.OpenAI.Model = v.GetString("openai.model")
	cfg.OpenAI.Temperature = float32(v.GetFloat64("openai.temperature"))
	cfg.OpenAI.MaxTokens = v.GetInt("openai.max_tokens")
	cfg.OpenAI.TopP = float32(v.GetFloat64("openai.top_p"))
	cfg.OpenAI.PresencePenalty = float32(v.GetFloat64("openai.presence_penalty"))
	cfg.OpenAI.FrequencyPenalty = float32(v.GetFloat64("openai.frequency_penalty"))
	cfg.OpenAI.Timeout = v.GetDuration("openai.timeout")

	// Skill
	cfg.Skill.ApplicationID = v.GetString("skill.application_id")
	cfg.Skill.RateLimitPerMin = v.GetInt("skill.rate_limit_per_min")
	cfg.Skill.TimestampTolerance = v.GetDuration("skill.timestamp_tolerance")
	cfg.Skill.TunnelAPI = v.GetString("skill.tunnel_api")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	// OpenAI defaults
	v.SetDefault("openai.base_url", "https://api.openai.com/v1")
	v.SetDefault("openai.model", "gpt-3.5-turbo")
	v.SetDefault("openai.temperature", 0.7)
	v.SetDefault("openai.max_tokens", 256)
	v.SetDefault("openai.top_p", 1.0)
	v.SetDefault("openai.timeout", "10s")

	// Skill defaults
	v.SetDefault("skill.rate_limit_per_min", 60)
	v.SetDefault("skill.timestamp_tolerance", "150s")
}

// expandEnvVar expands values in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	return os.Getenv(envVar)
}

func (c *Config) validate() error {
	if c.HTTPServer.Port <= 0 || c.HTTPServer.Port > 65535 {
		return fmt.Errorf("%w: http_server.port %d", ErrInvalidConfig, c.HTTPServer.Port)
	}
	if c.HTTPServer.Mode == "" {
		return fmt.Errorf("%w: http_server.mode is required", ErrInvalidConfig)
	}
	if c.OpenAI.Model == "" {
		return fmt.Errorf("%w: openai.model is required", ErrInvalidConfig)
	}
	if c.OpenAI.Timeout <= 0 {
		return fmt.Errorf("%w: openai.timeout must be positive", ErrInvalidConfig)
	}
	if c.OpenAI.Temperature < 0 || c.OpenAI.Temperature > 2 {
		return fmt.Errorf("%w: openai.temperature must be within [0, 2]", ErrInvalidConfig)
	}
	if c.OpenAI.MaxTokens < 0 {
		return fmt.Errorf("%w: openai.max_tokens must not be negative", ErrInvalidConfig)
	}
	if c.Skill.RateLimitPerMin < 0 {
		return fmt.Errorf("%w: skill.rate_limit_per_min must not be negative", ErrInvalidConfig)
	}
	if c.Skill.TimestampTolerance < 0 {
		return fmt.Errorf("%w: skill.timestamp_tolerance must not be negative", ErrInvalidConfig)
	}
	return nil
}
