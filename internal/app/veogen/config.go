package veogenapp

import (
	"errors"
	"fmt"
	"os"
	"time"

	opsrv "github.com/10Narratives/veogen/internal/services/operations"
)

const (
	StorageKindFile   = "file"
	StorageKindObject = "object"

	BackendGemini = "gemini"
	BackendVertex = "vertex"
)

type Config struct {
	Env          string        `yaml:"env" env:"VEOGEN_ENV" env-default:"dev"`
	APIKey       string        `yaml:"api_key" env:"VEOGEN_API_KEY"`
	Prompt       string        `yaml:"prompt" env:"VEOGEN_PROMPT"`
	Model        string        `yaml:"model" env:"VEOGEN_MODEL" env-default:"veo-2.0-generate-001"`
	OutputPath   string        `yaml:"output_path" env:"VEOGEN_OUTPUT_PATH" env-default:"video.mp4"`
	PollInterval time.Duration `yaml:"poll_interval" env:"VEOGEN_POLL_INTERVAL" env-default:"10s"`
	MaxWait      time.Duration `yaml:"max_wait" env:"VEOGEN_MAX_WAIT" env-default:"0s"`

	Generation GenerationConfig `yaml:"generation"`
	Backend    BackendConfig    `yaml:"backend"`
	Retry      RetryConfig      `yaml:"retry"`
	Storage    StorageConfig    `yaml:"storage"`
}

type GenerationConfig struct {
	NegativePrompt  string `yaml:"negative_prompt" env:"VEOGEN_NEGATIVE_PROMPT"`
	AspectRatio     string `yaml:"aspect_ratio" env:"VEOGEN_ASPECT_RATIO"`
	NumberOfVideos  int32  `yaml:"number_of_videos" env:"VEOGEN_NUMBER_OF_VIDEOS" env-default:"1"`
	DurationSeconds int32  `yaml:"duration_seconds" env:"VEOGEN_DURATION_SECONDS"`
}

type BackendConfig struct {
	Kind     string `yaml:"kind" env:"VEOGEN_BACKEND" env-default:"gemini"`
	Project  string `yaml:"project" env:"VEOGEN_PROJECT"`
	Location string `yaml:"location" env:"VEOGEN_LOCATION"`
}

type RetryConfig struct {
	MaxAttempts     int           `yaml:"max_attempts" env:"VEOGEN_RETRY_MAX_ATTEMPTS" env-default:"3"`
	InitialInterval time.Duration `yaml:"initial_interval" env:"VEOGEN_RETRY_INITIAL_INTERVAL" env-default:"1s"`
	MaxInterval     time.Duration `yaml:"max_interval" env:"VEOGEN_RETRY_MAX_INTERVAL" env-default:"30s"`
	Jitter          float64       `yaml:"jitter" env:"VEOGEN_RETRY_JITTER" env-default:"0.5"`
}

type StorageConfig struct {
	Kind          string              `yaml:"kind" env:"VEOGEN_STORAGE_KIND" env-default:"file"`
	Dir           string              `yaml:"dir" env:"VEOGEN_STORAGE_DIR"`
	ObjectStorage ObjectStorageConfig `yaml:"object_storage"`
}

type ObjectStorageConfig struct {
	Endpoint   string `yaml:"endpoint" env:"VEOGEN_OBJECT_STORAGE_ENDPOINT"`
	BucketName string `yaml:"bucket_name" env:"VEOGEN_OBJECT_STORAGE_BUCKET" env-default:"videos"`
	Prefix     string `yaml:"prefix" env:"VEOGEN_OBJECT_STORAGE_PREFIX"`
	User       string `yaml:"user" env:"VEOGEN_OBJECT_STORAGE_USER"`
	Password   string `yaml:"password" env:"VEOGEN_OBJECT_STORAGE_PASSWORD"`
	UseSSL     bool   `yaml:"use_ssl" env:"VEOGEN_OBJECT_STORAGE_USE_SSL" env-default:"false"`
}

// Credential returns the configured API key, falling back to GOOGLE_API_KEY.
func (c *Config) Credential() string {
	if c.APIKey != "" {
		return c.APIKey
	}
	return os.Getenv("GOOGLE_API_KEY")
}

func (c *Config) RetryPolicy() opsrv.RetryPolicy {
	return opsrv.RetryPolicy{
		MaxAttempts:         c.Retry.MaxAttempts,
		InitialInterval:     c.Retry.InitialInterval,
		MaxInterval:         c.Retry.MaxInterval,
		RandomizationFactor: c.Retry.Jitter,
	}
}

func (c *Config) Validate() error {
	if c.PollInterval <= 0 {
		return errors.New("poll_interval must be positive")
	}
	if c.MaxWait < 0 {
		return errors.New("max_wait must not be negative")
	}

	switch c.Backend.Kind {
	case BackendGemini:
		if c.Credential() == "" {
			return errors.New("api key is required: set api_key, VEOGEN_API_KEY or GOOGLE_API_KEY")
		}
	case BackendVertex:
		if c.Backend.Project == "" || c.Backend.Location == "" {
			return errors.New("backend project and location are required for vertex")
		}
	default:
		return fmt.Errorf("unknown backend %q", c.Backend.Kind)
	}

	switch c.Storage.Kind {
	case StorageKindFile:
	case StorageKindObject:
		objCfg := c.Storage.ObjectStorage
		if objCfg.Endpoint == "" || objCfg.User == "" || objCfg.Password == "" {
			return errors.New("object storage endpoint, user and password are required")
		}
	default:
		return fmt.Errorf("unknown storage kind %q", c.Storage.Kind)
	}

	return nil
}
