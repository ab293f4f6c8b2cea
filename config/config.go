package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"petstar/internal/infrastructure/broker"
	"petstar/internal/infrastructure/database"
	"petstar/internal/infrastructure/minio"
	"petstar/pkg/logger"
)

const prodEnvironment = "prod"

// Config represents the configs used by services on system.
type Config struct {
	Environment     string                 `yaml:"environment"`
	HTTP            HTTPConfig             `yaml:"http"`
	MinIOClient     minio.ClientConfig     `yaml:"minio_client"`
	MinIOStorage    minio.StorageConfig    `yaml:"minio_storage"`
	DBConfig        database.Config        `yaml:"db_config"`
	BrokerConfig    broker.Config          `yaml:"redis_broker_config"`
	PublisherConfig broker.PublisherConfig `yaml:"publisher_config"`
	Logger          logger.Config          `yaml:"logger"`
}

type HTTPConfig struct {
	Address         string  `yaml:"address"`
	BodyLimit       string  `yaml:"body_limit"`
	RateLimit       float64 `yaml:"rate_limit"`
	ShutdownTimeout int64   `yaml:"shutdown_timeout_in_ms"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}
	defer file.Close()

	config := &Config{}

	decoder := yaml.NewDecoder(file)

	if err := decoder.Decode(config); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	if config.Environment != prodEnvironment {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, Error{
				reason: err.Error(),
			}
		}
	}

	config.MinIOClient.AccessKey = os.Getenv("MINIO_ROOT_USER")
	config.MinIOClient.SecretKey = os.Getenv("MINIO_ROOT_PASSWORD")
	config.DBConfig.URI = os.Getenv("DATABASE_URI")
	config.BrokerConfig.URI = os.Getenv("BROKER_URI")

	if err = config.basicCheck(); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	return config, nil
}

// basicCheck validates the basic stuff in config.
func (c *Config) basicCheck() error {
	switch {
	case c.HTTP.Address == "":
		return errors.New("http.address is required")
	case c.MinIOClient.Endpoint == "":
		return errors.New("minio_client.endpoint is required")
	case c.MinIOStorage.Bucket == "":
		return errors.New("minio_storage.bucket is required")
	case c.DBConfig.DBName == "":
		return errors.New("db_config.db_name is required")
	case c.BrokerConfig.StreamName == "":
		return errors.New("redis_broker_config.stream_name is required")
	case c.HTTP.RateLimit < 0:
		return errors.New("http.rate_limit must not be negative")
	}

	return nil
}
