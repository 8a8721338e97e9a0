package config

import (
	"os"
	"sync"

	"github.com/Falokut/tickets_analyzer_service/internal/repository"
	"github.com/Falokut/tickets_analyzer_service/internal/repository/mongorepository"
	"github.com/Falokut/tickets_analyzer_service/internal/repository/redisrepository"
	"github.com/Falokut/tickets_analyzer_service/pkg/jaeger"
	"github.com/Falokut/tickets_analyzer_service/pkg/logging"
	"github.com/Falokut/tickets_analyzer_service/pkg/metrics"
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel        string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
	HealthcheckPort string `yaml:"healthcheck_port" env:"HEALTHCHECK_PORT"`
	Listen          struct {
		Host string `yaml:"host" env:"HOST"`
		Port string `yaml:"port" env:"PORT" env-default:"8080"`
	} `yaml:"listen"`

	PrometheusConfig struct {
		Name         string                      `yaml:"service_name" env:"PROMETHEUS_SERVICE_NAME"`
		ServerConfig metrics.MetricsServerConfig `yaml:"server_config"`
	} `yaml:"prometheus"`

	JaegerConfig jaeger.Config `yaml:"jaeger"`

	// the only route the service analyzes
	Route struct {
		Origin      string `yaml:"origin" env:"ROUTE_ORIGIN" env-default:"VVO"`
		Destination string `yaml:"destination" env:"ROUTE_DESTINATION" env-default:"TLV"`
	} `yaml:"route"`

	TicketsSource struct {
		Type     repository.SourceType  `yaml:"type" env:"TICKETS_SOURCE_TYPE" env-default:"FILE"` // support FILE, MONGO, REDIS
		FilePath string                 `yaml:"file_path" env:"TICKETS_FILE_PATH" env-default:"data/tickets.json"`
		Mongo    mongorepository.Config `yaml:"mongo"`
		Redis    redisrepository.Config `yaml:"redis"`
	} `yaml:"tickets_source"`

	AnalysisEventsConfig struct {
		Brokers []string `yaml:"brokers" env:"ANALYSIS_EVENTS_BROKERS" env-separator:","`
		Topic   string   `yaml:"topic" env:"ANALYSIS_EVENTS_TOPIC" env-default:"tickets_analyzed"`
	} `yaml:"analysis_events"`
}

var instance *Config
var once sync.Once

const defaultConfigPath = "configs/config.yml"

func GetConfig() *Config {
	once.Do(func() {
		logger := logging.GetLogger()
		instance = &Config{}

		path := os.Getenv("CONFIG_PATH")
		if path == "" {
			path = defaultConfigPath
		}
		if err := cleanenv.ReadConfig(path, instance); err != nil {
			help, _ := cleanenv.GetDescription(instance, nil)
			logger.Fatal(help, " ", err)
		}
	})

	return instance
}

// ReadConfig reads the config without touching the singleton.
func ReadConfig(path string) (*Config, error) {
	cfg := &Config{}
	if err := cleanenv.ReadConfig(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
