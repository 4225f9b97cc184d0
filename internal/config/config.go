package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port              string `envconfig:"PORT" default:"9446"`
	LogLevel          string `envconfig:"LOG_LEVEL" default:"info"`
	OperatorWorkers   int    `envconfig:"OPERATOR_WORKERS" default:"1"`
	OperatorQueueSize int    `envconfig:"OPERATOR_QUEUE_SIZE" default:"1000"`
}

func ProcessEnvironmentVariables() (*Config, error) {
	var env Config
	if err := envconfig.Process("", &env); err != nil {
		return nil, err
	}

	return &env, nil
}
