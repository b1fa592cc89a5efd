package util

import (
	"github.com/acasal/smartthings2mqtt/internal/config"

	"go.uber.org/zap"
)

func LoadTestConfig() config.Config {
	return config.Config{
		LogLevel: zap.DebugLevel,
		SmartThings: config.SmartThingsConfig{
			Token:                "test-token",
			APIURL:               "http://localhost:9999",
			PollIntervalMillis:   5000,
			RequestTimeoutMillis: 2000,
		},
		MQTT: config.MQTTConfig{
			Host:      "localhost",
			Port:      1883,
			BaseTopic: "smartthings2mqtt",
		},
		Port: 8080,
	}
}
