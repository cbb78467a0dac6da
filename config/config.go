package config

import (
	"encoding/json"
	"os"
)

var Config *AppConfig

type AppConfig struct {
	AppVersion string `json:"app_version" mapstructure:"app_version"`
	LogConfig  `json:",inline" mapstructure:",inline"`
	DisplayTop int  `json:"display_top" mapstructure:"display_top"` //榜单展示前几名
	IsDebug    bool `json:"is_debug" mapstructure:"is_debug"`
}

type LogConfig struct {
	LogPath   string `json:"log_path" mapstructure:"log_path"`
	LogName   string `json:"log_name" mapstructure:"log_name"`
	LogLevel  int    `json:"log_level" mapstructure:"log_level"`
	LogStdOut bool   `json:"log_std_out" mapstructure:"log_std_out"`
}

const defaultDisplayTop = 20

func LoadConfig(configFile string, loadConfigFromEnv func(*AppConfig) error) error {
	Config = new(AppConfig)
	Config.DisplayTop = defaultDisplayTop
	if len(configFile) == 0 {
		if loadConfigFromEnv == nil {
			return nil
		}
		return loadConfigFromEnv(Config)
	}
	if err := loadConfigFromFile(configFile); err != nil {
		return err
	}
	if loadConfigFromEnv != nil {
		return loadConfigFromEnv(Config)
	}
	return nil
}

func loadConfigFromFile(configFile string) error {
	data, err := os.ReadFile(configFile)
	if err != nil {
		return err
	}
	if err = json.Unmarshal(data, &Config); err != nil {
		return err
	}
	if Config.DisplayTop <= 0 {
		Config.DisplayTop = defaultDisplayTop
	}
	return nil
}

func (conf *AppConfig) JsonFormat() string {
	if conf == nil {
		return "{}"
	}
	data, err := json.MarshalIndent(conf, "", "  ")
	if err != nil {
		return ""
	}
	return string(data)
}
