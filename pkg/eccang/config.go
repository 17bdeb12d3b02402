package eccang

import "time"

type Config struct {
	BaseURL     string        `mapstructure:"base_url"`
	ServicePath string        `mapstructure:"service_path"`
	AppToken    string        `mapstructure:"app_token"`
	AppKey      string        `mapstructure:"app_key"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

func (c Config) Endpoint() string {
	return c.BaseURL + c.ServicePath
}
