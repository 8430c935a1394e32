package config

type ServiceConfig struct {
	Name        string       `yaml:"name"`
	Environment string       `yaml:"environment"`
	ClientURL   string       `yaml:"client_url"`
	Trivia      TriviaConfig `yaml:"trivia"`
	Push        PushConfig   `yaml:"push"`
	Redis       RedisConfig  `yaml:"redis"`
}

// TriviaConfig points at the external question source.
type TriviaConfig struct {
	BaseURL string `yaml:"base_url"`
}

// PushConfig points at the push-delivery collaborator.
type PushConfig struct {
	BaseURL     string `yaml:"base_url"`
	AccessToken string `yaml:"access_token"`
}

// RedisConfig configures the question-created event publisher.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Channel  string `yaml:"channel"`
}
