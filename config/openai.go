package config

// OpenAI 出题用的大模型配置，api_key 缺失时启动即失败
type OpenAI struct {
	ApiKey  string  `json:"api_key" yaml:"api_key"`
	BaseURL string  `json:"base_url" yaml:"base_url"`
	Model   string  `json:"model" yaml:"model"`
	RateQPS float64 `json:"rate_qps" yaml:"rate_qps"` // 每秒请求数上限，0 取默认值
}

func ProvideOpenAIConfig(cfg *Config) *OpenAI {
	return cfg.OpenAI
}
