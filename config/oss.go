package config

type OssConfig struct {
	Endpoint        string `json:"endpoint" yaml:"endpoint"`
	Region          string `json:"region" yaml:"region"`
	Bucket          string `json:"bucket" yaml:"bucket"`
	AccessKeyID     string `json:"ak" yaml:"ak"`
	AccessKeySecret string `json:"sk" yaml:"sk"`
}

func ProvideOssConfig(cfg *Config) *OssConfig {
	return cfg.Oss
}

// Enabled 未配置 bucket 时退回本地磁盘存储
func (o *OssConfig) Enabled() bool {
	return o != nil && o.Bucket != ""
}
