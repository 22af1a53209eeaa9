package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App      *App          `json:"app" yaml:"app"`
	Server   *Server       `json:"server" yaml:"server"`
	Database *Database     `json:"database" yaml:"database"`
	Jwt      *Jwt          `json:"jwt" yaml:"jwt"`
	Upload   *UploadConfig `json:"upload" yaml:"upload"`
	OpenAI   *OpenAI       `json:"openai" yaml:"openai"`
	Redis    *Redis        `json:"redis" yaml:"redis"`
	Oss      *OssConfig    `json:"oss" yaml:"oss"`
}

type Server struct {
	Http int `json:"http" yaml:"http"`
}

func New(filename string) *Config {

	content, err := os.ReadFile(filename)
	if err != nil {
		panic(err)
	}

	var conf Config
	if yaml.Unmarshal(content, &conf) != nil {
		panic(fmt.Sprintf("解析 config.yaml 读取错误: %v", err))
	}

	if err := conf.check(); err != nil {
		panic(err)
	}

	return &conf
}

// check 缺少关键配置直接拒绝启动，不留到请求期再报错
func (c *Config) check() error {
	if c.OpenAI == nil || c.OpenAI.ApiKey == "" {
		return fmt.Errorf("config: openai.api_key 未配置")
	}
	if c.Database == nil {
		return fmt.Errorf("config: database 未配置")
	}
	return nil
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}
