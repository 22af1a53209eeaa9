package config

// Database 四个独立的 SQLite 库，沿用原始部署形态
type Database struct {
	Dictionary string `json:"dictionary" yaml:"dictionary"`
	Notes      string `json:"notes" yaml:"notes"`
	Calendar   string `json:"calendar" yaml:"calendar"`
	Users      string `json:"users" yaml:"users"`
}
