package config

// UploadConfig 学习单附件上传配置
type UploadConfig struct {
	Dir string `json:"dir" yaml:"dir"` // 本地存储目录，默认 uploads/worksheets
}

func (u *UploadConfig) Root() string {
	if u == nil || u.Dir == "" {
		return "uploads/worksheets"
	}
	return u.Dir
}
