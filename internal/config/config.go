package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// AppConfig 汇总运行服务所需的基础配置。
type AppConfig struct {
	ListenAddr    string `yaml:"listen_addr"`
	Port          string `yaml:"port"`
	DatabasePath  string `yaml:"database_path"`
	SessionSecret string `yaml:"session_secret"`
	GinMode       string `yaml:"gin_mode"`
	DataDir       string `yaml:"data_dir"`
	UploadDir     string `yaml:"upload_dir"`
	UploadURLPath string `yaml:"upload_url_path"`
	SiteBaseURL   string `yaml:"site_base_url"`
}

// Load 读取应用配置：先读可选的 YAML 配置文件（CONFIG_PATH，默认 config.yaml），
// 再用环境变量覆盖，缺失项回退到安全默认值。
func Load() AppConfig {
	var cfg AppConfig

	path := strings.TrimSpace(os.Getenv("CONFIG_PATH"))
	if path == "" {
		path = "config.yaml"
	}
	if raw, err := os.ReadFile(path); err == nil {
		// 配置文件损坏时忽略文件内容，保持环境变量与默认值可用
		_ = yaml.Unmarshal(raw, &cfg)
	}

	overrideFromEnv(&cfg.Port, "PORT")
	overrideFromEnv(&cfg.ListenAddr, "LISTEN_ADDR")
	overrideFromEnv(&cfg.DatabasePath, "DATABASE_PATH")
	overrideFromEnv(&cfg.SessionSecret, "SESSION_SECRET")
	overrideFromEnv(&cfg.GinMode, "GIN_MODE")
	overrideFromEnv(&cfg.DataDir, "DATA_DIR")
	overrideFromEnv(&cfg.UploadDir, "UPLOAD_DIR")
	overrideFromEnv(&cfg.UploadURLPath, "UPLOAD_URL_PATH")
	overrideFromEnv(&cfg.SiteBaseURL, "SITE_BASE_URL")

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = fmt.Sprintf(":%s", cfg.Port)
	}
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = "creatorcircle.db"
	}
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = "creatorcircle-dev-secret"
	}
	if cfg.GinMode == "" {
		cfg.GinMode = "release"
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "web/static/uploads"
	}
	if cfg.UploadURLPath == "" {
		cfg.UploadURLPath = "/static/uploads"
	}
	if cfg.SiteBaseURL == "" {
		cfg.SiteBaseURL = "https://creatorcircle.dev"
	}

	return cfg
}

func overrideFromEnv(target *string, key string) {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		*target = value
	}
}
