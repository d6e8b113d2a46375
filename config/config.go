package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	MySQL struct {
		DSN string `yaml:"dsn"`
	} `yaml:"mysql"`
	OpenAI struct {
		// API Key 不放 yaml，从环境变量 OPENAI_API_KEY 读取
		ChatModel  string `yaml:"chat_model"`
		ImageModel string `yaml:"image_model"`
		ImageSize  string `yaml:"image_size"`
		APIKey     string `yaml:"-"`
	} `yaml:"openai"`

	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
	} `yaml:"redis"`
	Worker struct {
		// enabled 为 true 时启动 asynq 后台图片生成（异步部署模式）
		Enabled     bool `yaml:"enabled"`
		Concurrency int  `yaml:"concurrency"`
	} `yaml:"worker"`
	Images struct {
		// 同步批量生成的最大并发数
		MaxConcurrency int `yaml:"max_concurrency"`
	} `yaml:"images"`
	MinIO struct {
		Endpoint  string `yaml:"endpoint"`
		AccessKey string `yaml:"access_key"`
		SecretKey string `yaml:"secret_key"`
		Bucket    string `yaml:"bucket"`
		UseSSL    bool   `yaml:"use_ssl"`
	} `yaml:"minio"`
}

var AppConfig *Config

func InitConfig() {
	// 本地开发加载 .env（线上用真实环境变量）
	_ = godotenv.Load()

	f, err := os.Open("config/config.yaml")
	if err != nil {
		log.Fatalf("配置文件读取失败: %v", err)
	}
	defer f.Close()
	decoder := yaml.NewDecoder(f)
	AppConfig = &Config{}
	if err := decoder.Decode(AppConfig); err != nil {
		log.Fatalf("配置文件解析失败: %v", err)
	}

	AppConfig.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	if AppConfig.OpenAI.APIKey == "" {
		log.Fatal("OPENAI_API_KEY 未设置")
	}

	// 默认值
	if AppConfig.OpenAI.ChatModel == "" {
		AppConfig.OpenAI.ChatModel = "gpt-4o"
	}
	if AppConfig.OpenAI.ImageModel == "" {
		AppConfig.OpenAI.ImageModel = "dall-e-3"
	}
	if AppConfig.OpenAI.ImageSize == "" {
		AppConfig.OpenAI.ImageSize = "1024x1024"
	}
	if AppConfig.Images.MaxConcurrency <= 0 {
		AppConfig.Images.MaxConcurrency = 7
	}
	if AppConfig.Worker.Concurrency <= 0 {
		AppConfig.Worker.Concurrency = 7
	}
}
