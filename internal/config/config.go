package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config 全局配置结构体
type Config struct {
	App           AppConfig           `mapstructure:"app"`
	Database      DatabaseConfig      `mapstructure:"database"`
	Redis         RedisConfig         `mapstructure:"redis"`
	MinIO         MinIOConfig         `mapstructure:"minio"`
	Kafka         KafkaConfig         `mapstructure:"kafka"`
	Elasticsearch ElasticsearchConfig `mapstructure:"elasticsearch"`
	Media         MediaConfig         `mapstructure:"media"`
	Agent         AgentConfig         `mapstructure:"agent"`
	Auth          AuthConfig          `mapstructure:"auth"`
	Webhook       WebhookConfig       `mapstructure:"webhook"`
	RateLimit     RateLimitConfig     `mapstructure:"rate_limit"`
	Log           LogConfig           `mapstructure:"log"`
}

// AppConfig 应用配置
type AppConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
	Mode    string `mapstructure:"mode"`
	Port    int    `mapstructure:"port"`
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	User            string `mapstructure:"user"`
	Password        string `mapstructure:"password"`
	DBName          string `mapstructure:"dbname"`
	SSLMode         string `mapstructure:"sslmode"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"` // 秒
}

// DSN 返回PostgreSQL连接字符串
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// RedisConfig Redis配置
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// Addr 返回Redis地址
func (r *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// MinIOConfig MinIO配置
type MinIOConfig struct {
	Endpoint  string   `mapstructure:"endpoint"`
	AccessKey string   `mapstructure:"access_key"`
	SecretKey string   `mapstructure:"secret_key"`
	UseSSL    bool     `mapstructure:"use_ssl"`
	Buckets   []string `mapstructure:"buckets"`
}

// KafkaConfig Kafka配置
type KafkaConfig struct {
	Brokers []string          `mapstructure:"brokers"`
	Topics  map[string]string `mapstructure:"topics"`
}

// ElasticsearchConfig Elasticsearch配置
type ElasticsearchConfig struct {
	Hosts []string          `mapstructure:"hosts"`
	Index map[string]string `mapstructure:"index"`
}

// MediaConfig 外部媒体管线配置
type MediaConfig struct {
	BaseURL       string `mapstructure:"base_url"`        // API 地址
	ImageBaseURL  string `mapstructure:"image_base_url"`  // 封面/预览图地址
	StreamBaseURL string `mapstructure:"stream_base_url"` // 播放/字幕地址
	TokenID       string `mapstructure:"token_id"`
	TokenSecret   string `mapstructure:"token_secret"`
	Timeout       int    `mapstructure:"timeout"` // 秒
}

// TimeoutDuration 返回超时时间
func (m *MediaConfig) TimeoutDuration() time.Duration {
	return time.Duration(m.Timeout) * time.Second
}

// AgentConfig Agent服务配置（AI 标题/描述/封面生成）
type AgentConfig struct {
	URL     string `mapstructure:"url"`
	Model   string `mapstructure:"model"`
	Timeout int    `mapstructure:"timeout"` // 秒
}

// TimeoutDuration 返回超时时间
func (a *AgentConfig) TimeoutDuration() time.Duration {
	return time.Duration(a.Timeout) * time.Second
}

// AuthConfig 身份认证配置（校验外部身份服务签发的会话令牌）
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
	Issuer    string `mapstructure:"issuer"`
}

// WebhookConfig Webhook签名密钥配置
type WebhookConfig struct {
	IdentitySecret string `mapstructure:"identity_secret"`
	MediaSecret    string `mapstructure:"media_secret"`
	// 签名时间戳允许的偏差（秒），防重放
	Tolerance int `mapstructure:"tolerance"`
}

// ToleranceDuration 返回签名时间戳容差
func (w *WebhookConfig) ToleranceDuration() time.Duration {
	if w.Tolerance <= 0 {
		return 5 * time.Minute
	}
	return time.Duration(w.Tolerance) * time.Second
}

// RateLimitConfig 写操作限流配置（按用户固定窗口计数）
type RateLimitConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Limit   int  `mapstructure:"limit"`  // 窗口内最大请求数
	Window  int  `mapstructure:"window"` // 窗口宽度（秒）
}

// WindowDuration 返回窗口宽度
func (r *RateLimitConfig) WindowDuration() time.Duration {
	if r.Window <= 0 {
		return 10 * time.Second
	}
	return time.Duration(r.Window) * time.Second
}

// LogConfig 日志配置
type LogConfig struct {
	Level    string `mapstructure:"level"`
	Format   string `mapstructure:"format"`
	Output   string `mapstructure:"output"`
	FilePath string `mapstructure:"file_path"`
}

// 全局配置实例
var globalConfig *Config

// Load 加载配置文件
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// 读取环境变量
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	globalConfig = &cfg

	return &cfg, nil
}

// Get 获取全局配置
func Get() *Config {
	if globalConfig == nil {
		panic("config not loaded, please call Load() first")
	}
	return globalConfig
}

// GetApp 获取应用配置
func GetApp() *AppConfig {
	return &Get().App
}

// GetDatabase 获取数据库配置
func GetDatabase() *DatabaseConfig {
	return &Get().Database
}

// GetRedis 获取Redis配置
func GetRedis() *RedisConfig {
	return &Get().Redis
}

// GetMinIO 获取MinIO配置
func GetMinIO() *MinIOConfig {
	return &Get().MinIO
}

// GetKafka 获取Kafka配置
func GetKafka() *KafkaConfig {
	return &Get().Kafka
}

// GetElasticsearch 获取Elasticsearch配置
func GetElasticsearch() *ElasticsearchConfig {
	return &Get().Elasticsearch
}

// GetMedia 获取媒体管线配置
func GetMedia() *MediaConfig {
	return &Get().Media
}

// GetAgent 获取Agent配置
func GetAgent() *AgentConfig {
	return &Get().Agent
}

// GetAuth 获取认证配置
func GetAuth() *AuthConfig {
	return &Get().Auth
}

// GetWebhook 获取Webhook配置
func GetWebhook() *WebhookConfig {
	return &Get().Webhook
}

// GetRateLimit 获取限流配置
func GetRateLimit() *RateLimitConfig {
	return &Get().RateLimit
}

// GetLog 获取日志配置
func GetLog() *LogConfig {
	return &Get().Log
}
