package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

var GlobalConfig *Config

// Config 全局配置
type Config struct {
	Server       ServerConfig       `mapstructure:"server"`
	Log          LogConfig          `mapstructure:"log"`
	Auth         AuthConfig         `mapstructure:"auth"`
	Board        BoardConfig        `mapstructure:"board"`
	Confirmation ConfirmationConfig `mapstructure:"confirmation"`
	Scheduler    SchedulerConfig    `mapstructure:"scheduler"`
	Seed         SeedConfig         `mapstructure:"seed"`
	Notify       NotifyConfig       `mapstructure:"notify"`
}

// ServerConfig 服务配置
type ServerConfig struct {
	Name string     `mapstructure:"name"`
	Host string     `mapstructure:"host"`
	Port int        `mapstructure:"port"`
	Mode string     `mapstructure:"mode"` // debug, release
	CORS CORSConfig `mapstructure:"cors"`
}

// CORSConfig 跨域配置
type CORSConfig struct {
	AllowOrigins     []string `mapstructure:"allow_origins"` // 允许的前端来源, "*" 表示全部
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           string   `mapstructure:"max_age"` // 预检结果缓存时间, 如 12h
}

// LogConfig 日志配置
type LogConfig struct {
	Level    string `mapstructure:"level"`  // debug, info, warn, error
	Format   string `mapstructure:"format"` // json, console
	Output   string `mapstructure:"output"` // stdout, file
	FilePath string `mapstructure:"file_path"`
}

// AuthConfig 认证配置
type AuthConfig struct {
	JWT JWTConfig `mapstructure:"jwt"`
}

// JWTConfig JWT配置
type JWTConfig struct {
	Secret            string `mapstructure:"secret"`
	AccessTokenExpire int    `mapstructure:"access_token_expire"` // 秒
}

// BoardConfig 看板配置
type BoardConfig struct {
	Locale      string `mapstructure:"locale"`       // 标题排序使用的语言, 如 fr / en / zh
	DefaultSort string `mapstructure:"default_sort"` // deadline / priority / title
}

// ConfirmationConfig 删除类操作的二次确认
type ConfirmationConfig struct {
	TTL string `mapstructure:"ttl"` // 未确认请求的有效期, 如 10m
}

// SchedulerConfig 定时任务配置
type SchedulerConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	OverdueCron string `mapstructure:"overdue_cron"` // 逾期提醒, 秒级cron
	PurgeCron   string `mapstructure:"purge_cron"`   // 清理过期确认请求
}

// SeedConfig 初始数据
type SeedConfig struct {
	File string `mapstructure:"file"`
}

// NotifyConfig 站外通知配置
type NotifyConfig struct {
	Lark LarkConfig `mapstructure:"lark"`
}

// LarkConfig Lark群机器人
type LarkConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	WebhookURL string `mapstructure:"webhook_url"`
}

// Load 加载配置
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// 设置配置文件路径
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	setDefaults(v)

	// 读取环境变量
	v.AutomaticEnv()

	// 读取配置文件
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	// 解析配置
	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	// 设置全局配置
	GlobalConfig = config

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.name", "taskboard")
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.cors.allow_origins", []string{"http://localhost:3000", "http://localhost:5173"})
	v.SetDefault("server.cors.allow_credentials", true)
	v.SetDefault("server.cors.max_age", "12h")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stdout")
	v.SetDefault("auth.jwt.access_token_expire", 86400)
	v.SetDefault("board.locale", "fr")
	v.SetDefault("board.default_sort", "deadline")
	v.SetDefault("confirmation.ttl", "10m")
	v.SetDefault("scheduler.enabled", true)
	v.SetDefault("scheduler.overdue_cron", "0 0 8 * * *")
	v.SetDefault("scheduler.purge_cron", "0 */5 * * * *")
	v.SetDefault("notify.lark.enabled", false)
}

// GetTTL 解析确认请求有效期，非法值回退到10分钟
func (c *ConfirmationConfig) GetTTL() time.Duration {
	ttl, err := time.ParseDuration(c.TTL)
	if err != nil || ttl <= 0 {
		return 10 * time.Minute
	}
	return ttl
}

// GetMaxAge 解析预检缓存时间，非法值回退到12小时
func (c *CORSConfig) GetMaxAge() time.Duration {
	maxAge, err := time.ParseDuration(c.MaxAge)
	if err != nil || maxAge <= 0 {
		return 12 * time.Hour
	}
	return maxAge
}

// Addr 监听地址
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
