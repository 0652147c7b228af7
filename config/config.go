package config

import (
	"bytes"
	"fmt"
	"log"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config 应用配置
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Household HouseholdConfig `mapstructure:"household"`
	Email     EmailConfig     `mapstructure:"email"`
	Seed      SeedConfig      `mapstructure:"seed"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port    string `mapstructure:"port"`
	Mode    string `mapstructure:"mode"`
	BaseURL string `mapstructure:"base_url"`
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	Charset  string `mapstructure:"charset"`
}

// MemberConfig 家庭成员配置
// BudgetCap 用字符串承载，避免金额走浮点数；为空表示不设预算上限。
type MemberConfig struct {
	ID        uint   `mapstructure:"id"`
	Name      string `mapstructure:"name"`
	Email     string `mapstructure:"email"`      // 预算提醒收件人，可选
	BudgetCap string `mapstructure:"budget_cap"` // 如 "3000"
}

// HouseholdConfig 家庭配置
// SamBert 的账本固定由两名成员共用，成员对由配置给出，代码里不写死 1/2。
type HouseholdConfig struct {
	Members  []MemberConfig `mapstructure:"members"`
	Currency string         `mapstructure:"currency"` // 展示用货币前缀，如 RM
}

// EmailConfig 邮件配置（预算提醒）
type EmailConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

// SeedConfig 种子数据配置
type SeedConfig struct {
	// AllowReset 是否允许通过 POST /api/v1/seed 清空并重建数据（release 模式下始终禁止）
	AllowReset bool `mapstructure:"allow_reset"`
}

var (
	// GlobalConfig 全局配置实例
	GlobalConfig *Config
)

// LoadConfig 加载配置
// 优先级: 环境变量 > 外部配置文件 > 嵌入的默认配置
// configPath: 可选的外部配置文件路径
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	// 1. 首先加载嵌入的默认配置
	if err := v.ReadConfig(bytes.NewReader(DefaultConfigYAML)); err != nil {
		return nil, fmt.Errorf("读取内置配置失败: %w", err)
	}
	log.Println("已加载内置默认配置")

	// 2. 尝试加载外部配置文件（可选，用于覆盖默认配置）
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.MergeInConfig(); err != nil {
			log.Printf("警告: 无法读取指定配置文件 %s: %v", configPath, err)
		} else {
			log.Printf("已合并外部配置文件: %s", configPath)
		}
	} else {
		externalViper := viper.New()
		externalViper.SetConfigName("config")
		externalViper.SetConfigType("yaml")
		externalViper.AddConfigPath(".")
		externalViper.AddConfigPath("./config")
		externalViper.AddConfigPath("/etc/sambert")
		externalViper.AddConfigPath("$HOME/.sambert")

		if err := externalViper.ReadInConfig(); err == nil {
			if err := v.MergeConfigMap(externalViper.AllSettings()); err != nil {
				log.Printf("警告: 合并外部配置失败: %v", err)
			} else {
				log.Printf("已合并外部配置文件: %s", externalViper.ConfigFileUsed())
			}
		}
	}

	// 3. 支持环境变量覆盖（可选）
	v.SetEnvPrefix("SAMBERT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 解析配置
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	if err := cfg.Household.Validate(); err != nil {
		return nil, fmt.Errorf("家庭成员配置无效: %w", err)
	}

	// 保存到全局变量
	GlobalConfig = &cfg

	return &cfg, nil
}

// Validate 校验家庭成员配置：必须恰好两名成员，ID 互不相同且非零
func (h *HouseholdConfig) Validate() error {
	if len(h.Members) != 2 {
		return fmt.Errorf("必须配置恰好两名成员，当前 %d 名", len(h.Members))
	}
	a, b := h.Members[0], h.Members[1]
	if a.ID == 0 || b.ID == 0 {
		return fmt.Errorf("成员 ID 不能为 0")
	}
	if a.ID == b.ID {
		return fmt.Errorf("成员 ID 不能相同: %d", a.ID)
	}
	for _, m := range h.Members {
		if strings.TrimSpace(m.Name) == "" {
			return fmt.Errorf("成员 %d 缺少名称", m.ID)
		}
		if m.BudgetCap != "" {
			cap, err := decimal.NewFromString(m.BudgetCap)
			if err != nil {
				return fmt.Errorf("成员 %s 的 budget_cap 无法解析: %w", m.Name, err)
			}
			if cap.IsNegative() {
				return fmt.Errorf("成员 %s 的 budget_cap 不能为负数", m.Name)
			}
		}
	}
	return nil
}

// MemberByID 按 ID 查找成员配置
func (h *HouseholdConfig) MemberByID(id uint) (MemberConfig, bool) {
	for _, m := range h.Members {
		if m.ID == id {
			return m, true
		}
	}
	return MemberConfig{}, false
}

// MustLoadConfig 加载配置，失败则 panic
func MustLoadConfig(configPath string) *Config {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		panic(fmt.Sprintf("加载配置失败: %v", err))
	}
	return cfg
}

// GetConfig 获取全局配置
func GetConfig() *Config {
	if GlobalConfig == nil {
		panic("配置未初始化，请先调用 LoadConfig")
	}
	return GlobalConfig
}

// PrintConfig 打印当前配置（隐藏敏感信息）
func PrintConfig() {
	if GlobalConfig == nil {
		return
	}
	log.Printf("当前配置:")
	log.Printf("  服务器: %s (模式: %s)", GlobalConfig.Server.Port, GlobalConfig.Server.Mode)
	log.Printf("  数据库: %s@%s:%s/%s",
		GlobalConfig.Database.Username,
		GlobalConfig.Database.Host,
		GlobalConfig.Database.Port,
		GlobalConfig.Database.DBName)
	log.Printf("  成员: %s / %s",
		GlobalConfig.Household.Members[0].Name,
		GlobalConfig.Household.Members[1].Name)
	log.Printf("  邮件服务: %v", GlobalConfig.Email.Enabled)
}
