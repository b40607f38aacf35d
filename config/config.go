package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

type SysConfig struct {
	Appid    string `yaml:"appid" json:"appid"`
	Location string `yaml:"location" json:"location"`
	Workdir  string `yaml:"workdir" json:"workdir"`
	Debug    bool   `yaml:"debug" json:"debug"`
}

type WebConfig struct {
	Host          string `yaml:"host" json:"host"`
	Port          int    `yaml:"port" json:"port"`
	SessionSecret string `yaml:"session_secret" json:"session_secret"`
	JwtSecret     string `yaml:"jwt_secret" json:"jwt_secret"`
}

type DBConfig struct {
	Type     string `yaml:"type" json:"type"`
	Host     string `yaml:"host" json:"host"`
	Port     int    `yaml:"port" json:"port"`
	Name     string `yaml:"name" json:"name"`
	User     string `yaml:"user" json:"user"`
	Password string `yaml:"password" json:"password"`
	Debug    bool   `yaml:"debug" json:"debug"`
}

type RedisConfig struct {
	Enabled  bool   `yaml:"enabled" json:"enabled"`
	Addr     string `yaml:"addr" json:"addr"`
	Password string `yaml:"password" json:"password"`
	DB       int    `yaml:"db" json:"db"`
	TTLSec   int    `yaml:"ttl_sec" json:"ttl_sec"`
}

// ShopConfig drives the storefront session half: which CRUD data source it
// runs against, where the local key-value store lives, and the checkout
// handoff destination.
type ShopConfig struct {
	Mode          string `yaml:"mode" json:"mode"` // local or remote
	ApiUrl        string `yaml:"api_url" json:"api_url"`
	StorePath     string `yaml:"store_path" json:"store_path"`
	WhatsappPhone string `yaml:"whatsapp_phone" json:"whatsapp_phone"`
	AdminUsername string `yaml:"admin_username" json:"admin_username"`
	AdminPassword string `yaml:"admin_password" json:"admin_password"`
}

type MailConfig struct {
	Enabled  bool   `yaml:"enabled" json:"enabled"`
	SmtpHost string `yaml:"smtp_host" json:"smtp_host"`
	SmtpPort int    `yaml:"smtp_port" json:"smtp_port"`
	Username string `yaml:"username" json:"username"`
	Password string `yaml:"password" json:"password"`
	From     string `yaml:"from" json:"from"`
	To       string `yaml:"to" json:"to"`
}

type LogConfig struct {
	Mode       string `yaml:"mode" json:"mode"`
	FileEnable bool   `yaml:"file_enable" json:"file_enable"`
	Filename   string `yaml:"filename" json:"filename"`
}

type AppConfig struct {
	System   SysConfig   `yaml:"system" json:"system"`
	Web      WebConfig   `yaml:"web" json:"web"`
	Database DBConfig    `yaml:"database" json:"database"`
	Redis    RedisConfig `yaml:"redis" json:"redis"`
	Shop     ShopConfig  `yaml:"shop" json:"shop"`
	Mail     MailConfig  `yaml:"mail" json:"mail"`
	Logger   LogConfig   `yaml:"logger" json:"logger"`
}

var DefaultAppConfig = &AppConfig{
	System: SysConfig{
		Appid:    "Storefront",
		Location: "Asia/Kolkata",
		Workdir:  "/var/storefront",
		Debug:    true,
	},
	Web: WebConfig{
		Host:          "0.0.0.0",
		Port:          1889,
		SessionSecret: "",
		JwtSecret:     "",
	},
	Database: DBConfig{
		Type:     "postgres",
		Host:     "127.0.0.1",
		Port:     5432,
		Name:     "storefront",
		User:     "postgres",
		Password: "root",
	},
	Redis: RedisConfig{
		Enabled: false,
		Addr:    "127.0.0.1:6379",
		TTLSec:  300,
	},
	Shop: ShopConfig{
		Mode:          "remote",
		ApiUrl:        "http://127.0.0.1:1889",
		StorePath:     "/var/storefront/shop.db",
		WhatsappPhone: "917845818017",
		AdminUsername: "admin",
		AdminPassword: "admin123",
	},
	Logger: LogConfig{
		Mode:       "development",
		FileEnable: false,
		Filename:   "/var/storefront/storefront.log",
	},
}

func setEnvValue(name string, f func(v string)) {
	var evalue = os.Getenv(name)
	if evalue != "" {
		f(evalue)
	}
}

func setEnvInt(name string, f func(v int)) {
	var evalue = os.Getenv(name)
	if evalue != "" {
		f(cast.ToInt(evalue))
	}
}

func setEnvBool(name string, f func(v bool)) {
	var evalue = os.Getenv(name)
	if evalue != "" {
		f(cast.ToBool(evalue))
	}
}

// LoadConfig reads the YAML config file when present and applies
// STOREFRONT_* environment overrides on top. A missing file is not an
// error, the defaults cover local development.
func LoadConfig(cfile string) *AppConfig {
	_ = godotenv.Load()

	cfg := DefaultAppConfig
	if cfile != "" {
		if data, err := os.ReadFile(cfile); err == nil {
			cfg = new(AppConfig)
			if err := yaml.Unmarshal(data, cfg); err != nil {
				panic(err)
			}
		}
	}

	setEnvValue("STOREFRONT_SYSTEM_WORKDIR", func(v string) { cfg.System.Workdir = v })
	setEnvBool("STOREFRONT_SYSTEM_DEBUG", func(v bool) { cfg.System.Debug = v })
	setEnvValue("STOREFRONT_WEB_HOST", func(v string) { cfg.Web.Host = v })
	setEnvInt("STOREFRONT_WEB_PORT", func(v int) { cfg.Web.Port = v })
	setEnvValue("STOREFRONT_WEB_SESSION_SECRET", func(v string) { cfg.Web.SessionSecret = v })
	setEnvValue("STOREFRONT_WEB_JWT_SECRET", func(v string) { cfg.Web.JwtSecret = v })
	setEnvValue("STOREFRONT_DB_HOST", func(v string) { cfg.Database.Host = v })
	setEnvInt("STOREFRONT_DB_PORT", func(v int) { cfg.Database.Port = v })
	setEnvValue("STOREFRONT_DB_NAME", func(v string) { cfg.Database.Name = v })
	setEnvValue("STOREFRONT_DB_USER", func(v string) { cfg.Database.User = v })
	setEnvValue("STOREFRONT_DB_PWD", func(v string) { cfg.Database.Password = v })
	setEnvBool("STOREFRONT_REDIS_ENABLED", func(v bool) { cfg.Redis.Enabled = v })
	setEnvValue("STOREFRONT_REDIS_ADDR", func(v string) { cfg.Redis.Addr = v })
	setEnvValue("STOREFRONT_SHOP_MODE", func(v string) { cfg.Shop.Mode = v })
	setEnvValue("STOREFRONT_SHOP_API_URL", func(v string) { cfg.Shop.ApiUrl = v })
	setEnvValue("STOREFRONT_SHOP_STORE_PATH", func(v string) { cfg.Shop.StorePath = v })
	setEnvValue("STOREFRONT_SHOP_WHATSAPP_PHONE", func(v string) { cfg.Shop.WhatsappPhone = v })
	setEnvValue("STOREFRONT_MAIL_TO", func(v string) { cfg.Mail.To = v })

	return cfg
}

// InitDirs makes sure the workdir layout exists before anything writes to it.
func (c *AppConfig) InitDirs() {
	_ = os.MkdirAll(c.System.Workdir, 0755)
	_ = os.MkdirAll(filepath.Join(c.System.Workdir, "snapshots"), 0755)
	_ = os.MkdirAll(filepath.Join(c.System.Workdir, "logs"), 0755)
}
