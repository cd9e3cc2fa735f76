package configuration

import (
	"fmt"
	"os"
	"strconv"

	"saved-hub/infrastructure/logger"

	"github.com/spf13/viper"
)

type Config struct {
	App     App     `json:"app"`
	Logger  Logger  `json:"logger"`
	Session Session `json:"session"`
	YouTube YouTube `json:"youtube"`
	Reddit  Reddit  `json:"reddit"`
}

type App struct {
	Port        int    `json:"port"`
	SecretKey   string `json:"secretKey"`
	TLSEnabled  bool   `json:"tlsEnabled"`
	TLSCertFile string `json:"tlsCertFile"`
	TLSKeyFile  string `json:"tlsKeyFile"`
}

type Logger struct {
	Format string `json:"format"`
}

// Session controls the session store backend. When Redis.Host is empty the
// in-memory store is used.
type Session struct {
	SyncIntervalSeconds int64       `json:"syncIntervalSeconds"`
	TTLSeconds          int64       `json:"ttlSeconds"`
	Redis               RedisClient `json:"redis"`
}

type RedisClient struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type YouTube struct {
	// ClientSecretJSON holds the whole Google client-secret document; usually
	// injected via YOUTUBE_CLIENT_SECRET_JSON rather than the config file.
	ClientSecretJSON string `json:"clientSecretJSON"`
	RedirectURI      string `json:"redirectURI"`
}

type Reddit struct {
	ClientID     string `json:"clientId"`
	ClientSecret string `json:"clientSecret"`
	RedirectURI  string `json:"redirectURI"`
	UserAgent    string `json:"userAgent"`
}

var C Config

func init() {
	LoadConfig()
	initApp(&C)
	initSession(&C)
}

func LoadConfig() {
	name := getConfig()
	viper.SetConfigName(name)
	viper.SetConfigType("json")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../")
	viper.AddConfigPath("../../")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logger.GetLogger().Warn("Config file not found")
		} else {
			logger.GetLogger().WithField("error", err).Error("Error reading config file")
		}
	}

	if err := viper.Unmarshal(&C); err != nil {
		logger.GetLogger().WithField("error", err).Error("Viper unable to decode into struct")
	}
	logger.GetLogger().WithField("config", name).Info("Config set up successfully")
}

func getConfig() string {
	name := "config"
	env := os.Getenv("ENV")
	if env != "" {
		name = fmt.Sprintf("%s-%s", name, env)
	}
	return name
}

func initApp(C *Config) {
	// SECRET_KEY signs the session cookie; env overrides the config file.
	if v := os.Getenv("SECRET_KEY"); v != "" {
		C.App.SecretKey = v
	}
	// Port resolution order (env overrides config): APP_PORT -> PORT -> config -> default 10001
	if v := os.Getenv("APP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	} else if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	}
	if C.App.Port == 0 {
		C.App.Port = 10001
	}
	if v := os.Getenv("TLS_ENABLED"); v != "" {
		switch v {
		case "1", "true", "TRUE", "True":
			C.App.TLSEnabled = true
		case "0", "false", "FALSE", "False":
			C.App.TLSEnabled = false
		}
	}
	if C.App.TLSCertFile == "" {
		C.App.TLSCertFile = os.Getenv("TLS_CERT_FILE")
	}
	if C.App.TLSKeyFile == "" {
		C.App.TLSKeyFile = os.Getenv("TLS_KEY_FILE")
	}
	if C.App.SecretKey == "" {
		logger.GetLogger().Warn("App.SecretKey not set; session cookies will not survive restarts. Provide SECRET_KEY via environment.")
	}
}

func initSession(C *Config) {
	if v := os.Getenv("SYNC_INTERVAL_SECONDS"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			C.Session.SyncIntervalSeconds = n
		}
	}
	if C.Session.SyncIntervalSeconds == 0 {
		C.Session.SyncIntervalSeconds = 60
	}
	if C.Session.TTLSeconds == 0 {
		C.Session.TTLSeconds = 24 * 60 * 60
	}
	if C.Session.Redis.Host == "" {
		C.Session.Redis.Host = os.Getenv("REDIS_HOST")
	}
	if C.Session.Redis.Port == "" {
		if v := os.Getenv("REDIS_PORT"); v != "" {
			C.Session.Redis.Port = v
		} else {
			C.Session.Redis.Port = "6379"
		}
	}
	if C.Session.Redis.Username == "" {
		C.Session.Redis.Username = os.Getenv("REDIS_USERNAME")
	}
	if C.Session.Redis.Password == "" {
		C.Session.Redis.Password = os.Getenv("REDIS_PASSWORD")
	}
}
