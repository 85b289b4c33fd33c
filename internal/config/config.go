package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Snap      Snap      `mapstructure:",squash"`
	StatsSync StatsSync `mapstructure:",squash"`
	SecretKey string    `mapstructure:"secret_key"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Snap agrupa as credenciais OAuth e os endpoints da Snap Marketing API
type Snap struct {
	ClientID              string        `mapstructure:"snap_client_id"`
	ClientSecret          string        `mapstructure:"snap_client_secret"`
	OrgID                 string        `mapstructure:"snap_org_id"`
	AccessToken           string        `mapstructure:"snap_access_token"`
	RefreshToken          string        `mapstructure:"snap_refresh_token"`
	RedirectURI           string        `mapstructure:"snap_redirect_uri"`
	State                 string        `mapstructure:"snap_oauth_state"`
	Scopes                []string      `mapstructure:"snap_scope"`
	AuthorizeURL          string        `mapstructure:"snap_authorize_url"`
	AccessTokenURL        string        `mapstructure:"snap_access_token_url"`
	BaseURL               string        `mapstructure:"snap_base_url"`
	HTTPTimeout           time.Duration `mapstructure:"snap_http_timeout"`
	MaxConcurrentRequests int           `mapstructure:"snap_max_concurrent_requests"`
}

type StatsSync struct {
	CronSchedule      string `mapstructure:"stats_sync_cron"`
	LookbackDays      int    `mapstructure:"stats_sync_lookback_days"`
	DaysSkip          int    `mapstructure:"stats_sync_days_skip"`
	MaxConcurrentJobs int    `mapstructure:"stats_sync_max_concurrent_jobs"`
	Enabled           bool   `mapstructure:"stats_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("SNAP_CLIENT_ID", "")
	viper.SetDefault("SNAP_CLIENT_SECRET", "")
	viper.SetDefault("SNAP_ORG_ID", "")
	viper.SetDefault("SNAP_ACCESS_TOKEN", "")
	viper.SetDefault("SNAP_REFRESH_TOKEN", "")
	viper.SetDefault("SNAP_REDIRECT_URI", "my_redirect_uri")
	viper.SetDefault("SNAP_OAUTH_STATE", "0123456789876543210")
	viper.SetDefault("SNAP_SCOPE", "snapchat-marketing-api")
	viper.SetDefault("SNAP_AUTHORIZE_URL", "https://accounts.snapchat.com/login/oauth2/authorize")
	viper.SetDefault("SNAP_ACCESS_TOKEN_URL", "https://accounts.snapchat.com/login/oauth2/access_token")
	viper.SetDefault("SNAP_BASE_URL", "https://adsapi.snapchat.com/v1/")
	viper.SetDefault("SNAP_HTTP_TIMEOUT", "30s")
	viper.SetDefault("SNAP_MAX_CONCURRENT_REQUESTS", 1) // 1 = sequencial

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	// A API rejeita consultas DAY com mais de 32 dias
	viper.SetDefault("STATS_SYNC_CRON", "0 3 * * *") // Todos os dias às 3h da manhã
	viper.SetDefault("STATS_SYNC_LOOKBACK_DAYS", 29)
	viper.SetDefault("STATS_SYNC_DAYS_SKIP", 0)
	viper.SetDefault("STATS_SYNC_MAX_CONCURRENT_JOBS", 3)
	viper.SetDefault("STATS_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("config: using variables loaded by godotenv (viper could not read .env): ", err)
	} else {
		logrus.Info("config: .env read by viper")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	normalize(config)

	return config, nil
}

func normalize(config *Config) {
	if !strings.HasSuffix(config.Snap.BaseURL, "/") {
		config.Snap.BaseURL += "/"
	}

	if config.Snap.MaxConcurrentRequests < 1 {
		config.Snap.MaxConcurrentRequests = 1
	}

	if config.StatsSync.MaxConcurrentJobs < 1 {
		config.StatsSync.MaxConcurrentJobs = 1
	}

	scopes := make([]string, 0, len(config.Snap.Scopes))
	for _, s := range config.Snap.Scopes {
		if s = strings.TrimSpace(s); s != "" {
			scopes = append(scopes, s)
		}
	}
	config.Snap.Scopes = scopes
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("config: could not resolve working directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("config: .env loaded from ", location)
			return
		}
	}

	logrus.Debug("config: no .env file found")
}
