package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Launchpad → Mattermost
	Webhook    WebhookConfig
	Launchpad  LaunchpadConfig
	Mattermost MattermostConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Address  string
	Port     int
	Mode     string
	HookPath string

	// TrustedProxies are the proxies whose forwarding headers are believed.
	TrustedProxies []string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type WebhookConfig struct {
	Secret          string
	AllowedIPs      []string
	RateLimitPerMin int
}

// LaunchpadConfig holds the base URLs links are built from.
type LaunchpadConfig struct {
	WebURL  string
	CodeURL string
	GitURL  string
}

type MattermostConfig struct {
	Username           string
	IconURL            string
	Timeout            time.Duration
	InsecureSkipVerify bool
	Routes             map[string]RouteConfig
}

// RouteConfig is one Mattermost incoming webhook.
type RouteConfig struct {
	URL     string
	Channel string
}

// DefaultRoute must always be configured.
const DefaultRoute = "default"

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return fromViper(v)
}

// fromViper builds a Config from an already populated viper instance.
func fromViper(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Address = v.GetString("http_server.address")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.HookPath = v.GetString("http_server.hook_path")
	cfg.HTTPServer.TrustedProxies = splitList(v.Get("http_server.trusted_proxies"))
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Webhooks
	cfg.Webhook.Secret = v.GetString("webhook.secret")
	if webhookSecret := v.GetString("webhook_secret"); webhookSecret != "" {
		cfg.Webhook.Secret = webhookSecret
	}
	cfg.Webhook.RateLimitPerMin = v.GetInt("webhook.rate_limit_per_min")
	cfg.Webhook.AllowedIPs = splitList(v.Get("webhook.allowed_ips"))

	// Launchpad
	cfg.Launchpad.WebURL = v.GetString("launchpad.web_url")
	cfg.Launchpad.CodeURL = v.GetString("launchpad.code_url")
	cfg.Launchpad.GitURL = v.GetString("launchpad.git_url")

	// Mattermost
	cfg.Mattermost.Username = v.GetString("mattermost.username")
	cfg.Mattermost.IconURL = v.GetString("mattermost.icon_url")
	cfg.Mattermost.Timeout = v.GetDuration("mattermost.timeout")
	cfg.Mattermost.InsecureSkipVerify = v.GetBool("mattermost.insecure_skip_verify")
	cfg.Mattermost.Routes = make(map[string]RouteConfig)
	for label, raw := range v.GetStringMap("mattermost.routes") {
		route, ok := raw.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("mattermost.routes.%s must be a mapping", label)
		}
		cfg.Mattermost.Routes[label] = RouteConfig{
			URL:     getStringFromMap(route, "url"),
			Channel: getStringFromMap(route, "channel"),
		}
	}

	// Env shortcut for single-route deployments
	def := cfg.Mattermost.Routes[DefaultRoute]
	if url := v.GetString("mattermost_webhook_url"); url != "" {
		def.URL = url
	}
	if channel := v.GetString("mattermost_channel"); channel != "" {
		def.Channel = channel
	}
	if def.URL != "" || def.Channel != "" {
		cfg.Mattermost.Routes[DefaultRoute] = def
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.address", "127.0.0.1")
	v.SetDefault("http_server.port", 5000)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.hook_path", "/")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("webhook.rate_limit_per_min", 60)
	v.SetDefault("launchpad.web_url", "https://launchpad.net")
	v.SetDefault("launchpad.code_url", "https://code.launchpad.net")
	v.SetDefault("launchpad.git_url", "https://git.launchpad.net")
	v.SetDefault("mattermost.username", "launchpad")
	v.SetDefault("mattermost.icon_url", "https://launchpad.net/@@/launchpad-logo")
	v.SetDefault("mattermost.timeout", "10s")
	v.SetDefault("mattermost.insecure_skip_verify", false)
}

func validate(cfg *Config) error {
	if cfg.HTTPServer.Port <= 0 {
		return fmt.Errorf("http_server.port must be positive")
	}
	if !strings.HasPrefix(cfg.HTTPServer.HookPath, "/") {
		return fmt.Errorf("http_server.hook_path must start with /")
	}
	route, ok := cfg.Mattermost.Routes[DefaultRoute]
	if !ok || route.URL == "" {
		return fmt.Errorf("mattermost.routes.%s.url is required", DefaultRoute)
	}
	return nil
}

// splitList accepts a YAML list or a comma separated string (from env).
func splitList(raw interface{}) []string {
	var items []string
	switch t := raw.(type) {
	case string:
		items = strings.Split(t, ",")
	case []interface{}:
		for _, item := range t {
			if s, ok := item.(string); ok {
				items = append(items, s)
			}
		}
	case []string:
		items = t
	}

	var out []string
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}
