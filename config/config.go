package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultRoutingBaseURL = "https://api.openrouteservice.org"
	defaultRoutingProfile = "foot-walking"
	defaultRoutingTimeout = 10 * time.Second
	defaultAlternatives   = 3

	defaultMaxSessions         = 1000
	defaultSessionTTL          = 30 * time.Minute
	defaultLocale              = "en-US"
	defaultAnnouncementHistory = 20

	defaultAnnouncerTimeout = 5 * time.Second
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Routing configuration for the directions provider
	Routing *RoutingConfig `json:"routing" yaml:"routing"`

	// Navigation configuration for session handling
	Navigation *NavigationConfig `json:"navigation" yaml:"navigation"`

	// Announcer configuration for spoken cue delivery
	Announcer *AnnouncerConfig `json:"announcer" yaml:"announcer"`

	// Firebase configuration for push-delivered announcements
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// PubSub configuration for navigation event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// RoutingConfig defines the OpenRouteService directions client configuration
type RoutingConfig struct {
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`
	APIKey  string `json:"apiKey" yaml:"apiKey"`

	// ORS profile, e.g. foot-walking or driving-car
	Profile  string `json:"profile" yaml:"profile"`
	Language string `json:"language" yaml:"language"`

	// Number of alternative routes to request (1 disables alternatives)
	Alternatives int           `json:"alternatives" yaml:"alternatives"`
	Timeout      time.Duration `json:"timeout" yaml:"timeout"`
}

// NavigationConfig defines navigation session limits
type NavigationConfig struct {
	MaxSessions int           `json:"maxSessions" yaml:"maxSessions"`
	SessionTTL  time.Duration `json:"sessionTTL" yaml:"sessionTTL"`

	// Locale attached to announcements when a session does not request one
	Locale string `json:"locale" yaml:"locale"`

	// Number of announcements retained per session until drained
	AnnouncementHistory int `json:"announcementHistory" yaml:"announcementHistory"`
}

// AnnouncerConfig defines how announcements leave the service
type AnnouncerConfig struct {
	// Provider type: "noop", "log", "webhook" or "fcm"
	Provider   string        `json:"provider" yaml:"provider"`
	WebhookURL string        `json:"webhookUrl" yaml:"webhookUrl"`
	Timeout    time.Duration `json:"timeout" yaml:"timeout"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// AuthConfig enables bearer token checks on the navigation API
type AuthConfig struct {
	Enabled   bool   `json:"enabled" yaml:"enabled"`
	JWTSecret string `json:"jwtSecret" yaml:"jwtSecret"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Align each segment with existing YAML keys.
			// Example: ROUTING_APIKEY -> routing.apiKey (not routing.apikey)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	return cfg, nil
}

// ApplyDefaults fills every optional section so callers never see nil sections.
func (cfg *Config) ApplyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Routing == nil {
		cfg.Routing = &RoutingConfig{}
	}
	if cfg.Routing.BaseURL == "" {
		cfg.Routing.BaseURL = defaultRoutingBaseURL
	}
	if cfg.Routing.Profile == "" {
		cfg.Routing.Profile = defaultRoutingProfile
	}
	if cfg.Routing.Alternatives <= 0 {
		cfg.Routing.Alternatives = defaultAlternatives
	}
	if cfg.Routing.Timeout <= 0 {
		cfg.Routing.Timeout = defaultRoutingTimeout
	}

	if cfg.Navigation == nil {
		cfg.Navigation = &NavigationConfig{}
	}
	if cfg.Navigation.MaxSessions <= 0 {
		cfg.Navigation.MaxSessions = defaultMaxSessions
	}
	if cfg.Navigation.SessionTTL <= 0 {
		cfg.Navigation.SessionTTL = defaultSessionTTL
	}
	if cfg.Navigation.Locale == "" {
		cfg.Navigation.Locale = defaultLocale
	}
	if cfg.Navigation.AnnouncementHistory <= 0 {
		cfg.Navigation.AnnouncementHistory = defaultAnnouncementHistory
	}

	if cfg.Announcer == nil {
		cfg.Announcer = &AnnouncerConfig{}
	}
	if cfg.Announcer.Provider == "" {
		cfg.Announcer.Provider = "log"
	}
	if cfg.Announcer.Timeout <= 0 {
		cfg.Announcer.Timeout = defaultAnnouncerTimeout
	}

	if cfg.PubSub == nil {
		cfg.PubSub = &PubSubConfig{}
	}
	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
