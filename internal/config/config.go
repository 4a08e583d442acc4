package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jellydator/validation"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

var portRegex = regexp.MustCompile(`^[0-9]{1,5}$`)

const (
	apiPortEnvKey         = "API_PORT"
	logLevelEnvKey        = "LOG_LEVEL"
	ethNodeEnvKey         = "ETH_NODE_URL"
	dbConnEnvKey          = "DB_CONNECTION_URL"
	redisAddrEnvKey       = "REDIS_ADDR"
	kafkaBrokersEnvKey    = "KAFKA_BROKERS"
	kafkaTopicEnvKey      = "KAFKA_TOPIC"
	knownAddressesEnvKey  = "KNOWN_ADDRESSES_PATH"
	reloadIntervalEnvKey  = "CONFIG_RELOAD_INTERVAL"
	riskModelEnvKey       = "RISK_MODEL_PATH"
	chainalysisKeyEnvKey  = "CHAINALYSIS_API_KEY"
	trmKeyEnvKey          = "TRM_API_KEY"
	providerTimeoutEnvKey = "SANCTIONS_PROVIDER_TIMEOUT"
	cacheTTLEnvKey        = "SANCTIONS_CACHE_TTL"
	cacheSizeEnvKey       = "SANCTIONS_CACHE_SIZE"
	jwtSecretEnvKey       = "JWT_SECRET"
)

// App holds process configuration. Empty optional values switch the matching adapter off.
type App struct {
	Port                 string
	LogLevel             string
	NodeURL              string
	DBConnectionURL      string
	RedisAddr            string
	KafkaBrokers         []string
	KafkaTopic           string
	KnownAddressesPath   string
	ConfigReloadInterval time.Duration
	RiskModelPath        string
	ChainalysisAPIKey    string
	TRMAPIKey            string
	ProviderTimeout      time.Duration
	CacheTTL             time.Duration
	CacheSize            int
	JWTSecret            string
}

func NewApp() (App, error) {
	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	reloadInterval, err := lookupDuration(reloadIntervalEnvKey, 30*time.Second)
	if err != nil {
		return App{}, err
	}
	providerTimeout, err := lookupDuration(providerTimeoutEnvKey, 10*time.Second)
	if err != nil {
		return App{}, err
	}
	cacheTTL, err := lookupDuration(cacheTTLEnvKey, 24*time.Hour)
	if err != nil {
		return App{}, err
	}
	cacheSize, err := lookupInt(cacheSizeEnvKey, 100_000)
	if err != nil {
		return App{}, err
	}

	var brokers []string
	if raw := lookupOr(kafkaBrokersEnvKey, ""); raw != "" {
		for _, b := range strings.Split(raw, ",") {
			if b = strings.TrimSpace(b); b != "" {
				brokers = append(brokers, b)
			}
		}
	}

	app := App{
		Port:                 port,
		LogLevel:             lookupOr(logLevelEnvKey, "info"),
		NodeURL:              lookupOr(ethNodeEnvKey, ""),
		DBConnectionURL:      lookupOr(dbConnEnvKey, ""),
		RedisAddr:            lookupOr(redisAddrEnvKey, ""),
		KafkaBrokers:         brokers,
		KafkaTopic:           lookupOr(kafkaTopicEnvKey, "chainsentry.signals"),
		KnownAddressesPath:   lookupOr(knownAddressesEnvKey, ""),
		ConfigReloadInterval: reloadInterval,
		RiskModelPath:        lookupOr(riskModelEnvKey, ""),
		ChainalysisAPIKey:    lookupOr(chainalysisKeyEnvKey, ""),
		TRMAPIKey:            lookupOr(trmKeyEnvKey, ""),
		ProviderTimeout:      providerTimeout,
		CacheTTL:             cacheTTL,
		CacheSize:            cacheSize,
		JWTSecret:            lookupOr(jwtSecretEnvKey, ""),
	}

	if err := app.Validate(); err != nil {
		return App{}, fmt.Errorf("validate config: %w", err)
	}

	return app, nil
}

func (a App) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Port, validation.Required, validation.Match(portRegex)),
		validation.Field(&a.LogLevel, validation.In("debug", "info", "warn", "error")),
		validation.Field(&a.NodeURL, validation.By(absoluteURL)),
		validation.Field(&a.ConfigReloadInterval, validation.Min(time.Second)),
		validation.Field(&a.ProviderTimeout, validation.Min(100*time.Millisecond)),
		validation.Field(&a.CacheTTL, validation.Min(time.Minute)),
		validation.Field(&a.CacheSize, validation.Min(1)),
		validation.Field(&a.KafkaTopic, validation.When(len(a.KafkaBrokers) > 0, validation.Required)),
	)
}

func absoluteURL(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.New("must be an absolute URL")
	}
	return nil
}

func lookupOr(key, fallback string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	return v
}

func lookupDuration(key string, fallback time.Duration) (time.Duration, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return d, nil
}

func lookupInt(key string, fallback int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return n, nil
}

// LookupJWTSecret returns the API signing secret for tooling that runs without the full config.
func LookupJWTSecret() (string, error) {
	secret, ok := os.LookupEnv(jwtSecretEnvKey)
	if !ok || secret == "" {
		return "", fmt.Errorf("%w: %s", errEnvVarNotFound, jwtSecretEnvKey)
	}
	return secret, nil
}
