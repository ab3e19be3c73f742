package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/novinshop/core/internal/modules/recommend"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"

	defaultPort = 3010
	defaultEnv  = "development"

	defaultDBHost     = "127.0.0.1"
	defaultDBPort     = 3306
	defaultDBUser     = "root"
	defaultDBPassword = "password"
	defaultDBName     = "novinshop"
	defaultDBCharset  = "utf8mb4"
	defaultDBLoc      = "Local"

	defaultRedisHost = "localhost"
	defaultRedisPort = 6379
	defaultRedisDB   = 0

	defaultRecommendNamespace   = "reco"
	defaultRecommendFeedLimit   = 10
	defaultRecommendCorpusLimit = 200
)

// AppConfig holds runtime startup configuration loaded from YAML.
type AppConfig struct {
	Port           int             `yaml:"port"`
	Env            string          `yaml:"env"` // "development" | "production"
	DSN            string          `yaml:"dsn"` // MySQL DSN, overrides database section
	RedisURL       string          `yaml:"redis_url"`
	Database       DatabaseConfig  `yaml:"database"`
	Redis          RedisConfig     `yaml:"redis"`
	AllowedOrigins []string        `yaml:"allowed_origins"`
	JWTSecret      string          `yaml:"jwt_secret"`
	Recommend      RecommendConfig `yaml:"recommend"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	Charset  string `yaml:"charset"`
	Loc      string `yaml:"loc"`
}

type RedisConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// RecommendConfig tunes the recommendation engine.
type RecommendConfig struct {
	// Namespace prefixes every persisted reader-state key. Roll it to
	// invalidate all stored personalization state at once.
	Namespace string `yaml:"namespace"`
	// FeedLimit is the default personalized feed size.
	FeedLimit int `yaml:"feed_limit"`
	// CorpusLimit bounds how many articles a single similarity or feed
	// request loads as candidates.
	CorpusLimit int `yaml:"corpus_limit"`
	// Weights overrides the similarity factor weights. Leave unset to use
	// the built-in defaults.
	Weights recommend.SimilarityWeights `yaml:"weights"`
}

// Load reads and normalizes the YAML config at path. A missing file yields
// the defaults.
func Load(path string) (*AppConfig, error) {
	cfg := &AppConfig{}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.normalize()
	return cfg, nil
}

// IsDev reports whether the app runs in development mode.
func (c *AppConfig) IsDev() bool {
	return strings.ToLower(strings.TrimSpace(c.Env)) != "production"
}

func (c *AppConfig) normalize() {
	if c.Port == 0 {
		c.Port = defaultPort
	}
	if strings.TrimSpace(c.Env) == "" {
		c.Env = defaultEnv
	}
	if strings.TrimSpace(c.DSN) == "" {
		c.DSN = c.Database.dsn()
	}
	if strings.TrimSpace(c.RedisURL) == "" {
		c.RedisURL = c.Redis.url()
	}
	if strings.TrimSpace(c.Recommend.Namespace) == "" {
		c.Recommend.Namespace = defaultRecommendNamespace
	}
	if c.Recommend.FeedLimit <= 0 {
		c.Recommend.FeedLimit = defaultRecommendFeedLimit
	}
	if c.Recommend.CorpusLimit <= 0 {
		c.Recommend.CorpusLimit = defaultRecommendCorpusLimit
	}
}

func (d DatabaseConfig) dsn() string {
	host := strings.TrimSpace(d.Host)
	if host == "" {
		host = defaultDBHost
	}
	port := d.Port
	if port == 0 {
		port = defaultDBPort
	}
	user := strings.TrimSpace(d.User)
	if user == "" {
		user = defaultDBUser
	}
	password := d.Password
	if password == "" {
		password = defaultDBPassword
	}
	name := strings.TrimSpace(d.Name)
	if name == "" {
		name = defaultDBName
	}
	charset := strings.TrimSpace(d.Charset)
	if charset == "" {
		charset = defaultDBCharset
	}
	loc := strings.TrimSpace(d.Loc)
	if loc == "" {
		loc = defaultDBLoc
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=True&loc=%s",
		user, password, host, port, name, charset, loc)
}

func (r RedisConfig) url() string {
	host := strings.TrimSpace(r.Host)
	if host == "" {
		host = defaultRedisHost
	}
	port := r.Port
	if port == 0 {
		port = defaultRedisPort
	}
	db := r.DB
	if db < 0 {
		db = defaultRedisDB
	}

	auth := ""
	if r.Username != "" || r.Password != "" {
		auth = fmt.Sprintf("%s:%s@", strings.TrimSpace(r.Username), r.Password)
	}
	return fmt.Sprintf("redis://%s%s:%d/%d", auth, host, port, db)
}
