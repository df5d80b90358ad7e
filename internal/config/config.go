package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/brogergvhs/questgraph/internal/questreq"
	"github.com/brogergvhs/questgraph/internal/status"
	"github.com/brogergvhs/questgraph/internal/wiki"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Username   string `yaml:"username"`
	StatusURL  string `yaml:"status_url"`
	WikiURL    string `yaml:"wiki_url"`
	TableClass string `yaml:"table_class"`

	Workers int    `yaml:"workers"`
	Output  string `yaml:"output"`
	Format  string `yaml:"format"`

	CachePath string        `yaml:"cache_path"`
	CacheTTL  time.Duration `yaml:"cache_ttl"`

	Cookie     string        `yaml:"cookie"`
	CookieFile string        `yaml:"cookie_file"`
	UserAgent  string        `yaml:"user_agent"`
	Cloudflare bool          `yaml:"cloudflare"`
	Timeout    time.Duration `yaml:"timeout"`

	Debug bool `yaml:"debug"`
}

type Options struct {
	IgnoreConfig bool
	Debug        bool
	Username     string
	StatusURL    string
	WikiURL      string
	TableClass   string
	Workers      int
	Output       string
	Format       string
	CachePath    string
	NoCache      bool
	CacheTTL     time.Duration
	Cookie       string
	CookieFile   string
	UserAgent    string
	Cloudflare   bool
	Timeout      time.Duration
}

func DefaultCachePath() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "questgraph", "pages.db")
	}
	return filepath.Join(ConfigRoot(), "pages.db")
}

func DefaultConfig() *Config {
	return &Config{
		Username:   "",
		StatusURL:  status.DefaultFeedURL,
		WikiURL:    wiki.DefaultBaseURL,
		TableClass: questreq.DefaultTableClass,
		Workers:    4,
		Output:     "quests.dot",
		Format:     "dot",
		CachePath:  DefaultCachePath(),
		CacheTTL:   24 * time.Hour,
		Cookie:     "",
		CookieFile: "",
		UserAgent:  "",
		Cloudflare: false,
		Timeout:    30 * time.Second,
		Debug:      false,
	}
}

func SaveYAML(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

func loadYAML(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}

	return &c, nil
}

func LoadMerged(opts Options) (*Config, string, error) {
	if opts.IgnoreConfig {
		cfg := DefaultConfig()
		mergeConfig(cfg, opts)
		normalizeDefaults(cfg)
		return cfg, "(ignored config)", nil
	}

	activePath, err := ActiveConfigPath()
	if err == ErrNoConfig || activePath == "" {
		cfg := DefaultConfig()
		mergeConfig(cfg, opts)
		normalizeDefaults(cfg)
		return cfg, "(default config in memory)\nRun `questgraph config init` to create an actual config\n", nil
	}
	if err != nil {
		return nil, "", err
	}

	cfg, err := loadYAML(activePath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config %s: %w", activePath, err)
	}

	mergeConfig(cfg, opts)
	normalizeDefaults(cfg)

	return cfg, activePath, nil
}

func mergeConfig(c *Config, o Options) {
	if o.Username != "" {
		c.Username = o.Username
	}
	if o.StatusURL != "" {
		c.StatusURL = o.StatusURL
	}
	if o.WikiURL != "" {
		c.WikiURL = o.WikiURL
	}
	if o.TableClass != "" {
		c.TableClass = o.TableClass
	}
	if o.Workers != 0 {
		c.Workers = o.Workers
	}
	if o.Output != "" {
		c.Output = o.Output
	}
	if o.Format != "" {
		c.Format = o.Format
	}
	if o.CachePath != "" {
		c.CachePath = o.CachePath
	}
	if o.NoCache {
		c.CachePath = ""
	}
	if o.CacheTTL != 0 {
		c.CacheTTL = o.CacheTTL
	}
	if o.Cookie != "" {
		c.Cookie = o.Cookie
	}
	if o.CookieFile != "" {
		c.CookieFile = o.CookieFile
	}
	if o.UserAgent != "" {
		c.UserAgent = o.UserAgent
	}
	if o.Cloudflare {
		c.Cloudflare = true
	}
	if o.Timeout != 0 {
		c.Timeout = o.Timeout
	}
	if o.Debug {
		c.Debug = true
	}
}

func normalizeDefaults(c *Config) {
	if c.StatusURL == "" {
		c.StatusURL = status.DefaultFeedURL
	}
	if c.WikiURL == "" {
		c.WikiURL = wiki.DefaultBaseURL
	}
	if c.TableClass == "" {
		c.TableClass = questreq.DefaultTableClass
	}
	if c.Workers <= 0 {
		c.Workers = 4
	}
	if c.Format == "" {
		c.Format = "dot"
	}
	if c.CacheTTL <= 0 {
		c.CacheTTL = 24 * time.Hour
	}
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
}

func (c *Config) Print() {
	if c.Username != "" {
		fmt.Printf(" -username: %s\n", c.Username)
	}
	fmt.Printf(" -status_url: %s\n", c.StatusURL)
	fmt.Printf(" -wiki_url: %s\n", c.WikiURL)
	fmt.Printf(" -table_class: %s\n", c.TableClass)
	fmt.Printf(" -workers: %d\n", c.Workers)
	if c.Output != "" {
		fmt.Printf(" -output: %s\n", c.Output)
	}
	fmt.Printf(" -format: %s\n", c.Format)
	if c.CachePath != "" {
		fmt.Printf(" -cache_path: %s\n", c.CachePath)
		fmt.Printf(" -cache_ttl: %s\n", c.CacheTTL)
	} else {
		fmt.Println(" -cache: disabled")
	}
	if c.CookieFile != "" {
		fmt.Printf(" -cookie_file: %s\n", c.CookieFile)
	}
	if c.UserAgent != "" {
		fmt.Printf(" -user_agent: %s\n", c.UserAgent)
	}
	if c.Cloudflare {
		fmt.Printf(" -cloudflare: %t\n", c.Cloudflare)
	}
	fmt.Printf(" -timeout: %s\n", c.Timeout)
	if c.Debug {
		fmt.Printf(" -debug: %t\n", c.Debug)
	}
}
