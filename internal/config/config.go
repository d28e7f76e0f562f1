package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	DefaultBaseURL         = "https://teamx.fun"
	DefaultMaxChapterPages = 100
)

type Config struct {
	BaseURL          string        `yaml:"base_url"`
	UserAgent        string        `yaml:"user_agent"`
	Cookie           string        `yaml:"cookie"`
	CookieFile       string        `yaml:"cookie_file"`
	Timeout          time.Duration `yaml:"timeout"`
	Debug            bool          `yaml:"debug"`
	BypassCloudflare bool          `yaml:"bypass_cloudflare"`
	MaxChapterPages  int           `yaml:"max_chapter_pages"`
	Output           string        `yaml:"output"`
}

// Options carries command line overrides. Zero values mean "not set".
type Options struct {
	IgnoreConfig    bool
	Debug           bool
	BaseURL         string
	UserAgent       string
	Cookie          string
	CookieFile      string
	Timeout         time.Duration
	MaxChapterPages int
	Output          string
}

func DefaultConfig() *Config {
	return &Config{
		BaseURL:          DefaultBaseURL,
		UserAgent:        "",
		Cookie:           "",
		CookieFile:       "",
		Timeout:          30 * time.Second,
		Debug:            false,
		BypassCloudflare: true,
		MaxChapterPages:  DefaultMaxChapterPages,
		Output:           "table",
	}
}

func SaveYAML(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// loadYAML starts from the defaults so keys missing in the file keep them.
func loadYAML(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	c := DefaultConfig()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, err
	}

	return c, nil
}

// LoadMerged resolves the effective configuration: defaults, then the
// active profile, then TEAMX_* environment variables, then opts. The second
// return value describes where the file layer came from.
func LoadMerged(opts Options) (*Config, string, error) {
	if opts.IgnoreConfig {
		cfg := DefaultConfig()
		applyEnv(cfg)
		mergeConfig(cfg, opts)
		normalizeDefaults(cfg)
		return cfg, "(ignored config)", nil
	}

	activePath, err := ActiveConfigPath()
	if err == ErrNoConfig || activePath == "" {
		cfg := DefaultConfig()
		applyEnv(cfg)
		mergeConfig(cfg, opts)
		normalizeDefaults(cfg)
		return cfg, "(default config in memory)", nil
	}
	if err != nil {
		return nil, "", err
	}

	cfg, err := loadYAML(activePath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config %s: %w", activePath, err)
	}

	applyEnv(cfg)
	mergeConfig(cfg, opts)
	normalizeDefaults(cfg)

	return cfg, activePath, nil
}

func applyEnv(c *Config) {
	v := viper.New()
	v.SetEnvPrefix("TEAMX")
	for _, key := range []string{
		"base_url", "user_agent", "cookie", "cookie_file", "timeout",
		"debug", "bypass_cloudflare", "max_chapter_pages", "output",
	} {
		_ = v.BindEnv(key)
	}

	if v.IsSet("base_url") {
		c.BaseURL = v.GetString("base_url")
	}
	if v.IsSet("user_agent") {
		c.UserAgent = v.GetString("user_agent")
	}
	if v.IsSet("cookie") {
		c.Cookie = v.GetString("cookie")
	}
	if v.IsSet("cookie_file") {
		c.CookieFile = v.GetString("cookie_file")
	}
	if v.IsSet("timeout") {
		c.Timeout = v.GetDuration("timeout")
	}
	if v.IsSet("debug") {
		c.Debug = v.GetBool("debug")
	}
	if v.IsSet("bypass_cloudflare") {
		c.BypassCloudflare = v.GetBool("bypass_cloudflare")
	}
	if v.IsSet("max_chapter_pages") {
		c.MaxChapterPages = v.GetInt("max_chapter_pages")
	}
	if v.IsSet("output") {
		c.Output = v.GetString("output")
	}
}

func mergeConfig(c *Config, o Options) {
	if o.Debug {
		c.Debug = true
	}
	if o.BaseURL != "" {
		c.BaseURL = o.BaseURL
	}
	if o.UserAgent != "" {
		c.UserAgent = o.UserAgent
	}
	if o.Cookie != "" {
		c.Cookie = o.Cookie
	}
	if o.CookieFile != "" {
		c.CookieFile = o.CookieFile
	}
	if o.Timeout != 0 {
		c.Timeout = o.Timeout
	}
	if o.MaxChapterPages != 0 {
		c.MaxChapterPages = o.MaxChapterPages
	}
	if o.Output != "" {
		c.Output = o.Output
	}
}

func normalizeDefaults(c *Config) {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	if c.MaxChapterPages < 0 {
		c.MaxChapterPages = 0
	}
	c.Output = strings.ToLower(strings.TrimSpace(c.Output))
	if c.Output != "json" {
		c.Output = "table"
	}
}

func (c *Config) Print() {
	fmt.Printf(" -base_url: %s\n", c.BaseURL)
	fmt.Printf(" -timeout: %s\n", c.Timeout)
	fmt.Printf(" -bypass_cloudflare: %t\n", c.BypassCloudflare)
	if c.MaxChapterPages > 0 {
		fmt.Printf(" -max_chapter_pages: %d\n", c.MaxChapterPages)
	} else {
		fmt.Println(" -max_chapter_pages: unlimited")
	}
	fmt.Printf(" -output: %s\n", c.Output)
	if c.Debug {
		fmt.Printf(" -debug: %t\n", c.Debug)
	}
	if c.UserAgent != "" {
		fmt.Printf(" -user_agent: %s\n", c.UserAgent)
	}
	if c.Cookie != "" {
		fmt.Println(" -cookie: (set)")
	}
	if c.CookieFile != "" {
		fmt.Printf(" -cookie_file: %s\n", c.CookieFile)
	}
}
