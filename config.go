package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	ModeTUI = "tui"
	ModeMCP = "mcp"
)

type Config struct {
	AppName            string       `yaml:"app_name"`
	Heading            string       `yaml:"heading"`
	Mode               string       `yaml:"mode"`
	RequireTitleOnSave *bool        `yaml:"require_title_on_save"`
	LogFile            string       `yaml:"log_file"`
	Server             ServerConfig `yaml:"server"`
	Keys               Keymap       `yaml:"keys"`
}

type ServerConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

// Keymap lists the key strings (as reported by tea.KeyMsg.String) bound to
// each intent. Several keys may share an intent.
type Keymap struct {
	Up       []string `yaml:"up"`
	Down     []string `yaml:"down"`
	Toggle   []string `yaml:"toggle"`
	Edit     []string `yaml:"edit"`
	Delete   []string `yaml:"delete"`
	Compose  []string `yaml:"compose"`
	Describe []string `yaml:"describe"`
	Submit   []string `yaml:"submit"`
	Cancel   []string `yaml:"cancel"`
	Next     []string `yaml:"next"`
	Quit     []string `yaml:"quit"`
}

func Default() Config {
	var c Config
	c.ApplyDefaults()
	return c
}

func (k *Keymap) ApplyDefaults() {
	def := func(dst *[]string, keys ...string) {
		if len(*dst) == 0 {
			*dst = keys
		}
	}
	def(&k.Up, "up", "k")
	def(&k.Down, "down", "j")
	def(&k.Toggle, " ", "x")
	def(&k.Edit, "e")
	def(&k.Delete, "d")
	def(&k.Compose, "a", "n")
	def(&k.Describe, "ctrl+d")
	def(&k.Submit, "enter", "ctrl+s")
	def(&k.Cancel, "esc")
	def(&k.Next, "tab")
	def(&k.Quit, "q")
}

func (c *Config) ApplyDefaults() {
	if strings.TrimSpace(c.AppName) == "" {
		c.AppName = "Todo App"
	}
	if strings.TrimSpace(c.Heading) == "" {
		c.Heading = "Task Master"
	}
	if c.Mode == "" {
		c.Mode = ModeTUI
	}
	if c.RequireTitleOnSave == nil {
		v := true
		c.RequireTitleOnSave = &v
	}
	if c.Server.Name == "" {
		c.Server.Name = "taskmaster"
	}
	if c.Server.Version == "" {
		c.Server.Version = "v0.1.0"
	}
	c.Keys.ApplyDefaults()
}

// TitleRequiredOnSave reports whether SaveEdit rejects a blank title.
func (c Config) TitleRequiredOnSave() bool {
	return c.RequireTitleOnSave == nil || *c.RequireTitleOnSave
}

func (c Config) Validate() error {
	switch c.Mode {
	case ModeTUI, ModeMCP:
	default:
		return fmt.Errorf("unknown mode %q (want %q or %q)", c.Mode, ModeTUI, ModeMCP)
	}
	return nil
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	c.ApplyDefaults()
	return &c, nil
}

// ApplyEnv overrides file settings from TASKMASTER_* environment variables.
func (c *Config) ApplyEnv() {
	if v := strings.TrimSpace(os.Getenv("TASKMASTER_MODE")); v != "" {
		c.Mode = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv("TASKMASTER_LOG_FILE")); v != "" {
		c.LogFile = v
	}
}
