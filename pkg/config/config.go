package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "/etc/keywhiz/config"
	ConfigFileName    = "keywhiz.yml"
)

// ValidLogLevels is the list of accepted log_level values
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// KeywhizConfig holds all keywhiz configuration settings
type KeywhizConfig struct {
	// BindAddress is the address the admin API listens on
	BindAddress string `yaml:"bind_address" json:"bind_address"`

	// Port is the admin API listen port
	Port int `yaml:"port" json:"port"`

	// LogLevel controls process logging (debug, info, warn, error)
	LogLevel string `yaml:"log_level" json:"log_level"`

	// APIListLimitMax is the maximum number of results for listing requests
	APIListLimitMax int `yaml:"api_list_limit_max" json:"api_list_limit_max"`

	// ACLFile is the path of the declarative ACL seed file applied on demand
	ACLFile string `yaml:"acl_file" json:"acl_file"`

	// DefaultCreator is recorded in created_by/updated_by when a caller
	// does not identify itself
	DefaultCreator string `yaml:"default_creator" json:"default_creator"`

	// sources tracks where each value came from
	sources map[string]string

	// configFilePath is the path to the config file
	configFilePath string
}

// Attribute represents a configuration attribute with its value and source
type Attribute struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

// Global singleton config
var (
	globalConfig *KeywhizConfig
	configMu     sync.RWMutex
)

// Get returns the global configuration, loading it if necessary
func Get() *KeywhizConfig {
	configMu.RLock()
	if globalConfig != nil {
		configMu.RUnlock()
		return globalConfig
	}
	configMu.RUnlock()

	configMu.Lock()
	defer configMu.Unlock()

	if globalConfig == nil {
		cfg, err := Load()
		if err != nil {
			// Return defaults on error
			globalConfig = newDefault()
		} else {
			globalConfig = cfg
		}
	}
	return globalConfig
}

// Reload reloads the configuration from file and environment
func Reload() error {
	cfg, err := Load()
	if err != nil {
		return err
	}

	configMu.Lock()
	globalConfig = cfg
	configMu.Unlock()
	return nil
}

// newDefault returns a config with default values
func newDefault() *KeywhizConfig {
	return &KeywhizConfig{
		BindAddress:     "0.0.0.0",
		Port:            8080,
		LogLevel:        "info",
		APIListLimitMax: 1000,
		ACLFile:         "",
		DefaultCreator:  "keywhiz",
		sources:         make(map[string]string),
	}
}

// Load loads configuration from file and environment variables.
// Environment variables take precedence over file values.
func Load() (*KeywhizConfig, error) {
	config := newDefault()

	// Initialize all sources as "default"
	for _, name := range attributeNames() {
		config.sources[name] = "default"
	}

	// Determine config file path
	configPath := os.Getenv("KEYWHIZ_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	config.configFilePath = filepath.Join(configPath, ConfigFileName)

	// Try to load from config file
	if data, err := os.ReadFile(config.configFilePath); err == nil {
		var fileConfig KeywhizConfig
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", config.configFilePath, err)
		}
		config.applyFileConfig(&fileConfig)
	}

	// Override with environment variables
	config.applyEnvConfig()

	return config, nil
}

func attributeNames() []string {
	return []string{
		"bind_address", "port", "log_level", "api_list_limit_max",
		"acl_file", "default_creator",
	}
}

func (c *KeywhizConfig) applyFileConfig(file *KeywhizConfig) {
	if file.BindAddress != "" {
		c.BindAddress = file.BindAddress
		c.sources["bind_address"] = "file"
	}
	if file.Port != 0 {
		c.Port = file.Port
		c.sources["port"] = "file"
	}
	if file.LogLevel != "" {
		c.LogLevel = file.LogLevel
		c.sources["log_level"] = "file"
	}
	if file.APIListLimitMax != 0 {
		c.APIListLimitMax = file.APIListLimitMax
		c.sources["api_list_limit_max"] = "file"
	}
	if file.ACLFile != "" {
		c.ACLFile = file.ACLFile
		c.sources["acl_file"] = "file"
	}
	if file.DefaultCreator != "" {
		c.DefaultCreator = file.DefaultCreator
		c.sources["default_creator"] = "file"
	}
}

func (c *KeywhizConfig) applyEnvConfig() {
	if val := os.Getenv("KEYWHIZ_BIND_ADDRESS"); val != "" {
		c.BindAddress = val
		c.sources["bind_address"] = "environment"
	}
	if val := os.Getenv("KEYWHIZ_PORT"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.Port = i
			c.sources["port"] = "environment"
		}
	}
	if val := os.Getenv("KEYWHIZ_LOG_LEVEL"); val != "" {
		c.LogLevel = val
		c.sources["log_level"] = "environment"
	}
	if val := os.Getenv("KEYWHIZ_API_LIST_LIMIT_MAX"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.APIListLimitMax = i
			c.sources["api_list_limit_max"] = "environment"
		}
	}
	if val := os.Getenv("KEYWHIZ_ACL_FILE"); val != "" {
		c.ACLFile = val
		c.sources["acl_file"] = "environment"
	}
	if val := os.Getenv("KEYWHIZ_DEFAULT_CREATOR"); val != "" {
		c.DefaultCreator = val
		c.sources["default_creator"] = "environment"
	}
}

// ConfigFilePath returns the path to the config file
func (c *KeywhizConfig) ConfigFilePath() string {
	return c.configFilePath
}

// Source returns the source of a configuration attribute
func (c *KeywhizConfig) Source(name string) string {
	if c.sources == nil {
		return "default"
	}
	if s, ok := c.sources[name]; ok {
		return s
	}
	return "default"
}

// Validate validates the configuration
func (c *KeywhizConfig) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}

	validLevel := false
	for _, l := range ValidLogLevels {
		if c.LogLevel == l {
			validLevel = true
			break
		}
	}
	if !validLevel {
		return fmt.Errorf("invalid log_level: %s", c.LogLevel)
	}

	if c.APIListLimitMax < 1 {
		return fmt.Errorf("invalid api_list_limit_max: %d", c.APIListLimitMax)
	}

	if c.ACLFile != "" {
		if _, err := os.Stat(c.ACLFile); err != nil {
			return fmt.Errorf("acl_file is not readable: %w", err)
		}
	}

	return nil
}

// Attributes returns all configuration attributes with their values and sources
func (c *KeywhizConfig) Attributes() []Attribute {
	return []Attribute{
		{Name: "bind_address", Value: c.BindAddress, Source: c.Source("bind_address")},
		{Name: "port", Value: strconv.Itoa(c.Port), Source: c.Source("port")},
		{Name: "log_level", Value: c.LogLevel, Source: c.Source("log_level")},
		{Name: "api_list_limit_max", Value: strconv.Itoa(c.APIListLimitMax), Source: c.Source("api_list_limit_max")},
		{Name: "acl_file", Value: c.ACLFile, Source: c.Source("acl_file")},
		{Name: "default_creator", Value: c.DefaultCreator, Source: c.Source("default_creator")},
	}
}

// FormatText returns a text representation of the configuration
func (c *KeywhizConfig) FormatText() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Config file: %s\n\n", c.configFilePath))
	sb.WriteString(fmt.Sprintf("%-40s %-30s %s\n", "NAME", "VALUE", "SOURCE"))
	sb.WriteString(fmt.Sprintf("%-40s %-30s %s\n", "----", "-----", "------"))

	for _, attr := range c.Attributes() {
		value := attr.Value
		if value == "" {
			value = "(not set)"
		}
		sb.WriteString(fmt.Sprintf("%-40s %-30s %s\n", attr.Name, value, attr.Source))
	}
	return sb.String()
}

// FormatJSON returns a JSON representation of the configuration
func (c *KeywhizConfig) FormatJSON() (string, error) {
	result := map[string]interface{}{
		"config_file": c.configFilePath,
		"attributes":  c.Attributes(),
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
