package app

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/wardrobe/pkg/constants"
)

// Config holds the application configuration loaded from config files,
// environment variables and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Wardrobe configuration
	StorePath string
	AutoSave  bool

	// API server configuration
	ServerHost string
	ServerPort int

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
//  1. Command-line flags (applied later by UpdateFromFlags)
//  2. Environment variables (WARDROBE_ prefix, plus LOG_*)
//  3. .env and .env.local files
//  4. Config file (configFile, or ~/.wardrobe.yaml, or ./.wardrobe.yaml)
//  5. Defaults
func LoadConfig(configFile string) (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("store_path", defaultStorePath())
	v.SetDefault("auto_save", false)
	v.SetDefault("server.host", constants.DefaultServerHost)
	v.SetDefault("server.port", constants.DefaultServerPort)
	v.SetDefault("log_level", "")
	v.SetDefault("log_format", "auto")
	v.SetDefault("log_output", "stderr")

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(constants.ConfigFileName)
		// a missing default config file is fine
		_ = v.ReadInConfig()
	}

	return &Config{
		Format:     v.GetString("format"),
		ConfigFile: v.ConfigFileUsed(),
		StorePath:  v.GetString("store_path"),
		AutoSave:   v.GetBool("auto_save"),
		ServerHost: v.GetString("server.host"),
		ServerPort: v.GetInt("server.port"),
		LogLevel:   getEnvOrDefault("LOG_LEVEL", v.GetString("log_level")),
		LogFormat:  getEnvOrDefault("LOG_FORMAT", v.GetString("log_format")),
		LogOutput:  getEnvOrDefault("LOG_OUTPUT", v.GetString("log_output")),
	}, nil
}

// UpdateFromFlags applies parsed command flags, which take precedence over
// every other source. Empty strings leave the loaded value in place.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, format, logLevel, storePath string) {
	c.Verbose = verbose
	c.Quiet = quiet
	c.NoColor = noColor
	if format != "" {
		c.Format = format
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
	if storePath != "" {
		c.StorePath = storePath
	}
}

// defaultStorePath is ~/.wardrobe/wardrobe.json, or a relative path when
// there is no home directory.
func defaultStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(constants.DefaultStoreDir, constants.DefaultStoreFile)
	}
	return filepath.Join(home, constants.DefaultStoreDir, constants.DefaultStoreFile)
}

// loadEnvFiles loads environment variables from .env files. godotenv never
// overrides a variable that is already set, so .env.local goes first.
func loadEnvFiles() {
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
