package config

import (
	"flag"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var once sync.Once
var logger *zap.SugaredLogger
var loggerOnce sync.Once

// isTestRun returns true if the current process is a Go test binary.
func isTestRun() bool {
	return flag.Lookup("test.v") != nil || filepath.Ext(os.Args[0]) == ".test"
}

func initConfig() {
	once.Do(func() {
		setDefaults()

		root, err := getProjectRoot()
		if err != nil {
			GetLogger().Errorw("Error finding project root", "error", err)
		}
		viper.SetConfigType("yaml")

		viper.SetConfigName("config")
		viper.AddConfigPath(root)
		if err = viper.ReadInConfig(); err != nil {
			GetLogger().Errorw("Error reading config file", "error", err)
		}

		if isTestRun() {
			viper.SetConfigName("config_test")
			viper.AddConfigPath(root)
			if err = viper.MergeInConfig(); err != nil {
				GetLogger().Errorw("Error reading test config file", "error", err)
			}
		}
	})
}

// setDefaults keeps the tools usable even without a config.yaml on disk.
func setDefaults() {
	viper.SetDefault("search.url", "https://html.duckduckgo.com/html/")
	viper.SetDefault("search.user_agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	viper.SetDefault("search.max_results", 10)
	viper.SetDefault("geocoding.url", "https://geocoding-api.open-meteo.com/v1/search")
	viper.SetDefault("weather.url", "https://api.open-meteo.com/v1/forecast")
	viper.SetDefault("http.timeout", "10s")
}

func getProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}

func GetSearchURL() string {
	initConfig()
	return viper.GetString("search.url")
}

// GetSearchUserAgent prefers the WEBTOOLS_USER_AGENT env variable (loaded
// from .env if present) over the configured value. The search endpoint
// serves different markup to generic clients, so this must look like a
// browser.
func GetSearchUserAgent() string {
	_ = godotenv.Load()
	if ua := os.Getenv("WEBTOOLS_USER_AGENT"); ua != "" {
		return ua
	}
	initConfig()
	return viper.GetString("search.user_agent")
}

func GetSearchMaxResults() int {
	initConfig()
	n := viper.GetInt("search.max_results")
	if n <= 0 {
		return 10
	}
	return n
}

func GetGeocodingURL() string {
	initConfig()
	return viper.GetString("geocoding.url")
}

func GetWeatherURL() string {
	initConfig()
	return viper.GetString("weather.url")
}

// GetHTTPTimeout returns the outbound HTTP client timeout as a time.Duration.
// Defaults to 10s if not set or invalid.
func GetHTTPTimeout() time.Duration {
	initConfig()
	durStr := viper.GetString("http.timeout")
	if durStr == "" {
		durStr = "10s"
	}
	dur, err := time.ParseDuration(durStr)
	if err != nil {
		return 10 * time.Second
	}
	return dur
}

// ReloadConfigForTest resets the config singleton and reloads Viper config. Use only in tests.
func ReloadConfigForTest() {
	once = sync.Once{}
	initConfig()
}

func GetLogger() *zap.SugaredLogger {
	loggerOnce.Do(func() {
		l, err := zap.NewDevelopment()
		if err != nil {
			panic(err)
		}
		logger = l.Sugar()
	})
	return logger
}
