package main

import (
	"log"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	SpreadsheetID string `yaml:"spreadsheet_id"`

	BaseSite             string   `yaml:"base_site"`
	FallbackPatternsURL  string   `yaml:"fallback_patterns_url"`
	FallbackPatternsFile string   `yaml:"fallback_patterns_file"`
	AdditionalSourceURLs []string `yaml:"additional_patterns_urls"`
	MinProblemCount      int      `yaml:"min_problem_count"`

	LLMModel        string  `yaml:"llm_model"`
	LLMTemperature  float64 `yaml:"llm_temperature"`
	AnthropicAPIKey string  `yaml:"anthropic_api_key"`

	DBPath          string `yaml:"db_path"`
	TokenPath       string `yaml:"token_path"`
	CredentialsPath string `yaml:"credentials_path"`

	SlackBotToken  string `yaml:"slack_bot_token"`
	SlackChannelID string `yaml:"slack_channel_id"`

	HTTPTimeoutSeconds int    `yaml:"http_timeout_seconds"`
	UserAgent          string `yaml:"user_agent"`
}

const (
	defaultBaseSite            = "https://seanprashad.com/leetcode-patterns/"
	defaultFallbackPatternsURL = "https://raw.githubusercontent.com/SeanPrashad/leetcode-patterns/master/src/data/leetcode-patterns.json"
	defaultUserAgent           = "patternsheet/0.1 (+https://github.com/)"
)

var defaultAdditionalSources = []string{"https://neetcode.io/practice/practice/neetcode150"}

func LoadConfig() Config {
	var cfg Config

	// Best-effort .env file first so it can feed the env overrides below.
	loadDotEnv(".env")

	// Load from config.yaml if it exists
	configPath := "config.yaml"
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		configPath = envPath
	}
	if data, err := os.ReadFile(configPath); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			log.Fatalf("Error parsing %s: %v", configPath, err)
		}
		log.Printf("Loaded config from %s", configPath)
	}

	// Env vars override YAML values
	envOverride(&cfg.SpreadsheetID, "SHEET_ID")
	envOverride(&cfg.BaseSite, "BASE_SITE")
	envOverride(&cfg.FallbackPatternsURL, "FALLBACK_PATTERNS_URL")
	envOverride(&cfg.FallbackPatternsFile, "FALLBACK_PATTERNS_FILE")
	envOverride(&cfg.LLMModel, "LLM_MODEL")
	envOverrideFloat(&cfg.LLMTemperature, "LLM_TEMPERATURE")
	envOverride(&cfg.AnthropicAPIKey, "ANTHROPIC_API_KEY")
	envOverrideInt(&cfg.MinProblemCount, "MIN_PROBLEM_COUNT")
	envOverride(&cfg.DBPath, "DB_PATH")
	envOverride(&cfg.TokenPath, "TOKEN_PATH")
	envOverride(&cfg.CredentialsPath, "CREDENTIALS_PATH")
	envOverride(&cfg.SlackBotToken, "SLACK_BOT_TOKEN")
	envOverride(&cfg.SlackChannelID, "SLACK_CHANNEL_ID")
	envOverrideInt(&cfg.HTTPTimeoutSeconds, "HTTP_TIMEOUT_SECONDS")
	envOverride(&cfg.UserAgent, "USER_AGENT")

	if urls := os.Getenv("ADDITIONAL_PATTERNS_URLS"); urls != "" {
		cfg.AdditionalSourceURLs = nil
		for _, u := range strings.Split(urls, ",") {
			u = strings.TrimSpace(u)
			if u != "" {
				cfg.AdditionalSourceURLs = append(cfg.AdditionalSourceURLs, u)
			}
		}
	}

	// Defaults
	if cfg.BaseSite == "" {
		cfg.BaseSite = defaultBaseSite
	}
	if cfg.FallbackPatternsURL == "" {
		cfg.FallbackPatternsURL = defaultFallbackPatternsURL
	}
	if len(cfg.AdditionalSourceURLs) == 0 {
		cfg.AdditionalSourceURLs = defaultAdditionalSources
	}
	if cfg.MinProblemCount == 0 {
		cfg.MinProblemCount = 8
	}
	if cfg.LLMTemperature == 0 {
		cfg.LLMTemperature = 0.35
	}
	if cfg.DBPath == "" {
		cfg.DBPath = "./patternsheet.db"
	}
	if cfg.TokenPath == "" {
		cfg.TokenPath = "token.json"
	}
	if cfg.CredentialsPath == "" {
		cfg.CredentialsPath = "credentials.json"
	}
	if cfg.HTTPTimeoutSeconds == 0 {
		cfg.HTTPTimeoutSeconds = 30
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}

	// Validate required fields
	if cfg.AnthropicAPIKey == "" {
		log.Fatalf("Required config 'anthropic_api_key' is not set (via config.yaml, .env, or env var)")
	}
	if cfg.MinProblemCount < 1 {
		log.Fatalf("invalid min_problem_count '%d': must be >= 1", cfg.MinProblemCount)
	}
	if cfg.LLMTemperature < 0 || cfg.LLMTemperature > 1 {
		log.Fatalf("invalid llm_temperature '%f': must be between 0 and 1", cfg.LLMTemperature)
	}
	if cfg.HTTPTimeoutSeconds < 1 {
		log.Fatalf("invalid http_timeout_seconds '%d': must be >= 1", cfg.HTTPTimeoutSeconds)
	}

	return cfg
}

// loadDotEnv reads a key=value file and sets any keys not already present in
// the environment. Missing file is fine; malformed lines are skipped.
func loadDotEnv(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		value = strings.Trim(value, `"'`)
		if key == "" || os.Getenv(key) != "" {
			continue
		}
		os.Setenv(key, value)
	}
}

func envOverride(field *string, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		*field = val
	}
}

func envOverrideInt(field *int, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		parsed, err := strconv.Atoi(val)
		if err != nil {
			log.Fatalf("invalid %s '%s': %v", envKey, val, err)
		}
		*field = parsed
	}
}

func envOverrideFloat(field *float64, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		parsed, err := strconv.ParseFloat(val, 64)
		if err != nil {
			log.Fatalf("invalid %s '%s': %v", envKey, val, err)
		}
		*field = parsed
	}
}
