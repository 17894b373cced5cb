package config

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

const (
	defaultAppEnv         = "local"
	defaultCurrencyPrefix = "RM"
	defaultNameWidth      = 20
)

var (
	loadOnce sync.Once
	loadErr  error

	mu     sync.RWMutex
	values = defaultValues()
)

// Load reads config/app.json and .env once. Missing files are fine — every
// key has a default.
func Load() error {
	loadOnce.Do(func() {
		loadErr = loadFromFiles("config/app.json", ".env")
	})
	return loadErr
}

func defaultValues() map[string]string {
	return map[string]string{
		"APP_ENV":            defaultAppEnv,
		"CURRENCY_PREFIX":    defaultCurrencyPrefix,
		"DISPLAY_NAME_WIDTH": strconv.Itoa(defaultNameWidth),
		"NO_COLOR":           "",
	}
}

// AppEnv returns the running environment (local, production, …).
func AppEnv() string {
	_ = Load()
	return get("APP_ENV", defaultAppEnv)
}

// CurrencyPrefix is printed in front of every money amount.
func CurrencyPrefix() string {
	_ = Load()
	return get("CURRENCY_PREFIX", defaultCurrencyPrefix)
}

// DisplayNameWidth is the column width product names are truncated to when
// rendered. Stored names are never truncated.
func DisplayNameWidth() int {
	_ = Load()
	n, err := strconv.Atoi(get("DISPLAY_NAME_WIDTH", strconv.Itoa(defaultNameWidth)))
	if err != nil || n < 1 {
		return defaultNameWidth
	}
	return n
}

// ColorEnabled reports whether terminal output should be colorised. Setting
// NO_COLOR to any value disables it, following the usual convention.
func ColorEnabled() bool {
	_ = Load()
	return get("NO_COLOR", "") == ""
}

// Get reads any config key by name with an optional fallback.
// Keys from .env and config/app.json are available after Load().
func Get(key, fallback string) string {
	_ = Load()
	return get(key, fallback)
}

func loadFromFiles(configPath, envPath string) error {
	loaded := defaultValues()

	if err := mergeJSONConfig(configPath, loaded); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	}

	if err := mergeDotEnv(envPath, loaded); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	}

	mu.Lock()
	values = loaded
	mu.Unlock()

	return nil
}

func mergeJSONConfig(path string, out map[string]string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var raw map[string]interface{}
	if err := json.NewDecoder(file).Decode(&raw); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	for key, val := range raw {
		s, ok := val.(string)
		if !ok {
			continue
		}

		k := strings.ToUpper(strings.TrimSpace(key))
		if k == "" {
			continue
		}
		out[k] = strings.TrimSpace(s)
	}

	return nil
}

func mergeDotEnv(path string, out map[string]string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		idx := strings.IndexByte(line, '=')
		if idx <= 0 {
			continue
		}

		key := strings.ToUpper(strings.TrimSpace(line[:idx]))
		value := strings.TrimSpace(line[idx+1:])
		value = strings.Trim(value, `"'`)
		if key == "" {
			continue
		}
		out[key] = value
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	return nil
}

func get(key, fallback string) string {
	mu.RLock()
	defer mu.RUnlock()

	if value := strings.TrimSpace(values[key]); value != "" {
		return value
	}

	return fallback
}
