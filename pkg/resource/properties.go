package resource

import (
	"fmt"
	"log"
	"os"
	"regexp"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var (
	mu         sync.RWMutex
	props      = viper.New()
	envPattern = regexp.MustCompile(`\$\{([^:}]+)(?::([^}]*))?}`)
)

// DefaultPath is used by InitDefault when PROPERTIES_FILE_PATH is not set.
const DefaultPath = "configs/application.yml"

// InitDefault loads the properties file named by PROPERTIES_FILE_PATH, or DefaultPath.
func InitDefault() error {
	value, ok := os.LookupEnv("PROPERTIES_FILE_PATH")
	if !ok {
		value = DefaultPath
	}
	return Init(value)
}

// Init loads application properties from the YAML file at filepath, resolving ${ENV:default} placeholders.
func Init(filepath string) error {
	v := viper.New()
	v.SetConfigFile(filepath)
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("fail to read properties: %w", err)
	}

	resolved := make(map[string]any)
	parsePropertiesMap("", v.AllSettings(), resolved)
	for key, value := range resolved {
		v.Set(key, value)
	}

	mu.Lock()
	props = v
	mu.Unlock()
	return nil
}

// Set overrides a single property. Mostly useful for wiring tests.
func Set(key string, value any) {
	mu.Lock()
	defer mu.Unlock()
	props.Set(key, value)
}

// parsePropertiesMap reads recursively the YAML file
func parsePropertiesMap(prefix string, data map[string]any, result map[string]any) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = resolveEnvVariable(v)
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, bool:
			result[fullKey] = v
		case map[string]interface{}:
			parsePropertiesMap(fullKey, v, result)
		default:
			log.Printf("Ignoring key '%s' with unsupported type.", fullKey)
		}
	}
}

// resolveEnvVariable replaces a ${NAME:default} value with the environment variable or its default
func resolveEnvVariable(value string) string {
	matches := envPattern.FindStringSubmatch(value)
	if len(matches) == 0 {
		return value
	}

	envName := matches[1]
	if envValue, exists := os.LookupEnv(envName); exists {
		return envValue
	}
	if len(matches) > 2 {
		return matches[2]
	}
	return ""
}

func get() *viper.Viper {
	mu.RLock()
	defer mu.RUnlock()
	return props
}

func Get(key string) any {
	return get().Get(key)
}

func GetString(key string) string {
	return get().GetString(key)
}

func GetBool(key string) bool {
	return get().GetBool(key)
}

func GetDuration(key string) time.Duration {
	return get().GetDuration(key)
}

func GetInt(key string) int {
	return get().GetInt(key)
}

func GetStringSlice(key string) []string {
	return get().GetStringSlice(key)
}

// GetStringOrDefault returns the property or defaultValue when it is empty.
func GetStringOrDefault(key, defaultValue string) string {
	if value := GetString(key); value != "" {
		return value
	}
	return defaultValue
}
