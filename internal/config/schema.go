package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/ariel-frischer/toastkit/internal/toast"
)

// ConfigValueType defines the expected type for a configuration value.
type ConfigValueType int

const (
	TypeBool ConfigValueType = iota
	TypeInt
	TypeString
	TypeEnum
)

// String returns the string representation of ConfigValueType.
func (t ConfigValueType) String() string {
	switch t {
	case TypeBool:
		return "bool"
	case TypeInt:
		return "int"
	case TypeString:
		return "string"
	case TypeEnum:
		return "enum"
	default:
		return "unknown"
	}
}

// ConfigKeySchema defines a known configuration key with its expected type and validation rules.
type ConfigKeySchema struct {
	Path          string          // Key name as written in the config file
	Type          ConfigValueType // Expected value type for validation
	AllowedValues []string        // Valid values for enum types
	Min, Max      int             // Inclusive range for int types
	Description   string          // Human-readable description for help text
	Default       interface{}     // Default value
}

// KnownKeys is the registry of all known configuration keys with their schemas.
var KnownKeys = map[string]ConfigKeySchema{
	"app_id": {
		Path:        "app_id",
		Type:        TypeString,
		Description: "AppUserModelID the toast is shown for (empty: PowerShell)",
		Default:     "",
	},
	"duration": {
		Path:          "duration",
		Type:          TypeEnum,
		AllowedValues: []string{"", "short", "long"},
		Description:   "How long the toast stays on screen",
		Default:       "",
	},
	"scenario": {
		Path:          "scenario",
		Type:          TypeEnum,
		AllowedValues: []string{"", "default", "alarm", "reminder", "incomingCall"},
		Description:   "Toast scenario",
		Default:       "",
	},
	"sound": {
		Path:        "sound",
		Type:        TypeString,
		Description: "Default sound: silent, Default, IM, Mail, Reminder, SMS, Alarm..Alarm10, Call..Call10",
		Default:     "",
	},
	"host": {
		Path:          "host",
		Type:          TypeEnum,
		AllowedValues: []string{"auto", "legacy", "modern"},
		Description:   "Host generation: probe Windows, or force legacy/modern templates",
		Default:       "auto",
	},
	"post_show_delay_ms": {
		Path:        "post_show_delay_ms",
		Type:        TypeInt,
		Min:         0,
		Max:         10000,
		Description: "Pause after showing a toast, in milliseconds",
		Default:     10,
	},
	"listen_timeout": {
		Path:        "listen_timeout",
		Type:        TypeInt,
		Min:         1,
		Max:         3600,
		Description: "Seconds to report toast events after showing",
		Default:     300,
	},
	"wait": {
		Path:        "wait",
		Type:        TypeBool,
		Description: "Wait for the user to react to the toast",
		Default:     false,
	},
}

// SortedKeys returns the known keys in alphabetical order.
func SortedKeys() []string {
	keys := make([]string, 0, len(KnownKeys))
	for k := range KnownKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ErrUnknownKey is returned when trying to access an unknown configuration key.
type ErrUnknownKey struct {
	Key string
}

func (e ErrUnknownKey) Error() string {
	return "unknown configuration key: " + e.Key
}

// GetKeySchema returns the schema for a known configuration key.
// Returns ErrUnknownKey if the key is not in the registry.
func GetKeySchema(path string) (ConfigKeySchema, error) {
	schema, ok := KnownKeys[path]
	if !ok {
		return ConfigKeySchema{}, ErrUnknownKey{Key: path}
	}
	return schema, nil
}

// ParsedValue represents a configuration value after validation.
type ParsedValue struct {
	Raw    string      // Original string input from user
	Parsed interface{} // Value converted to correct type
	Type   ConfigValueType
}

// ValidateValue validates a value against the schema for a given key.
func ValidateValue(key, value string) (ParsedValue, error) {
	schema, err := GetKeySchema(key)
	if err != nil {
		return ParsedValue{}, err
	}
	return validateAgainstSchema(schema, value)
}

func validateAgainstSchema(schema ConfigKeySchema, value string) (ParsedValue, error) {
	switch schema.Type {
	case TypeBool:
		return parseBoolValue(value)
	case TypeInt:
		return parseIntValue(schema, value)
	case TypeEnum:
		return parseEnumValue(schema, value)
	case TypeString:
		if schema.Path == "sound" {
			if _, err := toast.ParseAudio(value, false); err != nil {
				return ParsedValue{}, err
			}
		}
		return ParsedValue{Raw: value, Parsed: value, Type: TypeString}, nil
	default:
		return ParsedValue{}, fmt.Errorf("unsupported type: %v", schema.Type)
	}
}

func parseBoolValue(value string) (ParsedValue, error) {
	switch strings.ToLower(value) {
	case "true":
		return ParsedValue{Raw: value, Parsed: true, Type: TypeBool}, nil
	case "false":
		return ParsedValue{Raw: value, Parsed: false, Type: TypeBool}, nil
	default:
		return ParsedValue{}, fmt.Errorf("invalid boolean: %q (expected true or false)", value)
	}
}

func parseIntValue(schema ConfigKeySchema, value string) (ParsedValue, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return ParsedValue{}, fmt.Errorf("invalid integer: %q", value)
	}
	if n < schema.Min || n > schema.Max {
		return ParsedValue{}, fmt.Errorf("%s must be between %d and %d, got %d", schema.Path, schema.Min, schema.Max, n)
	}
	return ParsedValue{Raw: value, Parsed: n, Type: TypeInt}, nil
}

func parseEnumValue(schema ConfigKeySchema, value string) (ParsedValue, error) {
	for _, allowed := range schema.AllowedValues {
		if value == allowed {
			return ParsedValue{Raw: value, Parsed: value, Type: TypeEnum}, nil
		}
	}
	return ParsedValue{}, fmt.Errorf(
		"invalid value: %q (valid options: %s)",
		value,
		strings.Join(nonEmpty(schema.AllowedValues), ", "),
	)
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
