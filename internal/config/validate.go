package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
)

// ValidationError represents a configuration validation error with context
type ValidationError struct {
	FilePath string
	Line     int
	Column   int
	Message  string
	Field    string
}

func (e *ValidationError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s", e.FilePath, e.Line, e.Column, e.Message)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s: field '%s': %s", e.FilePath, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.FilePath, e.Message)
}

// ValidateConfigFile checks a JSON config file: syntax with line and column,
// unknown keys, and each value against the key schema.
// A missing file is not an error.
func ValidateConfigFile(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		if os.IsPermission(err) {
			return &ValidationError{FilePath: filePath, Message: "permission denied"}
		}
		return &ValidationError{FilePath: filePath, Message: err.Error()}
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	var values map[string]interface{}
	if err := json.Unmarshal(data, &values); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			line, column := lineColumn(data, syntaxErr.Offset)
			return &ValidationError{FilePath: filePath, Line: line, Column: column, Message: syntaxErr.Error()}
		}
		return &ValidationError{FilePath: filePath, Message: err.Error()}
	}

	for _, key := range sortedMapKeys(values) {
		schema, err := GetKeySchema(key)
		if err != nil {
			return &ValidationError{FilePath: filePath, Field: key, Message: "unknown key"}
		}
		if _, err := validateAgainstSchema(schema, valueString(values[key])); err != nil {
			return &ValidationError{FilePath: filePath, Field: key, Message: err.Error()}
		}
	}
	return nil
}

// lineColumn returns the 1-based line and column of the byte that made the
// decoder fail. encoding/json reports offsets just past that byte.
func lineColumn(data []byte, offset int64) (int, int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	line, column := 1, 1
	if offset <= 0 {
		return line, column
	}
	for _, b := range data[:offset-1] {
		if b == '\n' {
			line++
			column = 1
			continue
		}
		column++
	}
	return line, column
}

func valueString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return fmt.Sprintf("%g", t)
	default:
		return fmt.Sprint(t)
	}
}

func sortedMapKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
