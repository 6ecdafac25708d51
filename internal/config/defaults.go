package config

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"app_id":             "",
		"duration":           "",
		"scenario":           "",
		"sound":              "",
		"host":               "auto",
		"post_show_delay_ms": 10,
		"listen_timeout":     300,
		"wait":               false,
	}
}

// GetDefaultConfigTemplate returns the starter config written by 'toastctl config init'.
func GetDefaultConfigTemplate() string {
	return `{
  "app_id": "",
  "duration": "",
  "scenario": "",
  "sound": "",
  "host": "auto",
  "post_show_delay_ms": 10,
  "listen_timeout": 300,
  "wait": false
}
`
}
