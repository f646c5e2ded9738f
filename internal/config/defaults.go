package config

// GetDefaults returns the default settings values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"slack_token":        "",
		"channel_name":       "",
		"log_directory":      "",
		"request_timeout":    15,
		"host_python":        "python3",
		"chat_sdk":           "slack_sdk",
		"desktop.title":      "DaVinci Resolve",
		"desktop.sound":      false,
		"desktop.sound_file": "",
	}
}
