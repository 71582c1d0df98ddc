package config

import (
	"reflect"
	"strings"
)

// GetSettingsExample uses reflection to generate example settings
// This automatically stays in sync when new fields are added to Settings
func GetSettingsExample() map[string]any {
	var s Settings
	t := reflect.TypeOf(s)
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		jsonName := strings.Split(jsonTag, ",")[0]
		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

// generateExampleValue creates appropriate example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	if t.Kind() == reflect.Ptr {
		switch t.Elem().Kind() {
		case reflect.Bool:
			return fieldName == "debug"
		case reflect.Int:
			switch fieldName {
			case "max_log_files":
				return 1000
			case "otp_latency_ms":
				return DefaultOTPLatencyMs
			case "splash_seconds":
				return DefaultSplashSeconds
			case "ssh_port":
				return DefaultSSHPort
			}
			return 10
		case reflect.Float64:
			return DefaultServiceRadiusKm
		}
	}

	if t.Kind() == reflect.String {
		switch fieldName {
		case "authorized_keys":
			return "~/.freshcart/ssh/authorized_keys"
		case "geocode_cache":
			return GeocodeCacheRedis
		case "redis_url":
			return DefaultRedisURL
		case "scenario":
			return "~/.freshcart/scenarios/denied.yaml"
		case "serviceability":
			return DefaultServiceability
		case "ssh_host":
			return DefaultSSHHost
		default:
			return "example"
		}
	}

	return nil
}
