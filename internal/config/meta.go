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
			if fieldName == "max_log_files" {
				return 1000
			}
			return DefaultErrorClearDelay
		}
	}

	if t.Name() == "KeyBindingsConfig" {
		return map[string]any{
			"play":    "enter",
			"preload": []string{"p", "ctrl+p"},
		}
	}

	switch t.Kind() {
	case reflect.String:
		switch fieldName {
		case "appear_sound":
			return DefaultAppearSound
		case "backend":
			return DefaultBackend
		case "sounds_dir":
			return "~/.chime/sounds"
		case "tap_sound":
			return DefaultTapSound
		default:
			return "example"
		}
	case reflect.Slice:
		if t.Elem().Kind() == reflect.String {
			if fieldName == "preload" {
				return []string{"click.wav", "pop.wav"}
			}
			return []string{"example1", "example2"}
		}
	}

	return nil
}
