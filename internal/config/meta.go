package config

import (
	"reflect"
	"strings"
)

// GetSettingsExample builds an example settings.json from the Settings struct
// tags, so new fields show up without extra wiring
func GetSettingsExample() map[string]any {
	t := reflect.TypeOf(Settings{})
	example := make(map[string]any, t.NumField())

	for i := range t.NumField() {
		field := t.Field(i)
		tag := field.Tag.Get("json")
		if tag == "" {
			continue
		}
		name := strings.Split(tag, ",")[0]
		example[name] = exampleValue(field.Type, name)
	}
	return example
}

func exampleValue(t reflect.Type, name string) any {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Bool:
		return name == "debug"
	case reflect.Int:
		switch name {
		case "max_log_files":
			return 200
		case "poll_interval_ms":
			return 50
		case "ssh_port":
			return 23235
		case "startup_track":
			return 255
		}
		return 10
	case reflect.Float64:
		return 0.5
	case reflect.String:
		switch name {
		case "authorized_keys":
			return "~/.ssh/authorized_keys"
		case "backend":
			return "dfplayer"
		case "port":
			return "/dev/ttyUSB0"
		case "profile":
			return "default"
		case "ssh_host":
			return "0.0.0.0"
		}
		return "example"
	}
	return nil
}
