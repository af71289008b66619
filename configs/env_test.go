package configs

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APPLICATION_PROPERTIES", "")
	t.Setenv("APPLICATION_MESSAGES", "")

	env, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if env.PropertiesFile != "configs/application.yml" || env.MessagesFile != "configs/messages.yml" {
		t.Fatalf("unexpected defaults %+v", env)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APPLICATION_NAME", "weather-test")
	t.Setenv("APPLICATION_PROPERTIES", "/etc/weather/application.yml")

	env, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if env.ApplicationName != "weather-test" {
		t.Fatalf("expected name from environment, got %q", env.ApplicationName)
	}
	if env.PropertiesFile != "/etc/weather/application.yml" {
		t.Fatalf("expected properties path from environment, got %q", env.PropertiesFile)
	}
}
