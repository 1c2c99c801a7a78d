package config

import (
	"os"
	"testing"

	"github.com/spf13/viper"
)

func writeSettings(t *testing.T, content string) {
	t.Helper()
	if err := os.MkdirAll("./config", 0755); err != nil {
		t.Fatalf("creating config dir: %v", err)
	}
	if err := os.WriteFile("./config/settings.yaml", []byte(content), 0644); err != nil {
		t.Fatalf("writing settings: %v", err)
	}
}

func removeSettings() {
	_ = os.Remove("./config/settings.yaml")
	_ = os.Remove("./config")
}

func TestConfig(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T)
		cleanup func()
		wantErr bool
		check   func(t *testing.T)
	}{
		{
			name: "load from settings.yaml",
			setup: func(t *testing.T) {
				viper.Reset()
				writeSettings(t, `
server:
  host: "127.0.0.1"
  port: 8080
database:
  path: "./test.db"
`)
			},
			cleanup: func() {
				removeSettings()
				viper.Reset()
			},
			wantErr: false,
			check: func(t *testing.T) {
				if GetInt("server.port") != 8080 {
					t.Errorf("Expected server.port to be 8080, got %d", GetInt("server.port"))
				}
			},
		},
		{
			name: "environment variable override",
			setup: func(t *testing.T) {
				viper.Reset()
				writeSettings(t, `
server:
  host: "127.0.0.1"
  port: 8080
`)
				os.Setenv("BARTER_SERVER_PORT", "9090")
			},
			cleanup: func() {
				removeSettings()
				os.Unsetenv("BARTER_SERVER_PORT")
				viper.Reset()
			},
			wantErr: false,
			check: func(t *testing.T) {
				if GetInt("server.port") != 9090 {
					t.Errorf("Expected server.port to be overridden to 9090, got %d", GetInt("server.port"))
				}
			},
		},
		{
			name: "missing config file with defaults",
			setup: func(t *testing.T) {
				viper.Reset()
			},
			cleanup: func() {
				viper.Reset()
			},
			wantErr: false,
			check: func(t *testing.T) {
				if GetInt("server.port") != 8080 {
					t.Errorf("Expected default server.port to be 8080, got %d", GetInt("server.port"))
				}
				if GetInt("search.max_page_size") != 100 {
					t.Errorf("Expected default search.max_page_size to be 100, got %d", GetInt("search.max_page_size"))
				}
				if GetString("cache.backend") != "memory" {
					t.Errorf("Expected default cache.backend to be memory, got %s", GetString("cache.backend"))
				}
			},
		},
		{
			name: "placeholder jwt secret rejected in production",
			setup: func(t *testing.T) {
				viper.Reset()
				os.Setenv("BARTER_ENVIRONMENT", "production")
			},
			cleanup: func() {
				os.Unsetenv("BARTER_ENVIRONMENT")
				viper.Reset()
			},
			wantErr: true,
		},
		{
			name: "invalid cache backend rejected",
			setup: func(t *testing.T) {
				viper.Reset()
				os.Setenv("BARTER_CACHE_BACKEND", "memcached")
			},
			cleanup: func() {
				os.Unsetenv("BARTER_CACHE_BACKEND")
				viper.Reset()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup(t)
			defer tt.cleanup()

			err := Init()
			if (err != nil) != tt.wantErr {
				t.Errorf("Init() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.check != nil && err == nil {
				tt.check(t)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: &Config{
				Server: ServerConfig{
					Host: "localhost",
					Port: 8080,
				},
				Database: DatabaseConfig{
					Path: "./data/barter.db",
				},
				Search: SearchConfig{MaxPageSize: 100},
				Cache:  CacheConfig{Backend: "memory"},
			},
			wantErr: false,
		},
		{
			name: "invalid port",
			config: &Config{
				Server: ServerConfig{
					Host: "localhost",
					Port: 0,
				},
			},
			wantErr: true,
		},
		{
			name: "invalid cache backend",
			config: &Config{
				Server: ServerConfig{
					Host: "localhost",
					Port: 8080,
				},
				Cache: CacheConfig{Backend: "disk"},
			},
			wantErr: true,
		},
		{
			name: "zero max page size auto-corrected",
			config: &Config{
				Server: ServerConfig{
					Host: "localhost",
					Port: 8080,
				},
				Search: SearchConfig{MaxPageSize: 0},
				Cache:  CacheConfig{Backend: "redis"},
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.config.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Config.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
