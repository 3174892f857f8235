package config

import (
	"testing"
	"time"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicUrl": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"tracks": map[string]any{
			"liveScope": "global",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICURL", want: "pubsub.topicUrl"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "TRACKS_LIVESCOPE", want: "tracks.liveScope"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	if cfg.HTTP.MaxRequestBodySize != defaultMaxRequestBodySize {
		t.Fatalf("MaxRequestBodySize = %q, want %q", cfg.HTTP.MaxRequestBodySize, defaultMaxRequestBodySize)
	}
	if cfg.HTTP.RequestTimeout != defaultRequestTimeout {
		t.Fatalf("RequestTimeout = %s, want %s", cfg.HTTP.RequestTimeout, defaultRequestTimeout)
	}
	if cfg.Tracks.LiveScope != LiveScopeGlobal {
		t.Fatalf("LiveScope = %q, want %q", cfg.Tracks.LiveScope, LiveScopeGlobal)
	}
	if cfg.LiveScopedToUser() {
		t.Fatal("LiveScopedToUser() = true for the default scope")
	}
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{Tracks: &TracksConfig{LiveScope: "User"}}
	cfg.HTTP.MaxRequestBodySize = "1MB"
	cfg.HTTP.RequestTimeout = 5 * time.Second
	cfg.applyDefaults()

	if cfg.HTTP.MaxRequestBodySize != "1MB" {
		t.Fatalf("MaxRequestBodySize = %q, want 1MB", cfg.HTTP.MaxRequestBodySize)
	}
	if cfg.HTTP.RequestTimeout != 5*time.Second {
		t.Fatalf("RequestTimeout = %s, want 5s", cfg.HTTP.RequestTimeout)
	}
	if !cfg.LiveScopedToUser() {
		t.Fatal("LiveScopedToUser() = false, want true")
	}
}
