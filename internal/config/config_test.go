package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name              string
		configContent     string
		env               map[string]string
		want              *Config
		wantErrorContains string
	}{
		{
			name: "valid config file with custom values",
			configContent: `api:
  base_url: https://example.com/api/v2
  lang: jp
  timeout_seconds: 10
cache:
  path: custom/cache.db
  ttl_seconds: 60
`,
			want: &Config{
				API: APIConfig{
					BaseURL:        "https://example.com/api/v2",
					Lang:           "jp",
					TimeoutSeconds: 10,
				},
				Cache: CacheConfig{
					Path:       "custom/cache.db",
					TTLSeconds: 60,
				},
			},
		},
		{
			name:          "defaults are applied for missing keys",
			configContent: "api:\n  lang: en\n",
			want: &Config{
				API: APIConfig{
					BaseURL:        "https://gi.yatta.moe/api/v2",
					Lang:           "en",
					TimeoutSeconds: 30,
				},
				Cache: CacheConfig{
					Path:       filepath.Join(".cache", "ambr", "cache.db"),
					TTLSeconds: 3600,
				},
			},
		},
		{
			name:              "unsupported language is rejected",
			configContent:     "api:\n  lang: klingon\n",
			wantErrorContains: "must be a supported language code",
		},
		{
			name:              "invalid YAML format",
			configContent:     "api: [unclosed",
			wantErrorContains: "could not be read",
		},
		{
			name:          "environment variables override the file",
			configContent: "api:\n  lang: en\n",
			env: map[string]string{
				"AMBR_LANG":      "chs",
				"AMBR_CACHE_TTL": "120",
			},
			want: &Config{
				API: APIConfig{
					BaseURL:        "https://gi.yatta.moe/api/v2",
					Lang:           "chs",
					TimeoutSeconds: 30,
				},
				Cache: CacheConfig{
					Path:       filepath.Join(".cache", "ambr", "cache.db"),
					TTLSeconds: 120,
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			got, err := Load(writeConfigFile(t, tt.configContent))
			if tt.wantErrorContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrorContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
