package xconf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Log      testLog      `koanf:"log"`
	Generate testGenerate `koanf:"generate"`
}

type testLog struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

type testGenerate struct {
	Organization string `koanf:"organization"`
	Count        int    `koanf:"count"`
	Unicast      bool   `koanf:"unicast"`
}

const testYAMLContent = `
log:
  level: debug
generate:
  organization: "00a0c9"
  count: 4
`

const testJSONContent = `{
  "log": {"level": "debug"},
  "generate": {"organization": "00a0c9", "count": 4}
}`

func createTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func defaults() testConfig {
	return testConfig{
		Log:      testLog{Level: "info", Format: "text"},
		Generate: testGenerate{Count: 1, Unicast: true},
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		format  Format
	}{
		{"yaml", "config.yaml", testYAMLContent, FormatYAML},
		{"yml", "config.yml", testYAMLContent, FormatYAML},
		{"json", "config.json", testJSONContent, FormatJSON},
		{"upper ext", "CONFIG.YAML", testYAMLContent, FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := createTempFile(t, tt.file, tt.content)

			cfg, err := New(path)
			require.NoError(t, err)
			assert.Equal(t, path, cfg.Path())
			assert.Equal(t, tt.format, cfg.Format())
			assert.Equal(t, "debug", cfg.Client().String("log.level"))

			got := defaults()
			require.NoError(t, cfg.Unmarshal("", &got))
			assert.Equal(t, testConfig{
				Log:      testLog{Level: "debug", Format: "text"},
				Generate: testGenerate{Organization: "00a0c9", Count: 4, Unicast: true},
			}, got, "missing keys keep their defaults")
		})
	}
}

func TestNew_Errors(t *testing.T) {
	_, err := New("")
	assert.ErrorIs(t, err, ErrEmptyPath)

	_, err = New(createTempFile(t, "config.toml", "a = 1"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = New(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, ErrLoadFailed)

	_, err = New(createTempFile(t, "bad.json", "{not json"))
	assert.ErrorIs(t, err, ErrParseFailed)
}

func TestNew_EmptyFile(t *testing.T) {
	cfg, err := New(createTempFile(t, "empty.yaml", ""))
	require.NoError(t, err)

	got := defaults()
	require.NoError(t, cfg.Unmarshal("", &got))
	assert.Equal(t, defaults(), got)
}

func TestNewFromBytes(t *testing.T) {
	cfg, err := NewFromBytes([]byte(testJSONContent), FormatJSON)
	require.NoError(t, err)
	assert.Empty(t, cfg.Path())

	var gen testGenerate
	require.NoError(t, cfg.Unmarshal("generate", &gen))
	assert.Equal(t, 4, gen.Count)

	_, err = NewFromBytes([]byte("x"), Format("toml"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestUnmarshal_WeakTyping(t *testing.T) {
	cfg, err := NewFromBytes([]byte("generate:\n  count: \"8\"\n"), FormatYAML)
	require.NoError(t, err)

	var got testConfig
	require.NoError(t, cfg.Unmarshal("", &got))
	assert.Equal(t, 8, got.Generate.Count)
}

func TestUnmarshal_TypeMismatch(t *testing.T) {
	cfg, err := NewFromBytes([]byte("generate:\n  count: [1, 2]\n"), FormatYAML)
	require.NoError(t, err)

	var got testConfig
	assert.ErrorIs(t, cfg.Unmarshal("", &got), ErrUnmarshalFailed)
}

func TestWithStrict(t *testing.T) {
	data := []byte("generate:\n  cuont: 3\n")

	loose, err := NewFromBytes(data, FormatYAML)
	require.NoError(t, err)
	var got testConfig
	assert.NoError(t, loose.Unmarshal("", &got))

	strict, err := NewFromBytes(data, FormatYAML, WithStrict())
	require.NoError(t, err)
	assert.ErrorIs(t, strict.Unmarshal("", &got), ErrUnmarshalFailed)

	ok, err := NewFromBytes([]byte(testYAMLContent), FormatYAML, WithStrict())
	require.NoError(t, err)
	got = defaults()
	require.NoError(t, ok.Unmarshal("", &got))
	assert.Equal(t, "00a0c9", got.Generate.Organization)
}

func TestWithTagAndDelim(t *testing.T) {
	type tagged struct {
		Level string `cfg:"level"`
	}

	cfg, err := NewFromBytes([]byte(`{"log": {"level": "warn"}}`), FormatJSON,
		WithTag("cfg"), WithDelim("/"), nil)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Client().String("log/level"))

	var got tagged
	require.NoError(t, cfg.Unmarshal("log", &got))
	assert.Equal(t, "warn", got.Level)
}
