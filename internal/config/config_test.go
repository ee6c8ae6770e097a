package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kjourdan1/fsdist/internal/distributor"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func loadSchema(t *testing.T) {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "..", "schemas", "fsdist-v1.schema.json"))
	require.NoError(t, err, "failed to read schema file")
	SetSchema(data)
}

// --- Loader tests ---

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "fsdist.yaml", "paths:\n  - out\n  - ../shared\ncreate_parents: true\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []interface{}{"out", "../shared"}, cfg[distributor.KeyPaths])
	assert.Equal(t, true, cfg[distributor.KeyCreateParents])
}

func TestParse_KeepsNullPaths(t *testing.T) {
	cfg, err := Parse([]byte("paths:\n"))
	require.NoError(t, err)

	v, ok := cfg.Lookup(distributor.KeyPaths)
	assert.True(t, ok)
	assert.Nil(t, v)

	d, err := distributor.New(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"."}, d.Paths())
}

func TestParse_EmptyDocument(t *testing.T) {
	cfg, err := Parse([]byte(""))
	require.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Empty(t, cfg)

	_, err = distributor.New(cfg, nil)
	assert.ErrorIs(t, err, distributor.ErrNoPaths)
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeFile(t, "bad.yaml", "{{{{not yaml")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config YAML")
}

func TestLoad_HCL(t *testing.T) {
	path := writeFile(t, "fsdist.hcl", `
paths          = ["out", "nested/dir"]
create_parents = true
label          = "generated"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []interface{}{"out", "nested/dir"}, cfg[distributor.KeyPaths])
	assert.Equal(t, true, cfg[distributor.KeyCreateParents])
	assert.Equal(t, "generated", cfg["label"])

	d, err := distributor.New(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"out", "nested/dir"}, d.Paths())
	assert.True(t, d.CreateParents())
}

func TestParseHCL_NullAndScalarValues(t *testing.T) {
	cfg, err := ParseHCL([]byte("paths = null\nretries = 3\ntags = { env = \"dev\" }\n"), "x.hcl")
	require.NoError(t, err)

	v, ok := cfg.Lookup(distributor.KeyPaths)
	assert.True(t, ok)
	assert.Nil(t, v)
	assert.Equal(t, float64(3), cfg["retries"])
	assert.Equal(t, map[string]interface{}{"env": "dev"}, cfg["tags"])
}

func TestParseHCL_Errors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantMsg string
	}{
		{"syntax", "paths = [", "parsing config HCL"},
		{"block", "dist {\n  paths = \"out\"\n}\n", "reading attributes"},
		{"variable reference", "paths = var.out\n", "evaluating"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseHCL([]byte(tt.src), "bad.hcl")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestIsHCL(t *testing.T) {
	assert.True(t, IsHCL("a/fsdist.hcl"))
	assert.True(t, IsHCL("FSDIST.HCL"))
	assert.False(t, IsHCL("fsdist.yaml"))
	assert.False(t, IsHCL("hcl"))
}

// --- Saver tests ---

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	cfg := distributor.Config{
		distributor.KeyPaths:         []string{"out", "dist"},
		distributor.KeyCreateParents: true,
	}

	require.NoError(t, Save(cfg, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"out", "dist"}, loaded[distributor.KeyPaths])
	assert.Equal(t, true, loaded[distributor.KeyCreateParents])
}

func TestSave_NilConfig(t *testing.T) {
	err := Save(nil, filepath.Join(t.TempDir(), "x.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be nil")
}

// --- Validator tests ---

func TestValidate(t *testing.T) {
	loadSchema(t)

	tests := []struct {
		name  string
		cfg   distributor.Config
		valid bool
	}{
		{"sequence", distributor.Config{"paths": []interface{}{"a", "b"}, "create_parents": true}, true},
		{"scalar", distributor.Config{"paths": "out"}, true},
		{"null paths", distributor.Config{"paths": nil}, true},
		{"empty sequence", distributor.Config{"paths": []interface{}{}}, true},
		{"extra keys", distributor.Config{"paths": ".", "label": "x"}, true},
		{"missing paths", distributor.Config{"create_parents": true}, false},
		{"nil config", nil, false},
		{"non-string element", distributor.Config{"paths": []interface{}{"a", 1}}, false},
		{"string create_parents", distributor.Config{"paths": ".", "create_parents": "yes"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Validate(tt.cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.valid, result.Valid, "errors: %v", result.Errors)
			if !tt.valid {
				assert.NotEmpty(t, result.Errors)
			}
		})
	}
}

func TestValidateYAML(t *testing.T) {
	loadSchema(t)

	result, err := ValidateYAML([]byte("paths: out\ncreate_parents: false\n"))
	require.NoError(t, err)
	assert.True(t, result.Valid)

	result, err = ValidateYAML([]byte("create_parents: 3\n"))
	require.NoError(t, err)
	assert.False(t, result.Valid)

	_, err = ValidateYAML([]byte("{{{{"))
	require.Error(t, err)
}

func TestValidate_SchemaNotLoaded(t *testing.T) {
	orig := GetSchema()
	SetSchema(nil)
	defer SetSchema(orig)

	_, err := Validate(distributor.Config{"paths": "."})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema not loaded")
}

func TestSave_HCLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fsdist.hcl")
	cfg := distributor.Config{
		distributor.KeyPaths:         []string{"out", "../shared"},
		distributor.KeyCreateParents: false,
		"priority":                   2,
	}

	require.NoError(t, Save(cfg, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"out", "../shared"}, loaded[distributor.KeyPaths])
	assert.Equal(t, false, loaded[distributor.KeyCreateParents])
	assert.Equal(t, float64(2), loaded["priority"])
}

func TestMarshalHCL_UnsupportedValue(t *testing.T) {
	_, err := MarshalHCL(distributor.Config{"paths": struct{}{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported value type")
}
