package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterFlags(t *testing.T) {
	cfg := NewScaffoldConfig()
	fs := pflag.NewFlagSet("scaffold", pflag.ContinueOnError)
	cfg.RegisterFlags(fs)

	err := fs.Parse([]string{"--manifest", "m.yaml", "--out", "build", "--indent", `\s\s\s\s`, "--print", "--diff", "x.diff"})
	require.NoError(t, err)

	assert.Equal(t, "m.yaml", cfg.Manifest)
	assert.Equal(t, "build", cfg.OutDir)
	assert.True(t, cfg.Print)
	assert.Equal(t, "x.diff", cfg.DiffFile)
	assert.Equal(t, defaultAppName, cfg.AppName)

	cfg.Normalize()
	assert.Equal(t, "    ", cfg.Indent)
}

func TestNormalizeDefaults(t *testing.T) {
	cfg := &ScaffoldConfig{Manifest: "  m.yaml  "}
	cfg.Normalize()
	assert.Equal(t, "m.yaml", cfg.Manifest)
	assert.Equal(t, ".", cfg.OutDir)
	assert.Equal(t, "\t", cfg.Indent)
	assert.Equal(t, "pycraft", cfg.AppName)
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "m.yaml")
	require.NoError(t, os.WriteFile(manifest, []byte("functions: []\n"), 0o644))

	tests := []struct {
		name    string
		cfg     ScaffoldConfig
		wantErr bool
	}{
		{
			name: "valid",
			cfg:  ScaffoldConfig{Manifest: manifest, OutDir: dir},
		},
		{
			name:    "missing manifest flag",
			cfg:     ScaffoldConfig{OutDir: dir},
			wantErr: true,
		},
		{
			name:    "manifest does not exist",
			cfg:     ScaffoldConfig{Manifest: filepath.Join(dir, "nope.yaml"), OutDir: dir},
			wantErr: true,
		},
		{
			name:    "out is a file",
			cfg:     ScaffoldConfig{Manifest: manifest, OutDir: manifest},
			wantErr: true,
		},
		{
			name:    "indent with letters",
			cfg:     ScaffoldConfig{Manifest: manifest, OutDir: dir, Indent: "ab"},
			wantErr: true,
		},
		{
			name:    "diff without extension",
			cfg:     ScaffoldConfig{Manifest: manifest, OutDir: dir, DiffFile: filepath.Join(dir, "changes.txt")},
			wantErr: true,
		},
		{
			name:    "diff in missing directory",
			cfg:     ScaffoldConfig{Manifest: manifest, OutDir: dir, DiffFile: filepath.Join(dir, "missing", "changes.diff")},
			wantErr: true,
		},
		{
			name: "valid diff",
			cfg:  ScaffoldConfig{Manifest: manifest, OutDir: dir, DiffFile: filepath.Join(dir, "changes.diff")},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
