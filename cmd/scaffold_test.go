package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pycraft/pycraft/cli"
	"github.com/pycraft/pycraft/generator"
)

const greetManifest = `file: greet.py
functions:
  - name: greet
    params:
      - name: name
    body:
      - return: name
`

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "manifest.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newConfig(t *testing.T, manifest string) *cli.ScaffoldConfig {
	t.Helper()
	dir := t.TempDir()
	cfg := cli.NewScaffoldConfig()
	cfg.Manifest = writeManifest(t, dir, manifest)
	cfg.OutDir = dir
	require.NoError(t, cfg.Validate())
	return cfg
}

func TestOutputMode(t *testing.T) {
	tests := []struct {
		name     string
		print    bool
		diff     string
		fileName string
		want     generator.Mode
	}{
		{name: "write file", fileName: "a.py", want: generator.ModeFile},
		{name: "write and print", print: true, fileName: "a.py", want: generator.ModeFileConsole},
		{name: "print without a file", print: true, want: generator.ModeConsole},
		{name: "no file and no print", want: generator.ModeFile},
		{name: "diff", diff: "x.diff", fileName: "a.py", want: generator.ModeString},
		{name: "diff and print", diff: "x.diff", print: true, fileName: "a.py", want: generator.ModeConsole},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &cli.ScaffoldConfig{Print: tt.print, DiffFile: tt.diff}
			assert.Equal(t, tt.want, outputMode(cfg, tt.fileName))
		})
	}
}

func TestRunScaffoldWritesFile(t *testing.T) {
	cfg := newConfig(t, greetManifest)
	console := &bytes.Buffer{}

	require.NoError(t, runScaffold(cfg, nil, console))

	data, err := os.ReadFile(filepath.Join(cfg.OutDir, "greet.py"))
	require.NoError(t, err)
	assert.Equal(t, "def greet(name):\n\treturn name", string(data))
	assert.Empty(t, console.String())
}

func TestRunScaffoldPrintsWithCustomIndent(t *testing.T) {
	cfg := newConfig(t, greetManifest)
	cfg.Print = true
	cfg.FileName = "other.py"
	cfg.Indent = "  "
	console := &bytes.Buffer{}

	require.NoError(t, runScaffold(cfg, nil, console))
	assert.Equal(t, "def greet(name):\n  return name\n", console.String())
	assert.FileExists(t, filepath.Join(cfg.OutDir, "other.py"))
	assert.NoFileExists(t, filepath.Join(cfg.OutDir, "greet.py"))
}

func TestRunScaffoldDiff(t *testing.T) {
	cfg := newConfig(t, greetManifest)
	target := filepath.Join(cfg.OutDir, "greet.py")
	require.NoError(t, os.WriteFile(target, []byte("def greet():\n\tpass"), 0o644))
	cfg.DiffFile = filepath.Join(cfg.OutDir, "changes.diff")

	require.NoError(t, runScaffold(cfg, nil, &bytes.Buffer{}))

	original, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "def greet():\n\tpass", string(original), "a diff run must not overwrite the target")

	patch, err := os.ReadFile(cfg.DiffFile)
	require.NoError(t, err)
	assert.Contains(t, string(patch), "+def greet(name):")
	assert.Contains(t, string(patch), "-def greet():")
}

func TestRunScaffoldErrors(t *testing.T) {
	t.Run("diff without a file name", func(t *testing.T) {
		cfg := newConfig(t, "functions:\n  - name: f\n")
		cfg.DiffFile = filepath.Join(cfg.OutDir, "changes.diff")
		err := runScaffold(cfg, nil, &bytes.Buffer{})
		assert.True(t, errors.Is(err, generator.ErrMissingFileName), "got %v", err)
	})
	t.Run("file mode without a file name", func(t *testing.T) {
		cfg := newConfig(t, "functions:\n  - name: f\n")
		err := runScaffold(cfg, nil, &bytes.Buffer{})
		assert.True(t, errors.Is(err, generator.ErrMissingFileName), "got %v", err)
	})
	t.Run("invalid manifest", func(t *testing.T) {
		cfg := newConfig(t, "functions:\n  - body: []\n")
		assert.Error(t, runScaffold(cfg, nil, &bytes.Buffer{}))
	})
}
