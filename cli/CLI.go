package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
)

// Default Config Values
const (
	defaultManifest = ""
	defaultOutDir   = "."
	defaultFileName = ""
	defaultIndent   = `\t`
	defaultDiffFile = ""
	defaultAppName  = "pycraft"
)

type ScaffoldConfig struct {
	Debug    bool
	Print    bool
	Manifest string
	OutDir   string
	// FileName overrides the file named by the manifest.
	FileName string
	// Indent is the indentation unit. The escapes \t and \s stand for a tab and a space.
	Indent   string
	DiffFile string
	AppName  string
}

func setConfigValue(input *string, defaultValue string) string {
	if input != nil && *input != "" {
		return strings.TrimSpace(*input)
	}
	return defaultValue
}

func NewScaffoldConfig() *ScaffoldConfig {
	return &ScaffoldConfig{
		OutDir:  defaultOutDir,
		Indent:  defaultIndent,
		AppName: defaultAppName,
	}
}

// RegisterFlags binds every config field to a flag on fs.
func (cfg *ScaffoldConfig) RegisterFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&cfg.Debug, "debug", false, "enable debugging output")
	fs.BoolVar(&cfg.Print, "print", false, "echo the generated module to stdout")
	fs.StringVar(&cfg.Manifest, "manifest", defaultManifest, "path to the YAML manifest describing the module")
	fs.StringVar(&cfg.OutDir, "out", defaultOutDir, "directory the module is written to")
	fs.StringVar(&cfg.FileName, "file", defaultFileName, "name of the generated file, overrides the manifest")
	fs.StringVar(&cfg.Indent, "indent", defaultIndent, `indentation unit, \t for a tab and \s for a space`)
	fs.StringVar(&cfg.DiffFile, "diff", defaultDiffFile, "write a diff against the existing file instead of overwriting it")
	fs.StringVar(&cfg.AppName, "name", defaultAppName, "set application name for telemetry reporting")
}

// Normalize trims every value, falls back to defaults for empty ones and expands the
// indentation escapes.
func (cfg *ScaffoldConfig) Normalize() {
	cfg.Manifest = setConfigValue(&cfg.Manifest, defaultManifest)
	cfg.OutDir = setConfigValue(&cfg.OutDir, defaultOutDir)
	cfg.FileName = setConfigValue(&cfg.FileName, defaultFileName)
	cfg.DiffFile = setConfigValue(&cfg.DiffFile, defaultDiffFile)
	cfg.AppName = setConfigValue(&cfg.AppName, defaultAppName)

	if cfg.Indent == "" {
		cfg.Indent = defaultIndent
	}
	cfg.Indent = strings.NewReplacer(`\t`, "\t", `\s`, " ").Replace(cfg.Indent)
}

// Validate normalizes the config and checks that every path it names is usable.
func (cfg *ScaffoldConfig) Validate() error {
	cfg.Normalize()

	if cfg.Manifest == "" {
		return errors.New("--manifest is required")
	}
	if _, err := os.Stat(cfg.Manifest); err != nil {
		return fmt.Errorf("--manifest \"%s\" is invalid: %v", cfg.Manifest, err)
	}

	info, err := os.Stat(cfg.OutDir)
	if err != nil {
		return fmt.Errorf("--out \"%s\" is invalid: %v", cfg.OutDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("--out \"%s\" is not a directory", cfg.OutDir)
	}

	if strings.Trim(cfg.Indent, " \t") != "" {
		return fmt.Errorf("--indent %q must only contain spaces and tabs", cfg.Indent)
	}

	if cfg.DiffFile != "" {
		if err := validateOutputFile(cfg.DiffFile); err != nil {
			return err
		}
	}
	return nil
}

// validateOutputFile checks that the custom diff path is valid
func validateOutputFile(path string) error {
	if filepath.Ext(path) != ".diff" {
		return errors.New("diff file must have a .diff extension")
	}

	_, err := os.Stat(filepath.Dir(path))
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("diff file directory does not exist: %v", err)
	}

	return nil
}
