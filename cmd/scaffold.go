package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pycraft/pycraft/cli"
	"github.com/pycraft/pycraft/generator"
	"github.com/pycraft/pycraft/internal/comment"
	"github.com/pycraft/pycraft/internal/diff"
	"github.com/pycraft/pycraft/internal/scaffold"
	"github.com/pycraft/pycraft/internal/telemetry"
	"github.com/pycraft/pycraft/internal/util"
)

const telemetryShutdownTimeout = 10 * time.Second

var scaffoldCfg = cli.NewScaffoldConfig()

var scaffoldCmd = &cobra.Command{
	Use:   "scaffold",
	Short: "generate a python module",
	Long:  "generate a Python module from a YAML manifest describing its imports, constants, classes and functions",
	Args:  cobra.ExactArgs(0),
	Run: func(cmd *cobra.Command, args []string) {
		Scaffold(scaffoldCfg)
	},
}

func Scaffold(cfg *cli.ScaffoldConfig) {
	cobra.CheckErr(cfg.Validate())

	if cfg.Debug {
		comment.EnableConsolePrinter()
	}

	recorder, err := telemetry.New(cfg.AppName)
	if err != nil {
		log.Printf("telemetry disabled: %v", err)
	}

	err = runScaffold(cfg, recorder, os.Stdout)
	recorder.Shutdown(telemetryShutdownTimeout)
	comment.WriteAll()
	cobra.CheckErr(err)
}

// outputMode picks how the generated module is delivered. A diff run never overwrites
// the target file.
func outputMode(cfg *cli.ScaffoldConfig, fileName string) generator.Mode {
	switch {
	case cfg.DiffFile != "" && cfg.Print:
		return generator.ModeConsole
	case cfg.DiffFile != "":
		return generator.ModeString
	case fileName == "" && cfg.Print:
		return generator.ModeConsole
	case cfg.Print:
		return generator.ModeFileConsole
	default:
		return generator.ModeFile
	}
}

// runScaffold loads the manifest named by a validated config, builds the module and
// delivers it. It returns the first error that stops the run.
func runScaffold(cfg *cli.ScaffoldConfig, recorder *telemetry.Recorder, console io.Writer) (err error) {
	run := recorder.StartRun("scaffold")
	defer func() {
		run.Fail(err)
		run.End()
	}()

	endLoad := run.Segment("load")
	m, err := scaffold.Load(cfg.Manifest)
	endLoad()
	if err != nil {
		return err
	}

	fileName := cfg.FileName
	if fileName == "" {
		fileName = m.File
	}
	if cfg.DiffFile != "" && fileName == "" {
		return fmt.Errorf("--diff: %w", generator.ErrMissingFileName)
	}
	run.Attribute("file", fileName)

	endBuild := run.Segment("build")
	b, err := m.Build()
	endBuild()
	if err != nil {
		return fmt.Errorf("failed to build %s: %w", cfg.Manifest, err)
	}

	if cfg.Debug {
		log.Println(util.DebugForest(fileName, b.Nodes()))
	}

	gen := generator.New(
		generator.WithIndent(cfg.Indent),
		generator.WithConsole(console),
	)
	out := generator.Output{
		Mode:     outputMode(cfg, fileName),
		FileName: fileName,
		Dir:      cfg.OutDir,
	}

	endRender := run.Segment("render")
	code, err := gen.Generate(b, out)
	endRender()
	if err != nil {
		return err
	}

	if cfg.DiffFile != "" {
		err = diff.WriteDiff(cfg.DiffFile, out.Path(), fileName, code)
		if err != nil {
			return err
		}
		log.Printf("wrote diff for %s to %s", out.Path(), cfg.DiffFile)
	} else if out.FileName != "" {
		log.Printf("generated %s", out.Path())
	}

	recorder.RecordGeneration(map[string]any{
		"file":  fileName,
		"lines": strings.Count(code, "\n") + 1,
		"mode":  out.Mode.String(),
	})
	return nil
}

func init() {
	scaffoldCfg.RegisterFlags(scaffoldCmd.Flags())
	cobra.MarkFlagFilename(scaffoldCmd.Flags(), "manifest", "yaml", "yml")
	cobra.MarkFlagFilename(scaffoldCmd.Flags(), "diff", "diff") // for file completion
	cobra.MarkFlagDirname(scaffoldCmd.Flags(), "out")

	rootCmd.AddCommand(scaffoldCmd)
}
