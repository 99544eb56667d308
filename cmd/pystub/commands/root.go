// Package commands implements the pystub command line.
package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/pystub/am"
	"github.com/teranos/pystub/errors"
	"github.com/teranos/pystub/generate"
	"github.com/teranos/pystub/logger"
)

// RootCmd generates stubs; subcommands check them or show configuration.
var RootCmd = &cobra.Command{
	Use:   "pystub",
	Short: "Generate Python type stubs (.pyi) from class descriptors",
	Long: `pystub renders Python type stubs from TOML or YAML class descriptors.

Each descriptor file names a module and the classes it exposes: members,
properties, constructors and methods with their receiver binding. pystub
writes one .pyi file per module ("geo.shapes" -> geo/shapes.pyi).

Configuration sources (in order of precedence):
1. Command line flags
2. Environment variables (PYSTUB_* prefix)
3. Project config (pystub.toml, searched upward from the working directory)
4. Default values

Examples:
  pystub -d 'stubs/*.toml' -o typings   # Write typings/<module>.pyi
  pystub -d stubs/geometry.yaml         # Print stubs to stdout
  pystub --watch                        # Regenerate when descriptors change
  pystub check                          # Fail if typings/ is out of date`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runGenerate,
}

var (
	configPath  string
	outputDir   string
	descriptors []string
	watch       bool

	cfg *am.Config
)

func init() {
	flags := RootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "Config file (default: pystub.toml in this or a parent directory)")
	flags.CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")
	flags.Bool("json-log", false, "Emit structured JSON logs")
	flags.StringVarP(&outputDir, "output", "o", "", "Output directory (default: stdout)")
	flags.StringSliceVarP(&descriptors, "descriptors", "d", nil, "Descriptor files or glob patterns")
	flags.Int("indent", am.DefaultIndent, "Spaces per indentation level")
	flags.Bool("parallel", false, "Render the classes of a module concurrently")
	flags.Bool("header", true, "Write the generated-file header")

	RootCmd.Flags().BoolVarP(&watch, "watch", "w", false, "Regenerate whenever a descriptor changes")

	v := am.GetViper()
	_ = v.BindPFlag("indent", flags.Lookup("indent"))
	_ = v.BindPFlag("parallel", flags.Lookup("parallel"))
	_ = v.BindPFlag("header", flags.Lookup("header"))
	_ = v.BindPFlag("log.json", flags.Lookup("json-log"))

	RootCmd.AddCommand(CheckCmd)
	RootCmd.AddCommand(AmCmd)
	RootCmd.AddCommand(VersionCmd)
}

// setup loads configuration and initializes the logger before any command runs
func setup(cmd *cobra.Command, args []string) error {
	if configPath != "" {
		if err := am.UseConfigFile(configPath); err != nil {
			return err
		}
	}

	loaded, err := am.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	// Path flags are relative to the working directory, not the config file
	if cmd.Flags().Changed("descriptors") {
		loaded.Descriptors = descriptors
	}
	if cmd.Flags().Changed("output") {
		loaded.Output = outputDir
	}
	cfg = loaded

	verbosity, _ := cmd.Flags().GetCount("verbose")
	if err := logger.Initialize(cfg.Log.JSON, verbosity); err != nil {
		return errors.Wrap(err, "failed to initialize logger")
	}
	return nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if err := generateOnce(cmd); err != nil {
		return err
	}
	if !watch {
		return nil
	}

	paths, err := generate.ExpandDescriptors(cfg.Descriptors)
	if err != nil {
		return err
	}
	debounce := time.Duration(cfg.Watch.DebounceMS) * time.Millisecond
	w, err := generate.NewWatcher(paths, debounce, func() error {
		return generateOnce(cmd)
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pterm.Info.Printfln("Watching %d descriptor files (Ctrl+C to stop)", len(paths))
	return w.Run(ctx)
}

// generateOnce builds every module and writes it to the output directory or stdout
func generateOnce(cmd *cobra.Command) error {
	outputs, err := generate.Build(cfg)
	if err != nil {
		return err
	}

	if cfg.Output == "" {
		return printOutputs(cmd, outputs)
	}
	if err := generate.Write(outputs, cfg.Output); err != nil {
		return err
	}
	pterm.Printf("%s %d stub files in %s\n",
		pterm.LightGreen("✓ Generated"), len(outputs), pterm.Cyan(cfg.Output))
	return nil
}

// printOutputs writes rendered stubs to stdout, labelling each file when there are several
func printOutputs(cmd *cobra.Command, outputs []generate.Output) error {
	out := cmd.OutOrStdout()
	for i, o := range outputs {
		if len(outputs) > 1 {
			if i > 0 {
				if _, err := out.Write([]byte("\n")); err != nil {
					return err
				}
			}
			if _, err := out.Write([]byte("# ==> " + o.Path + " <==\n")); err != nil {
				return err
			}
		}
		if _, err := out.Write(o.Content); err != nil {
			return err
		}
	}
	return nil
}
