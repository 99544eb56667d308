package commands

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/pystub/display"
	"github.com/teranos/pystub/errors"
	"github.com/teranos/pystub/generate"
)

// CheckCmd checks if generated stubs are up to date
var CheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check if generated stubs are up to date",
	Long: `Check that the stub files in the output directory match the descriptors.

Stubs are rendered in memory and compared with the files on disk. Missing
files are listed and changed files are shown as a line diff.

Exit codes:
  0 - Stubs are up to date
  1 - Stubs are out of date, or the check failed

Examples:
  pystub check -o typings
  pystub check --config ci/pystub.toml
  pystub check --json              # Machine-readable report`,
	RunE: runCheck,
}

func init() {
	CheckCmd.Flags().BoolP("json", "j", false, "Output the check report as JSON")
}

func runCheck(cmd *cobra.Command, args []string) error {
	if cfg.Output == "" {
		return errors.WithHint(
			errors.New("check needs an output directory"),
			"set output in pystub.toml or pass --output")
	}

	outputs, err := generate.Build(cfg)
	if err != nil {
		return err
	}
	result, err := generate.Check(outputs, cfg.Output)
	if err != nil {
		return err
	}

	if display.ShouldOutputJSON(cmd) {
		if err := display.WriteJSON(cmd.OutOrStdout(), checkReport(result)); err != nil {
			return err
		}
		return result.Err()
	}

	if result.UpToDate() {
		pterm.Printf("%s %d stub files are up to date\n", pterm.LightGreen("✓"), len(outputs))
		return nil
	}

	for _, path := range result.Missing {
		pterm.Printf("%s %s\n", pterm.Red("✗ Missing:"), path)
	}
	for _, path := range result.Stale()[len(result.Missing):] {
		pterm.Printf("%s %s\n", pterm.Yellow("✗ Changed:"), path)
		printDiff(result.Diffs[path])
	}
	return result.Err()
}

type report struct {
	UpToDate bool              `json:"up_to_date"`
	Missing  []string          `json:"missing"`
	Changed  map[string]string `json:"changed"`
}

func checkReport(r *generate.CheckResult) report {
	missing := r.Missing
	if missing == nil {
		missing = []string{}
	}
	return report{UpToDate: r.UpToDate(), Missing: missing, Changed: r.Diffs}
}

// printDiff colors the added and removed lines of a diff
func printDiff(d string) {
	for _, line := range strings.Split(d, "\n") {
		switch {
		case strings.HasPrefix(line, "+"):
			pterm.Println(pterm.Green(line))
		case strings.HasPrefix(line, "-"):
			pterm.Println(pterm.Red(line))
		default:
			pterm.Println(pterm.Gray(line))
		}
	}
}
