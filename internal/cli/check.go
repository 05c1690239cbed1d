package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jokarl/owbrules/internal/config"
	"github.com/jokarl/owbrules/internal/loader"
	"github.com/jokarl/owbrules/internal/output"
	"github.com/jokarl/owbrules/internal/pathfilter"
)

var (
	formatFlag           string
	outputFlag           string
	colorFlag            string
	quietFlag            bool
	failOnUnresolvedFlag bool
)

var checkCmd = &cobra.Command{
	Use:   "check <dir>",
	Short: "Audit army data files for unresolved rule names",
	Long: `Scan a directory of army data JSON files, resolve every name_en label
found at any depth, and report the labels that have no rules page.

Labels listing several items separated by commas are resolved item by item
when the label as a whole is unknown.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	addOutputFlags(checkCmd)
	checkCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Write output to file instead of stdout")
	checkCmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "Suppress output unless the check fails")
	checkCmd.Flags().BoolVar(&failOnUnresolvedFlag, "fail-on-unresolved", false, "Exit 1 when any label is unresolved")
}

// addOutputFlags registers the --format and --color flags on cmd
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&formatFlag, "format", "text", "Output format: text, json, compact, checkstyle")
	cmd.Flags().StringVar(&colorFlag, "color", "auto", "Color mode: auto, always, never")
}

func runCheck(cmd *cobra.Command, args []string) error {
	dir := args[0]

	cfg, err := loadConfig(dir)
	if err != nil {
		return err
	}
	format, colorMode, err := outputSettings(cmd, cfg)
	if err != nil {
		return err
	}

	// Load labels
	filter := pathfilter.New(cfg.Paths.Include, cfg.Paths.Exclude)
	files, err := loader.LoadDir(dir, filter, cfg.Paths.LabelKeys, logger.Named("loader"))
	if err != nil {
		return fmt.Errorf("failed to load army data: %w", err)
	}

	// Create and run engine
	engine, err := newEngine(cfg, true)
	if err != nil {
		return err
	}
	failOn := cfg.Policy.FailOnUnresolved || failOnUnresolvedFlag
	result := engine.Check(dir, files, failOn)
	logger.Info("check complete", "files", result.Files, "labels", result.Summary.Total, "result", result.Result)

	// Determine output writer
	writer := cmd.OutOrStdout()
	if outputFlag != "" {
		f, err := os.Create(outputFlag)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		writer = f
	}

	// Skip output if quiet and passing
	if !quietFlag || result.Result == "FAIL" {
		renderer := output.NewRenderer(format, shouldUseColor(writer, colorMode))
		if err := renderer.Render(writer, result); err != nil {
			return fmt.Errorf("failed to render output: %w", err)
		}
	}

	if result.Result == "FAIL" {
		return ErrUnresolved
	}
	return nil
}

// outputSettings returns the format and color mode from cfg, overridden by
// flags given on the command line
func outputSettings(cmd *cobra.Command, cfg *config.Config) (output.Format, string, error) {
	format := cfg.Output.Format
	if cmd.Flags().Changed("format") {
		format = formatFlag
	}
	if !output.IsValidFormat(format) {
		return "", "", fmt.Errorf("invalid --format value: %s (valid: %v)", format, output.ValidFormats())
	}

	colorMode := cfg.Output.Color
	if cmd.Flags().Changed("color") {
		colorMode = colorFlag
	}
	switch colorMode {
	case "auto", "always", "never":
	default:
		return "", "", fmt.Errorf("invalid --color value: %s (valid: auto, always, never)", colorMode)
	}

	return output.Format(format), colorMode, nil
}

func shouldUseColor(w io.Writer, mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // auto
		// Only terminals get color, and NO_COLOR or TERM=dumb turn it off
		f, ok := w.(*os.File)
		if !ok || color.NoColor {
			return false
		}
		stat, err := f.Stat()
		if err != nil {
			return false
		}
		return (stat.Mode() & os.ModeCharDevice) != 0
	}
}
