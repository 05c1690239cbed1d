package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jokarl/owbrules/internal/output"
)

var (
	strictFlag    bool
	noSuggestFlag bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [names...]",
	Short: "Resolve names to rules pages",
	Long: `Resolve each name to the slug and URL of its rules page.

Names are matched without regard to case or repeated whitespace. With no
arguments, names are read from standard input, one per line.

Example:
  owbrules resolve Halberds "great weapon"
  jq -r '.. | .name_en? // empty' empire.json | owbrules resolve --format compact`,
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)

	addOutputFlags(resolveCmd)
	resolveCmd.Flags().BoolVar(&strictFlag, "strict", false, "Exit 1 when any name is unresolved")
	resolveCmd.Flags().BoolVar(&noSuggestFlag, "no-suggest", false, "Do not suggest close matches for unresolved names")
}

func runResolve(cmd *cobra.Command, args []string) error {
	names := args
	if len(names) == 0 {
		var err error
		names, err = readNames(cmd.InOrStdin())
		if err != nil {
			return err
		}
	}

	cfg, err := loadConfig("")
	if err != nil {
		return err
	}
	format, colorMode, err := outputSettings(cmd, cfg)
	if err != nil {
		return err
	}
	renderer, err := output.NewLookupRenderer(format, shouldUseColor(cmd.OutOrStdout(), colorMode))
	if err != nil {
		return err
	}

	engine, err := newEngine(cfg, !noSuggestFlag)
	if err != nil {
		return err
	}

	resolutions := engine.ResolveAll(names)
	if err := renderer.RenderResolutions(cmd.OutOrStdout(), resolutions); err != nil {
		return fmt.Errorf("failed to render output: %w", err)
	}

	if strictFlag {
		for _, res := range resolutions {
			if !res.Resolved() {
				return ErrUnresolved
			}
		}
	}
	return nil
}

// readNames reads one name per line, skipping blank lines
func readNames(r io.Reader) ([]string, error) {
	var names []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			names = append(names, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read names: %w", err)
	}
	return names, nil
}
