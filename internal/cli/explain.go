package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jokarl/owbrules/internal/output"
)

var explainCmd = &cobra.Command{
	Use:   "explain <name>",
	Short: "Show how a name is resolved",
	Long: `Show every step of resolving a name:
- The name after normalization
- Synonym rewrites applied, up to the configured hop limit
- The canonical name looked up
- The matched slug, the table layer it came from, and its URL

Multiple arguments are joined with spaces.

Example:
  owbrules explain repeater bolt thrower`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExplain,
}

func init() {
	rootCmd.AddCommand(explainCmd)

	addOutputFlags(explainCmd)
}

func runExplain(cmd *cobra.Command, args []string) error {
	name := strings.Join(args, " ")

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

	engine, err := newEngine(cfg, true)
	if err != nil {
		return err
	}

	if err := renderer.RenderExplanation(cmd.OutOrStdout(), engine.Explain(name)); err != nil {
		return fmt.Errorf("failed to render output: %w", err)
	}
	return nil
}
