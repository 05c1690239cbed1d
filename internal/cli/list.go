package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jokarl/owbrules/internal/output"
	"github.com/jokarl/owbrules/internal/rules"
	"github.com/jokarl/owbrules/internal/types"
)

var (
	synonymsFlag bool
	sourceFlag   string
	danglingFlag bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List canonical names or synonyms",
	Long: `List every canonical name with its slug and source layer (base, overlay
or config).

With --synonyms, list every synonym and the canonical name it maps to.
With --dangling, list only the synonyms whose canonical name has no entry.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	addOutputFlags(listCmd)
	listCmd.Flags().BoolVar(&synonymsFlag, "synonyms", false, "List synonyms instead of canonical names")
	listCmd.Flags().StringVar(&sourceFlag, "source", "", "Only list canonical names from this layer: base, overlay, config")
	listCmd.Flags().BoolVar(&danglingFlag, "dangling", false, "List synonyms whose target is not a canonical name")
}

func runList(cmd *cobra.Command, args []string) error {
	if sourceFlag != "" && (synonymsFlag || danglingFlag) {
		return fmt.Errorf("--source cannot be combined with --synonyms or --dangling")
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

	engine, err := newEngine(cfg, false)
	if err != nil {
		return err
	}

	var items []output.ListItem
	switch {
	case danglingFlag:
		items = synonymItems(engine.Resolver(), engine.Resolver().Dangling())
	case synonymsFlag:
		items = synonymItems(engine.Resolver(), engine.Resolver().Synonyms().Names())
	default:
		items, err = entryItems(engine.Resolver().Table(), sourceFlag)
		if err != nil {
			return err
		}
	}

	if err := renderer.RenderList(cmd.OutOrStdout(), items); err != nil {
		return fmt.Errorf("failed to render output: %w", err)
	}
	return nil
}

// entryItems lists the table's entries, optionally limited to one source
func entryItems(table *rules.Table, source string) ([]output.ListItem, error) {
	var want *types.Source
	if source != "" {
		s, err := types.ParseSource(source)
		if err != nil {
			return nil, fmt.Errorf("invalid --source value: %w", err)
		}
		want = &s
	}

	var items []output.ListItem
	for _, e := range table.All() {
		if want != nil && e.Source != *want {
			continue
		}
		items = append(items, output.ListItem{Name: e.Name, Target: e.Slug, Source: e.Source.String()})
	}
	return items, nil
}

// synonymItems lists the given synonym names with their targets
func synonymItems(r *rules.Resolver, names []string) []output.ListItem {
	items := make([]output.ListItem, 0, len(names))
	for _, name := range names {
		target, _ := r.Synonyms().Target(name)
		items = append(items, output.ListItem{Name: name, Target: target})
	}
	return items
}
