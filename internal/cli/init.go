package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jokarl/owbrules/internal/config"
)

var (
	forceFlag    bool
	initFailFlag bool
)

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Create a starter " + config.FileName,
	Long: `Write a starter ` + config.FileName + ` to dir (default: the current directory).
"check" finds the file there when auditing that directory.

The file sets every option to its default and carries commented examples of
rule blocks, which add rules pages missing from the built-in index, and
synonym blocks, which map variant spellings to canonical names:

  rule "halberd" {
    url = "${category.weapons_of_war}/${slug("Halberd")}"
  }

  synonym "bucklers" {
    canonical = "shield"
  }`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&forceFlag, "force", false, "Overwrite an existing "+config.FileName)
	initCmd.Flags().BoolVar(&initFailFlag, "fail-on-unresolved", false, "Make check fail on unresolved labels")
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return fmt.Errorf("not a directory: %s", dir)
	}

	configPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(configPath); err == nil && !forceFlag {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	content := config.DefaultConfigHCL()
	if initFailFlag {
		content = strings.Replace(content, "fail_on_unresolved = false", "fail_on_unresolved = true", 1)
	}
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}
	logger.Debug("wrote starter configuration", "path", configPath, "fail_on_unresolved", initFailFlag)

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Created %s\n", configPath)
	fmt.Fprintf(w, "Add rule and synonym blocks for names the built-in tables miss, then run:\n  owbrules check %s\n", dir)
	return nil
}
