package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/docrank-cli/internal/profile"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the built-in persona templates",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Println("Available persona templates:")
		cmd.Println()
		for _, name := range profile.TemplateNames() {
			persona, _ := profile.Template(name)
			cmd.Printf("  %-18s %s (%s)\n", name, persona.Role, persona.Domain)
		}
	},
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}
