package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List and register categories",
}

var categoriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all categories, sorted by name",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		categories, err := apiClient().ListCategories(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tID\tCREATED")
		for _, c := range categories {
			fmt.Fprintf(w, "%s\t%s\t%s\n", c.Name, c.ID, c.CreatedAt.Format("2006-01-02"))
		}
		return w.Flush()
	},
}

var categoriesAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Register a new category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		category, err := apiClient().CreateCategory(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Created category %q (%s)\n", category.Name, category.ID)
		return nil
	},
}

func init() {
	categoriesCmd.AddCommand(categoriesListCmd)
	categoriesCmd.AddCommand(categoriesAddCmd)
}
