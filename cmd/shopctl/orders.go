package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nivgold/shopping-list/pkg/client"
)

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Inspect and delete saved orders",
}

var (
	ordersPage  int
	ordersLimit int
)

var ordersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved orders, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		page, err := apiClient().ListOrders(cmd.Context(), ordersPage, ordersLimit)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tITEMS\tTOTAL\tCREATED")
		for _, o := range page.Orders {
			fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", o.ID, len(o.Items), o.TotalItems, o.CreatedAt.Format("2006-01-02 15:04"))
		}
		if err := w.Flush(); err != nil {
			return err
		}

		fmt.Printf("page %d/%d, %d orders total\n", page.Pagination.Page, page.Pagination.Pages, page.Pagination.Total)
		return nil
	},
}

var ordersGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		order, err := apiClient().GetOrder(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		printOrder(order)
		return nil
	},
}

var ordersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an order permanently",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := apiClient().DeleteOrder(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("Order deleted successfully")
		return nil
	},
}

func printOrder(o client.Order) {
	fmt.Printf("Order %s (%s)\n", o.ID, o.CreatedAt.Format("2006-01-02 15:04"))
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCATEGORY\tQTY")
	for _, it := range o.Items {
		fmt.Fprintf(w, "%s\t%s\t%d\n", it.Name, it.Category, it.Quantity)
	}
	w.Flush()
	fmt.Printf("total items: %d\n", o.TotalItems)
}

func init() {
	ordersListCmd.Flags().IntVar(&ordersPage, "page", 0, "page number")
	ordersListCmd.Flags().IntVar(&ordersLimit, "limit", 0, "page size")

	ordersCmd.AddCommand(ordersListCmd)
	ordersCmd.AddCommand(ordersGetCmd)
	ordersCmd.AddCommand(ordersDeleteCmd)
}
