package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nivgold/shopping-list/internal/cart"
	"github.com/nivgold/shopping-list/pkg/client"
)

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Build the local cart and save it as an order",
}

var (
	addCategory string
	addQuantity int
)

var cartShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current cart",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCartFile()
		if err != nil {
			return err
		}
		printCart(c)
		return nil
	},
}

var cartAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add an item, merging with an existing entry of the same name and category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCartFile()
		if err != nil {
			return err
		}

		c = c.Add(cart.Item{Name: args[0], Category: addCategory, Quantity: addQuantity})
		if err := saveCartFile(c); err != nil {
			return err
		}
		printCart(c)
		return nil
	},
}

var cartSetCmd = &cobra.Command{
	Use:   "set <index> <quantity>",
	Short: "Set the quantity of the item at index",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("index must be a number: %q", args[0])
		}
		quantity, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("quantity must be a number: %q", args[1])
		}

		c, err := loadCartFile()
		if err != nil {
			return err
		}

		c = c.UpdateQuantity(index, quantity)
		if err := saveCartFile(c); err != nil {
			return err
		}
		printCart(c)
		return nil
	},
}

var cartRemoveCmd = &cobra.Command{
	Use:   "remove <index>",
	Short: "Remove the item at index",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("index must be a number: %q", args[0])
		}

		c, err := loadCartFile()
		if err != nil {
			return err
		}

		c = c.Remove(index)
		if err := saveCartFile(c); err != nil {
			return err
		}
		printCart(c)
		return nil
	},
}

var cartClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the cart",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return clearCartFile()
	},
}

var cartSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Submit the cart as a new order and clear it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCartFile()
		if err != nil {
			return err
		}
		if c.Empty() {
			return fmt.Errorf("cart is empty")
		}

		items := make([]client.Item, 0, len(c.Items))
		for _, it := range c.Items {
			items = append(items, client.Item(it))
		}

		// The cart is cleared only after the server accepts the order;
		// a failed save leaves it untouched.
		order, err := apiClient().CreateOrder(cmd.Context(), items)
		if err != nil {
			return err
		}
		if err := clearCartFile(); err != nil {
			return err
		}

		fmt.Printf("Saved order %s (%d items)\n", order.ID, order.TotalItems)
		return nil
	},
}

var cartLoadCmd = &cobra.Command{
	Use:   "load <order-id>",
	Short: "Load a past order's items into the cart for re-editing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		order, err := apiClient().GetOrder(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		items := make([]cart.Item, 0, len(order.Items))
		for _, it := range order.Items {
			items = append(items, cart.Item(it))
		}

		c := cart.Load(items)
		if err := saveCartFile(c); err != nil {
			return err
		}
		printCart(c)
		return nil
	},
}

func printCart(c cart.Cart) {
	if c.Empty() {
		fmt.Println("cart is empty")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tNAME\tCATEGORY\tQTY")
	for i, it := range c.Items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", i, it.Name, it.Category, it.Quantity)
	}
	w.Flush()
	fmt.Printf("total items: %d\n", c.TotalItems)
}

func init() {
	cartAddCmd.Flags().StringVarP(&addCategory, "category", "c", "", "category name")
	cartAddCmd.Flags().IntVarP(&addQuantity, "quantity", "q", 1, "quantity")
	_ = cartAddCmd.MarkFlagRequired("category")

	cartCmd.AddCommand(cartShowCmd)
	cartCmd.AddCommand(cartAddCmd)
	cartCmd.AddCommand(cartSetCmd)
	cartCmd.AddCommand(cartRemoveCmd)
	cartCmd.AddCommand(cartClearCmd)
	cartCmd.AddCommand(cartSaveCmd)
	cartCmd.AddCommand(cartLoadCmd)
}
