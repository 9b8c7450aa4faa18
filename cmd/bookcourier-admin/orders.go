package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/bookcourier/ui-gateway/internal/domain/model"
)

func newOrdersCommand(cli *cliContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Inspect and advance orders (librarian or admin role required)",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List every order",
			RunE: func(cmd *cobra.Command, _ []string) error {
				ctx, _, err := cli.authContext(cmd.Context())
				if err != nil {
					return err
				}
				orders, err := cli.Orders.ListAll(ctx)
				if err != nil {
					return err
				}
				return printOrders(cmd, orders)
			},
		},
		&cobra.Command{
			Use:   "show <order-id>",
			Short: "Show one order",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, _, err := cli.authContext(cmd.Context())
				if err != nil {
					return err
				}
				order, err := cli.Orders.GetByID(ctx, args[0])
				if err != nil {
					return err
				}
				printOrderDetail(cmd, order)
				return nil
			},
		},
		&cobra.Command{
			Use:   "advance <order-id> <status>",
			Short: "Move an order to the given status (confirmed, shipped, delivered)",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				next, ok := model.ParseOrderStatus(args[1])
				if !ok {
					return fmt.Errorf("unknown order status %q", args[1])
				}

				ctx, _, err := cli.authContext(cmd.Context())
				if err != nil {
					return err
				}
				order, err := cli.Orders.Advance(ctx, args[0], next)
				if err != nil {
					return err
				}
				printOrderDetail(cmd, order)
				return nil
			},
		},
		&cobra.Command{
			Use:   "cancel <order-id>",
			Short: "Cancel a pending order",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, _, err := cli.authContext(cmd.Context())
				if err != nil {
					return err
				}
				order, err := cli.Orders.Cancel(ctx, args[0])
				if err != nil {
					return err
				}
				printOrderDetail(cmd, order)
				return nil
			},
		},
	)
	return cmd
}

func printOrders(cmd *cobra.Command, orders []model.Order) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "ID\tBOOK\tSTATUS\tPAYMENT\tNEXT"); err != nil {
		return err
	}
	for i := range orders {
		o := &orders[i]
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%v\n",
			o.ID, o.BookTitle, o.Status, o.PaymentStatus, o.Status.NextStatuses()); err != nil {
			return err
		}
	}
	return w.Flush()
}

func printOrderDetail(cmd *cobra.Command, o *model.Order) {
	cmd.Printf("order %s\n", o.ID)
	cmd.Printf("  book:    %s (%s)\n", o.BookTitle, o.BookID)
	cmd.Printf("  status:  %s (payment %s)\n", o.Status, o.PaymentStatus)
	cmd.Printf("  ship to: %s, %s\n", o.Address, o.Phone)
	if next := o.Status.NextStatuses(); len(next) > 0 {
		cmd.Printf("  next:    %v\n", next)
	}
}
