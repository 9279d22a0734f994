package cli

import (
	"fmt"
	"strconv"

	"github.com/scrapzee/scrapzee-cli/constant"
	"github.com/scrapzee/scrapzee-cli/model"
	"github.com/spf13/cobra"
)

func newRequestsCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "requests",
		Short: "Manage your pickup requests",
	}

	cmd.AddCommand(newRequestsListCommand(app))
	cmd.AddCommand(newRequestsShowCommand(app))
	cmd.AddCommand(newRequestsCreateCommand(app))
	cmd.AddCommand(newRequestsCancelCommand(app))

	return cmd
}

func newRequestsListCommand(app *App) *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your pickup requests",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			app.Controller.Start(ctx)
			defer app.Controller.Wait()

			records, err := app.Requests.List(ctx, constant.RequestStatus(status))
			if err != nil {
				return err
			}
			renderRequests(cmd.OutOrStdout(), records, app.Controller.Categories())
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "filter by status (pending|accepted|completed|cancelled)")

	return cmd
}

func newRequestsShowCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one pickup request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid request id %q", args[0])
			}

			ctx := cmd.Context()
			app.Controller.Start(ctx)
			defer app.Controller.Wait()

			record, err := app.Requests.Get(ctx, id)
			if err != nil {
				return err
			}
			renderRequest(cmd.OutOrStdout(), record, app.Controller.Categories())
			return nil
		},
	}
}

func newRequestsCreateCommand(app *App) *cobra.Command {
	var form model.CreateRequestForm

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Submit a new pickup request",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			app.Controller.Start(ctx)
			defer app.Controller.Wait()

			out := cmd.OutOrStdout()

			// client-side preview; the backend's figure is authoritative
			if cat, ok := findCategory(app, form.CategoryID); ok {
				preview := form.Quantity * cat.BasePrice
				fmt.Fprintf(out, "Estimated price: %s (%.1f %s of %s)\n",
					formatMoney(preview), form.Quantity, cat.Unit, cat.Name)
			}

			res, err := app.Requests.Create(ctx, &form)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Request #%d created.\n", res.RequestID)
			if res.EstimatedPrice != nil {
				fmt.Fprintf(out, "Confirmed estimate: %s\n", formatMoney(*res.EstimatedPrice))
			}
			return nil
		},
	}

	cmd.Flags().Int64VarP(&form.CategoryID, "category", "c", 0, "category id")
	cmd.Flags().Float64VarP(&form.Quantity, "quantity", "q", 0, "quantity in the category unit")
	cmd.Flags().StringVarP(&form.PickupAddress, "address", "a", "", "pickup address")
	cmd.Flags().StringVarP(&form.PickupDate, "date", "d", "", "pickup date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&form.Notes, "notes", "", "notes for the dealer")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("quantity")
	_ = cmd.MarkFlagRequired("address")

	return cmd
}

func newRequestsCancelCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <id>",
		Short: "Cancel a pending pickup request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid request id %q", args[0])
			}

			ctx := cmd.Context()
			app.Controller.Start(ctx)
			defer app.Controller.Wait()

			record, err := app.Requests.Cancel(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Request #%d is now %s.\n", record.ID, record.Status)
			return nil
		},
	}
}
