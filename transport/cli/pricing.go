package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPricesCommand(app *App) *cobra.Command {
	var historyFor int64

	cmd := &cobra.Command{
		Use:   "prices",
		Short: "Show current scrap prices",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			app.Controller.Start(ctx)
			defer app.Controller.Wait()

			if historyFor > 0 {
				entries, err := app.Pricing.History(ctx, historyFor)
				if err != nil {
					return err
				}
				renderPriceHistory(cmd.OutOrStdout(), historyFor, entries)
				return nil
			}

			categories := app.Controller.Categories()
			if len(categories) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No categories available")
				return nil
			}
			renderCategories(cmd.OutOrStdout(), categories)
			return nil
		},
	}

	cmd.Flags().Int64Var(&historyFor, "history", 0, "show price history for a category id")

	return cmd
}

func newDashboardCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show your request summary",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			app.Controller.Start(ctx)
			app.Controller.Wait()

			if !app.Controller.Authenticated() {
				return fmt.Errorf("not signed in, run `scrapzee login` first")
			}

			snap := app.Controller.Dashboard()
			if snap == nil {
				app.Controller.RefreshDashboard(ctx)
				snap = app.Controller.Dashboard()
			}
			if snap == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Unable to load dashboard data")
				return nil
			}

			renderDashboard(cmd.OutOrStdout(), snap, app.Controller.Categories())
			return nil
		},
	}
}
