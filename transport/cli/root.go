// Package cli is the terminal surface of the client. Commands drive the
// session controller and the application layers; nothing here talks to the
// backend directly.
package cli

import (
	"github.com/scrapzee/scrapzee-cli/application/pricing"
	"github.com/scrapzee/scrapzee-cli/application/profile"
	"github.com/scrapzee/scrapzee-cli/application/requests"
	"github.com/scrapzee/scrapzee-cli/application/session"
	"github.com/scrapzee/scrapzee-cli/cmd/config"
	"github.com/spf13/cobra"
)

// App bundles the wired application layers for the command tree.
type App struct {
	Config     *config.Config
	Controller *session.Controller
	Requests   requests.RequestsApp
	Profile    profile.ProfileApp
	Pricing    pricing.PricingApp
}

// NewRootCommand builds the scrapzee command tree.
func NewRootCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "scrapzee",
		Short:         "Scrapzee - turn your waste into wealth",
		Long:          "Terminal client for the Scrapzee scrap-recycling marketplace.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newLoginCommand(app))
	cmd.AddCommand(newRegisterCommand(app))
	cmd.AddCommand(newLogoutCommand(app))
	cmd.AddCommand(newWhoamiCommand(app))
	cmd.AddCommand(newPricesCommand(app))
	cmd.AddCommand(newDashboardCommand(app))
	cmd.AddCommand(newRequestsCommand(app))
	cmd.AddCommand(newProfileCommand(app))
	cmd.AddCommand(newConsoleCommand(app))
	cmd.AddCommand(newStubCommand(app))

	return cmd
}
