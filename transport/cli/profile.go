package cli

import (
	"fmt"

	"github.com/scrapzee/scrapzee-cli/model"
	"github.com/spf13/cobra"
)

func newProfileCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "View and edit your profile",
	}

	cmd.AddCommand(newProfileShowCommand(app))
	cmd.AddCommand(newProfileUpdateCommand(app))

	return cmd
}

func newProfileShowCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show your profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			app.Controller.Start(ctx)
			defer app.Controller.Wait()

			res, err := app.Profile.Get(ctx)
			if err != nil {
				return err
			}
			renderProfile(cmd.OutOrStdout(), res)
			return nil
		},
	}
}

func newProfileUpdateCommand(app *App) *cobra.Command {
	var form model.UpdateProfileForm

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update profile fields",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			app.Controller.Start(ctx)
			defer app.Controller.Wait()

			res, err := app.Profile.Update(ctx, &form)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Message)
			return nil
		},
	}

	cmd.Flags().StringVar(&form.Address, "address", "", "street address")
	cmd.Flags().StringVar(&form.City, "city", "", "city")
	cmd.Flags().StringVar(&form.Pincode, "pincode", "", "6-digit pincode")
	cmd.Flags().StringVar(&form.AvatarURL, "avatar", "", "avatar image URL")
	cmd.Flags().StringVar(&form.Bio, "bio", "", "short bio")

	return cmd
}
