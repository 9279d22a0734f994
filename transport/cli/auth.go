package cli

import (
	"errors"
	"fmt"

	"github.com/scrapzee/scrapzee-cli/model"
	"github.com/spf13/cobra"
)

func newLoginCommand(app *App) *cobra.Command {
	var form model.LoginForm

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and persist the session token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			app.Controller.Start(ctx)

			app.Controller.SetLoginForm(form)
			if err := app.Controller.Login(ctx); err != nil {
				return errors.New(app.Controller.LastError())
			}
			defer app.Controller.Wait()

			user := app.Controller.User()
			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", displayName(user))
			return nil
		},
	}

	cmd.Flags().StringVarP(&form.Email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&form.Password, "password", "p", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newRegisterCommand(app *App) *cobra.Command {
	var form model.RegisterForm

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			app.Controller.Start(ctx)

			app.Controller.SetRegisterForm(form)
			if err := app.Controller.Register(ctx); err != nil {
				return errors.New(app.Controller.LastError())
			}
			defer app.Controller.Wait()

			user := app.Controller.User()
			fmt.Fprintf(cmd.OutOrStdout(), "Account created. Signed in as %s\n", displayName(user))
			return nil
		},
	}

	cmd.Flags().StringVarP(&form.FullName, "name", "n", "", "full name")
	cmd.Flags().StringVarP(&form.Email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&form.Password, "password", "p", "", "account password (min 6 characters)")
	cmd.Flags().StringVar(&form.Phone, "phone", "", "phone number (optional)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the persisted session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app.Controller.Logout()
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
			return nil
		},
	}
}

func newWhoamiCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the active session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app.Controller.Start(cmd.Context())
			defer app.Controller.Wait()

			user := app.Controller.User()
			if user == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Not signed in.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s <%s> (role: %s)\n", user.FullName, user.Email, user.Role)
			return nil
		},
	}
}

func displayName(user *model.User) string {
	if user == nil {
		return "unknown"
	}
	if user.FullName != "" {
		return user.FullName
	}
	return user.Email
}
