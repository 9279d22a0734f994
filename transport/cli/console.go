package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/scrapzee/scrapzee-cli/constant"
	"github.com/scrapzee/scrapzee-cli/model"
	"github.com/spf13/cobra"
)

// newConsoleCommand starts the interactive session: a read-eval loop that
// renders the current page and feeds navigation actions to the controller,
// the terminal equivalent of the single-page browser client.
func newConsoleCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "console",
		Short: "Interactive Scrapzee session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			app.Controller.Start(ctx)
			app.Controller.Wait()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Scrapzee console. Type `help` for commands, `quit` to exit.")

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for {
				renderPage(out, app)
				fmt.Fprintf(out, "[%s]> ", app.Controller.Page())
				if !scanner.Scan() {
					return scanner.Err()
				}
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}
				if line == "quit" || line == "exit" {
					app.Controller.Wait()
					return nil
				}
				runConsoleCommand(ctx, out, app, line)
			}
		},
	}
}

func runConsoleCommand(ctx context.Context, out io.Writer, app *App, line string) {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "help":
		fmt.Fprintln(out, "commands: go <page> | login <email> <password> | register <name> <email> <password>")
		fmt.Fprintln(out, "          list [status] | show <id> | create <category> <qty> <address...> | cancel <id>")
		fmt.Fprintln(out, "          refresh | logout | quit")
		fmt.Fprintf(out, "pages:    %v\n", constant.AllPages)

	case "go":
		if len(args) != 1 {
			fmt.Fprintln(out, "usage: go <page>")
			return
		}
		app.Controller.NavigateTo(constant.Page(args[0]))

	case "login":
		if len(args) != 2 {
			fmt.Fprintln(out, "usage: login <email> <password>")
			return
		}
		app.Controller.SetLoginForm(model.LoginForm{Email: args[0], Password: args[1]})
		if err := app.Controller.Login(ctx); err != nil {
			fmt.Fprintln(out, app.Controller.LastError())
		}

	case "register":
		if len(args) != 3 {
			fmt.Fprintln(out, "usage: register <name> <email> <password>")
			return
		}
		app.Controller.SetRegisterForm(model.RegisterForm{FullName: args[0], Email: args[1], Password: args[2]})
		if err := app.Controller.Register(ctx); err != nil {
			fmt.Fprintln(out, app.Controller.LastError())
		}

	case "logout":
		app.Controller.Logout()

	case "refresh":
		app.Controller.RefreshCategories(ctx)
		app.Controller.RefreshDashboard(ctx)

	case "list":
		status := constant.RequestStatus("")
		if len(args) == 1 {
			status = constant.RequestStatus(args[0])
		}
		records, err := app.Requests.List(ctx, status)
		if err != nil {
			fmt.Fprintln(out, err)
			return
		}
		renderRequests(out, records, app.Controller.Categories())

	case "show":
		id, ok := parseID(out, args)
		if !ok {
			return
		}
		record, err := app.Requests.Get(ctx, id)
		if err != nil {
			fmt.Fprintln(out, err)
			return
		}
		renderRequest(out, record, app.Controller.Categories())

	case "create":
		if len(args) < 3 {
			fmt.Fprintln(out, "usage: create <category> <qty> <address...>")
			return
		}
		categoryID, err1 := strconv.ParseInt(args[0], 10, 64)
		quantity, err2 := strconv.ParseFloat(args[1], 64)
		if err1 != nil || err2 != nil {
			fmt.Fprintln(out, "category and quantity must be numbers")
			return
		}
		form := model.CreateRequestForm{
			CategoryID:    categoryID,
			Quantity:      quantity,
			PickupAddress: strings.Join(args[2:], " "),
		}
		if cat, ok := findCategory(app, categoryID); ok {
			fmt.Fprintf(out, "Estimated price: %s\n", formatMoney(quantity*cat.BasePrice))
		}
		res, err := app.Requests.Create(ctx, &form)
		if err != nil {
			fmt.Fprintln(out, err)
			return
		}
		fmt.Fprintf(out, "Request #%d created.\n", res.RequestID)
		app.Controller.RefreshDashboard(ctx)

	case "cancel":
		id, ok := parseID(out, args)
		if !ok {
			return
		}
		record, err := app.Requests.Cancel(ctx, id)
		if err != nil {
			fmt.Fprintln(out, err)
			return
		}
		fmt.Fprintf(out, "Request #%d is now %s.\n", record.ID, record.Status)
		app.Controller.RefreshDashboard(ctx)

	default:
		fmt.Fprintf(out, "unknown command %q, try `help`\n", cmd)
	}
}

func parseID(out io.Writer, args []string) (int64, bool) {
	if len(args) != 1 {
		fmt.Fprintln(out, "usage: <command> <id>")
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(out, "invalid id %q\n", args[0])
		return 0, false
	}
	return id, true
}

// renderPage draws the current page the way the browser client would.
func renderPage(out io.Writer, app *App) {
	if msg := app.Controller.LastError(); msg != "" {
		fmt.Fprintf(out, "! %s\n", msg)
	}

	switch app.Controller.Page() {
	case constant.PageHome:
		fmt.Fprintln(out, "Scrapzee - turn your waste into wealth.")
		if app.Controller.Authenticated() {
			fmt.Fprintln(out, "Signed in. Try `go dashboard`.")
		} else {
			fmt.Fprintln(out, "Try `go login`, `go register` or `go pricing`.")
		}

	case constant.PageLogin:
		fmt.Fprintln(out, "Sign in with: login <email> <password>")

	case constant.PageRegister:
		fmt.Fprintln(out, "Create an account with: register <name> <email> <password>")

	case constant.PagePricing:
		categories := app.Controller.Categories()
		if len(categories) == 0 {
			fmt.Fprintln(out, "No categories available")
		} else {
			renderCategories(out, categories)
		}

	case constant.PageDashboard:
		if snap := app.Controller.Dashboard(); snap != nil {
			renderDashboard(out, snap, app.Controller.Categories())
		} else if app.Controller.DashboardLoading() {
			fmt.Fprintln(out, "Loading dashboard...")
		} else {
			fmt.Fprintln(out, "Unable to load dashboard data")
		}

	case constant.PageRequests:
		fmt.Fprintln(out, "Your requests: `list [status]`, `show <id>`, `create ...`, `cancel <id>`")

	case constant.PageProfile:
		fmt.Fprintln(out, "Profile: use `scrapzee profile show` / `scrapzee profile update`")
	}
}
