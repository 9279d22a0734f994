package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/scrapzee/scrapzee-cli/application/pricing"
	"github.com/scrapzee/scrapzee-cli/model"
)

func formatMoney(v float64) string {
	return "₹" + pricing.FormatAmount(v)
}

func formatOptionalMoney(v *float64) string {
	if v == nil {
		return "-"
	}
	return formatMoney(*v)
}

func findCategory(app *App, id int64) (model.Category, bool) {
	return pricing.FindCategory(app.Controller.Categories(), id)
}

func renderCategories(w io.Writer, categories []model.Category) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCATEGORY\tPRICE\tUNIT\tDESCRIPTION")
	for _, c := range categories {
		fmt.Fprintf(tw, "%d\t%s\t%s\tper %s\t%s\n",
			c.ID, c.Name, formatMoney(c.BasePrice), c.Unit, c.Description)
	}
	_ = tw.Flush()
}

func renderPriceHistory(w io.Writer, categoryID int64, entries []model.PriceHistoryEntry) {
	if len(entries) == 0 {
		fmt.Fprintf(w, "No price history for category %d\n", categoryID)
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PRICE\tCHANGED\tREASON")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", formatMoney(e.Price), e.ChangedAt.Display(), e.Reason)
	}
	_ = tw.Flush()
}

func renderDashboard(w io.Writer, snap *model.DashboardSnapshot, categories []model.Category) {
	fmt.Fprintf(w, "Total requests:  %d\n", snap.Stats.TotalRequests)
	fmt.Fprintf(w, "Pending:         %d\n", snap.Stats.PendingRequests)
	fmt.Fprintf(w, "Completed:       %d\n", snap.Stats.CompletedRequests)
	fmt.Fprintf(w, "Total earnings:  %s\n", formatMoney(snap.Stats.TotalEarnings))

	if len(snap.RecentRequests) == 0 {
		fmt.Fprintln(w, "\nNo requests yet. Run `scrapzee requests create` to get started.")
		return
	}

	fmt.Fprintln(w, "\nRecent requests:")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCATEGORY\tSTATUS\tESTIMATE\tCREATED")
	for _, r := range snap.RecentRequests {
		fmt.Fprintf(tw, "#%d\t%s\t%s\t%s\t%s\n",
			r.ID,
			pricing.CategoryLabel(categories, r.CategoryID),
			r.Status,
			formatOptionalMoney(r.EstimatedPrice),
			r.CreatedAt.Display(),
		)
	}
	_ = tw.Flush()
}

func renderRequests(w io.Writer, records []model.RequestRecord, categories []model.Category) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No requests found.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCATEGORY\tQTY\tSTATUS\tESTIMATE\tCREATED")
	for _, r := range records {
		fmt.Fprintf(tw, "#%d\t%s\t%.1f\t%s\t%s\t%s\n",
			r.ID,
			pricing.CategoryLabel(categories, r.CategoryID),
			r.Quantity,
			r.Status,
			formatOptionalMoney(r.EstimatedPrice),
			r.CreatedAt.Display(),
		)
	}
	_ = tw.Flush()
}

func renderRequest(w io.Writer, r *model.RequestRecord, categories []model.Category) {
	fmt.Fprintf(w, "Request #%d\n", r.ID)
	fmt.Fprintf(w, "  Category:  %s\n", pricing.CategoryLabel(categories, r.CategoryID))
	fmt.Fprintf(w, "  Quantity:  %.1f\n", r.Quantity)
	fmt.Fprintf(w, "  Status:    %s\n", r.Status)
	fmt.Fprintf(w, "  Estimate:  %s\n", formatOptionalMoney(r.EstimatedPrice))
	fmt.Fprintf(w, "  Address:   %s\n", r.PickupAddress)
	if !r.PickupDate.Time.IsZero() {
		fmt.Fprintf(w, "  Pickup:    %s\n", r.PickupDate.Display())
	}
	if r.Notes != "" {
		fmt.Fprintf(w, "  Notes:     %s\n", r.Notes)
	}
	if r.AssignedDealerID != nil {
		fmt.Fprintf(w, "  Dealer:    #%d\n", *r.AssignedDealerID)
	}
	fmt.Fprintf(w, "  Created:   %s\n", r.CreatedAt.Display())
}

func renderProfile(w io.Writer, res *model.ProfileResponse) {
	if res.User != nil {
		fmt.Fprintf(w, "%s <%s>\n", res.User.FullName, res.User.Email)
	}
	if res.Profile == nil {
		fmt.Fprintln(w, "No profile saved yet. Run `scrapzee profile update` to add one.")
		return
	}
	printField := func(label string, v *string) {
		if v != nil && *v != "" {
			fmt.Fprintf(w, "  %-9s %s\n", label+":", *v)
		}
	}
	printField("Address", res.Profile.Address)
	printField("City", res.Profile.City)
	printField("Pincode", res.Profile.Pincode)
	printField("Bio", res.Profile.Bio)
	printField("Avatar", res.Profile.AvatarURL)
}
