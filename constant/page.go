package constant

// Page identifies a screen of the client. Navigation only ever moves between
// these values.
type Page string

const (
	PageHome      Page = "home"
	PageLogin     Page = "login"
	PageRegister  Page = "register"
	PagePricing   Page = "pricing"
	PageDashboard Page = "dashboard"
	PageProfile   Page = "profile"
	PageRequests  Page = "requests"
)

// AllPages lists every navigable page.
var AllPages = []Page{
	PageHome,
	PageLogin,
	PageRegister,
	PagePricing,
	PageDashboard,
	PageProfile,
	PageRequests,
}

// RequiresAuth reports whether a page is only reachable with an active
// session. Pricing is deliberately reachable in both regions.
func (p Page) RequiresAuth() bool {
	switch p {
	case PageDashboard, PageProfile, PageRequests:
		return true
	}
	return false
}

// Valid reports whether p is a known page.
func (p Page) Valid() bool {
	for _, known := range AllPages {
		if p == known {
			return true
		}
	}
	return false
}
