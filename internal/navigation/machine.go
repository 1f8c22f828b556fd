// Package navigation tracks which view the client presents: the active mode
// (customer or admin), the page within that mode, and the product selected
// for the detail view.
package navigation

import "guitarhub-storefront/internal/domain"

// Mode selects between the storefront and the admin console.
type Mode string

const (
	ModeCustomer Mode = "customer"
	ModeAdmin    Mode = "admin"
)

// Page identifies a view within a mode.
type Page string

const (
	PageHome          Page = "home"
	PageCatalog       Page = "catalog"
	PageProductDetail Page = "product-detail"
	PageCart          Page = "cart"
	PageCheckout      Page = "checkout"
	PageProfile       Page = "profile"
	PageAuth          Page = "auth"

	PageAdminLogin     Page = "admin-login"
	PageAdminDashboard Page = "admin-dashboard"
	PageAdminProducts  Page = "admin-products"
	PageAdminOrders    Page = "admin-orders"
	PageAdminUsers     Page = "admin-users"
)

// Machine is the navigation state machine. Navigation is flat: any page can
// be reached directly, there is no history stack. The machine never
// terminates; it runs for the lifetime of the session.
type Machine struct {
	mode     Mode
	page     Page
	selected *domain.Product
}

// NewMachine starts in customer mode on the home page.
func NewMachine() *Machine {
	return &Machine{mode: ModeCustomer, page: PageHome}
}

// Mode returns the active mode.
func (m *Machine) Mode() Mode { return m.mode }

// Page returns the current page within the active mode.
func (m *Machine) Page() Page { return m.page }

// Selected returns the product chosen for the detail view, if any.
func (m *Machine) Selected() *domain.Product { return m.selected }

// SetMode switches modes unconditionally. Entering admin mode without an
// admin session is legal; View resolves that state to the admin login page.
func (m *Machine) SetMode(mode Mode) {
	m.mode = mode
}

// Go moves to the given page. Targets are not validated against the current
// page.
func (m *Machine) Go(page Page) {
	m.page = page
}

// ViewProduct selects the product and moves to the detail page as one step;
// the two fields are never updated independently from this action.
func (m *Machine) ViewProduct(p domain.Product) {
	m.selected = &p
	m.page = PageProductDetail
}

// ResetCustomer returns to the customer home page and drops the selection.
// Called on customer logout.
func (m *Machine) ResetCustomer() {
	m.mode = ModeCustomer
	m.page = PageHome
	m.selected = nil
}

// ResetAdmin leaves admin mode back to the customer home page. Called on
// admin logout.
func (m *Machine) ResetAdmin() {
	m.mode = ModeCustomer
	m.page = PageHome
}

// View resolves the page to render given the session's authentication
// state. An unauthenticated customer always sees the auth page; admin mode
// without an admin session always sees the admin login page.
func (m *Machine) View(loggedIn, adminPresent bool) Page {
	if m.mode == ModeAdmin {
		if !adminPresent {
			return PageAdminLogin
		}
		return m.page
	}
	if !loggedIn {
		return PageAuth
	}
	return m.page
}
