// Package session owns the client's identity state and orchestrates the
// credential and checkout flows across the remote service, the persistent
// session store, the cart, and the navigation machine.
package session

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"guitarhub-storefront/internal/api"
	"guitarhub-storefront/internal/cart"
	"guitarhub-storefront/internal/domain"
	"guitarhub-storefront/internal/navigation"
)

// remote is the slice of the API client the controller needs.
type remote interface {
	SignUp(ctx context.Context, email, username, password string) (*api.AuthResponse, error)
	Login(ctx context.Context, email, password string) (*api.AuthResponse, error)
	AdminLogin(ctx context.Context, email, password string) (*api.AdminAuthResponse, error)
	Checkout(ctx context.Context, userID string, items []api.CheckoutItem) (*api.CheckoutResponse, error)
}

// sessionStore is the slice of the persistent store the controller needs.
// The cart record is written by the cart manager; the controller only reads
// it back on restore.
type sessionStore interface {
	SaveUser(ctx context.Context, u domain.User) error
	LoadUser(ctx context.Context) (*domain.User, error)
	ClearUser(ctx context.Context) error
	LoadCart(ctx context.Context) ([]domain.CartItem, error)
}

// Notifier surfaces user-visible confirmations and failure reasons.
type Notifier interface {
	Notify(message string)
}

// Controller holds the session identity and the collaborators it mutates
// together on credential events. All methods run on the caller's goroutine;
// there is no internal concurrency.
type Controller struct {
	api    remote
	store  sessionStore
	cart   *cart.Manager
	nav    *navigation.Machine
	notify Notifier
	log    *logrus.Logger

	user     *domain.User
	admin    *domain.AdminUser
	loggedIn bool
}

// New wires a Controller.
func New(apiClient remote, store sessionStore, cartMgr *cart.Manager, nav *navigation.Machine, notify Notifier, logger *logrus.Logger) *Controller {
	return &Controller{
		api:    apiClient,
		store:  store,
		cart:   cartMgr,
		nav:    nav,
		notify: notify,
		log:    logger,
	}
}

// User returns the authenticated customer, or nil.
func (c *Controller) User() *domain.User { return c.user }

// Admin returns the active admin session, or nil.
func (c *Controller) Admin() *domain.AdminUser { return c.admin }

// LoggedIn reports whether a customer session is active.
func (c *Controller) LoggedIn() bool { return c.loggedIn }

// Restore loads the persisted user and cart records at startup. Corrupt or
// unreadable records leave the defaults in place: logged out, empty cart.
func (c *Controller) Restore(ctx context.Context) {
	user, err := c.store.LoadUser(ctx)
	if err != nil {
		c.log.WithError(err).Warn("restore user session")
	} else if user != nil {
		c.user = user
		c.loggedIn = true
	}

	items, err := c.store.LoadCart(ctx)
	if err != nil {
		c.log.WithError(err).Warn("restore cart")
	} else if len(items) > 0 {
		c.cart.Restore(items)
	}
}

// SignUp registers a new account. On success the user, the login flag, the
// persisted record, and the navigation target change as one step; on any
// failure nothing changes and the reason is surfaced.
func (c *Controller) SignUp(ctx context.Context, email, username, password string) error {
	resp, err := c.api.SignUp(ctx, email, username, password)
	if err != nil {
		c.notify.Notify("Sign up failed!")
		return err
	}
	if !resp.Success || resp.User == nil {
		c.notify.Notify(resp.Message)
		return fmt.Errorf("sign up rejected: %s", resp.Message)
	}
	c.establish(ctx, *resp.User)
	c.notify.Notify("Welcome " + resp.User.Username + "!")
	return nil
}

// Login authenticates an existing account with the same atomic success
// contract as SignUp.
func (c *Controller) Login(ctx context.Context, email, password string) error {
	resp, err := c.api.Login(ctx, email, password)
	if err != nil {
		c.notify.Notify("Login failed!")
		return err
	}
	if !resp.Success || resp.User == nil {
		c.notify.Notify(resp.Message)
		return fmt.Errorf("login rejected: %s", resp.Message)
	}
	c.establish(ctx, *resp.User)
	c.notify.Notify("Login successful!")
	return nil
}

func (c *Controller) establish(ctx context.Context, u domain.User) {
	c.user = &u
	c.loggedIn = true
	if err := c.store.SaveUser(ctx, u); err != nil {
		c.log.WithError(err).Warn("persist user session")
	}
	c.nav.SetMode(navigation.ModeCustomer)
	c.nav.Go(navigation.PageHome)
}

// AdminLogin authenticates an administrator and switches to the admin
// dashboard. The admin identity stays in memory only; a restart returns to
// the admin login screen.
func (c *Controller) AdminLogin(ctx context.Context, email, password string) error {
	resp, err := c.api.AdminLogin(ctx, email, password)
	if err != nil {
		c.notify.Notify("Admin login failed!")
		return err
	}
	if !resp.Success || resp.Admin == nil {
		c.notify.Notify(resp.Message)
		return fmt.Errorf("admin login rejected: %s", resp.Message)
	}
	c.admin = resp.Admin
	c.nav.SetMode(navigation.ModeAdmin)
	c.nav.Go(navigation.PageAdminDashboard)
	return nil
}

// Logout drops the customer session, clears the cart and both persisted
// records, and returns to the home page.
func (c *Controller) Logout(ctx context.Context) {
	c.loggedIn = false
	c.user = nil
	c.cart.Clear(ctx)
	if err := c.store.ClearUser(ctx); err != nil {
		c.log.WithError(err).Warn("clear persisted user")
	}
	c.nav.ResetCustomer()
}

// AdminLogout drops the admin session and returns to the customer home
// page. The cart and customer records are untouched.
func (c *Controller) AdminLogout() {
	c.admin = nil
	c.nav.ResetAdmin()
}

// Checkout places an order for the current cart. Preconditions are checked
// locally, before any remote call: a logged-out user is redirected to the
// auth page, an empty cart only surfaces a reason. On success the cart and
// its persisted record are cleared and the client navigates to the profile.
func (c *Controller) Checkout(ctx context.Context) error {
	if !c.loggedIn || c.user == nil {
		c.notify.Notify("Please log in first!")
		c.nav.Go(navigation.PageAuth)
		return domain.ErrNotLoggedIn
	}
	if c.cart.Len() == 0 {
		c.notify.Notify("Your cart is empty!")
		return domain.ErrEmptyCart
	}

	items := make([]api.CheckoutItem, 0, c.cart.Len())
	for _, item := range c.cart.Items() {
		items = append(items, api.CheckoutItem{ProductID: item.Product.ID, Quantity: item.Quantity})
	}

	resp, err := c.api.Checkout(ctx, c.user.ID, items)
	if err != nil {
		c.notify.Notify("Checkout failed!")
		return err
	}
	if !resp.Success {
		c.notify.Notify(resp.Message)
		return fmt.Errorf("checkout rejected: %s", resp.Message)
	}

	c.notify.Notify("Order placed successfully!")
	c.CompleteCheckout(ctx)
	return nil
}

// CompleteCheckout finishes a placed order: the cart and its persisted
// record are cleared and the client moves to the profile. Checkout calls it
// once the remote confirms the order.
func (c *Controller) CompleteCheckout(ctx context.Context) {
	c.cart.Clear(ctx)
	c.nav.Go(navigation.PageProfile)
}
