package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"guitarhub-storefront/internal/admin"
	"guitarhub-storefront/internal/api"
	"guitarhub-storefront/internal/cart"
	"guitarhub-storefront/internal/config"
	"guitarhub-storefront/internal/domain"
	"guitarhub-storefront/internal/navigation"
	"guitarhub-storefront/internal/session"
	"guitarhub-storefront/internal/store"
)

// app glues the state core to a terminal front end. All rendering and
// prompting lives here; the core packages never touch the terminal.
type app struct {
	log  *logrus.Logger
	in   *bufio.Scanner
	out  io.Writer
	apic *api.Client
	cart *cart.Manager
	nav  *navigation.Machine
	ctrl *session.Controller
	sync *admin.Synchronizer

	products []domain.Product
	category string
}

// terminalNotifier prints user-visible confirmations and failure reasons.
type terminalNotifier struct {
	out io.Writer
}

func (n *terminalNotifier) Notify(message string) {
	fmt.Fprintf(n.out, "\n>> %s\n", message)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("load config: %v", err)
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	kv, closeKV, err := buildKV(cfg)
	if err != nil {
		logger.Fatalf("init session store: %v", err)
	}
	defer closeKV()

	sess := store.NewSession(kv, logger)
	cartMgr := cart.New(sess, logger)
	nav := navigation.NewMachine()
	apiClient := api.New(cfg.APIBaseURL, cfg.HTTPTimeout, logger)
	notify := &terminalNotifier{out: os.Stdout}
	ctrl := session.New(apiClient, sess, cartMgr, nav, notify, logger)

	a := &app{
		log:      logger,
		in:       bufio.NewScanner(os.Stdin),
		out:      os.Stdout,
		apic:     apiClient,
		cart:     cartMgr,
		nav:      nav,
		ctrl:     ctrl,
		sync:     admin.NewSynchronizer(apiClient),
		category: "All",
	}

	ctx := context.Background()
	ctrl.Restore(ctx)
	a.refreshCatalog(ctx)
	a.run(ctx)
}

func buildKV(cfg config.Config) (store.KV, func(), error) {
	switch cfg.SessionBackend {
	case "redis":
		r, err := store.NewRedis(cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		return r, func() { _ = r.Close() }, nil
	default:
		f, err := store.NewFile(cfg.SessionDir)
		if err != nil {
			return nil, nil, err
		}
		return f, func() {}, nil
	}
}

func (a *app) refreshCatalog(ctx context.Context) {
	products, err := a.apic.ListProducts(ctx)
	if err != nil {
		a.log.WithError(err).Warn("fetch products")
		return
	}
	a.products = products
}

// run renders the view selected by the navigation machine until EOF or quit.
func (a *app) run(ctx context.Context) {
	for {
		var done bool
		switch a.nav.View(a.ctrl.LoggedIn(), a.ctrl.Admin() != nil) {
		case navigation.PageAuth:
			done = a.authView(ctx)
		case navigation.PageHome:
			done = a.homeView(ctx)
		case navigation.PageCatalog:
			done = a.catalogView(ctx)
		case navigation.PageProductDetail:
			done = a.productDetailView(ctx)
		case navigation.PageCart:
			done = a.cartView(ctx)
		case navigation.PageCheckout:
			done = a.checkoutView(ctx)
		case navigation.PageProfile:
			done = a.profileView(ctx)
		case navigation.PageAdminLogin:
			done = a.adminLoginView(ctx)
		case navigation.PageAdminDashboard:
			done = a.adminDashboardView(ctx)
		case navigation.PageAdminProducts:
			done = a.adminProductsView(ctx)
		case navigation.PageAdminOrders:
			done = a.adminOrdersView(ctx)
		case navigation.PageAdminUsers:
			done = a.adminUsersView(ctx)
		default:
			a.nav.Go(navigation.PageHome)
		}
		if done {
			return
		}
	}
}

func (a *app) prompt(label string) (string, bool) {
	fmt.Fprintf(a.out, "%s: ", label)
	if !a.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(a.in.Text()), true
}

func (a *app) promptInt(label string) (int, bool) {
	raw, ok := a.prompt(label)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, true
	}
	return n, true
}

func (a *app) promptFloat(label string) (float64, bool) {
	raw, ok := a.prompt(label)
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, true
	}
	return n, true
}
