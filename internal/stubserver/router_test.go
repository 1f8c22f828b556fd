package stubserver

import (
	"context"
	"io"
	"math"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"guitarhub-storefront/internal/api"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// newTestServer exposes the stub over httptest and returns the real API
// client pointed at it, so these tests double as a client/server contract
// check.
func newTestServer(t *testing.T) (*api.Client, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	srv := httptest.NewServer(buildRouter(testLogger(), newFixtures()))
	return api.New(srv.URL, 2*time.Second, testLogger()), srv.Close
}

func TestProductsSeeded(t *testing.T) {
	client, done := newTestServer(t)
	defer done()

	products, err := client.ListProducts(context.Background())
	if err != nil {
		t.Fatalf("list products: %v", err)
	}
	if len(products) == 0 {
		t.Fatalf("catalog is empty")
	}
	if products[0].Category == "" || products[0].Price <= 0 {
		t.Fatalf("seed product malformed: %+v", products[0])
	}
}

func TestSignUpThenLogin(t *testing.T) {
	client, done := newTestServer(t)
	defer done()
	ctx := context.Background()

	signUp, err := client.SignUp(ctx, "izzy@gnr.com", "izzy", "secret")
	if err != nil {
		t.Fatalf("sign up: %v", err)
	}
	if !signUp.Success || signUp.User == nil {
		t.Fatalf("sign up response = %+v", signUp)
	}

	dup, err := client.SignUp(ctx, "izzy@gnr.com", "izzy2", "other")
	if err != nil {
		t.Fatalf("duplicate sign up: %v", err)
	}
	if dup.Success {
		t.Fatalf("duplicate email accepted")
	}

	login, err := client.Login(ctx, "izzy@gnr.com", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if !login.Success || login.User.ID != signUp.User.ID {
		t.Fatalf("login response = %+v", login)
	}

	bad, err := client.Login(ctx, "izzy@gnr.com", "wrong")
	if err != nil {
		t.Fatalf("bad login: %v", err)
	}
	if bad.Success {
		t.Fatalf("wrong password accepted")
	}
}

func TestAdminLoginDemoCredentials(t *testing.T) {
	client, done := newTestServer(t)
	defer done()
	ctx := context.Background()

	resp, err := client.AdminLogin(ctx, "admin@guitar.com", "admin123")
	if err != nil {
		t.Fatalf("admin login: %v", err)
	}
	if !resp.Success || resp.Admin == nil || resp.Admin.Name == "" {
		t.Fatalf("response = %+v", resp)
	}

	bad, err := client.AdminLogin(ctx, "admin@guitar.com", "nope")
	if err != nil {
		t.Fatalf("bad admin login: %v", err)
	}
	if bad.Success {
		t.Fatalf("wrong admin password accepted")
	}
}

func TestCheckoutCreatesOrder(t *testing.T) {
	client, done := newTestServer(t)
	defer done()
	ctx := context.Background()

	signUp, err := client.SignUp(ctx, "axl@gnr.com", "axl", "jungle")
	if err != nil || !signUp.Success {
		t.Fatalf("sign up: %+v, %v", signUp, err)
	}
	products, err := client.ListProducts(ctx)
	if err != nil {
		t.Fatalf("list products: %v", err)
	}

	resp, err := client.Checkout(ctx, signUp.User.ID, []api.CheckoutItem{
		{ProductID: products[0].ID, Quantity: 2},
	})
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if !resp.Success {
		t.Fatalf("checkout rejected: %s", resp.Message)
	}

	orders, err := client.ListOrders(ctx, signUp.User.ID)
	if err != nil {
		t.Fatalf("list orders: %v", err)
	}
	if len(orders) != 1 || len(orders[0].Items) != 1 {
		t.Fatalf("orders = %+v", orders)
	}
	subtotal := products[0].Price * 2
	wantTotal := subtotal + subtotal*0.1
	if math.Abs(orders[0].Total-wantTotal) > 1e-6 {
		t.Fatalf("order total = %v, want %v", orders[0].Total, wantTotal)
	}
}

func TestAdminProductLifecycle(t *testing.T) {
	client, done := newTestServer(t)
	defer done()
	ctx := context.Background()

	created, err := client.CreateProduct(ctx, api.ProductInput{
		Name: "SG Standard", Brand: "Gibson", Category: "Electric", Price: 65000, Quantity: 2,
	})
	if err != nil || !created.Success || created.Product == nil {
		t.Fatalf("create: %+v, %v", created, err)
	}
	id := created.Product.ID

	updated, err := client.UpdateProduct(ctx, id, api.ProductInput{
		Name: "SG Standard '61", Brand: "Gibson", Category: "Electric", Price: 69000, Quantity: 2,
	})
	if err != nil || !updated.Success || updated.Product.Name != "SG Standard '61" {
		t.Fatalf("update: %+v, %v", updated, err)
	}

	soldOut, err := client.MarkSoldOut(ctx, id)
	if err != nil || !soldOut.Success || soldOut.Product.Quantity != 0 {
		t.Fatalf("sold out: %+v, %v", soldOut, err)
	}

	deleted, err := client.DeleteProduct(ctx, id)
	if err != nil || !deleted.Success {
		t.Fatalf("delete: %+v, %v", deleted, err)
	}

	missing, err := client.DeleteProduct(ctx, id)
	if err != nil {
		t.Fatalf("delete missing: %v", err)
	}
	if missing.Success {
		t.Fatalf("deleting a missing product succeeded")
	}
}

func TestAdminStatsCountEntities(t *testing.T) {
	client, done := newTestServer(t)
	defer done()
	ctx := context.Background()

	signUp, err := client.SignUp(ctx, "slash@gnr.com", "slash", "topHat")
	if err != nil || !signUp.Success {
		t.Fatalf("sign up: %+v, %v", signUp, err)
	}
	products, err := client.ListProducts(ctx)
	if err != nil {
		t.Fatalf("list products: %v", err)
	}
	if _, err := client.Checkout(ctx, signUp.User.ID, []api.CheckoutItem{
		{ProductID: products[0].ID, Quantity: 1},
	}); err != nil {
		t.Fatalf("checkout: %v", err)
	}

	stats, err := client.AdminStats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalUsers != 1 || stats.TotalOrders != 1 {
		t.Fatalf("stats = %+v", stats)
	}
	if stats.TotalRevenue <= 0 || len(stats.Orders) != 1 || len(stats.Users) != 1 {
		t.Fatalf("stats payload = %+v", stats)
	}
}
