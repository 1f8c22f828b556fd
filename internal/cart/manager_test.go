package cart

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"

	"guitarhub-storefront/internal/domain"
)

type stubStore struct {
	saves     int
	clears    int
	lastSaved []domain.CartItem
	saveErr   error
	clearErr  error
}

func (s *stubStore) SaveCart(_ context.Context, items []domain.CartItem) error {
	s.saves++
	s.lastSaved = append([]domain.CartItem(nil), items...)
	return s.saveErr
}

func (s *stubStore) ClearCart(_ context.Context) error {
	s.clears++
	return s.clearErr
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newManager() (*Manager, *stubStore) {
	store := &stubStore{}
	return New(store, testLogger()), store
}

func guitar(id string, price float64) domain.Product {
	return domain.Product{ID: id, Name: "Guitar " + id, Price: price, Quantity: 10}
}

func TestAddMergesByProductID(t *testing.T) {
	m, _ := newManager()
	ctx := context.Background()

	m.Add(ctx, guitar("p1", 100), 1)
	m.Add(ctx, guitar("p2", 50), 2)
	m.Add(ctx, guitar("p1", 100), 3)

	items := m.Items()
	if len(items) != 2 {
		t.Fatalf("cart has %d items, want 2", len(items))
	}
	if items[0].Product.ID != "p1" || items[0].Quantity != 4 {
		t.Fatalf("first item = %+v, want p1 x4", items[0])
	}
	if items[1].Product.ID != "p2" || items[1].Quantity != 2 {
		t.Fatalf("second item = %+v, want p2 x2", items[1])
	}
}

func TestAddRetainsExistingSnapshot(t *testing.T) {
	m, _ := newManager()
	ctx := context.Background()

	first := guitar("p1", 100)
	first.Name = "Original"
	m.Add(ctx, first, 1)

	changed := guitar("p1", 999)
	changed.Name = "Repriced"
	m.Add(ctx, changed, 1)

	items := m.Items()
	if items[0].Product.Name != "Original" || items[0].Product.Price != 100 {
		t.Fatalf("snapshot re-copied on merge: %+v", items[0].Product)
	}
	if items[0].Quantity != 2 {
		t.Fatalf("quantity = %d, want 2", items[0].Quantity)
	}
}

func TestAddDefaultsQuantityToOne(t *testing.T) {
	m, _ := newManager()
	m.Add(context.Background(), guitar("p1", 100), 0)
	if items := m.Items(); items[0].Quantity != 1 {
		t.Fatalf("quantity = %d, want 1", items[0].Quantity)
	}
}

func TestUpdateQuantitySetsAbsolute(t *testing.T) {
	m, _ := newManager()
	ctx := context.Background()

	m.Add(ctx, guitar("p1", 100), 2)
	m.UpdateQuantity(ctx, "p1", 5)

	if items := m.Items(); items[0].Quantity != 5 {
		t.Fatalf("quantity = %d, want 5 (absolute set, not delta)", items[0].Quantity)
	}
}

func TestUpdateQuantityZeroAndNegativeRemove(t *testing.T) {
	ctx := context.Background()
	for _, qty := range []int{0, -1} {
		m, _ := newManager()
		m.Add(ctx, guitar("p1", 100), 2)
		m.UpdateQuantity(ctx, "p1", qty)
		if m.Len() != 0 {
			t.Fatalf("UpdateQuantity(p1, %d) left %d items, want 0", qty, m.Len())
		}
	}
}

func TestRemoveAbsentIsNoOp(t *testing.T) {
	m, store := newManager()
	ctx := context.Background()

	m.Add(ctx, guitar("p1", 100), 1)
	savesBefore := store.saves
	m.Remove(ctx, "missing")

	if m.Len() != 1 {
		t.Fatalf("cart changed by removing absent id")
	}
	if store.saves != savesBefore {
		t.Fatalf("removing absent id triggered a save")
	}
}

func TestMutationsSyncStore(t *testing.T) {
	m, store := newManager()
	ctx := context.Background()

	m.Add(ctx, guitar("p1", 100), 1)
	if store.saves != 1 {
		t.Fatalf("saves = %d after add, want 1", store.saves)
	}
	if len(store.lastSaved) != 1 || store.lastSaved[0].Product.ID != "p1" {
		t.Fatalf("saved snapshot = %+v", store.lastSaved)
	}

	m.UpdateQuantity(ctx, "p1", 3)
	if store.saves != 2 {
		t.Fatalf("saves = %d after update, want 2", store.saves)
	}
}

func TestRemoveToEmptyDoesNotPurgeStore(t *testing.T) {
	m, store := newManager()
	ctx := context.Background()

	m.Add(ctx, guitar("p1", 100), 1)
	m.Remove(ctx, "p1")

	// Emptying the cart through Remove leaves the stored record alone;
	// only Clear (logout, checkout) deletes it.
	if store.clears != 0 {
		t.Fatalf("Remove purged the stored cart record")
	}
	if m.Len() != 0 {
		t.Fatalf("cart not empty after remove")
	}
}

func TestClearEmptiesAndPurges(t *testing.T) {
	m, store := newManager()
	ctx := context.Background()

	m.Add(ctx, guitar("p1", 100), 1)
	m.Clear(ctx)

	if m.Len() != 0 {
		t.Fatalf("cart not empty after clear")
	}
	if store.clears != 1 {
		t.Fatalf("clears = %d, want 1", store.clears)
	}
}

func TestRestoreDropsInvalidQuantities(t *testing.T) {
	m, _ := newManager()
	m.Restore([]domain.CartItem{
		{Product: guitar("p1", 100), Quantity: 2},
		{Product: guitar("p2", 50), Quantity: 0},
		{Product: guitar("p3", 75), Quantity: -1},
	})
	items := m.Items()
	if len(items) != 1 || items[0].Product.ID != "p1" {
		t.Fatalf("restored items = %+v, want only p1", items)
	}
}

func TestItemsReturnsCopy(t *testing.T) {
	m, _ := newManager()
	m.Add(context.Background(), guitar("p1", 100), 1)

	items := m.Items()
	items[0].Quantity = 99

	if m.Items()[0].Quantity != 1 {
		t.Fatalf("mutating the snapshot leaked into the cart")
	}
}
