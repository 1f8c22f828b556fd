package store

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"

	"guitarhub-storefront/internal/domain"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestSessionCartRoundTrip(t *testing.T) {
	sess := NewSession(NewMemory(), testLogger())
	ctx := context.Background()

	items := []domain.CartItem{
		{Product: domain.Product{ID: "p1", Name: "Stratocaster", Price: 55000}, Quantity: 2},
		{Product: domain.Product{ID: "p2", Name: "Hummingbird", Price: 120000}, Quantity: 1},
	}
	if err := sess.SaveCart(ctx, items); err != nil {
		t.Fatalf("save cart: %v", err)
	}

	got, err := sess.LoadCart(ctx)
	if err != nil {
		t.Fatalf("load cart: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("loaded %d items, want 2", len(got))
	}
	for i := range items {
		if got[i].Product.ID != items[i].Product.ID || got[i].Quantity != items[i].Quantity {
			t.Fatalf("item %d = %+v, want %+v", i, got[i], items[i])
		}
	}
}

func TestSessionUserRoundTrip(t *testing.T) {
	sess := NewSession(NewMemory(), testLogger())
	ctx := context.Background()

	if err := sess.SaveUser(ctx, domain.User{ID: "u1", Username: "slash", Email: "slash@gnr.com"}); err != nil {
		t.Fatalf("save user: %v", err)
	}
	got, err := sess.LoadUser(ctx)
	if err != nil {
		t.Fatalf("load user: %v", err)
	}
	if got == nil || got.ID != "u1" || got.Username != "slash" {
		t.Fatalf("loaded user = %+v", got)
	}
}

func TestSessionLoadAbsent(t *testing.T) {
	sess := NewSession(NewMemory(), testLogger())
	ctx := context.Background()

	user, err := sess.LoadUser(ctx)
	if err != nil || user != nil {
		t.Fatalf("LoadUser = %+v, %v; want nil, nil", user, err)
	}
	items, err := sess.LoadCart(ctx)
	if err != nil || items != nil {
		t.Fatalf("LoadCart = %+v, %v; want nil, nil", items, err)
	}
}

func TestSessionCorruptRecordPurged(t *testing.T) {
	kv := NewMemory()
	sess := NewSession(kv, testLogger())
	ctx := context.Background()

	if err := kv.Set(ctx, cartKey, "{not json"); err != nil {
		t.Fatalf("seed corrupt record: %v", err)
	}

	items, err := sess.LoadCart(ctx)
	if err != nil {
		t.Fatalf("load corrupt cart: %v", err)
	}
	if items != nil {
		t.Fatalf("expected empty cart, got %+v", items)
	}
	if _, err := kv.Get(ctx, cartKey); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("corrupt record still present, err = %v", err)
	}
}

func TestSessionClear(t *testing.T) {
	kv := NewMemory()
	sess := NewSession(kv, testLogger())
	ctx := context.Background()

	if err := sess.SaveUser(ctx, domain.User{ID: "u1"}); err != nil {
		t.Fatalf("save user: %v", err)
	}
	if err := sess.ClearUser(ctx); err != nil {
		t.Fatalf("clear user: %v", err)
	}
	if _, err := kv.Get(ctx, userKey); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("user record still present, err = %v", err)
	}
}

func TestFileKVRoundTrip(t *testing.T) {
	kv, err := NewFile(t.TempDir())
	if err != nil {
		t.Fatalf("new file kv: %v", err)
	}
	ctx := context.Background()

	if _, err := kv.Get(ctx, "cart"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := kv.Set(ctx, "cart", `[{"quantity":1}]`); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, err := kv.Get(ctx, "cart")
	if err != nil || v != `[{"quantity":1}]` {
		t.Fatalf("get = %q, %v", v, err)
	}
	if err := kv.Delete(ctx, "cart"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := kv.Delete(ctx, "cart"); err != nil {
		t.Fatalf("delete absent key: %v", err)
	}
	if _, err := kv.Get(ctx, "cart"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}
