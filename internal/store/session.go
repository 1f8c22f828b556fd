package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/sirupsen/logrus"

	"guitarhub-storefront/internal/domain"
)

// Record keys. The cart and the user record are independent; the cart
// manager owns the cart key, the session controller owns the user key.
const (
	userKey = "currentUser"
	cartKey = "cart"
)

// Session wraps a KV with the two typed session records. Loads fail closed:
// a record that cannot be decoded is deleted and reported as absent, never
// surfaced as a fatal error.
type Session struct {
	kv  KV
	log *logrus.Logger
}

// NewSession builds a Session over the given KV.
func NewSession(kv KV, logger *logrus.Logger) *Session {
	return &Session{kv: kv, log: logger}
}

// SaveUser persists the current user record.
func (s *Session) SaveUser(ctx context.Context, u domain.User) error {
	return s.save(ctx, userKey, u)
}

// LoadUser returns the persisted user, or nil when absent or corrupt.
func (s *Session) LoadUser(ctx context.Context) (*domain.User, error) {
	var u domain.User
	ok, err := s.load(ctx, userKey, &u)
	if err != nil || !ok {
		return nil, err
	}
	return &u, nil
}

// ClearUser deletes the user record.
func (s *Session) ClearUser(ctx context.Context) error {
	return s.kv.Delete(ctx, userKey)
}

// SaveCart persists the cart record.
func (s *Session) SaveCart(ctx context.Context, items []domain.CartItem) error {
	return s.save(ctx, cartKey, items)
}

// LoadCart returns the persisted cart items, or nil when absent or corrupt.
func (s *Session) LoadCart(ctx context.Context) ([]domain.CartItem, error) {
	var items []domain.CartItem
	ok, err := s.load(ctx, cartKey, &items)
	if err != nil || !ok {
		return nil, err
	}
	return items, nil
}

// ClearCart deletes the cart record.
func (s *Session) ClearCart(ctx context.Context) error {
	return s.kv.Delete(ctx, cartKey)
}

func (s *Session) save(ctx context.Context, key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, key, string(raw))
}

// load reports whether a usable record was found. A corrupt record is
// purged from the store and treated as absent.
func (s *Session) load(ctx context.Context, key string, out interface{}) (bool, error) {
	raw, err := s.kv.Get(ctx, key)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		s.log.WithError(err).WithField("record", key).Warn("discarding corrupt session record")
		_ = s.kv.Delete(ctx, key)
		return false, nil
	}
	return true, nil
}
