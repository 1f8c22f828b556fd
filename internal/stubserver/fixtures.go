package stubserver

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"guitarhub-storefront/internal/domain"
	"guitarhub-storefront/internal/pricing"
)

// fixtures is the in-memory data behind the stub endpoints. A single mutex
// is plenty for a dev fixture.
type fixtures struct {
	mu        sync.Mutex
	products  []domain.Product
	users     []domain.User
	passwords map[string]string
	orders    []domain.Order

	adminEmail    string
	adminPassword string
	admin         domain.AdminUser
}

func newFixtures() *fixtures {
	return &fixtures{
		products:      seedProducts(),
		passwords:     make(map[string]string),
		adminEmail:    "admin@guitar.com",
		adminPassword: "admin123",
		admin:         domain.AdminUser{Name: "Store Admin", Email: "admin@guitar.com"},
	}
}

func (f *fixtures) listProducts() []domain.Product {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Product, len(f.products))
	copy(out, f.products)
	return out
}

func (f *fixtures) signUp(email, username, password string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			return nil, fmt.Errorf("email already registered")
		}
	}
	user := domain.User{ID: uuid.NewString(), Username: username, Email: email}
	f.users = append(f.users, user)
	f.passwords[strings.ToLower(email)] = password
	return &user, nil
}

func (f *fixtures) login(email, password string) (*domain.User, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.passwords[strings.ToLower(email)] != password {
		return nil, false
	}
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			user := u
			return &user, true
		}
	}
	return nil, false
}

func (f *fixtures) adminLogin(email, password string) (*domain.AdminUser, bool) {
	if !strings.EqualFold(email, f.adminEmail) || password != f.adminPassword {
		return nil, false
	}
	admin := f.admin
	return &admin, true
}

type checkoutLine struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

func (f *fixtures) checkout(userID string, lines []checkoutLine) (*domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.userExists(userID) {
		return nil, fmt.Errorf("unknown user")
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("cart is empty")
	}

	var cartItems []domain.CartItem
	var orderItems []domain.OrderItem
	for _, line := range lines {
		i, ok := f.findProduct(line.ProductID)
		if !ok {
			return nil, fmt.Errorf("unknown product %s", line.ProductID)
		}
		p := f.products[i]
		cartItems = append(cartItems, domain.CartItem{Product: p, Quantity: line.Quantity})
		orderItems = append(orderItems, domain.OrderItem{
			Name:     p.Name,
			Price:    p.Price,
			Quantity: line.Quantity,
			Subtotal: p.Price * float64(line.Quantity),
		})
		if f.products[i].Quantity > line.Quantity {
			f.products[i].Quantity -= line.Quantity
		} else {
			f.products[i].Quantity = 0
		}
	}

	order := domain.Order{
		ID:     uuid.NewString(),
		UserID: userID,
		Items:  orderItems,
		Total:  pricing.Calculate(cartItems).Total,
		Status: "completed",
	}
	f.orders = append(f.orders, order)
	return &order, nil
}

func (f *fixtures) ordersFor(userID string) []domain.Order {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []domain.Order{}
	for _, o := range f.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out
}

func (f *fixtures) stats() domain.Stats {
	f.mu.Lock()
	defer f.mu.Unlock()
	var revenue float64
	for _, o := range f.orders {
		revenue += o.Total
	}
	return domain.Stats{
		TotalProducts: len(f.products),
		TotalOrders:   len(f.orders),
		TotalRevenue:  revenue,
		TotalUsers:    len(f.users),
		Orders:        append([]domain.Order{}, f.orders...),
		Users:         append([]domain.User{}, f.users...),
	}
}

func (f *fixtures) createProduct(in productRequest) domain.Product {
	f.mu.Lock()
	defer f.mu.Unlock()
	p := domain.Product{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Brand:       in.Brand,
		Category:    in.Category,
		Price:       in.Price,
		Quantity:    in.Quantity,
		Description: in.Description,
		Image:       in.Image,
		Year:        in.Year,
	}
	f.products = append(f.products, p)
	return p
}

func (f *fixtures) updateProduct(id string, in productRequest) (*domain.Product, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i, ok := f.findProduct(id)
	if !ok {
		return nil, false
	}
	p := &f.products[i]
	p.Name = in.Name
	p.Brand = in.Brand
	p.Category = in.Category
	p.Price = in.Price
	p.Quantity = in.Quantity
	p.Description = in.Description
	if in.Image != "" {
		p.Image = in.Image
	}
	if in.Year != "" {
		p.Year = in.Year
	}
	out := *p
	return &out, true
}

func (f *fixtures) deleteProduct(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	i, ok := f.findProduct(id)
	if !ok {
		return false
	}
	f.products = append(f.products[:i], f.products[i+1:]...)
	return true
}

func (f *fixtures) markSoldOut(id string) (*domain.Product, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i, ok := f.findProduct(id)
	if !ok {
		return nil, false
	}
	f.products[i].Quantity = 0
	out := f.products[i]
	return &out, true
}

func (f *fixtures) findProduct(id string) (int, bool) {
	for i, p := range f.products {
		if p.ID == id {
			return i, true
		}
	}
	return 0, false
}

func (f *fixtures) userExists(id string) bool {
	for _, u := range f.users {
		if u.ID == id {
			return true
		}
	}
	return false
}
