package main

import (
	"context"
	"fmt"
	"time"

	"guitarhub-storefront/internal/api"
	"guitarhub-storefront/internal/catalog"
	"guitarhub-storefront/internal/navigation"
	"guitarhub-storefront/internal/pricing"
)

// Each view renders one page, handles one round of input, and returns true
// when the user quits (or stdin closes).

func (a *app) authView(ctx context.Context) bool {
	fmt.Fprintln(a.out, "\n=== GuitarHub — Sign In ===")
	fmt.Fprintln(a.out, "[l] log in  [s] sign up  [a] admin login  [q] quit")
	choice, ok := a.prompt("choice")
	if !ok {
		return true
	}
	switch choice {
	case "l":
		email, ok := a.prompt("email")
		if !ok {
			return true
		}
		password, ok := a.prompt("password")
		if !ok {
			return true
		}
		_ = a.ctrl.Login(ctx, email, password)
	case "s":
		email, ok := a.prompt("email")
		if !ok {
			return true
		}
		username, ok := a.prompt("username")
		if !ok {
			return true
		}
		password, ok := a.prompt("password")
		if !ok {
			return true
		}
		_ = a.ctrl.SignUp(ctx, email, username, password)
	case "a":
		a.nav.SetMode(navigation.ModeAdmin)
	case "q":
		return true
	}
	return false
}

func (a *app) homeView(ctx context.Context) bool {
	fmt.Fprintln(a.out, "\n=== GuitarHub ===")
	if user := a.ctrl.User(); user != nil {
		fmt.Fprintf(a.out, "Signed in as %s — %d item(s) in cart\n", user.Username, a.cart.Len())
	}
	fmt.Fprintln(a.out, "[c] catalog  [k] cart  [p] profile  [a] admin login  [o] log out  [q] quit")
	choice, ok := a.prompt("choice")
	if !ok {
		return true
	}
	switch choice {
	case "c":
		a.nav.Go(navigation.PageCatalog)
	case "k":
		a.nav.Go(navigation.PageCart)
	case "p":
		a.nav.Go(navigation.PageProfile)
	case "a":
		a.nav.SetMode(navigation.ModeAdmin)
	case "o":
		a.ctrl.Logout(ctx)
	case "q":
		return true
	}
	return false
}

func (a *app) catalogView(ctx context.Context) bool {
	fmt.Fprintf(a.out, "\n=== Catalog — %s ===\n", a.category)
	filtered := catalog.Filter(a.products, a.category)
	for i, p := range filtered {
		fmt.Fprintf(a.out, "%2d. %-28s %-10s Rs %.0f  (%d in stock)\n", i+1, p.Name, p.Brand, p.Price, p.Quantity)
	}
	fmt.Fprintf(a.out, "categories: %v\n", catalog.Categories(a.products))
	fmt.Fprintln(a.out, "[number] view product  [f <category>] filter  [r] refresh  [b] back  [q] quit")
	choice, ok := a.prompt("choice")
	if !ok {
		return true
	}
	switch {
	case choice == "b":
		a.nav.Go(navigation.PageHome)
	case choice == "r":
		a.refreshCatalog(ctx)
	case choice == "q":
		return true
	case len(choice) > 2 && choice[:2] == "f ":
		a.category = choice[2:]
	default:
		var n int
		if _, err := fmt.Sscanf(choice, "%d", &n); err == nil && n >= 1 && n <= len(filtered) {
			a.nav.ViewProduct(filtered[n-1])
		}
	}
	return false
}

func (a *app) productDetailView(ctx context.Context) bool {
	p := a.nav.Selected()
	if p == nil {
		a.nav.Go(navigation.PageCatalog)
		return false
	}
	fmt.Fprintf(a.out, "\n=== %s ===\n%s %s (%s)\nRs %.0f — %d in stock\n%s\n",
		p.Name, p.Brand, p.Name, p.Year, p.Price, p.Quantity, p.Description)
	fmt.Fprintln(a.out, "[a] add to cart  [b] back to catalog  [q] quit")
	choice, ok := a.prompt("choice")
	if !ok {
		return true
	}
	switch choice {
	case "a":
		qty, ok := a.promptInt("quantity")
		if !ok {
			return true
		}
		a.cart.Add(ctx, *p, qty)
		fmt.Fprintln(a.out, ">> Added to cart!")
	case "b":
		a.nav.Go(navigation.PageCatalog)
	case "q":
		return true
	}
	return false
}

func (a *app) cartView(ctx context.Context) bool {
	fmt.Fprintln(a.out, "\n=== Your Cart ===")
	items := a.cart.Items()
	if len(items) == 0 {
		fmt.Fprintln(a.out, "Your cart is empty")
	}
	for i, item := range items {
		fmt.Fprintf(a.out, "%2d. %-28s Rs %.0f x %d = Rs %.0f\n",
			i+1, item.Product.Name, item.Product.Price, item.Quantity, item.Subtotal())
	}
	totals := pricing.Calculate(items)
	fmt.Fprintf(a.out, "Subtotal: Rs %.0f  Shipping: Free  Tax: Rs %.0f  Total: Rs %.0f\n",
		totals.Subtotal, totals.Tax, totals.Total)
	fmt.Fprintln(a.out, "[u <n> <qty>] update  [d <n>] remove  [c] checkout  [b] back  [q] quit")
	choice, ok := a.prompt("choice")
	if !ok {
		return true
	}
	var n, qty int
	switch {
	case choice == "b":
		a.nav.Go(navigation.PageHome)
	case choice == "c":
		a.nav.Go(navigation.PageCheckout)
	case choice == "q":
		return true
	default:
		if _, err := fmt.Sscanf(choice, "u %d %d", &n, &qty); err == nil && n >= 1 && n <= len(items) {
			a.cart.UpdateQuantity(ctx, items[n-1].Product.ID, qty)
		} else if _, err := fmt.Sscanf(choice, "d %d", &n); err == nil && n >= 1 && n <= len(items) {
			a.cart.Remove(ctx, items[n-1].Product.ID)
		}
	}
	return false
}

func (a *app) checkoutView(ctx context.Context) bool {
	fmt.Fprintln(a.out, "\n=== Checkout ===")
	items := a.cart.Items()
	totals := pricing.Calculate(items)
	for _, item := range items {
		fmt.Fprintf(a.out, "  %s x %d — Rs %.0f\n", item.Product.Name, item.Quantity, item.Subtotal())
	}
	fmt.Fprintf(a.out, "Total (incl. tax): Rs %.0f\n", totals.Total)

	fields := []string{"first name", "last name", "email", "street address", "city", "zip code", "card number"}
	for _, field := range fields {
		value, ok := a.prompt(field)
		if !ok {
			return true
		}
		if value == "" {
			fmt.Fprintln(a.out, ">> Please fill in all fields")
			return false
		}
	}
	_ = a.ctrl.Checkout(ctx)
	return false
}

func (a *app) profileView(ctx context.Context) bool {
	fmt.Fprintln(a.out, "\n=== My Profile ===")
	user := a.ctrl.User()
	if user == nil {
		a.nav.Go(navigation.PageHome)
		return false
	}
	orders, err := a.apic.ListOrders(ctx, user.ID)
	if err != nil {
		fmt.Fprintln(a.out, ">> Could not load orders")
	}
	if len(orders) == 0 {
		fmt.Fprintln(a.out, "You haven't placed any orders yet.")
	}
	for _, o := range orders {
		fmt.Fprintf(a.out, "Order #%s [%s] — Rs %.0f\n", o.ID, o.Status, o.Total)
		for _, item := range o.Items {
			fmt.Fprintf(a.out, "  %s x %d @ Rs %.0f\n", item.Name, item.Quantity, item.Price)
		}
	}
	fmt.Fprintln(a.out, "[b] back  [q] quit")
	choice, ok := a.prompt("choice")
	if !ok || choice == "q" {
		return true
	}
	a.nav.Go(navigation.PageHome)
	return false
}

func (a *app) adminLoginView(ctx context.Context) bool {
	fmt.Fprintln(a.out, "\n=== Admin Login ===")
	fmt.Fprintln(a.out, "[enter] log in  [b] back to store  [q] quit")
	choice, ok := a.prompt("choice")
	if !ok {
		return true
	}
	switch choice {
	case "b":
		a.nav.SetMode(navigation.ModeCustomer)
		return false
	case "q":
		return true
	}
	email, ok := a.prompt("admin email")
	if !ok {
		return true
	}
	password, ok := a.prompt("admin password")
	if !ok {
		return true
	}
	if err := a.ctrl.AdminLogin(ctx, email, password); err == nil {
		if err := a.sync.Refresh(ctx); err != nil {
			a.log.WithError(err).Warn("load admin products")
		}
	}
	return false
}

func (a *app) adminDashboardView(ctx context.Context) bool {
	fmt.Fprintln(a.out, "\n=== Admin Dashboard ===")
	stats, err := a.sync.Stats(ctx)
	if err != nil {
		fmt.Fprintln(a.out, ">> Failed to load stats")
	} else {
		fmt.Fprintf(a.out, "Products: %d  Orders: %d  Revenue: Rs %.0f  Users: %d\n",
			stats.TotalProducts, stats.TotalOrders, stats.TotalRevenue, stats.TotalUsers)
	}
	fmt.Fprintln(a.out, "[p] products  [o] orders  [u] users  [l] log out  [q] quit")
	choice, ok := a.prompt("choice")
	if !ok {
		return true
	}
	switch choice {
	case "p":
		a.nav.Go(navigation.PageAdminProducts)
	case "o":
		a.nav.Go(navigation.PageAdminOrders)
	case "u":
		a.nav.Go(navigation.PageAdminUsers)
	case "l":
		a.ctrl.AdminLogout()
	case "q":
		return true
	}
	return false
}

func (a *app) adminProductsView(ctx context.Context) bool {
	fmt.Fprintln(a.out, "\n=== Manage Products ===")
	products := a.sync.Products()
	for i, p := range products {
		status := ""
		if p.Quantity == 0 {
			status = " [SOLD OUT]"
		}
		fmt.Fprintf(a.out, "%2d. %-28s Rs %.0f  stock %d%s\n", i+1, p.Name, p.Price, p.Quantity, status)
	}
	fmt.Fprintln(a.out, "[a] add  [e <n>] edit  [d <n>] delete  [s <n>] sold out  [b] dashboard  [q] quit")
	choice, ok := a.prompt("choice")
	if !ok {
		return true
	}
	var n int
	switch {
	case choice == "a":
		in, ok := a.promptProductInput()
		if !ok {
			return true
		}
		if err := a.sync.Create(ctx, in); err != nil {
			fmt.Fprintln(a.out, ">> Failed to add product")
		} else {
			fmt.Fprintln(a.out, ">> Product added successfully!")
		}
	case choice == "b":
		a.nav.Go(navigation.PageAdminDashboard)
	case choice == "q":
		return true
	default:
		if _, err := fmt.Sscanf(choice, "e %d", &n); err == nil && n >= 1 && n <= len(products) {
			in, ok := a.promptProductInput()
			if !ok {
				return true
			}
			if err := a.sync.Update(ctx, products[n-1].ID, in); err != nil {
				fmt.Fprintln(a.out, ">> Failed to update product")
			}
		} else if _, err := fmt.Sscanf(choice, "d %d", &n); err == nil && n >= 1 && n <= len(products) {
			if err := a.sync.Delete(ctx, products[n-1].ID); err != nil {
				fmt.Fprintln(a.out, ">> Failed to delete product")
			}
		} else if _, err := fmt.Sscanf(choice, "s %d", &n); err == nil && n >= 1 && n <= len(products) {
			if err := a.sync.MarkSoldOut(ctx, products[n-1].ID); err != nil {
				fmt.Fprintln(a.out, ">> Failed to mark as sold out")
			}
		}
	}
	return false
}

func (a *app) promptProductInput() (api.ProductInput, bool) {
	name, ok := a.prompt("name")
	if !ok {
		return api.ProductInput{}, false
	}
	brand, ok := a.prompt("brand")
	if !ok {
		return api.ProductInput{}, false
	}
	category, ok := a.prompt("category")
	if !ok {
		return api.ProductInput{}, false
	}
	price, ok := a.promptFloat("price")
	if !ok {
		return api.ProductInput{}, false
	}
	qty, ok := a.promptInt("stock quantity")
	if !ok {
		return api.ProductInput{}, false
	}
	description, ok := a.prompt("description")
	if !ok {
		return api.ProductInput{}, false
	}
	return api.ProductInput{
		Name:        name,
		Brand:       brand,
		Category:    category,
		Price:       price,
		Quantity:    qty,
		Description: description,
		Year:        fmt.Sprintf("%d", time.Now().Year()),
	}, true
}

func (a *app) adminOrdersView(ctx context.Context) bool {
	fmt.Fprintln(a.out, "\n=== All Orders ===")
	stats, err := a.sync.Stats(ctx)
	if err != nil {
		fmt.Fprintln(a.out, ">> Failed to load orders")
	} else {
		for _, o := range stats.Orders {
			fmt.Fprintf(a.out, "Order #%s user %s [%s] — Rs %.0f\n", o.ID, o.UserID, o.Status, o.Total)
		}
	}
	return a.adminBack()
}

func (a *app) adminUsersView(ctx context.Context) bool {
	fmt.Fprintln(a.out, "\n=== All Users ===")
	stats, err := a.sync.Stats(ctx)
	if err != nil {
		fmt.Fprintln(a.out, ">> Failed to load users")
	} else {
		for _, u := range stats.Users {
			fmt.Fprintf(a.out, "%s <%s>\n", u.Username, u.Email)
		}
	}
	return a.adminBack()
}

func (a *app) adminBack() bool {
	fmt.Fprintln(a.out, "[b] dashboard  [q] quit")
	choice, ok := a.prompt("choice")
	if !ok || choice == "q" {
		return true
	}
	a.nav.Go(navigation.PageAdminDashboard)
	return false
}
