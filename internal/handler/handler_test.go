package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"floreria-be/internal/cart"
	"floreria-be/internal/checkout"
	"floreria-be/internal/config"
	"floreria-be/internal/inventory"
	"floreria-be/internal/likes"
	"floreria-be/internal/reports"
	"floreria-be/internal/sales"
	"floreria-be/internal/session"
	"floreria-be/internal/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	router  http.Handler
	catalog *inventory.Store
	ledger  *sales.Ledger
	seq     int
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	store := session.NewMemoryStore()
	catalog := inventory.NewStore(inventory.SeedProducts(), inventory.SeedCategories())
	ledger := sales.NewLedger(catalog, sales.SeedSales())

	userRepo := user.NewRepository(store)
	userSvc := user.NewService(userRepo, store)
	likesSvc := likes.NewService(store)
	cartSvc := cart.NewService(cart.NewRepository(store), catalog)
	checkoutSvc := checkout.NewService(cartSvc, ledger)
	reportsSvc := reports.NewService(ledger, catalog)

	cfg := &config.Config{CorsOrigins: []string{"*"}}
	router := NewRouter(cfg, Handlers{
		Auth:     NewAuthHandler(userSvc),
		Store:    NewStoreHandler(catalog, likesSvc),
		Cart:     NewCartHandler(cartSvc),
		Checkout: NewCheckoutHandler(checkoutSvc, store),
		Orders:   NewOrdersHandler(ledger),
		Reports:  NewReportsHandler(reportsSvc),
		Users:    NewUsersHandler(userSvc),
	})

	return &testEnv{router: router, catalog: catalog, ledger: ledger}
}

func (e *testEnv) do(t *testing.T, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	// A fresh client address per request keeps the rate limiter out of the way.
	e.seq++
	req.RemoteAddr = fmt.Sprintf("10.1.%d.%d:54321", e.seq/200, e.seq%200)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) login(t *testing.T, email, password string) string {
	t.Helper()
	rec := e.do(t, "POST", "/api/auth/login", "",
		`{"email":"`+email+`","password":"`+password+`"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.NotEmpty(t, res.Token)
	return res.Token
}

func (e *testEnv) register(t *testing.T, name, email string) string {
	t.Helper()
	rec := e.do(t, "POST", "/api/auth/register", "",
		`{"name":"`+name+`","email":"`+email+`","password":"secret123"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var res struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	return res.Token
}

func TestHealthz(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, "GET", "/healthz", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthRoutes(t *testing.T) {
	env := newTestEnv(t)

	t.Run("builtin admin login", func(t *testing.T) {
		rec := env.do(t, "POST", "/api/auth/login", "",
			`{"email":"admin@floreria.com","password":"admin123"}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"role":"admin"`)
	})

	t.Run("wrong password", func(t *testing.T) {
		rec := env.do(t, "POST", "/api/auth/login", "",
			`{"email":"admin@floreria.com","password":"nope"}`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("validation error carries field map", func(t *testing.T) {
		rec := env.do(t, "POST", "/api/auth/login", "", `{"email":"not-an-email"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Password")
	})

	t.Run("register then login", func(t *testing.T) {
		token := env.register(t, "Ana", "ana@example.com")
		assert.NotEmpty(t, token)

		rec := env.do(t, "POST", "/api/auth/register", "",
			`{"name":"Ana","email":"ana@example.com","password":"secret123"}`)
		assert.Equal(t, http.StatusConflict, rec.Code)

		env.login(t, "ana@example.com", "secret123")
	})

	t.Run("me requires auth", func(t *testing.T) {
		rec := env.do(t, "GET", "/api/auth/me", "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		token := env.login(t, "admin@floreria.com", "admin123")
		rec = env.do(t, "GET", "/api/auth/me", token, "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "admin@floreria.com")
	})
}

func TestStoreRoutes(t *testing.T) {
	env := newTestEnv(t)

	t.Run("list products", func(t *testing.T) {
		rec := env.do(t, "GET", "/api/store/products", "", "")
		assert.Equal(t, http.StatusOK, rec.Code)

		var products []inventory.Product
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
		assert.Len(t, products, 6)
	})

	t.Run("search filter", func(t *testing.T) {
		rec := env.do(t, "GET", "/api/store/products?search=rosas", "", "")
		var products []inventory.Product
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
		assert.Len(t, products, 1)
		assert.Equal(t, "1", products[0].ID)
	})

	t.Run("product detail", func(t *testing.T) {
		rec := env.do(t, "GET", "/api/store/products/1", "", "")
		assert.Equal(t, http.StatusOK, rec.Code)

		rec = env.do(t, "GET", "/api/store/products/999", "", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("categories and recommendations", func(t *testing.T) {
		rec := env.do(t, "GET", "/api/store/categories", "", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "ramos")

		rec = env.do(t, "GET", "/api/store/recommendations", "", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Ramo de Rosas Rojas")
	})

	t.Run("likes", func(t *testing.T) {
		token := env.register(t, "Eva", "eva@example.com")

		rec := env.do(t, "POST", "/api/store/products/1/like", "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		rec = env.do(t, "POST", "/api/store/products/1/like", token, "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"liked":true`)

		rec = env.do(t, "GET", "/api/store/products?category=liked", token, "")
		var products []inventory.Product
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
		assert.Len(t, products, 1)

		rec = env.do(t, "POST", "/api/store/products/1/like", token, "")
		assert.Contains(t, rec.Body.String(), `"liked":false`)
	})

	t.Run("admin product update", func(t *testing.T) {
		customer := env.register(t, "Leo", "leo@example.com")
		rec := env.do(t, "PATCH", "/api/admin/products/1", customer, `{"stock":99}`)
		assert.Equal(t, http.StatusForbidden, rec.Code)

		admin := env.login(t, "admin@floreria.com", "admin123")
		rec = env.do(t, "PATCH", "/api/admin/products/1", admin, `{"stock":99}`)
		assert.Equal(t, http.StatusOK, rec.Code)

		product, ok := env.catalog.Product("1")
		require.True(t, ok)
		assert.Equal(t, 99, product.Stock)

		rec = env.do(t, "PATCH", "/api/admin/products/999", admin, `{"stock":1}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCartAndCheckout(t *testing.T) {
	env := newTestEnv(t)
	token := env.register(t, "Mia", "mia@example.com")

	t.Run("cart requires auth", func(t *testing.T) {
		rec := env.do(t, "GET", "/api/cart", "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("empty cart checkout fails", func(t *testing.T) {
		rec := env.do(t, "POST", "/api/checkout", token,
			`{"paymentMethod":"cash","invoiceType":"boleta"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("add and list", func(t *testing.T) {
		rec := env.do(t, "POST", "/api/cart", token, `{"productId":"1","quantity":2}`)
		assert.Equal(t, http.StatusOK, rec.Code)

		rec = env.do(t, "GET", "/api/cart", token, "")
		var items []cart.Item
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
		require.Len(t, items, 1)
		assert.Equal(t, 2, items[0].Quantity)
	})

	t.Run("unknown product", func(t *testing.T) {
		rec := env.do(t, "POST", "/api/cart", token, `{"productId":"999"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("insufficient stock", func(t *testing.T) {
		rec := env.do(t, "POST", "/api/cart", token, `{"productId":"1","quantity":1000}`)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("greeting cards listing", func(t *testing.T) {
		rec := env.do(t, "GET", "/api/checkout/greeting-cards", token, "")
		assert.Equal(t, http.StatusOK, rec.Code)

		var cards []checkout.GreetingCard
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cards))
		assert.Len(t, cards, 8)
	})

	t.Run("checkout with factura and card", func(t *testing.T) {
		before, _ := env.catalog.Product("1")

		rec := env.do(t, "POST", "/api/checkout", token,
			`{"paymentMethod":"card","invoiceType":"factura","greetingCardId":"gc1","message":"Feliz día","ruc":"20123456789"}`)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var res checkout.Result
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		// 2x45 + 5.00 card, 18% tax
		assert.Equal(t, 95.0, res.Subtotal)
		assert.InDelta(t, 17.1, res.Tax, 0.0001)
		assert.Equal(t, "1004", res.SaleID)

		after, _ := env.catalog.Product("1")
		assert.Equal(t, before.Stock-2, after.Stock)

		rec = env.do(t, "GET", "/api/cart", token, "")
		assert.Equal(t, "[]\n", rec.Body.String())
	})
}

func TestOrderRoutes(t *testing.T) {
	env := newTestEnv(t)
	admin := env.login(t, "admin@floreria.com", "admin123")
	customer := env.register(t, "Noa", "noa@example.com")

	t.Run("staff sees seeded ledger", func(t *testing.T) {
		rec := env.do(t, "GET", "/api/orders", admin, "")
		assert.Equal(t, http.StatusOK, rec.Code)

		var list []sales.Sale
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
		assert.Len(t, list, 3)
	})

	t.Run("customer sees only own orders", func(t *testing.T) {
		rec := env.do(t, "GET", "/api/orders", customer, "")
		var list []sales.Sale
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
		assert.Empty(t, list)

		rec = env.do(t, "GET", "/api/orders/1001", customer, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("detail", func(t *testing.T) {
		rec := env.do(t, "GET", "/api/orders/1001", admin, "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "María González")
	})

	t.Run("update requires admin", func(t *testing.T) {
		rec := env.do(t, "PATCH", "/api/orders/1001", customer, `{"status":"processing"}`)
		assert.Equal(t, http.StatusForbidden, rec.Code)

		rec = env.do(t, "PATCH", "/api/orders/1001", admin, `{"status":"processing"}`)
		assert.Equal(t, http.StatusOK, rec.Code)

		sale, ok := env.ledger.GetSale("1001")
		require.True(t, ok)
		assert.Equal(t, sales.StatusProcessing, sale.Status)
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		rec := env.do(t, "PATCH", "/api/orders/1001", admin, `{"status":"teleported"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("shipping milestone", func(t *testing.T) {
		rec := env.do(t, "PUT", "/api/orders/1001/shipping", admin,
			`{"milestone":"dispatched","timestamp":"2024-06-01T10:00:00Z"}`)
		assert.Equal(t, http.StatusOK, rec.Code)

		sale, _ := env.ledger.GetSale("1001")
		assert.False(t, sale.ShippingStatus[sales.MilestoneDispatched].IsZero())
	})

	t.Run("cancel", func(t *testing.T) {
		rec := env.do(t, "POST", "/api/orders/1001/cancel", admin, "")
		assert.Equal(t, http.StatusOK, rec.Code)

		sale, _ := env.ledger.GetSale("1001")
		assert.Equal(t, sales.StatusCancelled, sale.Status)
	})

	t.Run("unknown order", func(t *testing.T) {
		rec := env.do(t, "GET", "/api/orders/9999", admin, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestReportRoutes(t *testing.T) {
	env := newTestEnv(t)
	admin := env.login(t, "admin@floreria.com", "admin123")
	supervisor := env.login(t, "supervisor@floreria.com", "super123")
	customer := env.register(t, "Gil", "gil@example.com")

	t.Run("role gate", func(t *testing.T) {
		rec := env.do(t, "GET", "/api/reports/summary", "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		rec = env.do(t, "GET", "/api/reports/summary", customer, "")
		assert.Equal(t, http.StatusForbidden, rec.Code)

		rec = env.do(t, "GET", "/api/reports/summary", supervisor, "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("summary", func(t *testing.T) {
		rec := env.do(t, "GET", "/api/reports/summary", admin, "")
		var sum reports.Summary
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sum))
		assert.Equal(t, 3, sum.OrderCount)
	})

	t.Run("daily sales validates days", func(t *testing.T) {
		rec := env.do(t, "GET", "/api/reports/sales?days=0", admin, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = env.do(t, "GET", "/api/reports/sales?days=7", admin, "")
		var points []reports.DailyPoint
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &points))
		assert.Len(t, points, 7)
	})

	t.Run("low stock and categories", func(t *testing.T) {
		rec := env.do(t, "GET", "/api/reports/low-stock", admin, "")
		assert.Equal(t, http.StatusOK, rec.Code)

		rec = env.do(t, "GET", "/api/reports/categories", admin, "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestAdminUserRoutes(t *testing.T) {
	env := newTestEnv(t)
	admin := env.login(t, "admin@floreria.com", "admin123")
	env.register(t, "Ana", "ana@example.com")

	t.Run("list registered users", func(t *testing.T) {
		rec := env.do(t, "GET", "/api/admin/users", admin, "")
		assert.Equal(t, http.StatusOK, rec.Code)

		var users []user.User
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
		require.Len(t, users, 1)
		assert.Equal(t, user.RoleCustomer, users[0].Role)
	})

	t.Run("promote to supervisor", func(t *testing.T) {
		rec := env.do(t, "GET", "/api/admin/users", admin, "")
		var users []user.User
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
		require.NotEmpty(t, users)

		rec = env.do(t, "PATCH", "/api/admin/users/"+users[0].ID, admin, `{"role":"supervisor"}`)
		assert.Equal(t, http.StatusNoContent, rec.Code)

		rec = env.do(t, "PATCH", "/api/admin/users/"+users[0].ID, admin, `{"role":"emperor"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = env.do(t, "PATCH", "/api/admin/users/missing", admin, `{"role":"customer"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("delete user", func(t *testing.T) {
		rec := env.do(t, "GET", "/api/admin/users", admin, "")
		var users []user.User
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
		require.NotEmpty(t, users)

		rec = env.do(t, "DELETE", "/api/admin/users/"+users[0].ID, admin, "")
		assert.Equal(t, http.StatusNoContent, rec.Code)

		rec = env.do(t, "GET", "/api/admin/users", admin, "")
		assert.Equal(t, "[]\n", rec.Body.String())
	})
}
