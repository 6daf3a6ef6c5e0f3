package web

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"restaurant-pos/internal/config"
	"restaurant-pos/internal/logger"
	"restaurant-pos/internal/models"
	"restaurant-pos/internal/services/menu"
)

func testHandler() *Handler {
	catalog := menu.NewCatalog(
		&models.MenuEntry{Name: "Burger", UnitPrice: decimal.NewFromFloat(5.99), Stock: 10},
		&models.MenuEntry{Name: "Fries", UnitPrice: decimal.NewFromFloat(2.99), Stock: 20},
	)
	cfg := &config.Config{Currency: "$", Port: 3000, LogLevel: "error"}
	log := logger.NewWithWriter("web-test", slog.LevelError, io.Discard)
	return NewHandler(cfg, log, catalog)
}

func postForm(t *testing.T, routes http.Handler, path string, form url.Values) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	routes.ServeHTTP(rec, req)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("POST %s status = %d, want %d", path, rec.Code, http.StatusSeeOther)
	}
}

func getIndex(t *testing.T, routes http.Handler) string {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	routes.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET / status = %d, want 200", rec.Code)
	}
	return rec.Body.String()
}

func TestIndexShowsMenu(t *testing.T) {
	routes := testHandler().Routes()
	body := getIndex(t, routes)

	for _, want := range []string{"Burger", "$5.99", "Fries", "$2.99", "No items in the order."} {
		if !strings.Contains(body, want) {
			t.Errorf("index missing %q", want)
		}
	}
}

func TestAddItemFlow(t *testing.T) {
	routes := testHandler().Routes()

	postForm(t, routes, "/order/items", url.Values{"item": {"burger"}, "quantity": {"3"}})
	body := getIndex(t, routes)

	if !strings.Contains(body, "3 x Burger added to the order.") {
		t.Errorf("missing add confirmation:\n%s", body)
	}
	if !strings.Contains(body, "<td>7</td>") {
		t.Errorf("stock column should show 7 after reserving 3:\n%s", body)
	}

	// Flash messages render once.
	if body := getIndex(t, routes); strings.Contains(body, "added to the order") {
		t.Errorf("flash message should clear after one render:\n%s", body)
	}
}

func TestAddItemErrors(t *testing.T) {
	tests := []struct {
		name string
		form url.Values
		want string
	}{
		{
			name: "non-numeric quantity",
			form: url.Values{"item": {"Burger"}, "quantity": {"abc"}},
			want: "Invalid quantity. Please enter a number.",
		},
		{
			name: "zero quantity",
			form: url.Values{"item": {"Burger"}, "quantity": {"0"}},
			want: "Quantity must be greater than 0.",
		},
		{
			name: "unknown item",
			form: url.Values{"item": {"Sushi"}, "quantity": {"1"}},
			want: "No item named &#39;Sushi&#39; on the menu.",
		},
		{
			name: "oversell",
			form: url.Values{"item": {"Burger"}, "quantity": {"20"}},
			want: "Not enough stock for Burger.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			routes := testHandler().Routes()
			postForm(t, routes, "/order/items", tt.form)
			if body := getIndex(t, routes); !strings.Contains(body, tt.want) {
				t.Errorf("missing error %q:\n%s", tt.want, body)
			}
		})
	}
}

func TestCancelFlow(t *testing.T) {
	routes := testHandler().Routes()

	postForm(t, routes, "/order/items", url.Values{"item": {"Fries"}, "quantity": {"2"}})
	postForm(t, routes, "/order/cancel", url.Values{"item": {"fries"}})
	body := getIndex(t, routes)

	if !strings.Contains(body, "fries x 2 has been cancelled and stock updated.") {
		t.Errorf("missing cancel confirmation:\n%s", body)
	}
	if !strings.Contains(body, "No items in the order.") {
		t.Errorf("order should be empty after cancel:\n%s", body)
	}
}

func TestBillAndPaymentFlow(t *testing.T) {
	h := testHandler()
	routes := h.Routes()

	postForm(t, routes, "/order/items", url.Values{"item": {"Burger"}, "quantity": {"3"}})
	postForm(t, routes, "/bill", nil)

	body := getIndex(t, routes)
	if !strings.Contains(body, "Total Bill: $17.97") {
		t.Errorf("missing bill total:\n%s", body)
	}

	postForm(t, routes, "/payment", url.Values{"method": {"Credit Card"}})
	body = getIndex(t, routes)
	if !strings.Contains(body, "Payment of $17.97 received via Credit Card.") {
		t.Errorf("missing payment confirmation:\n%s", body)
	}

	// The paid order rejects further mutation.
	postForm(t, routes, "/order/items", url.Values{"item": {"Burger"}, "quantity": {"1"}})
	body = getIndex(t, routes)
	if !strings.Contains(body, "Order is already paid.") {
		t.Errorf("paid order should reject adds:\n%s", body)
	}
}

func TestPayWithoutBill(t *testing.T) {
	routes := testHandler().Routes()

	postForm(t, routes, "/payment", url.Values{"method": {"Cash"}})
	if body := getIndex(t, routes); !strings.Contains(body, "Generate a bill before paying.") {
		t.Errorf("missing bill-first error:\n%s", body)
	}
}

func TestNewCustomerResetsSession(t *testing.T) {
	routes := testHandler().Routes()

	postForm(t, routes, "/order/items", url.Values{"item": {"Burger"}, "quantity": {"3"}})
	postForm(t, routes, "/customer", url.Values{"name": {"Vali"}})
	body := getIndex(t, routes)

	if !strings.Contains(body, "New order started for Vali.") {
		t.Errorf("missing new-order message:\n%s", body)
	}
	if !strings.Contains(body, "No items in the order.") {
		t.Errorf("new session should start with an empty order:\n%s", body)
	}
	// Stock stays reserved by the abandoned order; the catalog is shared.
	if !strings.Contains(body, "<td>7</td>") {
		t.Errorf("shared catalog stock should remain 7:\n%s", body)
	}
}
