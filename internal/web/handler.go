package web

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"

	"restaurant-pos/internal/config"
	"restaurant-pos/internal/logger"
	"restaurant-pos/internal/services/billing"
	"restaurant-pos/internal/services/menu"
	"restaurant-pos/internal/services/order"
	"restaurant-pos/internal/services/pos"
)

//go:embed templates/index.html
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// Handler serves the single-page form UI. One customer session exists
// per process; changing the customer name opens a fresh order against
// the same shared catalog. HTTP requests may interleave, so session
// mutation is serialized by a mutex.
type Handler struct {
	cfg     *config.Config
	log     *logger.Logger
	catalog *menu.Catalog

	mu       sync.Mutex
	session  *pos.Session
	billText string
	message  string
	errMsg   string
}

// NewHandler builds the UI handler with an initial guest session.
func NewHandler(cfg *config.Config, log *logger.Logger, catalog *menu.Catalog) *Handler {
	return &Handler{
		cfg:     cfg,
		log:     log,
		catalog: catalog,
		session: pos.NewSession(catalog, "Guest", log),
	}
}

// Routes wires the page and its form actions.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.index)
	r.Post("/customer", h.setCustomer)
	r.Post("/order/items", h.addItem)
	r.Post("/order/cancel", h.cancelItem)
	r.Post("/bill", h.generateBill)
	r.Post("/payment", h.pay)
	return r
}

type entryView struct {
	Name  string
	Price string
	Stock int
}

type lineView struct {
	Name     string
	Quantity int
}

type pageData struct {
	CustomerName string
	Currency     string
	Entries      []entryView
	Lines        []lineView
	BillText     string
	Message      string
	Error        string
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	data := pageData{
		CustomerName: h.session.Order.CustomerName,
		Currency:     h.cfg.Currency,
		BillText:     h.billText,
		Message:      h.message,
		Error:        h.errMsg,
	}
	for _, entry := range h.catalog.Entries() {
		data.Entries = append(data.Entries, entryView{
			Name:  entry.Name,
			Price: entry.UnitPrice.StringFixed(2),
			Stock: entry.Stock,
		})
	}
	for _, line := range h.session.Order.Lines() {
		data.Lines = append(data.Lines, lineView{Name: line.Entry.Name, Quantity: line.Quantity})
	}
	h.message, h.errMsg = "", ""
	h.mu.Unlock()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, data); err != nil {
		h.log.Error("render_failed", h.sessionID(), "Failed to render page", err)
	}
}

func (h *Handler) setCustomer(w http.ResponseWriter, r *http.Request) {
	name := r.FormValue("name")
	if name == "" {
		name = "Guest"
	}

	h.mu.Lock()
	if name != h.session.Order.CustomerName {
		h.session = pos.NewSession(h.catalog, name, h.log)
		h.billText = ""
		h.message = fmt.Sprintf("New order started for %s.", name)
	}
	h.mu.Unlock()

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	item := r.FormValue("item")
	quantity, err := strconv.Atoi(r.FormValue("quantity"))

	h.mu.Lock()
	switch {
	case err != nil:
		h.errMsg = "Invalid quantity. Please enter a number."
	default:
		line, addErr := h.session.AddItem(item, quantity)
		switch {
		case errors.Is(addErr, menu.ErrInvalidQuantity):
			h.errMsg = "Quantity must be greater than 0."
		case errors.Is(addErr, order.ErrNotFound):
			h.errMsg = fmt.Sprintf("No item named '%s' on the menu.", item)
		case errors.Is(addErr, menu.ErrInsufficientStock):
			h.errMsg = fmt.Sprintf("Not enough stock for %s.", item)
		case errors.Is(addErr, order.ErrOrderClosed):
			h.errMsg = "Order is already paid. Start a new order."
		case addErr != nil:
			h.errMsg = addErr.Error()
		default:
			h.message = fmt.Sprintf("%d x %s added to the order.", line.Quantity, line.Entry.Name)
		}
	}
	h.mu.Unlock()

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) cancelItem(w http.ResponseWriter, r *http.Request) {
	item := r.FormValue("item")

	h.mu.Lock()
	released, err := h.session.CancelItem(item)
	switch {
	case errors.Is(err, order.ErrNotFound):
		h.errMsg = fmt.Sprintf("No item named '%s' found in the order.", item)
	case errors.Is(err, order.ErrOrderClosed):
		h.errMsg = "Order is already paid. Start a new order."
	case err != nil:
		h.errMsg = err.Error()
	default:
		h.message = fmt.Sprintf("%s x %d has been cancelled and stock updated.", item, released)
	}
	h.mu.Unlock()

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) generateBill(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	bill := h.session.GenerateBill()
	h.billText = billing.Format(bill, h.cfg.Currency)
	h.mu.Unlock()

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) pay(w http.ResponseWriter, r *http.Request) {
	method := r.FormValue("method")

	h.mu.Lock()
	_, confirmation, err := h.session.Pay(method)
	switch {
	case errors.Is(err, order.ErrNotBilled):
		h.errMsg = "Generate a bill before paying."
	case errors.Is(err, order.ErrOrderClosed):
		h.errMsg = "Order is already paid."
	case err != nil:
		h.errMsg = err.Error()
	default:
		h.message = confirmation
	}
	h.mu.Unlock()

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) sessionID() string {
	return h.session.Order.ID.String()
}
