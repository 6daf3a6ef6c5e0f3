package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"restaurant-pos/internal/config"
	"restaurant-pos/internal/logger"
	"restaurant-pos/internal/services/billing"
	"restaurant-pos/internal/services/menu"
	"restaurant-pos/internal/services/order"
	"restaurant-pos/internal/services/pos"
)

// Loop is the interactive prompt driver: menu listing, an ordering
// loop terminated by "done", then bill and payment. Input and output
// are injected so tests can script a whole session.
type Loop struct {
	cfg     *config.Config
	log     *logger.Logger
	catalog *menu.Catalog

	in    *bufio.Scanner
	out   io.Writer
	title cases.Caser
}

// New builds a prompt loop over the given streams.
func New(cfg *config.Config, log *logger.Logger, catalog *menu.Catalog, in io.Reader, out io.Writer) *Loop {
	return &Loop{
		cfg:     cfg,
		log:     log,
		catalog: catalog,
		in:      bufio.NewScanner(in),
		out:     out,
		title:   cases.Title(language.English),
	}
}

// Run executes one full customer session and returns when the input
// stream ends or the session completes with a payment.
func (l *Loop) Run() error {
	l.printMenu()

	name, ok := l.prompt("\nEnter customer name: ")
	if !ok {
		return nil
	}
	if name == "" {
		name = "Guest"
	}

	session := pos.NewSession(l.catalog, name, l.log)
	l.orderLoop(session)

	bill := session.GenerateBill()
	fmt.Fprintf(l.out, "\n%s\n", billing.Format(bill, l.cfg.Currency))

	method, ok := l.prompt("\nEnter payment method (Cash/Credit Card/Other): ")
	if !ok {
		return nil
	}
	_, confirmation, err := session.Pay(method)
	if err != nil {
		return fmt.Errorf("failed to process payment: %w", err)
	}
	fmt.Fprintln(l.out, confirmation)
	return nil
}

// orderLoop keeps taking item commands until "done" or EOF. Besides
// plain item names it understands "cancel <item>".
func (l *Loop) orderLoop(session *pos.Session) {
	for {
		input, ok := l.prompt("\nEnter item to order, 'cancel <item>' or 'done' to finish: ")
		if !ok {
			return
		}
		if strings.EqualFold(input, "done") {
			return
		}
		if input == "" {
			continue
		}

		if rest, found := strings.CutPrefix(strings.ToLower(input), "cancel "); found {
			l.cancelItem(session, strings.TrimSpace(rest))
			continue
		}

		l.addItem(session, l.title.String(input))
	}
}

func (l *Loop) addItem(session *pos.Session, itemName string) {
	if _, found := l.catalog.Find(itemName); !found {
		fmt.Fprintln(l.out, "Item not found in the menu.")
		return
	}

	raw, ok := l.prompt(fmt.Sprintf("Enter quantity of %s: ", itemName))
	if !ok {
		return
	}
	quantity, err := strconv.Atoi(raw)
	if err != nil {
		fmt.Fprintln(l.out, "Invalid quantity. Please enter a number.")
		return
	}

	line, err := session.AddItem(itemName, quantity)
	switch {
	case errors.Is(err, menu.ErrInvalidQuantity):
		fmt.Fprintln(l.out, "Invalid quantity. Please enter a positive number.")
	case errors.Is(err, menu.ErrInsufficientStock):
		fmt.Fprintf(l.out, "Sorry, not enough stock for %s.\n", itemName)
	case errors.Is(err, order.ErrNotFound):
		fmt.Fprintln(l.out, "Item not found in the menu.")
	case err != nil:
		fmt.Fprintf(l.out, "Could not add %s: %v\n", itemName, err)
	default:
		fmt.Fprintf(l.out, "%d x %s added to the order.\n", line.Quantity, line.Entry.Name)
	}
}

func (l *Loop) cancelItem(session *pos.Session, itemName string) {
	released, err := session.CancelItem(itemName)
	if err != nil {
		fmt.Fprintf(l.out, "No item named '%s' found in the order.\n", itemName)
		return
	}
	fmt.Fprintf(l.out, "%s x %d has been cancelled and stock updated.\n", l.title.String(itemName), released)
}

func (l *Loop) printMenu() {
	fmt.Fprintln(l.out, "Menu:")
	for _, entry := range l.catalog.Entries() {
		fmt.Fprintf(l.out, "%s - %s%s (Stock: %d)\n",
			entry.Name, l.cfg.Currency, entry.UnitPrice.StringFixed(2), entry.Stock)
	}
}

// prompt writes the given text and returns the next trimmed input
// line; ok is false once the input stream is exhausted.
func (l *Loop) prompt(text string) (string, bool) {
	fmt.Fprint(l.out, text)
	if !l.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(l.in.Text()), true
}
