package cli

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"restaurant-pos/internal/config"
	"restaurant-pos/internal/logger"
	"restaurant-pos/internal/models"
	"restaurant-pos/internal/services/menu"
)

func runScript(t *testing.T, input string) string {
	t.Helper()

	catalog := menu.NewCatalog(
		&models.MenuEntry{Name: "Burger", UnitPrice: decimal.NewFromFloat(5.99), Stock: 10},
		&models.MenuEntry{Name: "Fries", UnitPrice: decimal.NewFromFloat(2.99), Stock: 20},
	)
	cfg := &config.Config{Currency: "$", LogLevel: "error"}
	log := logger.NewWithWriter("cli-test", slog.LevelError, io.Discard)

	var out bytes.Buffer
	loop := New(cfg, log, catalog, strings.NewReader(input), &out)
	if err := loop.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	return out.String()
}

func TestRunFullSession(t *testing.T) {
	out := runScript(t, strings.Join([]string{
		"Ali",
		"burger",
		"3",
		"Sushi",
		"fries",
		"abc",
		"fries",
		"2",
		"cancel fries",
		"done",
		"Credit Card",
	}, "\n")+"\n")

	for _, want := range []string{
		"Menu:",
		"Burger - $5.99 (Stock: 10)",
		"3 x Burger added to the order.",
		"Item not found in the menu.",
		"Invalid quantity. Please enter a number.",
		"2 x Fries added to the order.",
		"Fries x 2 has been cancelled and stock updated.",
		"Burger x 3 = $17.97",
		"Total Bill: $17.97",
		"Payment of $17.97 received via Credit Card.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n--- output ---\n%s", want, out)
		}
	}
}

func TestRunOversell(t *testing.T) {
	out := runScript(t, "Ali\nburger\n20\ndone\nCash\n")

	if !strings.Contains(out, "Sorry, not enough stock for Burger.") {
		t.Errorf("output missing oversell message:\n%s", out)
	}
	if !strings.Contains(out, "Total Bill: $0.00") {
		t.Errorf("failed add must not be billed:\n%s", out)
	}
}

func TestRunDoneIsCaseInsensitive(t *testing.T) {
	out := runScript(t, "Ali\nDONE\nCash\n")

	if !strings.Contains(out, "No items in the order.") {
		t.Errorf("empty order bill missing no-items line:\n%s", out)
	}
	if !strings.Contains(out, "Payment of $0.00 received via Cash.") {
		t.Errorf("zero payment confirmation missing:\n%s", out)
	}
}

func TestRunEOFMidSession(t *testing.T) {
	out := runScript(t, "Ali\nburger\n")

	if !strings.Contains(out, "Total Bill: $0.00") {
		t.Errorf("session ending at EOF should still print the bill:\n%s", out)
	}
}

func TestRunCancelUnknownItem(t *testing.T) {
	out := runScript(t, "Ali\ncancel pizza\ndone\nCash\n")

	if !strings.Contains(out, "No item named 'pizza' found in the order.") {
		t.Errorf("output missing cancel-not-found message:\n%s", out)
	}
}
