package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/rahulhaldarin-lang/OFFICE-LENS/internal/db"
	"github.com/rahulhaldarin-lang/OFFICE-LENS/internal/model"
	"github.com/rahulhaldarin-lang/OFFICE-LENS/internal/store"
)

func newTestServer(t *testing.T) (*httptest.Server, *store.Store) {
	t.Helper()

	database := db.NewTestDB(t)
	st, err := store.Open(context.Background(), database)
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}

	router, err := NewRouter(st)
	if err != nil {
		t.Fatalf("building web router: %v", err)
	}

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return server, st
}

func getPage(t *testing.T, url string) string {
	t.Helper()

	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET %s: status %d", url, resp.StatusCode)
	}

	var sb strings.Builder
	buf := make([]byte, 32*1024)
	for {
		n, err := resp.Body.Read(buf)
		sb.Write(buf[:n])
		if err != nil {
			break
		}
	}
	return sb.String()
}

func TestLoadTemplates(t *testing.T) {
	if _, err := LoadTemplates(); err != nil {
		t.Fatalf("LoadTemplates() = %v", err)
	}
}

func TestAllPagesRender(t *testing.T) {
	server, _ := newTestServer(t)

	for _, path := range []string{
		"/", "/archive", "/trash", "/billing",
		"/phonebook", "/notebook", "/settings", "/calculator", "/help",
	} {
		body := getPage(t, server.URL+path)
		if !strings.Contains(body, model.DefaultSettings().PrimaryTitle) {
			t.Errorf("%s: missing primary title", path)
		}
	}
}

func TestHomePageShowsEntries(t *testing.T) {
	server, st := newTestServer(t)

	_, err := st.CreateEntry(context.Background(), model.Entry{
		UserID:        model.DefaultUserID,
		Date:          "01/01/2025",
		ItemType:      model.CategoryRing,
		Quantity:      1,
		InvoiceNumber: "r-42",
		Weight:        decimal.NewFromFloat(2.5),
	})
	if err != nil {
		t.Fatalf("creating entry: %v", err)
	}

	body := getPage(t, server.URL+"/")
	if !strings.Contains(body, "R-42") {
		t.Error("home page does not list the created entry")
	}
	if !strings.Contains(body, "2.500") {
		t.Error("home page does not show the formatted weight")
	}
}

func TestBillingPageTotals(t *testing.T) {
	server, st := newTestServer(t)

	for _, w := range []float64{1.25, 2.5} {
		_, err := st.CreateEntry(context.Background(), model.Entry{
			UserID:        model.DefaultUserID,
			Date:          "01/01/2025",
			ItemType:      model.CategoryRing,
			Quantity:      1,
			InvoiceNumber: "B-1",
			Weight:        decimal.NewFromFloat(w),
		})
		if err != nil {
			t.Fatalf("creating entry: %v", err)
		}
	}

	body := getPage(t, server.URL+"/billing")
	if !strings.Contains(body, model.DefaultUserName) {
		t.Error("billing page missing the holder's name")
	}
	if !strings.Contains(body, "3.750") {
		t.Error("billing page missing the gross total")
	}
}

func TestBillingPageUnknownUser(t *testing.T) {
	server, _ := newTestServer(t)

	resp, err := http.Get(server.URL + "/billing?user=no-such-user")
	if err != nil {
		t.Fatalf("GET /billing: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}
