package web

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rahulhaldarin-lang/OFFICE-LENS/internal/model"
	"github.com/rahulhaldarin-lang/OFFICE-LENS/internal/view"
)

// BillingPage handles GET /billing: a printable statement of the current
// (or named) user's active entries with the gross weight total.
func (s *Server) BillingPage(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user")
	if userID == "" {
		userID = s.Store.CurrentUserID()
	}

	user := s.Store.User(userID)
	if user == nil {
		http.Error(w, "user not found", http.StatusNotFound)
		return
	}

	entries := view.ActiveEntries(s.Store.Entries(), userID)

	s.Templates.Render(w, "billing.html", &struct {
		PageData
		Holder      *model.User
		Entries     []model.Entry
		TotalWeight decimal.Decimal
		GeneratedAt string
	}{
		PageData:    s.pageData("Billing Document"),
		Holder:      user,
		Entries:     entries,
		TotalWeight: view.TotalWeight(entries),
		GeneratedAt: time.Now().Format("02/01/2006, 15:04:05"),
	})
}
