package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"prms/backend/models"
	"prms/backend/store"
)

// ReportHandler serves derived financial views and the CSV export. It
// only calls the store's query surface, never the collections.
type ReportHandler struct {
	store *store.Store
}

// NewReportHandler creates a new report handler.
func NewReportHandler(s *store.Store) *ReportHandler {
	return &ReportHandler{store: s}
}

// Summary handles GET /reports/summary.
func (h *ReportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	actor, ok := actingUser(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.store.GetFinancialSummary(actor))
}

// Monthly handles GET /reports/monthly?year=2026, defaulting to the
// current year.
func (h *ReportHandler) Monthly(w http.ResponseWriter, r *http.Request) {
	actor, ok := actingUser(w, r)
	if !ok {
		return
	}
	year := time.Now().Year()
	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "invalid year", http.StatusBadRequest)
			return
		}
		year = parsed
	}
	writeJSON(w, http.StatusOK, h.store.MonthlyReport(actor, year))
}

// Yearly handles GET /reports/yearly.
func (h *ReportHandler) Yearly(w http.ResponseWriter, r *http.Request) {
	actor, ok := actingUser(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.store.YearlyReport(actor))
}

// Export handles GET /reports/export, streaming the caller's visible
// payments and expenses as CSV. Gated by export_reports.
func (h *ReportHandler) Export(w http.ResponseWriter, r *http.Request) {
	actor, ok := actingUser(w, r)
	if !ok {
		return
	}
	if !h.store.Authorize(actor, models.PermExportReports) {
		http.Error(w, "Forbidden: insufficient permissions", http.StatusForbidden)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="financial-report.csv"`)

	cw := csv.NewWriter(w)
	defer cw.Flush()

	cw.Write([]string{"type", "id", "date", "amount", "status", "corrected", "detail"})
	for _, p := range h.store.Payments(actor) {
		cw.Write([]string{
			"payment",
			strconv.FormatInt(p.ID, 10),
			p.PaymentDate.Format("2006-01-02"),
			fmt.Sprintf("%.2f", p.Amount),
			string(p.Status),
			strconv.FormatBool(p.IsCorrected),
			p.PaymentMethod,
		})
	}
	for _, e := range h.store.Expenses(actor) {
		cw.Write([]string{
			"expense",
			strconv.FormatInt(e.ID, 10),
			e.ExpenseDate.Format("2006-01-02"),
			fmt.Sprintf("%.2f", e.Amount),
			string(e.Status),
			"false",
			string(e.Category),
		})
	}
}
