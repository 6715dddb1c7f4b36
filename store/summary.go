package store

import (
	"sort"
	"time"

	"prms/backend/models"
)

// FinancialSummary is the current-month derived view: approved,
// uncorrected income against approved expenses.
type FinancialSummary struct {
	TotalIncome   float64 `json:"totalIncome"`
	TotalExpenses float64 `json:"totalExpenses"`
	NetProfit     float64 `json:"netProfit"`
}

// GetFinancialSummary recomputes the summary for the current calendar
// month. Corrected payments are excluded regardless of approval state.
// Callers without view_financial_totals get a zero summary.
func (s *Store) GetFinancialSummary(userID int64) FinancialSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.allowed(userID, models.PermViewFinancialTotals) {
		return FinancialSummary{}
	}

	now := s.now()
	var income, expense float64
	for _, p := range s.state.Payments {
		if p.IsCorrected || p.Status != models.StatusApproved {
			continue
		}
		if sameMonth(p.PaymentDate, now) {
			income += p.Amount
		}
	}
	for _, e := range s.state.Expenses {
		if e.Status != models.StatusApproved {
			continue
		}
		if sameMonth(e.ExpenseDate, now) {
			expense += e.Amount
		}
	}
	return FinancialSummary{
		TotalIncome:   income,
		TotalExpenses: expense,
		NetProfit:     income - expense,
	}
}

// MonthTotals is one row of the monthly breakdown.
type MonthTotals struct {
	Month   string  `json:"month"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Profit  float64 `json:"profit"`
}

// MonthlyReport aggregates the caller's visible, uncorrected payments
// and visible expenses per month of the given year. Gated by
// view_monthly_reports; returns nil when not allowed.
func (s *Store) MonthlyReport(userID int64, year int) []MonthTotals {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.allowed(userID, models.PermViewMonthlyReports) {
		return nil
	}

	out := make([]MonthTotals, 12)
	for i := range out {
		out[i].Month = time.Month(i + 1).String()[:3]
	}
	for _, p := range s.visiblePayments(userID) {
		if p.IsCorrected || p.PaymentDate.Year() != year {
			continue
		}
		out[int(p.PaymentDate.Month())-1].Income += p.Amount
	}
	for _, e := range s.visibleExpenses(userID) {
		if e.ExpenseDate.Year() != year {
			continue
		}
		out[int(e.ExpenseDate.Month())-1].Expense += e.Amount
	}
	for i := range out {
		out[i].Profit = out[i].Income - out[i].Expense
	}
	return out
}

// YearTotals is one row of the yearly report.
type YearTotals struct {
	Year    int     `json:"year"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Profit  float64 `json:"profit"`
}

// YearlyReport aggregates the caller's visible records per year, in
// ascending year order. Gated by view_yearly_reports.
func (s *Store) YearlyReport(userID int64) []YearTotals {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.allowed(userID, models.PermViewYearlyReports) {
		return nil
	}

	byYear := map[int]*YearTotals{}
	yearRow := func(y int) *YearTotals {
		if row, ok := byYear[y]; ok {
			return row
		}
		row := &YearTotals{Year: y}
		byYear[y] = row
		return row
	}
	for _, p := range s.visiblePayments(userID) {
		if p.IsCorrected {
			continue
		}
		yearRow(p.PaymentDate.Year()).Income += p.Amount
	}
	for _, e := range s.visibleExpenses(userID) {
		yearRow(e.ExpenseDate.Year()).Expense += e.Amount
	}

	var out []YearTotals
	for _, row := range byYear {
		row.Profit = row.Income - row.Expense
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

func sameMonth(t, ref time.Time) bool {
	return t.Year() == ref.Year() && t.Month() == ref.Month()
}
