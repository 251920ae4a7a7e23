// Package view derives filtered projections and tab counters from ledger
// snapshots. It owns no state and never mutates its input.
package view

import (
	"strings"
	"time"

	"toolroom/models"
)

// Loan tabs.
const (
	LoanTabAll      = "all"
	LoanTabPending  = "pending"
	LoanTabReturned = "returned"
)

// Request tabs. "awaiting-delivery" is approved but not yet delivered.
const (
	RequestTabAll              = "all"
	RequestTabPending          = "pending"
	RequestTabApproved         = "approved"
	RequestTabAwaitingDelivery = "awaiting-delivery"
	RequestTabDelivered        = "delivered"
	RequestTabRejected         = "rejected"
)

// LoanFilter dimensions compose conjunctively in a fixed order: tab, then
// free text, then date, then category. A zero value means no restriction.
type LoanFilter struct {
	Tab      string
	Text     string
	Date     time.Time
	Category string
}

// FilterLoans returns the matching subsequence in the snapshot's order.
// Free text matches case-insensitively against item, borrower name and
// badge; any one hit keeps the record.
func FilterLoans(loans []models.Loan, f LoanFilter) []models.Loan {
	out := make([]models.Loan, 0, len(loans))
	term := strings.ToLower(strings.TrimSpace(f.Text))
	for _, l := range loans {
		switch f.Tab {
		case "", LoanTabAll:
		case LoanTabPending:
			if l.Status != models.LoanPending {
				continue
			}
		case LoanTabReturned:
			if l.Status != models.LoanReturned {
				continue
			}
		default:
			continue
		}
		if term != "" && !anyContains(term, l.Item, l.BorrowerName, l.BorrowerBadge) {
			continue
		}
		if !f.Date.IsZero() && !sameDate(l.LoanDate, f.Date) {
			continue
		}
		if f.Category != "" && l.Category != f.Category {
			continue
		}
		out = append(out, l)
	}
	return out
}

// LoanCounts partitions the full collection by status. Counters stay
// independent of the text/date/category filters so the tab badges always
// reflect how many records exist per status.
type LoanCounts struct {
	All      int `json:"all"`
	Pending  int `json:"pending"`
	Returned int `json:"returned"`
}

func CountLoans(loans []models.Loan) LoanCounts {
	c := LoanCounts{All: len(loans)}
	for _, l := range loans {
		if l.Returned() {
			c.Returned++
		} else {
			c.Pending++
		}
	}
	return c
}

// RequestFilter adds a requester dimension used by the "my requests" view.
type RequestFilter struct {
	Tab         string
	Text        string
	Date        time.Time
	Category    string
	RequesterID string
}

func FilterRequests(reqs []models.PurchaseRequest, f RequestFilter) []models.PurchaseRequest {
	out := make([]models.PurchaseRequest, 0, len(reqs))
	term := strings.ToLower(strings.TrimSpace(f.Text))
	for _, r := range reqs {
		if !requestTabMatch(r, f.Tab) {
			continue
		}
		if term != "" && !anyContains(term, r.Item, r.RequesterName) {
			continue
		}
		if !f.Date.IsZero() && !sameDate(r.RequestedAt, f.Date) {
			continue
		}
		if f.Category != "" && r.Category != f.Category {
			continue
		}
		if f.RequesterID != "" && r.RequesterID != f.RequesterID {
			continue
		}
		out = append(out, r)
	}
	return out
}

func requestTabMatch(r models.PurchaseRequest, tab string) bool {
	switch tab {
	case "", RequestTabAll:
		return true
	case RequestTabPending:
		return r.Status == models.RequestPending
	case RequestTabApproved:
		return r.Status == models.RequestApproved
	case RequestTabAwaitingDelivery:
		return r.AwaitingDelivery()
	case RequestTabDelivered:
		return r.Status == models.RequestApproved && r.Delivered
	case RequestTabRejected:
		return r.Status == models.RequestRejected
	default:
		return false
	}
}

type RequestCounts struct {
	All       int `json:"all"`
	Pending   int `json:"pending"`
	Approved  int `json:"approved"`
	Rejected  int `json:"rejected"`
	Delivered int `json:"delivered"`
}

// CountRequests follows the same base-collection policy as CountLoans.
// Approved counts every approved request, delivered or not.
func CountRequests(reqs []models.PurchaseRequest) RequestCounts {
	c := RequestCounts{All: len(reqs)}
	for _, r := range reqs {
		switch r.Status {
		case models.RequestPending:
			c.Pending++
		case models.RequestApproved:
			c.Approved++
			if r.Delivered {
				c.Delivered++
			}
		case models.RequestRejected:
			c.Rejected++
		}
	}
	return c
}

func anyContains(term string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
