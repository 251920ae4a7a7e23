// controllers/loan_controller.go
package controllers

import (
	"net/http"

	"toolroom/app"
	"toolroom/ledger"
	"toolroom/view"

	"github.com/gin-gonic/gin"
)

type LoanController struct{ *Srv }

func NewLoanController(s *Srv) *LoanController { return &LoanController{Srv: s} }

// POST /api/loans: staff issues a tool to an employee.
func (lc *LoanController) Create(c *gin.Context) {
	var in struct {
		Item          string `json:"item" binding:"required"`
		Category      string `json:"category" binding:"required"`
		LoanDate      string `json:"loanDate" binding:"required"`
		BorrowerName  string `json:"borrowerName" binding:"required"`
		BorrowerBadge string `json:"borrowerBadge" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	loanDate, err := parseDate(in.LoanDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": "loanDate must be yyyy-mm-dd"})
		return
	}
	issuer, ok := app.CurrentActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, app.H{"error": "unauthorized"})
		return
	}

	loan, err := lc.Loans.Create(c.Request.Context(), ledger.CreateLoanInput{
		Item:          in.Item,
		Category:      in.Category,
		LoanDate:      loanDate,
		BorrowerName:  in.BorrowerName,
		BorrowerBadge: in.BorrowerBadge,
	}, issuer)
	if err != nil {
		writeLedgerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, loan)
}

// POST /api/loans/:id/return
func (lc *LoanController) Return(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, app.H{"error": "missing loan id"})
		return
	}
	returner, ok := app.CurrentActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, app.H{"error": "unauthorized"})
		return
	}

	loan, err := lc.Loans.MarkReturned(c.Request.Context(), id, returner)
	if err != nil {
		writeLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, loan)
}

// GET /api/loans?tab=&q=&date=&category=
func (lc *LoanController) List(c *gin.Context) {
	f := view.LoanFilter{
		Tab:      c.Query("tab"),
		Text:     c.Query("q"),
		Category: c.Query("category"),
	}
	if v := c.Query("date"); v != "" {
		d, err := parseDate(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, app.H{"error": "date must be yyyy-mm-dd"})
			return
		}
		f.Date = d
	}

	snapshot := lc.Loans.List()
	c.JSON(http.StatusOK, app.H{
		"items":  view.FilterLoans(snapshot, f),
		"counts": view.CountLoans(snapshot),
	})
}
