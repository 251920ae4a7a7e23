// controllers/request_controller.go
package controllers

import (
	"net/http"

	"toolroom/app"
	"toolroom/ledger"
	"toolroom/view"

	"github.com/gin-gonic/gin"
)

type RequestController struct{ *Srv }

func NewRequestController(s *Srv) *RequestController { return &RequestController{Srv: s} }

// POST /api/requests: any signed-in user files a purchase request.
func (rc *RequestController) Create(c *gin.Context) {
	var in struct {
		Item        string `json:"item" binding:"required"`
		Quantity    int    `json:"quantity" binding:"required"`
		Description string `json:"description"`
		Category    string `json:"category" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	requester, ok := app.CurrentActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, app.H{"error": "unauthorized"})
		return
	}

	req, err := rc.Requests.Create(c.Request.Context(), ledger.CreateRequestInput{
		Item:        in.Item,
		Quantity:    in.Quantity,
		Description: in.Description,
		Category:    in.Category,
	}, requester)
	if err != nil {
		writeLedgerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, req)
}

// PUT /api/requests/:id: edit own pending request.
func (rc *RequestController) Update(c *gin.Context) {
	id := c.Param("id")
	var in struct {
		Item        *string `json:"item"`
		Quantity    *int    `json:"quantity"`
		Description *string `json:"description"`
		Category    *string `json:"category"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	if !rc.ownsRequest(c, id) {
		return
	}

	req, err := rc.Requests.Update(c.Request.Context(), id, ledger.UpdateRequestInput{
		Item:        in.Item,
		Quantity:    in.Quantity,
		Description: in.Description,
		Category:    in.Category,
	})
	if err != nil {
		writeLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

// DELETE /api/requests/:id: withdraw own pending request.
func (rc *RequestController) Delete(c *gin.Context) {
	id := c.Param("id")
	if !rc.ownsRequest(c, id) {
		return
	}
	if err := rc.Requests.Delete(c.Request.Context(), id); err != nil {
		writeLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"ok": true})
}

// GET /api/requests/mine: the requester's own records, with counters
// computed over that requester's subset.
func (rc *RequestController) ListMine(c *gin.Context) {
	requester, ok := app.CurrentActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, app.H{"error": "unauthorized"})
		return
	}
	mine := view.FilterRequests(rc.Requests.List(), view.RequestFilter{RequesterID: requester.ID})
	c.JSON(http.StatusOK, app.H{
		"items":  view.FilterRequests(mine, view.RequestFilter{Tab: c.Query("tab")}),
		"counts": view.CountRequests(mine),
	})
}

// GET /api/requests for the purchasing desk view.
func (rc *RequestController) List(c *gin.Context) {
	f := view.RequestFilter{
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

	snapshot := rc.Requests.List()
	c.JSON(http.StatusOK, app.H{
		"items":  view.FilterRequests(snapshot, f),
		"counts": view.CountRequests(snapshot),
	})
}

// POST /api/requests/:id/approve
func (rc *RequestController) Approve(c *gin.Context) {
	req, err := rc.Requests.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

// POST /api/requests/:id/reject
func (rc *RequestController) Reject(c *gin.Context) {
	req, err := rc.Requests.Reject(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

// POST /api/requests/:id/deliver
func (rc *RequestController) Deliver(c *gin.Context) {
	req, err := rc.Requests.MarkDelivered(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

// ownsRequest writes the error response itself when the check fails.
func (rc *RequestController) ownsRequest(c *gin.Context, id string) bool {
	actor, ok := app.CurrentActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, app.H{"error": "unauthorized"})
		return false
	}
	req, err := rc.Requests.Get(id)
	if err != nil {
		writeLedgerError(c, err)
		return false
	}
	if req.RequesterID != actor.ID {
		c.JSON(http.StatusForbidden, app.H{"error": "not your request"})
		return false
	}
	return true
}
