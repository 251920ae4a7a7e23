package controllers_test

import (
	"net/http"
	"testing"

	"toolroom/app"
	"toolroom/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hammerPayload() gin.H {
	return gin.H{
		"item":        "Hammer",
		"quantity":    2,
		"description": "bench stock",
		"category":    "mechanical",
	}
}

func createRequest(t *testing.T, a *app.App, ck *http.Cookie) models.PurchaseRequest {
	t.Helper()
	w := performRequest(a.Router, http.MethodPost, "/api/requests", hammerPayload(), ck)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var req models.PurchaseRequest
	decode(t, w, &req)
	return req
}

func TestCreateRequestAsAnyUser(t *testing.T) {
	a := newTestApp(t)

	// staff and purchaser can both file requests
	for _, email := range []string{staffEmail, purchaserEmail} {
		ck := login(t, a, email)
		req := createRequest(t, a, ck)
		assert.Equal(t, models.RequestPending, req.Status)
		assert.False(t, req.Delivered)
		assert.NotEmpty(t, req.RequesterID)
	}

	w := performRequest(a.Router, http.MethodPost, "/api/requests", hammerPayload(), nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	ck := login(t, a, staffEmail)
	p := hammerPayload()
	p["quantity"] = 0
	w = performRequest(a.Router, http.MethodPost, "/api/requests", p, ck)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListMineScopesToRequester(t *testing.T) {
	a := newTestApp(t)
	joao := login(t, a, staffEmail)
	maria := login(t, a, otherStaff)

	createRequest(t, a, joao)
	createRequest(t, a, joao)
	createRequest(t, a, maria)

	var body struct {
		Items  []models.PurchaseRequest `json:"items"`
		Counts struct {
			All     int `json:"all"`
			Pending int `json:"pending"`
		} `json:"counts"`
	}
	w := performRequest(a.Router, http.MethodGet, "/api/requests/mine", nil, joao)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &body)
	assert.Len(t, body.Items, 2)
	assert.Equal(t, 2, body.Counts.All)
	assert.Equal(t, 2, body.Counts.Pending)

	w = performRequest(a.Router, http.MethodGet, "/api/requests/mine", nil, maria)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &body)
	assert.Len(t, body.Items, 1)
	assert.Equal(t, "Maria Santos", body.Items[0].RequesterName)
}

func TestUpdateAndDeleteEnforceOwnership(t *testing.T) {
	a := newTestApp(t)
	joao := login(t, a, staffEmail)
	maria := login(t, a, otherStaff)

	req := createRequest(t, a, joao)

	w := performRequest(a.Router, http.MethodPut, "/api/requests/"+req.ID,
		gin.H{"quantity": 5}, maria)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = performRequest(a.Router, http.MethodDelete, "/api/requests/"+req.ID, nil, maria)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = performRequest(a.Router, http.MethodPut, "/api/requests/"+req.ID,
		gin.H{"quantity": 5}, joao)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated models.PurchaseRequest
	decode(t, w, &updated)
	assert.Equal(t, 5, updated.Quantity)
	assert.Equal(t, "Hammer", updated.Item, "untouched fields survive")

	w = performRequest(a.Router, http.MethodDelete, "/api/requests/"+req.ID, nil, joao)
	assert.Equal(t, http.StatusOK, w.Code)

	w = performRequest(a.Router, http.MethodDelete, "/api/requests/"+req.ID, nil, joao)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestModerationIsPurchaserOnly(t *testing.T) {
	a := newTestApp(t)
	joao := login(t, a, staffEmail)
	req := createRequest(t, a, joao)

	w := performRequest(a.Router, http.MethodGet, "/api/requests", nil, joao)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = performRequest(a.Router, http.MethodPost, "/api/requests/"+req.ID+"/approve", nil, joao)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestModerationFlow(t *testing.T) {
	a := newTestApp(t)
	joao := login(t, a, staffEmail)
	carlos := login(t, a, purchaserEmail)

	req := createRequest(t, a, joao)

	// deliver before approval is a conflict
	w := performRequest(a.Router, http.MethodPost, "/api/requests/"+req.ID+"/deliver", nil, carlos)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = performRequest(a.Router, http.MethodPost, "/api/requests/"+req.ID+"/approve", nil, carlos)
	require.Equal(t, http.StatusOK, w.Code)
	var approved models.PurchaseRequest
	decode(t, w, &approved)
	assert.Equal(t, models.RequestApproved, approved.Status)

	// decided requests cannot be edited or withdrawn by the requester
	w = performRequest(a.Router, http.MethodPut, "/api/requests/"+req.ID, gin.H{"quantity": 9}, joao)
	assert.Equal(t, http.StatusConflict, w.Code)
	w = performRequest(a.Router, http.MethodDelete, "/api/requests/"+req.ID, nil, joao)
	assert.Equal(t, http.StatusConflict, w.Code)

	// nor flipped to rejected
	w = performRequest(a.Router, http.MethodPost, "/api/requests/"+req.ID+"/reject", nil, carlos)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = performRequest(a.Router, http.MethodPost, "/api/requests/"+req.ID+"/deliver", nil, carlos)
	require.Equal(t, http.StatusOK, w.Code)
	var delivered models.PurchaseRequest
	decode(t, w, &delivered)
	assert.True(t, delivered.Delivered)

	w = performRequest(a.Router, http.MethodPost, "/api/requests/"+req.ID+"/deliver", nil, carlos)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestListRequestsTabsAndCounts(t *testing.T) {
	a := newTestApp(t)
	joao := login(t, a, staffEmail)
	carlos := login(t, a, purchaserEmail)

	createRequest(t, a, joao) // stays pending
	approved := createRequest(t, a, joao)
	deliveredReq := createRequest(t, a, joao)

	w := performRequest(a.Router, http.MethodPost, "/api/requests/"+approved.ID+"/approve", nil, carlos)
	require.Equal(t, http.StatusOK, w.Code)
	w = performRequest(a.Router, http.MethodPost, "/api/requests/"+deliveredReq.ID+"/approve", nil, carlos)
	require.Equal(t, http.StatusOK, w.Code)
	w = performRequest(a.Router, http.MethodPost, "/api/requests/"+deliveredReq.ID+"/deliver", nil, carlos)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Items  []models.PurchaseRequest `json:"items"`
		Counts struct {
			All       int `json:"all"`
			Pending   int `json:"pending"`
			Approved  int `json:"approved"`
			Rejected  int `json:"rejected"`
			Delivered int `json:"delivered"`
		} `json:"counts"`
	}

	w = performRequest(a.Router, http.MethodGet, "/api/requests?tab=awaiting-delivery", nil, carlos)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &body)
	require.Len(t, body.Items, 1)
	assert.Equal(t, approved.ID, body.Items[0].ID)
	assert.Equal(t, 3, body.Counts.All)
	assert.Equal(t, 1, body.Counts.Pending)
	assert.Equal(t, 2, body.Counts.Approved)
	assert.Equal(t, 1, body.Counts.Delivered)

	w = performRequest(a.Router, http.MethodGet, "/api/requests?tab=delivered", nil, carlos)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &body)
	require.Len(t, body.Items, 1)
	assert.Equal(t, deliveredReq.ID, body.Items[0].ID)
}
