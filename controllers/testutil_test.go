package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"toolroom/app"
	"toolroom/directory"
	"toolroom/ledger"
	"toolroom/memstore"
	"toolroom/routes"
	"toolroom/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const (
	staffEmail     = "joao@empresa.com"
	otherStaff     = "maria@empresa.com"
	purchaserEmail = "compras@empresa.com"
	demoPassword   = "123"
)

// newTestApp wires a full router over in-memory stores. No redis, no
// postgres.
func newTestApp(t *testing.T) *app.App {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users, err := directory.SeedUsers(demoPassword)
	require.NoError(t, err)

	ctx := context.Background()
	a := &app.App{
		Router:   gin.New(),
		Config:   app.Config{WebOrigin: "http://localhost:5173", SessionTTL: time.Hour},
		Dir:      directory.NewMem(users),
		Sessions: session.NewMemStore(time.Hour),
		Loans:    ledger.NewLoanLedger(ctx, memstore.NewLoanStore()),
		Requests: ledger.NewRequestLedger(ctx, memstore.NewRequestStore()),
	}
	routes.RegisterRoutes(a)
	return a
}

func performRequest(r http.Handler, method, path string, body any, cookie *http.Cookie) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// login signs in through the real endpoint and hands back the session
// cookie for subsequent calls.
func login(t *testing.T, a *app.App, email string) *http.Cookie {
	t.Helper()
	w := performRequest(a.Router, http.MethodPost, "/api/login",
		gin.H{"email": email, "password": demoPassword}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	for _, ck := range w.Result().Cookies() {
		if ck.Name == app.AppSessionCookie {
			return ck
		}
	}
	t.Fatal("login response carried no session cookie")
	return nil
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
}
