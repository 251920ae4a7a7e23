// controllers/srv.go
package controllers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"toolroom/app"
	"toolroom/directory"
	"toolroom/ledger"
	"toolroom/session"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Srv struct {
	Loans     *ledger.LoanLedger
	Requests  *ledger.RequestLedger
	Dir       directory.Directory
	Sessions  session.Store
	WebOrigin string
	TTL       time.Duration
}

func GetSrv(a *app.App) *Srv {
	return &Srv{
		Loans:     a.Loans,
		Requests:  a.Requests,
		Dir:       a.Dir,
		Sessions:  a.Sessions,
		WebOrigin: a.Config.WebOrigin,
		TTL:       a.Config.SessionTTL,
	}
}

// --- helpers ---

func (s *Srv) setAppCookie(w http.ResponseWriter, sessionID string, maxAge time.Duration) {
	secure := strings.HasPrefix(s.WebOrigin, "https://")
	http.SetCookie(w, &http.Cookie{
		Name:     app.AppSessionCookie,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   secure,
		MaxAge:   int(maxAge / time.Second),
	})
}

func (s *Srv) issueSession(ctx context.Context, w http.ResponseWriter, userID string) error {
	id := uuid.NewString()
	if err := s.Sessions.Create(ctx, id, userID); err != nil {
		return err
	}
	s.setAppCookie(w, id, s.TTL)
	return nil
}

// writeLedgerError maps ledger sentinels onto HTTP status codes.
func writeLedgerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ledger.ErrNotFound):
		c.JSON(http.StatusNotFound, app.H{"error": err.Error()})
	case errors.Is(err, ledger.ErrInvalidTransition):
		c.JSON(http.StatusConflict, app.H{"error": err.Error()})
	case errors.Is(err, ledger.ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
	case errors.Is(err, ledger.ErrPersistence):
		c.JSON(http.StatusBadGateway, app.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
	}
}

// parseDate reads the yyyy-mm-dd filter format used by the date inputs.
func parseDate(v string) (time.Time, error) {
	return time.Parse("2006-01-02", v)
}
