package routes

import (
	"time"

	"toolroom/app"
	"toolroom/controllers"
	"toolroom/models"
)

func RegisterRoutes(a *app.App) {
	s := controllers.GetSrv(a)
	authCtl := controllers.NewAuthController(s)
	loanCtl := controllers.NewLoanController(s)
	reqCtl := controllers.NewRequestController(s)

	authMW := app.AuthRequired(a.Sessions, a.Dir)
	staffMW := app.RoleRequired(models.RoleStaff)
	purchaserMW := app.RoleRequired(models.RolePurchaser)
	seenMW := app.TouchLastSeen(a.Dir, a.RDB, 5*time.Minute)

	// ------------------------------
	// Session
	// ------------------------------
	a.Router.POST("/api/login", authCtl.Login)

	me := a.Router.Group("/api", authMW, seenMW)
	{
		me.GET("/me", authCtl.Me)
		me.POST("/logout", authCtl.Logout)
	}

	// ------------------------------
	// Loans (toolroom staff only)
	// ------------------------------
	loans := a.Router.Group("/api/loans", authMW, seenMW, staffMW)
	{
		loans.GET("", loanCtl.List) // ?tab=all|pending|returned&q=&date=&category=
		loans.POST("", loanCtl.Create)
		loans.POST("/:id/return", loanCtl.Return)
	}

	// ------------------------------
	// Purchase requests
	// ------------------------------
	// any signed-in user manages their own requests
	reqs := a.Router.Group("/api/requests", authMW, seenMW)
	{
		reqs.POST("", reqCtl.Create)
		reqs.GET("/mine", reqCtl.ListMine)
		reqs.PUT("/:id", reqCtl.Update)
		reqs.DELETE("/:id", reqCtl.Delete)
	}

	// purchasing desk moderates
	mod := a.Router.Group("/api/requests", authMW, seenMW, purchaserMW)
	{
		mod.GET("", reqCtl.List) // ?tab=&q=&date=&category=
		mod.POST("/:id/approve", reqCtl.Approve)
		mod.POST("/:id/reject", reqCtl.Reject)
		mod.POST("/:id/deliver", reqCtl.Deliver)
	}
}
