// internals/route/index.go
package route

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "grofast_backend/internals/features/auth/route"
	chatHub "grofast_backend/internals/features/chat/hub"
	"grofast_backend/internals/route/details"

	rateLimiter "grofast_backend/internals/middlewares"
	authMw "grofast_backend/internals/middlewares/auth"
)

// SetupRoutes wires every route group onto the app.
//
//	/api/auth : public auth surface (login, refresh, csrf) + me/change-password
//	/api/u    : any signed-in employee
//	/api/a    : admin only
func SetupRoutes(app *fiber.App, db *gorm.DB, hub *chatHub.Hub) {
	log.Println("📡 Registering routes...")

	app.Use("/api", rateLimiter.GlobalRateLimiter())

	authRoute.AuthRoutes(app, db)

	userGroup := app.Group("/api/u", authMw.AuthMiddleware(db))
	details.UserRoutes(userGroup, db, hub)

	adminGroup := app.Group("/api/a",
		authMw.AuthMiddleware(db),
		authMw.AdminOnly("admin panel"),
	)
	details.AdminRoutes(adminGroup, db)

	log.Println("✅ Routes registered")
}
