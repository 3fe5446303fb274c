// file: internals/features/users/route/auth_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "absensiku_backend/internals/features/users/controller"
	"absensiku_backend/internals/middlewares"
)

// AuthRoutes: endpoint publik (register/login) + /me di group private.
func AuthRoutes(app *fiber.App, private fiber.Router, db *gorm.DB) {
	v := validator.New()
	ctl := userController.NewAuthController(db, v)

	auth := app.Group("/api/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)

	private.Get("/me", ctl.Me)
}
