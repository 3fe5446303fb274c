// file: internals/route/index.go
package routes

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	absensiRoute "absensiku_backend/internals/features/absensi/route"
	"absensiku_backend/internals/features/absensi/stream"
	userRoute "absensiku_backend/internals/features/users/route"
	authMiddleware "absensiku_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, hub *stream.Hub) {
	// ===================== PRIVATE (per-user namespace) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
	)

	// ===================== MOUNT ROUTES =====================
	log.Println("[INFO] Mounting Auth routes...")
	userRoute.AuthRoutes(app, private, db)

	log.Println("[INFO] Mounting Absensi routes...")
	absensiRoute.AbsensiRoutes(private, db, hub)
}
