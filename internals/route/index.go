// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	routeDetails "banksoal_backend/internals/route/details"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== GROUPS =====================
	// Seluruh surface bank soal di bawah /api (belum ada auth layer)
	log.Println("[INFO] Setting up API group...")
	api := app.Group("/api")

	// ===================== MOUNT ROUTES =====================
	log.Println("[INFO] Mounting QuestionBank routes...")
	routeDetails.QuestionBankRoutes(api, db)
}
