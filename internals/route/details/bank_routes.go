package details

import (
	QuestionBankRoute "banksoal_backend/internals/features/bank/route"
	DBMiddleware "banksoal_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Contoh akses: /api/question-banks
func QuestionBankRoutes(api fiber.Router, db *gorm.DB) {
	api.Use(DBMiddleware.DBMiddleware(db))
	QuestionBankRoute.AllQuestionBankRoutes(api, db)
}
