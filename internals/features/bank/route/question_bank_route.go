// file: internals/features/bank/route/question_bank_route.go
package route

import (
	bankCtrl "banksoal_backend/internals/features/bank/controller"
	"banksoal_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AllQuestionBankRoutes(r fiber.Router, db *gorm.DB) {
	// Controller untuk bank soal
	bankController := bankCtrl.NewQuestionBankController(db)
	editController := bankCtrl.NewEditController(db)

	// =====================
	// Question Banks (CRUD dokumen)
	// =====================
	qGroup := r.Group("/question-banks")
	qGroup.Get("/", bankController.List) // list ringkasan (paged)
	qGroup.Post("/", middlewares.SaveFormRateLimiter(), bankController.Save)
	qGroup.Get("/:id", bankController.GetByID) // dokumen utuh
	qGroup.Delete("/:id", bankController.Delete)

	// =====================
	// Incremental editing
	// =====================
	qGroup.Get("/:id/edit", editController.GetFormForEdit)
	qGroup.Patch("/:id", editController.UpdateFormMeta)

	qGroup.Post("/:id/pages", editController.AddPage)
	qGroup.Patch("/:id/pages/:pageIndex", editController.UpdatePageMeta)
	qGroup.Delete("/:id/pages/:pageIndex", editController.DeletePage)

	qGroup.Post("/:id/pages/:pageIndex/cards", editController.AddCard)
	qGroup.Delete("/:id/pages/:pageIndex/cards/:position", editController.DeleteCard)

	qGroup.Post("/:id/pages/:pageIndex/cards/:position/contents", editController.AddContent)
	qGroup.Put("/:id/contents/:contentId", editController.UpdateContent)
	qGroup.Delete("/:id/contents/:contentId", editController.DeleteContent) // ?type=<content-type>

	qGroup.Post("/:id/reorganize-answer-ids", editController.ReorganizeAnswerIDs)
}
