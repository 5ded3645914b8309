// file: internals/features/bank/controller/question_bank_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	qdto "banksoal_backend/internals/features/bank/dto"
	"banksoal_backend/internals/features/bank/service"
	helper "banksoal_backend/internals/helpers"
)

type QuestionBankController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Service  *service.FormProcessingService
}

func NewQuestionBankController(db *gorm.DB) *QuestionBankController {
	return &QuestionBankController{
		DB:       db,
		Validate: validator.New(),
		Service:  service.NewFormProcessingService(db),
	}
}

// jsonServiceError memetakan sentinel error service ke status HTTP.
func jsonServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrBankNotFound),
		errors.Is(err, service.ErrPageNotFound),
		errors.Is(err, service.ErrCardNotFound),
		errors.Is(err, service.ErrContentNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrUnknownContentType),
		errors.Is(err, service.ErrInvalidCardType),
		errors.Is(err, service.ErrContentForeignBank),
		errors.Is(err, service.ErrContentCardTypeMismatch):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrCannotDeleteOnlyPage):
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
	}
}

/* =========================================================
   GET / — daftar bank (paged)
========================================================= */

func (ctrl *QuestionBankController) List(c *fiber.Ctx) error {
	all, err := ctrl.Service.ListBanks(c.Context())
	if err != nil {
		return jsonServiceError(c, err)
	}

	p := helper.ResolvePaging(c, 20, 100)
	total := int64(len(all))
	start := p.Offset
	if start > len(all) {
		start = len(all)
	}
	end := start + p.Limit
	if end > len(all) {
		end = len(all)
	}

	return helper.JsonList(c, "Daftar bank soal berhasil diambil", all[start:end],
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* =========================================================
   GET /:id — dokumen utuh
========================================================= */

func (ctrl *QuestionBankController) GetByID(c *fiber.Ctx) error {
	doc, err := ctrl.Service.GetBank(c.Context(), c.Params("id"))
	if err != nil {
		return jsonServiceError(c, err)
	}
	return helper.JsonOK(c, "Bank soal berhasil diambil", doc)
}

/* =========================================================
   POST / — whole-form save (delete-and-recreate)
========================================================= */

func (ctrl *QuestionBankController) Save(c *fiber.Ctx) error {
	var doc qdto.QuestionBankDocument
	if err := c.BodyParser(&doc); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}
	if err := ctrl.Validate.Struct(&doc); err != nil {
		if fe := helper.AsValidationErrors(err); fe != nil {
			return helper.JsonValidationError(c, fe)
		}
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	res, err := ctrl.Service.ProcessForm(c.Context(), &doc)
	if err != nil {
		return jsonServiceError(c, err)
	}
	if res.IsUpdate {
		return helper.JsonUpdated(c, "Bank soal berhasil diperbarui", res)
	}
	return helper.JsonCreated(c, "Bank soal berhasil disimpan", res)
}

/* =========================================================
   DELETE /:id — hapus bank beserta seluruh isinya
========================================================= */

func (ctrl *QuestionBankController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := ctrl.Service.DeleteBank(c.Context(), id); err != nil {
		return jsonServiceError(c, err)
	}
	return helper.JsonDeleted(c, "Bank soal berhasil dihapus", fiber.Map{"questionbank_id": id})
}
