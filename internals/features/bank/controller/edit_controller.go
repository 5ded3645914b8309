// file: internals/features/bank/controller/edit_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	qdto "banksoal_backend/internals/features/bank/dto"
	"banksoal_backend/internals/features/bank/service"
	helper "banksoal_backend/internals/helpers"
)

/* =========================================================
   Incremental edit (tanpa whole-form save)
========================================================= */

type EditController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Service  *service.FormProcessingService
}

func NewEditController(db *gorm.DB) *EditController {
	return &EditController{
		DB:       db,
		Validate: validator.New(),
		Service:  service.NewFormProcessingService(db),
	}
}

/* ========== Form ========== */

// GET /:id/edit — dokumen utuh untuk dimuat ke editor
func (ctrl *EditController) GetFormForEdit(c *fiber.Ctx) error {
	doc, err := ctrl.Service.GetBank(c.Context(), c.Params("id"))
	if err != nil {
		return jsonServiceError(c, err)
	}
	return helper.JsonOK(c, "Form berhasil diambil", doc)
}

// PATCH /:id — update metadata bank (title/description/status)
func (ctrl *EditController) UpdateFormMeta(c *fiber.Ctx) error {
	var req qdto.UpdateBankMetaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		if fe := helper.AsValidationErrors(err); fe != nil {
			return helper.JsonValidationError(c, fe)
		}
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctrl.Service.UpdateBankMeta(c.Context(), c.Params("id"), &req); err != nil {
		return jsonServiceError(c, err)
	}
	return helper.JsonUpdated(c, "Metadata bank soal berhasil diperbarui", fiber.Map{
		"questionbank_id": c.Params("id"),
	})
}

/* ========== Pages ========== */

// POST /:id/pages — tambah halaman di akhir
func (ctrl *EditController) AddPage(c *fiber.Ctx) error {
	var req qdto.PageMetaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}
	res, err := ctrl.Service.AddPage(c.Context(), c.Params("id"), &req)
	if err != nil {
		return jsonServiceError(c, err)
	}
	return helper.JsonCreated(c, "Halaman berhasil ditambahkan", res)
}

// PATCH /:id/pages/:pageIndex — update metadata halaman
func (ctrl *EditController) UpdatePageMeta(c *fiber.Ctx) error {
	pageIndex, err := c.ParamsInt("pageIndex")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "pageIndex tidak valid")
	}
	var req qdto.PageMetaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}
	if err := ctrl.Service.UpdatePageMeta(c.Context(), c.Params("id"), pageIndex, &req); err != nil {
		return jsonServiceError(c, err)
	}
	return helper.JsonUpdated(c, "Metadata halaman berhasil diperbarui", fiber.Map{
		"questionbank_id": c.Params("id"),
		"page_index":      pageIndex,
	})
}

// DELETE /:id/pages/:pageIndex — hapus halaman (halaman terakhir ditolak)
func (ctrl *EditController) DeletePage(c *fiber.Ctx) error {
	pageIndex, err := c.ParamsInt("pageIndex")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "pageIndex tidak valid")
	}
	if err := ctrl.Service.DeletePage(c.Context(), c.Params("id"), pageIndex); err != nil {
		return jsonServiceError(c, err)
	}
	return helper.JsonDeleted(c, "Halaman berhasil dihapus", fiber.Map{
		"questionbank_id": c.Params("id"),
		"page_index":      pageIndex,
	})
}

/* ========== Cards ========== */

// POST /:id/pages/:pageIndex/cards — tambah card (posisi opsional)
func (ctrl *EditController) AddCard(c *fiber.Ctx) error {
	pageIndex, err := c.ParamsInt("pageIndex")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "pageIndex tidak valid")
	}
	var req qdto.AddCardRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		if fe := helper.AsValidationErrors(err); fe != nil {
			return helper.JsonValidationError(c, fe)
		}
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	res, err := ctrl.Service.AddCard(c.Context(), c.Params("id"), pageIndex, &req)
	if err != nil {
		return jsonServiceError(c, err)
	}
	return helper.JsonCreated(c, "Card berhasil ditambahkan", res)
}

// DELETE /:id/pages/:pageIndex/cards/:position — hapus card + isinya
func (ctrl *EditController) DeleteCard(c *fiber.Ctx) error {
	pageIndex, err := c.ParamsInt("pageIndex")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "pageIndex tidak valid")
	}
	position, err := c.ParamsInt("position")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "position tidak valid")
	}
	if err := ctrl.Service.DeleteCard(c.Context(), c.Params("id"), pageIndex, position); err != nil {
		return jsonServiceError(c, err)
	}
	return helper.JsonDeleted(c, "Card berhasil dihapus", fiber.Map{
		"questionbank_id": c.Params("id"),
		"page_index":      pageIndex,
		"position":        position,
	})
}

/* ========== Contents ========== */

// POST /:id/pages/:pageIndex/cards/:position/contents — tambah item konten
func (ctrl *EditController) AddContent(c *fiber.Ctx) error {
	pageIndex, err := c.ParamsInt("pageIndex")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "pageIndex tidak valid")
	}
	position, err := c.ParamsInt("position")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "position tidak valid")
	}
	var it qdto.ContentItem
	if err := c.BodyParser(&it); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}
	res, err := ctrl.Service.AddContent(c.Context(), c.Params("id"), pageIndex, position, &it)
	if err != nil {
		return jsonServiceError(c, err)
	}
	return helper.JsonCreated(c, "Konten berhasil ditambahkan", res)
}

// PUT /:id/contents/:contentId — ganti isi konten (tipe tetap)
func (ctrl *EditController) UpdateContent(c *fiber.Ctx) error {
	var it qdto.ContentItem
	if err := c.BodyParser(&it); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}
	if err := ctrl.Service.UpdateContent(c.Context(), c.Params("id"), c.Params("contentId"), &it); err != nil {
		return jsonServiceError(c, err)
	}
	return helper.JsonUpdated(c, "Konten berhasil diperbarui", fiber.Map{
		"questionbank_id": c.Params("id"),
		"content_id":      c.Params("contentId"),
	})
}

// DELETE /:id/contents/:contentId?type=<content-type> — hapus item konten
func (ctrl *EditController) DeleteContent(c *fiber.Ctx) error {
	ctype := c.Query("type")
	if ctype == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "query ?type wajib diisi")
	}
	res, err := ctrl.Service.DeleteContent(c.Context(), c.Params("id"), c.Params("contentId"), qdto.ContentType(ctype))
	if err != nil {
		return jsonServiceError(c, err)
	}
	return helper.JsonDeleted(c, "Konten berhasil dihapus", res)
}

// POST /:id/reorganize-answer-ids — rapikan seluruh answer id
func (ctrl *EditController) ReorganizeAnswerIDs(c *fiber.Ctx) error {
	doc, err := ctrl.Service.ReorganizeAnswerIDs(c.Context(), c.Params("id"))
	if err != nil {
		return jsonServiceError(c, err)
	}
	return helper.JsonUpdated(c, "Answer ID berhasil dirapikan", doc)
}
