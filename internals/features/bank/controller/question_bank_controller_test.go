// file: internals/features/bank/controller/question_bank_controller_test.go
package controller

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"banksoal_backend/internals/features/bank/service"
)

func statusFor(t *testing.T, err error) int {
	t.Helper()
	app := fiber.New()
	app.Get("/x", func(c *fiber.Ctx) error { return jsonServiceError(c, err) })
	resp, reqErr := app.Test(httptest.NewRequest("GET", "/x", nil))
	if reqErr != nil {
		t.Fatalf("app.Test: %v", reqErr)
	}
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestJsonServiceErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"bank tidak ada", service.ErrBankNotFound, fiber.StatusNotFound},
		{"page tidak ada", service.ErrPageNotFound, fiber.StatusNotFound},
		{"card tidak ada", service.ErrCardNotFound, fiber.StatusNotFound},
		{"konten tidak ada", service.ErrContentNotFound, fiber.StatusNotFound},
		{"tipe konten asing", service.ErrUnknownContentType, fiber.StatusBadRequest},
		{"card_type invalid", service.ErrInvalidCardType, fiber.StatusBadRequest},
		{"konten milik bank lain", service.ErrContentForeignBank, fiber.StatusBadRequest},
		{"konten salah keluarga card", service.ErrContentCardTypeMismatch, fiber.StatusBadRequest},
		{"hapus page terakhir", service.ErrCannotDeleteOnlyPage, fiber.StatusConflict},
		{"error tak dikenal", errors.New("boom"), fiber.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := statusFor(t, tc.err); got != tc.want {
				t.Fatalf("status %d, want %d", got, tc.want)
			}
		})
	}
}
