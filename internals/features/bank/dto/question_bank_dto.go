// file: internals/features/bank/dto/question_bank_dto.go
package dto

import "time"

/* =========================================================
   Dokumen utuh (shape exporter/editor)
========================================================= */

type ExamCategories struct {
	ExamLanguage string `json:"exam_language,omitempty"`
	ExamType     string `json:"exam_type,omitempty"`
	Component    string `json:"component,omitempty"`
	Category     string `json:"category,omitempty"`
}

type CardDTO struct {
	CardType string        `json:"card_type" validate:"required,oneof=question material"`
	Position int           `json:"position"`
	Contents []ContentItem `json:"contents"`
}

type PageDTO struct {
	PageIndex      int             `json:"page_index"`
	ExamLanguage   string          `json:"exam_language,omitempty"`
	ExamCategories *ExamCategories `json:"exam_categories,omitempty"`
	Cards          []CardDTO       `json:"cards"`
}

// Language mengambil bahasa halaman dari exam_categories bila ada,
// fallback ke field lama exam_language, default "en".
func (p *PageDTO) Language() string {
	if p.ExamCategories != nil && p.ExamCategories.ExamLanguage != "" {
		return p.ExamCategories.ExamLanguage
	}
	return defaultStr(p.ExamLanguage, "en")
}

type QuestionBankDocument struct {
	QuestionbankID string    `json:"questionbank_id,omitempty"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	Status         string    `json:"status,omitempty"`
	ExportDate     string    `json:"exportDate,omitempty"`
	Version        int       `json:"version,omitempty"`
	CreatedAt      string    `json:"created_at,omitempty"`
	UpdatedAt      string    `json:"updated_at,omitempty"`
	Pages          []PageDTO `json:"pages"`
}

/* =========================================================
   Hasil operasi
========================================================= */

type ProcessFormResult struct {
	QuestionbankID string `json:"questionbank_id"`
	IsUpdate       bool   `json:"is_update"`
}

type AddPageResult struct {
	QuestionbankID string `json:"questionbank_id"`
	PageIndex      int    `json:"page_index"`
	ExamLanguage   string `json:"exam_language"`
	ExamType       string `json:"exam_type"`
	Component      string `json:"component"`
	Category       string `json:"category"`
}

type AddCardResult struct {
	QuestionbankID string `json:"questionbank_id"`
	PageIndex      int    `json:"page_index"`
	CardID         string `json:"card_id"`
	CardType       string `json:"card_type"`
	Position       int    `json:"position"`
}

type AddContentResult struct {
	QuestionbankID string `json:"questionbank_id"`
	PageIndex      int    `json:"page_index"`
	CardPosition   int    `json:"card_position"`
	ContentID      string `json:"content_id"`
	ContentType    string `json:"content_type"`
	OrderID        int    `json:"order_id"`
}

type DeleteContentResult struct {
	QuestionbankID string `json:"questionbank_id"`
	ContentID      string `json:"content_id"`
	ContentType    string `json:"content_type"`
	CardRemoved    bool   `json:"card_removed"`
}

// Ringkasan untuk list bank (join metadata halaman pertama + jumlah soal).
type QuestionBankSummary struct {
	QuestionbankID string    `json:"questionbank_id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Status         string    `json:"status"`
	ExportDate     string    `json:"export_date"`
	Version        int       `json:"version"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	ExamLanguage   string    `json:"exam_language"`
	ExamType       string    `json:"exam_type"`
	Component      string    `json:"component"`
	Category       string    `json:"category"`
	QuestionCount  int       `json:"question_count"`
}

/* =========================================================
   Request incremental edit
========================================================= */

type UpdateBankMetaRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1"`
	Description *string `json:"description"`
	Status      *string `json:"status" validate:"omitempty,oneof=draft published archived"`
}

type PageMetaRequest struct {
	ExamLanguage *string `json:"exam_language"`
	ExamType     *string `json:"exam_type"`
	Component    *string `json:"component"`
	Category     *string `json:"category"`
}

type AddCardRequest struct {
	CardType string `json:"card_type" validate:"required,oneof=question material"`
	Position *int   `json:"position" validate:"omitempty,gte=0"`
}
