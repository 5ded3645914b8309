// file: internals/features/bank/model/question_bank_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CardType string

const (
	CardTypeQuestion CardType = "question"
	CardTypeMaterial CardType = "material"
)

func (t CardType) Valid() bool {
	return t == CardTypeQuestion || t == CardTypeMaterial
}

/* =========================================================
   QUESTION BANKS (root)
========================================================= */

type QuestionBankModel struct {
	QuestionbankID string `gorm:"column:questionbank_id;primaryKey" json:"questionbank_id"`
	Title          string `gorm:"column:title;type:text;not null" json:"title"`
	Description    string `gorm:"column:description;type:text" json:"description"`
	Status         string `gorm:"column:status;type:varchar(16);not null;default:draft" json:"status"`
	// export_date disimpan apa adanya dari exporter (ISO string)
	ExportDate string `gorm:"column:export_date;type:text" json:"export_date"`
	Version    int    `gorm:"column:version;not null;default:1" json:"version"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (QuestionBankModel) TableName() string { return "question_banks" }

/* =========================================================
   PAGES
========================================================= */

type PageModel struct {
	ID             uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	QuestionbankID string    `gorm:"column:questionbank_id;not null;index" json:"questionbank_id"`
	// page_index: 1..n, unik per bank, urutan tampilan
	PageIndex int `gorm:"column:page_index;not null" json:"page_index"`

	// klasifikasi ujian — metadata polos, tanpa invariant turunan
	ExamLanguage string `gorm:"column:exam_language;type:varchar(10)" json:"exam_language"`
	ExamType     string `gorm:"column:exam_type;type:varchar(50)" json:"exam_type"`
	Component    string `gorm:"column:component;type:varchar(50)" json:"component"`
	Category     string `gorm:"column:category;type:varchar(50)" json:"category"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (PageModel) TableName() string { return "question_bank_pages" }

func (m *PageModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

/* =========================================================
   CARDS
========================================================= */

type CardModel struct {
	ID     uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	PageID uuid.UUID `gorm:"column:page_id;type:uuid;not null;index" json:"page_id"`
	// card_type immutable setelah create
	CardType CardType `gorm:"column:card_type;type:varchar(10);not null" json:"card_type"`
	// position: 0..n-1, unik per page
	Position int `gorm:"column:position;not null" json:"position"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (CardModel) TableName() string { return "cards" }

func (m *CardModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
