// file: internals/features/bank/model/material_content_models.go
package model

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* =========================================================
   CONTENT — MATERIAL FAMILY
========================================================= */

type TextMaterialModel struct {
	ContentID string    `gorm:"column:content_id;primaryKey" json:"content_id"`
	CardID    uuid.UUID `gorm:"column:card_id;type:uuid;not null;index" json:"card_id"`
	OrderID   int       `gorm:"column:order_id;not null" json:"order_id"`

	Title      string `gorm:"column:title;type:text" json:"title"`
	Content    string `gorm:"column:content;type:text" json:"content"`
	ShowTitle  bool   `gorm:"column:show_title;not null;default:false" json:"show_title"`
	TitleStyle string `gorm:"column:title_style;type:varchar(10);not null;default:h2" json:"title_style"`
	IsRichText bool   `gorm:"column:is_rich_text;not null;default:false" json:"is_rich_text"`
}

func (TextMaterialModel) TableName() string { return "text_materials" }

type MultimediaMaterialModel struct {
	ContentID string    `gorm:"column:content_id;primaryKey" json:"content_id"`
	CardID    uuid.UUID `gorm:"column:card_id;type:uuid;not null;index" json:"card_id"`
	OrderID   int       `gorm:"column:order_id;not null" json:"order_id"`

	Title      string `gorm:"column:title;type:text" json:"title"`
	ShowTitle  bool   `gorm:"column:show_title;not null;default:false" json:"show_title"`
	TitleStyle string `gorm:"column:title_style;type:varchar(10);not null;default:h2" json:"title_style"`
	MediaType  string `gorm:"column:media_type;type:varchar(10);not null;default:image" json:"media_type"`

	MediaData    datatypes.JSON `gorm:"column:media_data" json:"media_data"`
	SettingsData datatypes.JSON `gorm:"column:settings_data" json:"settings_data"`
}

func (MultimediaMaterialModel) TableName() string { return "multimedia_materials" }

type LLMSessionMaterialModel struct {
	ContentID string    `gorm:"column:content_id;primaryKey" json:"content_id"`
	CardID    uuid.UUID `gorm:"column:card_id;type:uuid;not null;index" json:"card_id"`
	OrderID   int       `gorm:"column:order_id;not null" json:"order_id"`

	Title      string `gorm:"column:title;type:text" json:"title"`
	ShowTitle  bool   `gorm:"column:show_title;not null;default:false" json:"show_title"`
	TitleStyle string `gorm:"column:title_style;type:varchar(10);not null;default:h2" json:"title_style"`

	SessionSettings datatypes.JSON `gorm:"column:session_settings" json:"session_settings"`
}

func (LLMSessionMaterialModel) TableName() string { return "llm_session_materials" }
