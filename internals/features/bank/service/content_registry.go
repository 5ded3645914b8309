// file: internals/features/bank/service/content_registry.go
package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	qdto "banksoal_backend/internals/features/bank/dto"
	qmodel "banksoal_backend/internals/features/bank/model"
)

/* =========================================================
   Registry tipe konten
   Satu entry per varian: tabel + keluarga card + serializer.
   Registry murni/stateless; tidak pernah dimutasi saat runtime.
========================================================= */

type contentCodec struct {
	Table  string
	Family qmodel.CardType

	insert     func(tx *gorm.DB, cardID uuid.UUID, it *qdto.ContentItem) error
	listByCard func(tx *gorm.DB, cardID uuid.UUID) ([]qdto.ContentItem, error)
}

func listAs[M any](tx *gorm.DB, cardID uuid.UUID, from func(*M) qdto.ContentItem) ([]qdto.ContentItem, error) {
	var rows []M
	if err := tx.Where("card_id = ?", cardID).Order("order_id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]qdto.ContentItem, 0, len(rows))
	for i := range rows {
		out = append(out, from(&rows[i]))
	}
	return out, nil
}

var contentRegistry = map[qdto.ContentType]contentCodec{
	qdto.ContentSingleChoice: {
		Table: "single_choice_questions", Family: qmodel.CardTypeQuestion,
		insert: func(tx *gorm.DB, cardID uuid.UUID, it *qdto.ContentItem) error {
			return tx.Create(it.ToSingleChoiceModel(cardID)).Error
		},
		listByCard: func(tx *gorm.DB, cardID uuid.UUID) ([]qdto.ContentItem, error) {
			return listAs(tx, cardID, qdto.SingleChoiceFromModel)
		},
	},
	qdto.ContentMultipleChoice: {
		Table: "multiple_choice_questions", Family: qmodel.CardTypeQuestion,
		insert: func(tx *gorm.DB, cardID uuid.UUID, it *qdto.ContentItem) error {
			return tx.Create(it.ToMultipleChoiceModel(cardID)).Error
		},
		listByCard: func(tx *gorm.DB, cardID uuid.UUID) ([]qdto.ContentItem, error) {
			return listAs(tx, cardID, qdto.MultipleChoiceFromModel)
		},
	},
	qdto.ContentFillInTheBlank: {
		Table: "fill_in_blank_questions", Family: qmodel.CardTypeQuestion,
		insert: func(tx *gorm.DB, cardID uuid.UUID, it *qdto.ContentItem) error {
			return tx.Create(it.ToFillInBlankModel(cardID)).Error
		},
		listByCard: func(tx *gorm.DB, cardID uuid.UUID) ([]qdto.ContentItem, error) {
			return listAs(tx, cardID, qdto.FillInBlankFromModel)
		},
	},
	qdto.ContentMatching: {
		Table: "matching_questions", Family: qmodel.CardTypeQuestion,
		insert: func(tx *gorm.DB, cardID uuid.UUID, it *qdto.ContentItem) error {
			return tx.Create(it.ToMatchingModel(cardID)).Error
		},
		listByCard: func(tx *gorm.DB, cardID uuid.UUID) ([]qdto.ContentItem, error) {
			return listAs(tx, cardID, qdto.MatchingFromModel)
		},
	},
	qdto.ContentLongText: {
		Table: "long_text_questions", Family: qmodel.CardTypeQuestion,
		insert: func(tx *gorm.DB, cardID uuid.UUID, it *qdto.ContentItem) error {
			return tx.Create(it.ToLongTextModel(cardID)).Error
		},
		listByCard: func(tx *gorm.DB, cardID uuid.UUID) ([]qdto.ContentItem, error) {
			return listAs(tx, cardID, qdto.LongTextFromModel)
		},
	},
	qdto.ContentAudio: {
		Table: "audio_response_questions", Family: qmodel.CardTypeQuestion,
		insert: func(tx *gorm.DB, cardID uuid.UUID, it *qdto.ContentItem) error {
			return tx.Create(it.ToAudioModel(cardID)).Error
		},
		listByCard: func(tx *gorm.DB, cardID uuid.UUID) ([]qdto.ContentItem, error) {
			return listAs(tx, cardID, qdto.AudioFromModel)
		},
	},
	qdto.ContentLLMAudioResponse: {
		Table: "llm_audio_response_questions", Family: qmodel.CardTypeQuestion,
		insert: func(tx *gorm.DB, cardID uuid.UUID, it *qdto.ContentItem) error {
			return tx.Create(it.ToLLMAudioModel(cardID)).Error
		},
		listByCard: func(tx *gorm.DB, cardID uuid.UUID) ([]qdto.ContentItem, error) {
			return listAs(tx, cardID, qdto.LLMAudioFromModel)
		},
	},
	qdto.ContentTextMaterial: {
		Table: "text_materials", Family: qmodel.CardTypeMaterial,
		insert: func(tx *gorm.DB, cardID uuid.UUID, it *qdto.ContentItem) error {
			return tx.Create(it.ToTextMaterialModel(cardID)).Error
		},
		listByCard: func(tx *gorm.DB, cardID uuid.UUID) ([]qdto.ContentItem, error) {
			return listAs(tx, cardID, qdto.TextMaterialFromModel)
		},
	},
	qdto.ContentMultimediaMaterial: {
		Table: "multimedia_materials", Family: qmodel.CardTypeMaterial,
		insert: func(tx *gorm.DB, cardID uuid.UUID, it *qdto.ContentItem) error {
			return tx.Create(it.ToMultimediaMaterialModel(cardID)).Error
		},
		listByCard: func(tx *gorm.DB, cardID uuid.UUID) ([]qdto.ContentItem, error) {
			return listAs(tx, cardID, qdto.MultimediaMaterialFromModel)
		},
	},
	qdto.ContentLLMSessionMaterial: {
		Table: "llm_session_materials", Family: qmodel.CardTypeMaterial,
		insert: func(tx *gorm.DB, cardID uuid.UUID, it *qdto.ContentItem) error {
			return tx.Create(it.ToLLMSessionMaterialModel(cardID)).Error
		},
		listByCard: func(tx *gorm.DB, cardID uuid.UUID) ([]qdto.ContentItem, error) {
			return listAs(tx, cardID, qdto.LLMSessionMaterialFromModel)
		},
	},
}

// Urutan scan deterministik saat merge konten lintas tabel (hasil akhir
// tetap diurutkan ulang by order_id).
var contentTypeOrder = []qdto.ContentType{
	qdto.ContentSingleChoice,
	qdto.ContentMultipleChoice,
	qdto.ContentFillInTheBlank,
	qdto.ContentMatching,
	qdto.ContentLongText,
	qdto.ContentAudio,
	qdto.ContentLLMAudioResponse,
	qdto.ContentTextMaterial,
	qdto.ContentMultimediaMaterial,
	qdto.ContentLLMSessionMaterial,
}

// ResolveContentType mengembalikan codec untuk satu tag tipe.
func ResolveContentType(t qdto.ContentType) (contentCodec, error) {
	c, ok := contentRegistry[t]
	if !ok {
		return contentCodec{}, ErrUnknownContentType
	}
	return c, nil
}

func codecsForFamily(family qmodel.CardType) []contentCodec {
	out := make([]contentCodec, 0, 7)
	for _, t := range contentTypeOrder {
		if c := contentRegistry[t]; c.Family == family {
			out = append(out, c)
		}
	}
	return out
}

func allContentTables() []string {
	out := make([]string, 0, len(contentTypeOrder))
	for _, t := range contentTypeOrder {
		out = append(out, contentRegistry[t].Table)
	}
	return out
}
