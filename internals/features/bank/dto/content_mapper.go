// file: internals/features/bank/dto/content_mapper.go
package dto

import (
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"banksoal_backend/internals/features/bank/model"
)

/* =========================================================
   media_data: bundel referensi image/audio/video soal
========================================================= */

type questionMedia struct {
	QuestionImage *string `json:"question_image"`
	QuestionAudio *string `json:"question_audio"`
	QuestionVideo *string `json:"question_video"`
}

func (it *ContentItem) mediaBlob() datatypes.JSON {
	b, _ := json.Marshal(questionMedia{
		QuestionImage: it.QuestionImage,
		QuestionAudio: it.QuestionAudio,
		QuestionVideo: it.QuestionVideo,
	})
	return datatypes.JSON(b)
}

func applyMediaBlob(it *ContentItem, raw []byte) {
	m := parseOr(raw, questionMedia{})
	it.QuestionImage = m.QuestionImage
	it.QuestionAudio = m.QuestionAudio
	it.QuestionVideo = m.QuestionVideo
}

func marshalJSON(v any) datatypes.JSON {
	b, _ := json.Marshal(v)
	return datatypes.JSON(b)
}

/* =========================================================
   QUESTION FAMILY — toRow
========================================================= */

func (it *ContentItem) ToSingleChoiceModel(cardID uuid.UUID) *model.SingleChoiceQuestionModel {
	it.EnsureID()
	opts := it.Options
	if opts == nil {
		opts = []ContentOption{}
	}
	return &model.SingleChoiceQuestionModel{
		ContentID:     it.ID,
		CardID:        cardID,
		OrderID:       it.OrderID,
		Question:      it.Question,
		AnswerID:      it.AnswerID,
		CorrectAnswer: it.CorrectAnswer,
		Instruction:   it.Instruction,
		Difficulty:    defaultStr(it.Difficulty, "medium"),
		Marks:         defaultFloat(it.Marks, 1),
		OptionsData:   marshalJSON(opts),
		MediaData:     it.mediaBlob(),
	}
}

func (it *ContentItem) ToMultipleChoiceModel(cardID uuid.UUID) *model.MultipleChoiceQuestionModel {
	it.EnsureID()
	opts := it.Options
	if opts == nil {
		opts = []ContentOption{}
	}
	correct := it.CorrectAnswers
	if correct == nil {
		correct = []string{}
	}
	return &model.MultipleChoiceQuestionModel{
		ContentID:      it.ID,
		CardID:         cardID,
		OrderID:        it.OrderID,
		Question:       it.Question,
		AnswerID:       it.AnswerID,
		Instruction:    it.Instruction,
		Difficulty:     defaultStr(it.Difficulty, "medium"),
		Marks:          defaultFloat(it.Marks, 1),
		OptionsData:    marshalJSON(opts),
		CorrectAnswers: marshalJSON(correct),
		MediaData:      it.mediaBlob(),
	}
}

func (it *ContentItem) ToFillInBlankModel(cardID uuid.UUID) *model.FillInBlankQuestionModel {
	it.EnsureID()
	blanks := it.Blanks
	if blanks == nil {
		blanks = []ContentBlank{}
	}
	return &model.FillInBlankQuestionModel{
		ContentID:   it.ID,
		CardID:      cardID,
		OrderID:     it.OrderID,
		Question:    it.Question,
		Instruction: it.Instruction,
		Difficulty:  defaultStr(it.Difficulty, "medium"),
		BlanksData:  marshalJSON(blanks),
		MediaData:   it.mediaBlob(),
	}
}

func (it *ContentItem) ToMatchingModel(cardID uuid.UUID) *model.MatchingQuestionModel {
	it.EnsureID()
	// standar lama: blanks matching disimpan sebagai options_data
	blanks := it.Blanks
	if blanks == nil {
		blanks = []ContentBlank{}
	}
	return &model.MatchingQuestionModel{
		ContentID:   it.ID,
		CardID:      cardID,
		OrderID:     it.OrderID,
		Question:    it.Question,
		Instruction: it.Instruction,
		Difficulty:  defaultStr(it.Difficulty, "medium"),
		OptionsData: marshalJSON(blanks),
		MediaData:   it.mediaBlob(),
	}
}

func (it *ContentItem) ToLongTextModel(cardID uuid.UUID) *model.LongTextQuestionModel {
	it.EnsureID()
	return &model.LongTextQuestionModel{
		ContentID:       it.ID,
		CardID:          cardID,
		OrderID:         it.OrderID,
		Question:        it.Question,
		Instruction:     it.Instruction,
		Difficulty:      defaultStr(it.Difficulty, "medium"),
		Placeholder:     it.Placeholder,
		Rows:            defaultInt(it.Rows, 4),
		SuggestedAnswer: it.SuggestedAnswer,
		Marks:           defaultFloat(it.Marks, 1),
		MediaData:       it.mediaBlob(),
	}
}

func (it *ContentItem) ToAudioModel(cardID uuid.UUID) *model.AudioResponseQuestionModel {
	it.EnsureID()
	return &model.AudioResponseQuestionModel{
		ContentID:        it.ID,
		CardID:           cardID,
		OrderID:          it.OrderID,
		Question:         it.Question,
		Instruction:      it.Instruction,
		Difficulty:       defaultStr(it.Difficulty, "medium"),
		MaxSeconds:       defaultInt(it.MaxSeconds, 60),
		Marks:            defaultFloat(it.Marks, 1),
		AllowRerecording: it.AllowRerecording,
		AllowPause:       it.AllowPause,
		ShowTimer:        it.ShowTimer,
		MediaData:        it.mediaBlob(),
	}
}

func (it *ContentItem) ToLLMAudioModel(cardID uuid.UUID) *model.LLMAudioResponseQuestionModel {
	it.EnsureID()
	return &model.LLMAudioResponseQuestionModel{
		ContentID:                it.ID,
		CardID:                   cardID,
		OrderID:                  it.OrderID,
		Question:                 it.Question,
		Instruction:              it.Instruction,
		Difficulty:               defaultStr(it.Difficulty, "medium"),
		MaxSeconds:               defaultInt(it.MaxSeconds, 60),
		Marks:                    defaultFloat(it.Marks, 1),
		AllowRerecording:         it.AllowRerecording,
		AllowPause:               it.AllowPause,
		ShowTimer:                it.ShowTimer,
		NumberOfQuestions:        defaultInt(it.NumberOfQuestions, 1),
		LLMSessionType:           it.LLMSessionType,
		LinkedLLMSessionID:       it.LinkedLLMSessionID,
		QuestionSpecificSettings: datatypes.JSON(rawOr(it.QuestionSpecificSettings, "{}")),
		MediaData:                it.mediaBlob(),
	}
}

/* =========================================================
   MATERIAL FAMILY — toRow
========================================================= */

func (it *ContentItem) ToTextMaterialModel(cardID uuid.UUID) *model.TextMaterialModel {
	it.EnsureID()
	return &model.TextMaterialModel{
		ContentID:  it.ID,
		CardID:     cardID,
		OrderID:    it.OrderID,
		Title:      it.Title,
		Content:    it.Content,
		ShowTitle:  it.ShowTitle,
		TitleStyle: defaultStr(it.TitleStyle, "h2"),
		IsRichText: it.IsRichText,
	}
}

func (it *ContentItem) ToMultimediaMaterialModel(cardID uuid.UUID) *model.MultimediaMaterialModel {
	it.EnsureID()
	return &model.MultimediaMaterialModel{
		ContentID:    it.ID,
		CardID:       cardID,
		OrderID:      it.OrderID,
		Title:        it.Title,
		ShowTitle:    it.ShowTitle,
		TitleStyle:   defaultStr(it.TitleStyle, "h2"),
		MediaType:    defaultStr(it.MediaType, "image"),
		MediaData:    datatypes.JSON(rawOr(it.Media, "{}")),
		SettingsData: datatypes.JSON(rawOr(it.Settings, "{}")),
	}
}

func (it *ContentItem) ToLLMSessionMaterialModel(cardID uuid.UUID) *model.LLMSessionMaterialModel {
	it.EnsureID()
	return &model.LLMSessionMaterialModel{
		ContentID:       it.ID,
		CardID:          cardID,
		OrderID:         it.OrderID,
		Title:           it.Title,
		ShowTitle:       it.ShowTitle,
		TitleStyle:      defaultStr(it.TitleStyle, "h2"),
		SessionSettings: datatypes.JSON(rawOr(it.SessionSettings, "{}")),
	}
}

/* =========================================================
   fromRow — rekonstruksi item dari baris tabel
========================================================= */

func SingleChoiceFromModel(m *model.SingleChoiceQuestionModel) ContentItem {
	it := ContentItem{
		ID:            m.ContentID,
		Type:          ContentSingleChoice,
		OrderID:       m.OrderID,
		Question:      m.Question,
		AnswerID:      m.AnswerID,
		CorrectAnswer: m.CorrectAnswer,
		Instruction:   m.Instruction,
		Difficulty:    defaultStr(m.Difficulty, "medium"),
		Marks:         defaultFloat(m.Marks, 1),
		Options:       parseOr(m.OptionsData, []ContentOption{}),
	}
	applyMediaBlob(&it, m.MediaData)
	return it
}

func MultipleChoiceFromModel(m *model.MultipleChoiceQuestionModel) ContentItem {
	it := ContentItem{
		ID:             m.ContentID,
		Type:           ContentMultipleChoice,
		OrderID:        m.OrderID,
		Question:       m.Question,
		AnswerID:       m.AnswerID,
		Instruction:    m.Instruction,
		Difficulty:     defaultStr(m.Difficulty, "medium"),
		Marks:          defaultFloat(m.Marks, 1),
		Options:        parseOr(m.OptionsData, []ContentOption{}),
		CorrectAnswers: parseOr(m.CorrectAnswers, []string{}),
	}
	applyMediaBlob(&it, m.MediaData)
	return it
}

func FillInBlankFromModel(m *model.FillInBlankQuestionModel) ContentItem {
	it := ContentItem{
		ID:          m.ContentID,
		Type:        ContentFillInTheBlank,
		OrderID:     m.OrderID,
		Question:    m.Question,
		Instruction: m.Instruction,
		Difficulty:  defaultStr(m.Difficulty, "medium"),
		Blanks:      parseOr(m.BlanksData, []ContentBlank{}),
	}
	applyMediaBlob(&it, m.MediaData)
	return it
}

func MatchingFromModel(m *model.MatchingQuestionModel) ContentItem {
	blanks := parseOr(m.OptionsData, []ContentBlank{})
	it := ContentItem{
		ID:          m.ContentID,
		Type:        ContentMatching,
		OrderID:     m.OrderID,
		Question:    m.Question,
		Instruction: m.Instruction,
		Difficulty:  defaultStr(m.Difficulty, "medium"),
		Blanks:      blanks,
	}
	applyMediaBlob(&it, m.MediaData)
	return it
}

func LongTextFromModel(m *model.LongTextQuestionModel) ContentItem {
	it := ContentItem{
		ID:              m.ContentID,
		Type:            ContentLongText,
		OrderID:         m.OrderID,
		Question:        m.Question,
		Instruction:     m.Instruction,
		Difficulty:      defaultStr(m.Difficulty, "medium"),
		Placeholder:     m.Placeholder,
		Rows:            defaultInt(m.Rows, 4),
		SuggestedAnswer: m.SuggestedAnswer,
		Marks:           defaultFloat(m.Marks, 1),
	}
	applyMediaBlob(&it, m.MediaData)
	return it
}

func AudioFromModel(m *model.AudioResponseQuestionModel) ContentItem {
	it := ContentItem{
		ID:               m.ContentID,
		Type:             ContentAudio,
		OrderID:          m.OrderID,
		Question:         m.Question,
		Instruction:      m.Instruction,
		Difficulty:       defaultStr(m.Difficulty, "medium"),
		MaxSeconds:       defaultInt(m.MaxSeconds, 60),
		Marks:            defaultFloat(m.Marks, 1),
		AllowRerecording: m.AllowRerecording,
		AllowPause:       m.AllowPause,
		ShowTimer:        m.ShowTimer,
	}
	applyMediaBlob(&it, m.MediaData)
	return it
}

func LLMAudioFromModel(m *model.LLMAudioResponseQuestionModel) ContentItem {
	it := ContentItem{
		ID:                       m.ContentID,
		Type:                     ContentLLMAudioResponse,
		OrderID:                  m.OrderID,
		Question:                 m.Question,
		Instruction:              m.Instruction,
		Difficulty:               defaultStr(m.Difficulty, "medium"),
		MaxSeconds:               defaultInt(m.MaxSeconds, 60),
		Marks:                    defaultFloat(m.Marks, 1),
		AllowRerecording:         m.AllowRerecording,
		AllowPause:               m.AllowPause,
		ShowTimer:                m.ShowTimer,
		NumberOfQuestions:        defaultInt(m.NumberOfQuestions, 1),
		LLMSessionType:           m.LLMSessionType,
		LinkedLLMSessionID:       m.LinkedLLMSessionID,
		QuestionSpecificSettings: rawOr(m.QuestionSpecificSettings, "{}"),
	}
	applyMediaBlob(&it, m.MediaData)
	return it
}

func TextMaterialFromModel(m *model.TextMaterialModel) ContentItem {
	return ContentItem{
		ID:         m.ContentID,
		Type:       ContentTextMaterial,
		OrderID:    m.OrderID,
		Title:      m.Title,
		Content:    m.Content,
		ShowTitle:  m.ShowTitle,
		TitleStyle: defaultStr(m.TitleStyle, "h2"),
		IsRichText: m.IsRichText,
	}
}

func MultimediaMaterialFromModel(m *model.MultimediaMaterialModel) ContentItem {
	return ContentItem{
		ID:         m.ContentID,
		Type:       ContentMultimediaMaterial,
		OrderID:    m.OrderID,
		Title:      m.Title,
		ShowTitle:  m.ShowTitle,
		TitleStyle: defaultStr(m.TitleStyle, "h2"),
		MediaType:  defaultStr(m.MediaType, "image"),
		Media:      rawOr(m.MediaData, "{}"),
		Settings:   rawOr(m.SettingsData, "{}"),
	}
}

func LLMSessionMaterialFromModel(m *model.LLMSessionMaterialModel) ContentItem {
	return ContentItem{
		ID:              m.ContentID,
		Type:            ContentLLMSessionMaterial,
		OrderID:         m.OrderID,
		Title:           m.Title,
		ShowTitle:       m.ShowTitle,
		TitleStyle:      defaultStr(m.TitleStyle, "h2"),
		SessionSettings: rawOr(m.SessionSettings, "{}"),
	}
}
