// file: internals/features/bank/model/question_content_models.go
package model

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* =========================================================
   CONTENT — QUESTION FAMILY
   Semua tabel konten berbagi kolom: content_id (unik),
   card_id (FK ke cards), order_id (0..n-1 per card).
========================================================= */

type SingleChoiceQuestionModel struct {
	ContentID string    `gorm:"column:content_id;primaryKey" json:"content_id"`
	CardID    uuid.UUID `gorm:"column:card_id;type:uuid;not null;index" json:"card_id"`
	OrderID   int       `gorm:"column:order_id;not null" json:"order_id"`

	Question      string `gorm:"column:question;type:text" json:"question"`
	AnswerID      *int   `gorm:"column:answer_id" json:"answer_id,omitempty"`
	CorrectAnswer string `gorm:"column:correct_answer;type:text" json:"correct_answer"`
	Instruction   string `gorm:"column:instruction;type:text" json:"instruction"`
	Difficulty    string `gorm:"column:difficulty;type:varchar(10);not null;default:medium" json:"difficulty"`
	Marks         float64 `gorm:"column:marks;not null;default:1" json:"marks"`

	OptionsData datatypes.JSON `gorm:"column:options_data" json:"options_data"`
	MediaData   datatypes.JSON `gorm:"column:media_data" json:"media_data"`
}

func (SingleChoiceQuestionModel) TableName() string { return "single_choice_questions" }

type MultipleChoiceQuestionModel struct {
	ContentID string    `gorm:"column:content_id;primaryKey" json:"content_id"`
	CardID    uuid.UUID `gorm:"column:card_id;type:uuid;not null;index" json:"card_id"`
	OrderID   int       `gorm:"column:order_id;not null" json:"order_id"`

	Question    string  `gorm:"column:question;type:text" json:"question"`
	AnswerID    *int    `gorm:"column:answer_id" json:"answer_id,omitempty"`
	Instruction string  `gorm:"column:instruction;type:text" json:"instruction"`
	Difficulty  string  `gorm:"column:difficulty;type:varchar(10);not null;default:medium" json:"difficulty"`
	Marks       float64 `gorm:"column:marks;not null;default:1" json:"marks"`

	OptionsData    datatypes.JSON `gorm:"column:options_data" json:"options_data"`
	CorrectAnswers datatypes.JSON `gorm:"column:correct_answers" json:"correct_answers"`
	MediaData      datatypes.JSON `gorm:"column:media_data" json:"media_data"`
}

func (MultipleChoiceQuestionModel) TableName() string { return "multiple_choice_questions" }

// Soal isian: teks soal memuat placeholder [blank_N]; tiap blank bawa
// answer_id sendiri di blanks_data.
type FillInBlankQuestionModel struct {
	ContentID string    `gorm:"column:content_id;primaryKey" json:"content_id"`
	CardID    uuid.UUID `gorm:"column:card_id;type:uuid;not null;index" json:"card_id"`
	OrderID   int       `gorm:"column:order_id;not null" json:"order_id"`

	Question    string `gorm:"column:question;type:text" json:"question"`
	Instruction string `gorm:"column:instruction;type:text" json:"instruction"`
	Difficulty  string `gorm:"column:difficulty;type:varchar(10);not null;default:medium" json:"difficulty"`

	BlanksData datatypes.JSON `gorm:"column:blanks_data" json:"blanks_data"`
	MediaData  datatypes.JSON `gorm:"column:media_data" json:"media_data"`
}

func (FillInBlankQuestionModel) TableName() string { return "fill_in_blank_questions" }

// Matching menyimpan daftar blank-nya di options_data (bukan blanks_data),
// mengikuti skema lama; retriever membacanya kembali sebagai blanks.
type MatchingQuestionModel struct {
	ContentID string    `gorm:"column:content_id;primaryKey" json:"content_id"`
	CardID    uuid.UUID `gorm:"column:card_id;type:uuid;not null;index" json:"card_id"`
	OrderID   int       `gorm:"column:order_id;not null" json:"order_id"`

	Question    string `gorm:"column:question;type:text" json:"question"`
	Instruction string `gorm:"column:instruction;type:text" json:"instruction"`
	Difficulty  string `gorm:"column:difficulty;type:varchar(10);not null;default:medium" json:"difficulty"`

	OptionsData datatypes.JSON `gorm:"column:options_data" json:"options_data"`
	MediaData   datatypes.JSON `gorm:"column:media_data" json:"media_data"`
}

func (MatchingQuestionModel) TableName() string { return "matching_questions" }

type LongTextQuestionModel struct {
	ContentID string    `gorm:"column:content_id;primaryKey" json:"content_id"`
	CardID    uuid.UUID `gorm:"column:card_id;type:uuid;not null;index" json:"card_id"`
	OrderID   int       `gorm:"column:order_id;not null" json:"order_id"`

	Question        string  `gorm:"column:question;type:text" json:"question"`
	Instruction     string  `gorm:"column:instruction;type:text" json:"instruction"`
	Difficulty      string  `gorm:"column:difficulty;type:varchar(10);not null;default:medium" json:"difficulty"`
	Placeholder     string  `gorm:"column:placeholder;type:text" json:"placeholder"`
	Rows            int     `gorm:"column:rows;not null;default:4" json:"rows"`
	SuggestedAnswer string  `gorm:"column:suggested_answer;type:text" json:"suggested_answer"`
	Marks           float64 `gorm:"column:marks;not null;default:1" json:"marks"`

	MediaData datatypes.JSON `gorm:"column:media_data" json:"media_data"`
}

func (LongTextQuestionModel) TableName() string { return "long_text_questions" }

type AudioResponseQuestionModel struct {
	ContentID string    `gorm:"column:content_id;primaryKey" json:"content_id"`
	CardID    uuid.UUID `gorm:"column:card_id;type:uuid;not null;index" json:"card_id"`
	OrderID   int       `gorm:"column:order_id;not null" json:"order_id"`

	Question         string  `gorm:"column:question;type:text" json:"question"`
	Instruction      string  `gorm:"column:instruction;type:text" json:"instruction"`
	Difficulty       string  `gorm:"column:difficulty;type:varchar(10);not null;default:medium" json:"difficulty"`
	MaxSeconds       int     `gorm:"column:max_seconds;not null;default:60" json:"max_seconds"`
	Marks            float64 `gorm:"column:marks;not null;default:1" json:"marks"`
	AllowRerecording bool    `gorm:"column:allow_rerecording;not null;default:false" json:"allow_rerecording"`
	AllowPause       bool    `gorm:"column:allow_pause;not null;default:false" json:"allow_pause"`
	ShowTimer        bool    `gorm:"column:show_timer;not null;default:false" json:"show_timer"`

	MediaData datatypes.JSON `gorm:"column:media_data" json:"media_data"`
}

func (AudioResponseQuestionModel) TableName() string { return "audio_response_questions" }

type LLMAudioResponseQuestionModel struct {
	ContentID string    `gorm:"column:content_id;primaryKey" json:"content_id"`
	CardID    uuid.UUID `gorm:"column:card_id;type:uuid;not null;index" json:"card_id"`
	OrderID   int       `gorm:"column:order_id;not null" json:"order_id"`

	Question         string  `gorm:"column:question;type:text" json:"question"`
	Instruction      string  `gorm:"column:instruction;type:text" json:"instruction"`
	Difficulty       string  `gorm:"column:difficulty;type:varchar(10);not null;default:medium" json:"difficulty"`
	MaxSeconds       int     `gorm:"column:max_seconds;not null;default:60" json:"max_seconds"`
	Marks            float64 `gorm:"column:marks;not null;default:1" json:"marks"`
	AllowRerecording bool    `gorm:"column:allow_rerecording;not null;default:false" json:"allow_rerecording"`
	AllowPause       bool    `gorm:"column:allow_pause;not null;default:false" json:"allow_pause"`
	ShowTimer        bool    `gorm:"column:show_timer;not null;default:false" json:"show_timer"`

	NumberOfQuestions  int    `gorm:"column:number_of_questions;not null;default:1" json:"number_of_questions"`
	LLMSessionType     string `gorm:"column:llm_session_type;type:varchar(50)" json:"llm_session_type"`
	LinkedLLMSessionID string `gorm:"column:linked_llm_session_id" json:"linked_llm_session_id"`

	QuestionSpecificSettings datatypes.JSON `gorm:"column:question_specific_settings" json:"question_specific_settings"`
	MediaData                datatypes.JSON `gorm:"column:media_data" json:"media_data"`
}

func (LLMAudioResponseQuestionModel) TableName() string { return "llm_audio_response_questions" }
