// file: internals/features/bank/dto/content_dto.go
package dto

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"time"
)

/* =========================================================
   Content types (10 varian)
========================================================= */

type ContentType string

const (
	ContentSingleChoice       ContentType = "single-choice"
	ContentMultipleChoice     ContentType = "multiple-choice"
	ContentFillInTheBlank     ContentType = "fill-in-the-blank"
	ContentMatching           ContentType = "matching"
	ContentLongText           ContentType = "long-text"
	ContentAudio              ContentType = "audio"
	ContentLLMAudioResponse   ContentType = "llm-audio-response"
	ContentTextMaterial       ContentType = "text-material"
	ContentMultimediaMaterial ContentType = "multimedia-material"
	ContentLLMSessionMaterial ContentType = "llm-session-material"
)

/* =========================================================
   Nested shapes
========================================================= */

// Opsi untuk single/multiple-choice. answer_id opsi selalu sama dengan
// answer_id soalnya (satu AnswerUnit untuk seluruh soal pilihan).
type ContentOption struct {
	ID          int     `json:"id"`
	AnswerID    *int    `json:"answer_id,omitempty"`
	OptionValue string  `json:"option_value"`
	OptionImage *string `json:"option_image"`
	OptionAudio *string `json:"option_audio"`
	OptionVideo *string `json:"option_video"`
}

// Blank untuk fill-in-the-blank dan matching. Tiap blank adalah satu
// AnswerUnit dengan answer_id sendiri.
type ContentBlank struct {
	ID             int             `json:"id"`
	AnswerID       *int            `json:"answer_id,omitempty"`
	Label          string          `json:"label,omitempty"`
	Placeholder    string          `json:"placeholder,omitempty"`
	CorrectAnswers []string        `json:"correctAnswers,omitempty"`
	Marks          float64         `json:"marks,omitempty"`
	Media          json.RawMessage `json:"media,omitempty"`
}

/* =========================================================
   ContentItem — superset flat dari 10 varian
   Nama field JSON mengikuti format exporter lama persis.
========================================================= */

type ContentItem struct {
	ID      string      `json:"id"`
	Type    ContentType `json:"type"`
	OrderID int         `json:"order_id"`

	// shared question fields
	Question    string  `json:"question,omitempty"`
	Instruction string  `json:"instruction,omitempty"`
	Difficulty  string  `json:"difficulty,omitempty"`
	Marks       float64 `json:"marks,omitempty"`

	// single/multiple-choice
	AnswerID       *int            `json:"answer_id,omitempty"`
	CorrectAnswer  string          `json:"correctAnswer,omitempty"`
	CorrectAnswers []string        `json:"correctAnswers,omitempty"`
	Options        []ContentOption `json:"options,omitempty"`

	// fill-in-the-blank / matching
	Blanks []ContentBlank `json:"blanks,omitempty"`

	// long-text
	Placeholder     string `json:"placeholder,omitempty"`
	Rows            int    `json:"rows,omitempty"`
	SuggestedAnswer string `json:"suggestedAnswer,omitempty"`

	// audio / llm-audio-response
	MaxSeconds       int  `json:"maxSeconds,omitempty"`
	AllowRerecording bool `json:"allowRerecording,omitempty"`
	AllowPause       bool `json:"allowPause,omitempty"`
	ShowTimer        bool `json:"showTimer,omitempty"`

	// llm-audio-response
	NumberOfQuestions        int             `json:"numberOfQuestions,omitempty"`
	LLMSessionType           string          `json:"llmSessionType,omitempty"`
	LinkedLLMSessionID       string          `json:"linkedLlmSessionId,omitempty"`
	QuestionSpecificSettings json.RawMessage `json:"questionSpecificSettings,omitempty"`

	// media soal (dibundel ke media_data saat disimpan)
	QuestionImage *string `json:"question_image,omitempty"`
	QuestionAudio *string `json:"question_audio,omitempty"`
	QuestionVideo *string `json:"question_video,omitempty"`

	// materials
	Title           string          `json:"title,omitempty"`
	Content         string          `json:"content,omitempty"`
	ShowTitle       bool            `json:"showTitle,omitempty"`
	TitleStyle      string          `json:"titleStyle,omitempty"`
	IsRichText      bool            `json:"isRichText,omitempty"`
	MediaType       string          `json:"mediaType,omitempty"`
	Media           json.RawMessage `json:"media,omitempty"`
	Settings        json.RawMessage `json:"settings,omitempty"`
	SessionSettings json.RawMessage `json:"sessionSettings,omitempty"`
}

// EnsureID mengisi content_id unik bila kosong (format exporter lama:
// "<type>-<millis>-<random>").
func (it *ContentItem) EnsureID() {
	if it.ID == "" {
		it.ID = fmt.Sprintf("%s-%d-%d", it.Type, time.Now().UnixMilli(), rand.Intn(10000))
	}
}

/* =========================================================
   Defaults & defensive JSON
========================================================= */

func defaultStr(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func defaultInt(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

func defaultFloat(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

// parseOr: blob rusak/kosong tidak boleh menggagalkan pembacaan satu form —
// fallback ke default di setiap batas blob.
func parseOr[T any](raw []byte, def T) T {
	if len(raw) == 0 {
		return def
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return def
	}
	return out
}

// rawOr menormalkan blob bebas (settings, media, dll): nil/rusak → default.
func rawOr(raw []byte, def string) json.RawMessage {
	if len(raw) == 0 || !json.Valid(raw) {
		return json.RawMessage(def)
	}
	return json.RawMessage(raw)
}
