// file: internals/features/bank/dto/content_mapper_test.go
package dto

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"banksoal_backend/internals/features/bank/model"
)

func TestEnsureIDFormat(t *testing.T) {
	it := ContentItem{Type: ContentSingleChoice}
	it.EnsureID()
	if !strings.HasPrefix(it.ID, "single-choice-") {
		t.Fatalf("content_id tidak diawali tag tipe: %q", it.ID)
	}

	// id yang sudah ada tidak boleh ditimpa
	fixed := ContentItem{ID: "sc-keep", Type: ContentSingleChoice}
	fixed.EnsureID()
	if fixed.ID != "sc-keep" {
		t.Fatalf("content_id lama tertimpa: %q", fixed.ID)
	}
}

func TestSingleChoiceRoundTrip(t *testing.T) {
	cardID := uuid.New()
	aid := 3
	img := "https://cdn.example.com/q.png"
	it := ContentItem{
		ID:            "sc-1",
		Type:          ContentSingleChoice,
		OrderID:       2,
		Question:      "Ibukota Indonesia?",
		AnswerID:      &aid,
		CorrectAnswer: "a",
		Options: []ContentOption{
			{ID: 1, AnswerID: &aid, OptionValue: "Jakarta"},
			{ID: 2, AnswerID: &aid, OptionValue: "Bandung"},
		},
		QuestionImage: &img,
	}

	m := it.ToSingleChoiceModel(cardID)
	if m.CardID != cardID || m.OrderID != 2 {
		t.Fatalf("kolom shared salah: card=%s order=%d", m.CardID, m.OrderID)
	}
	if m.Difficulty != "medium" || m.Marks != 1 {
		t.Fatalf("default tidak terisi: difficulty=%q marks=%v", m.Difficulty, m.Marks)
	}

	back := SingleChoiceFromModel(m)
	if back.ID != "sc-1" || back.Question != it.Question {
		t.Fatalf("round-trip field dasar: %+v", back)
	}
	if back.AnswerID == nil || *back.AnswerID != 3 {
		t.Fatalf("answer_id hilang: %v", back.AnswerID)
	}
	if len(back.Options) != 2 || back.Options[1].OptionValue != "Bandung" {
		t.Fatalf("opsi rusak: %+v", back.Options)
	}
	if back.QuestionImage == nil || *back.QuestionImage != img {
		t.Fatalf("media_data tidak dibongkar: %v", back.QuestionImage)
	}
}

func TestMultipleChoiceRoundTrip(t *testing.T) {
	cardID := uuid.New()
	aid := 7
	it := ContentItem{
		ID:             "mc-1",
		Type:           ContentMultipleChoice,
		OrderID:        1,
		Question:       "Pilih kota di Jawa",
		AnswerID:       &aid,
		CorrectAnswers: []string{"a", "c"},
		Options: []ContentOption{
			{ID: 1, AnswerID: &aid, OptionValue: "Jakarta"},
			{ID: 2, AnswerID: &aid, OptionValue: "Medan"},
			{ID: 3, AnswerID: &aid, OptionValue: "Bandung"},
		},
	}

	m := it.ToMultipleChoiceModel(cardID)
	if m.CardID != cardID || m.Difficulty != "medium" || m.Marks != 1 {
		t.Fatalf("kolom shared/default salah: %+v", m)
	}

	back := MultipleChoiceFromModel(m)
	if back.Type != ContentMultipleChoice || back.Question != it.Question {
		t.Fatalf("round-trip field dasar: %+v", back)
	}
	if len(back.CorrectAnswers) != 2 || back.CorrectAnswers[1] != "c" {
		t.Fatalf("correct_answers rusak: %v", back.CorrectAnswers)
	}
	if len(back.Options) != 3 || back.Options[2].OptionValue != "Bandung" {
		t.Fatalf("opsi rusak: %+v", back.Options)
	}

	// blank correctAnswers tersimpan sebagai [] bukan null
	empty := ContentItem{ID: "mc-2", Type: ContentMultipleChoice}
	if got := MultipleChoiceFromModel(empty.ToMultipleChoiceModel(cardID)).CorrectAnswers; got == nil || len(got) != 0 {
		t.Fatalf("correct_answers kosong jadi %v", got)
	}
}

func TestLLMSessionMaterialRoundTrip(t *testing.T) {
	cardID := uuid.New()
	settings := json.RawMessage(`{"persona":"tutor","maxTurns":5}`)
	it := ContentItem{
		ID:              "ls-1",
		Type:            ContentLLMSessionMaterial,
		OrderID:         2,
		Title:           "Sesi latihan percakapan",
		ShowTitle:       true,
		SessionSettings: settings,
	}

	m := it.ToLLMSessionMaterialModel(cardID)
	if m.CardID != cardID || m.TitleStyle != "h2" {
		t.Fatalf("default title_style tidak terisi: %+v", m)
	}

	back := LLMSessionMaterialFromModel(m)
	if back.Title != it.Title || !back.ShowTitle || back.OrderID != 2 {
		t.Fatalf("round-trip field dasar: %+v", back)
	}
	if string(back.SessionSettings) != string(settings) {
		t.Fatalf("session_settings berubah: %s", back.SessionSettings)
	}

	// settings kosong difallback ke objek kosong
	empty := ContentItem{ID: "ls-2", Type: ContentLLMSessionMaterial}
	if got := LLMSessionMaterialFromModel(empty.ToLLMSessionMaterialModel(cardID)).SessionSettings; string(got) != "{}" {
		t.Fatalf("session_settings kosong jadi %s", got)
	}
}

func TestMatchingStoresBlanksAsOptionsData(t *testing.T) {
	cardID := uuid.New()
	aid := 5
	it := ContentItem{
		ID: "mt-1", Type: ContentMatching,
		Blanks: []ContentBlank{
			{ID: 1, AnswerID: &aid, Label: "kiri-1", CorrectAnswers: []string{"kanan-1"}},
		},
	}

	m := it.ToMatchingModel(cardID)
	if len(m.OptionsData) == 0 {
		t.Fatal("blanks matching tidak masuk options_data")
	}

	back := MatchingFromModel(m)
	if len(back.Blanks) != 1 || back.Blanks[0].Label != "kiri-1" {
		t.Fatalf("blank matching tidak kembali: %+v", back.Blanks)
	}
	if *back.Blanks[0].AnswerID != 5 {
		t.Fatalf("answer_id blank = %d, want 5", *back.Blanks[0].AnswerID)
	}
}

func TestMalformedBlobsFallBackToDefaults(t *testing.T) {
	m := &model.SingleChoiceQuestionModel{
		ContentID:   "sc-rusak",
		CardID:      uuid.New(),
		OptionsData: datatypes.JSON("{not-json"),
		MediaData:   datatypes.JSON("also broken"),
	}
	back := SingleChoiceFromModel(m)
	if back.Options == nil || len(back.Options) != 0 {
		t.Fatalf("options rusak harus jadi slice kosong, dapat %+v", back.Options)
	}
	if back.Difficulty != "medium" || back.Marks != 1 {
		t.Fatalf("default rusak: difficulty=%q marks=%v", back.Difficulty, back.Marks)
	}
	// media rusak → ketiga referensi nil
	if back.QuestionImage != nil || back.QuestionAudio != nil || back.QuestionVideo != nil {
		t.Fatal("media_data rusak harus jatuh ke nil semua")
	}
}

func TestLongTextDefaults(t *testing.T) {
	it := ContentItem{ID: "lt-1", Type: ContentLongText}
	m := it.ToLongTextModel(uuid.New())
	if m.Rows != 4 {
		t.Fatalf("rows default = %d, want 4", m.Rows)
	}
	back := LongTextFromModel(m)
	if back.Rows != 4 || back.Marks != 1 {
		t.Fatalf("default long-text: rows=%d marks=%v", back.Rows, back.Marks)
	}
}

func TestAudioAndLLMDefaults(t *testing.T) {
	au := ContentItem{ID: "au-1", Type: ContentAudio}
	if m := au.ToAudioModel(uuid.New()); m.MaxSeconds != 60 {
		t.Fatalf("maxSeconds default = %d, want 60", m.MaxSeconds)
	}

	llm := ContentItem{ID: "llm-1", Type: ContentLLMAudioResponse}
	m := llm.ToLLMAudioModel(uuid.New())
	if m.NumberOfQuestions != 1 {
		t.Fatalf("numberOfQuestions default = %d, want 1", m.NumberOfQuestions)
	}
	if string(m.QuestionSpecificSettings) != "{}" {
		t.Fatalf("settings kosong harus {}, dapat %s", m.QuestionSpecificSettings)
	}
}

func TestMaterialDefaults(t *testing.T) {
	tm := ContentItem{ID: "tx-1", Type: ContentTextMaterial, Title: "Bacaan"}
	if m := tm.ToTextMaterialModel(uuid.New()); m.TitleStyle != "h2" {
		t.Fatalf("titleStyle default = %q, want h2", m.TitleStyle)
	}

	mm := ContentItem{ID: "mm-1", Type: ContentMultimediaMaterial}
	m := mm.ToMultimediaMaterialModel(uuid.New())
	if m.MediaType != "image" {
		t.Fatalf("mediaType default = %q, want image", m.MediaType)
	}
	back := MultimediaMaterialFromModel(m)
	if string(back.Media) != "{}" || string(back.Settings) != "{}" {
		t.Fatalf("blob kosong harus {}: media=%s settings=%s", back.Media, back.Settings)
	}
}

func TestParseOrDefensive(t *testing.T) {
	if got := parseOr[[]string](nil, []string{"x"}); len(got) != 1 || got[0] != "x" {
		t.Fatalf("parseOr(nil) = %v", got)
	}
	if got := parseOr([]byte("oops"), 7); got != 7 {
		t.Fatalf("parseOr(rusak) = %v, want 7", got)
	}
	if got := parseOr([]byte("9"), 7); got != 9 {
		t.Fatalf("parseOr(valid) = %v, want 9", got)
	}
}
