// file: internals/features/bank/service/answer_allocator_test.go
package service

import (
	"testing"

	qdto "banksoal_backend/internals/features/bank/dto"
)

func intp(v int) *int { return &v }

func singlePage(items ...qdto.ContentItem) []qdto.PageDTO {
	return []qdto.PageDTO{{
		PageIndex: 1,
		Cards: []qdto.CardDTO{{
			CardType: "question",
			Position: 0,
			Contents: items,
		}},
	}}
}

func TestScanHighestEmptyDocument(t *testing.T) {
	if got := ScanHighest(nil); got != -1 {
		t.Fatalf("ScanHighest(nil) = %d, want -1", got)
	}
	pages := singlePage(qdto.ContentItem{ID: "sc-1", Type: qdto.ContentSingleChoice})
	if got := ScanHighest(pages); got != -1 {
		t.Fatalf("ScanHighest tanpa id = %d, want -1", got)
	}
}

func TestScanHighestLooksIntoOptionsAndBlanks(t *testing.T) {
	pages := singlePage(
		qdto.ContentItem{
			ID: "sc-1", Type: qdto.ContentSingleChoice,
			Options: []qdto.ContentOption{{ID: 1, AnswerID: intp(7)}},
		},
		qdto.ContentItem{
			ID: "fb-1", Type: qdto.ContentFillInTheBlank,
			Blanks: []qdto.ContentBlank{{ID: 1, AnswerID: intp(3)}, {ID: 2, AnswerID: intp(9)}},
		},
	)
	if got := ScanHighest(pages); got != 9 {
		t.Fatalf("ScanHighest = %d, want 9", got)
	}
}

func TestAssignFirstIDIsZero(t *testing.T) {
	a := NewAnswerIDAllocator()
	a.InitializeFromPages(nil)

	it := qdto.ContentItem{
		ID: "sc-1", Type: qdto.ContentSingleChoice,
		Options: []qdto.ContentOption{{ID: 1}, {ID: 2}},
	}
	a.Assign(&it)

	if it.AnswerID == nil || *it.AnswerID != 0 {
		t.Fatalf("answer_id pertama = %v, want 0", it.AnswerID)
	}
	for i, opt := range it.Options {
		if opt.AnswerID == nil || *opt.AnswerID != 0 {
			t.Errorf("opsi %d answer_id = %v, want 0 (sama dengan soal)", i, opt.AnswerID)
		}
	}
}

func TestAssignPreservesExistingChoiceID(t *testing.T) {
	pages := singlePage(qdto.ContentItem{
		ID: "sc-1", Type: qdto.ContentSingleChoice, AnswerID: intp(4),
	})
	a := NewAnswerIDAllocator()
	a.InitializeFromPages(pages)

	// item lama tetap 4, opsi ikut disinkronkan
	it := &pages[0].Cards[0].Contents[0]
	it.Options = []qdto.ContentOption{{ID: 1}}
	a.Assign(it)
	if *it.AnswerID != 4 {
		t.Fatalf("answer_id lama berubah jadi %d", *it.AnswerID)
	}
	if *it.Options[0].AnswerID != 4 {
		t.Fatalf("opsi tidak disinkronkan: %d", *it.Options[0].AnswerID)
	}

	// item baru harus dapat id di atas highest (5), bukan reuse 4
	fresh := qdto.ContentItem{ID: "sc-2", Type: qdto.ContentSingleChoice}
	a.Assign(&fresh)
	if *fresh.AnswerID != 5 {
		t.Fatalf("id baru = %d, want 5", *fresh.AnswerID)
	}
}

func TestAssignBlanksPerBlank(t *testing.T) {
	a := NewAnswerIDAllocator()
	a.InitializeFromPages(nil)

	it := qdto.ContentItem{
		ID: "fb-1", Type: qdto.ContentFillInTheBlank,
		Blanks: []qdto.ContentBlank{{ID: 1}, {ID: 2}, {ID: 3}},
	}
	a.Assign(&it)

	want := []int{0, 1, 2}
	for i, b := range it.Blanks {
		if b.AnswerID == nil || *b.AnswerID != want[i] {
			t.Errorf("blank %d answer_id = %v, want %d", i, b.AnswerID, want[i])
		}
	}
}

func TestAssignHealsDuplicateBlanksWithinItem(t *testing.T) {
	a := NewAnswerIDAllocator()
	a.InitializeFromPages(nil)

	it := qdto.ContentItem{
		ID: "fb-1", Type: qdto.ContentFillInTheBlank,
		Blanks: []qdto.ContentBlank{
			{ID: 1, AnswerID: intp(2)},
			{ID: 2, AnswerID: intp(2)}, // duplikat
		},
	}
	a.Assign(&it)

	if *it.Blanks[0].AnswerID != 2 {
		t.Fatalf("occurrence pertama berubah: %d", *it.Blanks[0].AnswerID)
	}
	if *it.Blanks[1].AnswerID == 2 {
		t.Fatalf("duplikat tidak disembuhkan, masih 2")
	}
	if *it.Blanks[1].AnswerID != 3 {
		t.Fatalf("duplikat dapat %d, want 3 (di atas highest)", *it.Blanks[1].AnswerID)
	}
}

func TestReserveAdvancesCursor(t *testing.T) {
	a := NewAnswerIDAllocator()
	a.Reserve(10)
	if !a.InUse(10) {
		t.Fatal("Reserve tidak mencatat id")
	}
	if got := a.Next(); got != 11 {
		t.Fatalf("Next setelah Reserve(10) = %d, want 11", got)
	}
}

func TestReorganizeAllRenumbersFromOne(t *testing.T) {
	pages := []qdto.PageDTO{
		{
			PageIndex: 2,
			Cards: []qdto.CardDTO{{
				CardType: "question", Position: 0,
				Contents: []qdto.ContentItem{{
					ID: "fb-1", Type: qdto.ContentFillInTheBlank, OrderID: 0,
					Blanks: []qdto.ContentBlank{{ID: 1, AnswerID: intp(40)}, {ID: 2, AnswerID: intp(41)}},
				}},
			}},
		},
		{
			PageIndex: 1,
			Cards: []qdto.CardDTO{{
				CardType: "question", Position: 0,
				Contents: []qdto.ContentItem{
					{ID: "sc-2", Type: qdto.ContentSingleChoice, OrderID: 1, AnswerID: intp(99)},
					{ID: "sc-1", Type: qdto.ContentSingleChoice, OrderID: 0, AnswerID: intp(7),
						Options: []qdto.ContentOption{{ID: 1}}},
				},
			}},
		},
	}

	a := NewAnswerIDAllocator()
	a.ReorganizeAll(pages)

	// urutan dokumen: page 1 (order 0 → sc-1, order 1 → sc-2), lalu page 2
	find := func(id string) *qdto.ContentItem {
		for pi := range pages {
			for ci := range pages[pi].Cards {
				for ii := range pages[pi].Cards[ci].Contents {
					if pages[pi].Cards[ci].Contents[ii].ID == id {
						return &pages[pi].Cards[ci].Contents[ii]
					}
				}
			}
		}
		t.Fatalf("konten %s hilang", id)
		return nil
	}

	if got := *find("sc-1").AnswerID; got != 1 {
		t.Errorf("sc-1 = %d, want 1", got)
	}
	if got := *find("sc-1").Options[0].AnswerID; got != 1 {
		t.Errorf("opsi sc-1 = %d, want 1", got)
	}
	if got := *find("sc-2").AnswerID; got != 2 {
		t.Errorf("sc-2 = %d, want 2", got)
	}
	fb := find("fb-1")
	if *fb.Blanks[0].AnswerID != 3 || *fb.Blanks[1].AnswerID != 4 {
		t.Errorf("blank fb-1 = %d,%d, want 3,4", *fb.Blanks[0].AnswerID, *fb.Blanks[1].AnswerID)
	}

	// idempoten
	b := NewAnswerIDAllocator()
	b.ReorganizeAll(pages)
	if *find("sc-1").AnswerID != 1 || *find("sc-2").AnswerID != 2 {
		t.Error("reorganize kedua mengubah hasil")
	}
}

func TestInitializeFromPagesCursorAboveHighest(t *testing.T) {
	pages := singlePage(qdto.ContentItem{
		ID: "sc-1", Type: qdto.ContentSingleChoice, AnswerID: intp(12),
	})
	a := NewAnswerIDAllocator()
	a.InitializeFromPages(pages)
	if got := a.Next(); got != 13 {
		t.Fatalf("Next setelah init = %d, want 13", got)
	}
	if !a.InUse(12) {
		t.Fatal("id lama tidak tercatat sebagai terpakai")
	}
}
