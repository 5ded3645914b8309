// file: internals/features/bank/service/answer_allocator.go
package service

import (
	"sort"

	qdto "banksoal_backend/internals/features/bank/dto"
)

/* =========================================================
   Answer-ID Allocator

   Satu AnswerUnit = satu answer_id unik per bank:
   - soal single/multiple-choice: SATU id untuk soal + semua opsinya
   - tiap blank pada fill-in-the-blank/matching: id sendiri-sendiri

   Allocator adalah value eksplisit yang di-pass antar komponen,
   bukan singleton global — satu allocator per sesi edit/save.
========================================================= */

type AnswerIDAllocator struct {
	cursor int
	used   map[int]struct{}
}

func NewAnswerIDAllocator() *AnswerIDAllocator {
	return &AnswerIDAllocator{cursor: 0, used: map[int]struct{}{}}
}

func gradableChoice(t qdto.ContentType) bool {
	return t == qdto.ContentSingleChoice || t == qdto.ContentMultipleChoice
}

func gradableBlanks(t qdto.ContentType) bool {
	return t == qdto.ContentFillInTheBlank || t == qdto.ContentMatching
}

// ScanHighest mencari answer_id tertinggi di seluruh dokumen.
// -1 bila belum ada satu pun id terpakai.
func ScanHighest(pages []qdto.PageDTO) int {
	highest := -1
	walkContents(pages, func(it *qdto.ContentItem) {
		if gradableChoice(it.Type) {
			if it.AnswerID != nil && *it.AnswerID > highest {
				highest = *it.AnswerID
			}
			for i := range it.Options {
				if id := it.Options[i].AnswerID; id != nil && *id > highest {
					highest = *id
				}
			}
		}
		if gradableBlanks(it.Type) {
			for i := range it.Blanks {
				if id := it.Blanks[i].AnswerID; id != nil && *id > highest {
					highest = *id
				}
			}
		}
	})
	return highest
}

// InitializeFromPages menyetel cursor ke ScanHighest+1 dan mencatat semua
// id terpakai. Duplikat lintas unit TIDAK membuat gagal: occurrence kedua
// dianggap butuh reassign pada edit berikutnya (self-healing).
func (a *AnswerIDAllocator) InitializeFromPages(pages []qdto.PageDTO) {
	a.cursor = ScanHighest(pages) + 1
	a.used = map[int]struct{}{}
	walkContents(pages, func(it *qdto.ContentItem) {
		if gradableChoice(it.Type) {
			if it.AnswerID != nil {
				a.used[*it.AnswerID] = struct{}{}
			}
			for i := range it.Options {
				if id := it.Options[i].AnswerID; id != nil {
					a.used[*id] = struct{}{}
				}
			}
		}
		if gradableBlanks(it.Type) {
			for i := range it.Blanks {
				if id := it.Blanks[i].AnswerID; id != nil {
					a.used[*id] = struct{}{}
				}
			}
		}
	})
}

// Next mengembalikan cursor lalu menaikkannya.
func (a *AnswerIDAllocator) Next() int {
	id := a.cursor
	a.cursor++
	a.used[id] = struct{}{}
	return id
}

// Reserve menandai id sebagai terpakai; cursor ikut maju bila perlu
// supaya id tersebut tidak pernah diterbitkan ulang.
func (a *AnswerIDAllocator) Reserve(id int) {
	a.used[id] = struct{}{}
	if id >= a.cursor {
		a.cursor = id + 1
	}
}

func (a *AnswerIDAllocator) InUse(id int) bool {
	_, ok := a.used[id]
	return ok
}

// Assign melengkapi answer_id yang hilang pada satu item:
//   - single/multiple-choice tanpa id → satu Next(), distempel ke soal dan
//     SEMUA opsinya; id yang sudah ada hanya di-reserve + disinkronkan ke opsi.
//   - fill-in-the-blank/matching → satu Next() per blank yang belum punya id;
//     id blank yang sudah ada dipertahankan, kecuali duplikat di dalam item
//     yang sama — occurrence belakangan dapat id baru.
func (a *AnswerIDAllocator) Assign(it *qdto.ContentItem) {
	switch {
	case gradableChoice(it.Type):
		if it.AnswerID == nil {
			id := a.Next()
			it.AnswerID = &id
		} else {
			a.Reserve(*it.AnswerID)
		}
		for i := range it.Options {
			id := *it.AnswerID
			it.Options[i].AnswerID = &id
		}

	case gradableBlanks(it.Type):
		seen := map[int]struct{}{}
		for i := range it.Blanks {
			b := &it.Blanks[i]
			if b.AnswerID != nil {
				if _, dup := seen[*b.AnswerID]; !dup {
					seen[*b.AnswerID] = struct{}{}
					a.Reserve(*b.AnswerID)
					continue
				}
				// duplikat di dalam satu item → terbitkan id segar
			}
			id := a.Next()
			b.AnswerID = &id
			seen[id] = struct{}{}
		}
	}
}

// ReorganizeAll menomori ulang seluruh AnswerUnit secara deterministik:
// pages by page_index, cards by position, contents by order_id, mulai dari 1.
// Idempoten — dua kali jalan pada dokumen yang sama menghasilkan id identik.
func (a *AnswerIDAllocator) ReorganizeAll(pages []qdto.PageDTO) {
	a.cursor = 1
	a.used = map[int]struct{}{}

	sort.SliceStable(pages, func(i, j int) bool { return pages[i].PageIndex < pages[j].PageIndex })
	for pi := range pages {
		cards := pages[pi].Cards
		sort.SliceStable(cards, func(i, j int) bool { return cards[i].Position < cards[j].Position })
		for ci := range cards {
			contents := cards[ci].Contents
			sort.SliceStable(contents, func(i, j int) bool { return contents[i].OrderID < contents[j].OrderID })
			for ii := range contents {
				it := &contents[ii]
				switch {
				case gradableChoice(it.Type):
					id := a.Next()
					it.AnswerID = &id
					for oi := range it.Options {
						v := id
						it.Options[oi].AnswerID = &v
					}
				case gradableBlanks(it.Type):
					for bi := range it.Blanks {
						id := a.Next()
						it.Blanks[bi].AnswerID = &id
					}
				}
			}
		}
	}
}

func walkContents(pages []qdto.PageDTO, fn func(*qdto.ContentItem)) {
	for pi := range pages {
		for ci := range pages[pi].Cards {
			for ii := range pages[pi].Cards[ci].Contents {
				fn(&pages[pi].Cards[ci].Contents[ii])
			}
		}
	}
}
