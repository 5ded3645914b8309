// file: internals/features/bank/service/reindexer.go
package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	qmodel "banksoal_backend/internals/features/bank/model"
)

/* =========================================================
   Reindexer posisi

   Menjaga field urutan tetap rapat per parent:
   - page_index : 1..n per bank
   - position   : 0..n-1 per page
   - order_id   : 0..n-1 per card

   Dipanggil setelah setiap insert/delete di level terkait.
========================================================= */

// nextPageIndex: index untuk page baru = max(existing)+1, mulai 1.
func nextPageIndex(tx *gorm.DB, bankID string) (int, error) {
	var max int
	err := tx.Model(&qmodel.PageModel{}).
		Where("questionbank_id = ?", bankID).
		Select("COALESCE(MAX(page_index), 0)").
		Scan(&max).Error
	return max + 1, err
}

// renumberPages menutup gap setelah delete: 1..n mengikuti urutan
// page_index saat ini.
func renumberPages(tx *gorm.DB, bankID string) error {
	var pages []qmodel.PageModel
	if err := tx.Where("questionbank_id = ?", bankID).
		Order("page_index ASC").Find(&pages).Error; err != nil {
		return err
	}
	for i := range pages {
		want := i + 1
		if pages[i].PageIndex == want {
			continue
		}
		if err := tx.Model(&qmodel.PageModel{}).
			Where("id = ?", pages[i].ID).
			Update("page_index", want).Error; err != nil {
			return err
		}
	}
	return nil
}

// nextCardPosition: posisi card baru = max(existing)+1, mulai 0.
func nextCardPosition(tx *gorm.DB, pageID uuid.UUID) (int, error) {
	var max int
	err := tx.Model(&qmodel.CardModel{}).
		Where("page_id = ?", pageID).
		Select("COALESCE(MAX(position), -1)").
		Scan(&max).Error
	return max + 1, err
}

// shiftCardsFrom menggeser naik semua card di posisi >= pos (insert di
// tengah: yang lama minggir dulu, baru yang baru masuk).
func shiftCardsFrom(tx *gorm.DB, pageID uuid.UUID, pos int) error {
	return tx.Model(&qmodel.CardModel{}).
		Where("page_id = ? AND position >= ?", pageID, pos).
		UpdateColumn("position", gorm.Expr("position + 1")).Error
}

// closeCardGap menurunkan semua card di posisi > pos setelah delete.
func closeCardGap(tx *gorm.DB, pageID uuid.UUID, pos int) error {
	return tx.Model(&qmodel.CardModel{}).
		Where("page_id = ? AND position > ?", pageID, pos).
		UpdateColumn("position", gorm.Expr("position - 1")).Error
}

// nextOrderID melihat ke SEMUA tabel konten (lewat registry) karena
// order_id satu card tersebar lintas tabel varian.
func nextOrderID(tx *gorm.DB, cardID uuid.UUID) (int, error) {
	max := -1
	for _, table := range allContentTables() {
		var m *int
		if err := tx.Table(table).
			Where("card_id = ?", cardID).
			Select("MAX(order_id)").
			Scan(&m).Error; err != nil {
			return 0, err
		}
		if m != nil && *m > max {
			max = *m
		}
	}
	return max + 1, nil
}

// countCardContents menghitung sisa konten satu card lintas tabel.
func countCardContents(tx *gorm.DB, cardID uuid.UUID) (int64, error) {
	var total int64
	for _, table := range allContentTables() {
		var n int64
		if err := tx.Table(table).Where("card_id = ?", cardID).Count(&n).Error; err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}
