// file: internals/features/bank/service/form_processing_service.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	qdto "banksoal_backend/internals/features/bank/dto"
	qmodel "banksoal_backend/internals/features/bank/model"
)

/* =========================================================
   Transaction Orchestrator

   Whole-form save memakai strategi delete-and-recreate (BUKAN diff
   struktural): bank lama dihapus total lalu dibangun ulang dari dokumen
   dalam satu transaksi. Dua save bersamaan untuk bank yang sama →
   commit terakhir menang; itu tradeoff yang disengaja.
========================================================= */

type FormProcessingService struct {
	DB *gorm.DB
}

func NewFormProcessingService(db *gorm.DB) *FormProcessingService {
	return &FormProcessingService{DB: db}
}

/* =========================================================
   Whole-form save
========================================================= */

// ProcessForm menyimpan satu dokumen utuh. Bank yang sudah ada dihapus
// berikut seluruh turunannya, lalu dibuat ulang dengan version+1.
// Item dengan tipe tak dikenal / tidak cocok dengan card hanya
// dilewati (warning); error database menggagalkan seluruh save.
func (s *FormProcessingService) ProcessForm(ctx context.Context, doc *qdto.QuestionBankDocument) (*qdto.ProcessFormResult, error) {
	bankID := doc.QuestionbankID
	if bankID == "" {
		bankID = uuid.NewString()
	}

	isUpdate := false
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		version := 1
		var createdAt time.Time

		var existing qmodel.QuestionBankModel
		err := tx.First(&existing, "questionbank_id = ?", bankID).Error
		switch {
		case err == nil:
			isUpdate = true
			version = existing.Version + 1
			createdAt = existing.CreatedAt
			if err := cascadeDeleteBankData(tx, bankID); err != nil {
				return err
			}
			if err := tx.Delete(&qmodel.QuestionBankModel{}, "questionbank_id = ?", bankID).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			// bank baru
		default:
			return err
		}

		title := doc.Title
		if title == "" {
			title = "Untitled Question Bank"
		}
		exportDate := doc.ExportDate
		if exportDate == "" {
			exportDate = time.Now().UTC().Format(time.RFC3339)
		}
		status := doc.Status
		if status == "" {
			status = "draft"
		}

		bank := qmodel.QuestionBankModel{
			QuestionbankID: bankID,
			Title:          title,
			Description:    doc.Description,
			Status:         status,
			ExportDate:     exportDate,
			Version:        version,
		}
		if isUpdate {
			bank.CreatedAt = createdAt // counter monotonic, created_at ikut terbawa
		}
		if err := tx.Create(&bank).Error; err != nil {
			return err
		}

		// satu allocator per save, di-seed dari id yang sudah ada di dokumen
		alloc := NewAnswerIDAllocator()
		alloc.InitializeFromPages(doc.Pages)

		for pi := range doc.Pages {
			page := &doc.Pages[pi]
			cats := page.ExamCategories
			if cats == nil {
				cats = &qdto.ExamCategories{}
			}
			// page_index dinomori ulang dari urutan array; index kiriman
			// caller yang basi diabaikan
			pm := qmodel.PageModel{
				QuestionbankID: bankID,
				PageIndex:      pi + 1,
				ExamLanguage:   page.Language(),
				ExamType:       cats.ExamType,
				Component:      cats.Component,
				Category:       cats.Category,
			}
			if err := tx.Create(&pm).Error; err != nil {
				return err
			}

			// posisi card hanya bertambah untuk card yang benar-benar
			// tersimpan; card yang dilewati tidak boleh meninggalkan gap
			pos := 0
			for ci := range page.Cards {
				card := &page.Cards[ci]
				cardType := qmodel.CardType(card.CardType)
				if !cardType.Valid() {
					log.Printf("[WARN] card_type %q tidak valid (bank %s) — card dilewati", card.CardType, bankID)
					continue
				}
				cm := qmodel.CardModel{PageID: pm.ID, CardType: cardType, Position: pos}
				pos++
				if err := tx.Create(&cm).Error; err != nil {
					return err
				}

				order := 0
				for ii := range card.Contents {
					it := &card.Contents[ii]
					codec, err := ResolveContentType(it.Type)
					if err != nil {
						log.Printf("[WARN] tipe konten tidak dikenal: %q (bank %s) — item dilewati", it.Type, bankID)
						continue
					}
					if codec.Family != cardType {
						log.Printf("[WARN] konten %q tidak cocok dengan card %q (bank %s) — item dilewati", it.Type, cardType, bankID)
						continue
					}
					it.OrderID = order
					order++
					alloc.Assign(it)
					if err := codec.insert(tx, cm.ID, it); err != nil {
						return err
					}
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &qdto.ProcessFormResult{QuestionbankID: bankID, IsUpdate: isUpdate}, nil
}

/* =========================================================
   Read path
========================================================= */

// GetBank membaca dokumen utuh tanpa transaksi (boleh interleave dengan
// writer; visibilitas last-committed-wins).
func (s *FormProcessingService) GetBank(ctx context.Context, bankID string) (*qdto.QuestionBankDocument, error) {
	db := s.DB.WithContext(ctx)
	var bank qmodel.QuestionBankModel
	if err := db.First(&bank, "questionbank_id = ?", bankID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBankNotFound
		}
		return nil, err
	}
	return buildDocument(db, &bank)
}

// ListBanks: ringkasan semua bank + metadata halaman pertama + jumlah
// card soal (query shape yang sama dengan dashboard lama).
func (s *FormProcessingService) ListBanks(ctx context.Context) ([]qdto.QuestionBankSummary, error) {
	const q = `
		SELECT qb.questionbank_id,
		       qb.title,
		       COALESCE(qb.description, '')  AS description,
		       qb.status,
		       COALESCE(qb.export_date, '')  AS export_date,
		       qb.version,
		       qb.created_at,
		       qb.updated_at,
		       COALESCE(p.exam_language, '') AS exam_language,
		       COALESCE(p.exam_type, '')     AS exam_type,
		       COALESCE(p.component, '')     AS component,
		       COALESCE(p.category, '')      AS category,
		       (SELECT COUNT(*) FROM cards c
		          JOIN question_bank_pages p2 ON c.page_id = p2.id
		         WHERE p2.questionbank_id = qb.questionbank_id
		           AND c.card_type = 'question') AS question_count
		  FROM question_banks qb
		  LEFT JOIN question_bank_pages p
		    ON p.questionbank_id = qb.questionbank_id AND p.page_index = 1
		 ORDER BY qb.updated_at DESC`

	var rows []qdto.QuestionBankSummary
	if err := s.DB.WithContext(ctx).Raw(q).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func buildDocument(db *gorm.DB, bank *qmodel.QuestionBankModel) (*qdto.QuestionBankDocument, error) {
	var pages []qmodel.PageModel
	if err := db.Where("questionbank_id = ?", bank.QuestionbankID).
		Order("page_index ASC").Find(&pages).Error; err != nil {
		return nil, err
	}

	doc := &qdto.QuestionBankDocument{
		QuestionbankID: bank.QuestionbankID,
		Title:          bank.Title,
		Description:    bank.Description,
		Status:         bank.Status,
		ExportDate:     bank.ExportDate,
		Version:        bank.Version,
		CreatedAt:      bank.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:      bank.UpdatedAt.UTC().Format(time.RFC3339),
		Pages:          make([]qdto.PageDTO, 0, len(pages)),
	}

	for i := range pages {
		p := &pages[i]
		var cards []qmodel.CardModel
		if err := db.Where("page_id = ?", p.ID).
			Order("position ASC").Find(&cards).Error; err != nil {
			return nil, err
		}

		pageDTO := qdto.PageDTO{
			PageIndex:    p.PageIndex,
			ExamLanguage: p.ExamLanguage,
			ExamCategories: &qdto.ExamCategories{
				ExamLanguage: p.ExamLanguage,
				ExamType:     p.ExamType,
				Component:    p.Component,
				Category:     p.Category,
			},
			Cards: make([]qdto.CardDTO, 0, len(cards)),
		}

		for j := range cards {
			c := &cards[j]
			contents, err := retrieveCardContents(db, c)
			if err != nil {
				return nil, err
			}
			pageDTO.Cards = append(pageDTO.Cards, qdto.CardDTO{
				CardType: string(c.CardType),
				Position: c.Position,
				Contents: contents,
			})
		}
		doc.Pages = append(doc.Pages, pageDTO)
	}
	return doc, nil
}

// retrieveCardContents merge hasil semua tabel varian sekeluarga lalu
// urutkan by order_id (order_id satu card tersebar lintas tabel).
func retrieveCardContents(db *gorm.DB, card *qmodel.CardModel) ([]qdto.ContentItem, error) {
	contents := []qdto.ContentItem{}
	for _, codec := range codecsForFamily(card.CardType) {
		items, err := codec.listByCard(db, card.ID)
		if err != nil {
			return nil, err
		}
		contents = append(contents, items...)
	}
	sort.SliceStable(contents, func(i, j int) bool { return contents[i].OrderID < contents[j].OrderID })
	return contents, nil
}

/* =========================================================
   Delete bank (cascade)
========================================================= */

func (s *FormProcessingService) DeleteBank(ctx context.Context, bankID string) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var bank qmodel.QuestionBankModel
		if err := tx.First(&bank, "questionbank_id = ?", bankID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBankNotFound
			}
			return err
		}
		if err := cascadeDeleteBankData(tx, bankID); err != nil {
			return err
		}
		return tx.Delete(&qmodel.QuestionBankModel{}, "questionbank_id = ?", bankID).Error
	})
}

// cascadeDeleteBankData menghapus seluruh turunan bank (konten → cards →
// pages), baris bank-nya sendiri tidak disentuh.
func cascadeDeleteBankData(tx *gorm.DB, bankID string) error {
	pageIDs := tx.Model(&qmodel.PageModel{}).Select("id").Where("questionbank_id = ?", bankID)

	var cards []qmodel.CardModel
	if err := tx.Where("page_id IN (?)", pageIDs).Find(&cards).Error; err != nil {
		return err
	}
	for i := range cards {
		if err := deleteCardContents(tx, &cards[i]); err != nil {
			return err
		}
	}
	if err := tx.Where("page_id IN (?)", pageIDs).Delete(&qmodel.CardModel{}).Error; err != nil {
		return err
	}
	return tx.Where("questionbank_id = ?", bankID).Delete(&qmodel.PageModel{}).Error
}

func deleteCardContents(tx *gorm.DB, card *qmodel.CardModel) error {
	codecs := codecsForFamily(card.CardType)
	if !card.CardType.Valid() {
		// card lama dengan tipe korup: sapu semua tabel
		codecs = append(codecsForFamily(qmodel.CardTypeQuestion), codecsForFamily(qmodel.CardTypeMaterial)...)
	}
	for _, c := range codecs {
		if err := tx.Exec("DELETE FROM "+c.Table+" WHERE card_id = ?", card.ID).Error; err != nil {
			return err
		}
	}
	return nil
}

func touchBank(tx *gorm.DB, bankID string) error {
	return tx.Model(&qmodel.QuestionBankModel{}).
		Where("questionbank_id = ?", bankID).
		Update("updated_at", time.Now()).Error
}

/* =========================================================
   Incremental: metadata
========================================================= */

func (s *FormProcessingService) UpdateBankMeta(ctx context.Context, bankID string, req *qdto.UpdateBankMetaRequest) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var bank qmodel.QuestionBankModel
		if err := tx.First(&bank, "questionbank_id = ?", bankID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBankNotFound
			}
			return err
		}
		patch := map[string]any{}
		if req.Title != nil {
			patch["title"] = *req.Title
		}
		if req.Description != nil {
			patch["description"] = *req.Description
		}
		if req.Status != nil {
			patch["status"] = *req.Status
		}
		if len(patch) == 0 {
			return nil
		}
		patch["updated_at"] = time.Now()
		return tx.Model(&bank).Updates(patch).Error
	})
}

func (s *FormProcessingService) UpdatePageMeta(ctx context.Context, bankID string, pageIndex int, req *qdto.PageMetaRequest) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		page, err := findPage(tx, bankID, pageIndex)
		if err != nil {
			return err
		}
		patch := map[string]any{}
		if req.ExamLanguage != nil {
			patch["exam_language"] = *req.ExamLanguage
		}
		if req.ExamType != nil {
			patch["exam_type"] = *req.ExamType
		}
		if req.Component != nil {
			patch["component"] = *req.Component
		}
		if req.Category != nil {
			patch["category"] = *req.Category
		}
		if len(patch) > 0 {
			patch["updated_at"] = time.Now()
			if err := tx.Model(page).Updates(patch).Error; err != nil {
				return err
			}
		}
		return touchBank(tx, bankID)
	})
}

/* =========================================================
   Incremental: pages
========================================================= */

func (s *FormProcessingService) AddPage(ctx context.Context, bankID string, req *qdto.PageMetaRequest) (*qdto.AddPageResult, error) {
	var out qdto.AddPageResult
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var bank qmodel.QuestionBankModel
		if err := tx.First(&bank, "questionbank_id = ?", bankID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBankNotFound
			}
			return err
		}

		idx, err := nextPageIndex(tx, bankID)
		if err != nil {
			return err
		}
		pm := qmodel.PageModel{
			QuestionbankID: bankID,
			PageIndex:      idx,
			ExamLanguage:   strDeref(req.ExamLanguage, "en"),
			ExamType:       strDeref(req.ExamType, ""),
			Component:      strDeref(req.Component, ""),
			Category:       strDeref(req.Category, ""),
		}
		if err := tx.Create(&pm).Error; err != nil {
			return err
		}
		if err := touchBank(tx, bankID); err != nil {
			return err
		}
		out = qdto.AddPageResult{
			QuestionbankID: bankID,
			PageIndex:      idx,
			ExamLanguage:   pm.ExamLanguage,
			ExamType:       pm.ExamType,
			Component:      pm.Component,
			Category:       pm.Category,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *FormProcessingService) DeletePage(ctx context.Context, bankID string, pageIndex int) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		page, err := findPage(tx, bankID, pageIndex)
		if err != nil {
			return err
		}

		var pageCount int64
		if err := tx.Model(&qmodel.PageModel{}).
			Where("questionbank_id = ?", bankID).Count(&pageCount).Error; err != nil {
			return err
		}
		if pageCount <= 1 {
			return ErrCannotDeleteOnlyPage
		}

		var cards []qmodel.CardModel
		if err := tx.Where("page_id = ?", page.ID).Find(&cards).Error; err != nil {
			return err
		}
		for i := range cards {
			if err := deleteCardContents(tx, &cards[i]); err != nil {
				return err
			}
		}
		if err := tx.Where("page_id = ?", page.ID).Delete(&qmodel.CardModel{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&qmodel.PageModel{}, "id = ?", page.ID).Error; err != nil {
			return err
		}
		if err := renumberPages(tx, bankID); err != nil {
			return err
		}
		return touchBank(tx, bankID)
	})
}

/* =========================================================
   Incremental: cards
========================================================= */

func (s *FormProcessingService) AddCard(ctx context.Context, bankID string, pageIndex int, req *qdto.AddCardRequest) (*qdto.AddCardResult, error) {
	cardType := qmodel.CardType(req.CardType)
	if !cardType.Valid() {
		return nil, ErrInvalidCardType
	}

	var out qdto.AddCardResult
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		page, err := findPage(tx, bankID, pageIndex)
		if err != nil {
			return err
		}

		var pos int
		if req.Position == nil {
			if pos, err = nextCardPosition(tx, page.ID); err != nil {
				return err
			}
		} else {
			pos = *req.Position
			var occupied int64
			if err := tx.Model(&qmodel.CardModel{}).
				Where("page_id = ? AND position = ?", page.ID, pos).
				Count(&occupied).Error; err != nil {
				return err
			}
			if occupied > 0 {
				if err := shiftCardsFrom(tx, page.ID, pos); err != nil {
					return err
				}
			}
		}

		cm := qmodel.CardModel{PageID: page.ID, CardType: cardType, Position: pos}
		if err := tx.Create(&cm).Error; err != nil {
			return err
		}
		if err := touchBank(tx, bankID); err != nil {
			return err
		}
		out = qdto.AddCardResult{
			QuestionbankID: bankID,
			PageIndex:      pageIndex,
			CardID:         cm.ID.String(),
			CardType:       string(cardType),
			Position:       pos,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *FormProcessingService) DeleteCard(ctx context.Context, bankID string, pageIndex, position int) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		page, err := findPage(tx, bankID, pageIndex)
		if err != nil {
			return err
		}
		var card qmodel.CardModel
		if err := tx.First(&card, "page_id = ? AND position = ?", page.ID, position).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCardNotFound
			}
			return err
		}
		if err := deleteCardContents(tx, &card); err != nil {
			return err
		}
		if err := tx.Delete(&qmodel.CardModel{}, "id = ?", card.ID).Error; err != nil {
			return err
		}
		if err := closeCardGap(tx, page.ID, position); err != nil {
			return err
		}
		return touchBank(tx, bankID)
	})
}

/* =========================================================
   Incremental: content
========================================================= */

func (s *FormProcessingService) AddContent(ctx context.Context, bankID string, pageIndex, cardPosition int, it *qdto.ContentItem) (*qdto.AddContentResult, error) {
	codec, err := ResolveContentType(it.Type)
	if err != nil {
		return nil, err
	}

	var out qdto.AddContentResult
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var bank qmodel.QuestionBankModel
		if err := tx.First(&bank, "questionbank_id = ?", bankID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBankNotFound
			}
			return err
		}
		page, err := findPage(tx, bankID, pageIndex)
		if err != nil {
			return err
		}
		var card qmodel.CardModel
		if err := tx.First(&card, "page_id = ? AND position = ?", page.ID, cardPosition).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCardNotFound
			}
			return err
		}
		if codec.Family != card.CardType {
			return ErrContentCardTypeMismatch
		}

		orderID, err := nextOrderID(tx, card.ID)
		if err != nil {
			return err
		}
		it.OrderID = orderID
		it.EnsureID()

		// jaga invariant AnswerUnit juga pada add incremental:
		// seed allocator dari seluruh id yang sudah tersimpan di bank ini
		alloc, err := allocatorForBank(tx, &bank)
		if err != nil {
			return err
		}
		alloc.Assign(it)

		if err := codec.insert(tx, card.ID, it); err != nil {
			return err
		}
		if err := touchBank(tx, bankID); err != nil {
			return err
		}
		out = qdto.AddContentResult{
			QuestionbankID: bankID,
			PageIndex:      pageIndex,
			CardPosition:   cardPosition,
			ContentID:      it.ID,
			ContentType:    string(it.Type),
			OrderID:        orderID,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateContent: delete + reinsert dengan content_id yang dipertahankan.
// Tipe konten immutable — payload harus memakai tipe yang sama dengan
// saat create (baris dicari di tabel milik tipe itu).
func (s *FormProcessingService) UpdateContent(ctx context.Context, bankID, contentID string, it *qdto.ContentItem) error {
	codec, err := ResolveContentType(it.Type)
	if err != nil {
		return err
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var bank qmodel.QuestionBankModel
		if err := tx.First(&bank, "questionbank_id = ?", bankID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBankNotFound
			}
			return err
		}

		var row struct {
			CardID  uuid.UUID
			OrderID int
		}
		if err := tx.Table(codec.Table).
			Select("card_id", "order_id").
			Where("content_id = ?", contentID).
			Take(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrContentNotFound
			}
			return err
		}
		if err := verifyCardOwnership(tx, row.CardID, bankID); err != nil {
			return err
		}

		if err := tx.Exec("DELETE FROM "+codec.Table+" WHERE content_id = ?", contentID).Error; err != nil {
			return err
		}

		it.ID = contentID
		if it.OrderID == 0 {
			it.OrderID = row.OrderID // payload tanpa order → posisi lama dipertahankan
		}

		alloc, err := allocatorForBank(tx, &bank)
		if err != nil {
			return err
		}
		alloc.Assign(it)

		if err := codec.insert(tx, row.CardID, it); err != nil {
			return err
		}
		return touchBank(tx, bankID)
	})
}

func (s *FormProcessingService) DeleteContent(ctx context.Context, bankID, contentID string, contentType qdto.ContentType) (*qdto.DeleteContentResult, error) {
	codec, err := ResolveContentType(contentType)
	if err != nil {
		return nil, err
	}

	var out qdto.DeleteContentResult
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row struct {
			CardID uuid.UUID
		}
		if err := tx.Table(codec.Table).
			Select("card_id").
			Where("content_id = ?", contentID).
			Take(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrContentNotFound
			}
			return err
		}
		if err := verifyCardOwnership(tx, row.CardID, bankID); err != nil {
			return err
		}

		if err := tx.Exec("DELETE FROM "+codec.Table+" WHERE content_id = ?", contentID).Error; err != nil {
			return err
		}

		// card yang kosong ikut dihapus + posisi card lain dirapatkan
		remaining, err := countCardContents(tx, row.CardID)
		if err != nil {
			return err
		}
		cardRemoved := false
		if remaining == 0 {
			var card qmodel.CardModel
			if err := tx.First(&card, "id = ?", row.CardID).Error; err != nil {
				return err
			}
			if err := tx.Delete(&qmodel.CardModel{}, "id = ?", card.ID).Error; err != nil {
				return err
			}
			if err := closeCardGap(tx, card.PageID, card.Position); err != nil {
				return err
			}
			cardRemoved = true
		}
		if err := touchBank(tx, bankID); err != nil {
			return err
		}
		out = qdto.DeleteContentResult{
			QuestionbankID: bankID,
			ContentID:      contentID,
			ContentType:    string(contentType),
			CardRemoved:    cardRemoved,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

/* =========================================================
   Reorganize answer ids (persisted)
========================================================= */

// ReorganizeAnswerIDs menomori ulang seluruh AnswerUnit bank jadi rapat
// mulai 1 (urutan dokumen), lalu menulis balik baris yang berubah.
// Idempoten: dijalankan dua kali pada dokumen yang sama → id identik.
func (s *FormProcessingService) ReorganizeAnswerIDs(ctx context.Context, bankID string) (*qdto.QuestionBankDocument, error) {
	var doc *qdto.QuestionBankDocument
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var bank qmodel.QuestionBankModel
		if err := tx.First(&bank, "questionbank_id = ?", bankID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBankNotFound
			}
			return err
		}
		var err error
		if doc, err = buildDocument(tx, &bank); err != nil {
			return err
		}

		alloc := NewAnswerIDAllocator()
		alloc.ReorganizeAll(doc.Pages)

		var werr error
		walkContents(doc.Pages, func(it *qdto.ContentItem) {
			if werr != nil {
				return
			}
			switch it.Type {
			case qdto.ContentSingleChoice, qdto.ContentMultipleChoice:
				werr = tx.Table(mustCodec(it.Type).Table).
					Where("content_id = ?", it.ID).
					Updates(map[string]any{
						"answer_id":    it.AnswerID,
						"options_data": mustJSON(it.Options),
					}).Error
			case qdto.ContentFillInTheBlank:
				werr = tx.Table(mustCodec(it.Type).Table).
					Where("content_id = ?", it.ID).
					Update("blanks_data", mustJSON(it.Blanks)).Error
			case qdto.ContentMatching:
				werr = tx.Table(mustCodec(it.Type).Table).
					Where("content_id = ?", it.ID).
					Update("options_data", mustJSON(it.Blanks)).Error
			}
		})
		if werr != nil {
			return werr
		}
		return touchBank(tx, bankID)
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

/* =========================================================
   Internal lookups
========================================================= */

func findPage(tx *gorm.DB, bankID string, pageIndex int) (*qmodel.PageModel, error) {
	var page qmodel.PageModel
	if err := tx.First(&page, "questionbank_id = ? AND page_index = ?", bankID, pageIndex).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPageNotFound
		}
		return nil, err
	}
	return &page, nil
}

// verifyCardOwnership memastikan card (dan berarti kontennya) memang
// milik bank yang direferensikan caller.
func verifyCardOwnership(tx *gorm.DB, cardID uuid.UUID, bankID string) error {
	var owner string
	err := tx.Table("cards").
		Select("question_bank_pages.questionbank_id").
		Joins("JOIN question_bank_pages ON question_bank_pages.id = cards.page_id").
		Where("cards.id = ?", cardID).
		Scan(&owner).Error
	if err != nil {
		return err
	}
	if owner == "" {
		return ErrContentNotFound
	}
	if owner != bankID {
		return ErrContentForeignBank
	}
	return nil
}

// allocatorForBank seed allocator dari seluruh dokumen tersimpan bank.
func allocatorForBank(tx *gorm.DB, bank *qmodel.QuestionBankModel) (*AnswerIDAllocator, error) {
	doc, err := buildDocument(tx, bank)
	if err != nil {
		return nil, err
	}
	alloc := NewAnswerIDAllocator()
	alloc.InitializeFromPages(doc.Pages)
	return alloc, nil
}

func mustCodec(t qdto.ContentType) contentCodec {
	c, _ := ResolveContentType(t)
	return c
}

func mustJSON(v any) []byte {
	b, _ := json.Marshal(v)
	return b
}

func strDeref(p *string, def string) string {
	if p == nil || *p == "" {
		return def
	}
	return *p
}
