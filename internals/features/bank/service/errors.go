// file: internals/features/bank/service/errors.go
package service

import "errors"

// Taksonomi error engine. Controller memetakan ke status HTTP
// lewat errors.Is; pesan dipakai langsung untuk tampilan user.
var (
	ErrBankNotFound    = errors.New("question bank tidak ditemukan")
	ErrPageNotFound    = errors.New("page tidak ditemukan")
	ErrCardNotFound    = errors.New("card tidak ditemukan")
	ErrContentNotFound = errors.New("konten tidak ditemukan")

	// konten ada tapi milik bank lain
	ErrContentForeignBank = errors.New("konten bukan milik question bank ini")

	ErrUnknownContentType      = errors.New("tipe konten tidak dikenal")
	ErrContentCardTypeMismatch = errors.New("tipe konten tidak cocok dengan tipe card")
	ErrInvalidCardType         = errors.New("card_type harus 'question' atau 'material'")

	// guard aturan bisnis: minimal satu page per bank
	ErrCannotDeleteOnlyPage = errors.New("tidak boleh menghapus satu-satunya page pada form")
)
