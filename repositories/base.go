package repositories

import "errors"

// Repository katmanının sentinel hataları. Servisler errors.Is ile kontrol eder.
var (
	ErrNotFound       = errors.New("kayıt bulunamadı")
	ErrDuplicateEmail = errors.New("bu e-posta ile kayıt zaten var")
)
