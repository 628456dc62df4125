package helpers

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringSlice JSON olarak saklanan string listesi.
// additional_guests gibi küçük, şemasız listeler için; ayrı bir tablo
// gerektirmeden Postgres jsonb / SQLite text kolonunda durur.
type StringSlice []string

// Value driver.Valuer implementasyonu.
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan sql.Scanner implementasyonu.
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("StringSlice: desteklenmeyen kaynak tipi %T", value)
	}
}
