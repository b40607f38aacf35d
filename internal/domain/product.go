package domain

import (
	"database/sql/driver"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// StringList stores an ordered list of strings as a JSON text column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	return json.MarshalToString([]string(l))
}

func (l *StringList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.UnmarshalFromString(v, l)
	default:
		return errors.Errorf("unsupported StringList source %T", src)
	}
}

const (
	CategoryGifts  = "Gifts"
	CategoryDecors = "Decors"
)

// ValidCategory reports whether v belongs to the fixed category set.
func ValidCategory(v string) bool {
	return v == CategoryGifts || v == CategoryDecors
}

// Product is a catalog item. Category is constrained to the fixed set
// and every product carries at least one image URL; the API layer
// enforces both before anything reaches the table.
type Product struct {
	ID          int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string     `gorm:"index" json:"name"`
	Price       float64    `json:"price"`
	Category    string     `gorm:"size:32;index" json:"category"`
	Description string     `json:"description"`
	Images      StringList `gorm:"type:text" json:"images"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TableName Specify table name
func (Product) TableName() string {
	return "products"
}
