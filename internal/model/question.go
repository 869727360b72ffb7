package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// OptionList holds the answer options of one question as a JSON array.
type OptionList []string

func (o OptionList) Value() (driver.Value, error) {
	if o == nil {
		o = OptionList{}
	}
	return json.Marshal(o)
}

func (o *OptionList) Scan(value interface{}) error {
	if value == nil {
		*o = OptionList{}
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into OptionList", value)
	}
	opts := OptionList{}
	if err := json.Unmarshal(raw, &opts); err != nil {
		*o = OptionList{}
		return nil
	}
	*o = opts
	return nil
}

type Question struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	TestID        uint           `json:"test_id" gorm:"not null;index"`
	Prompt        string         `json:"prompt" gorm:"type:text;not null"`
	Options       OptionList     `json:"options" gorm:"type:jsonb;not null"`
	CorrectOption int            `json:"correct_option" gorm:"not null"` // index into Options
	OrderInTest   int            `json:"order_in_test" gorm:"not null"`  // 0-based position
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
