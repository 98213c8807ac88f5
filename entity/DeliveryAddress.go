package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// DeliveryAddress is the structured blob the client submits at checkout.
// Stored as JSON in a single column.
type DeliveryAddress struct {
	Street string `json:"street" binding:"required"`
	City   string `json:"city" binding:"required"`
	Notes  string `json:"notes,omitempty"`
}

func (a *DeliveryAddress) Scan(value interface{}) error {
	if value == nil {
		*a = DeliveryAddress{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	default:
		return fmt.Errorf("failed to scan DeliveryAddress: %v", value)
	}
}

func (a DeliveryAddress) Value() (driver.Value, error) {
	return json.Marshal(a)
}
