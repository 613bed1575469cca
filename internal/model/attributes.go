package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// AttributeMap holds the open-ended extra attributes of a variant
// (RGB, Mechanical, WirelessRange, ...). Stored as JSONB and returned
// verbatim; the catalog core never interprets individual keys.
type AttributeMap map[string]interface{}

func (a AttributeMap) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	return json.Marshal(a)
}

func (a *AttributeMap) Scan(src interface{}) error {
	if src == nil {
		*a = nil
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("attribute map: cannot scan %T", src)
	}
	return json.Unmarshal(data, a)
}
