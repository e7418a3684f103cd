package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/goto/salt/audit"
	"gorm.io/datatypes"
)

// AuditLog is a row of the table the salt audit service writes to.
type AuditLog struct {
	Timestamp time.Time
	Action    string
	Actor     string
	Data      datatypes.JSON
	Metadata  datatypes.JSON
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

func (m *AuditLog) ToAuditLog() (*audit.Log, error) {
	l := &audit.Log{
		Timestamp: m.Timestamp,
		Action:    m.Action,
		Actor:     m.Actor,
	}

	var err error
	if l.Data, err = decodeJSONObject(m.Data); err != nil {
		return nil, fmt.Errorf("decoding data of %q: %w", m.Action, err)
	}
	if l.Metadata, err = decodeJSONObject(m.Metadata); err != nil {
		return nil, fmt.Errorf("decoding metadata of %q: %w", m.Action, err)
	}
	return l, nil
}

// decodeJSONObject keeps non-object payloads as they are so callers can
// reject them.
func decodeJSONObject(raw datatypes.JSON) (interface{}, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return v, nil
}
