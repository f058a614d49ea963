package tablestore

import (
	"encoding/json"
	"fmt"
	"strconv"

	"danube_tours/internal/domain"
)

// Entities cross the wire as generic rows; the camelCase side is the
// application representation, so structs marshal with camelCase tags
// and only the key conversion differs per direction.

func toRow(v any) (row, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return ConvertKeys(m, ToSnakeCase).(map[string]any), nil
}

func fromRow(r row, dst any) error {
	camel := ConvertKeys(r, ToCamelCase)
	b, err := json.Marshal(camel)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, dst)
}

// stringID normalizes a row identity: serial columns arrive as JSON
// numbers, uuid columns as strings.
func stringID(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatInt(int64(t), 10)
	case nil:
		return ""
	default:
		return fmt.Sprint(t)
	}
}

func tourFromRow(r row) (domain.Tour, error) {
	camel := ConvertKeys(r, ToCamelCase).(map[string]any)
	camel["id"] = stringID(camel["id"])
	var t domain.Tour
	b, err := json.Marshal(camel)
	if err != nil {
		return domain.Tour{}, err
	}
	return t, json.Unmarshal(b, &t)
}

func tourToRow(t domain.Tour) (row, error) {
	r, err := toRow(t)
	if err != nil {
		return nil, err
	}
	// the store assigns identities; never send an empty one
	if id, ok := r["id"].(string); ok && id == "" {
		delete(r, "id")
	}
	return r, nil
}

func inquiryFromRow(r row) (domain.Inquiry, error) {
	camel := ConvertKeys(r, ToCamelCase).(map[string]any)
	camel["id"] = stringID(camel["id"])
	// creation timestamp column surfaces as the inquiry date
	if v, ok := camel["createdAt"]; ok {
		camel["date"] = v
	}
	var q domain.Inquiry
	b, err := json.Marshal(camel)
	if err != nil {
		return domain.Inquiry{}, err
	}
	return q, json.Unmarshal(b, &q)
}

func logEntryFromRow(r row) (domain.LogEntry, error) {
	camel := ConvertKeys(r, ToCamelCase).(map[string]any)
	camel["id"] = stringID(camel["id"])
	var e domain.LogEntry
	b, err := json.Marshal(camel)
	if err != nil {
		return domain.LogEntry{}, err
	}
	return e, json.Unmarshal(b, &e)
}

func settingsFromRow(r row) (domain.SiteSettings, error) {
	var s domain.SiteSettings
	return s, fromRow(r, &s)
}
