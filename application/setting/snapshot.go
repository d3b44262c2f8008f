package setting

import (
	"encoding/json"
	"strconv"

	"github.com/muhammadheryan/bhrc-portal/constant"
	"github.com/muhammadheryan/bhrc-portal/model"
)

// Snapshot is an immutable, typed view of every setting at one point in time.
type Snapshot struct {
	values map[string]model.TypedSetting
	order  []string
}

func NewSnapshot(rows []model.SettingEntity) *Snapshot {
	snap := &Snapshot{values: make(map[string]model.TypedSetting, len(rows)), order: make([]string, 0, len(rows))}
	for _, row := range rows {
		snap.values[row.Key] = model.TypedSetting{
			Key:      row.Key,
			Value:    Coerce(row.Type, row.Value),
			Category: row.Category,
			IsPublic: row.IsPublic,
		}
		snap.order = append(snap.order, row.Key)
	}
	return snap
}

// Coerce converts a stored value according to its type; unparsable values stay strings.
func Coerce(t constant.SettingType, raw string) any {
	switch t {
	case constant.SettingTypeBool:
		if b, err := strconv.ParseBool(raw); err == nil {
			return b
		}
	case constant.SettingTypeNumber:
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return f
		}
	case constant.SettingTypeJSON:
		var v any
		if err := json.Unmarshal([]byte(raw), &v); err == nil {
			return v
		}
	}
	return raw
}

// ValidValue reports whether raw parses as t.
func ValidValue(t constant.SettingType, raw string) bool {
	switch t {
	case constant.SettingTypeBool:
		_, err := strconv.ParseBool(raw)
		return err == nil
	case constant.SettingTypeNumber:
		_, err := strconv.ParseFloat(raw, 64)
		return err == nil
	case constant.SettingTypeJSON:
		return json.Valid([]byte(raw))
	case constant.SettingTypeString:
		return true
	}
	return false
}

func (s *Snapshot) Value(key string) (any, bool) {
	v, ok := s.values[key]
	return v.Value, ok
}

func (s *Snapshot) Bool(key string, def bool) bool {
	if v, ok := s.values[key].Value.(bool); ok {
		return v
	}
	return def
}

func (s *Snapshot) String(key, def string) string {
	if v, ok := s.values[key].Value.(string); ok && v != "" {
		return v
	}
	return def
}

func (s *Snapshot) Number(key string, def float64) float64 {
	if v, ok := s.values[key].Value.(float64); ok {
		return v
	}
	return def
}

// Grouped returns category -> key -> value, optionally restricted to public settings.
func (s *Snapshot) Grouped(publicOnly bool) map[constant.SettingCategory]map[string]any {
	out := map[constant.SettingCategory]map[string]any{}
	for _, key := range s.order {
		v := s.values[key]
		if publicOnly && !v.IsPublic {
			continue
		}
		if out[v.Category] == nil {
			out[v.Category] = map[string]any{}
		}
		out[v.Category][key] = v.Value
	}
	return out
}
