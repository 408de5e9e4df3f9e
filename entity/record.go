package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/milk9111/platformer/collision"
)

// Record is the saved form of one entity: a type tag the Registry resolves
// to a constructor, a position, and type-specific properties.
type Record struct {
	Type  string         `json:"type"`
	X     float64        `json:"x"`
	Y     float64        `json:"y"`
	Props map[string]any `json:"props,omitempty"`
}

func (r Record) Float(key string, def float64) float64 {
	switch v := r.Props[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return def
}

func (r Record) Int(key string, def int) int {
	if _, ok := r.Props[key]; !ok {
		return def
	}
	return int(r.Float(key, float64(def)))
}

func (r Record) Text(key, def string) string {
	if v, ok := r.Props[key].(string); ok {
		return v
	}
	return def
}

func (r Record) Bool(key string, def bool) bool {
	if v, ok := r.Props[key].(bool); ok {
		return v
	}
	return def
}

// ManagerClass tags a serialized entity manager.
const ManagerClass = "EntityManager"

// Snapshot is a serialized entity manager: per-layer record lists in
// registration order. It encodes as one flat object keyed by layer name
// next to a "__class__" tag.
type Snapshot struct {
	Class  string
	Layers map[collision.Layer][]Record
}

func (s Snapshot) Len() int {
	n := 0
	for _, records := range s.Layers {
		n += len(records)
	}
	return n
}

func (s Snapshot) MarshalJSON() ([]byte, error) {
	layers := make([]collision.Layer, 0, len(s.Layers))
	for l := range s.Layers {
		layers = append(layers, l)
	}
	sort.Slice(layers, func(i, j int) bool { return layers[i] < layers[j] })

	var buf bytes.Buffer
	buf.WriteByte('{')
	class, err := json.Marshal(s.Class)
	if err != nil {
		return nil, err
	}
	buf.WriteString(`"__class__":`)
	buf.Write(class)
	for _, l := range layers {
		records := s.Layers[l]
		if records == nil {
			records = []Record{}
		}
		data, err := json.Marshal(records)
		if err != nil {
			return nil, fmt.Errorf("entity: marshal layer %s: %w", l, err)
		}
		fmt.Fprintf(&buf, ",%q:", l.String())
		buf.Write(data)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (s *Snapshot) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	s.Class = ""
	s.Layers = make(map[collision.Layer][]Record)
	for key, value := range raw {
		if key == "__class__" {
			if err := json.Unmarshal(value, &s.Class); err != nil {
				return fmt.Errorf("entity: class tag: %w", err)
			}
			continue
		}
		layer, err := collision.ParseLayer(key)
		if err != nil {
			return err
		}
		var records []Record
		if err := json.Unmarshal(value, &records); err != nil {
			return fmt.Errorf("entity: layer %s: %w", key, err)
		}
		s.Layers[layer] = records
	}
	return nil
}
