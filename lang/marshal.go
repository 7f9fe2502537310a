package lang

import (
	"encoding/json"
	"fmt"
)

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	kind, ok := ParseKind(string(text))
	if !ok {
		return fmt.Errorf("unknown segment kind %q", text)
	}

	*k = kind

	return nil
}

// segmentView is the serialized form of a Segment.
type segmentView struct {
	Kind Kind     `json:"kind"           yaml:"kind"`
	Raw  string   `json:"raw"            yaml:"raw"`
	Body string   `json:"body,omitempty" yaml:"body,omitempty"`
	Pos  Position `json:"pos"            yaml:"pos"`
}

func (s Segment) view() segmentView {
	v := segmentView{Kind: s.Kind, Raw: s.Raw, Pos: s.Pos}
	if s.IsDirective() {
		v.Body = s.Body()
	}

	return v
}

// MarshalJSON implements json.Marshaler for Segment.
func (s Segment) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.view())
}

// MarshalYAML implements the goccy/go-yaml InterfaceMarshaler.
func (s Segment) MarshalYAML() (any, error) {
	return s.view(), nil
}
