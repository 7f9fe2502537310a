package lang

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
)

func TestTemplate_MarshalJSON(t *testing.T) {
	t.Parallel()

	tmpl, err := Parse(context.Background(), "Hi {$USER}")
	if err != nil {
		t.Fatal(err)
	}

	data, err := json.Marshal(tmpl)
	if err != nil {
		t.Fatal(err)
	}

	var got struct {
		Segments []map[string]any `json:"segments"`
	}

	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal %s: %v", data, err)
	}

	if len(got.Segments) != 2 {
		t.Fatalf("got %d segments, want 2", len(got.Segments))
	}

	if got.Segments[0]["kind"] != "literal" || got.Segments[0]["raw"] != "Hi " {
		t.Errorf("segment 0 = %v", got.Segments[0])
	}

	if _, ok := got.Segments[0]["body"]; ok {
		t.Errorf("literal segment has body: %v", got.Segments[0])
	}

	if got.Segments[1]["kind"] != "env" || got.Segments[1]["body"] != "USER" {
		t.Errorf("segment 1 = %v", got.Segments[1])
	}
}

func TestTemplate_MarshalYAML(t *testing.T) {
	t.Parallel()

	tmpl, err := Parse(context.Background(), "{@bold}")
	if err != nil {
		t.Fatal(err)
	}

	data, err := yaml.Marshal(tmpl)
	if err != nil {
		t.Fatal(err)
	}

	out := string(data)
	for _, want := range []string{"segments:", "kind: style", "@bold", "body: bold"} {
		if !strings.Contains(out, want) {
			t.Errorf("YAML output missing %q:\n%s", want, out)
		}
	}
}

func TestKind_UnmarshalText(t *testing.T) {
	t.Parallel()

	var k Kind
	if err := k.UnmarshalText([]byte("command")); err != nil || k != KindCommand {
		t.Errorf("UnmarshalText(command) = %v, %v", k, err)
	}

	if err := k.UnmarshalText([]byte("nope")); err == nil {
		t.Error("UnmarshalText(nope) succeeded")
	}
}
