package redact

import (
	"strings"
	"testing"
)

func TestPreview(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{
			name:  "long secret",
			value: "sk-ABCDEFGHIJKLMNOP1234",
			want:  "sk-ABCDEFG...1234",
		},
		{
			name:  "exactly fourteen characters",
			value: "tvly-ABCD1234X",
			want:  "tvly-ABCD1...234X",
		},
		{
			name:  "thirteen characters is fully masked",
			value: "tvly-ABCD1234",
			want:  "HIDDEN",
		},
		{
			name:  "short secret",
			value: "abc",
			want:  "HIDDEN",
		},
		{
			name:  "empty value",
			value: "",
			want:  "HIDDEN",
		},
		{
			name:  "multibyte secret of fourteen characters",
			value: "ключ-секрет123",
			want:  "ключ-секре...т123",
		},
		{
			name:  "multibyte secret of thirteen characters",
			value: "ключ-секрет12",
			want:  "HIDDEN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Preview(tt.value)
			if got != tt.want {
				t.Errorf("Preview() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPreviewNeverContainsFullValue(t *testing.T) {
	value := "sk-ABCDEFGHIJKLMNOP1234567890"
	got := Preview(value)
	if strings.Contains(got, value) {
		t.Errorf("Preview() = %q contains the raw value", got)
	}
}

func TestSnapshot(t *testing.T) {
	values := map[string]string{
		"OPENAI_API_KEY": "sk-ABCDEFGHIJKLMNOP1234",
		"RETRIEVER":      "tavily",
	}
	isSecret := func(name string) bool { return name == "OPENAI_API_KEY" }

	got := Snapshot(values, isSecret)

	if got["OPENAI_API_KEY"] != "sk-ABCDEFG...1234" {
		t.Errorf("Snapshot() secret = %q, want redacted preview", got["OPENAI_API_KEY"])
	}
	if got["RETRIEVER"] != "tavily" {
		t.Errorf("Snapshot() non-secret = %q, want raw value", got["RETRIEVER"])
	}
	if values["OPENAI_API_KEY"] != "sk-ABCDEFGHIJKLMNOP1234" {
		t.Error("Snapshot() mutated the input map")
	}
}
