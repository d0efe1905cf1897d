package docstore

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "lowercases and splits punctuation",
			input: "Button.md: A clickable Button!",
			want:  []string{"button", "md", "clickable", "button"},
		},
		{
			name:  "drops stopwords and short tokens",
			input: "the button can be used with a form",
			want:  []string{"button", "used", "form"},
		},
		{
			name:  "collapses runs of non-word characters",
			input: "data---grid__component",
			want:  []string{"data", "grid", "component"},
		},
		{
			name:  "empty input yields no tokens",
			input: "",
			want:  nil,
		},
		{
			name:  "all-stopword input yields no tokens",
			input: "the and for",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsStopWord(t *testing.T) {
	if !IsStopWord("the") {
		t.Error("expected \"the\" to be a stop word")
	}
	if IsStopWord("button") {
		t.Error("expected \"button\" to not be a stop word")
	}
}
