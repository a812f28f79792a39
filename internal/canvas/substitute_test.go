package canvas

import "testing"

func TestSubstitute(t *testing.T) {
	tests := []struct {
		name    string
		label   string
		person  string
		message string
		want    string
	}{
		{
			name:    "both tokens",
			label:   "Happy Birthday, {{name}}! {{message}}",
			person:  "Ana",
			message: "Cheers!",
			want:    "Happy Birthday, Ana! Cheers!",
		},
		{
			name:   "empty name falls back to default",
			label:  "Hello {{name}}",
			person: "",
			want:   "Hello " + DefaultName,
		},
		{
			name:    "empty message falls back to default",
			label:   "{{message}}",
			message: "",
			want:    DefaultMessage,
		},
		{
			name:  "no tokens pass through",
			label: "Just a caption",
			want:  "Just a caption",
		},
		{
			name:   "partial token is not matched",
			label:  "{{nam}} {name}",
			person: "Ana",
			want:   "{{nam}} {name}",
		},
		{
			name:   "case sensitive",
			label:  "{{Name}}",
			person: "Ana",
			want:   "{{Name}}",
		},
		{
			name:    "message value containing name token is not re-substituted",
			label:   "{{message}}",
			person:  "Ana",
			message: "see {{name}}",
			want:    "see {{name}}",
		},
		{
			name:    "name value containing message token is not re-substituted",
			label:   "{{name}}",
			person:  "use {{message}}",
			message: "hi",
			want:    "use {{message}}",
		},
		{
			name:    "repeated tokens all replaced",
			label:   "{{name}} and {{name}}",
			person:  "Ana",
			message: "x",
			want:    "Ana and Ana",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Substitute(tt.label, tt.person, tt.message)
			if got != tt.want {
				t.Fatalf("unexpected result: got=%q want=%q", got, tt.want)
			}
		})
	}
}

func TestSubstitute_Idempotent(t *testing.T) {
	labels := []string{
		"Happy Birthday, {{name}}! {{message}}",
		"{{name}}{{name}}",
		"plain text",
		"",
	}

	for _, label := range labels {
		once := Substitute(label, "Ana", "Cheers!")
		twice := Substitute(once, "Ana", "Cheers!")
		if once != twice {
			t.Fatalf("substitution not idempotent for %q: %q != %q", label, once, twice)
		}
	}
}
