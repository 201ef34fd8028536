package notes

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []Note
	}{
		{
			name: "empty input",
			raw:  "",
			want: []Note{},
		},
		{
			name: "whitespace only",
			raw:  "   ",
			want: []Note{},
		},
		{
			name: "single note with examples",
			raw:  "WORD\ndefinition\nex1\nex2",
			want: []Note{
				{Title: "WORD", Definition: "definition", Examples: []string{"ex1", "ex2"}},
			},
		},
		{
			name: "two blocks keep order",
			raw:  "A\ndef1\n====\nB\ndef2",
			want: []Note{
				{Title: "A", Definition: "def1", Examples: []string{}},
				{Title: "B", Definition: "def2", Examples: []string{}},
			},
		},
		{
			name: "title only",
			raw:  "SOLO",
			want: []Note{
				{Title: "SOLO", Definition: "", Examples: []string{}},
			},
		},
		{
			name: "speaker glyph sets pronunciation",
			raw:  "Run\n🔊 https://example.com/run.mp3\nto move fast\nI run daily",
			want: []Note{
				{
					Title:         "Run",
					Pronunciation: "https://example.com/run.mp3",
					Definition:    "to move fast",
					Examples:      []string{"I run daily"},
				},
			},
		},
		{
			name: "pronunciation url stops at no-break space",
			raw:  "WORD\n🔊 https://x.test/a\u00a0(UK)\ndef",
			want: []Note{
				{Title: "WORD", Pronunciation: "https://x.test/a", Definition: "def", Examples: []string{}},
			},
		},
		{
			name: "pronunciation label is case insensitive",
			raw:  "Walk\nPRONUNCIATION: http://audio.test/walk listen here\nto move on foot",
			want: []Note{
				{
					Title:         "Walk",
					Pronunciation: "http://audio.test/walk",
					Definition:    "to move on foot",
					Examples:      []string{},
				},
			},
		},
		{
			name: "marker without url is dropped",
			raw:  "Talk\n🗣 ask the coach\nto speak",
			want: []Note{
				{Title: "Talk", Definition: "to speak", Examples: []string{}},
			},
		},
		{
			name: "phonetic glyph line after definition is not an example",
			raw:  "Cat\na small animal\n🔤 https://ipa.test/cat\nThe cat sleeps",
			want: []Note{
				{
					Title:         "Cat",
					Pronunciation: "https://ipa.test/cat",
					Definition:    "a small animal",
					Examples:      []string{"The cat sleeps"},
				},
			},
		},
		{
			name: "empty blocks and blank lines skipped",
			raw:  "====\n\n  ====\n  Dog  \n\n\r\n  a pet \r\n====\n   \n",
			want: []Note{
				{Title: "Dog", Definition: "a pet", Examples: []string{}},
			},
		},
		{
			name: "separator inline splits blocks",
			raw:  "One\nfirst====Two\nsecond",
			want: []Note{
				{Title: "One", Definition: "first", Examples: []string{}},
				{Title: "Two", Definition: "second", Examples: []string{}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestParse_EveryNoteHasTitle(t *testing.T) {
	raw := "A\n====\n\n====\nB\nb def\n====\n   \n====\nC"
	got := Parse(raw)
	if len(got) != 3 {
		t.Fatalf("Parse() returned %d notes, want 3", len(got))
	}
	for i, n := range got {
		if n.Title == "" {
			t.Errorf("Parse()[%d] has empty title", i)
		}
		if n.Examples == nil {
			t.Errorf("Parse()[%d] has nil examples", i)
		}
	}
}

func TestFormat_RoundTrip(t *testing.T) {
	in := []Note{
		{
			Title:         "Run",
			Pronunciation: "https://example.com/run.mp3",
			Definition:    "to move fast",
			Examples:      []string{"I run daily", "She runs"},
		},
		{Title: "SOLO", Examples: []string{}},
		{Title: "Jump", Definition: "to leave the ground", Examples: []string{}},
	}

	text := Format(in)
	got := Parse(text)
	if !reflect.DeepEqual(got, in) {
		t.Errorf("Parse(Format()) = %#v, want %#v", got, in)
	}
}

func TestFormat(t *testing.T) {
	in := []Note{
		{Title: "A", Definition: "def1", Examples: []string{"e1"}},
		{Title: "B", Pronunciation: "http://x.test/b"},
	}
	want := "A\ndef1\ne1\n====\nB\n🔊 Pronunciation: http://x.test/b"
	if got := Format(in); got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
	if got := Format(nil); got != "" {
		t.Errorf("Format(nil) = %q, want empty", got)
	}
}

func TestParseOptions(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		wantOptions []string
		wantCorrect int
	}{
		{
			name:        "marked option",
			text:        "a\n*b\nc",
			wantOptions: []string{"a", "b", "c"},
			wantCorrect: 1,
		},
		{
			name:        "no marker",
			text:        "a\nb",
			wantOptions: []string{"a", "b"},
			wantCorrect: -1,
		},
		{
			name:        "marker with spacing and blank lines",
			text:        "\n  *  first \n\n second\n",
			wantOptions: []string{"first", "second"},
			wantCorrect: 0,
		},
		{
			name:        "last marker wins",
			text:        "*a\n*b",
			wantOptions: []string{"a", "b"},
			wantCorrect: 1,
		},
		{
			name:        "empty",
			text:        "",
			wantOptions: []string{},
			wantCorrect: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			options, correct := ParseOptions(tt.text)
			if !reflect.DeepEqual(options, tt.wantOptions) {
				t.Errorf("ParseOptions() options = %v, want %v", options, tt.wantOptions)
			}
			if correct != tt.wantCorrect {
				t.Errorf("ParseOptions() correctIndex = %d, want %d", correct, tt.wantCorrect)
			}
		})
	}
}

func TestSession_FindNote(t *testing.T) {
	s := Session{Notes: []Note{{Title: "A"}, {Title: "B", Definition: "b"}}}

	n, ok := s.FindNote("B")
	if !ok || n.Definition != "b" {
		t.Errorf("FindNote(B) = %v, %v", n, ok)
	}
	if _, ok := s.FindNote("missing"); ok {
		t.Error("FindNote(missing) should not be found")
	}
}

func TestFormatOptions(t *testing.T) {
	text := FormatOptions([]string{"a", "b", "c"}, 2)
	if text != "a\nb\n*c" {
		t.Errorf("FormatOptions() = %q", text)
	}

	options, correct := ParseOptions(text)
	if !reflect.DeepEqual(options, []string{"a", "b", "c"}) || correct != 2 {
		t.Errorf("ParseOptions(FormatOptions()) = %v, %d", options, correct)
	}

	if got := FormatOptions([]string{"a"}, -1); got != "a" {
		t.Errorf("FormatOptions() without answer = %q", got)
	}
}
