package gxmonitor

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
)

func feed(t Transformer, chunks ...string) []string {
	var ret []string
	for _, c := range chunks {
		ret = append(ret, t.Transform(c)...)
	}
	return append(ret, t.Flush()...)
}

// chunk splits s into pieces of at most size bytes.
func chunk(s string, size int) []string {
	var ret []string
	for len(s) > size {
		ret = append(ret, s[:size])
		s = s[size:]
	}
	return append(ret, s)
}

func TestLineTransformer(t *testing.T) {
	tests := []struct {
		name   string
		chunks []string
		want   []string
	}{
		{"split across chunks", []string{"AB", "C\nDE", "F\n"}, []string{"ABC", "DEF", ""}},
		{"no delimiter", []string{"abc", "def"}, []string{"abcdef"}},
		{"many delimiters in one chunk", []string{"a\nb\n\nc"}, []string{"a", "b", "", "c"}},
		{"only delimiters", []string{"\n", "\n"}, []string{"", "", ""}},
		{"empty input", nil, []string{""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := feed(NewLineTransformer(), tt.chunks...)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLineTransformerRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"single line",
		"first\nsecond\nthird\n",
		"\n\nleading blank lines",
		"mixed\r\nline endings\rstay\n",
		"ünïcödé\nlines\n€",
	}
	for _, in := range inputs {
		for size := 1; size <= len(in)+1; size++ {
			got := strings.Join(feed(NewLineTransformer(), chunk(in, size)...), "\n")
			if got != in {
				t.Fatalf("chunk size %d: got %q, want %q", size, got, in)
			}
		}
	}
}

func TestLineTransformerFlushOnce(t *testing.T) {
	lt := NewLineTransformer()
	lt.Transform("tail")
	if got := lt.Flush(); !reflect.DeepEqual(got, []string{"tail"}) {
		t.Fatalf("Flush() = %q", got)
	}
	if got := lt.Flush(); !reflect.DeepEqual(got, []string{""}) {
		t.Fatalf("second Flush() = %q, want buffer to be empty", got)
	}
}

func TestHexTransformer(t *testing.T) {
	ht := NewHexTransformer()
	got := ht.Transform("10,5,")
	if want := []string{"0a ", "05 "}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Transform() = %q, want %q", got, want)
	}
	if got := ht.Flush(); len(got) != 0 {
		t.Fatalf("Flush() = %q, want nothing for an empty tail", got)
	}
}

func TestHexTransformerKeepEmptyTail(t *testing.T) {
	ht := &HexTransformer{KeepEmptyTail: true}
	ht.Transform("10,5,")
	if got, want := ht.Flush(), []string{"0 "}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Flush() = %q, want %q", got, want)
	}
}

func TestHexTransformerFlushTail(t *testing.T) {
	tests := []struct {
		tail string
		want string
	}{
		{"12", "c "},
		{"255", "ff "},
		{" 7 ", "7 "},
		{"-3", "-3 "},
		{"x", "NaN "},
		{"1x", "NaN "},
		{"+-1", "NaN "},
	}
	for _, tt := range tests {
		ht := NewHexTransformer()
		if out := ht.Transform(tt.tail); len(out) != 0 {
			t.Fatalf("Transform(%q) = %q, want the field to be retained", tt.tail, out)
		}
		if got := ht.Flush(); !reflect.DeepEqual(got, []string{tt.want}) {
			t.Errorf("Flush() of %q = %q, want %q", tt.tail, got, tt.want)
		}
	}
}

func TestFormatHexField(t *testing.T) {
	tests := []struct {
		field string
		want  string
	}{
		{"0", "00 "},
		{"5", "05 "},
		{"15", "0f "},
		{"16", "10 "},
		{"255", "ff "},
		{"300", "12c "},
		{" 7", "07 "},
		{"12abc", "0c "},
		{"-1", "-1 "},
		{"", "NaN "},
		{"abc", "NaN "},
		{"-", "NaN "},
		{"99999999999999999999", "56bc75e2d63100000 "},
	}
	for _, tt := range tests {
		if got := formatHexField(tt.field); got != tt.want {
			t.Errorf("formatHexField(%q) = %q, want %q", tt.field, got, tt.want)
		}
	}
}

func TestHexTransformerChunkIndependence(t *testing.T) {
	var in strings.Builder
	var want []string
	for v := 0; v < 256; v += 3 {
		fmt.Fprintf(&in, "%d,", v)
		want = append(want, fmt.Sprintf("%02x", v))
	}
	s := in.String()
	for size := 1; size <= 9; size++ {
		out := feed(NewHexTransformer(), chunk(s, size)...)
		got := strings.Fields(strings.Join(out, ""))
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("chunk size %d: got %v, want %v", size, got, want)
		}
	}
}
