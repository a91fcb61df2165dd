package calibration

import (
	"errors"
	"slices"
	"testing"
)

func TestExtractLiteral(t *testing.T) {
	tests := []struct {
		line string
		want Sequence
	}{
		{"a1b2c3", Sequence{1, 2, 3}},
		{"treb7uchet", Sequence{7}},
		{"1abc2", Sequence{1, 2}},
		{"pqr3stu8vwx", Sequence{3, 8}},
		{"0zero9", Sequence{0, 9}},
		{"two1nine", Sequence{1}},
		{"eightwothree", nil},
		{"", nil},
		{"٣", nil}, // arabic-indic three is not an ASCII digit
	}
	for _, tt := range tests {
		if got := ExtractLiteral(tt.line); !slices.Equal(got, tt.want) {
			t.Errorf("ExtractLiteral(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestExtractMixed(t *testing.T) {
	tests := []struct {
		line string
		want Sequence
	}{
		{"two1nine", Sequence{2, 1, 9}},
		{"eightwothree", Sequence{8, 2, 3}},
		{"abcone2threexyz", Sequence{1, 2, 3}},
		{"xtwone3four", Sequence{2, 1, 3, 4}},
		{"4nineeightseven2", Sequence{4, 9, 8, 7, 2}},
		{"zoneight234", Sequence{1, 8, 2, 3, 4}},
		{"7pqrstsixteen", Sequence{7, 6}},
		{"twone", Sequence{2, 1}},
		{"oneight", Sequence{1, 8}},
		{"zerone", Sequence{0, 1}},
		{"ninine", Sequence{9}},
		{"sevenine", Sequence{7, 9}},
		{"One TWO three", Sequence{3}},
		{"thre", nil},
		{"", nil},
	}
	for _, tt := range tests {
		if got := ExtractMixed(tt.line); !slices.Equal(got, tt.want) {
			t.Errorf("ExtractMixed(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestExtractMixedSeesLiterals(t *testing.T) {
	for _, line := range []string{"a1b2c3", "1abc2", "pqr3stu8vwx", "9x0"} {
		got, want := ExtractMixed(line), ExtractLiteral(line)
		if !slices.Equal(got, want) {
			t.Errorf("ExtractMixed(%q) = %v, want %v", line, got, want)
		}
	}
}

func TestTokenTable(t *testing.T) {
	if len(tokens) != 20 {
		t.Fatalf("len(tokens) = %d, want 20", len(tokens))
	}
	for i, tok := range tokens[:10] {
		if tok.text != string(rune('0'+i)) || tok.value != i {
			t.Errorf("tokens[%d] = %+v, want digit %d", i, tok, i)
		}
	}
	for i, tok := range tokens[10:] {
		if tok.value != i {
			t.Errorf("tokens[%d] = %+v, want value %d", i+10, tok, i)
		}
		if got := ExtractMixed(tok.text); !slices.Equal(got, Sequence{i}) {
			t.Errorf("ExtractMixed(%q) = %v, want [%d]", tok.text, got, i)
		}
	}
}

func TestCompose(t *testing.T) {
	tests := []struct {
		seq  Sequence
		want int
	}{
		{Sequence{1, 2, 3}, 13},
		{Sequence{7}, 77},
		{Sequence{0}, 0},
		{Sequence{2, 1, 9}, 29},
		{Sequence{8, 2, 3}, 83},
		{Sequence{0, 9}, 9},
		{Sequence{9, 9, 9, 9}, 99},
	}
	for _, tt := range tests {
		got, err := Compose(tt.seq)
		if err != nil {
			t.Errorf("Compose(%v): %v", tt.seq, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Compose(%v) = %d, want %d", tt.seq, got, tt.want)
		}
	}
}

func TestComposeSingleDigit(t *testing.T) {
	for d := 0; d <= 9; d++ {
		got, err := Compose(Sequence{d})
		if err != nil || got != 11*d {
			t.Errorf("Compose([%d]) = %d, %v; want %d", d, got, err, 11*d)
		}
	}
}

func TestComposeEmpty(t *testing.T) {
	for _, seq := range []Sequence{nil, {}} {
		if _, err := Compose(seq); !errors.Is(err, ErrNoDigits) {
			t.Errorf("Compose(%#v) error = %v, want ErrNoDigits", seq, err)
		}
	}
}

func TestRules(t *testing.T) {
	if len(Rules) != 2 || Rules[0].Label != "Q1" || Rules[1].Label != "Q2" {
		t.Fatalf("Rules = %v", Rules)
	}
	line := "eightwo3"
	if got := Literal.Extract(line); !slices.Equal(got, Sequence{3}) {
		t.Errorf("Literal.Extract(%q) = %v", line, got)
	}
	if got := Mixed.Extract(line); !slices.Equal(got, Sequence{8, 2, 3}) {
		t.Errorf("Mixed.Extract(%q) = %v", line, got)
	}
}
