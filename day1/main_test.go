package main

import (
	"strings"
	"testing"

	"github.com/maisem/trebuchet/aoc"
)

func TestSamples(t *testing.T) {
	if err := aoc.CheckSamples(source, &solver{}); err != nil {
		t.Fatal(err)
	}
}

func TestSamplesCatchWrongAnswer(t *testing.T) {
	src := strings.Replace(string(source), "want=281", "want=280", 1)
	if src == string(source) {
		t.Fatal("part 2 sample not found in source")
	}
	err := aoc.CheckSamples([]byte(src), &solver{})
	if err == nil || !strings.Contains(err.Error(), "want 280") {
		t.Errorf("CheckSamples = %v, want a part 2 mismatch", err)
	}
}
