package ats

import (
	"reflect"
	"testing"
)

func TestNormalizeStripsTagsAndLowercases(t *testing.T) {
	got := Normalize("<div class=\"x\">Hello <b>World</b></div>")
	want := "hello world"
	if got != want {
		t.Fatalf("Normalize: got %q, want %q", got, want)
	}
}

func TestTokenizeKeepsPlusRuns(t *testing.T) {
	got := Tokenize(Normalize("C++ developer, R&D"))
	want := []string{"c++", "developer"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tokenize: got %v, want %v", got, want)
	}
}

func TestTokenizeDropsShortTokens(t *testing.T) {
	for _, tok := range Tokenize("a of to go the and sql") {
		if len(tok) < 3 {
			t.Fatalf("token %q shorter than 3", tok)
		}
	}
}

func TestTokenizeKeepsDuplicates(t *testing.T) {
	got := Tokenize("python and python")
	want := []string{"python", "and", "python"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tokenize: got %v, want %v", got, want)
	}
}
