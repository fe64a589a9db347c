package util

import (
	"reflect"
	"testing"
)

func TestParseIntDefault(t *testing.T) {
	cases := map[string]int{"": 8, "12": 12, " 3 ": 3, "eight": 8}
	for in, want := range cases {
		if got := ParseIntDefault(in, 8); got != want {
			t.Fatalf("ParseIntDefault(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestParseBoolDefault(t *testing.T) {
	cases := map[string]bool{"": false, "true": true, "TRUE": true, "1": true, "0": false, "yes": false}
	for in, want := range cases {
		if got := ParseBoolDefault(in, false); got != want {
			t.Fatalf("ParseBoolDefault(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestSplitList(t *testing.T) {
	got := SplitList(" NYSE, lse ,,JPX ")
	want := []string{"NYSE", "lse", "JPX"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
	if got := SplitList(""); len(got) != 0 {
		t.Fatalf("expected empty, got %v", got)
	}
}
