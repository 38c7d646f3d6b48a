package types

import (
	"errors"
	"testing"
)

func TestTraitZeroValueIsAgile(t *testing.T) {
	var tr TypeTrait
	if tr != TraitAgile {
		t.Fatalf("zero TypeTrait = %v, want %v", tr, TraitAgile)
	}
}

func TestParseTrait(t *testing.T) {
	tests := []struct {
		in      string
		want    TypeTrait
		wantErr error
	}{
		{"", TraitAgile, nil},
		{"agile", TraitAgile, nil},
		{"Agile", TraitAgile, nil},
		{" confined ", TraitConfined, nil},
		{"CONFINED", TraitConfined, nil},
		{"sta", TraitAgile, ErrInvalidTrait},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTrait(tt.in)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseTrait(%q) error = %v, want %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Fatalf("ParseTrait(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTraitText(t *testing.T) {
	b, err := TraitConfined.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "confined" {
		t.Fatalf("MarshalText = %q, want confined", b)
	}

	var tr TypeTrait
	if err := tr.UnmarshalText([]byte("confined")); err != nil {
		t.Fatal(err)
	}
	if tr != TraitConfined {
		t.Fatalf("UnmarshalText = %v, want confined", tr)
	}

	if _, err := TypeTrait(7).MarshalText(); !errors.Is(err, ErrInvalidTrait) {
		t.Fatalf("expected ErrInvalidTrait, got %v", err)
	}
	if TypeTrait(7).Valid() {
		t.Fatal("TypeTrait(7).Valid() = true")
	}
	if got := TypeTrait(7).String(); got != "TypeTrait(7)" {
		t.Fatalf("String = %q", got)
	}
}
