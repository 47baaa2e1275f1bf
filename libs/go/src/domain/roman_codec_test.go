package domain_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/auth-platform/roman/libs/go/src/domain"
	testutil "github.com/auth-platform/roman/libs/go/src/testing"
	"gopkg.in/yaml.v3"
	"pgregory.net/rapid"
)

// Property: Roman JSON Round-Trip
func TestRomanJSONRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		original := domain.MustNewRoman(testutil.RomanValueGen().Draw(t, "value"))

		data, err := json.Marshal(original)
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}
		if string(data) != `"`+original.String()+`"` {
			t.Fatalf("numeral should be encoded as a JSON string, got %s", data)
		}

		var restored domain.Roman
		if err := json.Unmarshal(data, &restored); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		if !original.Equals(restored) {
			t.Fatalf("round-trip failed: %s != %s", original, restored)
		}
	})
}

// Property: Roman YAML Round-Trip
func TestRomanYAMLRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		original := domain.MustNewRoman(testutil.RomanValueGen().Draw(t, "value"))

		data, err := yaml.Marshal(map[string]domain.Roman{"n": original})
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}

		var restored map[string]domain.Roman
		if err := yaml.Unmarshal(data, &restored); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		if !original.Equals(restored["n"]) {
			t.Fatalf("round-trip failed: %s != %s", original, restored["n"])
		}
	})
}

func TestRomanUnmarshalJSON(t *testing.T) {
	valid := map[string]int{
		`"MIX"`: 1009,
		`1009`:  1009,
		`4`:     4,
	}
	for input, want := range valid {
		var r domain.Roman
		if err := json.Unmarshal([]byte(input), &r); err != nil {
			t.Fatalf("Unmarshal(%s) failed: %v", input, err)
		}
		if r.Int() != want {
			t.Errorf("Unmarshal(%s) = %d, want %d", input, r.Int(), want)
		}
	}

	invalid := []string{`"IIII"`, `""`, `0`, `4000`, `-1`}
	for _, input := range invalid {
		var r domain.Roman
		if err := json.Unmarshal([]byte(input), &r); !errors.Is(err, domain.ErrInvalidRoman) {
			t.Errorf("Unmarshal(%s) error = %v, want invalid roman", input, err)
		}
	}

	wrongType := []string{`null`, `1.5`, `true`, `{}`, `["X"]`}
	for _, input := range wrongType {
		var r domain.Roman
		if err := json.Unmarshal([]byte(input), &r); !errors.Is(err, domain.ErrRomanType) {
			t.Errorf("Unmarshal(%s) error = %v, want type mismatch", input, err)
		}
	}
}

func TestRomanUnmarshalYAML(t *testing.T) {
	var doc struct {
		A domain.Roman `yaml:"a"`
		B domain.Roman `yaml:"b"`
	}
	if err := yaml.Unmarshal([]byte("a: XCIV\nb: 94\n"), &doc); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if doc.A.Int() != 94 || !doc.A.Equals(doc.B) {
		t.Fatalf("got a=%s b=%s", doc.A, doc.B)
	}

	var r domain.Roman
	if err := yaml.Unmarshal([]byte(`"12"`), &r); !errors.Is(err, domain.ErrInvalidRoman) {
		t.Errorf("quoted digits error = %v, want invalid roman", err)
	}
	if err := yaml.Unmarshal([]byte(`4000`), &r); !errors.Is(err, domain.ErrInvalidRoman) {
		t.Errorf("out of range error = %v, want invalid roman", err)
	}
	if err := yaml.Unmarshal([]byte(`1.5`), &r); !errors.Is(err, domain.ErrRomanType) {
		t.Errorf("float error = %v, want type mismatch", err)
	}
	if err := yaml.Unmarshal([]byte("[X]"), &r); !errors.Is(err, domain.ErrRomanType) {
		t.Errorf("sequence error = %v, want type mismatch", err)
	}
}

func TestRomanTextRoundTrip(t *testing.T) {
	original := domain.MustNewRoman("MMMCMXCIX")
	text, err := original.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText failed: %v", err)
	}

	var restored domain.Roman
	if err := restored.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText failed: %v", err)
	}
	if !restored.Equals(original) {
		t.Fatalf("round-trip failed: %s != %s", restored, original)
	}
	if err := restored.UnmarshalText([]byte("mmm")); !errors.Is(err, domain.ErrInvalidRoman) {
		t.Fatalf("lowercase should be rejected, got %v", err)
	}
	if !restored.Equals(original) {
		t.Fatal("failed UnmarshalText must leave the receiver untouched")
	}
}

func TestRomanJSONMapKey(t *testing.T) {
	data, err := json.Marshal(map[domain.Roman]int{domain.MustNewRoman(4): 4})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != `{"IV":4}` {
		t.Fatalf("got %s", data)
	}
}
