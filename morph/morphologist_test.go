package morph

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/steosofficial/steosmorphy/encoding"
)

func TestMorphologistAnalyzeAmbiguity(t *testing.T) {
	// Spec scenario 5: suffix line (а->1, ой->2, а->3), base "мам" with
	// lemma id 1; Analyze("мама") must yield {(1,1),(1,3)}.
	b := NewBuilder(encoding.Russian)
	line := b.AddSuffixLine()
	if err := b.AddSuffix(line, 1, "а"); err != nil {
		t.Fatal(err)
	}
	if err := b.AddSuffix(line, 2, "ой"); err != nil {
		t.Fatal(err)
	}
	if err := b.AddSuffix(line, 3, "а"); err != nil {
		t.Fatal(err)
	}
	if err := b.AddBase(1, line, "мам", "мама"); err != nil {
		t.Fatal(err)
	}

	m := b.Build()
	got := m.Analyze("мама")

	want := []Lemma{{LemmaID: 1, Attr: 1}, {LemmaID: 1, Attr: 3}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Analyze = %+v, want %+v", got, want)
	}
}

func TestMorphologistAnalyzeNoMatch(t *testing.T) {
	b := NewBuilder(encoding.Russian)
	line := b.AddSuffixLine()
	if err := b.AddSuffix(line, 1, "а"); err != nil {
		t.Fatal(err)
	}
	if err := b.AddBase(1, line, "мам", "мама"); err != nil {
		t.Fatal(err)
	}
	m := b.Build()
	if got := m.Analyze("папа"); got != nil {
		t.Fatalf("Analyze(unrelated word) = %+v, want nil", got)
	}
}

func TestMorphologistGenerateAndMainForm(t *testing.T) {
	b := NewBuilder(encoding.Russian)
	line := b.AddSuffixLine()
	if err := b.AddSuffix(line, 1, "а"); err != nil {
		t.Fatal(err)
	}
	if err := b.AddSuffix(line, 2, "ой"); err != nil {
		t.Fatal(err)
	}
	if err := b.AddBase(1, line, "мам", "мама"); err != nil {
		t.Fatal(err)
	}
	m := b.Build()

	if got := m.Generate(1, 2); got != "мамой" {
		t.Fatalf("Generate = %q, want мамой", got)
	}
	if got := m.Generate(1, 99); got != "" {
		t.Fatalf("Generate(unknown attr) = %q, want empty", got)
	}
	if got := m.Generate(42, 1); got != "" {
		t.Fatalf("Generate(unknown lemma) = %q, want empty", got)
	}
	if got := m.MainForm(1); got != "мама" {
		t.Fatalf("MainForm = %q, want мама", got)
	}

	all := m.GenerateAll(1)
	want := map[string]bool{"мама": true, "мамой": true}
	if len(all) != len(want) {
		t.Fatalf("GenerateAll = %v, want 2 distinct forms", all)
	}
	for _, f := range all {
		if !want[f] {
			t.Fatalf("GenerateAll produced unexpected form %q", f)
		}
	}
}

func TestMorphologistGenerateForms(t *testing.T) {
	b := NewBuilder(encoding.Russian)
	line := b.AddSuffixLine()
	if err := b.AddSuffix(line, 1, "а"); err != nil {
		t.Fatal(err)
	}
	if err := b.AddSuffix(line, 2, "ой"); err != nil {
		t.Fatal(err)
	}
	if err := b.AddBase(1, line, "мам", "мама"); err != nil {
		t.Fatal(err)
	}
	m := b.Build()

	forms := m.GenerateForms(1)
	want := map[uint32]string{1: "мама", 2: "мамой"}
	if len(forms) != len(want) {
		t.Fatalf("GenerateForms = %+v, want %d entries", forms, len(want))
	}
	for _, f := range forms {
		if want[f.Attr] != f.Word {
			t.Fatalf("attr %d -> %q, want %q", f.Attr, f.Word, want[f.Attr])
		}
	}
}

func TestMorphologistSerializeRoundTrip(t *testing.T) {
	b := NewBuilder(encoding.Russian)
	line := b.AddSuffixLine()
	if err := b.AddSuffix(line, 1, "а"); err != nil {
		t.Fatal(err)
	}
	if err := b.AddBase(1, line, "мам", "мама"); err != nil {
		t.Fatal(err)
	}
	m := b.Build()

	var buf bytes.Buffer
	if err := m.Serialize(&buf); err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	got, err := DeserializeMorphologist(&buf, encoding.Russian)
	if err != nil {
		t.Fatalf("DeserializeMorphologist: %v", err)
	}
	if got.MainForm(1) != "мама" {
		t.Fatalf("MainForm after round-trip = %q, want мама", got.MainForm(1))
	}
	want := []Lemma{{LemmaID: 1, Attr: 1}}
	if lemmas := got.Analyze("мама"); !reflect.DeepEqual(lemmas, want) {
		t.Fatalf("Analyze after round-trip = %+v, want %+v", lemmas, want)
	}
}
