package sdfatlas

import (
	"bytes"
	"errors"
	"testing"
)

func TestGenerateAll(t *testing.T) {
	cfg := smallConfig()
	cfg.Workers = 3
	g := NewGenerator(nil, cfg)
	font := FontSpec{Family: "Go", Size: 10}
	inputs := []string{"one", "two", "three", "four", "five"}

	got, err := g.GenerateAll(font, inputs)
	if err != nil {
		t.Fatalf("GenerateAll error: %v", err)
	}
	if len(got) != len(inputs) {
		t.Fatalf("len = %d, want %d", len(got), len(inputs))
	}

	for i, s := range inputs {
		want, err := g.Generate(font, s)
		if err != nil {
			t.Fatal(err)
		}
		if got[i].Width != want.Width || got[i].Height != want.Height || !bytes.Equal(got[i].Data, want.Data) {
			t.Errorf("GenerateAll[%d] (%q) differs from Generate", i, s)
		}
	}
}

func TestGenerateAllFailsAtomically(t *testing.T) {
	g := NewGenerator(nil, smallConfig())

	got, err := g.GenerateAll(FontSpec{Family: "Go", Size: 10}, []string{"ok", "", "fine"})
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("error = %v, want ErrEmptyInput", err)
	}
	if got != nil {
		t.Error("GenerateAll returned textures alongside an error")
	}
}

func TestGenerateAllEmpty(t *testing.T) {
	got, err := NewGenerator(nil, smallConfig()).GenerateAll(FontSpec{Family: "Go", Size: 10}, nil)
	if err != nil || got != nil {
		t.Errorf("GenerateAll(nil) = %v, %v, want nil, nil", got, err)
	}
}
