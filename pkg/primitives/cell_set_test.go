package primitives

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCellSet_AddAndContains(t *testing.T) {
	s := NewCellSet(10, 10)

	p := Position{Row: 3, Col: 7}
	if s.Contains(p) {
		t.Errorf("empty set contains %s", p)
	}
	if err := s.Add(p); err != nil {
		t.Fatalf("Add(%s): %v", p, err)
	}
	if !s.Contains(p) {
		t.Errorf("set is missing %s after Add", p)
	}
	if s.Count() != 1 {
		t.Errorf("Count() = %d, want 1", s.Count())
	}

	// Adding twice does not inflate the count.
	if err := s.Add(p); err != nil {
		t.Fatalf("Add(%s): %v", p, err)
	}
	if s.Count() != 1 {
		t.Errorf("Count() = %d after duplicate Add, want 1", s.Count())
	}
}

func TestCellSet_AddOutOfRange(t *testing.T) {
	s := NewCellSet(4, 4)
	for _, p := range []Position{{Row: -1, Col: 0}, {Row: 0, Col: 4}, {Row: 4, Col: 0}} {
		if err := s.Add(p); err == nil {
			t.Errorf("Add(%s) succeeded, want error", p)
		}
	}
	if s.Count() != 0 {
		t.Errorf("Count() = %d after rejected adds, want 0", s.Count())
	}
}

func TestCellSet_All(t *testing.T) {
	s := NewCellSet(3, 3)
	added := []Position{{Row: 2, Col: 2}, {Row: 0, Col: 1}, {Row: 1, Col: 0}}
	for _, p := range added {
		if err := s.Add(p); err != nil {
			t.Fatalf("Add(%s): %v", p, err)
		}
	}

	got := slices.Collect(s.All())
	want := []Position{{Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 2, Col: 2}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("All() (-want +got):\n%s", diff)
	}
}

func TestCellSet_Clear(t *testing.T) {
	s := NewCellSet(2, 2)
	s.Add(Position{Row: 0, Col: 0})
	s.Add(Position{Row: 1, Col: 1})
	s.Clear()
	if s.Count() != 0 {
		t.Errorf("Count() = %d after Clear, want 0", s.Count())
	}
	if s.Contains(Position{Row: 0, Col: 0}) {
		t.Error("cleared set still contains (0, 0)")
	}
}

func TestCellSet_String(t *testing.T) {
	s := NewCellSet(2, 3)
	if got, want := s.String(), "cells [] (0/6)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	for c := 0; c < 3; c++ {
		s.Add(Position{Row: 0, Col: c})
	}
	s.Add(Position{Row: 1, Col: 0})
	if got, want := s.String(), "cells [(0, 0), (0, 1), (0, 2), ...] (4/6)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
