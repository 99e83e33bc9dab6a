package highlight

import "testing"

func TestCombinedDataIndexing(t *testing.T) {
	a := NewDataSet("a", []Entry{{X: 1}})
	b := NewDataSet("b", []Entry{{X: -2}})
	c := NewDataSet("c", []Entry{{X: 8}})

	data := NewCombinedData(Group{Kind: KindBar, Sets: []Series{a, b}})
	if gi := data.AddGroup(KindLine, c); gi != 1 {
		t.Fatalf("AddGroup index = %d, want 1", gi)
	}

	if n := data.SeriesCount(); n != 3 {
		t.Fatalf("SeriesCount = %d, want 3", n)
	}
	tests := []struct {
		index int
		label string
		group int
	}{
		{0, "a", 0},
		{1, "b", 0},
		{2, "c", 1},
	}
	for _, tt := range tests {
		s, g, ok := data.SeriesAt(tt.index)
		if !ok || s.Label() != tt.label || g != tt.group {
			t.Errorf("SeriesAt(%d) = (%v, %d, %v), want (%s, %d)", tt.index, s, g, ok, tt.label, tt.group)
		}
	}
	if _, _, ok := data.SeriesAt(3); ok {
		t.Error("SeriesAt(3) should be out of range")
	}
	if _, _, ok := data.SeriesAt(-1); ok {
		t.Error("SeriesAt(-1) should be out of range")
	}

	if lo, hi, ok := data.XBounds(); !ok || lo != -2 || hi != 8 {
		t.Errorf("XBounds = (%v, %v, %v), want (-2, 8, true)", lo, hi, ok)
	}
}

func TestCombinedDataKindAt(t *testing.T) {
	data := NewCombinedData(
		Group{Kind: KindLine},
		Group{Kind: KindBar},
	)
	tests := []struct {
		index int
		want  SeriesKind
		ok    bool
	}{
		{0, KindLine, true},
		{1, KindBar, true},
		{2, KindOther, false},
		{-1, KindOther, false},
	}
	for _, tt := range tests {
		got, ok := data.KindAt(tt.index)
		if got != tt.want || ok != tt.ok {
			t.Errorf("KindAt(%d) = (%v, %v), want (%v, %v)", tt.index, got, ok, tt.want, tt.ok)
		}
	}

	var nilData *CombinedData
	if k, ok := nilData.KindAt(0); ok || k != KindOther {
		t.Error("nil CombinedData should classify everything as other")
	}
	if nilData.SeriesCount() != 0 {
		t.Error("nil CombinedData should have no series")
	}
}

func TestKindAndAxisStrings(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{KindLine.String(), "line"},
		{KindBar.String(), "bar"},
		{KindOther.String(), "other"},
		{AxisLeft.String(), "left"},
		{AxisRight.String(), "right"},
		{AxisDependency(9).String(), "unknown"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("String() = %q, want %q", tt.got, tt.want)
		}
	}
}
