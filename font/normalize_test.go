package font

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name      string
		size      float64
		tolerance float64
		want      float64
	}{
		{"exact value unchanged", 24.0, 0.5, 24.0},
		{"rounds down within tolerance", 24.2, 0.5, 24.0},
		{"rounds up within tolerance", 24.3, 0.5, 24.5},
		{"half point bucket", 11.7, 0.5, 11.5},
		{"integer rounding at tolerance 1", 12.4, 1.0, 12.0},
		{"integer rounding up", 12.6, 1.0, 13.0},
		{"tolerance above 1 still rounds to integer", 12.4, 1.5, 12.0},
		{"small tolerance", 10.0, 0.3, 9.9},
		{"quarter point bucket", 10.1, 0.25, 10.0},
		{"zero size", 0.0, 0.5, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.size, tt.tolerance)
			if got != tt.want {
				t.Errorf("Normalize(%v, %v) = %v, want %v", tt.size, tt.tolerance, got, tt.want)
			}
		})
	}
}

func TestNormalize_IdempotentForIntegerRounding(t *testing.T) {
	sizes := []float64{9.2, 9.5, 11.0, 12.49, 23.9, 72.3}
	for _, size := range sizes {
		once := Normalize(size, 1.0)
		twice := Normalize(once, 1.0)
		if once != twice {
			t.Errorf("Normalize not idempotent for %v: first %v, second %v", size, once, twice)
		}
	}
}

func TestStats_ObserveAndCount(t *testing.T) {
	stats := NewStats(0.5)

	stats.Observe(24.0)
	stats.Observe(24.2)
	stats.Observe(24.1)
	stats.Observe(12.0)

	if got := stats.Count(24.0); got != 3 {
		t.Errorf("Count(24.0) = %d, want 3", got)
	}
	if got := stats.Count(12.0); got != 1 {
		t.Errorf("Count(12.0) = %d, want 1", got)
	}
	if got := stats.Count(99.0); got != 0 {
		t.Errorf("Count(99.0) = %d, want 0", got)
	}
}

func TestStats_Canonical(t *testing.T) {
	stats := NewStats(0.5)
	stats.Observe(24.2)

	canonical, ok := stats.Canonical(24.2)
	if !ok {
		t.Fatal("expected raw size 24.2 to be recorded")
	}
	if canonical != 24.0 {
		t.Errorf("Canonical(24.2) = %v, want 24.0", canonical)
	}

	if _, ok := stats.Canonical(13.0); ok {
		t.Error("expected unobserved raw size to be absent")
	}
}

func TestStats_SizesDescending(t *testing.T) {
	stats := NewStats(0.5)
	for _, size := range []float64{12.0, 24.0, 9.5, 18.0} {
		stats.Observe(size)
	}

	sizes := stats.Sizes()
	want := []float64{24.0, 18.0, 12.0, 9.5}
	if len(sizes) != len(want) {
		t.Fatalf("Sizes() returned %d sizes, want %d", len(sizes), len(want))
	}
	for i := range want {
		if sizes[i] != want[i] {
			t.Errorf("Sizes()[%d] = %v, want %v", i, sizes[i], want[i])
		}
	}
}
