package analytics

import "testing"

func TestRollingMeanShortInput(t *testing.T) {
	got := RollingMean([]float64{4, 6, 8}, 7)
	want := []float64{4, 5, 6}

	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRollingMeanSlidesWindow(t *testing.T) {
	values := []float64{1, 1, 1, 10}
	got := RollingMean(values, 2)
	want := []float64{1, 1, 1, 5.5}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRollingMeanEmpty(t *testing.T) {
	if got := RollingMean(nil, 7); got != nil {
		t.Fatalf("RollingMean(nil) = %v, want nil", got)
	}
	if got := RollingMean([]float64{1}, 0); got != nil {
		t.Fatalf("window 0: got %v, want nil", got)
	}
}
