package systems

import "testing"

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		ax   float64
		ay   float64
		bx   float64
		by   float64
		want bool
	}{
		{"same centre", 100, 100, 100, 100, true},
		{"partial overlap", 100, 100, 115, 110, true},
		{"edges touching horizontally", 100, 100, 120, 100, false},
		{"edges touching vertically", 100, 100, 100, 120, false},
		{"separated", 0, 0, 200, 200, false},
		{"overlap on x only", 100, 100, 105, 150, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// 两个 20x20 的方框
			got := Overlaps(tt.ax, tt.ay, 20, 20, tt.bx, tt.by, 20, 20)
			if got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
			if sym := Overlaps(tt.bx, tt.by, 20, 20, tt.ax, tt.ay, 20, 20); sym != got {
				t.Errorf("Overlaps is not symmetric")
			}
		})
	}
}
