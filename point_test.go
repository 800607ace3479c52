package pathedit

import "testing"

func TestPoint_Arithmetic(t *testing.T) {
	p, q := Pt(1, 2), Pt(4, 6)

	if got := p.Add(q); got != Pt(5, 8) {
		t.Errorf("Add = %v, want (5, 8)", got)
	}
	if got := q.Sub(p); got != Pt(3, 4) {
		t.Errorf("Sub = %v, want (3, 4)", got)
	}
	if got := p.Mul(3); got != Pt(3, 6) {
		t.Errorf("Mul = %v, want (3, 6)", got)
	}
	if got := p.Distance(q); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
}

func TestPoint_Mirror(t *testing.T) {
	tests := []struct {
		name     string
		p, about Point
		want     Point
	}{
		{"through origin", Pt(3, 4), Pt(0, 0), Pt(-3, -4)},
		{"about anchor", Pt(15, 12), Pt(10, 10), Pt(5, 8)},
		{"onto itself", Pt(7, 7), Pt(7, 7), Pt(7, 7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.p.Mirror(tt.about)
			if got != tt.want {
				t.Errorf("%v.Mirror(%v) = %v, want %v", tt.p, tt.about, got, tt.want)
			}
			if back := got.Mirror(tt.about); back != tt.p {
				t.Errorf("mirroring twice = %v, want %v", back, tt.p)
			}
		})
	}
}

func TestPoint_Round(t *testing.T) {
	tests := []struct {
		in, want Point
	}{
		{Pt(0, 0), Pt(0, 0)},
		{Pt(1.4, 1.6), Pt(1, 2)},
		{Pt(2.5, -2.5), Pt(3, -3)},
		{Pt(-0.4, 99.5), Pt(0, 100)},
		{Pt(1e9+0.3, -7.49), Pt(1e9, -7)},
	}

	for _, tt := range tests {
		got := tt.in.Round()
		if got != tt.want {
			t.Errorf("%v.Round() = %v, want %v", tt.in, got, tt.want)
		}
		if !got.IsIntegral() {
			t.Errorf("%v.Round() = %v is not integral", tt.in, got)
		}
		if again := got.Round(); again != got {
			t.Errorf("Round is not idempotent: %v -> %v", got, again)
		}
	}
}

func TestPoint_IsIntegral(t *testing.T) {
	if !Pt(3, -4).IsIntegral() {
		t.Error("(3, -4) should be integral")
	}
	if Pt(3, 0.5).IsIntegral() {
		t.Error("(3, 0.5) should not be integral")
	}
}
