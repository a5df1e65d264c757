package dsp

import (
	"math"
	"testing"
)

func TestClearAndCopy(t *testing.T) {
	src := []float32{1, 2, 3}
	dst := make([]float32, 2)

	Copy(dst, src)
	if dst[0] != 1 || dst[1] != 2 {
		t.Errorf("Copy = %v", dst)
	}

	Clear(src)
	for i, s := range src {
		if s != 0 {
			t.Errorf("sample %d = %f after Clear", i, s)
		}
	}
}

func TestScale(t *testing.T) {
	buf := []float32{1, -0.5}
	Scale(buf, 2)
	if buf[0] != 2 || buf[1] != -1 {
		t.Errorf("Scale = %v", buf)
	}
}

func TestMultiply(t *testing.T) {
	tests := []struct {
		name  string
		buf   []float32
		gains []float32
		want  []float32
	}{
		{"Empty", nil, []float32{1}, nil},
		{"NoGains", []float32{1, 2}, nil, []float32{1, 2}},
		{"Matched", []float32{1, 1, 2}, []float32{0, 0.5, 1}, []float32{0, 0.5, 2}},
		{"ShortGains", []float32{1, 1, 1, 1}, []float32{0.5, 0.25}, []float32{0.5, 0.25, 0.25, 0.25}},
		{"LongGains", []float32{1}, []float32{3, 4}, []float32{3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Multiply(tt.buf, tt.gains)
			for i := range tt.want {
				if math.Abs(float64(tt.buf[i]-tt.want[i])) > 1e-6 {
					t.Errorf("sample %d = %f, want %f", i, tt.buf[i], tt.want[i])
				}
			}
		})
	}
}

func TestDecibels(t *testing.T) {
	tests := []struct {
		name string
		db   float64
		gain float64
	}{
		{"Unity", 0, 1},
		{"Minus6", -6.0206, 0.5},
		{"Plus20", 20, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DBToGain(tt.db); math.Abs(got-tt.gain) > 1e-3 {
				t.Errorf("DBToGain(%f) = %f, want %f", tt.db, got, tt.gain)
			}
			if got := GainToDB(tt.gain); math.Abs(got-tt.db) > 1e-3 {
				t.Errorf("GainToDB(%f) = %f, want %f", tt.gain, got, tt.db)
			}
		})
	}

	if DBToGain(MinDB) != 0 {
		t.Error("MinDB should map to silence")
	}
	if GainToDB(0) != MinDB {
		t.Error("Zero gain should map to MinDB")
	}
}

func TestPeak(t *testing.T) {
	if got := Peak([]float32{0.2, -0.8, 0.5}); got != 0.8 {
		t.Errorf("Peak = %f, want 0.8", got)
	}
	if got := Peak(nil); got != 0 {
		t.Errorf("Peak(nil) = %f", got)
	}
}
