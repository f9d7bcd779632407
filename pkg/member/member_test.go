package member

import (
	"testing"

	"github.com/brunopostle/sdnf-export/pkg/scene"
)

func TestConnectPoint(t *testing.T) {
	tests := []struct {
		offset float64
		want   int
	}{
		{1.0, -1},
		{-1.0, 1},
		{0.0, 0},
		{0.5, 0},
		{-0.5, 0},
		{0.995, -1},
		{-0.995, 1},
	}
	for _, tt := range tests {
		if got := ConnectPoint(tt.offset); got != tt.want {
			t.Errorf("ConnectPoint(%v) = %d, want %d", tt.offset, got, tt.want)
		}
	}
}

func TestClassifyDefaults(t *testing.T) {
	got := Classify(&scene.Object{Name: "bare"})

	if got.Thickness != DefaultThickness {
		t.Errorf("Thickness = %v, want %v", got.Thickness, DefaultThickness)
	}
	if got.Offset != 0 {
		t.Errorf("Offset = %v, want 0", got.Offset)
	}
	if got.ConnectPoint != 0 {
		t.Errorf("ConnectPoint = %d, want 0", got.ConnectPoint)
	}
	if got.Section != DefaultSection {
		t.Errorf("Section = %q, want %q", got.Section, DefaultSection)
	}
	if got.Grade != DefaultGrade {
		t.Errorf("Grade = %q, want %q", got.Grade, DefaultGrade)
	}
}

func TestClassifyFirstModifierWins(t *testing.T) {
	obj := &scene.Object{
		Name: "plate",
		Modifiers: []scene.Modifier{
			scene.Solidify{Thick: 0.012, Off: -1.0},
			scene.Solidify{Thick: 0.05, Off: 1.0},
		},
	}

	got := Classify(obj)
	if got.Thickness != 0.012 {
		t.Errorf("Thickness = %v, want 0.012", got.Thickness)
	}
	if got.ConnectPoint != 1 {
		t.Errorf("ConnectPoint = %d, want 1", got.ConnectPoint)
	}
}
