package core

import "testing"

func TestVecAdd(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec
		expected Vec
	}{
		{"zero plus zero", Vec{0, 0}, Vec{0, 0}, Vec{0, 0}},
		{"point plus direction", Vec{10, 10}, DirRight, Vec{11, 10}},
		{"point plus up", Vec{10, 10}, DirUp, Vec{10, 9}},
		{"negative components", Vec{-3, 4}, Vec{5, -6}, Vec{2, -2}},
		{"add none is identity", Vec{7, 3}, DirNone, Vec{7, 3}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Add(tc.b)
			if result != tc.expected {
				t.Errorf("Add() = %v, expected %v", result, tc.expected)
			}
		})
	}
}

func TestVecNeg(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec
		expected Vec
	}{
		{"zero", Vec{0, 0}, Vec{0, 0}},
		{"up becomes down", DirUp, DirDown},
		{"left becomes right", DirLeft, DirRight},
		{"arbitrary", Vec{3, -7}, Vec{-3, 7}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.v.Neg()
			if result != tc.expected {
				t.Errorf("Neg() = %v, expected %v", result, tc.expected)
			}
		})
	}
}

func TestDirectionsAreUnit(t *testing.T) {
	dirs := []Vec{DirUp, DirDown, DirLeft, DirRight}
	for _, d := range dirs {
		if d.X*d.X+d.Y*d.Y != 1 {
			t.Errorf("Direction %v is not a unit vector", d)
		}
	}
}
