package core

import "testing"

func TestFormatValuePrecisionFollowsStep(t *testing.T) {
	cases := []struct {
		step float64
		want string
	}{
		{0.5, "0.1"},
		{0.05, "0.12"},
		{0.005, "0.123"},
		{0.0005, "0.1235"},
		{0, "0.12"},
	}
	for _, tc := range cases {
		if got := (Parameter{Value: 0.12345}).FormatValue(tc.step); got != tc.want {
			t.Fatalf("FormatValue(%v) = %q, want %q", tc.step, got, tc.want)
		}
	}
}

func TestClampHonoursFlags(t *testing.T) {
	c := ParameterControl{Min: 1, Max: 20, HasMin: true}
	if got := c.Clamp(0.5); got != 1 {
		t.Fatalf("Clamp(0.5) = %v, want 1", got)
	}
	if got := c.Clamp(50); got != 50 {
		t.Fatalf("Clamp(50) = %v, max not enforced without HasMax", got)
	}
	c.HasMax = true
	if got := c.Clamp(50); got != 20 {
		t.Fatalf("Clamp(50) = %v, want 20", got)
	}
}
