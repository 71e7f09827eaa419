package service

import (
	"testing"

	"github.com/iliyamo/railway-segment-reservation/internal/model"
)

func TestPriceFor(t *testing.T) {
	cases := []struct {
		name       string
		class      string
		start, end int
		want       int64
	}{
		{"executive three segments", model.ClassExecutive, 0, 3, 1_500_000},
		{"business one segment", model.ClassBusiness, 2, 3, 300_000},
		{"economy two segments", model.ClassEconomy, 1, 3, 300_000},
		{"unknown class uses economy rate", "SLEEPER", 0, 1, 150_000},
		{"empty class uses economy rate", "", 0, 1, 150_000},
		{"zero segments", model.ClassExecutive, 2, 2, 0},
		{"inverted range", model.ClassExecutive, 3, 1, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := PriceFor(tc.class, tc.start, tc.end); got != tc.want {
				t.Errorf("PriceFor(%q, %d, %d) = %d, want %d", tc.class, tc.start, tc.end, got, tc.want)
			}
		})
	}
}
