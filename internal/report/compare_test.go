package report_test

import (
	"testing"

	"warung-backend/internal/report"
)

func fl(v float64) *float64 {
	return &v
}

func TestCompare_BelumTersedia(t *testing.T) {
	cases := []struct {
		name             string
		today, yesterday *float64
	}{
		{"hari ini nil", nil, fl(10)},
		{"kemarin nil", fl(10), nil},
		{"dua-duanya nil", nil, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if d := report.Compare(tc.today, tc.yesterday); d != nil {
				t.Errorf("expected nil (belum tersedia), got %+v", d)
			}
		})
	}
}

func TestCompare_ArahDanSelisih(t *testing.T) {
	cases := []struct {
		name             string
		today, yesterday float64
		wantDiff         float64
		wantUp           bool
	}{
		{"naik", 10, 5, 5, true},
		{"turun", 5, 10, -5, false},
		{"selisih nol dihitung naik", 5, 5, 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := report.Compare(fl(tc.today), fl(tc.yesterday))
			if d == nil {
				t.Fatal("expected Delta, got nil")
			}
			if d.Diff != tc.wantDiff {
				t.Errorf("diff: want %v, got %v", tc.wantDiff, d.Diff)
			}
			if d.Up != tc.wantUp {
				t.Errorf("up: want %v, got %v", tc.wantUp, d.Up)
			}
		})
	}
}

func TestCompare_KemarinNolSelalu100Persen(t *testing.T) {
	for _, today := range []float64{0, 1, 250, -3} {
		d := report.Compare(fl(today), fl(0))
		if d == nil {
			t.Fatal("expected Delta, got nil")
		}
		if d.Percentage != "100%" {
			t.Errorf("hari ini %v vs kemarin 0: want 100%%, got %s", today, d.Percentage)
		}
	}
}

func TestCompare_Persentase(t *testing.T) {
	cases := []struct {
		name             string
		today, yesterday float64
		want             string
	}{
		{"dua kali lipat", 10, 5, "100%"},
		{"setengah", 5, 10, "50%"},
		{"tanpa perubahan", 5, 5, "0%"},
		{"tanpa nol di belakang", 5, 4, "25%"},
		{"dua desimal", 5, 3, "66.67%"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := report.Compare(fl(tc.today), fl(tc.yesterday))
			if d == nil {
				t.Fatal("expected Delta, got nil")
			}
			if d.Percentage != tc.want {
				t.Errorf("persentase: want %s, got %s", tc.want, d.Percentage)
			}
		})
	}
}
