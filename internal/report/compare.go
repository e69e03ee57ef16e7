package report

import (
	"math"
	"strconv"
)

// Delta: selisih dan persentase perubahan satu metrik terhadap kemarin.
// Hanya untuk tampilan, tidak pernah disimpan.
type Delta struct {
	Diff       float64 `json:"diff"`
	Up         bool    `json:"up"`
	Percentage string  `json:"percentage"`
}

// Compare: bandingkan metrik hari ini dengan kemarin. Mengembalikan nil
// kalau salah satu belum tersedia (tampilkan "-", bukan nol).
// Selisih nol dihitung naik. Kemarin nol berarti persentase "100%",
// berapa pun selisihnya; kebijakan pembagian-nol yang disengaja.
func Compare(today, yesterday *float64) *Delta {
	if today == nil || yesterday == nil {
		return nil
	}

	diff := *today - *yesterday
	d := &Delta{
		Diff: diff,
		Up:   diff >= 0,
	}

	if *yesterday == 0 {
		d.Percentage = "100%"
		return d
	}

	pct := math.Abs(diff / *yesterday * 100)
	// Dua desimal, nol di belakang dibuang (25.00 -> "25", 66.67 tetap).
	pct = math.Round(pct*100) / 100
	d.Percentage = strconv.FormatFloat(pct, 'f', -1, 64) + "%"
	return d
}
