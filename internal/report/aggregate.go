package report

import "sort"

// GroupedSale: satu baris rekap "menu yang terjual", gabungan semua item
// dengan kombinasi (judul, tipe, jenis) yang sama.
type GroupedSale struct {
	Judul    string `json:"judul"`
	Tipe     string `json:"tipe"`
	Jenis    string `json:"jenis"`
	Quantity int    `json:"quantity"`
}

type saleKey struct {
	judul, tipe, jenis string
}

// GroupSales: rekap quantity per (judul, tipe, jenis) dari seluruh item
// di seluruh transaksi, urut quantity menurun. Field kosong dinormalkan
// jadi "-" supaya item tak dikenal tetap muncul di laporan, bukan hilang.
// Quantity sama mempertahankan urutan kemunculan pertama key-nya.
func GroupSales(transaksi []Transaksi) []GroupedSale {
	totals := make(map[saleKey]int)
	seen := make([]saleKey, 0)

	for _, trx := range transaksi {
		for _, item := range trx.Items {
			k := saleKey{
				judul: orDash(item.Judul),
				tipe:  orDash(item.Tipe),
				jenis: orDash(item.Jenis),
			}
			if _, ok := totals[k]; !ok {
				seen = append(seen, k)
			}
			totals[k] += item.Quantity
		}
	}

	grouped := make([]GroupedSale, 0, len(seen))
	for _, k := range seen {
		grouped = append(grouped, GroupedSale{
			Judul:    k.judul,
			Tipe:     k.tipe,
			Jenis:    k.jenis,
			Quantity: totals[k],
		})
	}

	sort.SliceStable(grouped, func(i, j int) bool {
		return grouped[i].Quantity > grouped[j].Quantity
	})

	return grouped
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
