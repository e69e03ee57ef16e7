package report_test

import (
	"testing"

	"warung-backend/internal/report"
)

func contohTransaksi() []report.Transaksi {
	return []report.Transaksi{
		{
			OrderID:  "ord-1",
			Username: "Budi",
			Meja:     "3",
			Items: []report.Item{
				{Judul: "Nasi Goreng", Tipe: "makanan", Jenis: "nasi", Quantity: 7},
				{Judul: "Es Teh", Tipe: "minuman", Jenis: "es", Quantity: 8},
			},
		},
		{
			OrderID:  "ord-2",
			Username: "Sari",
			Meja:     "5",
			Items: []report.Item{
				{Judul: "Nasi Goreng", Tipe: "makanan", Jenis: "nasi", Quantity: 5},
			},
		},
	}
}

func TestGroupSales_MenggabungkanDanMengurutkan(t *testing.T) {
	grouped := report.GroupSales(contohTransaksi())

	if len(grouped) != 2 {
		t.Fatalf("expected 2 baris, got %d", len(grouped))
	}
	if grouped[0].Judul != "Nasi Goreng" || grouped[0].Quantity != 12 {
		t.Errorf("baris pertama harus Nasi Goreng x12, got %s x%d", grouped[0].Judul, grouped[0].Quantity)
	}
	if grouped[1].Judul != "Es Teh" || grouped[1].Quantity != 8 {
		t.Errorf("baris kedua harus Es Teh x8, got %s x%d", grouped[1].Judul, grouped[1].Quantity)
	}
}

func TestGroupSales_TotalQuantityTerjaga(t *testing.T) {
	transaksi := contohTransaksi()

	var input int
	for _, trx := range transaksi {
		for _, it := range trx.Items {
			input += it.Quantity
		}
	}

	var output int
	for _, g := range report.GroupSales(transaksi) {
		output += g.Quantity
	}

	if input != output {
		t.Errorf("total quantity berubah: input %d, output %d", input, output)
	}
}

func TestGroupSales_UrutanStabilUntukQuantitySama(t *testing.T) {
	transaksi := []report.Transaksi{
		{Items: []report.Item{
			{Judul: "Soto", Tipe: "makanan", Jenis: "kuah", Quantity: 3},
			{Judul: "Bakso", Tipe: "makanan", Jenis: "kuah", Quantity: 3},
			{Judul: "Sate", Tipe: "makanan", Jenis: "bakar", Quantity: 3},
		}},
	}

	grouped := report.GroupSales(transaksi)
	want := []string{"Soto", "Bakso", "Sate"}
	for i, judul := range want {
		if grouped[i].Judul != judul {
			t.Errorf("urutan berubah di posisi %d: want %s, got %s", i, judul, grouped[i].Judul)
		}
	}
}

func TestGroupSales_SelaluMenurun(t *testing.T) {
	transaksi := []report.Transaksi{
		{Items: []report.Item{
			{Judul: "A", Quantity: 1},
			{Judul: "B", Quantity: 9},
			{Judul: "C", Quantity: 4},
			{Judul: "A", Quantity: 2},
		}},
	}

	grouped := report.GroupSales(transaksi)
	for i := 1; i < len(grouped); i++ {
		if grouped[i].Quantity > grouped[i-1].Quantity {
			t.Fatalf("tidak menurun di posisi %d: %d setelah %d", i, grouped[i].Quantity, grouped[i-1].Quantity)
		}
	}
}

func TestGroupSales_FieldKosongJadiStrip(t *testing.T) {
	transaksi := []report.Transaksi{
		{Items: []report.Item{
			{Judul: "", Tipe: "", Jenis: "", Quantity: 2},
		}},
	}

	grouped := report.GroupSales(transaksi)
	if len(grouped) != 1 {
		t.Fatalf("item tanpa nama tetap harus muncul, got %d baris", len(grouped))
	}
	g := grouped[0]
	if g.Judul != "-" || g.Tipe != "-" || g.Jenis != "-" {
		t.Errorf("field kosong harus jadi '-', got (%q, %q, %q)", g.Judul, g.Tipe, g.Jenis)
	}
}

func TestGroupSales_InputKosong(t *testing.T) {
	if got := report.GroupSales(nil); len(got) != 0 {
		t.Errorf("input kosong harus menghasilkan rekap kosong, got %d baris", len(got))
	}
}
