package console

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"warung-backend/internal/report"
)

// serverPalsu: tiruan server laporan yang tiap endpoint-nya bisa disuruh
// gagal lewat flag atomics.
type serverPalsu struct {
	reportGagal    atomic.Bool
	todayGagal     atomic.Bool
	yesterdayGagal atomic.Bool
	archiveGagal   atomic.Bool

	reportCalls atomic.Int64

	srv *httptest.Server
}

func newServerPalsu(t *testing.T) *serverPalsu {
	t.Helper()
	fake := &serverPalsu{}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/report/getallreport", func(w http.ResponseWriter, r *http.Request) {
		fake.reportCalls.Add(1)
		if fake.reportGagal.Load() {
			http.Error(w, "kacau", http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(report.Snapshot{
			TotalPenjualan: 1000,
			TotalProfit:    300,
			TotalCustomer:  4,
			MenuFavorit:    "Nasi Goreng",
		})
	})
	mux.HandleFunc("/api/report/today", func(w http.ResponseWriter, r *http.Request) {
		if fake.todayGagal.Load() {
			http.Error(w, "kacau", http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`{"totalPenjualan":100,"totalProfit":30,"jumlahPelanggan":2}`))
	})
	mux.HandleFunc("/api/dayReport/yesterday", func(w http.ResponseWriter, r *http.Request) {
		if fake.yesterdayGagal.Load() {
			http.Error(w, "kacau", http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`{"totalPenjualan":80,"totalProfit":20,"jumlahPelanggan":5}`))
	})
	mux.HandleFunc("/api/dayReport/getdayreport", func(w http.ResponseWriter, r *http.Request) {
		if fake.archiveGagal.Load() {
			http.Error(w, "kacau", http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode([]report.DayReportEntry{{ID: 1, TotalPenjualan: 80}})
	})

	fake.srv = httptest.NewServer(mux)
	t.Cleanup(fake.srv.Close)
	return fake
}

// tunggu: polling kondisi sampai benar atau batas waktu lewat.
func tunggu(t *testing.T, cond func() bool, pesan string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal(pesan)
}

func TestPoller_TickGagalTidakMenghapusKeadaanLama(t *testing.T) {
	fake := newServerPalsu(t)
	state := NewState()
	poller := NewPoller(NewClient(fake.srv.URL), state, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	poller.Start(ctx)

	tunggu(t, func() bool { return state.Snapshot() != nil }, "snapshot tidak pernah terisi")

	// Mulai sekarang endpoint laporan gagal terus
	fake.reportGagal.Store(true)
	callsSaatGagal := fake.reportCalls.Load()

	// Loop harus tetap mencoba walau gagal
	tunggu(t, func() bool { return fake.reportCalls.Load() >= callsSaatGagal+3 },
		"loop berhenti setelah tick gagal")

	snap := state.Snapshot()
	if snap == nil {
		t.Fatal("keadaan lama hilang setelah tick gagal")
	}
	if snap.TotalPenjualan != 1000 {
		t.Errorf("keadaan lama berubah: %v", snap.TotalPenjualan)
	}
}

func TestPoller_PasanganPerbandinganAtomik(t *testing.T) {
	fake := newServerPalsu(t)
	fake.yesterdayGagal.Store(true)

	state := NewState()
	poller := NewPoller(NewClient(fake.srv.URL), state, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	poller.Start(ctx)

	// Snapshot dan arsip boleh terisi; pasangan perbandingan tidak boleh,
	// karena fetch kemarin gagal walau fetch hari ini sukses
	tunggu(t, func() bool { return state.Snapshot() != nil }, "snapshot tidak pernah terisi")
	time.Sleep(50 * time.Millisecond)

	today, yesterday := state.ComparisonPair()
	if today != nil || yesterday != nil {
		t.Fatal("pasangan perbandingan ter-commit padahal salah satu fetch gagal")
	}

	// Begitu kemarin berhasil, keduanya terisi bersama-sama
	fake.yesterdayGagal.Store(false)
	tunggu(t, func() bool {
		today, yesterday := state.ComparisonPair()
		return today != nil && yesterday != nil
	}, "pasangan perbandingan tidak pernah terisi")
}

func TestPoller_BerhentiSaatContextDibatalkan(t *testing.T) {
	fake := newServerPalsu(t)
	state := NewState()
	poller := NewPoller(NewClient(fake.srv.URL), state, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	poller.Start(ctx)
	tunggu(t, func() bool { return state.Snapshot() != nil }, "snapshot tidak pernah terisi")

	cancel()

	done := make(chan struct{})
	go func() {
		poller.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("loop poller tidak berhenti setelah context dibatalkan")
	}

	// Tidak ada fetch baru setelah berhenti
	calls := fake.reportCalls.Load()
	time.Sleep(50 * time.Millisecond)
	if fake.reportCalls.Load() != calls {
		t.Error("masih ada fetch setelah poller berhenti")
	}
}
