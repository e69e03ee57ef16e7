package console

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"warung-backend/internal/report"
)

// DayReportPayload: isi POST /api/dayReport/save, dibangun dari snapshot live.
type DayReportPayload struct {
	TotalPenjualan  float64 `json:"totalPenjualan"`
	TotalProfit     float64 `json:"totalProfit"`
	JumlahPelanggan int     `json:"jumlahPelanggan"`
	MenuFavorit     string  `json:"menuFavorit"`
	JumlahQuantity  int     `json:"jumlahQuantity"`
}

// SaveRejectedError: arsip menolak laporan (validasi). Pesan dari server
// ditampilkan apa adanya ke operator.
type SaveRejectedError struct {
	Message string
}

func (e *SaveRejectedError) Error() string {
	return e.Message
}

// Client: pemanggil endpoint laporan di server warung.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("request tidak bisa dibuat: %v", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request gagal: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d dari %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("response tidak bisa dibaca: %v", err)
	}
	return nil
}

// FetchReport: snapshot laporan live.
func (c *Client) FetchReport(ctx context.Context) (*report.Snapshot, error) {
	var snap report.Snapshot
	if err := c.getJSON(ctx, "/api/report/getallreport", &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// FetchToday: angka ringkas hari ini.
func (c *Client) FetchToday(ctx context.Context) (*report.DailyTotals, error) {
	var totals report.DailyTotals
	if err := c.getJSON(ctx, "/api/report/today", &totals); err != nil {
		return nil, err
	}
	return &totals, nil
}

// FetchYesterday: angka ringkas kemarin; field nil kalau kemarin tidak ditutup.
func (c *Client) FetchYesterday(ctx context.Context) (*report.DailyTotals, error) {
	var totals report.DailyTotals
	if err := c.getJSON(ctx, "/api/dayReport/yesterday", &totals); err != nil {
		return nil, err
	}
	return &totals, nil
}

// FetchDayReports: seluruh arsip laporan harian.
func (c *Client) FetchDayReports(ctx context.Context) ([]report.DayReportEntry, error) {
	var entries []report.DayReportEntry
	if err := c.getJSON(ctx, "/api/dayReport/getdayreport", &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// SaveDayReport: arsipkan laporan hari ini. Penolakan server (non-2xx)
// dikembalikan sebagai *SaveRejectedError dengan pesan server; kegagalan
// transport dikembalikan sebagai error biasa.
func (c *Client) SaveDayReport(ctx context.Context, payload DayReportPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("payload tidak bisa dibentuk: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/dayReport/save", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("request tidak bisa dibuat: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request gagal: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var rejection struct {
		Message string `json:"message"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&rejection)
	if rejection.Message == "" {
		rejection.Message = "Terjadi kesalahan"
	}
	return &SaveRejectedError{Message: rejection.Message}
}

// DeleteOrders: hapus semua order yang sudah diproses.
func (c *Client) DeleteOrders(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/api/report/deleteorder", nil)
	if err != nil {
		return fmt.Errorf("request tidak bisa dibuat: %v", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request gagal: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d saat hapus order", resp.StatusCode)
	}
	return nil
}
