package console

import (
	"context"
	"log"
	"sync"
	"time"
)

// Poller: tiga loop refresh independen — snapshot live, pasangan perbandingan
// hari-ini/kemarin, dan arsip laporan harian. Tick yang gagal hanya dicatat;
// keadaan lama dibiarkan dan loop jalan terus tanpa backoff.
type Poller struct {
	client   *Client
	state    *State
	interval time.Duration
	wg       sync.WaitGroup
}

func NewPoller(client *Client, state *State, interval time.Duration) *Poller {
	return &Poller{
		client:   client,
		state:    state,
		interval: interval,
	}
}

// Start: jalankan ketiga loop sampai ctx dibatalkan.
func (p *Poller) Start(ctx context.Context) {
	p.run(ctx, "laporan live", p.refreshReport)
	p.run(ctx, "perbandingan", p.refreshComparison)
	p.run(ctx, "arsip laporan", p.refreshArchive)
}

// Wait: blok sampai semua loop benar-benar berhenti.
func (p *Poller) Wait() {
	p.wg.Wait()
}

func (p *Poller) run(ctx context.Context, name string, refresh func(context.Context) error) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()

		// Fetch pertama langsung, tidak menunggu tick pertama
		if err := refresh(ctx); err != nil && ctx.Err() == nil {
			log.Printf("Gagal fetch %s: %v", name, err)
		}

		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := refresh(ctx); err != nil && ctx.Err() == nil {
					log.Printf("Gagal fetch %s: %v", name, err)
				}
			}
		}
	}()
}

func (p *Poller) refreshReport(ctx context.Context) error {
	snap, err := p.client.FetchReport(ctx)
	if err != nil {
		return err
	}
	p.state.setSnapshot(snap)
	return nil
}

// refreshComparison: hari ini dan kemarin diperlakukan sebagai satu fetch
// logis. Kalau salah satu gagal, tick ini tidak meng-commit apa pun.
func (p *Poller) refreshComparison(ctx context.Context) error {
	today, err := p.client.FetchToday(ctx)
	if err != nil {
		return err
	}
	yesterday, err := p.client.FetchYesterday(ctx)
	if err != nil {
		return err
	}
	p.state.setComparison(today, yesterday)
	return nil
}

func (p *Poller) refreshArchive(ctx context.Context) error {
	entries, err := p.client.FetchDayReports(ctx)
	if err != nil {
		return err
	}
	p.state.setArchive(entries)
	return nil
}
