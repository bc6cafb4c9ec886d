package exporter

import (
	"context"
	"log/slog"
	"time"

	unraid "github.com/jamesprial/unraid-api"
)

// Poller periodically refreshes the exported metrics from the Unraid API.
type Poller struct {
	client   *unraid.Client
	metrics  *Metrics
	interval time.Duration
	logger   *slog.Logger
}

// NewPoller wires a client to a metrics set. interval values below one
// second are clamped to 30 seconds.
func NewPoller(client *unraid.Client, metrics *Metrics, interval time.Duration, logger *slog.Logger) *Poller {
	if interval < time.Second {
		interval = 30 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Poller{
		client:   client,
		metrics:  metrics,
		interval: interval,
		logger:   logger,
	}
}

// Run polls until ctx is cancelled. The first poll happens immediately so
// scrapes do not serve empty metrics for a full interval after startup.
func (p *Poller) Run(ctx context.Context) {
	p.poll(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

// poll refreshes every metric group. A failure in one group is logged and
// counted but does not stop the others; Up reports 0 only when the cheap
// metrics query itself fails.
func (p *Poller) poll(ctx context.Context) {
	p.metrics.ScrapesTotal.Inc()

	ctx, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	ok := true
	if err := p.pollMetrics(ctx); err != nil {
		p.logger.Warn("metrics poll failed", "error", err)
		ok = false
	}
	if err := p.pollArray(ctx); err != nil {
		p.logger.Warn("array poll failed", "error", err)
	}
	if err := p.pollShares(ctx); err != nil {
		p.logger.Warn("shares poll failed", "error", err)
	}
	if err := p.pollWorkloads(ctx); err != nil {
		p.logger.Warn("workload poll failed", "error", err)
	}
	if err := p.pollUPS(ctx); err != nil {
		p.logger.Warn("UPS poll failed", "error", err)
	}
	if err := p.pollNotifications(ctx); err != nil {
		p.logger.Warn("notification poll failed", "error", err)
	}

	if ok {
		p.metrics.Up.Set(1)
	} else {
		p.metrics.Up.Set(0)
		p.metrics.ScrapeErrors.Inc()
	}
}

func (p *Poller) pollMetrics(ctx context.Context) error {
	m, err := p.client.GetMetrics(ctx)
	if err != nil {
		return err
	}
	p.metrics.CPUPercent.Set(m.CPU.PercentTotal)
	p.metrics.MemoryPercent.Set(m.Memory.PercentTotal)
	p.metrics.MemoryUsed.Set(float64(m.Memory.Used))
	p.metrics.MemoryTotal.Set(float64(m.Memory.Total))
	return nil
}

func (p *Poller) pollArray(ctx context.Context) error {
	array, err := p.client.GetArrayStatus(ctx)
	if err != nil {
		return err
	}

	p.metrics.ArrayStarted.Set(boolGauge(array.State == unraid.ArrayStateStarted))
	p.metrics.ArrayUsedBytes.Set(float64(array.Capacity.Kilobytes.Used) * 1024)
	p.metrics.ArrayTotalBytes.Set(float64(array.Capacity.Kilobytes.Total) * 1024)
	p.metrics.ArrayUsagePercent.Set(array.Capacity.UsagePercent())

	p.metrics.ParityRunning.Set(boolGauge(array.ParityCheckStatus.Running))
	p.metrics.ParityProgress.Set(float64(array.ParityCheckStatus.Progress))
	p.metrics.ParityErrors.Set(float64(array.ParityCheckStatus.Errors))

	// Stale series for removed disks would linger; reset before refill.
	p.metrics.DiskTemperature.Reset()
	p.metrics.DiskSpinning.Reset()
	for _, group := range []struct {
		kind  string
		disks []unraid.ArrayDisk
	}{
		{"parity", array.Parities},
		{"data", array.Disks},
		{"cache", array.Caches},
	} {
		for _, d := range group.disks {
			p.metrics.DiskSpinning.WithLabelValues(d.Name, group.kind).Set(boolGauge(d.IsSpinning))
			if d.Temp != nil {
				p.metrics.DiskTemperature.WithLabelValues(d.Name, group.kind).Set(float64(*d.Temp))
			}
		}
	}
	return nil
}

func (p *Poller) pollShares(ctx context.Context) error {
	shares, err := p.client.GetShares(ctx)
	if err != nil {
		return err
	}
	p.metrics.ShareUsedBytes.Reset()
	p.metrics.ShareFreeBytes.Reset()
	for _, s := range shares {
		p.metrics.ShareUsedBytes.WithLabelValues(s.Name).Set(float64(s.Used) * 1024)
		p.metrics.ShareFreeBytes.WithLabelValues(s.Name).Set(float64(s.Free) * 1024)
	}
	return nil
}

func (p *Poller) pollWorkloads(ctx context.Context) error {
	containers, err := p.client.GetContainers(ctx)
	if err != nil {
		return err
	}
	running := 0
	for _, c := range containers {
		if c.State == unraid.ContainerStateRunning {
			running++
		}
	}
	p.metrics.ContainersRunning.Set(float64(running))
	p.metrics.ContainersTotal.Set(float64(len(containers)))

	vms, err := p.client.GetVMs(ctx)
	if err != nil {
		return err
	}
	running = 0
	for _, vm := range vms {
		if vm.State == unraid.VMStateRunning {
			running++
		}
	}
	p.metrics.VMsRunning.Set(float64(running))
	p.metrics.VMsTotal.Set(float64(len(vms)))
	return nil
}

func (p *Poller) pollUPS(ctx context.Context) error {
	devices, err := p.client.GetUPSDevices(ctx)
	if err != nil {
		return err
	}
	p.metrics.UPSCharge.Reset()
	p.metrics.UPSRuntime.Reset()
	p.metrics.UPSLoad.Reset()
	p.metrics.UPSOnline.Reset()
	for _, d := range devices {
		name := d.Name
		if name == "" {
			name = d.ID
		}
		p.metrics.UPSCharge.WithLabelValues(name).Set(float64(d.Battery.ChargeLevel))
		p.metrics.UPSRuntime.WithLabelValues(name).Set(float64(d.Battery.EstimatedRuntime))
		p.metrics.UPSLoad.WithLabelValues(name).Set(d.Power.LoadPercentage)
		p.metrics.UPSOnline.WithLabelValues(name).Set(boolGauge(d.Status == unraid.UPSStatusOnline))
	}
	return nil
}

func (p *Poller) pollNotifications(ctx context.Context) error {
	overview, err := p.client.GetNotificationOverview(ctx)
	if err != nil {
		return err
	}
	p.metrics.NotificationsUnread.Set(float64(overview.Unread.Total))
	p.metrics.NotificationsAlert.Set(float64(overview.Unread.Alert))
	return nil
}

func boolGauge(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
