// Package exporter polls an Unraid server and publishes its state as
// Prometheus metrics.
package exporter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the exporter.
type Metrics struct {
	Up           prometheus.Gauge
	ScrapesTotal prometheus.Counter
	ScrapeErrors prometheus.Counter

	CPUPercent    prometheus.Gauge
	MemoryPercent prometheus.Gauge
	MemoryUsed    prometheus.Gauge
	MemoryTotal   prometheus.Gauge

	ArrayStarted      prometheus.Gauge
	ArrayUsedBytes    prometheus.Gauge
	ArrayTotalBytes   prometheus.Gauge
	ArrayUsagePercent prometheus.Gauge
	ParityRunning     prometheus.Gauge
	ParityProgress    prometheus.Gauge
	ParityErrors      prometheus.Gauge
	DiskTemperature   *prometheus.GaugeVec
	DiskSpinning      *prometheus.GaugeVec

	ShareUsedBytes *prometheus.GaugeVec
	ShareFreeBytes *prometheus.GaugeVec

	ContainersRunning prometheus.Gauge
	ContainersTotal   prometheus.Gauge
	VMsRunning        prometheus.Gauge
	VMsTotal          prometheus.Gauge

	UPSCharge  *prometheus.GaugeVec
	UPSRuntime *prometheus.GaugeVec
	UPSLoad    *prometheus.GaugeVec
	UPSOnline  *prometheus.GaugeVec

	NotificationsUnread prometheus.Gauge
	NotificationsAlert  prometheus.Gauge
}

// NewMetrics creates and registers all Prometheus metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		Up: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: "unraid",
			Name:      "up",
			Help:      "Whether the last poll of the Unraid API succeeded (1=yes, 0=no)",
		}),
		ScrapesTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "unraid",
			Name:      "scrapes_total",
			Help:      "Total number of polls against the Unraid API",
		}),
		ScrapeErrors: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "unraid",
			Name:      "scrape_errors_total",
			Help:      "Total number of failed polls",
		}),
		CPUPercent: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: "unraid",
			Name:      "cpu_percent",
			Help:      "Total CPU utilization percentage",
		}),
		MemoryPercent: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: "unraid",
			Name:      "memory_percent",
			Help:      "Memory utilization percentage",
		}),
		MemoryUsed: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: "unraid",
			Name:      "memory_used_bytes",
			Help:      "Memory in use, bytes",
		}),
		MemoryTotal: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: "unraid",
			Name:      "memory_total_bytes",
			Help:      "Total memory, bytes",
		}),
		ArrayStarted: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: "unraid",
			Name:      "array_started",
			Help:      "Whether the array is started (1=yes, 0=no)",
		}),
		ArrayUsedBytes: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: "unraid",
			Name:      "array_used_bytes",
			Help:      "Array capacity in use, bytes",
		}),
		ArrayTotalBytes: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: "unraid",
			Name:      "array_total_bytes",
			Help:      "Total array capacity, bytes",
		}),
		ArrayUsagePercent: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: "unraid",
			Name:      "array_usage_percent",
			Help:      "Array capacity used, percentage",
		}),
		ParityRunning: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: "unraid",
			Name:      "parity_check_running",
			Help:      "Whether a parity check is running (1=yes, 0=no)",
		}),
		ParityProgress: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: "unraid",
			Name:      "parity_check_progress_percent",
			Help:      "Progress of the running parity check, percentage",
		}),
		ParityErrors: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: "unraid",
			Name:      "parity_check_errors",
			Help:      "Errors found by the running parity check",
		}),
		DiskTemperature: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "unraid",
			Name:      "disk_temperature_celsius",
			Help:      "Disk temperature; absent while a disk is in standby",
		}, []string{"disk", "type"}),
		DiskSpinning: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "unraid",
			Name:      "disk_spinning",
			Help:      "Whether a disk is spinning (1=yes, 0=standby)",
		}, []string{"disk", "type"}),
		ShareUsedBytes: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "unraid",
			Name:      "share_used_bytes",
			Help:      "Share space in use, bytes",
		}, []string{"share"}),
		ShareFreeBytes: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "unraid",
			Name:      "share_free_bytes",
			Help:      "Share space free, bytes",
		}, []string{"share"}),
		ContainersRunning: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: "unraid",
			Name:      "containers_running",
			Help:      "Number of running Docker containers",
		}),
		ContainersTotal: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: "unraid",
			Name:      "containers_total",
			Help:      "Total number of Docker containers",
		}),
		VMsRunning: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: "unraid",
			Name:      "vms_running",
			Help:      "Number of running virtual machines",
		}),
		VMsTotal: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: "unraid",
			Name:      "vms_total",
			Help:      "Total number of virtual machines",
		}),
		UPSCharge: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "unraid",
			Name:      "ups_battery_charge_percent",
			Help:      "UPS battery charge level, percentage",
		}, []string{"ups"}),
		UPSRuntime: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "unraid",
			Name:      "ups_battery_runtime_seconds",
			Help:      "Estimated UPS battery runtime, seconds",
		}, []string{"ups"}),
		UPSLoad: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "unraid",
			Name:      "ups_load_percent",
			Help:      "UPS output load, percentage",
		}, []string{"ups"}),
		UPSOnline: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "unraid",
			Name:      "ups_online",
			Help:      "Whether a UPS is on line power (1=yes, 0=on battery or offline)",
		}, []string{"ups"}),
		NotificationsUnread: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: "unraid",
			Name:      "notifications_unread",
			Help:      "Number of unread notifications",
		}),
		NotificationsAlert: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: "unraid",
			Name:      "notifications_unread_alerts",
			Help:      "Number of unread alert-importance notifications",
		}),
	}
}
