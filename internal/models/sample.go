package models

import "time"

// Network generations reported by the speed-test clients.
const (
	Network3G = "3G"
	Network4G = "4G"
	Network5G = "5G"
)

// SpeedSample is a single speed-test record. Samples are immutable once recorded.
type SpeedSample struct {
	ID             int64     `json:"id"`
	TestID         string    `json:"test_id"`
	Timestamp      time.Time `json:"timestamp"`
	Operator       string    `json:"operator"`
	NetworkType    string    `json:"network_type"`
	DeviceType     string    `json:"device_type"`
	DownloadMbps   float64   `json:"download_mbps"`
	UploadMbps     float64   `json:"upload_mbps"`
	LatencyMs      float64   `json:"latency_ms"`
	SignalStrength int       `json:"signal_strength_dbm"`
	Wilaya         string    `json:"wilaya"`
	Commune        string    `json:"commune"`
	Latitude       *float64  `json:"latitude"`
	Longitude      *float64  `json:"longitude"`
}

// Stats summarises the whole sample store. Averages are nil when there are no samples.
type Stats struct {
	TotalTests  int64    `json:"total_tests"`
	AvgDownload *float64 `json:"avg_download"`
	AvgUpload   *float64 `json:"avg_upload"`
	AvgLatency  *float64 `json:"avg_latency"`
}
