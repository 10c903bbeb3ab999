package models

// CriticalZone is an administrative area whose mean download throughput is below
// the critical threshold. It is derived on demand and never persisted.
type CriticalZone struct {
	Commune     string   `json:"commune"`
	Wilaya      string   `json:"wilaya"`
	AvgDownload float64  `json:"avg_download"`
	AvgUpload   float64  `json:"avg_upload"`
	AvgLatency  float64  `json:"avg_latency"`
	Lat         *float64 `json:"lat"`
	Lng         *float64 `json:"lng"`
	TestCount   int64    `json:"test_count"`
}

// Centroid returns the mean position of the zone samples, or false when no sample had coordinates.
func (z CriticalZone) Centroid() (Coordinates, bool) {
	return coordinatesOf(z.Lat, z.Lng)
}

// ZoneWithTowers is a critical zone together with the towers responsible for it,
// nearest first.
type ZoneWithTowers struct {
	CriticalZone

	ResponsibleBTS []TowerDistance `json:"responsible_bts"`
}
