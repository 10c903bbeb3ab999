// Package seed generates synthetic speed tests and towers for local dashboards and demos.
package seed

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/UnknownOlympus/netwatch/internal/models"
	"github.com/google/uuid"
	"github.com/jaswdr/faker"
)

const (
	operator      = "Mobilis"
	coordDecimals = 6
)

// Wilaya is a province with the box its samples and towers are drawn from.
type Wilaya struct {
	Name     string
	Code     string
	MinLat   float64
	MaxLat   float64
	MinLng   float64
	MaxLng   float64
	Communes []string
}

// Wilayas covered by generated data.
var Wilayas = []Wilaya{
	{
		Name: "Alger", Code: "ALG",
		MinLat: 36.6, MaxLat: 36.8, MinLng: 2.9, MaxLng: 3.2,
		Communes: []string{"Alger-Centre", "Bab Ezzouar", "Kouba", "Hydra"},
	},
	{
		Name: "Oran", Code: "ORN",
		MinLat: 35.6, MaxLat: 35.8, MinLng: -0.7, MaxLng: -0.5,
		Communes: []string{"Oran", "Es Senia", "Bir El Djir"},
	},
	{
		Name: "Constantine", Code: "CST",
		MinLat: 36.2, MaxLat: 36.4, MinLng: 6.5, MaxLng: 6.7,
		Communes: []string{"Constantine", "El Khroub", "Hamma Bouziane"},
	},
	{
		Name: "Ouargla", Code: "OGX",
		MinLat: 31.9, MaxLat: 32.1, MinLng: 5.2, MaxLng: 5.4,
		Communes: []string{"Ouargla", "Hassi Messaoud"},
	},
}

// profile bounds the metrics of one network generation.
type profile struct {
	minDown, maxDown       float64
	minUp, maxUp           float64
	minLatency, maxLatency float64
	minSignal, maxSignal   int
}

var profiles = map[string]profile{
	models.Network3G: {0.5, 15, 0.1, 5, 60, 200, -110, -80},
	models.Network4G: {10, 100, 5, 40, 30, 80, -100, -70},
	models.Network5G: {100, 800, 40, 100, 10, 30, -90, -60},
}

var devices = []string{"Android", "iOS"}

// Generator produces reproducible synthetic records for a given seed.
type Generator struct {
	fake    faker.Faker
	entropy *rand.Rand
	now     time.Time
	window  time.Duration
}

// NewGenerator returns a generator whose samples fall within the days before now.
func NewGenerator(seed int64, now time.Time, days int) *Generator {
	if days < 1 {
		days = 1
	}

	return &Generator{
		fake:    faker.NewWithSeed(rand.NewSource(seed)),
		entropy: rand.New(rand.NewSource(seed + 1)), //nolint:gosec // synthetic data
		now:     now,
		window:  time.Duration(days) * 24 * time.Hour,
	}
}

// Sample generates one speed test.
func (g *Generator) Sample() models.SpeedSample {
	wilaya := Wilayas[g.fake.IntBetween(0, len(Wilayas)-1)]
	network := g.network()
	prof := profiles[network]

	lat := g.between(wilaya.MinLat, wilaya.MaxLat, coordDecimals)
	lng := g.between(wilaya.MinLng, wilaya.MaxLng, coordDecimals)

	return models.SpeedSample{
		TestID:         g.testID(),
		Timestamp:      g.timestamp(),
		Operator:       operator,
		NetworkType:    network,
		DeviceType:     g.fake.RandomStringElement(devices),
		DownloadMbps:   g.between(prof.minDown, prof.maxDown, 2),
		UploadMbps:     g.between(prof.minUp, prof.maxUp, 2),
		LatencyMs:      g.between(prof.minLatency, prof.maxLatency, 2),
		SignalStrength: g.fake.IntBetween(prof.minSignal, prof.maxSignal),
		Wilaya:         wilaya.Name,
		Commune:        g.fake.RandomStringElement(wilaya.Communes),
		Latitude:       &lat,
		Longitude:      &lng,
	}
}

// Samples generates n speed tests.
func (g *Generator) Samples(n int) []models.SpeedSample {
	samples := make([]models.SpeedSample, 0, max(n, 0))
	for range n {
		samples = append(samples, g.Sample())
	}

	return samples
}

// Towers generates perCommune towers in every commune of every wilaya.
func (g *Generator) Towers(perCommune int) []models.Tower {
	towers := make([]models.Tower, 0)
	for _, wilaya := range Wilayas {
		seq := 0
		for _, commune := range wilaya.Communes {
			for range perCommune {
				seq++
				lat := g.between(wilaya.MinLat, wilaya.MaxLat, coordDecimals)
				lng := g.between(wilaya.MinLng, wilaya.MaxLng, coordDecimals)
				towers = append(towers, models.Tower{
					Name:      fmt.Sprintf("BTS-%s-%03d", wilaya.Code, seq),
					Wilaya:    wilaya.Name,
					Commune:   commune,
					Latitude:  &lat,
					Longitude: &lng,
					SectorA:   g.sectorState(),
					SectorB:   g.sectorState(),
					SectorC:   g.sectorState(),
				})
			}
		}
	}

	return towers
}

// network picks 3G, 4G or 5G weighted 20/60/20.
func (g *Generator) network() string {
	switch roll := g.fake.IntBetween(1, 100); {
	case roll <= 20:
		return models.Network3G
	case roll <= 80:
		return models.Network4G
	default:
		return models.Network5G
	}
}

func (g *Generator) sectorState() models.SectorState {
	switch roll := g.fake.IntBetween(1, 100); {
	case roll <= 80:
		return models.SectorActive
	case roll <= 90:
		return models.SectorMaintenance
	default:
		return models.SectorDown
	}
}

// between draws a value in [lo, hi] rounded to the given number of decimals.
func (g *Generator) between(lo, hi float64, decimals int) float64 {
	scale := math.Pow10(decimals)
	steps := int(math.Round((hi - lo) * scale))
	value := math.Round((lo+float64(g.fake.IntBetween(0, steps))/scale)*scale) / scale

	return math.Min(math.Max(value, lo), hi)
}

// timestamp draws a second-precision instant within the window before now.
func (g *Generator) timestamp() time.Time {
	offset := g.fake.Int64Between(0, int64(g.window/time.Second))

	return g.now.Add(-time.Duration(offset) * time.Second).Truncate(time.Second)
}

func (g *Generator) testID() string {
	id, err := uuid.NewRandomFromReader(g.entropy)
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}
