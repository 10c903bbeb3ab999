package models

import (
	"errors"
	"fmt"
)

// SectorState is the operational state of a single BTS sector.
type SectorState string

const (
	SectorActive      SectorState = "active"
	SectorMaintenance SectorState = "maintenance"
	SectorDown        SectorState = "down"
)

// ErrUnknownSectorState is returned when a stored sector state is not one of the known values.
var ErrUnknownSectorState = errors.New("unknown sector state")

// ParseSectorState validates a raw sector state read from the tower registry.
func ParseSectorState(raw string) (SectorState, error) {
	switch state := SectorState(raw); state {
	case SectorActive, SectorMaintenance, SectorDown:
		return state, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSectorState, raw)
	}
}

// Tower is a BTS antenna record with three independently stated sectors.
// JSON names match the ones the dashboard front end reads.
type Tower struct {
	ID        int64       `json:"id"`
	Name      string      `json:"nom"`
	Wilaya    string      `json:"wilaya"`
	Commune   string      `json:"commune"`
	Latitude  *float64    `json:"latitude"`
	Longitude *float64    `json:"longitude"`
	SectorA   SectorState `json:"etatA"`
	SectorB   SectorState `json:"etatB"`
	SectorC   SectorState `json:"etatC"`
}

// Position returns the tower coordinates, or false when they are missing or invalid.
func (t Tower) Position() (Coordinates, bool) {
	return coordinatesOf(t.Latitude, t.Longitude)
}

// TowerDistance is a tower annotated with its great-circle distance to a reference point.
type TowerDistance struct {
	Tower

	DistanceKm float64 `json:"distance_km"`
}
