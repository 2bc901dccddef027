// Package store owns the trip and vehicle collections. It is the system
// of record: every mutation re-derives trip fields, applies to the
// in-memory collection, and persists the full collection through the
// blob store collaborator.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"navexa/internal/core"
	"navexa/internal/log"
)

// Storage keys, fixed for compatibility with previously stored data.
const (
	KeyTrips    = "navexa_trips"
	KeyVehicles = "navexa_vehicles"
)

// UnknownVehicle is the display sentinel for a trip whose vehicle
// reference no longer resolves. Dangling references are not an error.
const UnknownVehicle = "Unknown"

// BlobStore is the persistence collaborator. LoadAll returns nil for a
// key that has never been written.
type BlobStore interface {
	LoadAll(ctx context.Context, key string) ([]byte, error)
	SaveAll(ctx context.Context, key string, data []byte) error
}

// IDFunc produces collection-unique ids.
type IDFunc func() string

// Clock supplies the current instant. Injected so tests stay deterministic.
type Clock func() time.Time

// Store holds both collections and persists them on every mutation.
type Store struct {
	mu       sync.Mutex
	blobs    BlobStore
	logger   *log.Logger
	newID    IDFunc
	now      Clock
	trips    []core.Trip
	vehicles []core.Vehicle
}

// New creates a store over the given blob store. A nil newID defaults to
// uuid generation, a nil clock to time.Now, a nil logger to the default
// configuration.
func New(blobs BlobStore, logger *log.Logger, newID IDFunc, now Clock) *Store {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	if newID == nil {
		newID = uuid.NewString
	}
	if now == nil {
		now = time.Now
	}
	return &Store{
		blobs:  blobs,
		logger: logger.WithComponent(log.ComponentStore),
		newID:  newID,
		now:    now,
	}
}

// Hydrate loads both collections from the blob store. Missing blobs and
// malformed JSON fall back to empty collections with a logged error; only
// a failing blob store read is returned to the caller.
func (s *Store) Hydrate(ctx context.Context) error {
	var (
		trips    []core.Trip
		vehicles []core.Vehicle
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		data, err := s.blobs.LoadAll(ctx, KeyTrips)
		if err != nil {
			return fmt.Errorf("load trips: %w", err)
		}
		if len(data) == 0 {
			return nil
		}
		if err := json.Unmarshal(data, &trips); err != nil {
			s.logger.ErrorContext(ctx, "Failed to parse stored trips, starting empty",
				log.FieldKey, KeyTrips, log.FieldError, err)
			trips = nil
		}
		return nil
	})
	g.Go(func() error {
		data, err := s.blobs.LoadAll(ctx, KeyVehicles)
		if err != nil {
			return fmt.Errorf("load vehicles: %w", err)
		}
		if len(data) == 0 {
			return nil
		}
		if err := json.Unmarshal(data, &vehicles); err != nil {
			s.logger.ErrorContext(ctx, "Failed to parse stored vehicles, starting empty",
				log.FieldKey, KeyVehicles, log.FieldError, err)
			vehicles = nil
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	s.mu.Lock()
	s.trips = trips
	s.vehicles = vehicles
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "Store hydrated",
		log.FieldTripCount, len(trips), log.FieldVehicleCount, len(vehicles))
	return nil
}

// Trips returns a snapshot copy of the trip collection.
func (s *Store) Trips() []core.Trip {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Trip(nil), s.trips...)
}

// Vehicles returns a snapshot copy of the vehicle collection.
func (s *Store) Vehicles() []core.Vehicle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Vehicle(nil), s.vehicles...)
}

// VehicleRegistration resolves a trip's vehicle reference for display.
// A dangling or empty reference degrades to the Unknown sentinel.
func (s *Store) VehicleRegistration(id string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range s.vehicles {
		if v.ID == id {
			return v.RegistrationNumber
		}
	}
	return UnknownVehicle
}

// AddTrip stores a new trip: fresh id, creation timestamp, derived fields
// recomputed, newest first. Returns the stored record.
func (s *Store) AddTrip(ctx context.Context, t core.Trip) (core.Trip, error) {
	t.ID = s.newID()
	t.CreatedAt = s.now().UnixMilli()
	t.Recalculate()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.trips = append([]core.Trip{t}, s.trips...)
	if err := s.persistTrips(ctx); err != nil {
		return core.Trip{}, err
	}

	s.logger.InfoContext(ctx, "Trip added", log.FieldTripID, t.ID)
	return t, nil
}

// UpdateTrip replaces the trip with the same id, preserving id and
// creation timestamp and re-deriving before persisting. An unknown id is
// a silent no-op.
func (s *Store) UpdateTrip(ctx context.Context, t core.Trip) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.trips {
		if existing.ID == t.ID {
			t.CreatedAt = existing.CreatedAt
			t.Recalculate()
			s.trips[i] = t
			if err := s.persistTrips(ctx); err != nil {
				return err
			}
			s.logger.InfoContext(ctx, "Trip updated", log.FieldTripID, t.ID)
			return nil
		}
	}
	return nil
}

// DeleteTrip removes the trip by id. An unknown id is a no-op; deletion
// never cascades to other records.
func (s *Store) DeleteTrip(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.trips {
		if t.ID == id {
			s.trips = append(s.trips[:i], s.trips[i+1:]...)
			if err := s.persistTrips(ctx); err != nil {
				return err
			}
			s.logger.InfoContext(ctx, "Trip deleted", log.FieldTripID, id)
			return nil
		}
	}
	return nil
}

// AddVehicle stores a new vehicle with a fresh id, newest first.
func (s *Store) AddVehicle(ctx context.Context, v core.Vehicle) (core.Vehicle, error) {
	v.ID = s.newID()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.vehicles = append([]core.Vehicle{v}, s.vehicles...)
	if err := s.persistVehicles(ctx); err != nil {
		return core.Vehicle{}, err
	}

	s.logger.InfoContext(ctx, "Vehicle added", log.FieldVehicleID, v.ID)
	return v, nil
}

// UpdateVehicle replaces the vehicle with the same id. Unknown id: no-op.
func (s *Store) UpdateVehicle(ctx context.Context, v core.Vehicle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.vehicles {
		if existing.ID == v.ID {
			s.vehicles[i] = v
			if err := s.persistVehicles(ctx); err != nil {
				return err
			}
			s.logger.InfoContext(ctx, "Vehicle updated", log.FieldVehicleID, v.ID)
			return nil
		}
	}
	return nil
}

// DeleteVehicle removes the vehicle by id. Trips referencing it are left
// untouched; their reference degrades to Unknown at display time.
func (s *Store) DeleteVehicle(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, v := range s.vehicles {
		if v.ID == id {
			s.vehicles = append(s.vehicles[:i], s.vehicles[i+1:]...)
			if err := s.persistVehicles(ctx); err != nil {
				return err
			}
			s.logger.InfoContext(ctx, "Vehicle deleted", log.FieldVehicleID, id)
			return nil
		}
	}
	return nil
}

// persistTrips writes the full trip collection. Callers hold the mutex.
func (s *Store) persistTrips(ctx context.Context) error {
	trips := s.trips
	if trips == nil {
		trips = []core.Trip{} // store "[]", not "null"
	}
	data, err := json.Marshal(trips)
	if err != nil {
		return fmt.Errorf("marshal trips: %w", err)
	}
	if err := s.blobs.SaveAll(ctx, KeyTrips, data); err != nil {
		return fmt.Errorf("persist trips: %w", err)
	}
	return nil
}

// persistVehicles writes the full vehicle collection. Callers hold the mutex.
func (s *Store) persistVehicles(ctx context.Context) error {
	vehicles := s.vehicles
	if vehicles == nil {
		vehicles = []core.Vehicle{}
	}
	data, err := json.Marshal(vehicles)
	if err != nil {
		return fmt.Errorf("marshal vehicles: %w", err)
	}
	if err := s.blobs.SaveAll(ctx, KeyVehicles, data); err != nil {
		return fmt.Errorf("persist vehicles: %w", err)
	}
	return nil
}
