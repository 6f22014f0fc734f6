package repositories

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"shuttle-logistics-service/internal/domain"
	"shuttle-logistics-service/internal/ports"
)

// MemoryGuest is the in-memory guest record backing MemoryGuestRepository.
type MemoryGuest struct {
	ID            string
	Name          string
	Phone         string
	Notes         string
	AirportCode   string
	FlightNumber  string
	Airline       string
	ArrivalDate   string // "2006-01-02", empty when unset
	ArrivalHour   *int
	DepartureDate string
	DepartureHour *int
}

// In-memory implementation of the guest ports, used by tests.
type MemoryGuestRepository struct {
	mu     sync.Mutex
	guests map[string]*MemoryGuest
}

func NewMemoryGuestRepository(guests []*MemoryGuest) *MemoryGuestRepository {
	m := make(map[string]*MemoryGuest, len(guests))
	for _, g := range guests {
		m[g.ID] = g
	}
	return &MemoryGuestRepository{guests: m}
}

func (r *MemoryGuestRepository) ListGuestTimeRecords(
	ctx context.Context,
	date time.Time,
	direction domain.ManifestType,
) ([]domain.GuestTimeRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	day := date.Format("2006-01-02")
	out := []domain.GuestTimeRecord{}
	for _, g := range sortedGuests(r.guests) {
		if g.AirportCode == "" {
			continue
		}

		guestDay := g.ArrivalDate
		hour := g.ArrivalHour
		if direction == domain.ManifestDeparture {
			guestDay = g.DepartureDate
			hour = g.DepartureHour
		}
		if guestDay != day {
			continue
		}

		out = append(out, domain.GuestTimeRecord{
			GuestID:     g.ID,
			Date:        date,
			Hour:        hour,
			AirportCode: g.AirportCode,
		})
	}
	return out, nil
}

func (r *MemoryGuestRepository) UpdateFlightInfo(ctx context.Context, info domain.FlightInfo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	g, ok := r.guests[info.GuestID]
	if !ok {
		return fmt.Errorf("memory guest repository: unknown guest %q", info.GuestID)
	}

	g.AirportCode = info.AirportCode
	g.FlightNumber = info.FlightNumber
	g.Airline = info.Airline
	if info.ArrivalTime != nil {
		g.ArrivalDate = info.ArrivalTime.Format("2006-01-02")
		h := info.ArrivalTime.Hour()
		g.ArrivalHour = &h
	}
	if info.DepartureTime != nil {
		g.DepartureDate = info.DepartureTime.Format("2006-01-02")
		h := info.DepartureTime.Hour()
		g.DepartureHour = &h
	}
	return nil
}

func (r *MemoryGuestRepository) ListFlightsByAirport(ctx context.Context, airportCode string) ([]domain.FlightInfo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []domain.FlightInfo{}
	for _, g := range sortedGuests(r.guests) {
		if g.AirportCode != airportCode || g.FlightNumber == "" {
			continue
		}
		out = append(out, domain.FlightInfo{
			GuestID:       g.ID,
			AirportCode:   g.AirportCode,
			FlightNumber:  g.FlightNumber,
			Airline:       g.Airline,
			ArrivalTime:   memoryTimestamp(g.ArrivalDate, g.ArrivalHour),
			DepartureTime: memoryTimestamp(g.DepartureDate, g.DepartureHour),
		})
	}
	return out, nil
}

// memoryTimestamp rebuilds a timestamp from the record's date string and
// optional hour. An empty or malformed date yields nil.
func memoryTimestamp(date string, hour *int) *time.Time {
	if date == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil
	}
	if hour != nil {
		t = t.Add(time.Duration(*hour) * time.Hour)
	}
	return &t
}

func (r *MemoryGuestRepository) GetGuestsByIDs(ctx context.Context, ids []string) ([]domain.GuestDetail, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.GuestDetail, 0, len(ids))
	for _, id := range ids {
		g, ok := r.guests[id]
		if !ok {
			continue
		}
		out = append(out, domain.GuestDetail{
			GuestID:      g.ID,
			Name:         g.Name,
			FlightNumber: g.FlightNumber,
			Phone:        g.Phone,
			Notes:        g.Notes,
		})
	}
	return out, nil
}

// Deterministic iteration order for map-backed storage.
func sortedGuests(m map[string]*MemoryGuest) []*MemoryGuest {
	out := make([]*MemoryGuest, 0, len(m))
	for _, g := range m {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// In-memory implementation of the ManifestStore port.
type MemoryManifestStore struct {
	mu        sync.Mutex
	manifests map[string]*domain.TransportationManifest
}

func NewMemoryManifestStore() *MemoryManifestStore {
	return &MemoryManifestStore{manifests: map[string]*domain.TransportationManifest{}}
}

func (s *MemoryManifestStore) Create(ctx context.Context, m *domain.TransportationManifest) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := cloneManifest(m)
	stored.ID = uuid.NewString()
	stored.Version = 1
	now := time.Now().UTC()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	s.manifests[stored.ID] = stored

	m.Version = stored.Version
	m.CreatedAt = stored.CreatedAt
	m.UpdatedAt = stored.UpdatedAt
	return stored.ID, nil
}

func (s *MemoryManifestStore) Get(ctx context.Context, id string) (*domain.TransportationManifest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.manifests[id]
	if !ok {
		return nil, domain.ErrManifestNotFound
	}
	return cloneManifest(m), nil
}

func (s *MemoryManifestStore) UpdateGuests(ctx context.Context, id string, guestIDs []string, expectedVersion int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.manifests[id]
	if !ok {
		return domain.ErrManifestNotFound
	}
	if m.Version != expectedVersion {
		return domain.ErrVersionConflict
	}

	m.GuestIDs = append([]string(nil), guestIDs...)
	m.Version++
	m.UpdatedAt = time.Now().UTC()
	return nil
}

func (s *MemoryManifestStore) UpdateDetails(ctx context.Context, id string, patch ports.ManifestPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.manifests[id]
	if !ok {
		return domain.ErrManifestNotFound
	}

	if patch.VehicleType != nil {
		m.VehicleType = *patch.VehicleType
	}
	if patch.DriverName != nil {
		m.DriverName = *patch.DriverName
	}
	if patch.DriverPhone != nil {
		m.DriverPhone = *patch.DriverPhone
	}
	if patch.Notes != nil {
		m.Notes = *patch.Notes
	}
	m.Version++
	m.UpdatedAt = time.Now().UTC()
	return nil
}

func (s *MemoryManifestStore) ListByDate(ctx context.Context, date time.Time) ([]*domain.TransportationManifest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	day := date.Format("2006-01-02")
	out := []*domain.TransportationManifest{}
	for _, m := range s.manifests {
		if m.Date.Format("2006-01-02") == day {
			out = append(out, cloneManifest(m))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].WindowStart != out[j].WindowStart {
			return out[i].WindowStart < out[j].WindowStart
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func cloneManifest(m *domain.TransportationManifest) *domain.TransportationManifest {
	out := *m
	out.GuestIDs = append([]string(nil), m.GuestIDs...)
	return &out
}
