package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pawcare-vn/pawcare_backend/config"
	"github.com/pawcare-vn/pawcare_backend/internal/agenda"
	"github.com/pawcare-vn/pawcare_backend/internal/repo"
	entappt "github.com/pawcare-vn/pawcare_backend/internal/repo/appointment"
	entcap "github.com/pawcare-vn/pawcare_backend/internal/repo/shiftcapacity"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type SetCapacityRequest struct {
	Date     string
	Shift    string
	Capacity int
}

// ShiftAvailability reports one shift of one day from the customer's
// booking picker: the cap, how many slots are taken, and whether more
// bookings fit.
type ShiftAvailability struct {
	Date      string       `json:"date"`
	Shift     agenda.Shift `json:"shift"`
	Capacity  int          `json:"capacity"` // 0 means unlimited
	Booked    int          `json:"booked"`
	Available bool         `json:"available"`
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	SetCapacity(ctx context.Context, clinicID uuid.UUID, req SetCapacityRequest) (*repo.ShiftCapacity, error)
	ListCapacities(ctx context.Context, clinicID uuid.UUID, from, to string) ([]*repo.ShiftCapacity, error)
	Availability(ctx context.Context, clinicID uuid.UUID, from, to string) ([]ShiftAvailability, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type scheduleService struct {
	db  *repo.Client
	cfg *config.Config
}

func New(db *repo.Client, cfg *config.Config) Service {
	return &scheduleService{db: db, cfg: cfg}
}

func (s *scheduleService) SetCapacity(ctx context.Context, clinicID uuid.UUID, req SetCapacityRequest) (*repo.ShiftCapacity, error) {
	if _, err := agenda.ParseDateKey(req.Date); err != nil {
		return nil, ErrInvalidDate
	}
	switch agenda.Shift(req.Shift) {
	case agenda.ShiftMorning, agenda.ShiftAfternoon, agenda.ShiftEvening:
	default:
		return nil, ErrInvalidShift
	}
	if req.Capacity < 0 {
		req.Capacity = 0
	}

	existing, err := s.db.ShiftCapacity.Query().
		Where(
			entcap.ClinicID(clinicID),
			entcap.Date(req.Date),
			entcap.ShiftEQ(entcap.Shift(req.Shift)),
		).
		Only(ctx)
	if err != nil {
		if !repo.IsNotFound(err) {
			return nil, fmt.Errorf("get capacity: %w", err)
		}
		row, cErr := s.db.ShiftCapacity.Create().
			SetClinicID(clinicID).
			SetDate(req.Date).
			SetShift(entcap.Shift(req.Shift)).
			SetCapacity(req.Capacity).
			Save(ctx)
		if cErr != nil {
			return nil, fmt.Errorf("create capacity: %w", cErr)
		}
		return row, nil
	}

	row, err := s.db.ShiftCapacity.UpdateOne(existing).
		SetCapacity(req.Capacity).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update capacity: %w", err)
	}
	return row, nil
}

func (s *scheduleService) ListCapacities(ctx context.Context, clinicID uuid.UUID, from, to string) ([]*repo.ShiftCapacity, error) {
	if err := validRange(from, to); err != nil {
		return nil, err
	}

	rows, err := s.db.ShiftCapacity.Query().
		Where(
			entcap.ClinicID(clinicID),
			entcap.DateGTE(from),
			entcap.DateLTE(to),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list capacities: %w", err)
	}
	return rows, nil
}

func (s *scheduleService) Availability(ctx context.Context, clinicID uuid.UUID, from, to string) ([]ShiftAvailability, error) {
	if err := validRange(from, to); err != nil {
		return nil, err
	}

	caps, err := s.ListCapacities(ctx, clinicID, from, to)
	if err != nil {
		return nil, err
	}
	capByKey := map[string]int{}
	for _, c := range caps {
		capByKey[c.Date+"|"+string(c.Shift)] = c.Capacity
	}

	// Open bookings per day and shift in one query.
	var counts []struct {
		Date  string `json:"date"`
		Shift string `json:"shift"`
		Count int    `json:"count"`
	}
	err = s.db.Appointment.Query().
		Where(
			entappt.ClinicID(clinicID),
			entappt.DateGTE(from),
			entappt.DateLTE(to),
			entappt.StatusIn(
				entappt.Status(string(agenda.StatusPending)),
				entappt.Status(string(agenda.StatusConfirmed)),
			),
		).
		GroupBy(entappt.FieldDate, entappt.FieldShift).
		Aggregate(repo.Count()).
		Scan(ctx, &counts)
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}
	bookedByKey := map[string]int{}
	for _, c := range counts {
		bookedByKey[c.Date+"|"+c.Shift] = c.Count
	}

	start, _ := agenda.ParseDateKey(from)
	end, _ := agenda.ParseDateKey(to)
	defaultCap := s.cfg.Booking.DefaultShiftCapacity

	var out []ShiftAvailability
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		day := agenda.DateKey(d)
		for _, shift := range []agenda.Shift{agenda.ShiftMorning, agenda.ShiftAfternoon, agenda.ShiftEvening} {
			key := day + "|" + string(shift)
			limit, hasRow := capByKey[key]
			if !hasRow {
				limit = defaultCap
			}
			booked := bookedByKey[key]

			available := true
			switch {
			case hasRow && limit <= 0:
				available = false // shift explicitly closed
			case limit > 0:
				available = booked < limit
			}

			out = append(out, ShiftAvailability{
				Date:      day,
				Shift:     shift,
				Capacity:  limit,
				Booked:    booked,
				Available: available,
			})
		}
	}
	return out, nil
}

func validRange(from, to string) error {
	start, err := agenda.ParseDateKey(from)
	if err != nil {
		return ErrInvalidDate
	}
	end, err := agenda.ParseDateKey(to)
	if err != nil {
		return ErrInvalidDate
	}
	if end.Before(start) || end.Sub(start) > 62*24*time.Hour {
		return ErrInvalidRange
	}
	return nil
}
