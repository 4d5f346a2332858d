package appointment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/pawcare-vn/pawcare_backend/config"
	"github.com/pawcare-vn/pawcare_backend/internal/agenda"
	"github.com/pawcare-vn/pawcare_backend/internal/repo"
	entappt "github.com/pawcare-vn/pawcare_backend/internal/repo/appointment"
	entclinic "github.com/pawcare-vn/pawcare_backend/internal/repo/clinic"
	entpet "github.com/pawcare-vn/pawcare_backend/internal/repo/pet"
	"github.com/pawcare-vn/pawcare_backend/internal/repo/predicate"
	entcap "github.com/pawcare-vn/pawcare_backend/internal/repo/shiftcapacity"
	entuser "github.com/pawcare-vn/pawcare_backend/internal/repo/user"
)

// NATS subjects emitted by this service. Workers fan them out to
// notifications and email.
const (
	SubjectCreated   = "pawcare.appointment.created"
	SubjectConfirmed = "pawcare.appointment.confirmed"
	SubjectCancelled = "pawcare.appointment.cancelled"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type PaginatedResult[T any] struct {
	Data       []T
	Total      int
	Page       int
	PerPage    int
	TotalPages int
}

type ListRequest struct {
	ClinicID   *uuid.UUID
	CustomerID *uuid.UUID
	Status     *string
	DateFrom   *string // YYYY-MM-DD inclusive
	DateTo     *string // YYYY-MM-DD inclusive
	CreatedBy  *string
	Query      string // appointment id, customer id or customer name
	Page       int
	PerPage    int
}

type BookRequest struct {
	ClinicID   uuid.UUID
	CustomerID uuid.UUID
	Date       string
	Shift      string
	PetIDs     []uuid.UUID
	ServiceIDs []uuid.UUID
	Note       *string
	CreatedBy  string // customer | partner
}

type CancelRequest struct {
	ActorID uuid.UUID
	Reason  string
}

// DayCell is one cell of the month grid with that day's customer cards.
type DayCell struct {
	Date    string                `json:"date"`
	InMonth bool                  `json:"in_month"`
	Cards   []agenda.CustomerCard `json:"cards"`
}

type CalendarView struct {
	Cells []DayCell `json:"cells"`
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context, req ListRequest) (*PaginatedResult[*repo.Appointment], error)
	GetByID(ctx context.Context, apptID uuid.UUID) (*repo.Appointment, error)
	Book(ctx context.Context, req BookRequest) (*repo.Appointment, error)
	Confirm(ctx context.Context, clinicID, apptID uuid.UUID) (*repo.Appointment, error)
	Cancel(ctx context.Context, apptID uuid.UUID, req CancelRequest) (*repo.Appointment, error)
	Complete(ctx context.Context, clinicID, apptID uuid.UUID) (*repo.Appointment, error)
	MonthCalendar(ctx context.Context, clinicID uuid.UUID, ref time.Time) (*CalendarView, error)
	WeekCalendar(ctx context.Context, clinicID uuid.UUID, ref time.Time) (*CalendarView, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type appointmentService struct {
	db  *repo.Client
	nc  *nats.Conn
	cfg *config.Config
}

func New(db *repo.Client, nc *nats.Conn, cfg *config.Config) Service {
	return &appointmentService{db: db, nc: nc, cfg: cfg}
}

func (s *appointmentService) List(ctx context.Context, req ListRequest) (*PaginatedResult[*repo.Appointment], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Appointment.Query()

	if req.ClinicID != nil {
		q = q.Where(entappt.ClinicID(*req.ClinicID))
	}
	if req.CustomerID != nil {
		q = q.Where(entappt.CustomerID(*req.CustomerID))
	}
	if req.Status != nil && *req.Status != "" && *req.Status != "all" {
		q = q.Where(entappt.StatusEQ(entappt.Status(*req.Status)))
	}
	if req.DateFrom != nil && *req.DateFrom != "" {
		q = q.Where(entappt.DateGTE(*req.DateFrom))
	}
	if req.DateTo != nil && *req.DateTo != "" {
		q = q.Where(entappt.DateLTE(*req.DateTo))
	}
	if req.CreatedBy != nil && *req.CreatedBy != "" {
		q = q.Where(entappt.CreatedByEQ(entappt.CreatedBy(*req.CreatedBy)))
	}

	if query := strings.TrimSpace(req.Query); query != "" {
		q = q.Where(s.queryPredicate(ctx, query))
	}

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count appointments: %w", err)
	}

	appts, err := q.
		Order(entappt.ByDate(sql.OrderDesc()), entappt.ByCreatedAt(sql.OrderDesc())).
		WithPets().
		WithServices().
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}

	totalPages := (total + req.PerPage - 1) / req.PerPage
	return &PaginatedResult[*repo.Appointment]{
		Data:       appts,
		Total:      total,
		Page:       req.Page,
		PerPage:    req.PerPage,
		TotalPages: totalPages,
	}, nil
}

// queryPredicate matches an exact appointment id, an exact customer id, or
// customers whose name contains the query (case-insensitive).
func (s *appointmentService) queryPredicate(ctx context.Context, query string) predicate.Appointment {
	preds := []predicate.Appointment{}

	if id, err := uuid.Parse(query); err == nil {
		preds = append(preds, entappt.ID(id), entappt.CustomerID(id))
	}

	customerIDs, err := s.db.User.Query().
		Where(
			entuser.RoleEQ(entuser.RoleCustomer),
			entuser.FullNameContainsFold(query),
		).
		IDs(ctx)
	if err == nil && len(customerIDs) > 0 {
		preds = append(preds, entappt.CustomerIDIn(customerIDs...))
	}

	if len(preds) == 0 {
		// Nothing can match; keep the query valid but empty.
		return entappt.IDEQ(uuid.Nil)
	}
	return entappt.Or(preds...)
}

func (s *appointmentService) GetByID(ctx context.Context, apptID uuid.UUID) (*repo.Appointment, error) {
	appt, err := s.db.Appointment.Query().
		Where(entappt.ID(apptID)).
		WithPets().
		WithServices().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	return appt, nil
}

// ---------------------------------------------------------------------------
// Book
// ---------------------------------------------------------------------------

func (s *appointmentService) Book(ctx context.Context, req BookRequest) (*repo.Appointment, error) {
	if _, err := agenda.ParseDateKey(req.Date); err != nil {
		return nil, ErrInvalidDate
	}
	switch agenda.Shift(req.Shift) {
	case agenda.ShiftMorning, agenda.ShiftAfternoon, agenda.ShiftEvening:
	default:
		return nil, ErrInvalidShift
	}
	if len(req.PetIDs) == 0 {
		return nil, ErrNoPets
	}
	if n := s.cfg.Booking.MaxPetsPerBooking; n > 0 && len(req.PetIDs) > n {
		return nil, ErrTooManyPets
	}

	clinic, err := s.db.Clinic.Get(ctx, req.ClinicID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrClinicNotApproved
		}
		return nil, fmt.Errorf("get clinic: %w", err)
	}
	if clinic.Status != entclinic.StatusApproved {
		return nil, ErrClinicNotApproved
	}

	// All pets must belong to the booking customer.
	owned, err := s.db.Pet.Query().
		Where(
			entpet.IDIn(req.PetIDs...),
			entpet.OwnerID(req.CustomerID),
			entpet.DeletedAtIsNil(),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("check pets: %w", err)
	}
	if owned != len(req.PetIDs) {
		return nil, ErrPetNotOwned
	}

	if err := s.checkCapacity(ctx, req.ClinicID, req.Date, req.Shift); err != nil {
		return nil, err
	}

	c := s.db.Appointment.Create().
		SetClinicID(req.ClinicID).
		SetCustomerID(req.CustomerID).
		SetDate(req.Date).
		SetShift(entappt.Shift(req.Shift)).
		SetCreatedBy(entappt.CreatedBy(req.CreatedBy)).
		AddPetIDs(req.PetIDs...)

	if len(req.ServiceIDs) > 0 {
		c = c.AddServiceIDs(req.ServiceIDs...)
	}
	if req.Note != nil {
		c = c.SetNillableNote(req.Note)
	}

	appt, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}

	s.publish(SubjectCreated, appt.ID)
	return appt, nil
}

// checkCapacity counts open appointments against the shift's cap. The cap
// comes from an explicit capacity row, falling back to the global default.
func (s *appointmentService) checkCapacity(ctx context.Context, clinicID uuid.UUID, date, shift string) error {
	limit := s.cfg.Booking.DefaultShiftCapacity

	row, err := s.db.ShiftCapacity.Query().
		Where(
			entcap.ClinicID(clinicID),
			entcap.Date(date),
			entcap.ShiftEQ(entcap.Shift(shift)),
		).
		Only(ctx)
	if err != nil && !repo.IsNotFound(err) {
		return fmt.Errorf("get shift capacity: %w", err)
	}
	if err == nil {
		limit = row.Capacity
	}

	if limit <= 0 {
		if err == nil {
			// Explicit zero closes the shift.
			return ErrShiftFull
		}
		return nil // no default configured, unlimited
	}

	open, err := s.db.Appointment.Query().
		Where(
			entappt.ClinicID(clinicID),
			entappt.Date(date),
			entappt.ShiftEQ(entappt.Shift(shift)),
			entappt.StatusIn(
				entappt.Status(string(agenda.StatusPending)),
				entappt.Status(string(agenda.StatusConfirmed)),
			),
		).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("count open appointments: %w", err)
	}
	if open >= limit {
		return ErrShiftFull
	}
	return nil
}

// ---------------------------------------------------------------------------
// Transitions
// ---------------------------------------------------------------------------

func (s *appointmentService) Confirm(ctx context.Context, clinicID, apptID uuid.UUID) (*repo.Appointment, error) {
	appt, err := s.clinicAppointment(ctx, clinicID, apptID)
	if err != nil {
		return nil, err
	}

	if !agenda.CanTransition(agenda.Status(appt.Status), agenda.StatusConfirmed) {
		return nil, ErrBadTransition
	}

	saved, err := s.db.Appointment.UpdateOne(appt).
		SetStatus(entappt.Status(string(agenda.StatusConfirmed))).
		SetConfirmedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("confirm appointment: %w", err)
	}

	s.publish(SubjectConfirmed, saved.ID)
	return saved, nil
}

func (s *appointmentService) Cancel(ctx context.Context, apptID uuid.UUID, req CancelRequest) (*repo.Appointment, error) {
	if strings.TrimSpace(req.Reason) == "" {
		return nil, ErrReasonRequired
	}

	appt, err := s.GetByID(ctx, apptID)
	if err != nil {
		return nil, err
	}

	// The customer who booked or the owner of the clinic may cancel.
	if appt.CustomerID != req.ActorID {
		clinic, err := s.db.Clinic.Get(ctx, appt.ClinicID)
		if err != nil {
			return nil, fmt.Errorf("get clinic: %w", err)
		}
		if clinic.OwnerID != req.ActorID {
			return nil, ErrForbidden
		}
	}

	if !agenda.CanTransition(agenda.Status(appt.Status), agenda.StatusCancelled) {
		return nil, ErrBadTransition
	}

	saved, err := s.db.Appointment.UpdateOne(appt).
		SetStatus(entappt.Status(string(agenda.StatusCancelled))).
		SetCancelReason(strings.TrimSpace(req.Reason)).
		SetCancelledAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("cancel appointment: %w", err)
	}

	s.publish(SubjectCancelled, saved.ID)
	return saved, nil
}

func (s *appointmentService) Complete(ctx context.Context, clinicID, apptID uuid.UUID) (*repo.Appointment, error) {
	appt, err := s.clinicAppointment(ctx, clinicID, apptID)
	if err != nil {
		return nil, err
	}

	if !agenda.CanTransition(agenda.Status(appt.Status), agenda.StatusCompleted) {
		return nil, ErrBadTransition
	}

	saved, err := s.db.Appointment.UpdateOne(appt).
		SetStatus(entappt.Status(string(agenda.StatusCompleted))).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("complete appointment: %w", err)
	}
	return saved, nil
}

// ---------------------------------------------------------------------------
// Calendar
// ---------------------------------------------------------------------------

func (s *appointmentService) MonthCalendar(ctx context.Context, clinicID uuid.UUID, ref time.Time) (*CalendarView, error) {
	cells := agenda.MonthGrid(ref)
	from := agenda.DateKey(cells[0].Date)
	to := agenda.DateKey(cells[len(cells)-1].Date)
	return s.calendar(ctx, clinicID, cells, from, to)
}

func (s *appointmentService) WeekCalendar(ctx context.Context, clinicID uuid.UUID, ref time.Time) (*CalendarView, error) {
	days := agenda.WeekDays(ref)
	cells := make([]agenda.Cell, 0, len(days))
	for _, d := range days {
		cells = append(cells, agenda.Cell{Date: d, InMonth: true})
	}
	from := agenda.DateKey(days[0])
	to := agenda.DateKey(days[len(days)-1])
	return s.calendar(ctx, clinicID, cells, from, to)
}

func (s *appointmentService) calendar(ctx context.Context, clinicID uuid.UUID, cells []agenda.Cell, from, to string) (*CalendarView, error) {
	rows, err := s.db.Appointment.Query().
		Where(
			entappt.ClinicID(clinicID),
			entappt.DateGTE(from),
			entappt.DateLTE(to),
		).
		WithPets().
		Order(entappt.ByDate(sql.OrderAsc()), entappt.ByCreatedAt(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}

	appts := s.toAgenda(ctx, rows)

	out := &CalendarView{Cells: make([]DayCell, 0, len(cells))}
	for _, cell := range cells {
		out.Cells = append(out.Cells, DayCell{
			Date:    agenda.DateKey(cell.Date),
			InMonth: cell.InMonth,
			Cards:   agenda.DayCards(appts, cell.Date),
		})
	}
	return out, nil
}

// toAgenda converts rows to agenda appointments, resolving customer names
// in one bulk query. Unknown customers fall back to "Khách".
func (s *appointmentService) toAgenda(ctx context.Context, rows []*repo.Appointment) []agenda.Appointment {
	idSet := map[uuid.UUID]struct{}{}
	for _, r := range rows {
		idSet[r.CustomerID] = struct{}{}
	}
	ids := make([]uuid.UUID, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	names := map[uuid.UUID]string{}
	if len(ids) > 0 {
		users, err := s.db.User.Query().Where(entuser.IDIn(ids...)).All(ctx)
		if err == nil {
			for _, u := range users {
				if u.FullName != nil && *u.FullName != "" {
					names[u.ID] = *u.FullName
				}
			}
		}
	}

	out := make([]agenda.Appointment, 0, len(rows))
	for _, r := range rows {
		name := names[r.CustomerID]
		if name == "" {
			name = "Khách"
		}
		petCount := 0
		if r.Edges.Pets != nil {
			petCount = len(r.Edges.Pets)
		}
		out = append(out, agenda.Appointment{
			ID:           r.ID.String(),
			Date:         r.Date,
			Shift:        agenda.Shift(r.Shift),
			Status:       agenda.Status(r.Status),
			CreatedBy:    agenda.CreatedBy(r.CreatedBy),
			CustomerID:   r.CustomerID.String(),
			CustomerName: name,
			PetCount:     petCount,
		})
	}
	return out
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *appointmentService) clinicAppointment(ctx context.Context, clinicID, apptID uuid.UUID) (*repo.Appointment, error) {
	appt, err := s.db.Appointment.Query().
		Where(entappt.ID(apptID), entappt.ClinicID(clinicID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	return appt, nil
}

func (s *appointmentService) publish(subject string, apptID uuid.UUID) {
	if s.nc != nil {
		_ = s.nc.Publish(subject, []byte(apptID.String()))
	}
}
