package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/nuisibook-booking/internal/calendar"
	"github.com/m04kA/nuisibook-booking/internal/domain"
	"github.com/m04kA/nuisibook-booking/pkg/psqlbuilder"
)

var columns = []string{
	"id",
	"first_name",
	"last_name",
	"company",
	"email",
	"phone",
	"address",
	"city",
	"postal_code",
	"treatment_type",
	"appointment_date",
	"appointment_time",
	"is_flexible",
	"callback_deadline",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db    DBExecutor
	table string
}

// NewRepository создает новый экземпляр репозитория бронирований.
// db == nil означает, что хранилище не настроено.
func NewRepository(db DBExecutor, table string) *Repository {
	return &Repository{db: db, table: table}
}

// Create сохраняет новое бронирование и возвращает запись с датами создания
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if r.db == nil {
		return nil, ErrNotConfigured
	}

	var appointmentDate *string
	if booking.AppointmentDate != nil {
		s := booking.AppointmentDate.String()
		appointmentDate = &s
	}

	query, args, err := psqlbuilder.Insert(r.table).
		Columns(columns[:15]...).
		Values(
			booking.ID.String(),
			booking.FirstName,
			booking.LastName,
			booking.Company,
			booking.Email,
			booking.Phone,
			booking.Address,
			booking.City,
			booking.PostalCode,
			booking.TreatmentType,
			appointmentDate,
			booking.AppointmentTime,
			booking.IsFlexible,
			booking.CallbackDeadline,
			string(booking.Status),
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, classify("Create - execute insert", err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	if r.db == nil {
		return nil, ErrNotConfigured
	}

	query, args, err := psqlbuilder.Select(columns...).
		From(r.table).
		Where(squirrel.Eq{"id": id.String()}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, classify("GetByID - scan booking", err)
	}

	return booking, nil
}

// UpdateStatus переводит бронирование из статуса from в статус to.
// Если текущий статус уже не from, возвращает ErrStatusConflict.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.BookingStatus) (*domain.Booking, error) {
	if r.db == nil {
		return nil, ErrNotConfigured
	}

	query, args, err := psqlbuilder.Update(r.table).
		Set("status", string(to)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id.String()}).
		Where(squirrel.Eq{"status": string(from)}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStatusConflict
		}
		return nil, classify("UpdateStatus - execute update", err)
	}

	return booking, nil
}

// Ping проверяет доступность таблицы бронирований
func (r *Repository) Ping(ctx context.Context) error {
	if r.db == nil {
		return ErrNotConfigured
	}

	query, args, err := psqlbuilder.Select("id").
		From(r.table).
		Limit(1).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Ping - build select query: %v", ErrBuildQuery, err)
	}

	var id uuid.UUID
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&id)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return classify("Ping", err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		b               domain.Booking
		company         sql.NullString
		appointmentDate sql.NullTime
		appointmentTime sql.NullString
		status          string
		createdAt       sql.NullTime
		updatedAt       sql.NullTime
		callback        time.Time
	)

	err := row.Scan(
		&b.ID,
		&b.FirstName,
		&b.LastName,
		&company,
		&b.Email,
		&b.Phone,
		&b.Address,
		&b.City,
		&b.PostalCode,
		&b.TreatmentType,
		&appointmentDate,
		&appointmentTime,
		&b.IsFlexible,
		&callback,
		&status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if company.Valid {
		b.Company = &company.String
	}
	if appointmentDate.Valid {
		d := calendar.DateOf(appointmentDate.Time)
		b.AppointmentDate = &d
	}
	if appointmentTime.Valid {
		b.AppointmentTime = &appointmentTime.String
	}
	b.CallbackDeadline = callback
	b.Status = domain.BookingStatus(status)
	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}
