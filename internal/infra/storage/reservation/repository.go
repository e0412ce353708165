package reservation

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/RSV-ReservationService/internal/domain"
	"github.com/m04kA/RSV-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/RSV-ReservationService/pkg/psqlbuilder"
)

const reservationColumns = "id, restaurant_id, reservation_date, start_time, persons, status, " +
	"first_name, last_name, phone, email, additional_notes, " +
	"cancellation_reason, cancelled_at, created_at, updated_at"

// sortableColumns whitelists the columns the list API may order by
var sortableColumns = map[string]string{
	"date":       "reservation_date",
	"time":       "start_time",
	"persons":    "persons",
	"created_at": "created_at",
}

// Repository persists reservations
type Repository struct {
	db DBExecutor
}

// NewRepository creates the reservation repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new reservation. When the context carries an active
// transaction the insert joins it, which the create-reservation use case
// relies on for its availability re-check.
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"restaurant_id",
			"reservation_date",
			"start_time",
			"persons",
			"status",
			"first_name",
			"last_name",
			"phone",
			"email",
			"additional_notes",
		).
		Values(
			res.RestaurantID,
			res.Date,
			res.StartTime,
			res.Persons,
			res.Status,
			res.FirstName,
			res.LastName,
			res.Phone,
			res.Email,
			res.AdditionalNotes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return res, nil
}

// GetByID returns one reservation
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(strings.Split(reservationColumns, ", ")...).
		From("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	res, err := scanReservation(row)
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// GetWithFilter returns reservations matching the filter. Date bounds are
// [StartDate, EndDate): inclusive lower, exclusive upper. Inside a
// transaction a single-day read locks the rows with FOR UPDATE so the
// availability re-check stays consistent until the insert commits.
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(strings.Split(reservationColumns, ", ")...).
		From("reservations")

	if filter.RestaurantID != nil {
		builder = builder.Where(squirrel.Eq{"restaurant_id": *filter.RestaurantID})
	}
	if filter.StartDate != nil {
		builder = builder.Where(squirrel.GtOrEq{"reservation_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		builder = builder.Where(squirrel.Lt{"reservation_date": *filter.EndDate})
	}

	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		inactive := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactive[i] = string(s)
		}
		builder = builder.Where(squirrel.NotEq{"status": inactive})
	}

	builder = builder.OrderBy("reservation_date ASC, start_time ASC")

	if dbmetrics.IsInTransaction(ctx) && filter.StartDate != nil && filter.EndDate != nil {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// List returns a page of reservations ordered per params, plus the total
// row count for pagination.
func (r *Repository) List(ctx context.Context, filter domain.ReservationsFilter, params domain.ListParams) ([]*domain.Reservation, int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(strings.Split(reservationColumns, ", ")...).
		From("reservations")
	countBuilder := psqlbuilder.Select("COUNT(*)").From("reservations")

	applyFilter := func(b squirrel.SelectBuilder) squirrel.SelectBuilder {
		if filter.RestaurantID != nil {
			b = b.Where(squirrel.Eq{"restaurant_id": *filter.RestaurantID})
		}
		if filter.StartDate != nil {
			b = b.Where(squirrel.GtOrEq{"reservation_date": *filter.StartDate})
		}
		if filter.EndDate != nil {
			b = b.Where(squirrel.Lt{"reservation_date": *filter.EndDate})
		}
		if filter.Status != nil {
			b = b.Where(squirrel.Eq{"status": *filter.Status})
		}
		return b
	}
	builder = applyFilter(builder)
	countBuilder = applyFilter(countBuilder)

	builder = builder.OrderBy(orderClauses(params.SortBy)...)

	if params.Limit > 0 {
		builder = builder.Limit(uint64(params.Limit)).Offset(uint64(params.Offset()))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reservations, err := scanReservations(rows)
	if err != nil {
		return nil, 0, err
	}

	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - build count query: %v", ErrBuildQuery, err)
	}

	var total int
	if err := executor.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%w: List - scan count: %v", ErrScanRow, err)
	}

	return reservations, total, nil
}

// Update reschedules a reservation
func (r *Repository) Update(ctx context.Context, id int64, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("reservation_date", res.Date).
		Set("start_time", res.StartTime).
		Set("persons", res.Persons).
		Set("phone", res.Phone).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + reservationColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	updated, err := scanReservation(row)
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - scan reservation: %v", ErrScanRow, err)
	}

	return updated, nil
}

// Cancel marks the reservation cancelled with a reason
func (r *Repository) Cancel(ctx context.Context, id int64, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// Delete removes the reservation row. Cancel is preferred; Delete exists for
// the admin-facing delete endpoint.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// orderClauses converts API sort keys ("-date,time") to ORDER BY clauses,
// ignoring unknown columns. Defaults to newest date first.
func orderClauses(sortBy []string) []string {
	clauses := make([]string, 0, len(sortBy))
	for _, key := range sortBy {
		direction := "ASC"
		if strings.HasPrefix(key, "-") {
			direction = "DESC"
			key = key[1:]
		}
		column, ok := sortableColumns[key]
		if !ok {
			continue
		}
		clauses = append(clauses, column+" "+direction)
	}
	if len(clauses) == 0 {
		clauses = append(clauses, "reservation_date DESC, start_time DESC")
	}
	return clauses
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.RestaurantID,
		&res.Date,
		&res.StartTime,
		&res.Persons,
		&res.Status,
		&res.FirstName,
		&res.LastName,
		&res.Phone,
		&res.Email,
		&res.AdditionalNotes,
		&res.CancellationReason,
		&res.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time
	return &res, nil
}

func scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}
