package restaurant

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/RSV-ReservationService/internal/domain"
	"github.com/m04kA/RSV-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/RSV-ReservationService/pkg/psqlbuilder"
)

// uniqueViolation is the Postgres SQLSTATE for unique constraint errors
const uniqueViolation = "23505"

// Repository persists restaurants, their operating hours and tables
type Repository struct {
	db DBExecutor
}

// NewRepository creates the restaurant repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a restaurant together with its operating hours
func (r *Repository) Create(ctx context.Context, restaurant *domain.Restaurant) (*domain.Restaurant, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("restaurants").
		Columns("name", "address", "email", "capacity", "owner_id").
		Values(restaurant.Name, restaurant.Address, restaurant.Email, restaurant.Capacity, restaurant.OwnerID).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&restaurant.ID, &createdAt, &updatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	restaurant.CreatedAt = createdAt.Time
	restaurant.UpdatedAt = updatedAt.Time

	if err := r.replaceOperatingHours(ctx, executor, restaurant.ID, restaurant.OperatingHours); err != nil {
		return nil, err
	}

	return restaurant, nil
}

// GetByID returns one restaurant with its operating hours loaded
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Restaurant, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "name", "address", "email", "capacity", "owner_id", "created_at", "updated_at",
	).
		From("restaurants").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var restaurant domain.Restaurant
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&restaurant.ID,
		&restaurant.Name,
		&restaurant.Address,
		&restaurant.Email,
		&restaurant.Capacity,
		&restaurant.OwnerID,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrRestaurantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan restaurant: %v", ErrScanRow, err)
	}

	restaurant.CreatedAt = createdAt.Time
	restaurant.UpdatedAt = updatedAt.Time

	hours, err := r.getOperatingHours(ctx, executor, id)
	if err != nil {
		return nil, err
	}
	restaurant.OperatingHours = hours

	return &restaurant, nil
}

// GetByEmail returns the restaurant registered with the given email
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.Restaurant, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id").
		From("restaurants").
		Where(squirrel.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmail - build select query: %v", ErrBuildQuery, err)
	}

	var id int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&id)
	if err == sql.ErrNoRows {
		return nil, ErrRestaurantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmail - scan restaurant: %v", ErrScanRow, err)
	}

	return r.GetByID(ctx, id)
}

// List returns all restaurants with their operating hours loaded
func (r *Repository) List(ctx context.Context) ([]*domain.Restaurant, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "name", "address", "email", "capacity", "owner_id", "created_at", "updated_at",
	).
		From("restaurants").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	restaurants := make([]*domain.Restaurant, 0)
	for rows.Next() {
		var restaurant domain.Restaurant
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&restaurant.ID,
			&restaurant.Name,
			&restaurant.Address,
			&restaurant.Email,
			&restaurant.Capacity,
			&restaurant.OwnerID,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		restaurant.CreatedAt = createdAt.Time
		restaurant.UpdatedAt = updatedAt.Time
		restaurants = append(restaurants, &restaurant)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	for _, restaurant := range restaurants {
		hours, err := r.getOperatingHours(ctx, executor, restaurant.ID)
		if err != nil {
			return nil, err
		}
		restaurant.OperatingHours = hours
	}

	return restaurants, nil
}

// Update mutates the base record and, when hours are supplied, replaces the
// whole weekly schedule.
func (r *Repository) Update(ctx context.Context, id int64, restaurant *domain.Restaurant) (*domain.Restaurant, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("restaurants").
		Set("name", restaurant.Name).
		Set("address", restaurant.Address).
		Set("capacity", restaurant.Capacity).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return nil, ErrRestaurantNotFound
	}

	if len(restaurant.OperatingHours) > 0 {
		if err := r.replaceOperatingHours(ctx, executor, id, restaurant.OperatingHours); err != nil {
			return nil, err
		}
	}

	return r.GetByID(ctx, id)
}

func (r *Repository) getOperatingHours(ctx context.Context, executor DBExecutor, restaurantID int64) ([]domain.OperatingHours, error) {
	query, args, err := psqlbuilder.Select("day", "open_time", "close_time", "is_open").
		From("restaurant_operating_hours").
		Where(squirrel.Eq{"restaurant_id": restaurantID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getOperatingHours - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getOperatingHours - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	hours := make([]domain.OperatingHours, 0, 7)
	for rows.Next() {
		var oh domain.OperatingHours
		if err := rows.Scan(&oh.Day, &oh.OpenTime, &oh.CloseTime, &oh.IsOpen); err != nil {
			return nil, fmt.Errorf("%w: getOperatingHours - scan row: %v", ErrScanRow, err)
		}
		hours = append(hours, oh)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getOperatingHours - rows error: %v", ErrScanRow, err)
	}

	return hours, nil
}

func (r *Repository) replaceOperatingHours(ctx context.Context, executor DBExecutor, restaurantID int64, hours []domain.OperatingHours) error {
	deleteQuery, deleteArgs, err := psqlbuilder.Delete("restaurant_operating_hours").
		Where(squirrel.Eq{"restaurant_id": restaurantID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: replaceOperatingHours - build delete query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: replaceOperatingHours - execute delete: %v", ErrExecQuery, err)
	}

	if len(hours) == 0 {
		return nil
	}

	builder := psqlbuilder.Insert("restaurant_operating_hours").
		Columns("restaurant_id", "day", "open_time", "close_time", "is_open")
	for _, oh := range hours {
		builder = builder.Values(restaurantID, oh.Day, oh.OpenTime, oh.CloseTime, oh.IsOpen)
	}

	insertQuery, insertArgs, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: replaceOperatingHours - build insert query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: replaceOperatingHours - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// AddTable inserts a table for a restaurant
func (r *Repository) AddTable(ctx context.Context, table *domain.Table) (*domain.Table, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("restaurant_tables").
		Columns("restaurant_id", "table_number", "capacity", "location", "description", "status", "adjacent_tables").
		Values(
			table.RestaurantID,
			table.TableNumber,
			table.Capacity,
			table.Location,
			table.Description,
			table.Status,
			pq.StringArray(table.AdjacentTables),
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: AddTable - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&table.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: AddTable - execute insert: %v", ErrExecQuery, err)
	}

	table.CreatedAt = createdAt.Time
	table.UpdatedAt = updatedAt.Time
	return table, nil
}

// GetTables returns all tables of a restaurant
func (r *Repository) GetTables(ctx context.Context, restaurantID int64) ([]*domain.Table, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "restaurant_id", "table_number", "capacity", "location",
		"description", "status", "adjacent_tables", "created_at", "updated_at",
	).
		From("restaurant_tables").
		Where(squirrel.Eq{"restaurant_id": restaurantID}).
		OrderBy("table_number ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetTables - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetTables - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	tables := make([]*domain.Table, 0)
	for rows.Next() {
		table, err := scanTable(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetTables - scan row: %v", ErrScanRow, err)
		}
		tables = append(tables, table)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetTables - rows error: %v", ErrScanRow, err)
	}

	return tables, nil
}

// GetTableByID returns one table
func (r *Repository) GetTableByID(ctx context.Context, id int64) (*domain.Table, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "restaurant_id", "table_number", "capacity", "location",
		"description", "status", "adjacent_tables", "created_at", "updated_at",
	).
		From("restaurant_tables").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetTableByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	table, err := scanTable(row)
	if err == sql.ErrNoRows {
		return nil, ErrTableNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetTableByID - scan table: %v", ErrScanRow, err)
	}

	return table, nil
}

// UpdateTable mutates a table record
func (r *Repository) UpdateTable(ctx context.Context, id int64, table *domain.Table) (*domain.Table, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("restaurant_tables").
		Set("table_number", table.TableNumber).
		Set("capacity", table.Capacity).
		Set("location", table.Location).
		Set("description", table.Description).
		Set("status", table.Status).
		Set("adjacent_tables", pq.StringArray(table.AdjacentTables)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateTable - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateTable - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateTable - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return nil, ErrTableNotFound
	}

	return r.GetTableByID(ctx, id)
}

// Delete removes the restaurant row. Operating hours and tables go with it
// through the schema's cascade; reservations are removed the same way.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("restaurants").
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
		return ErrRestaurantNotFound
	}

	return nil
}

// DeleteTable removes one table row
func (r *Repository) DeleteTable(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("restaurant_tables").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteTable - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteTable - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteTable - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrTableNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTable(row rowScanner) (*domain.Table, error) {
	var table domain.Table
	var createdAt, updatedAt sql.NullTime
	var adjacent pq.StringArray

	err := row.Scan(
		&table.ID,
		&table.RestaurantID,
		&table.TableNumber,
		&table.Capacity,
		&table.Location,
		&table.Description,
		&table.Status,
		&adjacent,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	table.AdjacentTables = adjacent
	table.CreatedAt = createdAt.Time
	table.UpdatedAt = updatedAt.Time
	return &table, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolation
	}
	return false
}
