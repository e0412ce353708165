package restaurants

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/RSV-ReservationService/internal/domain"
	restaurantRepo "github.com/m04kA/RSV-ReservationService/internal/infra/storage/restaurant"
	"github.com/m04kA/RSV-ReservationService/internal/service/restaurants/models"
)

// Service manages restaurants and their tables
type Service struct {
	restaurantRepo RestaurantRepository
	userRepo       UserRepository
	txManager      TransactionManager
	logger         Logger
}

// NewService creates a restaurants service
func NewService(
	restaurantRepo RestaurantRepository,
	userRepo UserRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		restaurantRepo: restaurantRepo,
		userRepo:       userRepo,
		txManager:      txManager,
		logger:         logger,
	}
}

// Register creates a restaurant owned by the acting user. The restaurant row
// and the owner's back-reference are written in one transaction.
func (s *Service) Register(ctx context.Context, actor *domain.User, req *models.RegisterRestaurantRequest) (*models.RestaurantResponse, error) {
	s.logger.Info("Register: registering restaurant name=%q by user=%d", req.Name, actor.ID)

	if req.Capacity < domain.MinRestaurantCapacity {
		s.logger.Warn("Register: invalid capacity=%d", req.Capacity)
		return nil, fmt.Errorf("%w: capacity must be at least %d", ErrInvalidInput, domain.MinRestaurantCapacity)
	}

	hours, err := models.ToDomainOperatingHours(req.OperatingHours)
	if err != nil {
		s.logger.Warn("Register: invalid operating hours: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	restaurant := &domain.Restaurant{
		Name:           req.Name,
		Address:        req.Address,
		Email:          req.Email,
		Capacity:       req.Capacity,
		OwnerID:        actor.ID,
		OperatingHours: hours,
	}

	var created *domain.Restaurant
	txErr := s.txManager.Do(ctx, func(txCtx context.Context) error {
		created, err = s.restaurantRepo.Create(txCtx, restaurant)
		if err != nil {
			return err
		}
		if actor.Role == domain.RoleOwner {
			return s.userRepo.SetRestaurant(txCtx, actor.ID, created.ID)
		}
		return nil
	})
	if txErr != nil {
		if errors.Is(txErr, restaurantRepo.ErrDuplicateEmail) {
			s.logger.Warn("Register: duplicate email=%s", req.Email)
			return nil, ErrDuplicateEmail
		}
		s.logger.Error("Register: transaction error: %v", txErr)
		return nil, fmt.Errorf("%w: Register - transaction error: %v", ErrInternal, txErr)
	}

	s.logger.Info("Register: successfully registered restaurant id=%d", created.ID)
	return models.FromDomainRestaurant(created), nil
}

// GetByID fetches one restaurant with its operating hours
func (s *Service) GetByID(ctx context.Context, id int64) (*models.RestaurantResponse, error) {
	s.logger.Info("GetByID: fetching restaurant id=%d", id)

	restaurant, err := s.restaurantRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			s.logger.Warn("GetByID: restaurant id=%d not found", id)
			return nil, ErrRestaurantNotFound
		}
		s.logger.Error("GetByID: repository error for restaurant id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRestaurant(restaurant), nil
}

// List returns every registered restaurant
func (s *Service) List(ctx context.Context) (*models.RestaurantListResponse, error) {
	s.logger.Info("List: fetching restaurants")

	list, err := s.restaurantRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d restaurants", len(list))
	return models.FromDomainRestaurantList(list), nil
}

// Update modifies restaurant fields. Only the owner or an admin may update.
func (s *Service) Update(ctx context.Context, actor *domain.User, id int64, req *models.UpdateRestaurantRequest) (*models.RestaurantResponse, error) {
	s.logger.Info("Update: updating restaurant id=%d by user=%d", id, actor.ID)

	current, err := s.restaurantRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			s.logger.Warn("Update: restaurant id=%d not found", id)
			return nil, ErrRestaurantNotFound
		}
		s.logger.Error("Update: repository error for restaurant id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if !actor.CanManage(id) {
		s.logger.Warn("Update: user=%d may not manage restaurant id=%d", actor.ID, id)
		return nil, ErrAccessDenied
	}

	next := *current
	if req.Name != nil {
		next.Name = *req.Name
	}
	if req.Address != nil {
		next.Address = *req.Address
	}
	if req.Capacity != nil {
		if *req.Capacity < domain.MinRestaurantCapacity {
			return nil, fmt.Errorf("%w: capacity must be at least %d", ErrInvalidInput, domain.MinRestaurantCapacity)
		}
		next.Capacity = *req.Capacity
	}
	if req.OperatingHours != nil {
		hours, err := models.ToDomainOperatingHours(req.OperatingHours)
		if err != nil {
			s.logger.Warn("Update: invalid operating hours: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		next.OperatingHours = hours
	} else {
		next.OperatingHours = nil // keep stored schedule untouched
	}

	updated, err := s.restaurantRepo.Update(ctx, id, &next)
	if err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			return nil, ErrRestaurantNotFound
		}
		s.logger.Error("Update: repository error for restaurant id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated restaurant id=%d", id)
	return models.FromDomainRestaurant(updated), nil
}

// Delete removes a restaurant with its schedule, tables and reservations.
// Only the owner or an admin may delete.
func (s *Service) Delete(ctx context.Context, actor *domain.User, id int64) error {
	s.logger.Info("Delete: deleting restaurant id=%d by user=%d", id, actor.ID)

	if _, err := s.restaurantRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			s.logger.Warn("Delete: restaurant id=%d not found", id)
			return ErrRestaurantNotFound
		}
		s.logger.Error("Delete: repository error for restaurant id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if !actor.CanManage(id) {
		s.logger.Warn("Delete: user=%d may not manage restaurant id=%d", actor.ID, id)
		return ErrAccessDenied
	}

	if err := s.restaurantRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			return ErrRestaurantNotFound
		}
		s.logger.Error("Delete: repository error for restaurant id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted restaurant id=%d", id)
	return nil
}

// AddTable adds a table to the restaurant. Only the owner or an admin may add.
func (s *Service) AddTable(ctx context.Context, actor *domain.User, restaurantID int64, req *models.AddTableRequest) (*models.TableResponse, error) {
	s.logger.Info("AddTable: adding table %q to restaurant id=%d by user=%d",
		req.TableNumber, restaurantID, actor.ID)

	if _, err := s.restaurantRepo.GetByID(ctx, restaurantID); err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			s.logger.Warn("AddTable: restaurant id=%d not found", restaurantID)
			return nil, ErrRestaurantNotFound
		}
		s.logger.Error("AddTable: repository error for restaurant id=%d: %v", restaurantID, err)
		return nil, fmt.Errorf("%w: AddTable - repository error: %v", ErrInternal, err)
	}

	if !actor.CanManage(restaurantID) {
		s.logger.Warn("AddTable: user=%d may not manage restaurant id=%d", actor.ID, restaurantID)
		return nil, ErrAccessDenied
	}

	if req.Capacity < 1 {
		return nil, fmt.Errorf("%w: table capacity must be positive", ErrInvalidInput)
	}

	table := &domain.Table{
		RestaurantID:   restaurantID,
		TableNumber:    req.TableNumber,
		Capacity:       req.Capacity,
		Location:       req.Location,
		Description:    req.Description,
		Status:         domain.TableAvailable,
		AdjacentTables: req.AdjacentTables,
	}

	created, err := s.restaurantRepo.AddTable(ctx, table)
	if err != nil {
		s.logger.Error("AddTable: repository error for restaurant id=%d: %v", restaurantID, err)
		return nil, fmt.Errorf("%w: AddTable - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddTable: successfully added table id=%d to restaurant id=%d", created.ID, restaurantID)
	return models.FromDomainTable(created), nil
}

// GetTables lists the tables of a restaurant
func (s *Service) GetTables(ctx context.Context, restaurantID int64) (*models.TableListResponse, error) {
	s.logger.Info("GetTables: fetching tables for restaurant id=%d", restaurantID)

	if _, err := s.restaurantRepo.GetByID(ctx, restaurantID); err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			s.logger.Warn("GetTables: restaurant id=%d not found", restaurantID)
			return nil, ErrRestaurantNotFound
		}
		s.logger.Error("GetTables: repository error for restaurant id=%d: %v", restaurantID, err)
		return nil, fmt.Errorf("%w: GetTables - repository error: %v", ErrInternal, err)
	}

	tables, err := s.restaurantRepo.GetTables(ctx, restaurantID)
	if err != nil {
		s.logger.Error("GetTables: repository error for restaurant id=%d: %v", restaurantID, err)
		return nil, fmt.Errorf("%w: GetTables - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetTables: fetched %d tables for restaurant id=%d", len(tables), restaurantID)
	return models.FromDomainTableList(tables), nil
}

// GetTable fetches one table of a restaurant
func (s *Service) GetTable(ctx context.Context, restaurantID, tableID int64) (*models.TableResponse, error) {
	s.logger.Info("GetTable: fetching table id=%d of restaurant id=%d", tableID, restaurantID)

	table, err := s.restaurantRepo.GetTableByID(ctx, tableID)
	if err != nil {
		if errors.Is(err, restaurantRepo.ErrTableNotFound) {
			s.logger.Warn("GetTable: table id=%d not found", tableID)
			return nil, ErrTableNotFound
		}
		s.logger.Error("GetTable: repository error for table id=%d: %v", tableID, err)
		return nil, fmt.Errorf("%w: GetTable - repository error: %v", ErrInternal, err)
	}

	if table.RestaurantID != restaurantID {
		s.logger.Warn("GetTable: table id=%d belongs to restaurant id=%d, not id=%d",
			tableID, table.RestaurantID, restaurantID)
		return nil, ErrTableNotFound
	}

	return models.FromDomainTable(table), nil
}

// DeleteTable removes one table. Only the owner or an admin may delete.
func (s *Service) DeleteTable(ctx context.Context, actor *domain.User, restaurantID, tableID int64) error {
	s.logger.Info("DeleteTable: deleting table id=%d of restaurant id=%d by user=%d",
		tableID, restaurantID, actor.ID)

	if !actor.CanManage(restaurantID) {
		s.logger.Warn("DeleteTable: user=%d may not manage restaurant id=%d", actor.ID, restaurantID)
		return ErrAccessDenied
	}

	table, err := s.restaurantRepo.GetTableByID(ctx, tableID)
	if err != nil {
		if errors.Is(err, restaurantRepo.ErrTableNotFound) {
			s.logger.Warn("DeleteTable: table id=%d not found", tableID)
			return ErrTableNotFound
		}
		s.logger.Error("DeleteTable: repository error for table id=%d: %v", tableID, err)
		return fmt.Errorf("%w: DeleteTable - repository error: %v", ErrInternal, err)
	}

	if table.RestaurantID != restaurantID {
		s.logger.Warn("DeleteTable: table id=%d belongs to restaurant id=%d, not id=%d",
			tableID, table.RestaurantID, restaurantID)
		return ErrTableNotFound
	}

	if err := s.restaurantRepo.DeleteTable(ctx, tableID); err != nil {
		if errors.Is(err, restaurantRepo.ErrTableNotFound) {
			return ErrTableNotFound
		}
		s.logger.Error("DeleteTable: repository error for table id=%d: %v", tableID, err)
		return fmt.Errorf("%w: DeleteTable - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteTable: successfully deleted table id=%d", tableID)
	return nil
}

// UpdateTable modifies table fields. Only the owner or an admin may update.
func (s *Service) UpdateTable(ctx context.Context, actor *domain.User, restaurantID, tableID int64, req *models.UpdateTableRequest) (*models.TableResponse, error) {
	s.logger.Info("UpdateTable: updating table id=%d of restaurant id=%d by user=%d",
		tableID, restaurantID, actor.ID)

	if !actor.CanManage(restaurantID) {
		s.logger.Warn("UpdateTable: user=%d may not manage restaurant id=%d", actor.ID, restaurantID)
		return nil, ErrAccessDenied
	}

	current, err := s.restaurantRepo.GetTableByID(ctx, tableID)
	if err != nil {
		if errors.Is(err, restaurantRepo.ErrTableNotFound) {
			s.logger.Warn("UpdateTable: table id=%d not found", tableID)
			return nil, ErrTableNotFound
		}
		s.logger.Error("UpdateTable: repository error for table id=%d: %v", tableID, err)
		return nil, fmt.Errorf("%w: UpdateTable - repository error: %v", ErrInternal, err)
	}

	if current.RestaurantID != restaurantID {
		s.logger.Warn("UpdateTable: table id=%d belongs to restaurant id=%d, not id=%d",
			tableID, current.RestaurantID, restaurantID)
		return nil, ErrTableNotFound
	}

	next := *current
	if req.TableNumber != nil {
		next.TableNumber = *req.TableNumber
	}
	if req.Capacity != nil {
		if *req.Capacity < 1 {
			return nil, fmt.Errorf("%w: table capacity must be positive", ErrInvalidInput)
		}
		next.Capacity = *req.Capacity
	}
	if req.Location != nil {
		next.Location = req.Location
	}
	if req.Description != nil {
		next.Description = req.Description
	}
	if req.Status != nil {
		status, err := models.ToDomainTableStatus(*req.Status)
		if err != nil {
			s.logger.Warn("UpdateTable: invalid status=%s for table id=%d", *req.Status, tableID)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		next.Status = status
	}
	if req.AdjacentTables != nil {
		next.AdjacentTables = req.AdjacentTables
	}

	updated, err := s.restaurantRepo.UpdateTable(ctx, tableID, &next)
	if err != nil {
		if errors.Is(err, restaurantRepo.ErrTableNotFound) {
			return nil, ErrTableNotFound
		}
		s.logger.Error("UpdateTable: repository error for table id=%d: %v", tableID, err)
		return nil, fmt.Errorf("%w: UpdateTable - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateTable: successfully updated table id=%d", tableID)
	return models.FromDomainTable(updated), nil
}
