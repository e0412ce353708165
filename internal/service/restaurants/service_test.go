package restaurants

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RSV-ReservationService/internal/domain"
	restaurantRepo "github.com/m04kA/RSV-ReservationService/internal/infra/storage/restaurant"
	"github.com/m04kA/RSV-ReservationService/pkg/ptr"
)

type fakeRestaurantRepo struct {
	restaurants map[int64]*domain.Restaurant
	tables      map[int64]*domain.Table

	deletedRestaurants []int64
	deletedTables      []int64
}

func newFakeRestaurantRepo() *fakeRestaurantRepo {
	return &fakeRestaurantRepo{
		restaurants: make(map[int64]*domain.Restaurant),
		tables:      make(map[int64]*domain.Table),
	}
}

func (f *fakeRestaurantRepo) Create(_ context.Context, restaurant *domain.Restaurant) (*domain.Restaurant, error) {
	created := *restaurant
	created.ID = int64(len(f.restaurants) + 1)
	f.restaurants[created.ID] = &created
	return &created, nil
}

func (f *fakeRestaurantRepo) GetByID(_ context.Context, id int64) (*domain.Restaurant, error) {
	r, ok := f.restaurants[id]
	if !ok {
		return nil, restaurantRepo.ErrRestaurantNotFound
	}
	return r, nil
}

func (f *fakeRestaurantRepo) GetByEmail(_ context.Context, email string) (*domain.Restaurant, error) {
	for _, r := range f.restaurants {
		if r.Email == email {
			return r, nil
		}
	}
	return nil, restaurantRepo.ErrRestaurantNotFound
}

func (f *fakeRestaurantRepo) List(_ context.Context) ([]*domain.Restaurant, error) {
	list := make([]*domain.Restaurant, 0, len(f.restaurants))
	for _, r := range f.restaurants {
		list = append(list, r)
	}
	return list, nil
}

func (f *fakeRestaurantRepo) Update(_ context.Context, id int64, restaurant *domain.Restaurant) (*domain.Restaurant, error) {
	if _, ok := f.restaurants[id]; !ok {
		return nil, restaurantRepo.ErrRestaurantNotFound
	}
	next := *restaurant
	next.ID = id
	f.restaurants[id] = &next
	return &next, nil
}

func (f *fakeRestaurantRepo) AddTable(_ context.Context, table *domain.Table) (*domain.Table, error) {
	created := *table
	created.ID = int64(len(f.tables) + 1)
	f.tables[created.ID] = &created
	return &created, nil
}

func (f *fakeRestaurantRepo) GetTables(_ context.Context, restaurantID int64) ([]*domain.Table, error) {
	var list []*domain.Table
	for _, t := range f.tables {
		if t.RestaurantID == restaurantID {
			list = append(list, t)
		}
	}
	return list, nil
}

func (f *fakeRestaurantRepo) GetTableByID(_ context.Context, id int64) (*domain.Table, error) {
	t, ok := f.tables[id]
	if !ok {
		return nil, restaurantRepo.ErrTableNotFound
	}
	return t, nil
}

func (f *fakeRestaurantRepo) UpdateTable(_ context.Context, id int64, table *domain.Table) (*domain.Table, error) {
	if _, ok := f.tables[id]; !ok {
		return nil, restaurantRepo.ErrTableNotFound
	}
	next := *table
	next.ID = id
	f.tables[id] = &next
	return &next, nil
}

func (f *fakeRestaurantRepo) DeleteTable(_ context.Context, id int64) error {
	if _, ok := f.tables[id]; !ok {
		return restaurantRepo.ErrTableNotFound
	}
	delete(f.tables, id)
	f.deletedTables = append(f.deletedTables, id)
	return nil
}

func (f *fakeRestaurantRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.restaurants[id]; !ok {
		return restaurantRepo.ErrRestaurantNotFound
	}
	delete(f.restaurants, id)
	f.deletedRestaurants = append(f.deletedRestaurants, id)
	return nil
}

type fakeUserRepo struct {
	linked map[int64]int64
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	return &domain.User{ID: id}, nil
}

func (f *fakeUserRepo) SetRestaurant(_ context.Context, id, restaurantID int64) error {
	if f.linked == nil {
		f.linked = make(map[int64]int64)
	}
	f.linked[id] = restaurantID
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func adminUser() *domain.User {
	return &domain.User{ID: 1, Role: domain.RoleAdmin}
}

func ownerOf(restaurantID int64) *domain.User {
	return &domain.User{ID: 2, Role: domain.RoleOwner, RestaurantID: ptr.Ptr(restaurantID)}
}

func newTestService(repo *fakeRestaurantRepo) *Service {
	return NewService(repo, &fakeUserRepo{}, fakeTxManager{}, nopLogger{})
}

func seedRestaurant(repo *fakeRestaurantRepo, id int64) {
	repo.restaurants[id] = &domain.Restaurant{
		ID:       id,
		Name:     "Trattoria",
		Address:  "1 Via Roma",
		Email:    "trattoria@example.com",
		Capacity: 40,
		OwnerID:  2,
	}
}

func seedTable(repo *fakeRestaurantRepo, id, restaurantID int64) {
	repo.tables[id] = &domain.Table{
		ID:           id,
		RestaurantID: restaurantID,
		TableNumber:  "T1",
		Capacity:     4,
		Status:       domain.TableAvailable,
	}
}

func TestService_Delete(t *testing.T) {
	repo := newFakeRestaurantRepo()
	seedRestaurant(repo, 10)
	svc := newTestService(repo)

	err := svc.Delete(context.Background(), ownerOf(10), 10)

	require.NoError(t, err)
	assert.Equal(t, []int64{10}, repo.deletedRestaurants)
}

func TestService_Delete_NotFound(t *testing.T) {
	svc := newTestService(newFakeRestaurantRepo())

	err := svc.Delete(context.Background(), adminUser(), 99)

	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestService_Delete_AccessDenied(t *testing.T) {
	repo := newFakeRestaurantRepo()
	seedRestaurant(repo, 10)
	svc := newTestService(repo)

	err := svc.Delete(context.Background(), ownerOf(11), 10)

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Empty(t, repo.deletedRestaurants)
}

func TestService_GetTable(t *testing.T) {
	repo := newFakeRestaurantRepo()
	seedRestaurant(repo, 10)
	seedTable(repo, 5, 10)
	svc := newTestService(repo)

	table, err := svc.GetTable(context.Background(), 10, 5)

	require.NoError(t, err)
	assert.Equal(t, int64(5), table.ID)
	assert.Equal(t, "T1", table.TableNumber)
}

func TestService_GetTable_WrongRestaurantIsNotFound(t *testing.T) {
	repo := newFakeRestaurantRepo()
	seedRestaurant(repo, 10)
	seedTable(repo, 5, 11)
	svc := newTestService(repo)

	_, err := svc.GetTable(context.Background(), 10, 5)

	assert.ErrorIs(t, err, ErrTableNotFound)
}

func TestService_DeleteTable(t *testing.T) {
	repo := newFakeRestaurantRepo()
	seedRestaurant(repo, 10)
	seedTable(repo, 5, 10)
	svc := newTestService(repo)

	err := svc.DeleteTable(context.Background(), adminUser(), 10, 5)

	require.NoError(t, err)
	assert.Equal(t, []int64{5}, repo.deletedTables)
}

func TestService_DeleteTable_AccessDenied(t *testing.T) {
	repo := newFakeRestaurantRepo()
	seedRestaurant(repo, 10)
	seedTable(repo, 5, 10)
	svc := newTestService(repo)

	err := svc.DeleteTable(context.Background(), ownerOf(11), 10, 5)

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Empty(t, repo.deletedTables)
}

func TestService_DeleteTable_WrongRestaurantIsNotFound(t *testing.T) {
	repo := newFakeRestaurantRepo()
	seedRestaurant(repo, 10)
	seedTable(repo, 5, 11)
	svc := newTestService(repo)

	err := svc.DeleteTable(context.Background(), adminUser(), 10, 5)

	assert.ErrorIs(t, err, ErrTableNotFound)
	assert.Empty(t, repo.deletedTables)
}
