package orders

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anujay00/alpha-admin/internal/domain"
	"github.com/anujay00/alpha-admin/internal/events"
)

type fakeShopAPI struct {
	orders        []domain.Order
	fetchErr      error
	fetchCalls    int
	statusCalls   []string
	statusErr     error
	lastNewStatus domain.OrderStatus
}

func (f *fakeShopAPI) FetchOrders(ctx context.Context) ([]domain.Order, error) {
	f.fetchCalls++
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.orders, nil
}

func (f *fakeShopAPI) UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) error {
	f.statusCalls = append(f.statusCalls, orderID)
	f.lastNewStatus = status
	return f.statusErr
}

func newTestService(api *fakeShopAPI) *Service {
	log := testLog()
	return NewService(NewStore(log), api, nil, events.NewBus(log), log)
}

func TestServiceStartsUninitialized(t *testing.T) {
	svc := newTestService(&fakeShopAPI{})
	view := svc.View()
	assert.Equal(t, domain.ScreenUninitialized, view.State)
	assert.Empty(t, view.Orders)
}

func TestRefreshTransitionsToReady(t *testing.T) {
	api := &fakeShopAPI{orders: []domain.Order{
		{ID: "o-1", Date: day(2024, time.January, 1), Status: domain.StatusPacking},
		{ID: "o-2", Date: day(2024, time.January, 5), Status: domain.StatusDelivered},
	}}
	svc := newTestService(api)

	require.NoError(t, svc.Refresh(context.Background()))

	view := svc.View()
	assert.Equal(t, domain.ScreenReady, view.State)
	assert.Equal(t, 2, view.Total)
	// Default sort is date descending.
	assert.Equal(t, "o-2", view.Orders[0].ID)
}

func TestRefreshFailureBlanksOrdersList(t *testing.T) {
	api := &fakeShopAPI{orders: []domain.Order{{ID: "o-1", Date: day(2024, time.January, 1)}}}
	svc := newTestService(api)
	require.NoError(t, svc.Refresh(context.Background()))

	// Second fetch fails: the screen surfaces the error, and unlike the other
	// screens the orders list is blanked rather than kept stale.
	api.fetchErr = errors.New("shop API down")
	err := svc.Refresh(context.Background())
	require.Error(t, err)

	view := svc.View()
	assert.Equal(t, domain.ScreenError, view.State)
	assert.Contains(t, view.Error, "shop API down")
	assert.Empty(t, view.Orders)
}

func TestSetCriteriaRecomputesFromFullStore(t *testing.T) {
	api := &fakeShopAPI{orders: sampleOrders()}
	svc := newTestService(api)
	require.NoError(t, svc.Refresh(context.Background()))

	svc.SetCriteria(domain.FilterCriteria{Status: string(domain.StatusDelivered)})
	assert.Equal(t, 2, svc.View().Total)

	// Changing to a different axis must start from the full store again, not
	// from the previously filtered subset.
	svc.SetCriteria(domain.FilterCriteria{Status: string(domain.StatusShipped)})
	assert.Equal(t, 1, svc.View().Total)

	svc.SetCriteria(domain.FilterCriteria{})
	assert.Equal(t, 4, svc.View().Total)
}

func TestSetSortTogglesDirection(t *testing.T) {
	api := &fakeShopAPI{orders: sampleOrders()}
	svc := newTestService(api)
	require.NoError(t, svc.Refresh(context.Background()))

	svc.SetSort(domain.SortSpec{Key: domain.SortByDate, Direction: domain.SortAsc})
	assert.Equal(t, "o-1", svc.View().Orders[0].ID)

	svc.SetSort(domain.SortSpec{Key: domain.SortByDate, Direction: domain.SortDesc})
	assert.Equal(t, "o-4", svc.View().Orders[0].ID)
}

func TestUpdateStatusTriggersFullRefetch(t *testing.T) {
	api := &fakeShopAPI{orders: sampleOrders()}
	svc := newTestService(api)
	require.NoError(t, svc.Refresh(context.Background()))
	require.Equal(t, 1, api.fetchCalls)

	err := svc.UpdateStatus(context.Background(), "o-2", domain.StatusShipped)
	require.NoError(t, err)

	assert.Equal(t, []string{"o-2"}, api.statusCalls)
	assert.Equal(t, domain.StatusShipped, api.lastNewStatus)
	assert.Equal(t, 2, api.fetchCalls, "successful mutation must refetch the full set")
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	api := &fakeShopAPI{orders: sampleOrders()}
	svc := newTestService(api)

	err := svc.UpdateStatus(context.Background(), "o-1", domain.OrderStatus("Teleported"))
	require.Error(t, err)
	assert.Empty(t, api.statusCalls)
}

func TestUpdateStatusFailureDoesNotRefetch(t *testing.T) {
	api := &fakeShopAPI{orders: sampleOrders(), statusErr: errors.New("rejected")}
	svc := newTestService(api)
	require.NoError(t, svc.Refresh(context.Background()))

	err := svc.UpdateStatus(context.Background(), "o-1", domain.StatusDelivered)
	require.Error(t, err)
	assert.Equal(t, 1, api.fetchCalls)

	// The previous Ready view stays on screen.
	assert.Equal(t, domain.ScreenReady, svc.View().State)
	assert.Equal(t, 4, svc.View().Total)
}

func TestRefreshPublishesEvents(t *testing.T) {
	log := testLog()
	bus := events.NewBus(log)
	api := &fakeShopAPI{orders: sampleOrders()}
	svc := NewService(NewStore(log), api, nil, bus, log)

	var seen []events.EventType
	bus.SubscribeAll(func(e *events.Event) { seen = append(seen, e.Type) })

	require.NoError(t, svc.Refresh(context.Background()))

	assert.Contains(t, seen, events.ViewRecomputed)
	assert.Contains(t, seen, events.OrdersReplaced)
}
