package routeprogress

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"fasterpost/internal/entities"
	"fasterpost/internal/gateway/rest/courierapi"
)

// Model владеет маршрутом в памяти - единственным разделяемым мутабельным
// ресурсом клиентского воркфлоу. Ровно два пути мутации:
//  1. Reload - полная перезагрузка с бэкенда (после start/finish/complete-stop);
//  2. ApplyScanResult - точечный оптимистичный патч после скана, чтобы не
//     дергать полный рефетч и не мигать интерфейсом.
//
// Контроллеры читают производные значения и мутируют только через эти два входа.
type Model struct {
	mu     sync.RWMutex
	client RouteClient
	route  *entities.Route
}

func New(client RouteClient) *Model {
	return &Model{
		client: client,
	}
}

// Reload полностью заменяет маршрут свежим ответом бэкенда.
// "Маршрута нет" (404) - валидное пустое состояние, не ошибка.
func (m *Model) Reload(ctx context.Context) error {
	route, err := m.client.FetchCurrentRoute(ctx)
	if err != nil {
		if errors.Is(err, courierapi.ErrNoActiveRoute) {
			m.mu.Lock()
			m.route = nil
			m.mu.Unlock()
			return nil
		}
		return fmt.Errorf("fetch current route: %w", err)
	}

	m.mu.Lock()
	m.route = route
	m.mu.Unlock()
	return nil
}

func (m *Model) Current() *entities.Route {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.route
}

func (m *Model) HasActiveRoute() bool {
	return m.Current() != nil
}

func (m *Model) NextStop() *entities.Stop {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.route == nil {
		return nil
	}
	return m.route.NextStop()
}

func (m *Model) Progress() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.route == nil {
		return 0
	}
	return m.route.Progress()
}

func (m *Model) StopByID(stopID string) *entities.Stop {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.route == nil {
		return nil
	}
	return m.route.StopByID(stopID)
}

func (m *Model) IsReadyToFinishStop(stopID string) bool {
	stop := m.StopByID(stopID)
	if stop == nil {
		return false
	}
	return stop.ReadyToComplete()
}

// ApplyScanResult - оптимистичный локальный патч: меняет статус ровно одной
// позиции манифеста ровно одного стопа. Нетронутые стопы сохраняют
// referential identity (дешевое отслеживание изменений на стороне UI).
// При отсутствии активного маршрута - no-op, возвращает nil.
func (m *Model) ApplyScanResult(stopID, packageID string, newStatus entities.PackageStatusType) *entities.Route {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.route == nil {
		return nil
	}

	m.route = patchRoute(m.route, stopID, packageID, newStatus)
	return m.route
}

func patchRoute(route *entities.Route, stopID, packageID string, newStatus entities.PackageStatusType) *entities.Route {
	patched := *route
	patched.Stops = make([]*entities.Stop, len(route.Stops))

	for i, stop := range route.Stops {
		if stop.ID != stopID {
			patched.Stops[i] = stop
			continue
		}

		patchedStop := *stop
		patchedStop.Dropoffs = patchCargoList(stop.Dropoffs, packageID, newStatus)
		patchedStop.Pickups = patchCargoList(stop.Pickups, packageID, newStatus)
		patched.Stops[i] = &patchedStop
	}

	return &patched
}

// patchCargoList возвращает исходный срез как есть, если позиции с таким id
// в нем нет - нетронутые манифесты не копируются.
func patchCargoList(items []entities.CargoItem, packageID string, newStatus entities.PackageStatusType) []entities.CargoItem {
	found := false
	for i := range items {
		if items[i].ID == packageID {
			found = true
			break
		}
	}
	if !found {
		return items
	}

	patched := make([]entities.CargoItem, len(items))
	copy(patched, items)
	for i := range patched {
		if patched[i].ID == packageID {
			patched[i].Status = newStatus
		}
	}
	return patched
}
