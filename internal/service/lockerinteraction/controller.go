package lockerinteraction

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"fasterpost/internal/entities"
	"fasterpost/internal/gateway/rest/courierapi"
)

type Tab string

const (
	TabDropoff Tab = "dropoff"
	TabPickup  Tab = "pickup"
)

func (t Tab) Action() entities.ScanAction {
	if t == TabPickup {
		return entities.ActionPick
	}
	return entities.ActionDrop
}

type ItemState string

const (
	ItemUnscanned ItemState = "unscanned"
	ItemScanning  ItemState = "scanning"
	ItemCompleted ItemState = "completed"
)

// Controller ведет воркфлоу обслуживания одного стопа: вкладки
// вложить/забрать, сканы позиций, готовность и закрытие стопа.
// Живет пока открыт экран взаимодействия с постаматом.
//
// In-flight скан отслеживается одним id, а не множеством: бэкенд мутирует
// общие счетчики стопа, и реальный курьер сканирует по одному штрихкоду.
// Если когда-нибудь понадобится многоустройственный скан - заменить на set.
type Controller struct {
	mu        sync.Mutex
	client    RouteClient
	progress  ProgressModel
	notifier  Notifier
	confirmer Confirmer

	routeID string
	stopID  string

	activeTab  Tab
	scanningID string
	completing atomic.Bool
	bulkScan   atomic.Bool
}

func New(
	client RouteClient,
	progress ProgressModel,
	notifier Notifier,
	confirmer Confirmer,
	routeID string,
	stopID string,
) *Controller {
	return &Controller{
		client:    client,
		progress:  progress,
		notifier:  notifier,
		confirmer: confirmer,
		routeID:   routeID,
		stopID:    stopID,
		activeTab: TabDropoff,
	}
}

// SelectTab меняет только отображаемый список, состояние позиций не трогает.
func (c *Controller) SelectTab(tab Tab) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.activeTab = tab
}

func (c *Controller) ActiveTab() Tab {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.activeTab
}

func (c *Controller) StopID() string {
	return c.stopID
}

// ActiveItems - манифест активной вкладки, всегда свежий срез из модели.
func (c *Controller) ActiveItems() []entities.CargoItem {
	stop := c.progress.StopByID(c.stopID)
	if stop == nil {
		return nil
	}

	if c.ActiveTab() == TabPickup {
		return stop.Pickups
	}
	return stop.Dropoffs
}

// ItemState - производное состояние позиции: scanning пока запрос в полете,
// completed из предиката по статусу, иначе unscanned.
func (c *Controller) ItemState(packageID string) ItemState {
	c.mu.Lock()
	scanning := c.scanningID == packageID
	tab := c.activeTab
	c.mu.Unlock()

	if scanning {
		return ItemScanning
	}

	item, ok := c.findItem(tab, packageID)
	if ok && entities.IsPackageCompleted(item.Status, tab.Action()) {
		return ItemCompleted
	}
	return ItemUnscanned
}

// Scan отмечает одну позицию активной вкладки.
// Скан уже обработанной позиции - идемпотентный no-op без сетевого вызова.
// При ошибке статус не меняется, ошибка показывается пользователю.
func (c *Controller) Scan(ctx context.Context, packageID string) error {
	c.mu.Lock()
	tab := c.activeTab

	item, ok := c.findItem(tab, packageID)
	if !ok {
		c.mu.Unlock()
		return ErrItemNotFound
	}

	action := tab.Action()
	if entities.IsPackageCompleted(item.Status, action) {
		c.mu.Unlock()
		return nil
	}

	if c.scanningID == packageID {
		c.mu.Unlock()
		return nil
	}
	if c.scanningID != "" {
		c.mu.Unlock()
		return ErrScanInProgress
	}
	c.scanningID = packageID
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.scanningID = ""
		c.mu.Unlock()
	}()

	newStatus, err := c.client.ScanPackage(ctx, c.routeID, c.stopID, packageID, action)
	if err != nil {
		c.notifier.Notify(fmt.Sprintf("Scan failed: %s", errorMessage(err)))
		return fmt.Errorf("scan package %s: %w", packageID, err)
	}

	c.progress.ApplyScanResult(c.stopID, packageID, newStatus)
	return nil
}

// ScanAll последовательно сканирует все необработанные позиции активной
// вкладки: следующий вызов начинается только после завершения предыдущего.
// Параллельные сканы гонялись бы за общие счетчики стопа на бэкенде,
// а курьер физически сканирует по одному штрихкоду.
func (c *Controller) ScanAll(ctx context.Context) error {
	if !c.confirmer.Confirm("Scan ALL remaining packages in this list?") {
		return nil
	}

	if !c.bulkScan.CompareAndSwap(false, true) {
		return ErrActionInProgress
	}
	defer c.bulkScan.Store(false)

	action := c.ActiveTab().Action()

	var firstErr error
	for _, item := range c.ActiveItems() {
		if entities.IsPackageCompleted(item.Status, action) {
			continue
		}

		// Scan сам покажет ошибку; один неудачный скан не прерывает остальные.
		if err := c.Scan(ctx, item.ID); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// ConfirmStopCompletion закрывает стоп. Доступно только когда манифесты
// обработаны; после успеха модель перезагружается целиком.
func (c *Controller) ConfirmStopCompletion(ctx context.Context) error {
	if !c.progress.IsReadyToFinishStop(c.stopID) {
		return ErrStopNotReady
	}

	if !c.confirmer.Confirm("Confirm you have finished all tasks at this location?") {
		return nil
	}

	if !c.completing.CompareAndSwap(false, true) {
		return ErrActionInProgress
	}
	defer c.completing.Store(false)

	if err := c.client.CompleteStop(ctx, c.routeID, c.stopID); err != nil {
		c.notifier.Notify(fmt.Sprintf("Error completing stop: %s", errorMessage(err)))
		return fmt.Errorf("complete stop %s: %w", c.stopID, err)
	}

	if err := c.progress.Reload(ctx); err != nil {
		c.notifier.Notify(fmt.Sprintf("Error refreshing route: %s", errorMessage(err)))
		return fmt.Errorf("reload after stop completion: %w", err)
	}
	return nil
}

func (c *Controller) findItem(tab Tab, packageID string) (entities.CargoItem, bool) {
	stop := c.progress.StopByID(c.stopID)
	if stop == nil {
		return entities.CargoItem{}, false
	}

	items := stop.Dropoffs
	if tab == TabPickup {
		items = stop.Pickups
	}

	for _, item := range items {
		if item.ID == packageID {
			return item, true
		}
	}
	return entities.CargoItem{}, false
}

// errorMessage - серверное сообщение когда оно есть, иначе текст ошибки.
func errorMessage(err error) string {
	var reqErr *courierapi.RequestFailed
	if errors.As(err, &reqErr) {
		return reqErr.Message()
	}
	return err.Error()
}
