package routelifecycle

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"fasterpost/internal/entities"
	"fasterpost/internal/gateway/rest/courierapi"
)

// Controller ведет переходы всего маршрута: planned -> in_progress -> completed.
// cancelled - терминальное состояние бэкенда, отсюда недостижимое.
// Каждый мутирующий вызов закрыт busy-флагом от двойного сабмита;
// при ошибке состояние не меняется - следующая перезагрузка авторитетна.
type Controller struct {
	client    RouteClient
	progress  ProgressModel
	notifier  Notifier
	confirmer Confirmer

	busy atomic.Bool
}

func New(client RouteClient, progress ProgressModel, notifier Notifier, confirmer Confirmer) *Controller {
	return &Controller{
		client:    client,
		progress:  progress,
		notifier:  notifier,
		confirmer: confirmer,
	}
}

// Actions - какие действия доступны для текущего состояния маршрута.
type Actions struct {
	CanStart  bool
	CanFinish bool
	NextStop  *entities.Stop
}

func (c *Controller) Actions() Actions {
	route := c.progress.Current()
	if route == nil {
		return Actions{}
	}

	switch route.Status {
	case entities.RoutePlanned:
		return Actions{CanStart: true}
	case entities.RouteInProgress:
		next := c.progress.NextStop()
		if next == nil {
			return Actions{CanFinish: true}
		}
		return Actions{NextStop: next}
	default:
		// completed и cancelled терминальны
		return Actions{}
	}
}

// Start запускает смену. Только для маршрута в статусе planned;
// требует подтверждения пользователя, после успеха - полная перезагрузка.
func (c *Controller) Start(ctx context.Context) error {
	route := c.progress.Current()
	if route == nil {
		return ErrNoActiveRoute
	}
	if route.Status != entities.RoutePlanned {
		return ErrRouteNotStartable
	}

	if !c.confirmer.Confirm("Are you ready to start your shift?") {
		return nil
	}

	return c.submit(ctx, "start route", func(ctx context.Context) error {
		return c.client.StartRoute(ctx, route.ID)
	})
}

// Finish закрывает смену. Доступно только когда все стопы завершены.
func (c *Controller) Finish(ctx context.Context) error {
	route := c.progress.Current()
	if route == nil {
		return ErrNoActiveRoute
	}
	if route.Status != entities.RouteInProgress || c.progress.NextStop() != nil {
		return ErrRouteNotFinishable
	}

	if !c.confirmer.Confirm("Finish shift and submit report?") {
		return nil
	}

	return c.submit(ctx, "finish route", func(ctx context.Context) error {
		return c.client.FinishRoute(ctx, route.ID)
	})
}

func (c *Controller) submit(ctx context.Context, operation string, fn func(ctx context.Context) error) error {
	if !c.busy.CompareAndSwap(false, true) {
		return ErrActionInProgress
	}
	defer c.busy.Store(false)

	if err := fn(ctx); err != nil {
		c.notifier.Notify(fmt.Sprintf("Error: %s", errorMessage(err)))
		return fmt.Errorf("%s: %w", operation, err)
	}

	if err := c.progress.Reload(ctx); err != nil {
		c.notifier.Notify(fmt.Sprintf("Error refreshing route: %s", errorMessage(err)))
		return fmt.Errorf("reload after %s: %w", operation, err)
	}
	return nil
}

func errorMessage(err error) string {
	var reqErr *courierapi.RequestFailed
	if errors.As(err, &reqErr) {
		return reqErr.Message()
	}
	return err.Error()
}
