package entities

import "time"

// Stop - один визит курьера в физическую локацию маршрута.
// Локация либо постамат, либо склад, никогда оба сразу.
type Stop struct {
	ID          string
	Order       int64
	Postmat     *Location
	Warehouse   *Location
	CompletedAt *time.Time
	Dropoffs    []CargoItem
	Pickups     []CargoItem
}

type Location struct {
	ID        string
	Name      string
	Address   string
	Latitude  float64
	Longitude float64
}

type LocationKind string

const (
	LocationPostmat   LocationKind = "postmat"
	LocationWarehouse LocationKind = "warehouse"
)

func (k LocationKind) String() string {
	return string(k)
}

func (s *Stop) LocationKind() LocationKind {
	if s.Postmat != nil {
		return LocationPostmat
	}
	return LocationWarehouse
}

// Location никогда не возвращает nil: стоп без локации в данных
// отдает пустую, чтобы вызывающим не приходилось проверять указатель.
func (s *Stop) Location() *Location {
	switch {
	case s.Postmat != nil:
		return s.Postmat
	case s.Warehouse != nil:
		return s.Warehouse
	default:
		return &Location{}
	}
}

// DropsLeft - количество посылок, которые еще нужно вложить на этом стопе.
func (s *Stop) DropsLeft() int {
	left := 0
	for _, item := range s.Dropoffs {
		if !IsPackageCompleted(item.Status, ActionDrop) {
			left++
		}
	}
	return left
}

// PicksLeft - количество посылок, которые еще нужно забрать на этом стопе.
func (s *Stop) PicksLeft() int {
	left := 0
	for _, item := range s.Pickups {
		if !IsPackageCompleted(item.Status, ActionPick) {
			left++
		}
	}
	return left
}

// ReadyToComplete - стоп можно закрывать только когда обе манифест-листа обработаны.
func (s *Stop) ReadyToComplete() bool {
	return s.DropsLeft() == 0 && s.PicksLeft() == 0
}
