package entities

import "time"

// PackageEvent - запись актуализации статуса посылки (кто, где, когда).
// Жизненный цикл посылки ведется как журнал событий, текущий статус -
// материализованная последняя запись.
type PackageEvent struct {
	ID        string
	PackageID string
	Status    PackageStatusType
	CourierID string
	RouteID   string
	StopID    string
	CreatedAt time.Time
}
