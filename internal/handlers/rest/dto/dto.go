// Package dto описывает JSON-представление ресурсов курьерского API.
// Формы согласованы с терминалом курьера и не меняются без его обновления.
package dto

import "time"

type Route struct {
	ID                string     `json:"id"`
	Status            string     `json:"status"`
	RouteType         string     `json:"route_type"`
	ScheduledDate     string     `json:"scheduled_date"`
	TotalDistance     float64    `json:"total_distance"`
	EstimatedDuration int64      `json:"estimated_duration"`
	StartedAt         *time.Time `json:"started_at"`
	CompletedAt       *time.Time `json:"completed_at"`
	Stops             []Stop     `json:"stops"`
}

type Stop struct {
	ID          string      `json:"id"`
	Order       int64       `json:"order"`
	Postmat     *Location   `json:"postmat"`
	Warehouse   *Location   `json:"warehouse"`
	CompletedAt *time.Time  `json:"completed_at"`
	Dropoffs    []CargoItem `json:"dropoffs"`
	Pickups     []CargoItem `json:"pickups"`
}

type Location struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CargoItem сериализуется в одной из двух исторических форм манифеста:
// плоской либо вложенной {id, package: {...}}.
type CargoItem struct {
	ID         string   `json:"id"`
	PickupCode string   `json:"pickup_code,omitempty"`
	Status     string   `json:"status,omitempty"`
	Size       string   `json:"size,omitempty"`
	Package    *Package `json:"package,omitempty"`
}

type Package struct {
	ID         string `json:"id"`
	PickupCode string `json:"pickup_code"`
	Status     string `json:"status"`
	Size       string `json:"size"`
}

type ScanPackageRequest struct {
	PackageID string `json:"package_id"`
	StopID    string `json:"stop_id"`
	Action    string `json:"action"`
}

type ScanPackageResponse struct {
	NewState string `json:"new_state"`
}

type Error struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}
