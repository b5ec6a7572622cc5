package courierapi

import "time"

type routeDTO struct {
	ID                string     `json:"id"`
	Status            string     `json:"status"`
	RouteType         string     `json:"route_type"`
	ScheduledDate     string     `json:"scheduled_date"`
	TotalDistance     float64    `json:"total_distance"`
	EstimatedDuration int64      `json:"estimated_duration"`
	StartedAt         *time.Time `json:"started_at"`
	CompletedAt       *time.Time `json:"completed_at"`
	Stops             []stopDTO  `json:"stops"`
}

type stopDTO struct {
	ID          string         `json:"id"`
	Order       int64          `json:"order"`
	Postmat     *locationDTO   `json:"postmat"`
	Warehouse   *locationDTO   `json:"warehouse"`
	CompletedAt *time.Time     `json:"completed_at"`
	Dropoffs    []cargoItemDTO `json:"dropoffs"`
	Pickups     []cargoItemDTO `json:"pickups"`
}

type locationDTO struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// cargoItemDTO принимает обе известные формы манифеста:
// плоскую {id, pickup_code, status, size} и вложенную {id, package: {...}}.
type cargoItemDTO struct {
	ID         string      `json:"id"`
	PickupCode string      `json:"pickup_code"`
	Status     string      `json:"status"`
	Size       string      `json:"size"`
	Package    *packageDTO `json:"package"`
}

type packageDTO struct {
	ID         string `json:"id"`
	PickupCode string `json:"pickup_code"`
	Status     string `json:"status"`
	Size       string `json:"size"`
}

type scanPackageRequest struct {
	PackageID string `json:"package_id"`
	StopID    string `json:"stop_id"`
	Action    string `json:"action"`
}

type scanPackageResponse struct {
	NewState string `json:"new_state"`
}

// errorResponse - бэкенд отдает сообщение либо в error, либо в detail.
type errorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail"`
}

func (e *errorResponse) message() string {
	if e.Error != "" {
		return e.Error
	}
	return e.Detail
}
