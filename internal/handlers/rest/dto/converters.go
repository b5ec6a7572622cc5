package dto

import "fasterpost/internal/entities"

const scheduledDateLayout = "2006-01-02"

func FromRoute(route *entities.Route) Route {
	routeDTO := Route{
		ID:                route.ID,
		Status:            route.Status.String(),
		RouteType:         route.RouteType.String(),
		ScheduledDate:     route.ScheduledDate.Format(scheduledDateLayout),
		TotalDistance:     route.TotalDistanceKm,
		EstimatedDuration: route.EstimatedDurationMin,
		StartedAt:         route.StartedAt,
		CompletedAt:       route.CompletedAt,
		Stops:             make([]Stop, 0, len(route.Stops)),
	}

	for _, stop := range route.Stops {
		routeDTO.Stops = append(routeDTO.Stops, fromStop(stop))
	}

	return routeDTO
}

func FromRouteList(routes []entities.Route) []Route {
	result := make([]Route, 0, len(routes))
	for i := range routes {
		result = append(result, FromRoute(&routes[i]))
	}
	return result
}

func fromStop(stop *entities.Stop) Stop {
	return Stop{
		ID:          stop.ID,
		Order:       stop.Order,
		Postmat:     fromLocation(stop.Postmat),
		Warehouse:   fromLocation(stop.Warehouse),
		CompletedAt: stop.CompletedAt,
		Dropoffs:    fromCargoList(stop.Dropoffs),
		Pickups:     fromCargoList(stop.Pickups),
	}
}

func fromLocation(location *entities.Location) *Location {
	if location == nil {
		return nil
	}
	return &Location{
		ID:        location.ID,
		Name:      location.Name,
		Address:   location.Address,
		Latitude:  location.Latitude,
		Longitude: location.Longitude,
	}
}

func fromCargoList(items []entities.CargoItem) []CargoItem {
	result := make([]CargoItem, 0, len(items))
	for _, item := range items {
		result = append(result, fromCargoItem(item))
	}
	return result
}

// fromCargoItem сохраняет исходную форму позиции манифеста.
func fromCargoItem(item entities.CargoItem) CargoItem {
	if item.Nested {
		return CargoItem{
			ID: item.ID,
			Package: &Package{
				ID:         item.ID,
				PickupCode: item.PickupCode,
				Status:     item.Status.String(),
				Size:       item.Size.String(),
			},
		}
	}

	return CargoItem{
		ID:         item.ID,
		PickupCode: item.PickupCode,
		Status:     item.Status.String(),
		Size:       item.Size.String(),
	}
}
