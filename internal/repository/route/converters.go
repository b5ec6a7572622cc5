package route

import "fasterpost/internal/entities"

func ToDomain(r *RouteDB, stops []StopDB, cargo []CargoRowDB) *entities.Route {
	if r == nil {
		return nil
	}

	route := &entities.Route{
		ID:                   r.ID,
		CourierID:            r.CourierID,
		Status:               entities.RouteStatusType(r.Status),
		RouteType:            entities.RouteTypeKind(r.RouteType),
		ScheduledDate:        r.ScheduledDate,
		TotalDistanceKm:      r.TotalDistanceKm,
		EstimatedDurationMin: r.EstimatedDurationMin,
		StartedAt:            r.StartedAt,
		CompletedAt:          r.CompletedAt,
	}

	byStop := make(map[string][]CargoRowDB, len(stops))
	for _, row := range cargo {
		byStop[row.StopID] = append(byStop[row.StopID], row)
	}

	route.Stops = make([]*entities.Stop, 0, len(stops))
	for _, stopModel := range stops {
		route.Stops = append(route.Stops, toStopDomain(stopModel, byStop[stopModel.ID]))
	}

	return route
}

func ToDomainList(routes []RouteDB) []entities.Route {
	result := make([]entities.Route, 0, len(routes))
	for i := range routes {
		result = append(result, *ToDomain(&routes[i], nil, nil))
	}
	return result
}

func toStopDomain(s StopDB, cargo []CargoRowDB) *entities.Stop {
	stop := &entities.Stop{
		ID:          s.ID,
		Order:       s.StopOrder,
		CompletedAt: s.CompletedAt,
	}

	location := &entities.Location{
		ID:        s.LocationID,
		Name:      s.LocationName,
		Address:   s.LocationAddress,
		Latitude:  s.Latitude,
		Longitude: s.Longitude,
	}
	if s.LocationKind == entities.LocationWarehouse.String() {
		stop.Warehouse = location
	} else {
		stop.Postmat = location
	}

	for _, row := range cargo {
		item := toCargoDomain(row)
		if row.Direction == entities.ActionPick.String() {
			stop.Pickups = append(stop.Pickups, item)
		} else {
			stop.Dropoffs = append(stop.Dropoffs, item)
		}
	}

	return stop
}

func toCargoDomain(row CargoRowDB) entities.CargoItem {
	item := entities.CargoItem{
		ID:     row.PackageID,
		Status: entities.PackageStatusType(row.Status),
		Size:   entities.PackageSizeType(row.Size),
		Nested: row.Nested,
	}
	if row.PickupCode != nil {
		item.PickupCode = *row.PickupCode
	}
	return item
}
