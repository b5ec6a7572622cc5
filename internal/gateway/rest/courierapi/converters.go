package courierapi

import (
	"fmt"
	"time"

	"fasterpost/internal/entities"
)

const scheduledDateLayout = "2006-01-02"

func toDomain(dto *routeDTO) (*entities.Route, error) {
	if dto == nil {
		return nil, nil
	}

	scheduled, err := time.Parse(scheduledDateLayout, dto.ScheduledDate)
	if err != nil {
		return nil, fmt.Errorf("parse scheduled_date %q: %w", dto.ScheduledDate, err)
	}

	stops := make([]*entities.Stop, 0, len(dto.Stops))
	for i := range dto.Stops {
		stops = append(stops, toStopDomain(&dto.Stops[i]))
	}

	return &entities.Route{
		ID:                   dto.ID,
		Status:               entities.RouteStatusType(dto.Status),
		RouteType:            entities.RouteTypeKind(dto.RouteType),
		ScheduledDate:        scheduled,
		TotalDistanceKm:      dto.TotalDistance,
		EstimatedDurationMin: dto.EstimatedDuration,
		StartedAt:            dto.StartedAt,
		CompletedAt:          dto.CompletedAt,
		Stops:                stops,
	}, nil
}

func toStopDomain(dto *stopDTO) *entities.Stop {
	return &entities.Stop{
		ID:          dto.ID,
		Order:       dto.Order,
		Postmat:     toLocationDomain(dto.Postmat),
		Warehouse:   toLocationDomain(dto.Warehouse),
		CompletedAt: dto.CompletedAt,
		Dropoffs:    toCargoDomainList(dto.Dropoffs),
		Pickups:     toCargoDomainList(dto.Pickups),
	}
}

func toLocationDomain(dto *locationDTO) *entities.Location {
	if dto == nil {
		return nil
	}
	return &entities.Location{
		ID:        dto.ID,
		Name:      dto.Name,
		Address:   dto.Address,
		Latitude:  dto.Latitude,
		Longitude: dto.Longitude,
	}
}

func toCargoDomainList(dtos []cargoItemDTO) []entities.CargoItem {
	items := make([]entities.CargoItem, 0, len(dtos))
	for i := range dtos {
		items = append(items, normalizeCargo(&dtos[i]))
	}
	return items
}

// normalizeCargo сводит обе wire-формы манифеста к одной внутренней.
// Для вложенной формы поля берутся из package, id позиции остается внешним.
func normalizeCargo(dto *cargoItemDTO) entities.CargoItem {
	if dto.Package != nil {
		id := dto.ID
		if id == "" {
			id = dto.Package.ID
		}
		return entities.CargoItem{
			ID:         id,
			PickupCode: dto.Package.PickupCode,
			Status:     entities.PackageStatusType(dto.Package.Status),
			Size:       entities.PackageSizeType(dto.Package.Size),
			Nested:     true,
		}
	}

	return entities.CargoItem{
		ID:         dto.ID,
		PickupCode: dto.PickupCode,
		Status:     entities.PackageStatusType(dto.Status),
		Size:       entities.PackageSizeType(dto.Size),
	}
}
