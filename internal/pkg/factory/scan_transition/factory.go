package scan_transition

import (
	"fmt"

	"fasterpost/internal/entities"
)

// ScanTransitionFactory вычисляет новый статус посылки по результату скана.
// Вложение на складе оставляет посылку в пути по магистрали (in_warehouse),
// вложение в постамат - финальная точка, посылка ждет получателя (delivered).
// Забор в любой локации сажает посылку в машину курьера (in_transit).
type ScanTransitionFactory struct{}

func New() *ScanTransitionFactory {
	return &ScanTransitionFactory{}
}

func (f *ScanTransitionFactory) NewStatus(action entities.ScanAction, kind entities.LocationKind) (entities.PackageStatusType, error) {
	switch action {
	case entities.ActionDrop:
		if kind == entities.LocationWarehouse {
			return entities.PackageInWarehouse, nil
		}
		return entities.PackageDelivered, nil
	case entities.ActionPick:
		return entities.PackageInTransit, nil
	default:
		return "", fmt.Errorf("unknown scan action: %s", action)
	}
}
