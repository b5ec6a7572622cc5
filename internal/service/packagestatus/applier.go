package packagestatus

import (
	"context"
	"fmt"
	"time"

	"fasterpost/internal/entities"
	"github.com/google/uuid"
)

// Applier пишет статус в package_state и дублирует его в журнал package_events.
// События извне платформы приходят без курьера и маршрута.
type Applier struct {
	repository StateRepository
}

func NewApplier(repository StateRepository) *Applier {
	return &Applier{
		repository: repository,
	}
}

func (a *Applier) ApplyStatus(ctx context.Context, packageID string, status entities.PackageStatusType) error {
	if err := a.repository.SetPackageStatus(ctx, packageID, status); err != nil {
		return fmt.Errorf("set package status: %w", err)
	}

	event := entities.PackageEvent{
		ID:        uuid.NewString(),
		PackageID: packageID,
		Status:    status,
		CreatedAt: time.Now().UTC(),
	}
	if err := a.repository.AppendEvent(ctx, event); err != nil {
		return fmt.Errorf("append package event: %w", err)
	}

	return nil
}
