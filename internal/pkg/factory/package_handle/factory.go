package package_handle

import (
	"context"
	"fmt"

	"fasterpost/internal/entities"
	"fasterpost/internal/service/packagestatus"
)

// StatusHandlerFactory раздает обработчики для статусов, которые меняются
// вне курьерского цикла: отправитель вложил посылку, получатель забрал.
type StatusHandlerFactory struct {
	stateWriter packagestatus.StateWriter
}

func NewStatusHandlerFactory(stateWriter packagestatus.StateWriter) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		stateWriter: stateWriter,
	}
}

func (f *StatusHandlerFactory) GetHandler(status entities.PackageStatusType) (packagestatus.ExecuteFn, error) {
	switch status {
	case entities.PackagePlacedInStash:
		return f.placedInStashHandler, nil
	case entities.PackagePickedUp:
		return f.pickedUpHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", packagestatus.ErrUndefinedStatus, status)
	}
}

func (f *StatusHandlerFactory) placedInStashHandler(ctx context.Context, packageID string) error {
	err := f.stateWriter.ApplyStatus(ctx, packageID, entities.PackagePlacedInStash)
	if err != nil {
		return fmt.Errorf("apply placed_in_stash for package %s: %w", packageID, err)
	}
	return nil
}

func (f *StatusHandlerFactory) pickedUpHandler(ctx context.Context, packageID string) error {
	err := f.stateWriter.ApplyStatus(ctx, packageID, entities.PackagePickedUp)
	if err != nil {
		return fmt.Errorf("apply picked_up for package %s: %w", packageID, err)
	}
	return nil
}
