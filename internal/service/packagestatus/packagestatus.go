package packagestatus

import (
	"context"
	"errors"
	"fmt"

	"fasterpost/internal/entities"
	"fasterpost/internal/repository/cargo"
)

type Service struct {
	repository    StateRepository
	statusFactory HandlerFactory
}

func New(repository StateRepository, statusFactory HandlerFactory) *Service {
	return &Service{
		repository:    repository,
		statusFactory: statusFactory,
	}
}

func (s *Service) ProcessPackageStatusChange(ctx context.Context, packageModify entities.PackageModify) (entities.PackageStatusType, error) {
	if packageModify.ID == nil || packageModify.Status == nil {
		return "", fmt.Errorf("package id and status are required")
	}

	// Верификация: посылка должна быть известна платформе
	current, err := s.repository.PackageStatus(ctx, *packageModify.ID)
	if err != nil {
		if errors.Is(err, cargo.ErrPackageNotFound) {
			return "", ErrPackageNotFound
		}
		return "", fmt.Errorf("get package state: %w", err)
	}

	// событие уже применено, повторная доставка из Kafka
	if current == *packageModify.Status {
		return current, nil
	}

	executeFn, err := s.statusFactory.GetHandler(*packageModify.Status)
	if err != nil {
		// необрабатываемые статусы просто пропускаем
		if errors.Is(err, ErrUndefinedStatus) {
			return current, nil
		}
		return current, err
	}

	if err := executeFn(ctx, *packageModify.ID); err != nil {
		return "", err
	}

	return *packageModify.Status, nil
}
