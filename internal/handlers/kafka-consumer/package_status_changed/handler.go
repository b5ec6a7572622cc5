package package_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"fasterpost/internal/entities"
	statusservice "fasterpost/internal/service/packagestatus"
	"fasterpost/pkg/logger"
	"github.com/IBM/sarama"
)

type Handler struct {
	statusService            Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, statusService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		statusService:            statusService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("package.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("package.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event statusEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("package.status.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("package", event.PackageID),
		logger.NewField("status", event.Status),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("package.status.changed processing")

	status := entities.PackageStatusType(event.Status)
	packageModify := entities.PackageModify{
		ID:     &event.PackageID,
		Status: &status,
	}

	currentStatus, err := h.statusService.ProcessPackageStatusChange(ctx, packageModify)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("package.status.changed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, statusservice.ErrUndefinedStatus):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("package.status.changed handler unknown status for package")

		case errors.Is(err, statusservice.ErrPackageNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("package.status.changed handler unknown package")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("package.status.changed handler failed to process package")
		}
		sess.MarkMessage(message, "")
		return false
	}

	// новая дочка с актуальными полями
	msgLog = h.log.With(
		logger.NewField("package", event.PackageID),
		logger.NewField("event_status", event.Status),
		logger.NewField("current_status", currentStatus.String()),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("package.status.changed: processed")

	sess.MarkMessage(message, "")
	return false
}
