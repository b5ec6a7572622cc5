package courierapi

import (
	"errors"
	"fmt"
)

// ErrNoActiveRoute - единственный различаемый "не-фатальный" случай:
// 404 на current означает что маршрута на сегодня просто нет.
var ErrNoActiveRoute = errors.New("no active route")

// RequestFailed - любой другой неуспешный ответ бэкенда или сетевая ошибка.
// Клиент не ретраит и отдает ошибку вызывающему как есть.
type RequestFailed struct {
	StatusCode    int
	ServerMessage string
}

func (e *RequestFailed) Error() string {
	if e.ServerMessage != "" {
		return fmt.Sprintf("courier api request failed: %d: %s", e.StatusCode, e.ServerMessage)
	}
	return fmt.Sprintf("courier api request failed: %d", e.StatusCode)
}

// Message - сообщение для показа пользователю: серверное если есть, иначе заглушка.
func (e *RequestFailed) Message() string {
	if e.ServerMessage != "" {
		return e.ServerMessage
	}
	return "server error"
}
