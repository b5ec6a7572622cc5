package courierroute

import "github.com/google/uuid"

func isValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
