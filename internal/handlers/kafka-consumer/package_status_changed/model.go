package package_status_changed

type statusEvent struct {
	PackageID string `json:"package_id"`
	Status    string `json:"status"`
}
