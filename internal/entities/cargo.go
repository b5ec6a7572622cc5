package entities

// CargoItem - позиция манифеста стопа (ссылка на посылку в dropoffs или pickups).
// Бэкенд отдает манифест в двух формах: плоской и вложенной {package: {...}};
// нормализация в одну внутреннюю форму происходит на границе API,
// Nested сохраняет исходную форму для обратной сериализации.
type CargoItem struct {
	ID         string
	PickupCode string
	Status     PackageStatusType
	Size       PackageSizeType
	Nested     bool
}

// DisplayCode - код для показа курьеру: pickup_code либо короткий суррогат из ID.
func (c CargoItem) DisplayCode() string {
	if c.PickupCode != "" {
		return c.PickupCode
	}

	short := c.ID
	if len(short) > 4 {
		short = short[:4]
	}
	return "PKG-" + short
}

type PackageStatusType string

const (
	PackageCreated       PackageStatusType = "created"
	PackagePlacedInStash PackageStatusType = "placed_in_stash"
	PackageInTransit     PackageStatusType = "in_transit"
	PackageInWarehouse   PackageStatusType = "in_warehouse"
	PackageDelivered     PackageStatusType = "delivered"
	PackagePickedUp      PackageStatusType = "picked_up"
)

func (s PackageStatusType) String() string {
	return string(s)
}

func IsValidPackageStatus(s PackageStatusType) bool {
	switch s {
	case PackageCreated, PackagePlacedInStash, PackageInTransit,
		PackageInWarehouse, PackageDelivered, PackagePickedUp:
		return true
	default:
		return false
	}
}

type PackageSizeType string

const (
	SizeSmall  PackageSizeType = "small"
	SizeMedium PackageSizeType = "medium"
	SizeLarge  PackageSizeType = "large"
)

func (s PackageSizeType) String() string {
	return string(s)
}

type ScanAction string

const (
	ActionDrop ScanAction = "drop"
	ActionPick ScanAction = "pick"
)

func (a ScanAction) String() string {
	return string(a)
}

func IsValidScanAction(a ScanAction) bool {
	return a == ActionDrop || a == ActionPick
}

// IsPackageCompleted - единственный источник истины о том, обработана ли позиция
// манифеста. Вычисляется из текущего статуса посылки каждый раз заново,
// никогда не хранится как отдельный флаг.
func IsPackageCompleted(status PackageStatusType, action ScanAction) bool {
	switch action {
	case ActionDrop:
		return status == PackagePlacedInStash ||
			status == PackageInWarehouse ||
			status == PackageDelivered
	case ActionPick:
		return status == PackageInTransit ||
			status == PackagePickedUp ||
			status == PackageDelivered
	default:
		return false
	}
}

type PackageModify struct {
	ID     *string
	Status *PackageStatusType
}
