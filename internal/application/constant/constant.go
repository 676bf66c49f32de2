package constant

// Ключи для структурированных логов
const (
	Error      = "error"
	RoomID     = "room_id"
	RoomName   = "room_name"
	RoomCode   = "room_code"
	Kind       = "kind"
	StoreDrv   = "store_driver"
	Migrations = "migrations"
)
