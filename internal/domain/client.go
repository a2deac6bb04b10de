package domain

// Role роль, от имени которой выполняется операция
type Role int

const (
	RoleClient Role = iota
	RoleAdministrator
)

func (r Role) String() string {
	if r == RoleAdministrator {
		return "admin"
	}
	return "client"
}

// IsAdministrator администратор не ограничен лимитами и окном отмены
func (r Role) IsAdministrator() bool {
	return r == RoleAdministrator
}

// Client клиент заведения
type Client struct {
	ID      int64
	Name    string
	Email   string
	Phone   string // контакт для уведомлений
	Enabled bool   // выключенный клиент не может бронировать
}

// Resource бронируемый ресурс (поле, корт)
type Resource struct {
	ID   int64
	Name string
}
