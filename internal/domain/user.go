package domain

type Role string

const (
	RoleBorrower Role = "borrower"
	RoleLender   Role = "lender"
	RoleAdmin    Role = "admin"
)

// ParseRole maps a raw filter value to a known role. Unknown values are
// rejected rather than passed through to the store.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleBorrower, RoleLender, RoleAdmin:
		return Role(s), true
	}
	return "", false
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusBlocked  Status = "blocked"
)

func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPending, StatusApproved, StatusBlocked:
		return Status(s), true
	}
	return "", false
}

type User struct {
	ID        string `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	Email     string `db:"email" json:"email"`
	Phone     string `db:"phone" json:"phone"`
	Role      Role   `db:"role" json:"role"`
	Status    Status `db:"status" json:"status"`
	CreatedAt string `db:"created_at" json:"date"`
}
