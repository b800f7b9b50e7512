package domain

const (
	GroupAdmin    = "admin"
	GroupCustomer = "customer"
)

// SupportedGroup reports whether g is one of the known user groups.
func SupportedGroup(g string) bool {
	return g == GroupAdmin || g == GroupCustomer
}

// User models an authenticated principal. Accounts are seeded out of band
// (cmd/create-user); there is no user-management API.
type User struct {
	UUID         string `json:"uuid" bson:"uuid"`
	Email        string `json:"email" bson:"email"`
	PasswordHash string `json:"-" bson:"password_hash"`
	IsActive     bool   `json:"is_active" bson:"is_active"`
	UserGroup    string `json:"user_group" bson:"user_group"`
}
