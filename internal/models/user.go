package models

// User is owned by the auth/profile side of the system; dispatch only needs
// a stable integer identity to key emergencies and activity records.
type User struct {
	ID          int    `json:"id"`
	Username    string `json:"username"`
	Password    string `json:"password,omitempty"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
}

// Public returns a copy safe to hand to API callers.
func (u User) Public() User {
	u.Password = ""
	return u
}
