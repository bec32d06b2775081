package entities

// User is the commerce platform's identity record. The tracking core reads
// it once, when a driver profile is activated for the user.
type User struct {
	ID    int64
	Name  string
	Phone string
	Role  string
}
