package user

type userDTO struct {
	ID        int64      `json:"id"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Role      string     `json:"role"`
	Billing   billingDTO `json:"billing"`
}

type billingDTO struct {
	Phone string `json:"phone"`
}
