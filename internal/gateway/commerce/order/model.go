package order

type orderDTO struct {
	ID       int64       `json:"id"`
	Number   string      `json:"number"`
	Status   string      `json:"status"`
	Billing  billingDTO  `json:"billing"`
	Shipping shippingDTO `json:"shipping"`
	MetaData []metaEntry `json:"meta_data"`
}

type billingDTO struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

type shippingDTO struct {
	Address1 string `json:"address_1"`
	Address2 string `json:"address_2"`
	City     string `json:"city"`
	Postcode string `json:"postcode"`
}

type metaEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
