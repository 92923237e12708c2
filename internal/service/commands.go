package service

// RegisterCommand carries the fields of a registration request.
type RegisterCommand struct {
	Username string
	Email    string
	Password string
	Age      *int
}

type CreatePackageCommand struct {
	UserID int64
	Height float64
	Width  float64
	Length float64
	Weight float64
}

type CreateOrderCommand struct {
	UserID      int64
	PackageID   int64
	AddressFrom string
	AddressTo   string
}
