package models

// User is the identity record stored in PostgreSQL. Identity fields are
// immutable after registration; PasswordHash never leaves the process.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Age          *int   `json:"age,omitempty"`
}

// Package is a shipment descriptor owned by a user.
type Package struct {
	ID     int64   `json:"id"`
	UserID int64   `json:"user_id"`
	Height float64 `json:"height"`
	Width  float64 `json:"width"`
	Length float64 `json:"length"`
	Weight float64 `json:"weight"`
}

// Order lives in the MongoDB orders collection and has a lifecycle
// independent of User and Package.
type Order struct {
	ID          string `json:"id" bson:"_id"`
	UserID      int64  `json:"user_id" bson:"user_id"`
	PackageID   int64  `json:"package_id" bson:"package_id"`
	AddressFrom string `json:"address_from" bson:"address_from"`
	AddressTo   string `json:"address_to" bson:"address_to"`
}
