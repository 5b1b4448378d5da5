package entity

type TravelPackage struct {
	Base
	Name        string  `db:"name"`
	Description *string `db:"description"`
	Capacity    int     `db:"capacity"`
}
