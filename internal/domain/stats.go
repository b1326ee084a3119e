package domain

type GeneralStats struct {
	Users      int64   `json:"users"`
	MenuItems  int64   `json:"menuItems"`
	Orders     int64   `json:"orders"`
	PaidOrders int64   `json:"paidOrders"`
	Revenue    float64 `json:"revenue"`
}
