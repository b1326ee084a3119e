package mongo

import "github.com/Beka01247/bistro-api/internal/repo"

var (
	_ repo.UserRepository    = (*UserRepository)(nil)
	_ repo.MenuRepository    = (*MenuRepository)(nil)
	_ repo.CartRepository    = (*CartRepository)(nil)
	_ repo.OrderRepository   = (*OrderRepository)(nil)
	_ repo.BookingRepository = (*BookingRepository)(nil)
	_ repo.ReviewRepository  = (*ReviewRepository)(nil)
)
