package cache

import "fmt"

const (
	KeyGeneralStats = "general-stats"
	KeyMenuPrefix   = "menu"
	KeyReviewPrefix = "reviews-"

	KeyUsersPrefix  = "all-users-"
	KeyOrdersPrefix = "all-orders-"
)

func AdminKey(email string) string {
	return "admin-" + email
}

func CartKey(email string) string {
	return "cart-" + email
}

func MenuKey(category string) string {
	if category == "" {
		return KeyMenuPrefix
	}
	return KeyMenuPrefix + "-" + category
}

func ReviewsKey(limit int) string {
	return fmt.Sprintf("%s%d", KeyReviewPrefix, limit)
}

func UsersPageKey(page, limit int) string {
	return fmt.Sprintf("%s%d-%d", KeyUsersPrefix, page, limit)
}

func OrdersPageKey(page, limit int) string {
	return fmt.Sprintf("%s%d-%d", KeyOrdersPrefix, page, limit)
}
