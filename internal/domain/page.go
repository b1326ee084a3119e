package domain

// Page selects a slice of a listing. A zero Limit means everything.
type Page struct {
	Page  int
	Limit int
}

func (p Page) Skip() int64 {
	if p.Page <= 1 || p.Limit <= 0 {
		return 0
	}
	return int64((p.Page - 1) * p.Limit)
}
