package services

import (
	"grentify/internal/domain"
	"grentify/internal/repos"
)

// AdminService backs the administrative listing surface: paginated users
// and orders plus the status facet aggregation.
type AdminService struct {
	Users  *repos.UserRepo
	Orders *repos.OrderRepo
}

func NewAdminService(users *repos.UserRepo, orders *repos.OrderRepo) *AdminService {
	return &AdminService{Users: users, Orders: orders}
}

type UserPage struct {
	Users      []domain.User `json:"users"`
	TotalUsers int           `json:"totalUsers"`
}

type OrderPage struct {
	Orders      []domain.Order `json:"orders"`
	TotalOrders int            `json:"totalOrders"`
}

// ListUsers pages the user collection. The total is counted under exactly
// the same predicate as the returned rows.
func (s *AdminService) ListUsers(f repos.UserFilter, page, limit int) (UserPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	users, total, err := s.Users.Page(f, limit, (page-1)*limit)
	if err != nil {
		return UserPage{}, err
	}
	return UserPage{Users: users, TotalUsers: total}, nil
}

func (s *AdminService) ListOrders(page, limit int) (OrderPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	orders, total, err := s.Orders.Page(limit, (page-1)*limit)
	if err != nil {
		return OrderPage{}, err
	}
	return OrderPage{Orders: orders, TotalOrders: total}, nil
}

func (s *AdminService) UserStatusFacets() ([]domain.Facet, error) {
	return s.Users.StatusFacets()
}
