package services

import (
	"database/sql"
	"errors"

	"grentify/internal/domain"
	"grentify/internal/repos"

	"github.com/google/uuid"
)

type CatalogService struct {
	Gadgets *repos.GadgetRepo
}

func NewCatalogService(gadgets *repos.GadgetRepo) *CatalogService {
	return &CatalogService{Gadgets: gadgets}
}

// Search returns the full filtered catalog in the resolved sort order.
func (s *CatalogService) Search(q repos.GadgetQuery) ([]domain.Gadget, error) {
	return s.Gadgets.List(q)
}

// SidebarSample picks n gadgets at random; a smaller catalog yields
// everything it has.
func (s *CatalogService) SidebarSample(n int) ([]domain.Gadget, error) {
	if n < 1 {
		n = 4
	}
	return s.Gadgets.Sample(n)
}

func (s *CatalogService) HomePreview(n int) ([]domain.Gadget, error) {
	if n < 1 {
		n = 6
	}
	return s.Gadgets.Newest(n)
}

func (s *CatalogService) ByID(id string) (domain.Gadget, error) {
	g, err := s.Gadgets.Get(id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Gadget{}, ErrNotFound
	}
	return g, err
}

type GadgetPage struct {
	Gadgets     []domain.Gadget `json:"gadgets"`
	Total       int             `json:"total"`
	CurrentPage int             `json:"currentPage"`
	TotalPages  int             `json:"totalPages"`
}

type SummaryPage struct {
	Gadgets     []domain.GadgetSummary `json:"gadgets"`
	Total       int                    `json:"total"`
	CurrentPage int                    `json:"currentPage"`
	TotalPages  int                    `json:"totalPages"`
}

func totalPages(total, limit int) int {
	return (total + limit - 1) / limit
}

func currentPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// DashboardList serves the admin dashboard: one page of full gadget
// records, with the total counted under the same filter as the rows.
func (s *CatalogService) DashboardList(q repos.GadgetQuery) (GadgetPage, error) {
	items, total, err := s.Gadgets.Page(q)
	if err != nil {
		return GadgetPage{}, err
	}
	return GadgetPage{
		Gadgets:     items,
		Total:       total,
		CurrentPage: currentPage(q.Page),
		TotalPages:  totalPages(total, q.PageLimit()),
	}, nil
}

// OwnerList serves the lender's own-gadgets view, projected to the reduced
// field set. The owner email constraint rides on the query itself.
func (s *CatalogService) OwnerList(q repos.GadgetQuery) (SummaryPage, error) {
	items, total, err := s.Gadgets.PageSummaries(q)
	if err != nil {
		return SummaryPage{}, err
	}
	return SummaryPage{
		Gadgets:     items,
		Total:       total,
		CurrentPage: currentPage(q.Page),
		TotalPages:  totalPages(total, q.PageLimit()),
	}, nil
}

func (s *CatalogService) Create(g domain.Gadget) (string, error) {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	if err := s.Gadgets.Insert(g); err != nil {
		return "", err
	}
	return g.ID, nil
}

// Delete distinguishes a missing listing from a store failure.
func (s *CatalogService) Delete(id string) error {
	n, err := s.Gadgets.Delete(id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *CatalogService) Categories() ([]string, error) {
	return s.Gadgets.Categories()
}
