package service

import (
	"context"

	"agri-works/internal/model"
)

// dashboardService implements DashboardService on top of the list reads.
type dashboardService struct {
	products  ProductService
	enquiries EnquiryService
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(products ProductService, enquiries EnquiryService) DashboardService {
	return &dashboardService{
		products:  products,
		enquiries: enquiries,
	}
}

// Stats counts products and enquiries. A failed read counts as zero.
func (s *dashboardService) Stats(ctx context.Context) model.DashboardStats {
	products := s.products.List(ctx)
	enquiries := s.enquiries.List(ctx)

	stats := model.DashboardStats{
		TotalProducts:  len(products),
		TotalEnquiries: len(enquiries),
	}
	for _, p := range products {
		if p.Status == model.StatusActive {
			stats.ActiveProducts++
		}
	}
	for _, e := range enquiries {
		if e.Status == model.EnquiryNew {
			stats.NewEnquiries++
		}
	}
	return stats
}
