package invoice

import (
	"context"

	"github.com/ArthurMoreiraS/OperlyService/internal/httperr"
	"github.com/ArthurMoreiraS/OperlyService/internal/models"

	domain "github.com/ArthurMoreiraS/OperlyService/internal/domain/invoice"
)

type ListInvoices struct {
	repo domain.Repository
}

func NewListInvoices(repo domain.Repository) *ListInvoices {
	return &ListInvoices{repo: repo}
}

func (uc *ListInvoices) Execute(
	ctx context.Context,
	businessID string,
	filter domain.ListFilter,
) ([]models.Invoice, int64, error) {

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}

	return uc.repo.ListInvoices(ctx, businessID, filter)
}

type GetInvoice struct {
	repo domain.Repository
}

func NewGetInvoice(repo domain.Repository) *GetInvoice {
	return &GetInvoice{repo: repo}
}

func (uc *GetInvoice) Execute(
	ctx context.Context,
	businessID string,
	invoiceID string,
) (*models.Invoice, error) {

	inv, err := uc.repo.GetInvoice(ctx, businessID, invoiceID)
	if err != nil {
		return nil, httperr.NotFound("invoice_not_found")
	}
	return inv, nil
}
