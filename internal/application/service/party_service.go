package service

import (
	"context"
	"time"

	"github.com/bizledger/bizledger-api/internal/domain/entity"
	"github.com/bizledger/bizledger-api/internal/domain/repository"
	"github.com/bizledger/bizledger-api/internal/infrastructure/events"
	"github.com/bizledger/bizledger-api/pkg/apperror"
	"github.com/bizledger/bizledger-api/pkg/pagination"
	"github.com/google/uuid"
)

// VendorService handles vendor-related operations
type VendorService struct {
	vendorRepo repository.VendorRepository
	publisher  events.Publisher
}

// NewVendorService creates a new vendor service
func NewVendorService(vendorRepo repository.VendorRepository, publisher events.Publisher) *VendorService {
	return &VendorService{vendorRepo: vendorRepo, publisher: publisher}
}

// VendorInput represents the vendor create/update input
type VendorInput struct {
	Name             string
	ContactPerson    *string
	Email            *string
	Phone            *string
	GSTIN            *string
	PaymentTermsDays int
}

// CreateVendor creates a new vendor
func (s *VendorService) CreateVendor(ctx context.Context, userID uuid.UUID, input *VendorInput) (*entity.Vendor, error) {
	vendor := &entity.Vendor{
		UserID:           userID,
		Name:             input.Name,
		ContactPerson:    input.ContactPerson,
		Email:            input.Email,
		Phone:            input.Phone,
		GSTIN:            input.GSTIN,
		PaymentTermsDays: input.PaymentTermsDays,
	}
	if vendor.PaymentTermsDays == 0 {
		vendor.PaymentTermsDays = 30
	}

	if err := s.vendorRepo.Create(ctx, vendor); err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, events.ChangeEvent{
		Entity: events.EntityVendor,
		Action: events.ActionCreated,
		ID:     vendor.ID,
		UserID: userID,
		At:     time.Now(),
	})
	return vendor, nil
}

// GetVendor retrieves a vendor by ID
func (s *VendorService) GetVendor(ctx context.Context, userID, id uuid.UUID) (*entity.Vendor, error) {
	vendor, err := s.vendorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vendor == nil || vendor.UserID != userID {
		return nil, apperror.NewNotFoundError("Vendor")
	}
	return vendor, nil
}

// UpdateVendor updates an existing vendor
func (s *VendorService) UpdateVendor(ctx context.Context, userID, id uuid.UUID, input *VendorInput) (*entity.Vendor, error) {
	vendor, err := s.GetVendor(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	vendor.Name = input.Name
	vendor.ContactPerson = input.ContactPerson
	vendor.Email = input.Email
	vendor.Phone = input.Phone
	vendor.GSTIN = input.GSTIN
	if input.PaymentTermsDays > 0 {
		vendor.PaymentTermsDays = input.PaymentTermsDays
	}

	if err := s.vendorRepo.Update(ctx, vendor); err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, events.ChangeEvent{
		Entity: events.EntityVendor,
		Action: events.ActionUpdated,
		ID:     vendor.ID,
		UserID: userID,
		At:     time.Now(),
	})
	return vendor, nil
}

// DeleteVendor deletes a vendor
func (s *VendorService) DeleteVendor(ctx context.Context, userID, id uuid.UUID) error {
	vendor, err := s.GetVendor(ctx, userID, id)
	if err != nil {
		return err
	}

	if err := s.vendorRepo.Delete(ctx, vendor.ID); err != nil {
		return err
	}

	s.publisher.Publish(ctx, events.ChangeEvent{
		Entity: events.EntityVendor,
		Action: events.ActionDeleted,
		ID:     vendor.ID,
		UserID: userID,
		At:     time.Now(),
	})
	return nil
}

// ListVendors lists vendors with pagination and search
func (s *VendorService) ListVendors(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Vendor], error) {
	vendors, total, err := s.vendorRepo.List(ctx, userID, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(vendors, pag), nil
}

// CustomerService handles customer-related operations
type CustomerService struct {
	customerRepo repository.CustomerRepository
	publisher    events.Publisher
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository, publisher events.Publisher) *CustomerService {
	return &CustomerService{customerRepo: customerRepo, publisher: publisher}
}

// CustomerInput represents the customer create/update input
type CustomerInput struct {
	Name          string
	ContactPerson *string
	Email         *string
	Phone         *string
	GSTIN         *string
	Address       *string
}

// CreateCustomer creates a new customer
func (s *CustomerService) CreateCustomer(ctx context.Context, userID uuid.UUID, input *CustomerInput) (*entity.Customer, error) {
	customer := &entity.Customer{
		UserID:        userID,
		Name:          input.Name,
		ContactPerson: input.ContactPerson,
		Email:         input.Email,
		Phone:         input.Phone,
		GSTIN:         input.GSTIN,
		Address:       input.Address,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, events.ChangeEvent{
		Entity: events.EntityCustomer,
		Action: events.ActionCreated,
		ID:     customer.ID,
		UserID: userID,
		At:     time.Now(),
	})
	return customer, nil
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, userID, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil || customer.UserID != userID {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// UpdateCustomer updates an existing customer
func (s *CustomerService) UpdateCustomer(ctx context.Context, userID, id uuid.UUID, input *CustomerInput) (*entity.Customer, error) {
	customer, err := s.GetCustomer(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	customer.Name = input.Name
	customer.ContactPerson = input.ContactPerson
	customer.Email = input.Email
	customer.Phone = input.Phone
	customer.GSTIN = input.GSTIN
	customer.Address = input.Address

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, events.ChangeEvent{
		Entity: events.EntityCustomer,
		Action: events.ActionUpdated,
		ID:     customer.ID,
		UserID: userID,
		At:     time.Now(),
	})
	return customer, nil
}

// DeleteCustomer deletes a customer
func (s *CustomerService) DeleteCustomer(ctx context.Context, userID, id uuid.UUID) error {
	customer, err := s.GetCustomer(ctx, userID, id)
	if err != nil {
		return err
	}

	if err := s.customerRepo.Delete(ctx, customer.ID); err != nil {
		return err
	}

	s.publisher.Publish(ctx, events.ChangeEvent{
		Entity: events.EntityCustomer,
		Action: events.ActionDeleted,
		ID:     customer.ID,
		UserID: userID,
		At:     time.Now(),
	})
	return nil
}

// ListCustomers lists customers with pagination and search
func (s *CustomerService) ListCustomers(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Customer], error) {
	customers, total, err := s.customerRepo.List(ctx, userID, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(customers, pag), nil
}
