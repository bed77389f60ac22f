package services

import (
	"context"
	"strings"

	"prestige-backend/models"
	"prestige-backend/repository"

	"github.com/google/uuid"
	"github.com/tealeg/xlsx"
)

const recentInquiryLimit = 10

type InquiryService struct {
	store *repository.Store
}

func NewInquiryService(store *repository.Store) *InquiryService {
	return &InquiryService{store: store}
}

type ContactInput struct {
	Name     string
	Email    string
	Phone    string
	Interest string
	Message  string
}

// SubmitContact stores a contact-form message. userID is set when the sender is logged in.
func (s *InquiryService) SubmitContact(ctx context.Context, in ContactInput, userID *uuid.UUID) (*models.Inquiry, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	message := strings.TrimSpace(in.Message)
	if name == "" || email == "" || message == "" {
		return nil, Validation("Please fill in all required fields.")
	}

	inquiry := &models.Inquiry{
		UserID:          userID,
		FullName:        name,
		Email:           email,
		Phone:           strings.TrimSpace(in.Phone),
		VehicleInterest: strings.TrimSpace(in.Interest),
		Message:         message,
	}
	if err := s.store.CreateInquiry(ctx, inquiry); err != nil {
		return nil, Persistence(err)
	}
	return inquiry, nil
}

// ListAll returns every inquiry, newest first.
func (s *InquiryService) ListAll(ctx context.Context) ([]models.Inquiry, error) {
	inquiries, err := s.store.ListInquiries(ctx, 0)
	if err != nil {
		return nil, Persistence(err)
	}
	return inquiries, nil
}

type Dashboard struct {
	TotalUsers      int64            `json:"total_users"`
	TotalCars       int64            `json:"total_cars"`
	TotalInquiries  int64            `json:"total_inquiries"`
	RecentInquiries []models.Inquiry `json:"recent_inquiries"`
}

func (s *InquiryService) Dashboard(ctx context.Context) (*Dashboard, error) {
	var (
		d   Dashboard
		err error
	)
	if d.TotalUsers, err = s.store.CountUsers(ctx); err != nil {
		return nil, Persistence(err)
	}
	if d.TotalCars, err = s.store.CountCars(ctx); err != nil {
		return nil, Persistence(err)
	}
	if d.TotalInquiries, err = s.store.CountInquiries(ctx); err != nil {
		return nil, Persistence(err)
	}
	if d.RecentInquiries, err = s.store.ListInquiries(ctx, recentInquiryLimit); err != nil {
		return nil, Persistence(err)
	}
	return &d, nil
}

var inquiryExportHeaders = []string{
	"ID", "Created", "Status", "Name", "Email", "Phone", "Vehicle Interest", "Message", "User ID", "Car ID",
}

// ExportWorkbook builds a spreadsheet of all inquiries, newest first.
func (s *InquiryService) ExportWorkbook(ctx context.Context) (*xlsx.File, error) {
	inquiries, err := s.store.ListInquiries(ctx, 0)
	if err != nil {
		return nil, Persistence(err)
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Inquiries")
	if err != nil {
		return nil, Persistence(err)
	}

	headerRow := sheet.AddRow()
	for _, h := range inquiryExportHeaders {
		headerRow.AddCell().SetValue(h)
	}

	for _, inq := range inquiries {
		row := sheet.AddRow()
		row.AddCell().SetValue(inq.ID.String())
		row.AddCell().SetValue(inq.CreatedAt.Format("2006-01-02 15:04:05"))
		row.AddCell().SetValue(string(inq.Status))
		row.AddCell().SetValue(inq.FullName)
		row.AddCell().SetValue(inq.Email)
		row.AddCell().SetValue(inq.Phone)
		row.AddCell().SetValue(inq.VehicleInterest)
		row.AddCell().SetValue(inq.Message)
		row.AddCell().SetValue(optionalID(inq.UserID))
		row.AddCell().SetValue(optionalID(inq.CarID))
	}
	return file, nil
}

func optionalID(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}
