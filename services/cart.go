package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"prestige-backend/models"
	"prestige-backend/repository"
	"prestige-backend/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	PaymentCash = "cash"
	PaymentCard = "card"
)

type CartService struct {
	store *repository.Store
}

func NewCartService(store *repository.Store) *CartService {
	return &CartService{store: store}
}

type CartResult struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	CartCount int64  `json:"cart_count"`
}

type CartView struct {
	Items          []models.CartItem `json:"items"`
	Total          float64           `json:"total"`
	FormattedTotal string            `json:"formatted_total"`
}

func (s *CartService) Add(ctx context.Context, userID, carID uuid.UUID) (CartResult, error) {
	car, err := s.store.FindCarByID(ctx, carID)
	if errors.Is(err, repository.ErrNotFound) {
		return CartResult{}, NotFound("Car not found")
	}
	if err != nil {
		return CartResult{}, Persistence(err)
	}
	if !car.IsAvailable() {
		return CartResult{}, BadRequest("This car is not available")
	}

	_, err = s.store.FindCartItem(ctx, userID, carID)
	if err == nil {
		return CartResult{Status: StatusExists, Message: "Car is already in your cart"}, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return CartResult{}, Persistence(err)
	}

	if err := s.store.CreateCartItem(ctx, &models.CartItem{UserID: userID, CarID: carID}); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return CartResult{Status: StatusExists, Message: "Car is already in your cart"}, nil
		}
		return CartResult{}, Persistence(err)
	}

	count, err := s.store.CountCartItems(ctx, userID)
	if err != nil {
		return CartResult{}, Persistence(err)
	}
	return CartResult{Status: StatusAdded, Message: "Added to cart", CartCount: count}, nil
}

func (s *CartService) Remove(ctx context.Context, userID, carID uuid.UUID) (CartResult, error) {
	item, err := s.store.FindCartItem(ctx, userID, carID)
	if errors.Is(err, repository.ErrNotFound) {
		return CartResult{}, NotFound("Item not found in cart")
	}
	if err != nil {
		return CartResult{}, Persistence(err)
	}

	if err := s.store.DeleteCartItem(ctx, item.ID); err != nil {
		return CartResult{}, Persistence(err)
	}

	count, err := s.store.CountCartItems(ctx, userID)
	if err != nil {
		return CartResult{}, Persistence(err)
	}
	return CartResult{Status: StatusRemoved, Message: "Removed from cart", CartCount: count}, nil
}

func (s *CartService) Count(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := s.store.CountCartItems(ctx, userID)
	if err != nil {
		return 0, Persistence(err)
	}
	return count, nil
}

func (s *CartService) View(ctx context.Context, userID uuid.UUID) (*CartView, error) {
	items, err := s.store.ListCartItemsByUser(ctx, userID)
	if err != nil {
		return nil, Persistence(err)
	}
	return newCartView(items), nil
}

func newCartView(items []models.CartItem) *CartView {
	if items == nil {
		items = []models.CartItem{}
	}
	total := cartTotal(items)
	return &CartView{
		Items:          items,
		Total:          total.InexactFloat64(),
		FormattedTotal: utils.FormatCurrency(total.InexactFloat64()),
	}
}

func cartTotal(items []models.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(decimal.NewFromFloat(item.Car.Price))
	}
	return total
}

type CheckoutInput struct {
	FullName      string
	Email         string
	Phone         string
	Address       string
	City          string
	Message       string
	PaymentMethod string
	CardNumber    string
	CardHolder    string
	CardExpiry    string
	CardCVV       string
}

// normalize trims every field and strips the spaces inside the card number.
func (in CheckoutInput) normalize() CheckoutInput {
	return CheckoutInput{
		FullName:      strings.TrimSpace(in.FullName),
		Email:         strings.TrimSpace(in.Email),
		Phone:         strings.TrimSpace(in.Phone),
		Address:       strings.TrimSpace(in.Address),
		City:          strings.TrimSpace(in.City),
		Message:       strings.TrimSpace(in.Message),
		PaymentMethod: strings.ToLower(strings.TrimSpace(in.PaymentMethod)),
		CardNumber:    utils.NormalizeCardNumber(strings.TrimSpace(in.CardNumber)),
		CardHolder:    strings.TrimSpace(in.CardHolder),
		CardExpiry:    strings.TrimSpace(in.CardExpiry),
		CardCVV:       strings.TrimSpace(in.CardCVV),
	}
}

func (in CheckoutInput) validate() error {
	if in.FullName == "" || in.Email == "" || in.Phone == "" || in.Address == "" || in.City == "" || in.PaymentMethod == "" {
		return Validation("Please fill in all required fields.")
	}
	if in.PaymentMethod == PaymentCard {
		if in.CardNumber == "" || in.CardHolder == "" || in.CardExpiry == "" || in.CardCVV == "" {
			return Validation("Please fill in all card details.")
		}
	}
	return nil
}

// Checkout records the cart as a purchase inquiry and empties the cart. Both writes
// share one transaction: if the inquiry cannot be stored the cart is left untouched.
// The CVV is checked for presence and then discarded.
func (s *CartService) Checkout(ctx context.Context, userID uuid.UUID, raw CheckoutInput) (*models.Inquiry, error) {
	items, err := s.store.ListCartItemsByUser(ctx, userID)
	if err != nil {
		return nil, Persistence(err)
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	in := raw.normalize()
	if err := in.validate(); err != nil {
		return nil, err
	}

	var inquiry *models.Inquiry
	err = s.store.Transaction(ctx, func(tx *repository.Store) error {
		// Re-read inside the transaction so the summary matches what gets removed.
		items, err := tx.ListCartItemsByUser(ctx, userID)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return ErrEmptyCart
		}

		names := carNames(items)
		inquiry = &models.Inquiry{
			UserID:          &userID,
			FullName:        in.FullName,
			Email:           in.Email,
			Phone:           in.Phone,
			VehicleInterest: names,
			Message:         orderMessage(names, cartTotal(items), in),
		}
		if err := tx.CreateInquiry(ctx, inquiry); err != nil {
			return err
		}

		ids := make([]uuid.UUID, len(items))
		for i, item := range items {
			ids[i] = item.ID
		}
		_, err = tx.DeleteCartItems(ctx, userID, ids)
		return err
	})
	if err != nil {
		if errors.Is(err, ErrEmptyCart) {
			return nil, ErrEmptyCart
		}
		return nil, Persistence(err)
	}
	return inquiry, nil
}

func carNames(items []models.CartItem) string {
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Car.Name
	}
	return strings.Join(names, ", ")
}

func paymentInfo(in CheckoutInput) string {
	if in.PaymentMethod != PaymentCard {
		return "Payment Method: Cash"
	}
	return fmt.Sprintf("Payment Method: Card\n- Card Number: %s\n- Card Holder: %s\n- Expiry: %s\n- CVV: ***",
		utils.MaskCardNumber(in.CardNumber), in.CardHolder, in.CardExpiry)
}

func orderMessage(names string, total decimal.Decimal, in CheckoutInput) string {
	notes := in.Message
	if notes == "" {
		notes = "None"
	}
	return fmt.Sprintf("Purchase request:\n- Vehicles: %s\n- Total: %s\n- Delivery Address: %s, %s\n- %s\n- Additional notes: %s",
		names,
		utils.FormatCurrency(total.InexactFloat64()),
		in.Address, in.City,
		paymentInfo(in),
		notes,
	)
}

// CheckoutPage returns the cart for the checkout form, or ErrEmptyCart.
func (s *CartService) CheckoutPage(ctx context.Context, userID uuid.UUID) (*CartView, error) {
	view, err := s.View(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(view.Items) == 0 {
		return nil, ErrEmptyCart
	}
	return view, nil
}

// OrderConfirmation returns a checkout inquiry to its owner only.
func (s *CartService) OrderConfirmation(ctx context.Context, inquiryID, userID uuid.UUID) (*models.Inquiry, error) {
	inquiry, err := s.store.FindInquiryByID(ctx, inquiryID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, NotFound("Order not found.")
	}
	if err != nil {
		return nil, Persistence(err)
	}
	if inquiry.UserID == nil || *inquiry.UserID != userID {
		return nil, Forbidden("Access denied.")
	}
	return inquiry, nil
}
