package services

import (
	"grentify/internal/domain"
	"grentify/internal/repos"

	"github.com/google/uuid"
)

// CheckoutService turns a confirmed payment into a durable order and then
// clears the settled cart items. The order insert is the durability point:
// nothing is deleted until it has been acknowledged, and a later cleanup
// failure is reported back rather than rolling anything back.
type CheckoutService struct {
	Orders *repos.OrderRepo
	Carts  *repos.CartRepo

	// VerifyOwnership rejects payments referencing cart items that do not
	// belong to the paying user. The upstream service skipped this check;
	// here it is explicit and on by default.
	VerifyOwnership bool
}

func NewCheckoutService(orders *repos.OrderRepo, carts *repos.CartRepo, verifyOwnership bool) *CheckoutService {
	return &CheckoutService{Orders: orders, Carts: carts, VerifyOwnership: verifyOwnership}
}

// PaymentPayload is the confirmed payment plus the cart item ids it settles.
type PaymentPayload struct {
	UserEmail     string   `json:"userEmail"`
	UserName      string   `json:"userName"`
	Total         float64  `json:"total"`
	TransactionID string   `json:"transactionId"`
	CartItemIDs   []string `json:"cartItemsId"`
}

// CheckoutResult carries both phases separately so the caller can see a
// recorded order whose cart cleanup still needs a retry.
type CheckoutResult struct {
	OrderID      string `json:"orderId"`
	DeletedCount int64  `json:"deletedCount"`
	CleanupError string `json:"cleanupError,omitempty"`
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func (s *CheckoutService) Checkout(p PaymentPayload) (CheckoutResult, error) {
	if p.UserEmail == "" {
		return CheckoutResult{}, ErrMissingEmail
	}
	ids := dedupe(p.CartItemIDs)
	if len(ids) == 0 {
		return CheckoutResult{}, ErrEmptyCheckout
	}

	if s.VerifyOwnership {
		n, err := s.Carts.OwnedBy(ids, p.UserEmail)
		if err != nil {
			return CheckoutResult{}, err
		}
		if n != len(ids) {
			return CheckoutResult{}, ErrForeignCartItem
		}
	}

	order := domain.Order{
		ID:            uuid.NewString(),
		UserEmail:     p.UserEmail,
		UserName:      p.UserName,
		Total:         p.Total,
		Status:        "PAID",
		TransactionID: p.TransactionID,
	}
	// Durability point. On failure we abort before touching the cart: a
	// user must never lose cart contents without a matching recorded order.
	if err := s.Orders.Insert(order, ids); err != nil {
		return CheckoutResult{}, err
	}

	res := CheckoutResult{OrderID: order.ID}
	deleted, err := s.Carts.DeleteMany(ids)
	res.DeletedCount = deleted
	if err != nil {
		// The order stands; the caller retries cleanup on its own terms.
		res.CleanupError = err.Error()
	}
	return res, nil
}
