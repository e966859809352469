package domain

// Gadget is a single rental listing. Category holds the filter value
// (slug-like), CategoryLabel the display name.
type Gadget struct {
	ID            string  `db:"id" json:"id"`
	Title         string  `db:"title" json:"title"`
	Description   string  `db:"description" json:"description"`
	Price         float64 `db:"price" json:"price"`
	Category      string  `db:"category" json:"category"`
	CategoryLabel string  `db:"category_label" json:"categoryLabel"`
	LenderEmail   string  `db:"lender_email" json:"lenderEmail"`
	CreatedAt     string  `db:"created_at" json:"date"`
}

// GadgetSummary is the reduced projection served to the owner dashboard.
type GadgetSummary struct {
	ID          string  `db:"id" json:"id"`
	Title       string  `db:"title" json:"title"`
	Price       float64 `db:"price" json:"price"`
	Category    string  `db:"category" json:"category"`
	LenderEmail string  `db:"lender_email" json:"lenderEmail"`
	CreatedAt   string  `db:"created_at" json:"date"`
}

// CartItem references a gadget weakly: the gadget may have been deleted
// since the item was added, and that is not checked at write time.
type CartItem struct {
	ID        string  `db:"id" json:"id"`
	UserEmail string  `db:"user_email" json:"userEmail"`
	GadgetID  string  `db:"gadget_id" json:"gadgetId"`
	Title     string  `db:"title" json:"title"`
	Price     float64 `db:"price" json:"price"`
	Days      int     `db:"days" json:"days"`
	Note      string  `db:"note" json:"note,omitempty"`
	CreatedAt string  `db:"created_at" json:"date"`
}

type Order struct {
	ID            string  `db:"id" json:"id"`
	UserEmail     string  `db:"user_email" json:"userEmail"`
	UserName      string  `db:"user_name" json:"userName"`
	Total         float64 `db:"total" json:"total"`
	Status        string  `db:"status" json:"status"`
	TransactionID string  `db:"transaction_id" json:"transactionId"`
	CreatedAt     string  `db:"created_at" json:"date"`
}

type Coupon struct {
	ID          string  `db:"id" json:"id"`
	Code        string  `db:"code" json:"code"`
	Discount    float64 `db:"discount" json:"discount"`
	Description string  `db:"description" json:"description"`
	CreatedAt   string  `db:"created_at" json:"date"`
}

// Facet is one independent count branch of the user status aggregation.
type Facet struct {
	Title    string `json:"title"`
	Count    int    `json:"count"`
	ColorTag string `json:"colorTag"`
}
