package domain

import "time"

type Role string

const (
	RolePartner Role = "partner"
	RoleLender  Role = "lender"
)

func (r Role) Valid() bool {
	return r == RolePartner || r == RoleLender
}

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	Role         Role      `db:"role"`
	OrgID        int       `db:"org_id"`
	CreatedAt    time.Time `db:"created_at"`
}

// Actor is the authenticated caller. OrgID is the partner id or the lender id depending on Role.
type Actor struct {
	UserID int
	Role   Role
	OrgID  int
}

func (a Actor) IsPartner() bool { return a.Role == RolePartner && a.OrgID > 0 }
func (a Actor) IsLender() bool  { return a.Role == RoleLender && a.OrgID > 0 }

type Lender struct {
	ID        int       `db:"id"`
	UserID    int       `db:"user_id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type Partner struct {
	ID        int       `db:"id"`
	UserID    int       `db:"user_id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type OfferCategory int

const (
	CategoryConsumerCredit OfferCategory = 1
	CategoryMortgage       OfferCategory = 2
	CategoryCarLoan        OfferCategory = 3
)

var categoryNames = map[OfferCategory]string{
	CategoryConsumerCredit: "consumer-credit",
	CategoryMortgage:       "mortgage",
	CategoryCarLoan:        "car-loan",
}

func (c OfferCategory) Valid() bool {
	_, ok := categoryNames[c]
	return ok
}

func (c OfferCategory) String() string {
	return categoryNames[c]
}

type Offer struct {
	ID          int           `db:"id"`
	Name        string        `db:"name"`
	Category    OfferCategory `db:"category"`
	MinScore    int           `db:"min_score"`
	MaxScore    int           `db:"max_score"`
	ActiveFrom  time.Time     `db:"active_from"`
	ActiveUntil time.Time     `db:"active_until"`
	LenderID    int           `db:"lender_id"`
	CreatedAt   time.Time     `db:"created_at"`
	UpdatedAt   time.Time     `db:"updated_at"`
}

// ActiveAt reports whether t falls inside the offer's activity window, bounds included.
func (o Offer) ActiveAt(t time.Time) bool {
	return !t.Before(o.ActiveFrom) && !t.After(o.ActiveUntil)
}

// Accepts reports whether score lies in [MinScore, MaxScore]. An inverted range accepts nothing.
func (o Offer) Accepts(score int) bool {
	if o.MinScore > o.MaxScore {
		return false
	}
	return o.MinScore <= score && score <= o.MaxScore
}

// MatchingMode holds the two independent matching permissions of a customer profile.
// Manual allows the owning partner to request matching through the API,
// Auto makes the profile eligible for the periodic sweep.
type MatchingMode struct {
	Manual bool `db:"manual_matching" json:"manual"`
	Auto   bool `db:"auto_matching" json:"auto"`
}

func DefaultMatchingMode() MatchingMode {
	return MatchingMode{Manual: true, Auto: true}
}

type Customer struct {
	ID             int          `db:"id"`
	Surname        string       `db:"surname"`
	GivenName      string       `db:"given_name"`
	Patronymic     string       `db:"patronymic"`
	BirthDate      time.Time    `db:"birth_date"`
	Phone          string       `db:"phone"`
	PassportNumber string       `db:"passport_number"`
	CreditScore    *int         `db:"credit_score"`
	PartnerID      int          `db:"partner_id"`
	Mode           MatchingMode `db:"-"`
	CreatedAt      time.Time    `db:"created_at"`
	UpdatedAt      time.Time    `db:"updated_at"`
}

type Application struct {
	ID         int               `db:"id"`
	CustomerID int               `db:"customer_id"`
	OfferID    int               `db:"offer_id"`
	Status     ApplicationStatus `db:"status"`
	CreatedAt  time.Time         `db:"created_at"`
	UpdatedAt  time.Time         `db:"updated_at"`
}

// ApplicationFilter narrows application listings to what an actor may see.
type ApplicationFilter struct {
	PartnerID int
	LenderID  int
	Status    ApplicationStatus
}
