package devapi

import (
	"sync"

	"github.com/luno/jettison/errors"
	"github.com/luno/jettison/j"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"moneybox/internal/domain"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrInvalidAmount      = errors.New("amount must be > 0")
)

type user struct {
	email        string
	passwordHash []byte
	firstName    string
	lastName     string
	products     []*product
}

type product struct {
	id           int64
	friendlyName string
	isCashBox    bool
	planValue    decimal.Decimal
	moneybox     decimal.Decimal
}

// Store keeps users and their products in memory. Safe for concurrent use.
type Store struct {
	mu    sync.Mutex
	users map[string]*user
}

// NewStore returns a Store seeded with the demo user from cfg.
func NewStore(cfg Config) (*Store, error) {
	s := &Store{users: make(map[string]*user)}
	err := s.AddUser(cfg.DemoEmail, cfg.DemoPassword, cfg.DemoFirstName, cfg.DemoLastName)
	if err != nil {
		return nil, err
	}
	s.users[cfg.DemoEmail].products = demoProducts()
	return s, nil
}

func demoProducts() []*product {
	return []*product{
		{
			id:           8043,
			friendlyName: "Stocks & Shares ISA",
			planValue:    decimal.RequireFromString("10526.09"),
			moneybox:     decimal.RequireFromString("570.00"),
		},
		{
			id:           8045,
			friendlyName: "General Investment Account",
			planValue:    decimal.RequireFromString("5180.99"),
			moneybox:     decimal.Zero,
		},
	}
}

// AddUser registers a user with no products, hashing the password.
func (s *Store) AddUser(email, password, firstName, lastName string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return errors.Wrap(err, "hash password")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[email] = &user{
		email:        email,
		passwordHash: hash,
		firstName:    firstName,
		lastName:     lastName,
	}
	return nil
}

// AddProduct gives the user an account. It replaces any product with the same id.
func (s *Store) AddProduct(email string, p domain.ProductResponse) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[email]
	if !ok {
		return errors.Wrap(ErrUserNotFound, "", j.MKV{"email": email})
	}
	if p.ID == nil {
		return errors.Wrap(ErrProductNotFound, "product id required")
	}
	np := &product{
		id:        *p.ID,
		isCashBox: p.IsCashBox,
		planValue: p.PlanValueOrZero(),
		moneybox:  p.MoneyboxOrZero(),
	}
	if p.Product != nil && p.Product.FriendlyName != nil {
		np.friendlyName = *p.Product.FriendlyName
	}
	for i, existing := range u.products {
		if existing.id == np.id {
			u.products[i] = np
			return nil
		}
	}
	u.products = append(u.products, np)
	return nil
}

// Authenticate checks the password and returns the user's login payload
// without the session.
func (s *Store) Authenticate(email, password string) (domain.User, error) {
	s.mu.Lock()
	u, ok := s.users[email]
	s.mu.Unlock()
	if !ok {
		return domain.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(u.passwordHash, []byte(password)); err != nil {
		return domain.User{}, ErrInvalidCredentials
	}
	return toUser(u), nil
}

// Products lists the user's accounts and their total plan value.
func (s *Store) Products(email string) (domain.AccountResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[email]
	if !ok {
		return domain.AccountResponse{}, ErrUserNotFound
	}
	total := decimal.Zero
	out := make([]domain.ProductResponse, 0, len(u.products))
	for _, p := range u.products {
		total = total.Add(p.planValue)
		out = append(out, toProductResponse(p))
	}
	return domain.AccountResponse{TotalPlanValue: &total, ProductResponses: out}, nil
}

// TopUp adds pence to the product's moneybox and plan value and returns the
// new moneybox balance.
func (s *Store) TopUp(email string, productID, pence int64) (decimal.Decimal, error) {
	if pence <= 0 {
		return decimal.Zero, ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[email]
	if !ok {
		return decimal.Zero, ErrUserNotFound
	}
	for _, p := range u.products {
		if p.id != productID {
			continue
		}
		amount := domain.PenceToPounds(pence)
		p.moneybox = p.moneybox.Add(amount)
		p.planValue = p.planValue.Add(amount)
		return p.moneybox, nil
	}
	return decimal.Zero, errors.Wrap(ErrProductNotFound, "", j.MKV{"product_id": productID})
}

func toUser(u *user) domain.User {
	first, last := u.firstName, u.lastName
	return domain.User{FirstName: &first, LastName: &last}
}

func toProductResponse(p *product) domain.ProductResponse {
	id, name := p.id, p.friendlyName
	plan, moneybox := p.planValue, p.moneybox
	return domain.ProductResponse{
		ID:        &id,
		PlanValue: &plan,
		Moneybox:  &moneybox,
		IsCashBox: p.isCashBox,
		Product:   &domain.Product{FriendlyName: &name},
	}
}
