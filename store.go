package main

import (
	"errors"
	"fmt"
	"strings"

	"debtsvc/models"

	"gorm.io/gorm"
)

// NotFoundError reports that an identifier or code resolved to no record.
// Mapped to 400 at the HTTP boundary.
type NotFoundError struct{ msg string }

func (e *NotFoundError) Error() string { return e.msg }

func notFound(format string, args ...any) *NotFoundError {
	return &NotFoundError{msg: fmt.Sprintf(format, args...)}
}

// ExistsError reports a creation colliding with an existing unique attribute.
// Mapped to 409 at the HTTP boundary.
type ExistsError struct{ msg string }

func (e *ExistsError) Error() string { return e.msg }

func alreadyExists(format string, args ...any) *ExistsError {
	return &ExistsError{msg: fmt.Sprintf(format, args...)}
}

const defaultPageSize = 20

// Pageable carries the page/size/sort query parameters. Sort is either a
// bare field name or "field,desc".
type Pageable struct {
	Page int
	Size int
	Sort string
}

// apply adds offset, limit and an optional order clause to q. cols maps the
// exposed sort fields to database columns; an unknown field leaves the page
// in insertion order.
func (p Pageable) apply(q *gorm.DB, cols map[string]string) *gorm.DB {
	size := p.Size
	if size <= 0 {
		size = defaultPageSize
	}
	page := p.Page
	if page < 0 {
		page = 0
	}
	q = q.Offset(page * size).Limit(size)
	if clause, ok := orderClause(p.Sort, cols); ok {
		q = q.Order(clause)
	}
	return q
}

// orderClause turns a sort parameter ("field" or "field,desc") into an SQL
// order clause. Fields outside the allowlist are ignored.
func orderClause(sort string, cols map[string]string) (string, bool) {
	field, dir := sort, "asc"
	if i := strings.IndexByte(field, ','); i >= 0 {
		field, dir = field[:i], strings.ToLower(strings.TrimSpace(field[i+1:]))
	}
	col, ok := cols[field]
	if !ok {
		return "", false
	}
	if dir != "desc" {
		dir = "asc"
	}
	return col + " " + dir, true
}

// CurrencyStore reads and writes the currency reference set.
type CurrencyStore struct {
	db *gorm.DB
}

func NewCurrencyStore(db *gorm.DB) *CurrencyStore { return &CurrencyStore{db: db} }

func (s *CurrencyStore) Create(name, code, symbol string) (*models.Currency, error) {
	cur := models.Currency{Name: name, Code: code, Symbol: symbol}
	if err := s.db.Create(&cur).Error; err != nil {
		return nil, err
	}
	return &cur, nil
}

func (s *CurrencyStore) FindByCode(code string) (*models.Currency, error) {
	var cur models.Currency
	if err := s.db.Where("code = ?", code).First(&cur).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Cannot find currency for code: %s", code)
		}
		return nil, err
	}
	return &cur, nil
}

// CustomerStore owns customer records and, through the ownership constraint,
// their debt collections.
type CustomerStore struct {
	db *gorm.DB
}

func NewCustomerStore(db *gorm.DB) *CustomerStore { return &CustomerStore{db: db} }

var customerSortCols = map[string]string{
	"id":      "id",
	"name":    "name",
	"surname": "surname",
	"country": "country",
	"email":   "email",
}

func (s *CustomerStore) List(p Pageable) ([]models.Customer, error) {
	var items []models.Customer
	q := p.apply(s.db.Model(&models.Customer{}), customerSortCols)
	if err := q.Preload("Debts.Currency").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *CustomerStore) GetByID(id uint) (*models.Customer, error) {
	var c models.Customer
	if err := s.db.Preload("Debts.Currency").First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Customer not found. ID: %d", id)
		}
		return nil, err
	}
	return &c, nil
}

func (s *CustomerStore) Create(form CustomerForm) (*models.Customer, error) {
	var existing models.Customer
	err := s.db.Where("email = ?", form.Email).First(&existing).Error
	if err == nil {
		return nil, alreadyExists("Customer with email %s already exists", form.Email)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		// a failed lookup must not read as "no duplicate"
		return nil, err
	}
	hash, err := HashPassword(form.Password)
	if err != nil {
		return nil, err
	}
	c := models.Customer{
		Name:     form.Name,
		Surname:  form.Surname,
		Country:  form.Country,
		Email:    form.Email,
		Password: hash,
		Debts:    []models.Debt{},
	}
	if err := s.db.Create(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// Update overwrites every field from the form; the password is re-hashed on
// each update even when resubmitted unchanged. The update path does not
// re-check email uniqueness.
func (s *CustomerStore) Update(id uint, form CustomerForm) (*models.Customer, error) {
	c, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	hash, err := HashPassword(form.Password)
	if err != nil {
		return nil, err
	}
	c.Name = form.Name
	c.Surname = form.Surname
	c.Country = form.Country
	c.Email = form.Email
	c.Password = hash
	if err := s.db.Omit("Debts").Save(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

// Delete removes the customer and every debt it owns. The debt rows are
// deleted explicitly inside one transaction rather than left to the FK
// constraint, so the cascade holds even on a schema migrated without it.
func (s *CustomerStore) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("customer_id = ?", id).Delete(&models.Debt{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Customer{}, id).Error
	})
}

// DebtStore holds debt records. Writes resolve the currency code and
// customer id through the other stores before anything is persisted.
type DebtStore struct {
	db         *gorm.DB
	currencies *CurrencyStore
	customers  *CustomerStore
}

func NewDebtStore(db *gorm.DB, currencies *CurrencyStore, customers *CustomerStore) *DebtStore {
	return &DebtStore{db: db, currencies: currencies, customers: customers}
}

var debtSortCols = map[string]string{
	"id":         "id",
	"amount":     "amount",
	"dueDate":    "due_date",
	"customerId": "customer_id",
}

func (s *DebtStore) List(p Pageable) ([]models.Debt, error) {
	var items []models.Debt
	q := p.apply(s.db.Model(&models.Debt{}), debtSortCols)
	if err := q.Preload("Currency").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *DebtStore) GetByID(id uint) (*models.Debt, error) {
	var d models.Debt
	if err := s.db.Preload("Currency").First(&d, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Debt not found. ID: %d", id)
		}
		return nil, err
	}
	return &d, nil
}

func (s *DebtStore) Create(form DebtForm) (*models.Debt, error) {
	cur, err := s.currencies.FindByCode(form.Currency)
	if err != nil {
		return nil, err
	}
	cust, err := s.customers.GetByID(*form.CustomerID)
	if err != nil {
		return nil, err
	}
	cid := cust.ID
	d := models.Debt{
		Amount:     *form.Amount,
		DueDate:    *form.DueDate,
		CustomerID: &cid,
		CurrencyID: cur.ID,
	}
	if err := s.db.Omit("Currency").Create(&d).Error; err != nil {
		return nil, err
	}
	d.Currency = *cur
	return &d, nil
}

func (s *DebtStore) Update(id uint, form DebtForm) (*models.Debt, error) {
	d, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	cur, err := s.currencies.FindByCode(form.Currency)
	if err != nil {
		return nil, err
	}
	cust, err := s.customers.GetByID(*form.CustomerID)
	if err != nil {
		return nil, err
	}
	cid := cust.ID
	d.Amount = *form.Amount
	d.DueDate = *form.DueDate
	d.CustomerID = &cid
	d.CurrencyID = cur.ID
	if err := s.db.Omit("Currency").Save(d).Error; err != nil {
		return nil, err
	}
	d.Currency = *cur
	return d, nil
}

// Delete detaches the debt from its customer, then removes the row. The
// customer and currency records are never touched.
func (s *DebtStore) Delete(id uint) error {
	d, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if d.CustomerID != nil {
		if err := s.db.Model(d).Update("customer_id", nil).Error; err != nil {
			return err
		}
	}
	return s.db.Delete(&models.Debt{}, id).Error
}
