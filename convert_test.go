package main

import (
	"testing"
	"time"

	"debtsvc/models"

	"github.com/shopspring/decimal"
)

func TestToCurrencyDataCopiesFields(t *testing.T) {
	cur := models.Currency{ID: 3, Name: "Euro", Code: "EUR", Symbol: "€"}
	data := toCurrencyData(cur)
	if data.ID != 3 || data.Name != "Euro" || data.Code != "EUR" || data.Symbol != "€" {
		t.Fatalf("unexpected currency data: %+v", data)
	}
}

func TestToDebtDataCarriesCustomerIDOnly(t *testing.T) {
	cid := uint(7)
	d := models.Debt{
		ID:         11,
		Amount:     decimal.NewFromFloat(100.55),
		DueDate:    models.NewDate(2022, time.February, 15),
		CustomerID: &cid,
		CurrencyID: 1,
		Currency:   models.Currency{ID: 1, Name: "Euro", Code: "EUR", Symbol: "€"},
	}
	data := toDebtData(d)
	if data.ID != 11 {
		t.Fatalf("expected id 11 got %d", data.ID)
	}
	if !data.Amount.Equal(decimal.NewFromFloat(100.55)) {
		t.Fatalf("expected amount 100.55 got %s", data.Amount)
	}
	if data.DueDate.String() != "2022-02-15" {
		t.Fatalf("expected due date 2022-02-15 got %s", data.DueDate)
	}
	if data.CustomerID == nil || *data.CustomerID != 7 {
		t.Fatalf("expected customerId 7 got %v", data.CustomerID)
	}
	if data.Currency == nil || data.Currency.Code != "EUR" {
		t.Fatalf("expected currency EUR got %+v", data.Currency)
	}
}

func TestToDebtDataDetachedAndBareCurrency(t *testing.T) {
	d := models.Debt{ID: 5, Amount: decimal.NewFromInt(10)}
	data := toDebtData(d)
	if data.CustomerID != nil {
		t.Fatalf("expected nil customerId got %v", *data.CustomerID)
	}
	if data.Currency != nil {
		t.Fatalf("expected nil currency got %+v", data.Currency)
	}
}

func TestToCustomerDataExcludesPassword(t *testing.T) {
	c := models.Customer{
		ID:       2,
		Name:     "customer",
		Surname:  "surname",
		Country:  "country",
		Email:    "random@test.com",
		Password: "$2a$10$secret",
		Debts:    []models.Debt{{ID: 4, Amount: decimal.NewFromInt(1)}},
	}
	data := toCustomerData(c)
	if data.ID != 2 || data.Name != "customer" || data.Surname != "surname" ||
		data.Country != "country" || data.Email != "random@test.com" {
		t.Fatalf("unexpected customer data: %+v", data)
	}
	if len(data.Debts) != 1 || data.Debts[0].ID != 4 {
		t.Fatalf("expected one mapped debt, got %+v", data.Debts)
	}
}

func TestToCustomerDataNilDebtsStayNil(t *testing.T) {
	data := toCustomerData(models.Customer{ID: 1, Email: "a@test.com"})
	if data.Debts != nil {
		t.Fatalf("expected nil debts got %+v", data.Debts)
	}
}

func TestConversionDoesNotMutateSource(t *testing.T) {
	cid := uint(1)
	c := models.Customer{
		ID:    9,
		Email: "keep@test.com",
		Debts: []models.Debt{{ID: 1, CustomerID: &cid, Amount: decimal.NewFromInt(5)}},
	}
	_ = toCustomerData(c)
	_ = toCustomerData(c)
	if c.Email != "keep@test.com" || len(c.Debts) != 1 || *c.Debts[0].CustomerID != 1 {
		t.Fatalf("source mutated: %+v", c)
	}
}
