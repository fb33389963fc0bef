package main

import (
	"debtsvc/models"

	"github.com/shopspring/decimal"
)

// Client-facing read shapes. Conversion never mutates the source records,
// so converters are safe to call repeatedly on shared read-only data.

type CurrencyData struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
}

type CustomerData struct {
	ID      uint       `json:"id"`
	Name    string     `json:"name"`
	Surname string     `json:"surname"`
	Country string     `json:"country"`
	Email   string     `json:"email"`
	Debts   []DebtData `json:"debts"`
}

type DebtData struct {
	ID         uint            `json:"id"`
	Amount     decimal.Decimal `json:"amount"`
	DueDate    models.Date     `json:"dueDate"`
	CustomerID *uint           `json:"customerId"`
	Currency   *CurrencyData   `json:"currency"`
}

func toCurrencyData(c models.Currency) CurrencyData {
	return CurrencyData{ID: c.ID, Name: c.Name, Code: c.Code, Symbol: c.Symbol}
}

// toDebtData carries only the owning customer's identifier, not the full
// customer, so a customer's debt list cannot recurse back into it.
func toDebtData(d models.Debt) DebtData {
	data := DebtData{ID: d.ID, Amount: d.Amount, DueDate: d.DueDate}
	if d.CustomerID != nil {
		id := *d.CustomerID
		data.CustomerID = &id
	}
	if d.Currency.ID != 0 {
		cur := toCurrencyData(d.Currency)
		data.Currency = &cur
	}
	return data
}

// toCustomerData copies the customer's fields (password excluded) and maps
// the debt collection when it is loaded.
func toCustomerData(c models.Customer) CustomerData {
	data := CustomerData{
		ID:      c.ID,
		Name:    c.Name,
		Surname: c.Surname,
		Country: c.Country,
		Email:   c.Email,
	}
	if c.Debts != nil {
		data.Debts = make([]DebtData, 0, len(c.Debts))
		for _, d := range c.Debts {
			data.Debts = append(data.Debts, toDebtData(d))
		}
	}
	return data
}
