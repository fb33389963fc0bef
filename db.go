package main

import (
	"log"
	"os"
	"strings"

	"debtsvc/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var db *gorm.DB

var (
	currencies *CurrencyStore
	customers  *CustomerStore
	debts      *DebtStore
)

func initDB() {
	var err error
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN is not set. This project requires a Postgres DSN in DB_DSN.")
	}
	db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect postgres database:", err)
	}
	// Control schema migrations with env DB_AUTO_MIGRATE (default true). Any permission errors will be logged and ignored.
	shouldMigrate := true
	if v := os.Getenv("DB_AUTO_MIGRATE"); v != "" {
		lv := strings.ToLower(v)
		if lv == "false" || lv == "0" || lv == "no" {
			shouldMigrate = false
		}
	}
	if shouldMigrate {
		// Migrate models individually so a failure on one doesn't block others.
		// Currencies first so the debts FK can be applied safely.
		if err := db.AutoMigrate(&models.Currency{}); err != nil {
			log.Printf("migration warning (currencies): %v", err)
		}
		if err := db.AutoMigrate(&models.Customer{}); err != nil {
			log.Printf("migration warning (customers): %v", err)
		}
		if err := db.AutoMigrate(&models.Debt{}); err != nil {
			log.Printf("migration warning (debts): %v", err)
		}
	}

	initStores(db)
	seedCurrencies()
}

func initStores(handle *gorm.DB) {
	currencies = NewCurrencyStore(handle)
	customers = NewCustomerStore(handle)
	debts = NewDebtStore(handle, currencies, customers)
}

// seedCurrencies inserts the reference currency set. Each row is created
// only when its code is absent, so repeated startups are safe.
func seedCurrencies() {
	seeds := []models.Currency{
		{Name: "Euro", Code: "EUR", Symbol: "€"},
		{Name: "Dollar", Code: "USD", Symbol: "$"},
		{Name: "Lats", Code: "LVL", Symbol: "Ls"},
	}
	for _, cur := range seeds {
		var cnt int64
		db.Model(&models.Currency{}).Where("code = ?", cur.Code).Count(&cnt)
		if cnt == 0 {
			if _, err := currencies.Create(cur.Name, cur.Code, cur.Symbol); err != nil {
				log.Printf("failed to seed currency %s: %v", cur.Code, err)
			} else {
				log.Printf("Seeded currency %s (%s)", cur.Code, cur.Symbol)
			}
		}
	}
}
