package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Customer struct {
	ID    uint
	Email string
}

type Debt struct {
	ID         uint
	CustomerID *uint
	CurrencyID uint
	Amount     decimal.Decimal
	DueDate    time.Time
}

func main() {
	email := flag.String("email", "", "customer email")
	wait := flag.Int("wait", 15, "seconds to wait/poll")
	flag.Parse()
	if *email == "" {
		log.Fatal("--email is required")
	}
	dsn := os.Getenv("DB_DSN")
	if strings.TrimSpace(dsn) == "" {
		log.Fatal("DB_DSN not set in env")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	var cust Customer
	if err := db.Where("email = ?", *email).First(&cust).Error; err != nil {
		log.Fatalf("customer not found: %v", err)
	}
	deadline := time.Now().Add(time.Duration(*wait) * time.Second)
	for {
		var items []Debt
		err := db.Where("customer_id = ?", cust.ID).Order("id desc").Find(&items).Error
		if err == nil && len(items) > 0 {
			for _, d := range items {
				fmt.Printf("debt id=%d amount=%s due=%s currency_id=%d\n",
					d.ID, d.Amount.StringFixed(2), d.DueDate.Format("2006-01-02"), d.CurrencyID)
			}
			return
		}
		if time.Now().After(deadline) {
			log.Fatalf("no debts found for %s within %ds", *email, *wait)
		}
		time.Sleep(time.Second)
	}
}
