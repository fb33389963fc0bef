package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"debtsvc/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if len(os.Args) < 6 {
		fmt.Println("usage: go run ./cmd/create_customer <name> <surname> <country> <email> <password>")
		os.Exit(2)
	}
	name, surname, country, email, password := os.Args[1], os.Args[2], os.Args[3], os.Args[4], os.Args[5]

	dsn := os.Getenv("DB_DSN")
	if strings.TrimSpace(dsn) == "" {
		log.Fatal("DB_DSN not set in environment")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}

	// check existing
	var existing models.Customer
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		fmt.Printf("customer %s already exists (id=%d)\n", email, existing.ID)
		os.Exit(0)
	}

	hpw, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("bcrypt failed: %v", err)
	}
	customer := models.Customer{
		Name:     name,
		Surname:  surname,
		Country:  country,
		Email:    email,
		Password: string(hpw),
	}
	if err := db.Create(&customer).Error; err != nil {
		log.Fatalf("failed to create customer: %v", err)
	}
	fmt.Printf("created customer %s id=%d\n", email, customer.ID)
}
