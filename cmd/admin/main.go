package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"complaintdesk/backend/internal/models"
	"complaintdesk/backend/internal/storage"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	storageSvc := storage.NewStorageService(db, nil) // No redis needed for admin CLI
	if err := storageSvc.Migrate(); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	if len(os.Args) < 2 {
		fmt.Println("Usage: admin <command> [args]")
		fmt.Println("Commands: seed, create-user <name> <email> <password>")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "seed":
		if err := seed(storageSvc); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
		fmt.Println("Seed complete.")
	case "create-user":
		if len(os.Args) < 5 {
			fmt.Println("Usage: admin create-user <name> <email> <password>")
			os.Exit(1)
		}
		if err := createUser(storageSvc, os.Args[2], os.Args[3], os.Args[4]); err != nil {
			log.Fatalf("create-user failed: %v", err)
		}
		fmt.Println("User created.")
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		os.Exit(1)
	}
}

func createUser(s *storage.Service, name, email, password string) error {
	existing, err := s.GetUserByEmail(email)
	if err != nil {
		return err
	}
	if existing != nil {
		return fmt.Errorf("user %s already exists", email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.CreateUser(&models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	})
}

// seed creates the admin user from ADMIN_EMAIL/ADMIN_PASSWORD if absent,
// then a handful of sample customers and complaints. Re-running it is
// harmless: customers are matched by email and complaints by title.
func seed(s *storage.Service) error {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		return errors.New("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
	}

	existing, err := s.GetUserByEmail(adminEmail)
	if err != nil {
		return err
	}
	if existing == nil {
		if err := createUser(s, "Admin", adminEmail, adminPassword); err != nil {
			return err
		}
		fmt.Println("Admin user created")
	} else {
		fmt.Println("Admin user already exists")
	}

	plans := []struct {
		fullName string
		email    string
		items    []models.Complaint
	}{
		{
			fullName: "Juan Perez",
			email:    "juan.perez@example.com",
			items: []models.Complaint{
				{Title: "Delayed delivery", Body: "The order arrived later than promised.", Status: models.StatusOpen},
				{Title: "Defective product", Body: "The device does not power on out of the box.", Status: models.StatusInProgress},
			},
		},
		{
			fullName: "Maria Garcia",
			email:    "maria.garcia@example.com",
			items: []models.Complaint{
				{Title: "Duplicate charge", Body: "The card was charged twice for one order.", Status: models.StatusClosed},
			},
		},
		{
			fullName: "Luis Lopez",
			email:    "luis.lopez@example.com",
			items: []models.Complaint{
				{Title: "Warranty confusion", Body: "The coverage period is unclear.", Status: models.StatusOpen},
			},
		},
	}

	for _, plan := range plans {
		customer, err := s.FirstOrCreateCustomer(plan.fullName, plan.email)
		if err != nil {
			return err
		}

		for _, item := range plan.items {
			var count int64
			err := s.DB.Model(&models.Complaint{}).
				Where("title = ? AND customer_id = ?", item.Title, customer.ID).
				Count(&count).Error
			if err != nil {
				return err
			}
			if count > 0 {
				continue
			}

			item.CustomerID = customer.ID
			if err := s.CreateComplaint(&item); err != nil {
				return err
			}
		}
	}
	fmt.Println("Customers and complaints seeded")
	return nil
}
