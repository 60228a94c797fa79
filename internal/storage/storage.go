package storage

import (
	"context"
	"errors"
	"log"

	"complaintdesk/backend/internal/config"
	"complaintdesk/backend/internal/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Storage is the persistence boundary consumed by the services. Lookup
// methods return (nil, nil) when the record does not exist so callers
// can tell "absent" apart from a store failure.
type Storage interface {
	FirstOrCreateCustomer(fullName, email string) (*models.Customer, error)
	FindCustomerByEmail(email string) (*models.Customer, error)
	ListCustomers() ([]models.Customer, error)
	CreateCustomer(customer *models.Customer) error

	CreateComplaint(complaint *models.Complaint) error
	GetComplaintByID(complaintID uint) (*models.Complaint, error)
	ListComplaints() ([]models.Complaint, error)
	UpdateComplaintStatus(complaintID uint, status string) error

	FindReview(complaintID, userID uint) (*models.Review, error)
	CreateReview(review *models.Review) error
	UpdateReviewFields(reviewID uint, fields map[string]interface{}) error

	GetUserByEmail(email string) (*models.User, error)
	CreateUser(user *models.User) error

	SubmissionAllowed(ip string) (bool, error)
}

type Service struct {
	DB    *gorm.DB
	Redis *redis.Client
	Ctx   context.Context
}

// NewStorageService Constructor
func NewStorageService(db *gorm.DB, rdb *redis.Client) *Service {
	return &Service{
		DB:    db,
		Redis: rdb,
		Ctx:   context.Background(),
	}
}

// Migrate creates or updates the tables for all models.
func (s *Service) Migrate() error {
	return s.DB.AutoMigrate(
		&models.Customer{},
		&models.Complaint{},
		&models.Review{},
		&models.User{},
	)
}

// FirstOrCreateCustomer looks a customer up by email and creates one with
// the given name when no record exists. The unique index on email makes
// repeated submissions from the same address idempotent.
func (s *Service) FirstOrCreateCustomer(fullName, email string) (*models.Customer, error) {
	var customer models.Customer

	defaults := models.Customer{
		FullName: fullName,
		Email:    email,
	}

	result := s.DB.Where("email = ?", email).FirstOrCreate(&customer, defaults)
	if result.Error != nil {
		log.Printf("ERROR: Failed to find or create customer %s: %v", email, result.Error)
		return nil, result.Error
	}

	if result.RowsAffected > 0 {
		log.Printf("INFO: New customer %d created (%s).", customer.ID, email)
	}

	return &customer, nil
}

func (s *Service) FindCustomerByEmail(email string) (*models.Customer, error) {
	var customer models.Customer

	err := s.DB.Where("email = ?", email).First(&customer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (s *Service) ListCustomers() ([]models.Customer, error) {
	var customers []models.Customer
	if err := s.DB.Order("created_at asc").Find(&customers).Error; err != nil {
		log.Printf("ERROR: Failed to list customers: %v", err)
		return nil, err
	}
	return customers, nil
}

func (s *Service) CreateCustomer(customer *models.Customer) error {
	if err := s.DB.Create(customer).Error; err != nil {
		log.Printf("ERROR: Failed to create customer %s: %v", customer.Email, err)
		return err
	}
	return nil
}

func (s *Service) CreateComplaint(complaint *models.Complaint) error {
	if complaint.Status == "" {
		complaint.Status = models.StatusOpen
	}

	if err := s.DB.Create(complaint).Error; err != nil {
		log.Printf("ERROR: Failed to save complaint for customer %d: %v", complaint.CustomerID, err)
		return err
	}
	return nil
}

// GetComplaintByID returns the complaint with its full review list.
func (s *Service) GetComplaintByID(complaintID uint) (*models.Complaint, error) {
	var complaint models.Complaint

	err := s.DB.Preload("Reviews").First(&complaint, complaintID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		log.Printf("ERROR: Failed to get complaint %d: %v", complaintID, err)
		return nil, err
	}
	return &complaint, nil
}

// ListComplaints returns every complaint with reviews preloaded, oldest
// first. Creation order is the documented default for the listing.
func (s *Service) ListComplaints() ([]models.Complaint, error) {
	var complaints []models.Complaint
	err := s.DB.Preload("Reviews").Order("created_at asc, id asc").Find(&complaints).Error
	if err != nil {
		log.Printf("ERROR: Failed to list complaints: %v", err)
		return nil, err
	}
	return complaints, nil
}

func (s *Service) UpdateComplaintStatus(complaintID uint, status string) error {
	result := s.DB.Model(&models.Complaint{}).
		Where("id = ?", complaintID).
		Update("status", status)
	if result.Error != nil {
		log.Printf("ERROR: Failed to update status of complaint %d: %v", complaintID, result.Error)
		return result.Error
	}
	return nil
}

// FindReview returns the review for the (complaint, user) pair, or nil
// when this staff member has not reviewed this complaint yet.
func (s *Service) FindReview(complaintID, userID uint) (*models.Review, error) {
	var review models.Review

	err := s.DB.Where("complaint_id = ? AND user_id = ?", complaintID, userID).
		First(&review).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (s *Service) CreateReview(review *models.Review) error {
	if err := s.DB.Create(review).Error; err != nil {
		log.Printf("ERROR: Failed to create review for complaint %d user %d: %v",
			review.ComplaintID, review.UserID, err)
		return err
	}
	return nil
}

// UpdateReviewFields writes only the given columns of one review.
func (s *Service) UpdateReviewFields(reviewID uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	result := s.DB.Model(&models.Review{}).
		Where("id = ?", reviewID).
		Updates(fields)
	if result.Error != nil {
		log.Printf("ERROR: Failed to update review %d: %v", reviewID, result.Error)
		return result.Error
	}
	return nil
}

func (s *Service) GetUserByEmail(email string) (*models.User, error) {
	var user models.User

	err := s.DB.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Service) CreateUser(user *models.User) error {
	if err := s.DB.Create(user).Error; err != nil {
		log.Printf("ERROR: Failed to create user %s: %v", user.Email, err)
		return err
	}
	return nil
}

// SubmissionAllowed enforces the per-IP rate limit on the public form
// with a counter in Redis that expires after the configured window.
func (s *Service) SubmissionAllowed(ip string) (bool, error) {
	key := "submissions:" + ip

	count, err := s.Redis.Incr(s.Ctx, key).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		if err := s.Redis.Expire(s.Ctx, key, config.SubmissionWindow).Err(); err != nil {
			return false, err
		}
	}
	return count <= config.SubmissionLimit, nil
}
