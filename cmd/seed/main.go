package main

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"mercadito/internal/domain/entity"
	"mercadito/pkg/config"
	"mercadito/pkg/utils"
)

const (
	userCount     = 10
	storeCount    = 5
	productCount  = 30
	reviewCount   = 60
	questionCount = 40
)

var categoryNames = []string{
	"Electronics", "Computers", "Smartphones", "Home & Kitchen",
	"Sports & Outdoors", "Toys & Games", "Books", "Fashion",
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	users := seedUsers()
	categories := seedCategories()
	stores := seedStores(categories)
	products := seedProducts(categories, stores)
	reviews := seedReviews(users, products)
	questions := seedQuestions(users, products)

	writeCollection(cfg.DataDir, "users.json", users)
	writeCollection(cfg.DataDir, "categories.json", categories)
	writeCollection(cfg.DataDir, "stores.json", stores)
	writeCollection(cfg.DataDir, "products.json", products)
	writeCollection(cfg.DataDir, "reviews.json", reviews)
	writeCollection(cfg.DataDir, "questions.json", questions)

	log.Printf("Seeded %d users, %d categories, %d stores, %d products, %d reviews, %d questions into %s",
		len(users), len(categories), len(stores), len(products), len(reviews), len(questions), cfg.DataDir)
}

func seedUsers() []*entity.User {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}

	users := make([]*entity.User, 0, userCount)
	for i := 0; i < userCount; i++ {
		firstName := faker.FirstName()
		lastName := faker.LastName()

		role := entity.UserRoleCustomer
		if i == 0 {
			role = entity.UserRoleAdmin
		}

		now := time.Now()
		users = append(users, &entity.User{
			ID:              uuid.NewString(),
			Email:           faker.Email(),
			PasswordHash:    string(hash),
			FirstName:       firstName,
			LastName:        lastName,
			Nickname:        faker.Username(),
			Avatar:          fmt.Sprintf("https://i.pravatar.cc/150?u=%d", i),
			IsActive:        true,
			Role:            role,
			Phone:           faker.Phonenumber(),
			Address:         faker.GetRealAddress().Address,
			EmailVerifiedAt: &now,
			CreatedAt:       now,
		})
	}
	return users
}

func seedCategories() []*entity.Category {
	categories := make([]*entity.Category, 0, len(categoryNames))
	for _, name := range categoryNames {
		categories = append(categories, &entity.Category{
			ID:        uuid.NewString(),
			Name:      name,
			Slug:      utils.GenerateSlug(name),
			IsActive:  true,
			CreatedAt: time.Now(),
		})
	}

	// Computers and Smartphones hang off Electronics so the cascade and
	// orphaning paths have something to chew on.
	categories[1].ParentID = &categories[0].ID
	categories[2].ParentID = &categories[0].ID

	return categories
}

func seedStores(categories []*entity.Category) []*entity.Store {
	stores := make([]*entity.Store, 0, storeCount)
	for i := 0; i < storeCount; i++ {
		name := fmt.Sprintf("%s %s", faker.LastName(), faker.Word())

		refs := []entity.Ref[entity.Category]{
			entity.NewRef[entity.Category](categories[rand.Intn(len(categories))].ID),
		}

		verified := i%2 == 0
		var verifiedAt *time.Time
		if verified {
			now := time.Now()
			verifiedAt = &now
		}

		stores = append(stores, &entity.Store{
			ID:          uuid.NewString(),
			StoreCode:   fmt.Sprintf("ST-%04d", i+1),
			Name:        name,
			Slug:        utils.GenerateSlug(fmt.Sprintf("%s %d", name, i)),
			Description: faker.Sentence(),
			Categories:  refs,
			Logo:        fmt.Sprintf("https://picsum.photos/seed/logo-%d/200", i),
			Banner:      fmt.Sprintf("https://picsum.photos/seed/banner-%d/1200/300", i),
			IsActive:    true,
			IsVerified:  verified,
			VerifiedAt:  verifiedAt,
			CreatedAt:   time.Now(),
		})
	}
	return stores
}

func seedProducts(categories []*entity.Category, stores []*entity.Store) []*entity.Product {
	currencies := []entity.Currency{entity.CurrencyARS, entity.CurrencyUSD, entity.CurrencyEUR, entity.CurrencyBRL, entity.CurrencyMXN}
	conditions := []entity.Condition{entity.ConditionNew, entity.ConditionUsed}
	shippings := []entity.Shipping{entity.ShippingFree, entity.ShippingStandard, entity.ShippingPremium}

	products := make([]*entity.Product, 0, productCount)
	for i := 0; i < productCount; i++ {
		products = append(products, &entity.Product{
			ID:              uuid.NewString(),
			Title:           faker.Sentence(),
			Description:     faker.Sentence(),
			LongDescription: faker.Paragraph(),
			Price:           float64(rand.Intn(100000)) / 100,
			Currency:        currencies[rand.Intn(len(currencies))],
			Category:        entity.NewRef[entity.Category](categories[rand.Intn(len(categories))].ID),
			Store:           entity.NewRef[entity.Store](stores[rand.Intn(len(stores))].ID),
			Questions:       []entity.Ref[entity.Question]{},
			Images: []string{
				fmt.Sprintf("https://picsum.photos/seed/product-%d-a/600", i),
				fmt.Sprintf("https://picsum.photos/seed/product-%d-b/600", i),
			},
			Condition: conditions[rand.Intn(len(conditions))],
			Features:  []string{faker.Word(), faker.Word(), faker.Word()},
			Shipping:  shippings[rand.Intn(len(shippings))],
			Stock:     rand.Intn(50),
			CreatedAt: time.Now(),
		})
	}
	return products
}

func seedReviews(users []*entity.User, products []*entity.Product) []*entity.Review {
	reviews := make([]*entity.Review, 0, reviewCount)
	for i := 0; i < reviewCount; i++ {
		reviews = append(reviews, &entity.Review{
			ID:        uuid.NewString(),
			User:      entity.NewRef[entity.User](users[rand.Intn(len(users))].ID),
			Product:   entity.NewRef[entity.Product](products[rand.Intn(len(products))].ID),
			Rating:    rand.Intn(5) + 1,
			Comment:   faker.Sentence(),
			CreatedAt: time.Now(),
		})
	}
	return reviews
}

func seedQuestions(users []*entity.User, products []*entity.Product) []*entity.Question {
	questions := make([]*entity.Question, 0, questionCount)
	for i := 0; i < questionCount; i++ {
		product := products[rand.Intn(len(products))]

		question := &entity.Question{
			ID:         uuid.NewString(),
			Product:    entity.NewRef[entity.Product](product.ID),
			User:       entity.NewRef[entity.User](users[rand.Intn(len(users))].ID),
			Content:    faker.Sentence(),
			Answers:    []entity.Answer{},
			IsAnswered: false,
			CreatedAt:  time.Now(),
		}

		// Roughly half the questions arrive answered.
		if i%2 == 0 {
			question.Answers = append(question.Answers, entity.Answer{
				ID:        uuid.NewString(),
				Question:  question.ID,
				User:      entity.NewRef[entity.User](users[rand.Intn(len(users))].ID),
				Content:   faker.Sentence(),
				CreatedAt: time.Now(),
			})
			question.IsAnswered = true
		}

		product.Questions = append(product.Questions, entity.NewRef[entity.Question](question.ID))
		questions = append(questions, question)
	}
	return questions
}

func writeCollection[T any](dataDir, filename string, items []*T) {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal %s: %v", filename, err)
	}

	path := filepath.Join(dataDir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", path, err)
	}
}
