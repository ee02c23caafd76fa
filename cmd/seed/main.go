package main

import (
	"log"
	"os"

	"storefront-be/internal/model"
	"storefront-be/pkg/database"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Seeding Catalog...")

	categories := []model.Category{
		{Name: "Electronics", Slug: "electronics", Active: true},
		{Name: "Home & Kitchen", Slug: "home-kitchen", Active: true},
		{Name: "Books", Slug: "books", Active: true},
		{Name: "Outdoors", Slug: "outdoors", Active: true},
	}

	for i := range categories {
		seedCategory(db, &categories[i])
	}

	catBySlug := map[string]model.Category{}
	for _, c := range categories {
		var saved model.Category
		if err := db.Where("slug = ?", c.Slug).First(&saved).Error; err != nil {
			log.Fatalf("Error: Failed to reload category %s: %v", c.Slug, err)
		}
		catBySlug[c.Slug] = saved
	}

	products := []model.Product{
		{CategoryId: catBySlug["electronics"].Id, Name: "Wireless Earbuds", Slug: "wireless-earbuds", Description: "Compact true-wireless earbuds with 24h battery case.", SKU: "ELEC-0001", Price: 59.99, Currency: "USD", StockQty: 120, Active: true},
		{CategoryId: catBySlug["electronics"].Id, Name: "Mechanical Keyboard", Slug: "mechanical-keyboard", Description: "Tenkeyless board with hot-swappable switches.", SKU: "ELEC-0002", Price: 89.00, Currency: "USD", StockQty: 45, Active: true},
		{CategoryId: catBySlug["electronics"].Id, Name: "USB-C Charger 65W", Slug: "usb-c-charger-65w", Description: "GaN charger, dual port.", SKU: "ELEC-0003", Price: 34.50, Currency: "USD", StockQty: 200, Active: true},
		{CategoryId: catBySlug["home-kitchen"].Id, Name: "Pour-Over Coffee Kettle", Slug: "pour-over-coffee-kettle", Description: "Gooseneck kettle with thermometer lid.", SKU: "HOME-0001", Price: 42.00, Currency: "USD", StockQty: 60, Active: true},
		{CategoryId: catBySlug["home-kitchen"].Id, Name: "Cast Iron Skillet 10in", Slug: "cast-iron-skillet-10in", Description: "Pre-seasoned cast iron skillet.", SKU: "HOME-0002", Price: 27.99, Currency: "USD", StockQty: 80, Active: true},
		{CategoryId: catBySlug["books"].Id, Name: "The Pragmatic Gardener", Slug: "the-pragmatic-gardener", Description: "A practical guide to year-round gardening.", SKU: "BOOK-0001", Price: 18.95, Currency: "USD", StockQty: 35, Active: true},
		{CategoryId: catBySlug["outdoors"].Id, Name: "Ultralight Tent 2P", Slug: "ultralight-tent-2p", Description: "Two-person three-season tent, 1.8kg.", SKU: "OUTD-0001", Price: 249.00, Currency: "USD", StockQty: 12, Active: true},
		{CategoryId: catBySlug["outdoors"].Id, Name: "Insulated Water Bottle 1L", Slug: "insulated-water-bottle-1l", Description: "Keeps drinks cold 24h, hot 12h.", SKU: "OUTD-0002", Price: 21.00, Currency: "USD", StockQty: 150, Active: true},
	}

	for i := range products {
		seedProduct(db, &products[i])
	}

	log.Println("Success: Catalog seeding completed.")
}

func seedCategory(db *gorm.DB, c *model.Category) {
	var existing model.Category
	err := db.Where("slug = ?", c.Slug).First(&existing).Error
	if err == nil {
		log.Printf("Skip: Category %s already exists", c.Slug)
		return
	}
	if err != gorm.ErrRecordNotFound {
		log.Fatalf("Error: Failed to check category %s: %v", c.Slug, err)
	}
	if err := db.Create(c).Error; err != nil {
		log.Fatalf("Error: Failed to seed category %s: %v", c.Slug, err)
	}
	log.Printf("Seeded category: %s", c.Slug)
}

func seedProduct(db *gorm.DB, p *model.Product) {
	var existing model.Product
	err := db.Where("sku = ?", p.SKU).First(&existing).Error
	if err == nil {
		log.Printf("Skip: Product %s already exists", p.SKU)
		return
	}
	if err != gorm.ErrRecordNotFound {
		log.Fatalf("Error: Failed to check product %s: %v", p.SKU, err)
	}
	if err := db.Create(p).Error; err != nil {
		log.Fatalf("Error: Failed to seed product %s: %v", p.SKU, err)
	}
	log.Printf("Seeded product: %s", p.SKU)
}
