package main

import (
	"log"

	_ "github.com/devicepro80/dhstore/config"
	"github.com/devicepro80/dhstore/database"
	"github.com/devicepro80/dhstore/internal/models"
	"github.com/devicepro80/dhstore/internal/user"
)

// Seeds the admin account, the default categories, and one stocked item
// together with the ledger entry that attributes its initial stock.
func main() {
	db, err := database.ConnectDB()
	if err != nil {
		log.Fatalf("Database connection error: %v", err)
	}
	if err := database.ProcessMigrations(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	hash, err := user.BcryptHasher{}.Hash([]byte("Admin@123"))
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	admin := models.User{Username: "admin"}
	if err := db.Where(&admin).
		Attrs(models.User{
			Email:        "admin@dhstore.rw",
			PasswordHash: string(hash),
			Role:         models.RoleAdmin,
		}).
		FirstOrCreate(&admin).Error; err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	for _, name := range []string{"Beverages", "Snacks", "Household", "Personal Care"} {
		category := models.Category{Name: name}
		if err := db.Where(&category).FirstOrCreate(&category).Error; err != nil {
			log.Fatalf("Failed to seed category %q: %v", name, err)
		}
	}

	var beverages models.Category
	if err := db.Where(&models.Category{Name: "Beverages"}).First(&beverages).Error; err != nil {
		log.Fatalf("Failed to load Beverages category: %v", err)
	}

	tea := models.Item{SKU: "TEA-001"}
	res := db.Where(&tea).Attrs(models.Item{
		Name:          "Black Tea 250g",
		Quantity:      50,
		ReorderLevel:  10,
		PurchasePrice: 2.0,
		SalePrice:     3.5,
		CategoryID:    &beverages.ID,
	}).FirstOrCreate(&tea)
	if res.Error != nil {
		log.Fatalf("Failed to seed item: %v", res.Error)
	}

	// Only attribute initial stock the first time the item is created.
	if res.RowsAffected > 0 {
		txn := models.InventoryTxn{
			ItemID:   tea.ID,
			Type:     models.TxnIn,
			Quantity: 50,
			Note:     "Initial stock",
		}
		if err := db.Create(&txn).Error; err != nil {
			log.Fatalf("Failed to seed initial stock transaction: %v", err)
		}
	}

	log.Println("Seed complete. Admin: admin / Admin@123")
}
