package store

import (
	"time"

	"github.com/jinzhu/gorm"

	"smartkitchen/internal/models"
)

// Seed ensures a demo restaurant with inventory, recipes, and sales
// history exists so the suggestion endpoints return data out of the box.
func Seed(db *gorm.DB, now time.Time) error {
	var count int64
	db.Model(&models.Restaurant{}).Count(&count)
	if count > 0 {
		return nil
	}

	restaurant := models.Restaurant{Name: "Spice Route", Address: "12 Market Lane", Phone: "+91 98100 00000"}
	if err := db.Create(&restaurant).Error; err != nil {
		return err
	}

	expiry := func(days int) *time.Time {
		t := now.AddDate(0, 0, days)
		return &t
	}

	items := []models.InventoryItem{
		{RestaurantID: restaurant.ID, Name: "Paneer", Category: string(models.CategoryDairy), Quantity: 8, Unit: string(models.UnitKilogram), MinQuantity: 3, Cost: 320, ExpiryDate: expiry(3)},
		{RestaurantID: restaurant.ID, Name: "Cream", Category: string(models.CategoryDairy), Quantity: 5, Unit: string(models.UnitLiter), MinQuantity: 2, Cost: 190, ExpiryDate: expiry(4)},
		{RestaurantID: restaurant.ID, Name: "Tomatoes", Category: string(models.CategoryVegetables), Quantity: 20, Unit: string(models.UnitKilogram), MinQuantity: 5, Cost: 50, ExpiryDate: expiry(5)},
		{RestaurantID: restaurant.ID, Name: "Spinach", Category: string(models.CategoryVegetables), Quantity: 6, Unit: string(models.UnitKilogram), MinQuantity: 2, Cost: 40, ExpiryDate: expiry(2)},
		{RestaurantID: restaurant.ID, Name: "Chicken", Category: string(models.CategoryMeat), Quantity: 12, Unit: string(models.UnitKilogram), MinQuantity: 5, Cost: 220, ExpiryDate: expiry(6)},
		{RestaurantID: restaurant.ID, Name: "Basmati Rice", Category: string(models.CategoryGrains), Quantity: 50, Unit: string(models.UnitKilogram), MinQuantity: 10, Cost: 120},
		{RestaurantID: restaurant.ID, Name: "Garam Masala", Category: string(models.CategorySpices), Quantity: 4, Unit: string(models.UnitKilogram), MinQuantity: 1, Cost: 450},
	}
	for i := range items {
		if err := db.Create(&items[i]).Error; err != nil {
			return err
		}
	}

	recipes := []models.Recipe{
		{RestaurantID: restaurant.ID, Name: "Palak Paneer", Category: string(models.CategoryMainCourse), Price: 280},
		{RestaurantID: restaurant.ID, Name: "Paneer Butter Masala", Category: string(models.CategoryMainCourse), Price: 320},
		{RestaurantID: restaurant.ID, Name: "Chicken Biryani", Category: string(models.CategoryRice), Price: 350},
		{RestaurantID: restaurant.ID, Name: "Tomato Soup", Category: string(models.CategoryStarters), Price: 150},
	}
	for i := range recipes {
		if err := db.Create(&recipes[i]).Error; err != nil {
			return err
		}
	}

	edges := []models.RecipeItem{
		{RecipeID: recipes[0].ID, InventoryItemID: items[3].ID, Quantity: 0.5, Unit: "kg"}, // spinach
		{RecipeID: recipes[0].ID, InventoryItemID: items[0].ID, Quantity: 0.3, Unit: "kg"}, // paneer
		{RecipeID: recipes[1].ID, InventoryItemID: items[0].ID, Quantity: 0.3, Unit: "kg"},
		{RecipeID: recipes[1].ID, InventoryItemID: items[1].ID, Quantity: 0.2, Unit: "liter"},
		{RecipeID: recipes[1].ID, InventoryItemID: items[2].ID, Quantity: 0.4, Unit: "kg"},
		{RecipeID: recipes[2].ID, InventoryItemID: items[4].ID, Quantity: 0.5, Unit: "kg"},
		{RecipeID: recipes[2].ID, InventoryItemID: items[5].ID, Quantity: 0.4, Unit: "kg"},
		{RecipeID: recipes[3].ID, InventoryItemID: items[2].ID, Quantity: 0.6, Unit: "kg"},
	}
	for i := range edges {
		if err := db.Create(&edges[i]).Error; err != nil {
			return err
		}
	}

	// A few weeks of sales so popularity scores are non-trivial.
	for day := 1; day <= 21; day++ {
		date := now.AddDate(0, 0, -day)
		sales := []models.SaleRecord{
			{RecipeID: recipes[0].ID, Date: date, QuantitySold: 3 + day%4},
			{RecipeID: recipes[1].ID, Date: date, QuantitySold: 5 + day%3},
			{RecipeID: recipes[2].ID, Date: date, QuantitySold: 8 + day%5},
			{RecipeID: recipes[3].ID, Date: date, QuantitySold: 1 + day%2},
		}
		for i := range sales {
			if err := db.Create(&sales[i]).Error; err != nil {
				return err
			}
		}
	}

	waste := models.WasteRecord{
		RestaurantID:    restaurant.ID,
		InventoryItemID: items[2].ID,
		Quantity:        3,
		Reason:          string(models.ReasonSpoiled),
	}
	return db.Create(&waste).Error
}
