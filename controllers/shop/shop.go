package shopController

import (
	"log"

	"skillup/database"
	"skillup/middleware"
	"skillup/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func GetShopItems(c *fiber.Ctx) error {
	db := database.Database.Db.Where("is_deleted = ?", false)

	if category := c.Query("category"); category != "" {
		db = db.Where("category = ?", category)
	}

	var items []models.ShopItem
	if err := db.Order("price asc").Find(&items).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch shop items!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Shop items fetched successfully!", items)
}

func CreateShopItem(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedShopItem").(*struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Price       int    `json:"price"`
		Category    string `json:"category"`
		ImageURL    string `json:"imageUrl"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	item := models.ShopItem{
		ItemID:      uuid.NewString(),
		Name:        reqData.Name,
		Description: reqData.Description,
		Price:       uint(reqData.Price),
		Category:    reqData.Category,
		ImageURL:    reqData.ImageURL,
	}

	if err := database.Database.Db.Create(&item).Error; err != nil {
		log.Printf("Error creating shop item: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create shop item!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Shop item created successfully!", item)
}

// PurchaseItem debits the user's coin balance and records the item in
// their inventory, all inside one transaction
func PurchaseItem(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	itemID := c.Locals("itemId").(string)

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	var item models.ShopItem
	if err := database.Database.Db.Where("item_id = ? AND is_deleted = ?", itemID, false).First(&item).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Shop item not found!", nil)
	}

	// Cosmetics are one-per-user
	var existing models.InventoryItem
	if err := database.Database.Db.Where("user_id = ? AND shop_item_id = ? AND is_deleted = ?", userID, item.ID, false).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Item already owned!", nil)
	}

	if user.Coins < item.Price {
		return middleware.JsonResponse(c, fiber.StatusPaymentRequired, false, "Not enough coins!", nil)
	}

	inventoryItem := models.InventoryItem{
		UserID:     userID,
		ShopItemID: item.ID,
	}

	tx := database.Database.Db.Begin()

	if err := tx.Model(&models.User{}).Where("id = ?", userID).
		Update("coins", user.Coins-item.Price).Error; err != nil {
		tx.Rollback()
		log.Printf("Error debiting coins for user %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to purchase item!", nil)
	}

	if err := tx.Create(&inventoryItem).Error; err != nil {
		tx.Rollback()
		log.Printf("Error creating inventory item for user %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to purchase item!", nil)
	}

	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Item purchased successfully!", fiber.Map{
		"item":           item,
		"remainingCoins": user.Coins - item.Price,
	})
}

func GetUserInventory(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var inventory []models.InventoryItem
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).
		Preload("ShopItem").
		Order("created_at desc").
		Find(&inventory).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch inventory!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Inventory fetched successfully!", inventory)
}
