package models

import "gorm.io/gorm"

// ShopItem is a cosmetic item purchasable with coins
type ShopItem struct {
	gorm.Model
	ItemID      string `gorm:"uniqueIndex;not null" json:"itemId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       uint   `json:"price"`
	Category    string `json:"category"`
	ImageURL    string `json:"imageUrl"`
	IsDeleted   bool   `gorm:"default:false" json:"-"`
}

// InventoryItem records a purchased shop item for a user
type InventoryItem struct {
	gorm.Model
	UserID     uint     `gorm:"index;not null" json:"userId"`
	ShopItemID uint     `gorm:"index;not null" json:"shopItemId"`
	IsDeleted  bool     `gorm:"default:false" json:"-"`
	User       User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	ShopItem   ShopItem `gorm:"foreignKey:ShopItemID;constraint:OnDelete:CASCADE" json:"item"`
}
