package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"

	"gastro-pos/models"
	"gastro-pos/store"
)

var validate = validator.New()

func GetMenuItems(menu *store.MenuStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  http.StatusOK,
			"message": "Menu items fetched successfully",
			"data":    menu.List(),
		})
	}
}

func CreateMenuItem(menu *store.MenuStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var item models.MenuItem
		if err := c.BindJSON(&item); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(&item); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}
		if item.Unit_price.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unit price must not be negative"})
			return
		}
		item.Item_id = 0
		created := menu.Add(item)
		c.JSON(http.StatusOK, created)
	}
}

func UpdateMenuItem(menu *store.MenuStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID, err := strconv.ParseInt(c.Param("item_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
			return
		}
		var item models.MenuItem
		if err := c.BindJSON(&item); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		item.Item_id = itemID
		if validationErr := validate.Struct(&item); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}
		if item.Unit_price.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unit price must not be negative"})
			return
		}
		if !menu.Update(item) {
			c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

func DeleteMenuItem(menu *store.MenuStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID, err := strconv.ParseInt(c.Param("item_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
			return
		}
		if !menu.Remove(itemID) {
			c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "menu item deleted"})
	}
}
