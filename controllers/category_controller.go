// file: controllers/category_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hemanthrajvardhan/ctf/dto"
	"github.com/hemanthrajvardhan/ctf/models"
	"github.com/hemanthrajvardhan/ctf/utils"
	"gorm.io/gorm"
)

// CategoryController 分类字典表维护，仅用于前端分组展示
type CategoryController struct {
	DB *gorm.DB
}

func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{DB: db}
}

// List 全部分类，按 type、name 排序
func (ctl *CategoryController) List(c *gin.Context) {
	var categories []models.Category
	if err := ctl.DB.Order("type ASC, name ASC").Find(&categories).Error; err != nil {
		utils.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// ListByType 按类型过滤
func (ctl *CategoryController) ListByType(c *gin.Context) {
	categoryType := c.Param("type")

	var categories []models.Category
	if err := ctl.DB.Where("type = ?", categoryType).
		Order("name ASC").Find(&categories).Error; err != nil {
		utils.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// Create 新增分类，type 缺省为 'category'
func (ctl *CategoryController) Create(c *gin.Context) {
	var req dto.CreateCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	category := models.Category{
		Name:  req.Name,
		Type:  req.Type,
		Color: req.Color,
	}
	if category.Type == "" {
		category.Type = "category"
	}

	if err := ctl.DB.Create(&category).Error; err != nil {
		utils.ServerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

// Delete 删除分类
func (ctl *CategoryController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid category ID")
		return
	}

	result := ctl.DB.Delete(&models.Category{}, id)
	if result.Error != nil {
		utils.ServerError(c, result.Error)
		return
	}
	if result.RowsAffected == 0 {
		utils.Error(c, http.StatusNotFound, "Category not found")
		return
	}
	utils.Message(c, "Category deleted successfully")
}
