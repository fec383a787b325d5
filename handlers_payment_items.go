package main

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/smoothestguy/commandx_backend/models"
)

func createPaymentItemHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireAuth(c) {
			return
		}
		var input models.NewPaymentItem
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
			return
		}
		item, err := models.CreatePaymentItem(c.Request.Context(), &input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

func listPaymentItemsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireAuth(c) {
			return
		}
		filter := models.PaymentItemFilter{}
		if v := c.Query("project_id"); v != "" {
			if id, err := strconv.Atoi(v); err == nil {
				filter.ProjectId = &id
			}
		}
		if v := c.Query("work_order_id"); v != "" {
			if id, err := strconv.Atoi(v); err == nil {
				filter.WorkOrderId = &id
			}
		}
		if v := c.Query("location_id"); v != "" {
			if id, err := strconv.Atoi(v); err == nil {
				filter.LocationId = &id
			}
		}
		if v := c.Query("category"); v != "" {
			filter.Category = &v
		}
		if v := c.Query("unassigned"); v == "true" {
			unassigned := true
			filter.Unassigned = &unassigned
		}
		items, err := models.ListPaymentItems(c.Request.Context(), filter)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

func getPaymentItemHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireAuth(c) {
			return
		}
		id, ok := pathId(c)
		if !ok {
			return
		}
		item, err := models.GetPaymentItem(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

func updatePaymentItemHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireAuth(c) {
			return
		}
		id, ok := pathId(c)
		if !ok {
			return
		}
		var input models.UpdatePaymentItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
			return
		}
		item, err := models.UpdatePaymentItem(c.Request.Context(), id, &input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

func deletePaymentItemHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireAuth(c) {
			return
		}
		id, ok := pathId(c)
		if !ok {
			return
		}
		item, err := models.DeletePaymentItem(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

func recordApprovalHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireAuth(c) {
			return
		}
		id, ok := pathId(c)
		if !ok {
			return
		}
		var input models.ApprovalDecision
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
			return
		}
		item, err := models.RecordApproval(c.Request.Context(), id, &input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, item)
	}
}
