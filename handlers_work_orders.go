package main

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/smoothestguy/commandx_backend/models"
)

func createWorkOrderHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireAuth(c) {
			return
		}
		var input models.NewWorkOrder
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
			return
		}
		workOrder, err := models.CreateWorkOrder(c.Request.Context(), &input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, workOrder)
	}
}

func listWorkOrdersHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireAuth(c) {
			return
		}
		var projectId *int
		if v := c.Query("project_id"); v != "" {
			if id, err := strconv.Atoi(v); err == nil {
				projectId = &id
			}
		}
		workOrders, err := models.ListWorkOrders(c.Request.Context(), projectId)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, workOrders)
	}
}

func getWorkOrderHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireAuth(c) {
			return
		}
		id, ok := pathId(c)
		if !ok {
			return
		}
		workOrder, err := models.GetWorkOrder(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, workOrder)
	}
}

func updateWorkOrderHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireAuth(c) {
			return
		}
		id, ok := pathId(c)
		if !ok {
			return
		}
		var input models.NewWorkOrder
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
			return
		}
		workOrder, err := models.UpdateWorkOrder(c.Request.Context(), id, &input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, workOrder)
	}
}

func deleteWorkOrderHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireAuth(c) {
			return
		}
		id, ok := pathId(c)
		if !ok {
			return
		}
		workOrder, err := models.DeleteWorkOrder(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, workOrder)
	}
}

type assignItemsRequest struct {
	ItemIds []int `json:"itemIds"`
}

func assignItemsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireAuth(c) {
			return
		}
		id, ok := pathId(c)
		if !ok {
			return
		}
		var req assignItemsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
			return
		}
		result, err := models.AssignItemsToWorkOrder(c.Request.Context(), id, req.ItemIds)
		if err != nil {
			respondError(c, err)
			return
		}
		// Partial failure is a real outcome: 207 so callers surface the
		// per-item breakdown instead of assuming all-or-nothing.
		status := http.StatusOK
		if len(result.Failed) > 0 {
			status = http.StatusMultiStatus
		}
		c.JSON(status, result)
	}
}
