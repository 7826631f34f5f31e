package controllers

import (
	"errors"
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type EntryController struct {
	ledger *services.LedgerService
	log    *zap.Logger
}

func NewEntryController(ledger *services.LedgerService, log *zap.Logger) *EntryController {
	return &EntryController{ledger: ledger, log: log}
}

// GET /entries — today's entries plus the running calorie total.
func (ec *EntryController) ListToday(c *gin.Context) {
	entries, err := ec.ledger.TodayEntries()
	if err != nil {
		ec.log.Error("Error fetching entries", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch entries"})
		return
	}

	var total float64
	for _, e := range entries {
		total += e.Calories
	}
	c.JSON(http.StatusOK, gin.H{
		"entries":       entries,
		"totalCalories": total,
	})
}

// GET /entries/all — full history, most recent first.
func (ec *EntryController) ListAll(c *gin.Context) {
	entries, err := ec.ledger.AllEntries()
	if err != nil {
		ec.log.Error("Error fetching entries", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch entries"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// POST /entries — persist a confirmed entry.
func (ec *EntryController) CreateEntry(c *gin.Context) {
	var candidate services.EntryCandidate
	if err := c.ShouldBindJSON(&candidate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Food name and calories are required"})
		return
	}

	entry, err := ec.ledger.SaveEntry(candidate)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Msg})
			return
		}
		ec.log.Error("Error saving entry", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save entry"})
		return
	}
	c.JSON(http.StatusOK, entry)
}

// DELETE /entries/delete — clears today's entries.
func (ec *EntryController) DeleteToday(c *gin.Context) {
	if err := ec.ledger.DeleteToday(); err != nil {
		ec.log.Error("Error deleting entries", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete entries"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
