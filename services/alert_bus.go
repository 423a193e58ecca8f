package services

import (
	"fmt"
	"time"

	"glucolog/models"

	"gorm.io/gorm"
)

type alertDeps struct {
	db *gorm.DB
	rt *RealtimeHub
	ps *PushService
}

var _alert alertDeps

func InitAlertDeps(db *gorm.DB, rt *RealtimeHub, ps *PushService) {
	_alert = alertDeps{db: db, rt: rt, ps: ps}
}

// EmitAlert records an alert and fans it out over websocket and push. Safe to
// call from any service; it is a no-op before InitAlertDeps.
func EmitAlert(userID uint, typ, message string, analysisID *uint) {
	if _alert.db == nil {
		return
	}
	a := &models.Alert{UserID: userID, Type: typ, Message: message, AnalysisID: analysisID, CreatedAt: time.Now()}
	_ = _alert.db.Create(a).Error

	if _alert.rt != nil {
		_alert.rt.BroadcastAlert(userID, map[string]any{
			"kind":  "alert.created",
			"alert": a,
		})
	}
	if _alert.ps != nil {
		data := map[string]string{
			"type": typ, "alertId": fmt.Sprintf("%d", a.ID),
		}
		if analysisID != nil {
			data["analysisId"] = fmt.Sprintf("%d", *analysisID)
		}
		_alert.ps.PushToUser(userID, "Glucose Alert", message, data)
	}
}

// ListAlerts returns a user's most recent alerts, newest first.
func ListAlerts(db *gorm.DB, userID uint, limit int) ([]models.Alert, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	var alerts []models.Alert
	err := db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&alerts).Error
	return alerts, err
}
