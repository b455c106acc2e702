package controllers

import (
	"net/http"

	"github.com/shramana263/neighbourlink/app/middleware"
	"github.com/shramana263/neighbourlink/app/services"

	"github.com/gorilla/mux"
)

// NotificationController handles notification endpoints
type NotificationController struct {
	notifications *services.NotificationService
}

// NewNotificationController creates a new NotificationController
func NewNotificationController(notifications *services.NotificationService) *NotificationController {
	return &NotificationController{notifications: notifications}
}

// Index handles GET /api/notifications
func (nc *NotificationController) Index(w http.ResponseWriter, r *http.Request) {
	page, perPage := pageParams(r)
	list, err := nc.notifications.List(middleware.CurrentUser(r).ID, page, perPage)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, map[string]interface{}{"notifications": list, "page": page})
}

// MarkRead handles POST /api/notifications/{id}/read
func (nc *NotificationController) MarkRead(w http.ResponseWriter, r *http.Request) {
	marked, err := nc.notifications.MarkRead(middleware.CurrentUser(r).ID, mux.Vars(r)["id"])
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, marked)
}
