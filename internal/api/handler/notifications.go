package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"

	"github.com/topraklif/deals-api/internal/domain"
	"github.com/topraklif/deals-api/internal/usecases/notifying"
	"github.com/topraklif/deals-api/pkg/apiErrors"
)

type NotificationListResponse struct {
	Notifications []domain.Notification `json:"notifications"`
	UnreadCount   int                   `json:"unread_count"`
}

func ListNotifications(notifier notifying.Notifier) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, r, http.StatusOK, NotificationListResponse{
			Notifications: notifier.List(),
			UnreadCount:   notifier.UnreadCount(),
		})
	})
}

func MarkNotificationRead(notifier notifying.Notifier) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := notifier.MarkAsRead(id); err != nil {
			if errors.Is(err, notifying.ErrNotificationNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrNotificationNotFound, "Notification not found", nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Could not mark notification", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func ClearNotifications(notifier notifying.Notifier) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		notifier.ClearAll()
		w.WriteHeader(http.StatusNoContent)
	})
}
