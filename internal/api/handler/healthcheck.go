package handler

import (
	"net/http"
	"time"

	"github.com/topraklif/deals-api/pkg/log"
)

func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte(time.Now().String())); err != nil {
			log.L.WithError(err).Warn("error responding to healthcheck")
		}
	})
}
