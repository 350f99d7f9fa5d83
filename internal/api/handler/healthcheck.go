package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/social-auth-broker/pkg/log"
)

const banner = "Social Auth Broker funcionando correctamente"

func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := w.Write([]byte(time.Now().String()))
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("error responding to healthcheck")
		}
	})
}

func HomeHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, map[string]string{"message": banner})
	})
}
