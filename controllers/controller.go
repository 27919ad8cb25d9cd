package controllers

import (
	"net/http"

	"school-activities/models"
	"school-activities/utils"
)

const indexPage = "/static/index.html"

type Controller struct {
}

// Root sends browsers to the front-end entry page.
func (c Controller) Root() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, indexPage, http.StatusTemporaryRedirect)
	}
}

func (c Controller) Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseJSON(w, models.Health{Status: "ok"})
	}
}
