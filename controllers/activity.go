package controllers

import (
	"net/http"

	"school-activities/models"
	"school-activities/store"
	"school-activities/utils"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Controller for activities
type ActivityController struct {
	Log logrus.FieldLogger
}

// Get all activities
func (ac ActivityController) GetActivities(catalog *store.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseJSON(w, catalog.GetAll())
	}
}

// Sign up a student for an activity
func (ac ActivityController) Signup(catalog *store.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		activityName := mux.Vars(r)["activity_name"]

		query := r.URL.Query()
		if !query.Has("email") {
			utils.RespondWithError(w, http.StatusUnprocessableEntity, models.Error{Detail: "Query parameter 'email' is required"})
			return
		}
		// a repeated parameter binds its last value
		emails := query["email"]
		email := emails[len(emails)-1]

		msg, err := catalog.Signup(activityName, email)
		switch {
		case err == nil:
		case errors.Is(err, store.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, models.Error{Detail: "Activity not found"})
			return
		case errors.Is(err, store.ErrAlreadyRegistered):
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Detail: "Student is already signed up for this activity"})
			return
		case errors.Is(err, store.ErrInvalidInput):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, models.Error{Detail: "Activity name is required"})
			return
		default:
			ac.Log.WithError(err).WithField("activity", activityName).Error("signup failed")
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Detail: "Failed to sign up"})
			return
		}

		ac.Log.WithField("activity", activityName).Info("student signed up")
		utils.ResponseJSON(w, msg)
	}
}
