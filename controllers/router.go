package controllers

import (
	"net/http"

	"school-activities/store"
	"school-activities/utils"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// NewRouter wires every route of the API onto a fresh mux router.
func NewRouter(catalog *store.Catalog, assets http.FileSystem, logger logrus.FieldLogger) *mux.Router {
	controller := Controller{}
	activityController := ActivityController{Log: logger}
	router := mux.NewRouter()
	router.Use(utils.RequestLogger(logger))

	router.HandleFunc("/", controller.Root()).Methods("GET")
	router.HandleFunc("/healthz", controller.Health()).Methods("GET")

	router.HandleFunc("/activities", activityController.GetActivities(catalog)).Methods("GET")
	router.HandleFunc("/activities/{activity_name}/signup", activityController.Signup(catalog)).Methods("POST")

	router.Handle("/static", http.RedirectHandler("/static/", http.StatusMovedPermanently)).Methods("GET", "HEAD")
	router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(assets))).Methods("GET", "HEAD")

	return router
}
