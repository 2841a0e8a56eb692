package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"truckrental-backend/internal/security"
	"truckrental-backend/internal/service"
	"truckrental-backend/internal/storage"
)

const uuidPattern = `[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth      service.AuthService
	Users     service.UserService
	Companies service.CompanyService
	Trucks    service.TruckService
	Bookings  service.BookingService
	Files     storage.FileStorage
	Tokens    security.TokenManager

	MaxFileSizeMB int64
}

// NewRouter wires all API routes under /api/v1.
func NewRouter(h Handlers) *mux.Router {
	root := mux.NewRouter()
	root.Use(LoggingMiddleware)

	api := root.PathPrefix("/api/v1").Subrouter()

	authHandler := NewAuthHandler(h.Auth)
	userHandler := NewUserHandler(h.Users)
	companyHandler := NewCompanyHandler(h.Companies)
	truckHandler := NewTruckHandler(h.Trucks)
	bookingHandler := NewBookingHandler(h.Bookings)
	fileHandler := NewFileHandler(h.Trucks, h.Files, h.MaxFileSizeMB)

	// Public routes
	api.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", authHandler.Refresh).Methods(http.MethodPost)
	api.HandleFunc("/trucks", truckHandler.Search).Methods(http.MethodGet)
	// {id} is constrained so /trucks/mine routes to the owner listing below.
	api.HandleFunc("/trucks/{id:"+uuidPattern+"}", truckHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/trucks/{id:"+uuidPattern+"}/images", truckHandler.ListImages).Methods(http.MethodGet)
	api.HandleFunc("/companies", companyHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/companies/{id}", companyHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/files/{key:.*}", fileHandler.Download).Methods(http.MethodGet)

	// Authenticated routes
	auth := NewAuthMiddleware(h.Tokens)
	private := api.NewRoute().Subrouter()
	private.Use(auth.Require)

	private.HandleFunc("/users/me", userHandler.Me).Methods(http.MethodGet)
	private.HandleFunc("/users", userHandler.List).Methods(http.MethodGet)
	private.HandleFunc("/users/{id}", userHandler.Get).Methods(http.MethodGet)
	private.HandleFunc("/users/{id}", userHandler.Update).Methods(http.MethodPatch)
	private.HandleFunc("/users/{id}", userHandler.Delete).Methods(http.MethodDelete)

	private.HandleFunc("/companies", companyHandler.Create).Methods(http.MethodPost)
	private.HandleFunc("/companies/{id}", companyHandler.Update).Methods(http.MethodPut)
	private.HandleFunc("/companies/{id}", companyHandler.Delete).Methods(http.MethodDelete)

	private.HandleFunc("/trucks", truckHandler.Create).Methods(http.MethodPost)
	private.HandleFunc("/trucks/mine", truckHandler.ListMine).Methods(http.MethodGet)
	private.HandleFunc("/trucks/{id}", truckHandler.Update).Methods(http.MethodPut)
	private.HandleFunc("/trucks/{id}", truckHandler.Delete).Methods(http.MethodDelete)
	private.HandleFunc("/trucks/{id}/images", fileHandler.UploadImage).Methods(http.MethodPost)
	private.HandleFunc("/trucks/{id}/images/{imageId}", truckHandler.DeleteImage).Methods(http.MethodDelete)
	private.HandleFunc("/trucks/{id}/documents", truckHandler.ListDocuments).Methods(http.MethodGet)
	private.HandleFunc("/trucks/{id}/documents", fileHandler.UploadDocument).Methods(http.MethodPost)
	private.HandleFunc("/trucks/{id}/documents/{documentId}", truckHandler.DeleteDocument).Methods(http.MethodDelete)

	private.HandleFunc("/bookings", bookingHandler.Create).Methods(http.MethodPost)
	private.HandleFunc("/bookings", bookingHandler.List).Methods(http.MethodGet)
	private.HandleFunc("/bookings/{id}", bookingHandler.Get).Methods(http.MethodGet)
	private.HandleFunc("/bookings/{id}/dates", bookingHandler.UpdateDates).Methods(http.MethodPatch)
	private.HandleFunc("/bookings/{id}/status", bookingHandler.TransitionStatus).Methods(http.MethodPatch)
	private.HandleFunc("/bookings/{id}/payment-status", bookingHandler.TransitionPaymentStatus).Methods(http.MethodPatch)
	private.HandleFunc("/bookings/{id}/cancel", bookingHandler.Cancel).Methods(http.MethodPost)
	private.HandleFunc("/bookings/{id}", bookingHandler.Delete).Methods(http.MethodDelete)

	return root
}
