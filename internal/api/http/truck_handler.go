package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"truckrental-backend/internal/domain"
	"truckrental-backend/internal/repository"
	"truckrental-backend/internal/service"
)

const dateLayout = "2006-01-02"

type TruckHandler struct {
	trucks service.TruckService
}

func NewTruckHandler(trucks service.TruckService) *TruckHandler {
	return &TruckHandler{trucks: trucks}
}

func (h *TruckHandler) Create(w http.ResponseWriter, r *http.Request) {
	var t domain.Truck
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if t.TruckNumber == "" || t.LicensePlate == "" || t.VIN == "" {
		badRequest(w, "truckNumber, licensePlate and vin are required")
		return
	}

	if err := h.trucks.Create(r.Context(), actorFrom(r), &t); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, t)
}

func (h *TruckHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		badRequest(w, "invalid truck id")
		return
	}

	t, err := h.trucks.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (h *TruckHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		badRequest(w, "invalid truck id")
		return
	}

	var t domain.Truck
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	t.ID = id

	if err := h.trucks.Update(r.Context(), actorFrom(r), &t); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (h *TruckHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		badRequest(w, "invalid truck id")
		return
	}

	if err := h.trucks.Delete(r.Context(), actorFrom(r), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *TruckHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	trucks, err := h.trucks.ListByOwner(r.Context(), actorFrom(r).UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, trucks)
}

// Search filters available trucks; start_date and end_date narrow results to
// trucks free over the window.
func (h *TruckHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	in := service.TruckSearchInput{
		Filter: repository.TruckSearchFilter{
			TruckType: domain.TruckType(q.Get("truck_type")),
			Location:  q.Get("location"),
		},
	}

	if raw := q.Get("max_daily_rate"); raw != "" {
		rate, err := domain.ParseMoney(raw)
		if err != nil {
			badRequest(w, "invalid max_daily_rate")
			return
		}
		in.Filter.MaxDailyRate = rate
	}
	if raw := q.Get("min_payload"); raw != "" {
		payload, err := strconv.Atoi(raw)
		if err != nil {
			badRequest(w, "invalid min_payload")
			return
		}
		in.Filter.MinPayload = payload
	}

	startRaw, endRaw := q.Get("start_date"), q.Get("end_date")
	if (startRaw == "") != (endRaw == "") {
		badRequest(w, "start_date and end_date must be given together")
		return
	}
	if startRaw != "" {
		start, err := time.Parse(dateLayout, startRaw)
		if err != nil {
			badRequest(w, "invalid start_date")
			return
		}
		end, err := time.Parse(dateLayout, endRaw)
		if err != nil {
			badRequest(w, "invalid end_date")
			return
		}
		in.StartDate, in.EndDate = start, end
	}

	trucks, err := h.trucks.Search(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, trucks)
}

func (h *TruckHandler) ListImages(w http.ResponseWriter, r *http.Request) {
	truckID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		badRequest(w, "invalid truck id")
		return
	}

	images, err := h.trucks.ListImages(r.Context(), truckID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, images)
}

func (h *TruckHandler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	imageID, err := uuid.Parse(mux.Vars(r)["imageId"])
	if err != nil {
		badRequest(w, "invalid image id")
		return
	}

	if err := h.trucks.DeleteImage(r.Context(), actorFrom(r), imageID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *TruckHandler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	truckID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		badRequest(w, "invalid truck id")
		return
	}

	docs, err := h.trucks.ListDocuments(r.Context(), actorFrom(r), truckID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, docs)
}

func (h *TruckHandler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	documentID, err := uuid.Parse(mux.Vars(r)["documentId"])
	if err != nil {
		badRequest(w, "invalid document id")
		return
	}

	if err := h.trucks.DeleteDocument(r.Context(), actorFrom(r), documentID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
