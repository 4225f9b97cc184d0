package status

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/carson-networks/bank-ledger/internal/logging"
)

type sessionCounter interface {
	Len() int
}

type Handler struct {
	Sessions sessionCounter
}

func NewHandler(sessions sessionCounter) Handler {
	return Handler{Sessions: sessions}
}

type response struct {
	Status   string `json:"status"`
	Sessions int    `json:"sessions"`
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	sessions := h.Sessions.Len()
	logData.AddData("sessions", sessions)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(response{Status: "ok", Sessions: sessions})
}
