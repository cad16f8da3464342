package handlers

import (
	"errors"
	"io"
	"net/http"

	"homzen/internal/logger"
	"homzen/internal/models"
	"homzen/internal/storage"

	"github.com/gorilla/mux"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Message struct {
	Message string `json:"message"`
}

// ConflictResponse keeps the insert acknowledgement shape so clients can
// check insertedId regardless of the status code.
type ConflictResponse struct {
	Message    string  `json:"message"`
	InsertedId *string `json:"insertedId"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("Failed to encode response", "err", err)
	}
}

func writeRawJSON(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, Message{Message: message})
}

// writeStoreError maps store sentinels to statuses; anything else is a 500.
func writeStoreError(w http.ResponseWriter, r *http.Request, err error, entity string) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		writeMessage(w, http.StatusNotFound, entity+" not found")
	case errors.Is(err, storage.ErrAlreadyExists):
		writeJSON(w, http.StatusConflict, ConflictResponse{Message: entity + " already exists"})
	default:
		logger.Log.Errorw("Store operation failed",
			"entity", entity, "method", r.Method, "path", r.URL.Path, "err", err)
		writeMessage(w, http.StatusInternalServerError, "internal server error")
	}
}

func decodeBody(r *http.Request, v interface{}) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}

	defer r.Body.Close()

	return json.Unmarshal(body, v)
}

// pathId returns the {id} route variable, answering 400 itself when it is not an object id.
func pathId(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := mux.Vars(r)[`id`]
	if !models.ValidId(id) {
		writeMessage(w, http.StatusBadRequest, "invalid id")
		return ``, false
	}

	return id, true
}
