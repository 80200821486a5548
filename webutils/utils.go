package webutils

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/pkg/errors"
)

func WriteFileHeaders(w http.ResponseWriter, name string) {
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", "attachment; filename=\""+name+"\"")
}

func WriteFile(w http.ResponseWriter, in io.Reader, name string) {
	WriteFileHeaders(w, name)
	if _, err := io.Copy(w, in); err != nil {
		log.Printf("Error when writing file %q: %v", name, err)
	}
}

func WriteJson(w http.ResponseWriter, data interface{}) {
	res, err := json.Marshal(data)
	if err != nil {
		WriteError(w, errors.Wrapf(err, "Failed to marshal"))
	} else {
		w.Header().Set("Content-Type", "application/json")
		WriteResult(w, res)
	}
}

func WriteResult(w http.ResponseWriter, data []byte) {
	_, err := w.Write(data)
	if err != nil {
		log.Printf("Error when writing response: %v", err)
	}
}

type jError struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

func writeErrorBody(w http.ResponseWriter, code int, e *jError) {
	data, err := json.Marshal(e)
	if err != nil {
		log.Printf("Error marshaling error '%v': %v", e.Error, err)
		http.Error(w, e.Error, http.StatusInternalServerError)
		return
	}
	log.Printf("HERR: %v", string(data))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	WriteResult(w, data)
}

func WriteError(w http.ResponseWriter, err error) {
	writeErrorBody(w, http.StatusInternalServerError, &jError{Error: err.Error()})
}

// WriteErrorKind reports a client caused failure with its classification.
func WriteErrorKind(w http.ResponseWriter, code int, kind string, err error) {
	writeErrorBody(w, code, &jError{Error: err.Error(), Kind: kind})
}
