package respond

import (
	"encoding/json"
	"net/http"

	"gallos-breeding-api/internal/validation"
)

// SuccessBody es el envelope de éxito de toda la API:
// { success: true, data, message }
type SuccessBody struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message"`
}

// ErrorBody es el envelope de error:
// { success: false, error, detail, error_code, violations }
type ErrorBody struct {
	Success    bool                  `json:"success"`
	Error      string                `json:"error"`
	Detail     string                `json:"detail,omitempty"`
	ErrorCode  string                `json:"error_code,omitempty"`
	Violations validation.Violations `json:"violations,omitempty"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func OK(w http.ResponseWriter, data any, message string) {
	if message == "" {
		message = "Operación exitosa"
	}
	JSON(w, http.StatusOK, SuccessBody{Success: true, Data: data, Message: message})
}

func Created(w http.ResponseWriter, data any, message string) {
	if message == "" {
		message = "Operación exitosa"
	}
	JSON(w, http.StatusCreated, SuccessBody{Success: true, Data: data, Message: message})
}

func Error(w http.ResponseWriter, status int, errMsg, detail, code string) {
	JSON(w, status, ErrorBody{Success: false, Error: errMsg, Detail: detail, ErrorCode: code})
}

// Violations responde 422 con la lista completa de violaciones de campo.
// Nunca se responde solo la primera.
func Violations(w http.ResponseWriter, v validation.Violations) {
	JSON(w, http.StatusUnprocessableEntity, ErrorBody{
		Success:    false,
		Error:      "validación fallida",
		ErrorCode:  "VALIDATION_ERROR",
		Violations: v,
	})
}
