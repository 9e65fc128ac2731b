package resp

import (
	"encoding/json"
	"errors"
	"jackpot_backend/internal/apperr"
	"net/http"
)

func WriteJSONResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// WriteError - отдает ошибку клиенту в виде {error, message}.
// Неклассифицированные ошибки прячутся за internal_error, деталей клиенту не отдаем
func WriteError(w http.ResponseWriter, err error) {
	var appErr *apperr.AppError
	if errors.As(err, &appErr) {
		WriteJSONResponse(w, appErr.Kind.HTTPStatus(), errorBody{
			Error:   appErr.Kind.String(),
			Message: appErr.Message,
		})
		return
	}

	WriteJSONResponse(w, http.StatusInternalServerError, errorBody{
		Error:   apperr.KindInternal.String(),
		Message: "internal server error",
	})
}
