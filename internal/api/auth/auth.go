package auth

import (
	dto "jackpot_backend/internal/api/dto/auth"
	"jackpot_backend/internal/apperr"
	"jackpot_backend/internal/converter"
	"jackpot_backend/internal/service"
	"jackpot_backend/pkg/req"
	"jackpot_backend/pkg/resp"
	"log"
	"net/http"
)

type HandlerDeps struct {
	Serv service.AuthService
}

type Handler struct {
	serv service.AuthService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Login - вход или регистрация, возвращает токен сессии
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.LoginRequest](r.Body)
	if err != nil {
		resp.WriteError(w, apperr.Wrap(err, apperr.KindValidation, "invalid request body"))
		return
	}

	data, err := h.serv.Login(r.Context(), requestBody.Username, requestBody.Password)
	if err != nil {
		log.Println("Login error:", err)
		resp.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToLoginResponse(data))
}

// Logout - закрывает текущую сессию
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	err := h.serv.Logout(r.Context())
	if err != nil {
		log.Println("Logout error:", err)
		resp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
