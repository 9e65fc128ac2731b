package user

import (
	dto "jackpot_backend/internal/api/dto/user"
	"jackpot_backend/internal/apperr"
	"jackpot_backend/internal/converter"
	"jackpot_backend/internal/service"
	"jackpot_backend/pkg/req"
	"jackpot_backend/pkg/resp"
	"log"
	"net/http"
)

type HandlerDeps struct {
	Serv service.UserService
}

type Handler struct {
	serv service.UserService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Me - профиль текущего пользователя
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.serv.Me(r.Context())
	if err != nil {
		log.Println("Me error:", err)
		resp.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToMeResponse(user))
}

// Recharge - пополнение баланса
func (h *Handler) Recharge(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.RechargeRequest](r.Body)
	if err != nil {
		resp.WriteError(w, apperr.Wrap(err, apperr.KindValidation, "invalid request body"))
		return
	}

	newBalance, err := h.serv.Recharge(r.Context(), requestBody.Amount)
	if err != nil {
		log.Println("Recharge error:", err)
		resp.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRechargeResponse(newBalance))
}
