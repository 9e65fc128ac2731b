package game

import (
	dto "jackpot_backend/internal/api/dto/game"
	"jackpot_backend/internal/apperr"
	"jackpot_backend/internal/converter"
	"jackpot_backend/internal/service"
	gameserv "jackpot_backend/internal/service/game"
	"jackpot_backend/pkg/req"
	"jackpot_backend/pkg/resp"
	"log"
	"net/http"
)

type HandlerDeps struct {
	Serv        service.GameService
	Broadcaster *gameserv.Broadcaster
}

type Handler struct {
	serv        service.GameService
	broadcaster *gameserv.Broadcaster
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		serv:        deps.Serv,
		broadcaster: deps.Broadcaster,
	}
}

// Play - одна игра против джекпота
func (h *Handler) Play(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.PlayRequest](r.Body)
	if err != nil {
		resp.WriteError(w, apperr.Wrap(err, apperr.KindValidation, "invalid request body"))
		return
	}

	result, err := h.serv.Play(r.Context(), requestBody.BetAmount)
	if err != nil {
		log.Println("Play error:", err)
		resp.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToPlayResponse(result))
}

// Status - текущий джекпот
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	jackpot, err := h.serv.Status(r.Context())
	if err != nil {
		log.Println("Status error:", err)
		resp.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatusResponse(jackpot))
}

// History - последние выигрыши
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	entries, err := h.serv.History(r.Context())
	if err != nil {
		log.Println("History error:", err)
		resp.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToHistoryResponse(entries))
}
