package game

import (
	"jackpot_backend/internal/converter"
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Live - websocket со стримом обновлений джекпота.
// Клиент получает {jackpot} после каждой сыгранной игры
func (h *Handler) Live(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("Live upgrade error:", err)
		return
	}
	defer conn.Close()

	updates, cancel := h.broadcaster.Listen(r.Context())
	defer cancel()

	// Читаем соединение только чтобы заметить закрытие со стороны клиента
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				cancel()
				return
			}
		}
	}()

	for update := range updates {
		if err := conn.WriteJSON(converter.ToStatusResponse(update.Jackpot)); err != nil {
			return
		}
	}
}
