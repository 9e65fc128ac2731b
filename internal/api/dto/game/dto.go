package game

type PlayRequest struct {
	BetAmount int `json:"betAmount"` // Размер ставки (положительный, >0)
}

type PlayResponse struct {
	Result         string `json:"result"`         // "win" или "lose"
	Prize          int    `json:"prize"`          // Выигрыш (0 при проигрыше)
	CurrentJackpot int    `json:"currentJackpot"` // Джекпот после игры
	UserBalance    int    `json:"userBalance"`    // Баланс после игры
}

type StatusResponse struct {
	Jackpot int `json:"jackpot"` // Текущий джекпот
}

type HistoryItem struct {
	Username string `json:"username"` // Имя победителя
	Amount   int    `json:"amount"`   // Сумма выигрыша
	Date     string `json:"date"`     // "YYYY-MM-DD HH:MM"
}
