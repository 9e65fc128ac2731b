package user

type MeResponse struct {
	Username string `json:"username"` // Имя пользователя
	Balance  int    `json:"balance"`  // Текущий баланс
}

type RechargeRequest struct {
	Amount int `json:"amount"` // Сумма пополнения (положительная)
}

type RechargeResponse struct {
	Success    bool `json:"success"`
	NewBalance int  `json:"newBalance"` // Баланс после пополнения
}
