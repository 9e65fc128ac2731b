package auth

type LoginRequest struct {
	Username string `json:"username"` // Имя пользователя
	Password string `json:"password"` // Пароль открытым текстом
}

type LoginResponse struct {
	UserID   int    `json:"userId"`   // ID пользователя
	Username string `json:"username"` // Имя пользователя
	Token    string `json:"token"`    // Токен сессии для заголовка Authorization
}
