package converter

import (
	dto "jackpot_backend/internal/api/dto/auth"
	"jackpot_backend/internal/model"
)

func ToLoginResponse(data *model.AuthData) dto.LoginResponse {
	return dto.LoginResponse{
		UserID:   data.UserID,
		Username: data.Username,
		Token:    data.Token,
	}
}
