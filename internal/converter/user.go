package converter

import (
	dto "jackpot_backend/internal/api/dto/user"
	"jackpot_backend/internal/model"
)

func ToMeResponse(user *model.User) dto.MeResponse {
	return dto.MeResponse{
		Username: user.Username,
		Balance:  user.Balance,
	}
}

func ToRechargeResponse(newBalance int) dto.RechargeResponse {
	return dto.RechargeResponse{
		Success:    true,
		NewBalance: newBalance,
	}
}
