package converter

import (
	dto "jackpot_backend/internal/api/dto/game"
	"jackpot_backend/internal/model"
)

// Формат даты в истории выигрышей
const historyDateLayout = "2006-01-02 15:04"

func ToPlayResponse(res *model.PlayResult) dto.PlayResponse {
	return dto.PlayResponse{
		Result:         res.Result,
		Prize:          res.Prize,
		CurrentJackpot: res.CurrentJackpot,
		UserBalance:    res.Balance,
	}
}

func ToStatusResponse(jackpot int) dto.StatusResponse {
	return dto.StatusResponse{
		Jackpot: jackpot,
	}
}

func ToHistoryResponse(entries []model.HistoryEntry) []dto.HistoryItem {
	result := make([]dto.HistoryItem, len(entries))
	for i, e := range entries {
		result[i] = dto.HistoryItem{
			Username: e.WinnerName,
			Amount:   e.Amount,
			Date:     e.CreatedAt.UTC().Format(historyDateLayout),
		}
	}
	return result
}
