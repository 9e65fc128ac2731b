package model

import "time"

const (
	ResultWin  = "win"
	ResultLose = "lose"
)

type PlayResult struct {
	Result         string
	Prize          int
	CurrentJackpot int
	Balance        int
}

type HistoryEntry struct {
	WinnerName string
	Amount     int
	CreatedAt  time.Time
}
