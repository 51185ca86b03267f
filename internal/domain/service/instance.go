package service

import (
	"github.com/bela333/surprise-day/internal/domain/contract"
)

type Instance struct {
	Surprise contract.SurpriseService
}

func NewInstance(dm contract.DataManager, chat contract.ChatClient, guildID, categoryID string) *Instance {
	return &Instance{
		Surprise: newSurprise(dm, chat, guildID, categoryID),
	}
}
