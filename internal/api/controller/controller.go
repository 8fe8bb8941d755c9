package controller

import (
	"github.com/tangiwai/cordis-summary/internal/pkg/store"
	"github.com/tangiwai/cordis-summary/internal/service/calls"
	"github.com/tangiwai/cordis-summary/internal/service/cordis"
	"github.com/tangiwai/cordis-summary/internal/service/summary"
)

type Controller struct {
	store       store.Store
	cordis      *cordis.Service
	calls       *calls.Service
	summarizer  *summary.Summarizer
	countrySets map[string][]string
}

func NewController(
	st store.Store,
	cordisService *cordis.Service,
	callsService *calls.Service,
	summarizer *summary.Summarizer,
	countrySets map[string][]string,
) *Controller {
	return &Controller{
		store:       st,
		cordis:      cordisService,
		calls:       callsService,
		summarizer:  summarizer,
		countrySets: countrySets,
	}
}
