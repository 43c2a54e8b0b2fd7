package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/JasonLazzuri/Mesophy-sub003/internal/db"
	"github.com/JasonLazzuri/Mesophy-sub003/internal/http/api"
	"github.com/JasonLazzuri/Mesophy-sub003/internal/http/api/tv/packets"
)

type PairingController struct {
	store db.Store
}

// PairingModule mounts the device pairing endpoint.
func PairingModule(store db.Store) api.Module {
	ctl := &PairingController{store: store}
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_POST("/screens/pair", ctl.pairScreen)
	})
}

// POST /api/tv/screens/pair
func (p *PairingController) pairScreen(ctx *gin.Context) (any, *api.APIError) {
	var req packets.PairRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	screen, err := p.store.GetScreenByID(req.ScreenID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "screen not found"}
	}
	if screen.Paired {
		return nil, &api.APIError{Code: http.StatusConflict, Message: "screen already paired"}
	}

	if err := p.store.PairScreen(req.ScreenID, req.DeviceID); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not pair screen"}
	}

	log.Info().Int("screen_id", req.ScreenID).Str("device_id", req.DeviceID).Msg("screen paired")
	return packets.PairResponse{ScreenID: req.ScreenID, DeviceID: req.DeviceID, Paired: true}, nil
}
