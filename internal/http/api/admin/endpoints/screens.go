package endpoints

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/JasonLazzuri/Mesophy-sub003/internal/db"
	"github.com/JasonLazzuri/Mesophy-sub003/internal/http/api"
	"github.com/JasonLazzuri/Mesophy-sub003/internal/http/api/admin/packets"
	"github.com/JasonLazzuri/Mesophy-sub003/internal/model"
)

type ScreenController struct {
	store db.Store
}

func newScreenController(store db.Store) *ScreenController {
	return &ScreenController{store: store}
}

// ScreenModule mounts all authenticated /screens endpoints.
func ScreenModule(store db.Store) api.Module {
	ctl := newScreenController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/screens", ctl.listScreens)
		c.POST("/screens", ctl.createScreen)
		c.GET("/screens/:id", ctl.getScreen)
		c.PUT("/screens/:id", ctl.updateScreen)
		c.DELETE("/screens/:id", ctl.deleteScreen)
	})
}

// GET /api/admin/screens
func (t *ScreenController) listScreens(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	all, err := t.store.ListScreens(user.OrganizationID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list screens"}
	}
	out := make([]packets.ScreenResponse, 0, len(all))
	for _, s := range all {
		out = append(out, mapScreen(s))
	}
	return out, nil
}

// POST /api/admin/screens
func (t *ScreenController) createScreen(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var req packets.CreateScreenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	screen, err := t.store.CreateScreen(
		user.OrganizationID, req.LocationID,
		model.ParseScreenType(req.ScreenType), req.Name, user.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create screen"}
	}
	return mapScreen(screen), nil
}

// GET /api/admin/screens/:id
func (t *ScreenController) getScreen(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	screen, apiErr := t.ownedScreen(ctx, user)
	if apiErr != nil {
		return nil, apiErr
	}
	return mapScreen(*screen), nil
}

// PUT /api/admin/screens/:id
//
// screen_type is immutable and not accepted here.
func (t *ScreenController) updateScreen(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	screen, apiErr := t.ownedScreen(ctx, user)
	if apiErr != nil {
		return nil, apiErr
	}

	var req packets.UpdateScreenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if err := t.store.UpdateScreen(screen.ID, req.Name, req.LocationID); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update screen"}
	}
	updated, err := t.store.GetScreenByID(screen.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not reload screen"}
	}
	return mapScreen(updated), nil
}

// DELETE /api/admin/screens/:id
func (t *ScreenController) deleteScreen(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	screen, apiErr := t.ownedScreen(ctx, user)
	if apiErr != nil {
		return nil, apiErr
	}
	if err := t.store.DeleteScreen(screen.ID); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete screen"}
	}
	return gin.H{"deleted": screen.ID}, nil
}

func (t *ScreenController) ownedScreen(ctx *gin.Context, user *model.User) (*model.Screen, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	screen, err := t.store.GetScreenByID(id)
	if err != nil || screen.OrganizationID != user.OrganizationID {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "screen not found"}
	}
	return &screen, nil
}

func mapScreen(s model.Screen) packets.ScreenResponse {
	return packets.ScreenResponse{
		ID:             s.ID,
		OrganizationID: s.OrganizationID,
		LocationID:     s.LocationID,
		ScreenType:     string(s.ScreenType),
		DeviceID:       s.DeviceID,
		Name:           s.Name,
		Paired:         s.Paired,
		CreatedBy:      s.CreatedBy,
		CreatedAt:      s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      s.UpdatedAt.Format(time.RFC3339),
	}
}
