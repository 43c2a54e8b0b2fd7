package endpoints

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/JasonLazzuri/Mesophy-sub003/internal/db"
	"github.com/JasonLazzuri/Mesophy-sub003/internal/http/api"
	"github.com/JasonLazzuri/Mesophy-sub003/internal/model"
)

type PlaylistController struct {
	store db.Store
}

func newPlaylistController(store db.Store) *PlaylistController {
	return &PlaylistController{store: store}
}

// PlaylistModule mounts read access to playlists, enough for the schedule
// editor to pick one. Playlist and media management live elsewhere.
func PlaylistModule(store db.Store) api.Module {
	ctl := newPlaylistController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/playlists", ctl.listPlaylists)
		c.GET("/playlists/:id", ctl.getPlaylist)
	})
}

// GET /api/admin/playlists
func (p *PlaylistController) listPlaylists(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	playlists, err := p.store.ListPlaylists(user.OrganizationID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list playlists"}
	}
	return playlists, nil
}

// GET /api/admin/playlists/:id
func (p *PlaylistController) getPlaylist(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	pl, err := p.store.GetPlaylistByID(id)
	if err != nil || pl.OrganizationID != user.OrganizationID {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "playlist not found"}
	}
	return pl, nil
}
