package http

import (
	"net/http"

	"github.com/wanderlist/wanderlist/internal/api/service"
	"github.com/wanderlist/wanderlist/pkg/httpx"
	"github.com/wanderlist/wanderlist/pkg/mapsdk"
)

type InviteListHandler struct {
	InviteService *service.InviteService
}

// ServeHTTP godoc
//
//	@Summary		List Map Invites Endpoint
//	@Description	List every invite minted for a map, including expired and exhausted ones.
//	@Description	Tokens are returned raw so owners can re-share existing links. Owner only.
//	@Tags			Invites
//	@Produce		json
//	@Param			id	path		string						true	"Map ID"
//	@Success		200	{object}	mapsdk.InviteListResponse	"invites, newest first"
//	@Failure		403	{object}	mapsdk.ErrorResponse		"error, code=NOT_MAP_OWNER"
//	@Security		BearerAuth
//	@Router			/v1/maps/{id}/invites [get].
func (h *InviteListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	invites, err := h.InviteService.ListInvites(ctx, r.PathValue("id"), httpx.UserIDFromContext(ctx))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	list := mapsdk.InviteListResponse{Invites: make([]mapsdk.InviteResponse, 0, len(invites))}
	for _, inv := range invites {
		list.Invites = append(list.Invites, toInviteResponse(inv))
	}

	httpx.WriteJSON(w, http.StatusOK, list)
}
