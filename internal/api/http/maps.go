package http

import (
	"encoding/json"
	"net/http"

	"github.com/wanderlist/wanderlist/internal/api/service"
	"github.com/wanderlist/wanderlist/pkg/httpx"
	"github.com/wanderlist/wanderlist/pkg/mapsdk"
)

type MapsHandler struct {
	MapService *service.MapService
}

// HandleCreate godoc
//
//	@Summary		Create Map Endpoint
//	@Description	Create a new map owned by the caller. Free-tier accounts may own at most one map.
//	@Tags			Maps
//	@Accept			json
//	@Produce		json
//	@Param			request	body		mapsdk.CreateMapRequest	true	"Map name"
//	@Success		201		{object}	mapsdk.MapResponse		"the created map"
//	@Failure		400		{object}	mapsdk.ErrorResponse	"error, code=INVALID_REQUEST"
//	@Failure		403		{object}	mapsdk.ErrorResponse	"error, code=FREEMIUM_LIMIT_EXCEEDED"
//	@Security		BearerAuth
//	@Router			/v1/maps [post].
func (h *MapsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := httpx.UserIDFromContext(ctx)

	var req mapsdk.CreateMapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, mapsdk.CodeInvalidRequest, "Invalid JSON body")
		return
	}

	m, err := h.MapService.CreateMap(ctx, userID, req.Name)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toMapResponse(m))
}

// HandleList godoc
//
//	@Summary		List Maps Endpoint
//	@Description	List every map the caller belongs to, with their role on each.
//	@Tags			Maps
//	@Produce		json
//	@Success		200	{object}	mapsdk.MapListResponse	"maps"
//	@Security		BearerAuth
//	@Router			/v1/maps [get].
func (h *MapsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	maps, err := h.MapService.ListMaps(ctx, httpx.UserIDFromContext(ctx))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toMapListResponse(maps))
}

// HandleRename godoc
//
//	@Summary		Rename Map Endpoint
//	@Description	Change a map's name. Owner only.
//	@Tags			Maps
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Map ID"
//	@Param			request	body		mapsdk.RenameMapRequest	true	"New name"
//	@Success		200		{object}	mapsdk.MapResponse		"the renamed map"
//	@Failure		403		{object}	mapsdk.ErrorResponse	"error, code=NOT_MAP_OWNER"
//	@Failure		404		{object}	mapsdk.ErrorResponse	"error, code=NOT_FOUND"
//	@Security		BearerAuth
//	@Router			/v1/maps/{id} [patch].
func (h *MapsHandler) HandleRename(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	mapID := r.PathValue("id")

	var req mapsdk.RenameMapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, mapsdk.CodeInvalidRequest, "Invalid JSON body")
		return
	}

	m, err := h.MapService.RenameMap(ctx, mapID, httpx.UserIDFromContext(ctx), req.Name)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toMapResponse(m))
}

// HandleDelete godoc
//
//	@Summary		Delete Map Endpoint
//	@Description	Delete a map. Memberships and invites are removed with it. Owner only.
//	@Tags			Maps
//	@Produce		json
//	@Param			id	path	string	true	"Map ID"
//	@Success		204	"deleted"
//	@Failure		403	{object}	mapsdk.ErrorResponse	"error, code=NOT_MAP_OWNER"
//	@Failure		404	{object}	mapsdk.ErrorResponse	"error, code=NOT_FOUND"
//	@Security		BearerAuth
//	@Router			/v1/maps/{id} [delete].
func (h *MapsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.MapService.DeleteMap(ctx, r.PathValue("id"), httpx.UserIDFromContext(ctx)); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
