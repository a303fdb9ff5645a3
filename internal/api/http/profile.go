package http

import (
	"encoding/json"
	"net/http"

	"github.com/wanderlist/wanderlist/internal/api/service"
	"github.com/wanderlist/wanderlist/pkg/httpx"
	"github.com/wanderlist/wanderlist/pkg/mapsdk"
)

type ProfileHandler struct {
	ProfileService *service.ProfileService
}

// HandleGet godoc
//
//	@Summary		Get Profile Endpoint
//	@Description	Return the caller's profile with the resolved active map. The raw
//	@Description	active_map_id may be stale; active_map has already been validated
//	@Description	against current memberships with fallback applied.
//	@Tags			Profile
//	@Produce		json
//	@Success		200	{object}	mapsdk.ProfileResponse	"profile and resolved active map"
//	@Security		BearerAuth
//	@Router			/v1/profile [get].
func (h *ProfileHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := httpx.UserIDFromContext(ctx)

	profile, err := h.ProfileService.GetProfile(ctx, userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	active, err := h.ProfileService.ResolveActiveMap(ctx, userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := mapsdk.ProfileResponse{
		ID:          profile.ID,
		DisplayName: profile.DisplayName,
		Entitlement: string(profile.Entitlement),
		ActiveMapID: profile.ActiveMapID,
	}
	if active != nil {
		m := toMapResponse(*active)
		resp.ActiveMap = &m
	}

	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleSetActiveMap godoc
//
//	@Summary		Set Active Map Endpoint
//	@Description	Overwrite the caller's active-map pointer. A null map_id scopes back to
//	@Description	the aggregate all-maps view. The write is deliberately permissive and
//	@Description	validated at read time.
//	@Tags			Profile
//	@Accept			json
//	@Produce		json
//	@Param			request	body	mapsdk.SetActiveMapRequest	true	"map_id or null"
//	@Success		204		"pointer updated"
//	@Failure		400		{object}	mapsdk.ErrorResponse	"error, code=INVALID_REQUEST"
//	@Security		BearerAuth
//	@Router			/v1/profile/active-map [put].
func (h *ProfileHandler) HandleSetActiveMap(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req mapsdk.SetActiveMapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, mapsdk.CodeInvalidRequest, "Invalid JSON body")
		return
	}

	if err := h.ProfileService.SetActiveMap(ctx, httpx.UserIDFromContext(ctx), req.MapID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
