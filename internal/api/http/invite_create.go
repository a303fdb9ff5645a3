package http

import (
	"encoding/json"
	"net/http"

	"github.com/wanderlist/wanderlist/internal/api/domain"
	"github.com/wanderlist/wanderlist/internal/api/service"
	"github.com/wanderlist/wanderlist/pkg/httpx"
	"github.com/wanderlist/wanderlist/pkg/mapsdk"
)

type InviteCreateHandler struct {
	InviteService *service.InviteService
}

// ServeHTTP godoc
//
//	@Summary		Create Invite Endpoint
//	@Description	Mint a shareable invite token for a map the caller owns.
//	@Description	Only the editor role is grantable through an invite. Expiry is resolved
//	@Description	to an absolute timestamp at creation; omitted expiry or max_uses means
//	@Description	never/unlimited.
//	@Tags			Invites
//	@Accept			json
//	@Produce		json
//	@Param			request	body		mapsdk.CreateInviteRequest	true	"map_id, optional role, expires_in_days, max_uses"
//	@Success		201		{object}	mapsdk.InviteResponse		"the minted invite including its raw token"
//	@Failure		400		{object}	mapsdk.ErrorResponse		"error, code=INVALID_REQUEST"
//	@Failure		403		{object}	mapsdk.ErrorResponse		"error, code=NOT_MAP_OWNER"
//	@Security		BearerAuth
//	@Router			/v1/invites [post].
func (h *InviteCreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := httpx.UserIDFromContext(ctx)

	var req mapsdk.CreateInviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, mapsdk.CodeInvalidRequest, "Invalid JSON body")
		return
	}
	if req.MapID == "" {
		writeError(w, http.StatusBadRequest, mapsdk.CodeInvalidRequest, "map_id is required")
		return
	}

	inv, err := h.InviteService.CreateInvite(ctx, req.MapID, userID, domain.Role(req.Role), req.ExpiresInDays, req.MaxUses)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toInviteResponse(inv))
}
