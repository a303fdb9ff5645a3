package http

import (
	"encoding/json"
	"net/http"

	"github.com/wanderlist/wanderlist/internal/api/service"
	"github.com/wanderlist/wanderlist/pkg/httpx"
	"github.com/wanderlist/wanderlist/pkg/mapsdk"
)

type InviteRedeemHandler struct {
	InviteService *service.InviteService
}

// ServeHTTP godoc
//
//	@Summary		Redeem Invite Endpoint
//	@Description	Consume one use of an invite token and join the caller to its map.
//	@Description	The grant is atomic: membership creation and the use counter increment
//	@Description	commit together or not at all. Each rejection carries a stable code so
//	@Description	clients can render distinct messages.
//	@Tags			Invites
//	@Accept			json
//	@Produce		json
//	@Param			request	body		mapsdk.RedeemInviteRequest	true	"the invite token"
//	@Success		200		{object}	mapsdk.RedeemInviteResponse	"map_id, map_name, role"
//	@Failure		400		{object}	mapsdk.ErrorResponse		"error, code=INVALID_REQUEST"
//	@Failure		404		{object}	mapsdk.ErrorResponse		"error, code=INVITE_NOT_FOUND"
//	@Failure		409		{object}	mapsdk.ErrorResponse		"error, code=ALREADY_MEMBER"
//	@Failure		410		{object}	mapsdk.ErrorResponse		"error, code=INVITE_EXPIRED or INVITE_MAX_USES"
//	@Security		BearerAuth
//	@Router			/v1/invites/redeem [post].
func (h *InviteRedeemHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := httpx.UserIDFromContext(ctx)

	var req mapsdk.RedeemInviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, mapsdk.CodeInvalidRequest, "Invalid JSON body")
		return
	}

	result, err := h.InviteService.RedeemInvite(ctx, req.Token, userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, mapsdk.RedeemInviteResponse{
		MapID:   result.MapID,
		MapName: result.MapName,
		Role:    string(result.Role),
	})
}
