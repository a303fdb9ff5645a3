package http

import (
	"net/http"

	"github.com/wanderlist/wanderlist/internal/api/service"
	"github.com/wanderlist/wanderlist/pkg/httpx"
)

type MembersHandler struct {
	MembershipService *service.MembershipService
}

// HandleList godoc
//
//	@Summary		List Map Members Endpoint
//	@Description	List the members of a map. Available to any member of the map.
//	@Tags			Maps
//	@Produce		json
//	@Param			id	path		string						true	"Map ID"
//	@Success		200	{object}	mapsdk.MemberListResponse	"members"
//	@Failure		403	{object}	mapsdk.ErrorResponse		"error, code=NOT_MEMBER"
//	@Security		BearerAuth
//	@Router			/v1/maps/{id}/members [get].
func (h *MembersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	members, err := h.MembershipService.ListMembers(ctx, r.PathValue("id"), httpx.UserIDFromContext(ctx))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toMemberListResponse(members))
}

// HandleLeave godoc
//
//	@Summary		Leave Map Endpoint
//	@Description	Remove the caller's own membership from a map. The last owner cannot leave.
//	@Tags			Maps
//	@Produce		json
//	@Param			id	path	string	true	"Map ID"
//	@Success		204	"left the map"
//	@Failure		403	{object}	mapsdk.ErrorResponse	"error, code=NOT_MEMBER"
//	@Failure		409	{object}	mapsdk.ErrorResponse	"error, code=LAST_OWNER"
//	@Security		BearerAuth
//	@Router			/v1/maps/{id}/members/me [delete].
func (h *MembersHandler) HandleLeave(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.MembershipService.LeaveMap(ctx, r.PathValue("id"), httpx.UserIDFromContext(ctx)); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
