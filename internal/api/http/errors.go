package http

import (
	"errors"
	"net/http"

	"github.com/wanderlist/wanderlist/internal/api/service"
	"github.com/wanderlist/wanderlist/internal/api/store"
	"github.com/wanderlist/wanderlist/pkg/httpx"
	"github.com/wanderlist/wanderlist/pkg/mapsdk"
	"github.com/wanderlist/wanderlist/pkg/slogx"
)

func writeError(w http.ResponseWriter, status int, code, message string) {
	httpx.WriteJSON(w, status, mapsdk.ErrorResponse{Error: message, Code: code})
}

// writeServiceError maps service rejections onto the wire contract: each
// domain outcome gets a distinct status and stable code, anything else is a
// generic 500. Domain rejections are expected outcomes and are not logged
// as errors.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInviteRequest),
		errors.Is(err, service.ErrInvalidMapName):
		writeError(w, http.StatusBadRequest, mapsdk.CodeInvalidRequest, err.Error())

	case errors.Is(err, service.ErrInviteNotFound):
		writeError(w, http.StatusNotFound, mapsdk.CodeInviteNotFound, "Invite not found")
	case errors.Is(err, service.ErrInviteExpired):
		writeError(w, http.StatusGone, mapsdk.CodeInviteExpired, "Invite has expired")
	case errors.Is(err, service.ErrInviteMaxUses):
		writeError(w, http.StatusGone, mapsdk.CodeInviteMaxUses, "Invite has reached its maximum uses")
	case errors.Is(err, service.ErrAlreadyMember):
		writeError(w, http.StatusConflict, mapsdk.CodeAlreadyMember, "You are already a member of this map")

	case errors.Is(err, service.ErrFreemiumLimit):
		writeError(w, http.StatusForbidden, mapsdk.CodeFreemiumLimit, "Free accounts are limited to one owned map")
	case errors.Is(err, service.ErrLastOwner):
		writeError(w, http.StatusConflict, mapsdk.CodeLastOwner, "The last owner cannot leave the map")

	case errors.Is(err, service.ErrNotMapOwner):
		writeError(w, http.StatusForbidden, mapsdk.CodeNotMapOwner, "Only the map owner can do this")
	case errors.Is(err, service.ErrNotMember):
		writeError(w, http.StatusForbidden, mapsdk.CodeNotMember, "You are not a member of this map")

	case errors.Is(err, service.ErrMapNotFound), errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, mapsdk.CodeNotFound, "Not found")

	default:
		slogx.FromContext(r.Context()).Error("request failed", "err", err)
		writeError(w, http.StatusInternalServerError, mapsdk.CodeServerError, "Internal server error")
	}
}
