package mapsdk

import (
	"context"
	"net/http"
	"net/url"
)

// CreateInvite mints a shareable invite for a map the caller owns.
func (s *Session) CreateInvite(ctx context.Context, req CreateInviteRequest) (*InviteResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/invites", req)
	if err != nil {
		return nil, err
	}

	var inv InviteResponse
	if err := decodeJSON(resp, &inv, http.StatusCreated); err != nil {
		return nil, err
	}
	return &inv, nil
}

// ListInvites returns every invite on a map the caller owns, inert ones
// included. Tokens come back raw so owners can re-share existing links.
func (s *Session) ListInvites(ctx context.Context, mapID string) ([]InviteResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/maps/"+url.PathEscape(mapID)+"/invites", nil)
	if err != nil {
		return nil, err
	}

	var list InviteListResponse
	if err := decodeJSON(resp, &list, http.StatusOK); err != nil {
		return nil, err
	}
	return list.Invites, nil
}

// RedeemInvite consumes one use of an invite token and joins the caller to
// its map. Rejections carry one of the invite codes: INVITE_NOT_FOUND,
// INVITE_EXPIRED, INVITE_MAX_USES or ALREADY_MEMBER.
func (s *Session) RedeemInvite(ctx context.Context, token string) (*RedeemInviteResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/invites/redeem", RedeemInviteRequest{Token: token})
	if err != nil {
		return nil, err
	}

	var join RedeemInviteResponse
	if err := decodeJSON(resp, &join, http.StatusOK); err != nil {
		return nil, err
	}
	return &join, nil
}
