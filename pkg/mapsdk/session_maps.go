package mapsdk

import (
	"context"
	"net/http"
	"net/url"
)

// CreateMap creates a new map owned by the caller. Free-tier accounts are
// limited to one owned map; the limit surfaces as FREEMIUM_LIMIT_EXCEEDED.
func (s *Session) CreateMap(ctx context.Context, name string) (*MapResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/maps", CreateMapRequest{Name: name})
	if err != nil {
		return nil, err
	}

	var m MapResponse
	if err := decodeJSON(resp, &m, http.StatusCreated); err != nil {
		return nil, err
	}
	return &m, nil
}

// ListMaps returns every map the caller belongs to, with their role.
func (s *Session) ListMaps(ctx context.Context) ([]MapResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/maps", nil)
	if err != nil {
		return nil, err
	}

	var list MapListResponse
	if err := decodeJSON(resp, &list, http.StatusOK); err != nil {
		return nil, err
	}
	return list.Maps, nil
}

// RenameMap changes a map's name. Owner only.
func (s *Session) RenameMap(ctx context.Context, mapID, name string) (*MapResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPatch, "/v1/maps/"+url.PathEscape(mapID), RenameMapRequest{Name: name})
	if err != nil {
		return nil, err
	}

	var m MapResponse
	if err := decodeJSON(resp, &m, http.StatusOK); err != nil {
		return nil, err
	}
	return &m, nil
}

// DeleteMap removes a map and everything attached to it. Owner only.
func (s *Session) DeleteMap(ctx context.Context, mapID string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/v1/maps/"+url.PathEscape(mapID), nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// ListMembers returns the members of a map the caller belongs to.
func (s *Session) ListMembers(ctx context.Context, mapID string) ([]MemberResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/maps/"+url.PathEscape(mapID)+"/members", nil)
	if err != nil {
		return nil, err
	}

	var list MemberListResponse
	if err := decodeJSON(resp, &list, http.StatusOK); err != nil {
		return nil, err
	}
	return list.Members, nil
}

// LeaveMap removes the caller's own membership. A map's last owner cannot
// leave; that surfaces as LAST_OWNER.
func (s *Session) LeaveMap(ctx context.Context, mapID string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/v1/maps/"+url.PathEscape(mapID)+"/members/me", nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}
