package mapsdk

import (
	"context"
	"net/http"
)

// GetProfile returns the caller's profile with the resolved active map.
// ActiveMap already has dangling-pointer fallback applied server-side.
func (s *Session) GetProfile(ctx context.Context) (*ProfileResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/profile", nil)
	if err != nil {
		return nil, err
	}

	var profile ProfileResponse
	if err := decodeJSON(resp, &profile, http.StatusOK); err != nil {
		return nil, err
	}
	return &profile, nil
}

// SetActiveMap overwrites the caller's active-map pointer. Passing nil
// scopes back to the aggregate all-maps view. The write is permissive; the
// server validates the pointer at read time, not here.
func (s *Session) SetActiveMap(ctx context.Context, mapID *string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodPut, "/v1/profile/active-map", SetActiveMapRequest{MapID: mapID})
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}
