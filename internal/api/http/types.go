package http

import (
	"github.com/wanderlist/wanderlist/internal/api/domain"
	"github.com/wanderlist/wanderlist/internal/api/service"
	"github.com/wanderlist/wanderlist/pkg/mapsdk"
)

func toMapResponse(m domain.Map) mapsdk.MapResponse {
	return mapsdk.MapResponse{
		ID:        m.ID,
		Name:      m.Name,
		CreatedBy: m.CreatedBy,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toMapListResponse(maps []service.MapWithRole) mapsdk.MapListResponse {
	out := mapsdk.MapListResponse{Maps: make([]mapsdk.MapResponse, 0, len(maps))}
	for _, mr := range maps {
		m := toMapResponse(mr.Map)
		m.Role = string(mr.Role)
		out.Maps = append(out.Maps, m)
	}
	return out
}

func toInviteResponse(inv domain.Invite) mapsdk.InviteResponse {
	return mapsdk.InviteResponse{
		ID:        inv.ID,
		MapID:     inv.MapID,
		Token:     inv.Token,
		Role:      string(inv.Role),
		ExpiresAt: inv.ExpiresAt,
		MaxUses:   inv.MaxUses,
		UseCount:  inv.UseCount,
		CreatedAt: inv.CreatedAt,
	}
}

func toMemberListResponse(members []domain.Membership) mapsdk.MemberListResponse {
	out := mapsdk.MemberListResponse{Members: make([]mapsdk.MemberResponse, 0, len(members))}
	for _, m := range members {
		out.Members = append(out.Members, mapsdk.MemberResponse{
			UserID:   m.UserID,
			Role:     string(m.Role),
			JoinedAt: m.JoinedAt,
		})
	}
	return out
}
