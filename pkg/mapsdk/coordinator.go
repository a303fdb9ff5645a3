package mapsdk

import (
	"context"
	"sync"
)

// RedemptionState is the terminal state of one redemption attempt.
type RedemptionState int

const (
	// RedemptionPendingAuth means the token was stashed because no session
	// was available; call OnSignedIn once the user authenticates.
	RedemptionPendingAuth RedemptionState = iota

	// RedemptionSuccess means the caller joined the map; Join is populated
	// and the active-map pointer now points at it.
	RedemptionSuccess

	// RedemptionError means the attempt terminally failed; Code and Message
	// describe why. Retrying is safe but will not be done automatically.
	RedemptionError

	// RedemptionCancelled means the caller's context was cancelled
	// mid-flight. The server-side grant may still have committed; it is
	// neither rolled back nor retried.
	RedemptionCancelled
)

// RedemptionOutcome is what the coordinator hands back to the UI layer.
type RedemptionOutcome struct {
	State RedemptionState

	// Join is set on success.
	Join *RedeemInviteResponse

	// Code is the stable rejection code on error, "" for transport faults.
	Code string

	// Message is ready-to-display text for the terminal state.
	Message string
}

// Coordinator drives an inbound invite link to a terminal state: parse,
// redeem (deferring across a sign-in interruption when needed), interpret
// the structured failure, and activate the joined map.
//
// It is safe for concurrent use; the pending-token stash holds at most one
// token, and a newer link replaces an older stashed one.
type Coordinator struct {
	mu           sync.Mutex
	pendingToken string
}

// NewCoordinator creates an idle coordinator.
func NewCoordinator() *Coordinator {
	return &Coordinator{}
}

// Open handles an inbound invite link. With a live session the token is
// redeemed immediately; with a nil session it is stashed and
// RedemptionPendingAuth returned, to be completed by OnSignedIn.
func (c *Coordinator) Open(ctx context.Context, session *Session, link string) RedemptionOutcome {
	token, err := ParseInviteLink(link)
	if err != nil {
		return RedemptionOutcome{
			State:   RedemptionError,
			Message: "This invite link is not valid.",
		}
	}

	if session == nil {
		c.mu.Lock()
		c.pendingToken = token
		c.mu.Unlock()
		return RedemptionOutcome{State: RedemptionPendingAuth}
	}

	return c.redeem(ctx, session, token)
}

// OnSignedIn retries the stashed token, if any, exactly once. The stash is
// cleared before the attempt: a failed retry reports its error and stops,
// it does not loop. The second return is false when nothing was pending.
func (c *Coordinator) OnSignedIn(ctx context.Context, session *Session) (RedemptionOutcome, bool) {
	c.mu.Lock()
	token := c.pendingToken
	c.pendingToken = ""
	c.mu.Unlock()

	if token == "" {
		return RedemptionOutcome{}, false
	}
	return c.redeem(ctx, session, token), true
}

// Pending reports whether a token is stashed awaiting sign-in.
func (c *Coordinator) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pendingToken != ""
}

func (c *Coordinator) redeem(ctx context.Context, session *Session, token string) RedemptionOutcome {
	join, err := session.RedeemInvite(ctx, token)
	if err != nil {
		if ctx.Err() != nil {
			// The caller navigated away. The grant may have committed
			// server-side; a later ALREADY_MEMBER confirms it harmlessly.
			return RedemptionOutcome{State: RedemptionCancelled}
		}
		return outcomeForError(err)
	}

	// Point the caller at the map they just joined. The membership is
	// already durable; a pointer write failure downgrades the experience
	// but must not report the join as failed.
	if ctx.Err() == nil {
		_ = session.SetActiveMap(ctx, &join.MapID)
	}

	return RedemptionOutcome{
		State:   RedemptionSuccess,
		Join:    join,
		Message: "You joined " + join.MapName + ".",
	}
}

func outcomeForError(err error) RedemptionOutcome {
	out := RedemptionOutcome{State: RedemptionError}

	switch {
	case HasCode(err, CodeInviteNotFound):
		out.Code = CodeInviteNotFound
		out.Message = "This invite link is not valid."
	case HasCode(err, CodeInviteExpired):
		out.Code = CodeInviteExpired
		out.Message = "This invite has expired. Ask for a new link."
	case HasCode(err, CodeInviteMaxUses):
		out.Code = CodeInviteMaxUses
		out.Message = "This invite has reached its maximum number of uses."
	case HasCode(err, CodeAlreadyMember):
		out.Code = CodeAlreadyMember
		out.Message = "You are already a member of this map."
	default:
		out.Message = "Could not join the map. Please try again."
	}
	return out
}
