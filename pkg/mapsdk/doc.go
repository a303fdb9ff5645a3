/*
Package mapsdk provides a client SDK for the Wanderlist map-sharing API.

# Overview

The package is organized around two main types:

  - Client: holds the base URL and HTTP client, and serves unauthenticated
    operations such as health checks
  - Session: wraps a Client with a bearer token for authenticated operations

The access token comes from the external identity provider; the SDK never
mints or refreshes credentials itself.

	client := mapsdk.NewClient("https://api.wanderlist.example")
	session := client.Session(accessToken)

	m, err := session.CreateMap(ctx, "Tokyo Trip")
	inv, err := session.CreateInvite(ctx, mapsdk.CreateInviteRequest{MapID: m.ID})

# Invite links

Invites travel as deep links of the form <scheme>://invite/<token>. The
Coordinator type drives the full inbound flow: parse the link, stash the
token across a sign-in interruption if needed, redeem it, interpret the
structured failure codes, and point the caller's active map at the newly
joined map.

	coord := mapsdk.NewCoordinator()
	outcome := coord.Open(ctx, session, "wander://invite/abc123")
	if outcome.State == mapsdk.RedemptionSuccess {
		// navigate to outcome.Join.MapID
	}

# Errors

API failures decode into *APIError carrying the HTTP status and the stable
machine-readable code from the error body. Use errors.As or the Code helper:

	_, err := session.RedeemInvite(ctx, token)
	if mapsdk.HasCode(err, mapsdk.CodeInviteExpired) {
		// show "this invite has expired"
	}
*/
package mapsdk
