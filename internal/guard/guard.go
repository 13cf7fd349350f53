// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package guard decides whether a screen may render for the current session.
//
// Evaluate is pure: it reads a session snapshot and returns a decision. The
// caller re-evaluates on every navigation and every session change.
package guard

import (
	"fmt"

	"github.com/MKhiriev/go-portal-client/models"
)

// Action tells the router what to do with a navigation.
type Action int

const (
	// ActionWait renders a loading placeholder. Neither the screen nor a
	// redirect happens while the session is booting.
	ActionWait Action = iota
	// ActionAllow renders the requested screen.
	ActionAllow
	// ActionRedirect replaces the requested screen with Decision.To.
	ActionRedirect
)

func (a Action) String() string {
	switch a {
	case ActionWait:
		return "wait"
	case ActionAllow:
		return "allow"
	case ActionRedirect:
		return "redirect"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// Decision is the outcome of [Evaluate].
type Decision struct {
	Action Action
	// To is set for ActionRedirect only.
	To models.Route
}

var (
	DecisionWait  = Decision{Action: ActionWait}
	DecisionAllow = Decision{Action: ActionAllow}
)

// DecisionRedirect sends the user to route.
func DecisionRedirect(route models.Route) Decision {
	return Decision{Action: ActionRedirect, To: route}
}

// Evaluate decides access to a screen requiring capability.
func Evaluate(session models.Session, capability models.Capability) Decision {
	if session.Loading() {
		return DecisionWait
	}

	switch capability {
	case models.CapabilityNone:
		return DecisionAllow
	case models.CapabilityAuthenticated:
		if session.IsAuthenticated() {
			return DecisionAllow
		}
		return DecisionRedirect(models.RouteHome)
	case models.CapabilityAdminOnly:
		if session.IsAdmin() {
			return DecisionAllow
		}
		return DecisionRedirect(models.RouteHome)
	default:
		// an unknown capability admits nobody
		return DecisionRedirect(models.RouteHome)
	}
}

// RequiredCapability returns the capability a route is declared with.
// Unknown routes require authentication.
func RequiredCapability(route models.Route) models.Capability {
	switch route {
	case models.RouteHome, models.RouteLogin, models.RouteVerify:
		return models.CapabilityNone
	case models.RouteProfile, models.RouteTOTP, models.RouteApply, models.RouteModeration:
		return models.CapabilityAuthenticated
	case models.RouteAdmin:
		return models.CapabilityAdminOnly
	default:
		return models.CapabilityAuthenticated
	}
}

// EvaluateRoute is Evaluate with the route's declared capability.
func EvaluateRoute(session models.Session, route models.Route) Decision {
	return Evaluate(session, RequiredCapability(route))
}
