// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-portal-client/internal/store"
	"github.com/MKhiriev/go-portal-client/internal/utils"
	"github.com/MKhiriev/go-portal-client/models"
)

const headerRequestID = "X-Request-ID"

type pinnedCredentialKey struct{}

// WithCredential pins cred for requests made with the returned context.
// The bearer stage sends it instead of the stored credential, and a 401 on
// such a request leaves the store alone since the store was not its source.
func WithCredential(ctx context.Context, cred models.Credential) context.Context {
	return context.WithValue(ctx, pinnedCredentialKey{}, cred)
}

func pinnedCredential(ctx context.Context) (models.Credential, bool) {
	cred, ok := ctx.Value(pinnedCredentialKey{}).(models.Credential)
	return cred, ok && !cred.IsZero()
}

// bearerMiddleware attaches the credential on every request. The store is
// read per request; the token can change between calls.
func bearerMiddleware(creds store.CredentialStore) resty.RequestMiddleware {
	return func(_ *resty.Client, r *resty.Request) error {
		ctx := r.Context()

		if cred, ok := pinnedCredential(ctx); ok {
			r.SetHeader("Authorization", "Bearer "+cred.Token)
			return nil
		}

		cred, ok, err := creds.Get(ctx)
		if err != nil {
			return fmt.Errorf("bearer: %w", err)
		}
		if ok {
			r.SetHeader("Authorization", "Bearer "+cred.Token)
		}
		return nil
	}
}

func requestIDMiddleware(gen *utils.UUIDGenerator) resty.RequestMiddleware {
	return func(_ *resty.Client, r *resty.Request) error {
		id, ok := utils.GetRequestIDFromContext(r.Context())
		if !ok {
			id = gen.Generate()
		}
		r.SetHeader(headerRequestID, id)
		return nil
	}
}

// credentialRejectionMiddleware is the only place outside the session
// manager that writes the credential store. It reacts to 401 by clearing
// the store and notifying listeners, unless the user is on the login screen
// or the request carried a pinned credential.
func (h *HTTPServerAdapter) credentialRejectionMiddleware(_ *resty.Client, resp *resty.Response) error {
	if resp.StatusCode() != http.StatusUnauthorized {
		return nil
	}

	ctx := resp.Request.Context()
	log := h.logger

	if _, ok := pinnedCredential(ctx); ok {
		return nil
	}
	if h.location() == models.RouteLogin {
		log.Debug().Str("func", "credentialRejectionMiddleware").Msg("401 on login screen, credential kept")
		return nil
	}

	if err := h.creds.Clear(ctx); err != nil {
		// the 401 itself is what the caller needs to see
		log.Err(err).Str("func", "credentialRejectionMiddleware").Msg("failed to clear rejected credential")
	}
	h.metrics.ObserveInvalidation()
	log.Info().
		Str("func", "credentialRejectionMiddleware").
		Str("path", resp.Request.URL).
		Msg("credential rejected, store cleared")

	for _, l := range h.invalidationListeners() {
		l(ctx)
	}
	return nil
}

func (h *HTTPServerAdapter) metricsMiddleware(_ *resty.Client, resp *resty.Response) error {
	h.metrics.ObserveResponse(resp.StatusCode(), resp.Time())
	return nil
}
