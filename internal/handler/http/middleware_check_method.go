// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns the handler registered with
// [chi.Mux.MethodNotAllowed]. A request whose path is known but whose method
// is not gets 404 instead of chi's 405, so peers probing with the wrong verb
// cannot tell routes apart from unknown paths.
//
// Matching goes through [chi.Mux.Match], so parameterised routes and routes
// mounted on sub-routers are resolved the same way as during dispatch.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if !router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			http.NotFound(w, r)
			return
		}

		router.ServeHTTP(w, r)
	}
}
