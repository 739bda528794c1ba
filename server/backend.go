/*
 * bringup
 * Copyright (C) 2020
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package server

import "github.com/julienschmidt/httprouter"

type Route struct {
	Method string
	Path   string
	Handle httprouter.Handle
}

type Backend interface {
	Routes() []Route
}

type BackendRouter struct {
	HTTPRouter *httprouter.Router
	backend    Backend
}

func NewBackendRouter(b Backend) *BackendRouter {
	router := httprouter.New()

	for _, route := range b.Routes() {
		router.Handle(route.Method, route.Path, route.Handle)
	}

	return &BackendRouter{
		HTTPRouter: router,
		backend:    b,
	}
}
