/*
 * bringup
 * Copyright (C) 2020
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/OSSystems/bringup/agent"
	"github.com/OSSystems/bringup/bringup"
)

// BringupBackend exposes the bring-up progress and the agent event log over
// the local HTTP interface
type BringupBackend struct {
	Sequencer *bringup.Sequencer
	EventLog  *agent.EventLogger
}

// NewBringupBackend creates a new BringupBackend
func NewBringupBackend(sequencer *bringup.Sequencer, eventLog *agent.EventLogger) *BringupBackend {
	return &BringupBackend{
		Sequencer: sequencer,
		EventLog:  eventLog,
	}
}

// Routes is the Backend interface implementation
func (bb *BringupBackend) Routes() []Route {
	return []Route{
		{Method: "GET", Path: "/info", Handle: bb.info},
		{Method: "GET", Path: "/status", Handle: bb.status},
		{Method: "GET", Path: "/log", Handle: bb.log},
	}
}

func (bb *BringupBackend) info(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	out := map[string]interface{}{}

	out["version"] = bb.Sequencer.Version
	out["config"] = bb.Sequencer.Settings
	out["local-address"] = bb.Sequencer.LocalAddress()

	outputJSON, _ := json.MarshalIndent(out, "", "    ")

	w.WriteHeader(200)

	fmt.Fprint(w, string(outputJSON))
}

func (bb *BringupBackend) status(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	out := bb.Sequencer.GetState().ToMap()

	outputJSON, _ := json.MarshalIndent(out, "", "    ")

	w.WriteHeader(200)

	fmt.Fprint(w, string(outputJSON))
}

func (bb *BringupBackend) log(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	out := map[string]interface{}{}
	out["entries"] = bb.EventLog.Entries()

	outputJSON, _ := json.MarshalIndent(out, "", "    ")

	w.WriteHeader(200)

	fmt.Fprint(w, string(outputJSON))
}
