/*
 * bringup
 * Copyright (C) 2020
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package bringup

// BringupState holds the possible states for the bring-up sequencer
type BringupState int

const (
	// BringupStateInit is set before any stage has run
	BringupStateInit = iota
	// BringupStateNetworkJoining is set while the device associates with
	// the configured access point
	BringupStateNetworkJoining
	// BringupStateNetworkJoined is set once an address was assigned
	BringupStateNetworkJoined
	// BringupStateRuntimeReady is set once the runtime support services
	// are initialized
	BringupStateRuntimeReady
	// BringupStateTransportReady is set once the secure transport is
	// initialized
	BringupStateTransportReady
	// BringupStateMessagingReady is set once the messaging runtime is
	// initialized
	BringupStateMessagingReady
	// BringupStateAgentActive is set once the update agent runs on its own;
	// this is the terminal success state
	BringupStateAgentActive
	// BringupStateHalted is set after a fault no stage can recover from;
	// this is the terminal failure state
	BringupStateHalted
)

var statusNames = map[BringupState]string{
	BringupStateInit:           "init",
	BringupStateNetworkJoining: "network-joining",
	BringupStateNetworkJoined:  "network-joined",
	BringupStateRuntimeReady:   "runtime-ready",
	BringupStateTransportReady: "transport-ready",
	BringupStateMessagingReady: "messaging-ready",
	BringupStateAgentActive:    "agent-active",
	BringupStateHalted:         "halted",
}

// BaseState is the state from which all others must do composition
type BaseState struct {
	id BringupState
}

// ID returns the state id
func (b *BaseState) ID() BringupState {
	return b.id
}

// ToMap is for the State interface implementation
func (state *BaseState) ToMap() map[string]interface{} {
	m := map[string]interface{}{}
	m["status"] = StateToString(state.ID())
	return m
}

// State interface describes the necessary operations for a State
type State interface {
	ID() BringupState
	Handle(*Sequencer) State // Handle implements the behavior when the State is set
	ToMap() map[string]interface{}
}

// StateToString converts a "BringupState" to string
func StateToString(status BringupState) string {
	return statusNames[status]
}
