/*
 * bringup
 * Copyright (C) 2020
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package mqtt

import (
	"sync"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/pkg/errors"

	"github.com/OSSystems/bringup/agent"
)

// Notifier is the seam for the update implementation proper: it receives
// the raw update notification and owns everything from there (fetching,
// verification, installation). The reference agent only reports.
type Notifier interface {
	Notify(topic string, payload []byte) error
}

// Agent is a reference update agent riding on the messaging session. Start
// subscribes to the configured topic filters and reports the agent
// lifecycle through the registered event sink; update notifications are
// handed to the installed Notifier.
type Agent struct {
	messaging *Messaging
	notifier  Notifier

	handle *agentHandle
	params agent.AgentParams
}

// NewAgent creates a new Agent on top of an initialized messaging runtime
func NewAgent(messaging *Messaging) *Agent {
	return &Agent{
		messaging: messaging,
	}
}

// SetNotifier installs the update implementation notified on inbound
// messages. Must be called before Start.
func (a *Agent) SetNotifier(notifier Notifier) {
	a.notifier = notifier
}

// Start is the agent.Agent implementation
func (a *Agent) Start(np agent.NetworkParams, ap agent.AgentParams) (agent.Handle, error) {
	if ap.Sink == nil {
		return nil, errors.New("event sink is required")
	}

	client := a.messaging.Client()
	if client == nil {
		return nil, errors.New("messaging runtime not initialized")
	}

	a.handle = &agentHandle{id: np.ClientID, phase: agent.PhaseIdle}
	a.params = ap

	for _, filter := range np.TopicFilters {
		token := client.Subscribe(filter, 1, a.onMessage)
		if !token.WaitTimeout(connectTimeout) {
			return nil, errors.Errorf("timed out subscribing to %q", filter)
		}

		if err := token.Error(); err != nil {
			return nil, errors.Wrapf(err, "failed to subscribe to %q", filter)
		}
	}

	a.emit(agent.ReasonAgentStarted, 0)

	return a.handle, nil
}

func (a *Agent) onMessage(client mqtt.Client, msg mqtt.Message) {
	a.handle.setPhase(agent.PhaseDownloading)
	a.emit(agent.ReasonDownloadStarted, uint32(len(msg.Payload())))

	if a.notifier == nil {
		a.fail(errors.New("no update notifier installed"))
		return
	}

	if err := a.notifier.Notify(msg.Topic(), msg.Payload()); err != nil {
		a.fail(err)
		return
	}

	a.handle.setPhase(agent.PhaseIdle)
}

func (a *Agent) fail(err error) {
	a.handle.setError(err)
	a.emit(agent.ReasonError, 0)
}

func (a *Agent) emit(reason agent.Reason, value uint32) {
	a.params.Sink.OnEvent(agent.Event{
		Reason: reason,
		Value:  value,
		Handle: a.handle,
	})
}

// agentHandle is the agent.Handle implementation. The sink reads it on the
// messaging goroutine while the agent mutates it, so every access goes
// through the mutex.
type agentHandle struct {
	id string

	mu        sync.Mutex
	phase     agent.Phase
	lastError error
}

// ID is for the agent.Handle interface implementation
func (h *agentHandle) ID() string {
	return h.id
}

// State is for the agent.Handle interface implementation
func (h *agentHandle) State() agent.State {
	h.mu.Lock()
	defer h.mu.Unlock()

	return agent.State{
		Phase:     h.phase,
		LastError: h.lastError,
	}
}

func (h *agentHandle) setPhase(phase agent.Phase) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.phase = phase
}

func (h *agentHandle) setError(err error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.phase = agent.PhaseError
	h.lastError = err
}
