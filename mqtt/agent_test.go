/*
 * bringup
 * Copyright (C) 2020
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package mqtt

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/OSSystems/bringup/agent"
	"github.com/OSSystems/bringup/testsmocks/notifiermock"
)

type testMessage struct {
	topic   string
	payload []byte
}

func (m *testMessage) Duplicate() bool {
	return false
}

func (m *testMessage) Qos() byte {
	return 1
}

func (m *testMessage) Retained() bool {
	return false
}

func (m *testMessage) Topic() string {
	return m.topic
}

func (m *testMessage) MessageID() uint16 {
	return 0
}

func (m *testMessage) Payload() []byte {
	return m.payload
}

func (m *testMessage) Ack() {
}

func newTestAgent(sink agent.EventSink) *Agent {
	a := NewAgent(NewMessaging(nil, nil))

	a.handle = &agentHandle{id: "device-01", phase: agent.PhaseIdle}
	a.params = agent.AgentParams{Sink: sink}

	return a
}

func TestAgentStartWithoutSink(t *testing.T) {
	a := NewAgent(NewMessaging(nil, nil))

	handle, err := a.Start(agent.NetworkParams{}, agent.AgentParams{})

	assert.Nil(t, handle)
	assert.EqualError(t, err, "event sink is required")
}

func TestAgentStartWithoutMessaging(t *testing.T) {
	a := NewAgent(NewMessaging(nil, nil))

	ap := agent.AgentParams{Sink: agent.NewEventLogger()}

	handle, err := a.Start(agent.NetworkParams{}, ap)

	assert.Nil(t, handle)
	assert.EqualError(t, err, "messaging runtime not initialized")
}

func TestAgentOnMessageWithoutNotifier(t *testing.T) {
	received := []agent.Event{}

	a := newTestAgent(agent.SinkFunc(func(e agent.Event) {
		received = append(received, e)
	}))

	a.onMessage(nil, &testMessage{topic: "anycloud/ota/image", payload: []byte("notify")})

	assert.Len(t, received, 2)
	assert.Equal(t, agent.ReasonDownloadStarted, received[0].Reason)
	assert.Equal(t, uint32(6), received[0].Value)
	assert.Equal(t, agent.ReasonError, received[1].Reason)

	state := a.handle.State()
	assert.Equal(t, agent.PhaseError, state.Phase)
	assert.EqualError(t, state.LastError, "no update notifier installed")
}

func TestAgentOnMessageWithNotifier(t *testing.T) {
	received := []agent.Event{}

	a := newTestAgent(agent.SinkFunc(func(e agent.Event) {
		received = append(received, e)
	}))

	nm := &notifiermock.NotifierMock{}
	nm.On("Notify", "anycloud/ota/image", []byte("notify")).Return(nil).Once()

	a.SetNotifier(nm)

	a.onMessage(nil, &testMessage{topic: "anycloud/ota/image", payload: []byte("notify")})

	assert.Len(t, received, 1)
	assert.Equal(t, agent.ReasonDownloadStarted, received[0].Reason)

	state := a.handle.State()
	assert.Equal(t, agent.PhaseIdle, state.Phase)
	assert.Nil(t, state.LastError)

	nm.AssertExpectations(t)
}

func TestAgentOnMessageWithFailingNotifier(t *testing.T) {
	received := []agent.Event{}

	a := newTestAgent(agent.SinkFunc(func(e agent.Event) {
		received = append(received, e)
	}))

	expectedErr := fmt.Errorf("download refused")

	nm := &notifiermock.NotifierMock{}
	nm.On("Notify", "anycloud/ota/image", []byte("notify")).Return(expectedErr).Once()

	a.SetNotifier(nm)

	a.onMessage(nil, &testMessage{topic: "anycloud/ota/image", payload: []byte("notify")})

	assert.Len(t, received, 2)
	assert.Equal(t, agent.ReasonError, received[1].Reason)

	state := a.handle.State()
	assert.Equal(t, agent.PhaseError, state.Phase)
	assert.Equal(t, expectedErr, state.LastError)

	nm.AssertExpectations(t)
}

func TestAgentHandleID(t *testing.T) {
	h := &agentHandle{id: "device-01"}

	assert.Equal(t, "device-01", h.ID())
}
