/*
 * bringup
 * Copyright (C) 2020
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package mqtt

import (
	"crypto/tls"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/pkg/errors"

	"github.com/OSSystems/bringup/bringup"
)

const connectTimeout = 30 * time.Second

// TLSProvider hands the messaging layer the configuration prepared by the
// secure transport stage
type TLSProvider interface {
	Config() *tls.Config
}

// Messaging implements the pub/sub runtime over Eclipse Paho. Init
// establishes the broker session the update agent rides on; session
// maintenance past that point stays inside the client.
type Messaging struct {
	settings  *bringup.Settings
	transport TLSProvider
	client    mqtt.Client
}

// NewMessaging creates a new Messaging for the configured broker
func NewMessaging(settings *bringup.Settings, transport TLSProvider) *Messaging {
	return &Messaging{
		settings:  settings,
		transport: transport,
	}
}

// BrokerURL returns the broker address in Paho's URL form
func (m *Messaging) BrokerURL() string {
	scheme := "tcp"
	if m.settings.EnableTLS {
		scheme = "ssl"
	}

	return fmt.Sprintf("%s://%s:%d", scheme, m.settings.BrokerSettings.Host, m.settings.BrokerSettings.Port)
}

// Init is the bringup.MessagingInitializer implementation
func (m *Messaging) Init() error {
	if m.client != nil {
		return nil
	}

	opts := mqtt.NewClientOptions()
	opts.AddBroker(m.BrokerURL())
	opts.SetClientID(m.settings.ClientID)
	opts.SetConnectTimeout(connectTimeout)
	opts.SetAutoReconnect(true)

	if m.transport != nil {
		if config := m.transport.Config(); config != nil {
			opts.SetTLSConfig(config)
		}
	}

	client := mqtt.NewClient(opts)

	token := client.Connect()
	if !token.WaitTimeout(connectTimeout) {
		return errors.New("timed out connecting to broker")
	}

	if err := token.Error(); err != nil {
		return errors.Wrapf(err, "failed to connect to broker %s", m.BrokerURL())
	}

	m.client = client

	return nil
}

// Client returns the connected client; nil before Init succeeded
func (m *Messaging) Client() mqtt.Client {
	return m.client
}

// Disconnect closes the broker session
func (m *Messaging) Disconnect() {
	if m.client != nil {
		m.client.Disconnect(250)
		m.client = nil
	}
}
