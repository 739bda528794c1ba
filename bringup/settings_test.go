/*
 * bringup
 * Copyright (C) 2020
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package bringup

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const customSettings = `
[Network]
Ssid=factory-floor
Passphrase=secret
Security=wpa3
ConnectionRetries=3
ConnectionRetryInterval=250ms

[Broker]
Host=broker.example.com
Port=1883
TopicFilters=anycloud/ota/image,anycloud/ota/notify
ClientId=device-01
EnableTls=true
RootCaPath=/etc/ssl/certs/ota-ca.pem
CertificatePath=/etc/ssl/certs/device.pem
PrivateKeyPath=/etc/ssl/private/device.key

[Agent]
RebootUponCompletion=false
`

func TestLoadSettingsWithDefaults(t *testing.T) {
	s, err := LoadSettings(strings.NewReader(""))
	assert.NoError(t, err)

	assert.Equal(t, 10, s.ConnectionRetries)
	assert.Equal(t, 500*time.Millisecond, s.ConnectionRetryInterval)
	assert.Equal(t, "wpa2", s.Security)
	assert.Equal(t, "localhost", s.BrokerSettings.Host)
	assert.Equal(t, 8883, s.BrokerSettings.Port)
	assert.Equal(t, []string{"anycloud/ota/image"}, s.TopicFilters)
	assert.Equal(t, "bringup", s.ClientID)
	assert.False(t, s.EnableTLS)
	assert.True(t, s.RebootUponCompletion)
}

func TestLoadSettingsWithCustomSettings(t *testing.T) {
	s, err := LoadSettings(strings.NewReader(customSettings))
	assert.NoError(t, err)

	assert.Equal(t, "factory-floor", s.SSID)
	assert.Equal(t, "secret", s.Passphrase)
	assert.Equal(t, "wpa3", s.Security)
	assert.Equal(t, 3, s.ConnectionRetries)
	assert.Equal(t, 250*time.Millisecond, s.ConnectionRetryInterval)
	assert.Equal(t, "broker.example.com", s.BrokerSettings.Host)
	assert.Equal(t, 1883, s.BrokerSettings.Port)
	assert.Equal(t, []string{"anycloud/ota/image", "anycloud/ota/notify"}, s.TopicFilters)
	assert.Equal(t, "device-01", s.ClientID)
	assert.True(t, s.EnableTLS)
	assert.Equal(t, "/etc/ssl/certs/ota-ca.pem", s.RootCAPath)
	assert.Equal(t, "/etc/ssl/certs/device.pem", s.CertificatePath)
	assert.Equal(t, "/etc/ssl/private/device.key", s.PrivateKeyPath)
	assert.False(t, s.RebootUponCompletion)
}

func TestLoadSettingsWithInvalidSettings(t *testing.T) {
	testCases := []struct {
		name          string
		settings      string
		expectedError string
	}{
		{
			"ZeroRetries",
			"[Network]\nConnectionRetries=0\n",
			"connection retries must be greater than 0",
		},
		{
			"NegativeRetries",
			"[Network]\nConnectionRetries=-2\n",
			"connection retries must be greater than 0",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := LoadSettings(strings.NewReader(tc.settings))
			assert.Nil(t, s)
			assert.EqualError(t, err, tc.expectedError)
		})
	}
}

func TestValidateWithInvalidSettings(t *testing.T) {
	testCases := []struct {
		name          string
		corrupt       func(s *Settings)
		expectedError string
	}{
		{
			"NegativeRetryInterval",
			func(s *Settings) { s.ConnectionRetryInterval = -1 * time.Second },
			"connection retry interval must not be negative",
		},
		{
			"EmptyBrokerHost",
			func(s *Settings) { s.BrokerSettings.Host = "" },
			"broker host must be set",
		},
		{
			"EmptyClientID",
			func(s *Settings) { s.ClientID = "" },
			"broker client id must be set",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := LoadSettings(strings.NewReader(""))
			assert.NoError(t, err)

			tc.corrupt(s)

			assert.EqualError(t, s.Validate(), tc.expectedError)
		})
	}
}
