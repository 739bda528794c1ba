/*
 * bringup
 * Copyright (C) 2020
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package bringup

import (
	"io"
	"time"

	"github.com/go-ini/ini"
	"github.com/pkg/errors"
)

const (
	defaultConnectionRetries       = 10
	defaultConnectionRetryInterval = 500 * time.Millisecond
	defaultBrokerPort              = 8883
)

type Settings struct {
	NetworkSettings `ini:"Network" json:"network"`
	BrokerSettings  `ini:"Broker" json:"broker"`
	AgentSettings   `ini:"Agent" json:"agent"`
}

type NetworkSettings struct {
	SSID                    string        `ini:"Ssid" json:"ssid"`
	Passphrase              string        `ini:"Passphrase" json:"-"`
	Security                string        `ini:"Security" json:"security"`
	ConnectionRetries       int           `ini:"ConnectionRetries" json:"connection-retries"`
	ConnectionRetryInterval time.Duration `ini:"ConnectionRetryInterval" json:"connection-retry-interval"`
}

type BrokerSettings struct {
	Host            string   `ini:"Host" json:"host"`
	Port            int      `ini:"Port" json:"port"`
	TopicFilters    []string `ini:"TopicFilters" json:"topic-filters"`
	ClientID        string   `ini:"ClientId" json:"client-id"`
	EnableTLS       bool     `ini:"EnableTls" json:"enable-tls"`
	RootCAPath      string   `ini:"RootCaPath" json:"root-ca-path"`
	CertificatePath string   `ini:"CertificatePath" json:"certificate-path"`
	PrivateKeyPath  string   `ini:"PrivateKeyPath" json:"private-key-path"`
}

type AgentSettings struct {
	RebootUponCompletion bool `ini:"RebootUponCompletion" json:"reboot-upon-completion"`
}

func init() {
	ini.PrettyFormat = false
}

func LoadSettings(r io.Reader) (*Settings, error) {
	cfg, err := ini.Load(io.NopCloser(r))
	if err != nil || cfg == nil {
		return nil, err
	}

	s := &Settings{
		NetworkSettings: NetworkSettings{
			SSID:                    "",
			Passphrase:              "",
			Security:                "wpa2",
			ConnectionRetries:       defaultConnectionRetries,
			ConnectionRetryInterval: defaultConnectionRetryInterval,
		},

		BrokerSettings: BrokerSettings{
			Host:            "localhost",
			Port:            defaultBrokerPort,
			TopicFilters:    []string{"anycloud/ota/image"},
			ClientID:        "bringup",
			EnableTLS:       false,
			RootCAPath:      "",
			CertificatePath: "",
			PrivateKeyPath:  "",
		},

		AgentSettings: AgentSettings{
			RebootUponCompletion: true,
		},
	}

	err = cfg.MapTo(s)
	if err != nil {
		return nil, err
	}

	if err = s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate checks the invariants the sequencer depends on
func (s *Settings) Validate() error {
	if s.ConnectionRetries <= 0 {
		return errors.New("connection retries must be greater than 0")
	}

	if s.ConnectionRetryInterval < 0 {
		return errors.New("connection retry interval must not be negative")
	}

	if s.BrokerSettings.Host == "" {
		return errors.New("broker host must be set")
	}

	if s.BrokerSettings.ClientID == "" {
		return errors.New("broker client id must be set")
	}

	return nil
}
