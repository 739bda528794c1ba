/*
 * bringup
 * Copyright (C) 2020
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package sysinit

import (
	"crypto/tls"
	"crypto/x509"

	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/OSSystems/bringup/bringup"
)

// SecureTransport loads the TLS material configured for the broker
// connection and keeps the resulting configuration for the messaging layer
type SecureTransport struct {
	Store    afero.Fs
	Settings *bringup.Settings

	config *tls.Config
}

// NewSecureTransport creates a new SecureTransport reading certificates
// from the provided filesystem
func NewSecureTransport(store afero.Fs, settings *bringup.Settings) *SecureTransport {
	return &SecureTransport{
		Store:    store,
		Settings: settings,
	}
}

// Init is the bringup.TransportInitializer implementation. With TLS
// disabled it succeeds without building a configuration.
func (t *SecureTransport) Init() error {
	if !t.Settings.EnableTLS {
		return nil
	}

	rootCA, err := afero.ReadFile(t.Store, t.Settings.RootCAPath)
	if err != nil {
		return errors.Wrapf(err, "failed to read root CA bundle")
	}

	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(rootCA) {
		return errors.New("no valid certificates in root CA bundle")
	}

	config := &tls.Config{RootCAs: pool}

	if t.Settings.CertificatePath != "" {
		certificate, err := afero.ReadFile(t.Store, t.Settings.CertificatePath)
		if err != nil {
			return errors.Wrapf(err, "failed to read client certificate")
		}

		key, err := afero.ReadFile(t.Store, t.Settings.PrivateKeyPath)
		if err != nil {
			return errors.Wrapf(err, "failed to read client private key")
		}

		pair, err := tls.X509KeyPair(certificate, key)
		if err != nil {
			return errors.Wrapf(err, "failed to load client certificate")
		}

		config.Certificates = []tls.Certificate{pair}
	}

	t.config = config

	return nil
}

// Config returns the TLS configuration built by Init; nil while TLS is
// disabled or before Init succeeded
func (t *SecureTransport) Config() *tls.Config {
	return t.config
}
