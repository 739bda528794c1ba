/*
 * bringup
 * Copyright (C) 2020
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package sysinit

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"

	"github.com/OSSystems/bringup/bringup"
)

func newTestSettings(t *testing.T, ini string) *bringup.Settings {
	settings, err := bringup.LoadSettings(strings.NewReader(ini))
	assert.NoError(t, err)

	return settings
}

func generateTestCertificate(t *testing.T) ([]byte, []byte) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	assert.NoError(t, err)

	template := x509.Certificate{
		SerialNumber:          big.NewInt(1),
		Subject:               pkix.Name{CommonName: "test"},
		NotBefore:             time.Now(),
		NotAfter:              time.Now().Add(time.Hour),
		IsCA:                  true,
		KeyUsage:              x509.KeyUsageCertSign | x509.KeyUsageDigitalSignature,
		BasicConstraintsValid: true,
	}

	der, err := x509.CreateCertificate(rand.Reader, &template, &template, &key.PublicKey, key)
	assert.NoError(t, err)

	keyDER, err := x509.MarshalECPrivateKey(key)
	assert.NoError(t, err)

	certPEM := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
	keyPEM := pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: keyDER})

	return certPEM, keyPEM
}

func TestSecureTransportInitWithTLSDisabled(t *testing.T) {
	settings := newTestSettings(t, "")

	transport := NewSecureTransport(afero.NewMemMapFs(), settings)

	assert.NoError(t, transport.Init())
	assert.Nil(t, transport.Config())
}

func TestSecureTransportInitWithMissingRootCA(t *testing.T) {
	settings := newTestSettings(t, "[Broker]\nEnableTls=true\nRootCaPath=/etc/ssl/ca.pem\n")

	transport := NewSecureTransport(afero.NewMemMapFs(), settings)

	err := transport.Init()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read root CA bundle")
}

func TestSecureTransportInitWithInvalidRootCA(t *testing.T) {
	settings := newTestSettings(t, "[Broker]\nEnableTls=true\nRootCaPath=/etc/ssl/ca.pem\n")

	fs := afero.NewMemMapFs()
	afero.WriteFile(fs, "/etc/ssl/ca.pem", []byte("not a certificate"), 0644)

	transport := NewSecureTransport(fs, settings)

	assert.EqualError(t, transport.Init(), "no valid certificates in root CA bundle")
}

func TestSecureTransportInitWithRootCAOnly(t *testing.T) {
	settings := newTestSettings(t, "[Broker]\nEnableTls=true\nRootCaPath=/etc/ssl/ca.pem\n")

	certPEM, _ := generateTestCertificate(t)

	fs := afero.NewMemMapFs()
	afero.WriteFile(fs, "/etc/ssl/ca.pem", certPEM, 0644)

	transport := NewSecureTransport(fs, settings)

	assert.NoError(t, transport.Init())
	assert.NotNil(t, transport.Config())
	assert.NotNil(t, transport.Config().RootCAs)
	assert.Len(t, transport.Config().Certificates, 0)
}

func TestSecureTransportInitWithClientCertificate(t *testing.T) {
	settings := newTestSettings(t, `
[Broker]
EnableTls=true
RootCaPath=/etc/ssl/ca.pem
CertificatePath=/etc/ssl/device.pem
PrivateKeyPath=/etc/ssl/device.key
`)

	certPEM, keyPEM := generateTestCertificate(t)

	fs := afero.NewMemMapFs()
	afero.WriteFile(fs, "/etc/ssl/ca.pem", certPEM, 0644)
	afero.WriteFile(fs, "/etc/ssl/device.pem", certPEM, 0644)
	afero.WriteFile(fs, "/etc/ssl/device.key", keyPEM, 0600)

	transport := NewSecureTransport(fs, settings)

	assert.NoError(t, transport.Init())
	assert.Len(t, transport.Config().Certificates, 1)
}

func TestSecureTransportInitWithMismatchedKeyPair(t *testing.T) {
	settings := newTestSettings(t, `
[Broker]
EnableTls=true
RootCaPath=/etc/ssl/ca.pem
CertificatePath=/etc/ssl/device.pem
PrivateKeyPath=/etc/ssl/device.key
`)

	certPEM, _ := generateTestCertificate(t)
	_, otherKeyPEM := generateTestCertificate(t)

	fs := afero.NewMemMapFs()
	afero.WriteFile(fs, "/etc/ssl/ca.pem", certPEM, 0644)
	afero.WriteFile(fs, "/etc/ssl/device.pem", certPEM, 0644)
	afero.WriteFile(fs, "/etc/ssl/device.key", otherKeyPEM, 0600)

	transport := NewSecureTransport(fs, settings)

	err := transport.Init()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load client certificate")
}
