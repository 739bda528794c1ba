/*
 * bringup
 * Copyright (C) 2020
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package network

// Credentials identifies the access point the device joins
type Credentials struct {
	SSID       string
	Passphrase string
	Security   string
}
