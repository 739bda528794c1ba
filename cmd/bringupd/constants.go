/*
 * bringup
 * Copyright (C) 2020
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package main

const (
	defaultSettingsPath  = "/etc/bringup.conf"
	defaultListenAddress = "localhost:8080"
)
