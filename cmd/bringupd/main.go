/*
 * bringup
 * Copyright (C) 2020
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/OSSystems/pkg/log"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/OSSystems/bringup/agent"
	"github.com/OSSystems/bringup/bringup"
	"github.com/OSSystems/bringup/mqtt"
	"github.com/OSSystems/bringup/network"
	"github.com/OSSystems/bringup/server"
	"github.com/OSSystems/bringup/sysinit"
)

var gitversion = "No version provided"

func main() {
	var settingsPath string
	var logLevel string
	var listenAddress string

	rootCmd := &cobra.Command{
		Use:   "bringupd",
		Short: "Device bring-up daemon",
		RunE: func(cmd *cobra.Command, args []string) error {
			return execMainCmd(settingsPath, logLevel, listenAddress)
		},
	}

	rootCmd.Flags().StringVarP(&settingsPath, "config", "c", defaultSettingsPath, "Settings file path")
	rootCmd.Flags().StringVarP(&logLevel, "log-level", "l", "info", "Log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&listenAddress, "listen", defaultListenAddress, "Local HTTP backend address")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func execMainCmd(settingsPath string, logLevel string, listenAddress string) error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return err
	}

	log.SetLevel(level)

	osFs := afero.NewOsFs()

	settings, err := loadSettings(osFs, settingsPath)
	if err != nil {
		return err
	}

	transport := sysinit.NewSecureTransport(osFs, settings)
	messaging := mqtt.NewMessaging(settings, transport)
	joiner := network.NewJoiner(fmt.Sprintf("%s:%d",
		settings.BrokerSettings.Host, settings.BrokerSettings.Port))
	sink := agent.NewEventLogger()

	sequencer := bringup.NewSequencer(
		gitversion,
		settings,
		joiner,
		sysinit.NewRuntimeSupport(),
		transport,
		messaging,
		mqtt.NewAgent(messaging),
		sink,
	)

	backend := server.NewBringupBackend(sequencer, sink)

	go func() {
		router := server.NewBackendRouter(backend)
		if err := http.ListenAndServe(listenAddress, router.HTTPRouter); err != nil {
			log.Fatal(err)
		}
	}()

	daemon := bringup.NewDaemon(sequencer)

	if code := daemon.Run(); code != 0 {
		os.Exit(code)
	}

	// The agent owns the update workflow from here on; park this goroutine
	// the way the bring-up task suspends itself on the device.
	select {}
}

func loadSettings(fs afero.Fs, settingsPath string) (*bringup.Settings, error) {
	file, err := fs.Open(settingsPath)
	if os.IsNotExist(err) {
		// no settings file means compiled-in defaults
		return bringup.LoadSettings(strings.NewReader(""))
	}

	if err != nil {
		return nil, err
	}

	defer file.Close()

	return bringup.LoadSettings(file)
}
