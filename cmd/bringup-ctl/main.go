/*
 * bringup
 * Copyright (C) 2020
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/hokaccha/go-prettyjson"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bringup-ctl",
	Short: "Bring-up Control Utility",
}

func main() {
	var serverAddress string

	infoCmd := &cobra.Command{
		Use:   "info",
		Short: "Print general information",
		RunE: func(cmd *cobra.Command, args []string) error {
			return execGetCmd(serverAddress, "/info")
		},
	}

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Print the bring-up state",
		RunE: func(cmd *cobra.Command, args []string) error {
			return execGetCmd(serverAddress, "/status")
		},
	}

	logCmd := &cobra.Command{
		Use:   "log",
		Short: "Print agent event entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			return execGetCmd(serverAddress, "/log")
		},
	}

	rootCmd.PersistentFlags().StringVarP(&serverAddress, "server-address", "s", "localhost:8080", "Address of the local bring-up backend")

	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(logCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func execGetCmd(serverAddress string, path string) error {
	r, err := http.Get(fmt.Sprintf("http://%s%s", serverAddress, path))
	if err != nil {
		return err
	}

	defer r.Body.Close()

	var out map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&out); err != nil {
		return err
	}

	output, _ := prettyjson.Marshal(out)
	fmt.Println(string(output))

	return nil
}
