/* ipp-wire - IPP wire codec and typed attribute layer
 *
 * Copyright (C) 2020 and up by Alexander Pevzner (pzz@apevzner.com)
 * See LICENSE for license terms and conditions
 *
 * The main function
 */

// Command ipp-tool queries IPP printers, submits and manages jobs
// and pretty-prints raw IPP messages.
//
//	ipp-tool attrs [URI...] [--attr NAME]... [--filter GLOB]...
//	ipp-tool print URI FILE [--format MIME] [--job-name NAME]
//	ipp-tool job URI JOB-ID
//	ipp-tool cancel URI JOB-ID
//	ipp-tool decode FILE [--request]
//	ipp-tool check
//
// URI "-" means the printer configured in the [printer] section.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/OpenPrinting/ipp-wire/ippclient"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// app holds the state shared by all commands
type app struct {
	confPaths []string // --conf
	logLevel  string   // --log-level

	conf   ippclient.Configuration // Loaded configuration
	log    zerolog.Logger          // Program log
	logOut io.Closer               // Closes log file
	client *ippclient.Client       // IPP client
}

// newRootCmd creates the root command with all subcommands
func newRootCmd() *cobra.Command {
	a := &app{logOut: io.NopCloser(nil)}

	root := &cobra.Command{
		Use:           "ipp-tool",
		Short:         "IPP client and message inspector",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.logOut.Close()
		},
	}

	flags := root.PersistentFlags()
	flags.StringArrayVar(&a.confPaths, "conf", nil,
		"configuration file, may be repeated (default: system and user files)")
	flags.StringVar(&a.logLevel, "log-level", "",
		"log level: error, warn, info, debug, trace or disabled")

	root.AddCommand(
		a.newAttrsCmd(),
		a.newPrintCmd(),
		a.newJobCmd(),
		a.newCancelCmd(),
		a.newDecodeCmd(),
		a.newCheckCmd(),
	)

	return root
}

// init loads configuration and sets up logging and the client
func (a *app) init() error {
	paths := a.confPaths
	if len(paths) == 0 {
		paths = ippclient.DefaultConfPaths()
	}

	conf, err := ippclient.LoadConfiguration(paths...)
	if err != nil {
		return err
	}

	if a.logLevel != "" {
		conf.LogLevel, err = ippclient.ParseLogLevel(a.logLevel)
		if err != nil {
			return fmt.Errorf("--log-level: %w", err)
		}
	}

	a.conf = conf
	a.log, a.logOut = conf.NewLogger()
	a.client = ippclient.NewClient(&a.conf, a.log)

	return nil
}

// printer returns the printer object for the URI argument
func (a *app) printer(uri string) (*ippclient.Printer, error) {
	if uri == "-" {
		uri = ""
	}
	return a.conf.NewPrinter(a.client, uri)
}

// The main function
func main() {
	err := newRootCmd().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ipp-tool: %s\n", err)
		os.Exit(1)
	}
}
