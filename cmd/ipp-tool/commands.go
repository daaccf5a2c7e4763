/* ipp-wire - IPP wire codec and typed attribute layer
 *
 * Copyright (C) 2020 and up by Alexander Pevzner (pzz@apevzner.com)
 * See LICENSE for license terms and conditions
 *
 * ipp-tool commands
 */

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/OpenPrinting/ipp-wire/ipp"
	"github.com/OpenPrinting/ipp-wire/ippclient"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// attrsParallel limits count of printers queried at once
const attrsParallel = 8

// newAttrsCmd creates the "attrs" command
func (a *app) newAttrsCmd() *cobra.Command {
	var attrs, filter []string

	cmd := &cobra.Command{
		Use:   "attrs [URI...]",
		Short: "Query printer attributes",
		Long: "Query printer attributes of one or more printers. Printers\n" +
			"are queried concurrently; results are printed in order.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"-"}
			}

			printers := make([]*ippclient.Printer, len(args))
			for i, uri := range args {
				p, err := a.printer(uri)
				if err != nil {
					return err
				}
				printers[i] = p
			}

			responses := make([]*ipp.Response, len(printers))
			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(attrsParallel)

			for i, p := range printers {
				g.Go(func() error {
					rsp, err := p.GetPrinterAttributes(ctx, attrs...)
					if err != nil {
						return fmt.Errorf("%s: %w", p.URI, err)
					}
					responses[i] = rsp
					return nil
				})
			}

			if err := g.Wait(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, rsp := range responses {
				if i > 0 {
					fmt.Fprintln(out)
				}
				printPrinter(out, printers[i].URI, rsp, filter)
			}

			return nil
		},
	}

	cmd.Flags().StringArrayVar(&attrs, "attr", nil,
		"requested attribute, may be repeated (default: printer's choice)")
	cmd.Flags().StringArrayVar(&filter, "filter", nil,
		"print only attributes matching glob, may be repeated")

	return cmd
}

// printPrinter prints printer summary and its attributes
func printPrinter(out io.Writer, uri string, rsp *ipp.Response,
	filter []string) {
	info := ippclient.DecodePrinterInfo(rsp)

	fmt.Fprintf(out, "PRINTER %s\n", uri)
	fmt.Fprintf(out, "  name:  %q\n", info.DNSSDName)
	fmt.Fprintf(out, "  state: %s\n", info.State)
	for _, txt := range info.Txt() {
		fmt.Fprintf(out, "  %s=%s\n", txt.Key, txt.Value)
	}
	fmt.Fprintln(out)

	f := ipp.NewFormatter()
	f.SetFilter(ipp.NameFilter(filter))
	for _, g := range rsp.Groups {
		if g.Tag == ipp.TagPrinterGroup {
			f.FmtGroup(g)
		}
	}
	f.WriteTo(out)
}

// newPrintCmd creates the "print" command
func (a *app) newPrintCmd() *cobra.Command {
	var opt ippclient.JobOptions

	cmd := &cobra.Command{
		Use:   "print URI FILE",
		Short: "Print a file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.printer(args[0])
			if err != nil {
				return err
			}

			file, err := os.Open(args[1])
			if err != nil {
				return err
			}
			defer file.Close()

			if opt.JobName == "" {
				opt.JobName = filepath.Base(args[1])
			}
			opt.DocumentName = filepath.Base(args[1])

			job, _, err := p.PrintJob(cmd.Context(), file, opt)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "job-id: %d\n", job.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&opt.DocumentFormat, "format",
		"application/octet-stream", "document format (MIME type)")
	cmd.Flags().StringVar(&opt.JobName, "job-name", "",
		"job name (default: file name)")

	return cmd
}

// newJobCmd creates the "job" command
func (a *app) newJobCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "job URI JOB-ID",
		Short: "Query job attributes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			job, err := a.job(args[0], args[1])
			if err != nil {
				return err
			}

			rsp, err := job.GetJobAttributes(cmd.Context())
			if err != nil {
				return err
			}

			f := ipp.NewFormatter()
			for _, g := range rsp.Groups {
				if g.Tag == ipp.TagJobGroup {
					f.FmtGroup(g)
				}
			}
			f.WriteTo(cmd.OutOrStdout())

			return nil
		},
	}
}

// newCancelCmd creates the "cancel" command
func (a *app) newCancelCmd() *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:   "cancel URI JOB-ID",
		Short: "Cancel a job",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			job, err := a.job(args[0], args[1])
			if err != nil {
				return err
			}

			_, err = job.CancelJob(cmd.Context(), message)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "job %d canceled\n", job.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&message, "message", "",
		"message passed to the printer")

	return cmd
}

// job returns the job object for the URI and JOB-ID arguments
func (a *app) job(uri, id string) (*ippclient.Job, error) {
	p, err := a.printer(uri)
	if err != nil {
		return nil, err
	}

	jobID, err := strconv.Atoi(id)
	if err != nil || jobID < 1 {
		return nil, fmt.Errorf("%q: invalid job-id", id)
	}

	return p.Job(jobID), nil
}

// newDecodeCmd creates the "decode" command
func (a *app) newDecodeCmd() *cobra.Command {
	var request, workarounds bool

	cmd := &cobra.Command{
		Use:   "decode FILE",
		Short: "Pretty-print a raw IPP message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			d := ipp.NewDecoder(data, ipp.DecoderOptions{
				EnableWorkarounds: workarounds,
			})

			f := ipp.NewFormatter()
			if request {
				rq, err := d.DecodeRequest()
				if err != nil {
					return err
				}
				f.FmtRequest(rq)
			} else {
				rsp, err := d.DecodeResponse()
				if err != nil {
					return err
				}
				f.FmtResponse(rsp)
			}

			if n := len(d.Remaining()); n > 0 {
				f.Printf("%d bytes of document data", n)
			}

			f.WriteTo(cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().BoolVar(&request, "request", false,
		"decode request (default: response)")
	cmd.Flags().BoolVar(&workarounds, "workarounds", false,
		"tolerate known encoding errors of some printers")

	return cmd
}

// newCheckCmd creates the "check" command
func (a *app) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check configuration and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			conf := &a.conf

			fmt.Fprintf(out, "Configuration files: OK\n")
			fmt.Fprintf(out, "  printer uri:       %q\n", conf.PrinterURI)
			fmt.Fprintf(out, "  language:          %s\n", conf.Language)
			fmt.Fprintf(out, "  version:           %s\n", conf.Version)
			fmt.Fprintf(out, "  auth mode:         %s\n", conf.Auth.Mode)
			fmt.Fprintf(out, "  timeout:           %s\n", conf.Timeout)
			fmt.Fprintf(out, "  max response size: %d\n", conf.MaxResponseSize)
			fmt.Fprintf(out, "  log level:         %s\n", conf.LogLevel)

			return nil
		},
	}
}
