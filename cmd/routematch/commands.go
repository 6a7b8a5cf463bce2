package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/trierouter/core/logger"
	"github.com/dmitrymomot/trierouter/core/router"
)

func (a *app) matchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "match METHOD PATH [PATH...]",
		Short: "List every route matching the request, most specific first",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.router()
			if err != nil {
				return err
			}

			method := strings.ToUpper(args[0])
			for _, p := range args[1:] {
				path := a.path(p)
				start := time.Now()
				hits := r.Match(method, path)
				a.log.Debug("matched",
					logger.Method(method),
					logger.Path(path),
					logger.Count("hits", len(hits)),
					logger.Elapsed(start),
				)
				renderHits(cmd.OutOrStdout(), method, path, hits)
			}
			return nil
		},
	}
}

func (a *app) routesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List registered routes in registration order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := a.router()
			if err != nil {
				return err
			}
			renderRoutes(cmd.OutOrStdout(), r.Routes())
			return nil
		},
	}
}

func (a *app) allowedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "allowed PATH",
		Short: "Print the methods registered for routes matching PATH",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.router()
			if err != nil {
				return err
			}
			methods := r.Allowed(a.path(args[0]))
			if len(methods) == 0 {
				return fmt.Errorf("no route matches %s", args[0])
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(methods, ", "))
			return err
		},
	}
}

func renderHits(w io.Writer, method, path string, hits []router.Hit[string]) {
	fmt.Fprintf(w, "%s %s\n", method, path)
	if len(hits) == 0 {
		fmt.Fprintln(w, "  no match")
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Route", "Method", "Pattern", "Params"})
	table.SetAutoWrapText(false)
	for i, h := range hits {
		table.Append([]string{
			strconv.Itoa(i + 1),
			h.Handler,
			h.Method,
			h.Pattern,
			formatParams(h.Params),
		})
	}
	table.Render()
}

func renderRoutes(w io.Writer, routes []router.Route) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Method", "Pattern"})
	table.SetAutoWrapText(false)
	for i, rt := range routes {
		table.Append([]string{strconv.Itoa(i + 1), rt.Method, rt.Pattern})
	}
	table.Render()
}

func formatParams(ps router.Params) string {
	if len(ps) == 0 {
		return "-"
	}
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = p.Key + "=" + p.Value
	}
	return strings.Join(parts, " ")
}
