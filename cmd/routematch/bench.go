package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/trierouter/core/logger"
	"github.com/dmitrymomot/trierouter/pkg/routemetrics"
)

const benchNamespace = "routematch"

type benchStats struct {
	matches uint64
	hits    float64
	elapsed time.Duration
}

func (a *app) benchCmd() *cobra.Command {
	var iterations int

	cmd := &cobra.Command{
		Use:   "bench METHOD PATH",
		Short: "Match a request repeatedly and report the recorded match metrics",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if iterations <= 0 {
				return fmt.Errorf("iterations must be positive, got %d", iterations)
			}

			r, err := a.router()
			if err != nil {
				return err
			}

			reg := prometheus.NewRegistry()
			m := routemetrics.New[string](r,
				routemetrics.WithNamespace(benchNamespace),
				routemetrics.WithRegistry(reg),
			)

			method, path := strings.ToUpper(args[0]), a.path(args[1])
			for range iterations {
				m.Match(method, path)
			}

			stats, err := gatherBenchStats(reg)
			if err != nil {
				return err
			}
			a.log.Debug("bench finished",
				logger.Method(method),
				logger.Path(path),
				logger.Count("iterations", iterations),
				logger.Duration(stats.elapsed),
			)
			renderBench(cmd.OutOrStdout(), method, path, stats)
			return nil
		},
	}

	cmd.Flags().IntVarP(&iterations, "iterations", "n", 10000, "number of matches to run")
	return cmd
}

func gatherBenchStats(g prometheus.Gatherer) (benchStats, error) {
	families, err := g.Gather()
	if err != nil {
		return benchStats{}, fmt.Errorf("gather match metrics: %w", err)
	}

	var stats benchStats
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			h := metric.GetHistogram()
			if h == nil {
				continue
			}
			switch mf.GetName() {
			case benchNamespace + "_match_duration_seconds":
				stats.matches += h.GetSampleCount()
				stats.elapsed += time.Duration(h.GetSampleSum() * float64(time.Second))
			case benchNamespace + "_match_hits":
				stats.hits += h.GetSampleSum()
			}
		}
	}
	if stats.matches == 0 {
		return benchStats{}, fmt.Errorf("no match metrics recorded")
	}
	return stats, nil
}

func renderBench(w io.Writer, method, path string, s benchStats) {
	fmt.Fprintf(w, "%s %s\n", method, path)

	n := float64(s.matches)
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Matches", "Hits/op", "Avg", "Total"})
	table.Append([]string{
		strconv.FormatUint(s.matches, 10),
		strconv.FormatFloat(s.hits/n, 'f', 2, 64),
		time.Duration(float64(s.elapsed) / n).String(),
		s.elapsed.String(),
	})
	table.Render()
}
