// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ava-labs/drawkit/config"
	"github.com/ava-labs/drawkit/utils/logging"
	"github.com/ava-labs/drawkit/utils/sampler"
	"github.com/ava-labs/drawkit/utils/sampler/metersampler"
)

const loggerName = "drawkit"

// environment is initialized before every subcommand runs.
type environment struct {
	log      logging.Logger
	sampler  sampler.Sampler
	registry *prometheus.Registry
}

func (e *environment) init(c *cobra.Command, args []string) error {
	v, err := config.BuildViper(c.Flags(), args)
	if err != nil {
		return err
	}
	cfg, err := config.GetConfig(v)
	if err != nil {
		return err
	}

	cfg.LoggingConfig.Name = loggerName
	e.log = logging.New(cfg.LoggingConfig, logging.NopCloser(c.ErrOrStderr()))

	var engine *sampler.Engine
	if cfg.Seed != nil {
		engine = sampler.NewDeterministicEngine(*cfg.Seed)
		e.log.Debug("using deterministic source",
			zap.Uint64("seed", *cfg.Seed),
		)
	} else {
		engine = sampler.Default()
	}
	e.sampler = engine

	if !cfg.MetricsEnabled {
		return nil
	}
	e.registry = prometheus.NewRegistry()
	meter, err := metersampler.New(cfg.MetricsNamespace, e.registry, engine)
	if err != nil {
		return fmt.Errorf("couldn't register sampler metrics: %w", err)
	}
	e.sampler = meter
	return nil
}

func (e *environment) close(*cobra.Command, []string) error {
	defer e.log.Stop()

	if e.registry == nil {
		return nil
	}
	families, err := e.registry.Gather()
	if err != nil {
		return fmt.Errorf("couldn't gather metrics: %w", err)
	}
	for _, family := range families {
		for _, m := range family.GetMetric() {
			labels := make([]string, 0, len(m.GetLabel()))
			for _, label := range m.GetLabel() {
				labels = append(labels, label.GetName()+"="+label.GetValue())
			}

			fields := []zap.Field{
				zap.String("name", family.GetName()),
				zap.String("labels", strings.Join(labels, ",")),
			}
			switch {
			case m.GetCounter() != nil:
				fields = append(fields, zap.Float64("value", m.GetCounter().GetValue()))
			case m.GetHistogram() != nil:
				fields = append(fields,
					zap.Uint64("count", m.GetHistogram().GetSampleCount()),
					zap.Float64("sum", m.GetHistogram().GetSampleSum()),
				)
			}
			e.log.Info("metric", fields...)
		}
	}
	return nil
}

// writeResult writes [result] to the command's output as indented JSON.
func writeResult(c *cobra.Command, result any) error {
	b, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.OutOrStdout(), string(b))
	return err
}
