// Package subscription owns the per-RPC pipeline lifecycle: spawning one
// connector per configured venue, fanning their frames into the merge
// engine, and tearing everything down when the subscriber drops
// (spec §4.6).
package subscription

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/BullionBear/orderbook/internal/apperr"
	"github.com/BullionBear/orderbook/internal/connector"
	"github.com/BullionBear/orderbook/internal/decoder"
	"github.com/BullionBear/orderbook/internal/fanin"
	"github.com/BullionBear/orderbook/internal/merge"
	"github.com/BullionBear/orderbook/internal/model"
)

const framesCapacity = 1000

// VenueConfig names one venue connector to spawn.
type VenueConfig struct {
	Venue   model.Venue
	Channel string
	URL     string
}

// Pipeline is one active BookSummary call: its connectors, merge engine,
// and output stream. Callers read Summaries until the channel closes, then
// call Stop (idempotent) to release every resource.
type Pipeline struct {
	id      string
	out     chan model.Summary
	stop    chan struct{}
	stopped sync.Once
	done    chan struct{}
}

// ID returns the subscription's correlation id, used to tag log lines
// across its connectors and merge engine task.
func (p *Pipeline) ID() string { return p.id }

// Out is the engine's output stream of merged summaries.
func (p *Pipeline) Out() <-chan model.Summary { return p.out }

// Stop fires the pipeline's single-shot shutdown signal. It is safe to
// call more than once; only the first call has any effect.
func (p *Pipeline) Stop() {
	p.stopped.Do(func() { close(p.stop) })
}

// Done is closed once every spawned task has exited following Stop.
func (p *Pipeline) Done() <-chan struct{} { return p.done }

// Start builds and launches a pipeline for the given venues and result
// size. It returns apperr.NoVenues if zero connectors could be established
// and apperr.Config if no venues were supplied at all.
func Start(ctx context.Context, venues []VenueConfig, resultSize int, logger zerolog.Logger) (*Pipeline, error) {
	if len(venues) == 0 {
		return nil, apperr.New(apperr.Config, "subscription.Start", "no venues configured")
	}

	id := uuid.NewString()
	log := logger.With().Str("subscription_id", id).Logger()

	p := &Pipeline{
		id:   id,
		out:  make(chan model.Summary, resultSize),
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}

	sources := make([]<-chan connector.Frame, 0, len(venues))
	var connected []*connector.Connector
	for _, v := range venues {
		c := connector.New(connector.Config{Venue: v.Venue, Channel: v.Channel, URL: v.URL}, log)
		if err := c.Connect(ctx); err != nil {
			log.Error().Err(err).Str("venue", v.Venue.String()).Msg("venue connection failed")
			continue
		}
		if err := c.Subscribe(); err != nil {
			log.Error().Err(err).Str("venue", v.Venue.String()).Msg("venue subscribe failed")
			continue
		}
		connected = append(connected, c)
	}

	if len(connected) == 0 {
		return nil, apperr.New(apperr.NoVenues, "subscription.Start", "zero connectors established")
	}

	var wg sync.WaitGroup
	for _, c := range connected {
		frames := make(chan connector.Frame, framesCapacity)
		sources = append(sources, frames)

		wg.Add(1)
		go func(c *connector.Connector, frames chan connector.Frame) {
			defer wg.Done()
			defer close(frames)
			if err := c.Run(frames, p.stop); err != nil {
				log.Error().Err(err).Msg("connector exited with error")
			}
		}(c, frames)
	}

	merged := fanin.Merge(sources, p.stop)
	engine := merge.New(resultSize)

	wg.Add(1)
	go func() {
		defer wg.Done()
		defer close(p.out)
		for {
			select {
			case frame, ok := <-merged:
				if !ok {
					return
				}
				update, err := decoder.Decode(frame.Venue, frame.Raw)
				if err != nil {
					log.Warn().Err(err).Str("venue", frame.Venue.String()).Msg("dropping malformed frame")
					continue
				}
				summary := engine.Apply(update)
				select {
				case p.out <- summary:
				case <-p.stop:
					return
				}
			case <-p.stop:
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		// Wait for fanin's forwarders too: merged closes only after they
		// have all returned.
		for range merged {
		}
		close(p.done)
	}()

	return p, nil
}
