// Package cache holds the client-side caching layer: a process-wide channel
// store and a keyed request-deduplicating fetcher.
package cache

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/PriyanshAroraa/CreatorPulse/model"
)

// ChannelLister is the slice of the API client the store depends on.
type ChannelLister interface {
	ListChannels(ctx context.Context) ([]model.Channel, error)
}

// ChannelStore is the single authoritative in-memory channel list, shared by
// every consumer for the lifetime of the process. All mutation funnels
// through Add, Remove, or a forced Load; consumers must not edit private
// copies.
type ChannelStore struct {
	api ChannelLister

	mu        sync.Mutex
	channels  []model.Channel
	loading   bool
	hasLoaded bool
}

// NewChannelStore creates an empty store backed by the given API client.
func NewChannelStore(api ChannelLister) *ChannelStore {
	return &ChannelStore{api: api}
}

// Load returns the channel list, fetching it at most once unless forced.
// The single-flight guard is best-effort: a call that finds a load already
// underway returns the current (possibly stale or empty) snapshot rather
// than issuing a duplicate request. A network failure is logged and yields
// an empty slice without touching cached state.
func (s *ChannelStore) Load(ctx context.Context, force bool) []model.Channel {
	s.mu.Lock()
	if s.hasLoaded && !force {
		snapshot := snapshotChannels(s.channels)
		s.mu.Unlock()
		return snapshot
	}
	if s.loading {
		snapshot := snapshotChannels(s.channels)
		s.mu.Unlock()
		return snapshot
	}
	s.loading = true
	s.mu.Unlock()

	channels, err := s.api.ListChannels(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	if err != nil {
		log.Warn().Err(err).Msg("Failed to load channels")
		return []model.Channel{}
	}

	s.channels = channels
	s.hasLoaded = true
	return snapshotChannels(s.channels)
}

// Add appends a channel to the cached list. This is an optimistic local
// update; the next forced Load is the reconciliation point.
func (s *ChannelStore) Add(channel model.Channel) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.channels = append(s.channels, channel)
}

// Remove drops the channel with the given identifier from the cached list.
func (s *ChannelStore) Remove(channelID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.channels[:0]
	for _, c := range s.channels {
		if c.ChannelID != channelID {
			kept = append(kept, c)
		}
	}
	s.channels = kept
}

// Channels returns a snapshot of the cached list without fetching.
func (s *ChannelStore) Channels() []model.Channel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshotChannels(s.channels)
}

// IsLoading reports whether a list fetch is in flight.
func (s *ChannelStore) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// HasLoaded reports whether the list has been fetched at least once.
func (s *ChannelStore) HasLoaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hasLoaded
}

func snapshotChannels(channels []model.Channel) []model.Channel {
	snapshot := make([]model.Channel, len(channels))
	copy(snapshot, channels)
	return snapshot
}
