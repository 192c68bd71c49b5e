package chandb

import (
	"sync/atomic"

	"github.com/streammapparr/streammatch/internal/match"
)

// Snapshot is an immutable view of the channel database. Broadcast records
// are indexed by callsign; a callsign carrying a known suffix (-TV, -CD,
// -LP, -DT, -LD) is additionally indexed under its suffix-stripped base
// form, both keys pointing at the same record.
type Snapshot struct {
	broadcast    []Record
	premium      []Record
	premiumNames []string
	byCallsign   map[string]*Record
}

// NewSnapshot builds a snapshot from loaded records. Input order is
// preserved for premium records; candidate order is part of the matching
// contract.
func NewSnapshot(records []Record) *Snapshot {
	s := &Snapshot{byCallsign: make(map[string]*Record)}
	for _, rec := range records {
		switch rec.Type {
		case Broadcast:
			s.broadcast = append(s.broadcast, rec)
		default:
			if rec.Name != "" {
				s.premium = append(s.premium, rec)
				s.premiumNames = append(s.premiumNames, rec.Name)
			}
		}
	}
	for i := range s.broadcast {
		rec := &s.broadcast[i]
		if rec.Callsign == "" {
			continue
		}
		s.byCallsign[rec.Callsign] = rec
		if base := match.StripCallsignSuffix(rec.Callsign); base != rec.Callsign {
			s.byCallsign[base] = rec
		}
	}
	return s
}

// ByCallsign looks up a broadcast record by exact callsign key, which may
// be a suffix-stripped base form. Returns nil when unknown.
func (s *Snapshot) ByCallsign(callsign string) *Record {
	return s.byCallsign[callsign]
}

// PremiumNames returns the ordered premium channel names for use as a
// match candidate list. The returned slice is shared and must not be
// modified.
func (s *Snapshot) PremiumNames() []string {
	return s.premiumNames
}

// Premium returns the ordered premium records. Shared, read-only.
func (s *Snapshot) Premium() []Record {
	return s.premium
}

// BroadcastCount reports the number of broadcast records.
func (s *Snapshot) BroadcastCount() int {
	return len(s.broadcast)
}

// PremiumCount reports the number of premium records.
func (s *Snapshot) PremiumCount() int {
	return len(s.premium)
}

// Store owns the current database snapshot. Reload builds a complete new
// snapshot before swapping it in, so concurrent readers always see either
// the old or the new database, never a partial one.
type Store struct {
	snap atomic.Pointer[Snapshot]
}

// NewStore returns a store holding an empty snapshot.
func NewStore() *Store {
	s := &Store{}
	s.snap.Store(NewSnapshot(nil))
	return s
}

// Snapshot returns the current database snapshot.
func (s *Store) Snapshot() *Snapshot {
	return s.snap.Load()
}

// Swap atomically replaces the current snapshot.
func (s *Store) Swap(snap *Snapshot) {
	if snap == nil {
		snap = NewSnapshot(nil)
	}
	s.snap.Store(snap)
}
