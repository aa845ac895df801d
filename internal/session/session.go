// Package session owns the permutation table for one world session.
//
// A Session is created once at startup, either from a seed or from a table
// file produced by another process, and handed by pointer to everything that
// samples noise for that world. Nothing in a Session changes after New or
// Load returns.
package session

import (
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"

	"valnoise/internal/noise"
)

// Session ties a seed and its table to an identity used in logs and
// exported artefacts.
type Session struct {
	id    uuid.UUID
	seed  int64
	table *noise.Table
}

// New builds the table for seed and publishes it.
func New(seed int64) *Session {
	s := &Session{id: uuid.New(), seed: seed, table: noise.BuildTable(seed)}
	log.Printf("session %s: built table for seed %d", s.id, seed)
	return s
}

// Load reads a table written by WriteTable. A malformed table is returned as
// an error wrapping noise.ErrInvalidTable; callers should abort rather than
// fall back to New, since another process expects exactly this table.
func Load(seed int64, r io.Reader) (*Session, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read table: %w", err)
	}
	t, err := noise.DecodeTable(data)
	if err != nil {
		return nil, err
	}
	s := &Session{id: uuid.New(), seed: seed, table: t}
	if !t.Equal(noise.BuildTable(seed)) {
		log.Printf("session %s: loaded table does not match seed %d", s.id, seed)
	}
	log.Printf("session %s: loaded table (%d bytes)", s.id, len(data))
	return s, nil
}

// ID returns the session identity.
func (s *Session) ID() uuid.UUID { return s.id }

// Seed returns the seed the session was created with.
func (s *Session) Seed() int64 { return s.seed }

// Table returns the shared, read-only table.
func (s *Session) Table() *noise.Table { return s.table }

// Sampler returns a sampler over the session table at the given frequency.
func (s *Session) Sampler(frequency float64) noise.Sampler {
	return noise.NewSampler(s.table, frequency)
}

// WriteTable writes the session table in its binary form.
func (s *Session) WriteTable(w io.Writer) error {
	data, err := s.table.MarshalBinary()
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}

// Filename returns a file name unique to this session with the given prefix
// and extension.
func (s *Session) Filename(prefix, ext string) string {
	return fmt.Sprintf("%s-%d-%s.%s", prefix, s.seed, s.id.String()[:8], ext)
}
