// Copyright 2024 the Chirp authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package journal provides the per-account append-only logs written as a
// side effect of Publish and Follow. The logs are an audit trail: the
// server never replays them into live state.
package journal

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/pkg/errors"
)

const (
	timelinePrefix = "timeline"
	followPrefix   = "follow"
)

type Options struct {
	DataDir string

	// InMemory backs the journal with an in-memory filesystem, for tests
	// and standalone runs.
	InMemory bool
}

// Journal is a pebble-backed append-only store. Keys are
// <kind>/<username>/<seq> with a per-account monotonic sequence, so a
// bounded iteration over one account returns its records in append order.
type Journal struct {
	sync.Mutex

	db *pebble.DB

	// Next sequence per <kind>/<username>, recovered lazily from the
	// last key already present.
	seqs map[string]uint64

	log *slog.Logger
}

type pebbleLogger struct {
	log *slog.Logger
}

func (p *pebbleLogger) Infof(format string, args ...any) {
	p.log.Debug(fmt.Sprintf(format, args...))
}

func (p *pebbleLogger) Errorf(format string, args ...any) {
	p.log.Error(fmt.Sprintf(format, args...))
}

func (p *pebbleLogger) Fatalf(format string, args ...any) {
	p.log.Error(fmt.Sprintf(format, args...))
}

func Open(options Options) (*Journal, error) {
	log := slog.With(
		slog.String("component", "journal"),
	)

	pbOptions := &pebble.Options{
		FS:                 vfs.Default,
		Logger:             &pebbleLogger{log: log},
		FormatMajorVersion: pebble.FormatNewest,
	}
	if options.InMemory {
		pbOptions.FS = vfs.NewMem()
	}

	db, err := pebble.Open(options.DataDir, pbOptions)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open journal at %s", options.DataDir)
	}

	return &Journal{
		db:   db,
		seqs: make(map[string]uint64),
		log:  log,
	}, nil
}

// AppendPost records one published post to the author's timeline log.
// createdAt is unix seconds.
func (j *Journal) AppendPost(author, body string, createdAt int64) error {
	record := fmt.Sprintf("T %s\nU %s\nW %s\n\n",
		time.Unix(createdAt, 0).UTC().Format(time.DateTime), author, body)
	return j.append(timelinePrefix, author, record)
}

// AppendFollowAudit records one follow action to the user's follow log.
func (j *Journal) AppendFollowAudit(username, target string, at time.Time) error {
	record := fmt.Sprintf("%s|%d\n", target, at.Unix())
	return j.append(followPrefix, username, record)
}

// ReadTimeline returns the author's timeline records in append order.
func (j *Journal) ReadTimeline(author string) ([]string, error) {
	return j.readRange(timelinePrefix, author)
}

// ReadFollowAudit returns the user's follow audit records in append order.
func (j *Journal) ReadFollowAudit(username string) ([]string, error) {
	return j.readRange(followPrefix, username)
}

func (j *Journal) Close() error {
	return j.db.Close()
}

func accountPrefix(kind, username string) string {
	return fmt.Sprintf("%s/%s/", kind, username)
}

func recordKey(kind, username string, seq uint64) []byte {
	return []byte(fmt.Sprintf("%s/%s/%016x", kind, username, seq))
}

// bounds returns the iteration bounds covering every record of one
// account. '0' is the first byte after '/', so the upper bound excludes
// exactly the other accounts.
func bounds(kind, username string) (lower, upper []byte) {
	lower = []byte(accountPrefix(kind, username))
	upper = []byte(fmt.Sprintf("%s/%s0", kind, username))
	return lower, upper
}

func (j *Journal) append(kind, username, record string) error {
	j.Lock()
	defer j.Unlock()

	seq, err := j.nextSeq(kind, username)
	if err != nil {
		return err
	}

	if err := j.db.Set(recordKey(kind, username, seq), []byte(record), pebble.Sync); err != nil {
		return errors.Wrap(err, "failed to append journal record")
	}

	j.seqs[accountPrefix(kind, username)] = seq + 1
	return nil
}

func (j *Journal) nextSeq(kind, username string) (uint64, error) {
	prefix := accountPrefix(kind, username)
	if seq, ok := j.seqs[prefix]; ok {
		return seq, nil
	}

	// First append since opening: recover from the last key on disk.
	lower, upper := bounds(kind, username)
	it, err := j.db.NewIter(&pebble.IterOptions{
		LowerBound: lower,
		UpperBound: upper,
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to scan journal")
	}
	defer it.Close()

	var seq uint64
	if it.Last() && it.Valid() {
		key := string(it.Key())
		if _, err := fmt.Sscanf(key[len(prefix):], "%016x", &seq); err != nil {
			return 0, errors.Errorf("malformed journal key: %s", key)
		}
		seq++
	}
	return seq, nil
}

func (j *Journal) readRange(kind, username string) ([]string, error) {
	lower, upper := bounds(kind, username)
	it, err := j.db.NewIter(&pebble.IterOptions{
		LowerBound: lower,
		UpperBound: upper,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to scan journal")
	}
	defer it.Close()

	var records []string
	for it.First(); it.Valid(); it.Next() {
		records = append(records, string(it.Value()))
	}
	return records, it.Error()
}
