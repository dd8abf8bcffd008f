// seehuhn.de/go/chute - parachute pattern design
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/chute"
)

func newRepo(t *testing.T) *Repository {
	t.Helper()
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "db", "chute.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := New(db)
	require.NoError(t, repo.Init(context.Background()))
	return repo
}

func TestCreateGet(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	d := chute.Default()
	d.Name = "test chute"
	id, err := repo.Create(ctx, d)
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.True(t, d.Equal(got), "stored design differs")
	assert.Equal(t, d.GoreOutlines(chute.GoreResolution), got.GoreOutlines(chute.GoreResolution))

	_, err = repo.Get(ctx, "no such id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateDelete(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	d := chute.Default()
	id, err := repo.Create(ctx, d)
	require.NoError(t, err)

	d.Name = "renamed"
	d.Sections[0].Gores = 12
	require.NoError(t, repo.Update(ctx, id, d))

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Name)
	assert.Equal(t, 12, got.Sections[0].Gores)

	assert.ErrorIs(t, repo.Update(ctx, "missing", d), ErrNotFound)

	require.NoError(t, repo.Delete(ctx, id))
	_, err = repo.Get(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, id), ErrNotFound)
}

func TestList(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	clock := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	repo.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}

	records, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)

	var ids []string
	for _, name := range []string{"first", "second", "third"} {
		d := chute.Default()
		d.Name = name
		id, err := repo.Create(ctx, d)
		require.NoError(t, err)
		ids = append(ids, id)
	}

	records, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	for i, rec := range records {
		assert.Equal(t, ids[i], rec.ID)
		assert.Equal(t, rec.CreatedAt, rec.UpdatedAt)
	}
	assert.Equal(t, "second", records[1].Name)
	assert.True(t, records[0].CreatedAt.Before(records[1].CreatedAt))

	// Init can be run again on an existing database.
	require.NoError(t, repo.Init(ctx))
	require.NoError(t, repo.Ping(ctx))
}

func TestListSubsecond(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	times := []time.Time{base, base.Add(500 * time.Millisecond), base.Add(time.Second + time.Microsecond)}
	repo.now = func() time.Time {
		now := times[0]
		times = times[1:]
		return now
	}

	for _, name := range []string{"first", "second", "third"} {
		d := chute.Default()
		d.Name = name
		_, err := repo.Create(ctx, d)
		require.NoError(t, err)
	}

	records, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "first", records[0].Name)
	assert.Equal(t, "second", records[1].Name)
	assert.Equal(t, "third", records[2].Name)
	assert.True(t, records[0].CreatedAt.Equal(base))
}
