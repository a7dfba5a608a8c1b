package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const docOne = "Title: first\n" +
	"Flags: real\n" +
	"No. Variables: 1\n" +
	"No. Points: 1\n" +
	"Variables:\n" +
	"\t0\ttime\ttime\n" +
	"Values:\n" +
	"0\t1.0\n"

const docTwo = "Title: second\n" +
	"Flags: real\n" +
	"No. Variables: 1\n" +
	"No. Points: 2\n" +
	"Variables:\n" +
	"\t0\ttime\ttime\n" +
	"Values:\n" +
	"0\t1.0\n" +
	"1\t2.0\n"

func TestFile_MissingPath(t *testing.T) {
	_, err := File(context.Background(), filepath.Join(t.TempDir(), "absent.raw"))
	assert.Error(t, err)
}

func TestFile_InitialParse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.raw")
	require.NoError(t, os.WriteFile(path, []byte(docOne), 0o644))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	events, err := File(ctx, path)
	require.NoError(t, err)

	select {
	case ev := <-events:
		require.NoError(t, ev.Err)
		assert.Equal(t, "first", ev.Doc.Title)
	case <-ctx.Done():
		t.Fatal("no initial event before timeout")
	}
}

func TestFile_ReparseOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.raw")
	require.NoError(t, os.WriteFile(path, []byte(docOne), 0o644))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	events, err := File(ctx, path)
	require.NoError(t, err)

	// Drain the initial event before rewriting.
	select {
	case ev := <-events:
		require.NoError(t, ev.Err)
	case <-ctx.Done():
		t.Fatal("no initial event before timeout")
	}

	require.NoError(t, os.WriteFile(path, []byte(docTwo), 0o644))

	// The rewrite may surface as several events; wait for the one carrying
	// the new document.
	for {
		select {
		case ev := <-events:
			if ev.Err == nil && ev.Doc.Title == "second" {
				assert.Equal(t, 2, ev.Doc.Points)
				return
			}
		case <-ctx.Done():
			t.Fatal("updated document not observed before timeout")
		}
	}
}

func TestFile_ChannelClosesOnCancel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.raw")
	require.NoError(t, os.WriteFile(path, []byte(docOne), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	events, err := File(ctx, path)
	require.NoError(t, err)

	<-events // initial parse
	cancel()

	select {
	case _, ok := <-events:
		assert.False(t, ok, "channel should be closed after cancel")
	case <-time.After(5 * time.Second):
		t.Fatal("channel not closed after cancel")
	}
}
