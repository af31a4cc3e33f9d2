package search

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/cinerow/cinerow/catalog"
	. "github.com/smartystreets/goconvey/convey"
)

type recorder struct {
	mu      sync.Mutex
	queries []string
	block   chan struct{}
}

func (r *recorder) search(ctx context.Context, q string) ([]catalog.Item, error) {
	r.mu.Lock()
	r.queries = append(r.queries, q)
	block := r.block
	r.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return []catalog.Item{{ID: q, Title: q}}, nil
}

func (r *recorder) calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.queries...)
}

func receive(r *Remote, timeout time.Duration) (Result, bool) {
	select {
	case res := <-r.Results():
		return res, true
	case <-time.After(timeout):
		return Result{}, false
	}
}

func TestRemote(t *testing.T) {
	Convey("Given a remote search with a short window", t, func() {
		rec := &recorder{}
		remote := NewRemote(rec.search, 30*time.Millisecond)
		defer remote.Close()

		Convey("Typing \"a\" then \"ab\" should send exactly one call, for \"ab\"", func() {
			remote.Query("a")
			seq := remote.Query("ab")

			res, ok := receive(remote, time.Second)
			So(ok, ShouldBeTrue)
			So(res.Query, ShouldEqual, "ab")
			So(res.Seq, ShouldEqual, seq)
			So(res.Items[0].ID, ShouldEqual, "ab")

			time.Sleep(60 * time.Millisecond)
			So(rec.calls(), ShouldResemble, []string{"ab"})
		})

		Convey("A blank query should clear without a call", func() {
			seq := remote.Query("   ")

			res, ok := receive(remote, 100*time.Millisecond)
			So(ok, ShouldBeTrue)
			So(res.Seq, ShouldEqual, seq)
			So(res.Items, ShouldBeEmpty)
			So(rec.calls(), ShouldBeEmpty)
		})

		Convey("Latest should track the newest sequence number", func() {
			first := remote.Query("x")
			second := remote.Query("xy")
			So(remote.Latest(first), ShouldBeFalse)
			So(remote.Latest(second), ShouldBeTrue)
		})
	})

	Convey("Given a request still in flight", t, func() {
		rec := &recorder{block: make(chan struct{})}
		remote := NewRemote(rec.search, 10*time.Millisecond)
		defer remote.Close()

		remote.Query("slow")
		time.Sleep(40 * time.Millisecond)
		So(rec.calls(), ShouldResemble, []string{"slow"})

		Convey("A newer query should win and the stale one should never be delivered", func() {
			rec.mu.Lock()
			rec.block = nil
			rec.mu.Unlock()

			seq := remote.Query("fast")

			res, ok := receive(remote, time.Second)
			So(ok, ShouldBeTrue)
			So(res.Query, ShouldEqual, "fast")
			So(res.Seq, ShouldEqual, seq)

			_, again := receive(remote, 50*time.Millisecond)
			So(again, ShouldBeFalse)
		})
	})

	Convey("Given a closed remote", t, func() {
		rec := &recorder{}
		remote := NewRemote(rec.search, 10*time.Millisecond)

		remote.Query("pending")
		remote.Close()

		Convey("The pending query should never be sent or delivered", func() {
			_, ok := receive(remote, 50*time.Millisecond)
			So(ok, ShouldBeFalse)
			So(rec.calls(), ShouldBeEmpty)
		})

		Convey("Later queries should be ignored", func() {
			remote.Query("after")
			_, ok := receive(remote, 50*time.Millisecond)
			So(ok, ShouldBeFalse)
		})
	})
}

func TestFilter(t *testing.T) {
	rows := []catalog.Row{
		{Title: "Foo", Items: []catalog.Item{
			{ID: "1", Title: "Intro to Transformers", Overview: "Attention is all you need"},
			{ID: "2", Title: "Diffusion explained"},
		}},
		{Title: "Bar", Items: []catalog.Item{
			{ID: "3", Title: "Weekly news", Overview: "New TRANSFORMER models"},
		}},
		{Title: "Baz", Items: []catalog.Item{
			{ID: "4", Title: "Cooking"},
			{ID: "5", Title: "Amélie"},
		}},
	}

	Convey("Filter", t, func() {
		Convey("An empty query should return the rows unchanged", func() {
			got := Filter(rows, "")
			So(got, ShouldResemble, rows)
			So(&got[0], ShouldPointTo, &rows[0])
		})

		Convey("Matching should ignore case and cover the overview", func() {
			got := Filter(rows, "transformer")
			So(got, ShouldHaveLength, 2)
			So(got[0].Title, ShouldEqual, "Foo")
			So(got[0].Items, ShouldHaveLength, 1)
			So(got[1].Items[0].ID, ShouldEqual, "3")
		})

		Convey("A query matching nothing should return no rows", func() {
			got := Filter(rows, "zzz")
			So(got, ShouldNotBeNil)
			So(got, ShouldBeEmpty)
		})

		Convey("Accents should be folded on both sides", func() {
			So(Filter(rows, "amelie"), ShouldHaveLength, 1)
			got := Filter(rows, "  AMÉLIE ")
			So(got, ShouldHaveLength, 1)
			So(got[0].Items[0].ID, ShouldEqual, "5")
		})

		Convey("Filtering should not mutate the input", func() {
			_ = Filter(rows, "cooking")
			So(rows[0].Items, ShouldHaveLength, 2)
		})
	})
}
