package ui

import (
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// PageSpinner counts chapter-list pages while they are being followed.
type PageSpinner struct {
	p     *mpb.Progress
	bar   *mpb.Bar
	pages atomic.Int64
	start time.Time
	final atomic.Bool
}

func NewPageSpinner(label string) *PageSpinner {
	s := &PageSpinner{start: time.Now()}

	s.p = mpb.New(
		mpb.WithWidth(16),
		mpb.WithOutput(os.Stderr),
		mpb.WithRefreshRate(120*time.Millisecond),
	)

	s.bar = s.p.New(
		0,
		mpb.SpinnerStyle(),
		mpb.PrependDecorators(
			decor.Name(label+"  "),
		),
		mpb.AppendDecorators(
			decor.Any(func(_ decor.Statistics) string {
				return fmt.Sprintf(" %d pages", s.pages.Load())
			}),
			decor.Any(func(_ decor.Statistics) string {
				return fmt.Sprintf(" | %ds", int(time.Since(s.start).Seconds()))
			}),
		),
	)

	return s
}

// Page records one merged page. It matches the adapter's page observer.
func (s *PageSpinner) Page(_ int, _ string) {
	if s.final.Load() {
		return
	}

	n := s.pages.Add(1)
	s.bar.SetTotal(n+1, false)
	s.bar.SetCurrent(n)
}

func (s *PageSpinner) Done() {
	if s.final.Swap(true) {
		return
	}

	n := s.pages.Load()
	s.bar.SetTotal(n, true)
	s.p.Wait()
}
