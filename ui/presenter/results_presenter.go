package presenter

import (
	"fmt"
	"time"

	"github.com/soocke/detect-filter-go/domain/detection"
	"github.com/soocke/detect-filter-go/ui/model"
)

// ResultsSource provides the raw and filtered detection collections.
type ResultsSource interface {
	Detections() detection.Set
	Filtered() detection.Set
	Version() uint64
}

// ResultsView displays what the filters let through.
type ResultsView interface {
	SetCounts(counts []model.KindCount)
	SetItems(lines []string)
}

// ResultsPresenter pushes the filtered views to the results view whenever the
// model changes.
type ResultsPresenter struct {
	src     ResultsSource
	view    ResultsView
	seen    uint64
	started bool
}

// NewResultsPresenter returns a presenter bound to src and view.
func NewResultsPresenter(src ResultsSource, view ResultsView) *ResultsPresenter {
	return &ResultsPresenter{src: src, view: view}
}

// Tick updates the view when the model version moved since the last push.
func (p *ResultsPresenter) Tick(now time.Time) {
	if p == nil || p.src == nil || p.view == nil {
		return
	}
	v := p.src.Version()
	if p.started && v == p.seen {
		return
	}
	p.started = true
	p.seen = v

	all := p.src.Detections()
	vis := p.src.Filtered()
	p.view.SetCounts([]model.KindCount{
		{Kind: detection.KindBox2D, Visible: len(vis.Boxes2D), Total: len(all.Boxes2D)},
		{Kind: detection.KindBox3D, Visible: len(vis.Boxes3D), Total: len(all.Boxes3D)},
		{Kind: detection.KindMask, Visible: len(vis.Masks), Total: len(all.Masks)},
		{Kind: detection.KindPoint, Visible: len(vis.Points), Total: len(all.Points)},
	})
	p.view.SetItems(ItemLines(vis))
}

// ItemLines renders one line per visible item, grouped by modality.
func ItemLines(s detection.Set) []string {
	lines := make([]string, 0, s.Len())
	add := func(it detection.Item) {
		c := it.Classification()
		lines = append(lines, fmt.Sprintf("%-7s %s %s", it.Kind(), c.Label, Percent(c.Confidence)))
	}
	for _, it := range s.Boxes2D {
		add(it)
	}
	for _, it := range s.Boxes3D {
		add(it)
	}
	for _, it := range s.Masks {
		add(it)
	}
	for _, it := range s.Points {
		add(it)
	}
	return lines
}
