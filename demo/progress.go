package demo

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pterm/pterm"
)

// Progress follows the advance of the phases of a run
type Progress interface {
	Start(phase string, total int)
	Increment()
	Stop()
}

// NoProgress discards the progress of a run
type NoProgress struct{}

func (NoProgress) Start(phase string, total int) {}
func (NoProgress) Increment()                    {}
func (NoProgress) Stop()                         {}

// BarProgress shows the progress of each phase as a progress bar
type BarProgress struct {
	writer io.Writer
	bar    *pterm.ProgressbarPrinter
}

// NewBarProgress creates a BarProgress that renders to the writer
func NewBarProgress(w io.Writer) *BarProgress {
	return &BarProgress{writer: w}
}

func (p *BarProgress) Start(phase string, total int) {
	bar, err := pterm.DefaultProgressbar.
		WithTotal(total).
		WithTitle(phase).
		WithWriter(p.writer).
		Start()
	if err != nil {
		return
	}

	p.bar = bar
}

func (p *BarProgress) Increment() {
	if p.bar != nil {
		p.bar.Increment()
	}
}

func (p *BarProgress) Stop() {
	if p.bar != nil {
		_, _ = p.bar.Stop()
		p.bar = nil
	}
}

// RenderReport writes the report as a table
func RenderReport(w io.Writer, r *Report) error {
	data := pterm.TableData{{"Phase", "Duration", "Per lookup", "Hits", "Height", "Balanced"}}
	for _, phase := range r.Phases {
		height, balanced := "-", "-"
		if phase.Tree {
			height = strconv.Itoa(phase.Height)
			balanced = strconv.FormatBool(phase.Balanced)
		}

		data = append(data, []string{
			phase.Name,
			phase.Duration.String(),
			phase.PerLookup(r.Samples).String(),
			fmt.Sprintf("%d/%d", phase.Hits, r.Samples),
			height,
			balanced,
		})
	}

	table, err := pterm.DefaultTable.WithHasHeader(true).WithData(data).Srender()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "%d words, %d lookups\n%s\n", r.Words, r.Samples, table)
	return err
}
