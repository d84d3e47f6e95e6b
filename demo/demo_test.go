package demo

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/eaugeas/linkedbst/logs"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var logger = logs.NewLogrus(logs.LogrusLoggerProperties{
	Level:  logrus.DebugLevel,
	Output: io.Discard,
})

var sortedWords = []string{
	"apple", "banana", "cherry", "date", "elder", "fig", "grape",
	"hazel", "iris", "juniper", "kiwi", "lemon", "mango", "nectar", "olive",
}

func writeWords(t *testing.T, fs afero.Fs, path string, words []string) {
	require.Nil(t, afero.WriteFile(fs, path, []byte(strings.Join(words, "\n")+"\n"), 0644))
}

type countingProgress struct {
	started    []string
	increments int
	stopped    int
}

func (p *countingProgress) Start(phase string, total int) { p.started = append(p.started, phase) }
func (p *countingProgress) Increment()                    { p.increments++ }
func (p *countingProgress) Stop()                         { p.stopped++ }

func TestReadWords(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.Nil(t, afero.WriteFile(fs, "words.txt", []byte("  one\n\ntwo  \r\n\t\nthree"), 0644))

	words, err := ReadWords(fs, "words.txt")

	assert.Nil(t, err)
	assert.Equal(t, []string{"one", "two", "three"}, words)
}

func TestReadWordsMissingFile(t *testing.T) {
	_, err := ReadWords(afero.NewMemMapFs(), "missing.txt")

	assert.Error(t, err)
}

func TestReadWordsEmpty(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.Nil(t, afero.WriteFile(fs, "words.txt", []byte("\n \n"), 0644))

	_, err := ReadWords(fs, "words.txt")

	assert.Equal(t, ErrNoWords, errors.Cause(err))
}

func TestNewRunnerPanics(t *testing.T) {
	assert.Panics(t, func() { NewRunner(Props{Samples: 1}) })
	assert.Panics(t, func() { NewRunner(Props{Logger: logger}) })
}

func TestRunnerRun(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeWords(t, fs, "words.txt", sortedWords)
	progress := &countingProgress{}

	report, err := NewRunner(Props{
		Fs:       fs,
		Path:     "words.txt",
		Samples:  5,
		Workers:  3,
		Logger:   logger,
		Progress: progress,
	}).Run(context.Background())

	require.Nil(t, err)
	assert.Equal(t, len(sortedWords), report.Words)
	assert.Equal(t, 5, report.Samples)
	assert.Equal(t, []string{PhaseLinear, PhaseFileOrder, PhaseShuffled, PhaseRebalanced, PhaseParallel},
		progress.started)
	assert.Equal(t, 25, progress.increments)
	assert.Equal(t, 5, progress.stopped)

	for _, phase := range report.Phases {
		assert.Equal(t, 5, phase.Hits, phase.Name)
	}

	linear, ok := report.Phase(PhaseLinear)
	require.True(t, ok)
	assert.False(t, linear.Tree)

	// sorted input degenerates into a chain
	fileOrder, ok := report.Phase(PhaseFileOrder)
	require.True(t, ok)
	assert.Equal(t, len(sortedWords)-1, fileOrder.Height)
	assert.False(t, fileOrder.Balanced)

	shuffled, ok := report.Phase(PhaseShuffled)
	require.True(t, ok)
	assert.True(t, shuffled.Tree)
	assert.LessOrEqual(t, shuffled.Height, len(sortedWords)-1)

	rebalanced, ok := report.Phase(PhaseRebalanced)
	require.True(t, ok)
	assert.Equal(t, 3, rebalanced.Height)
	assert.True(t, rebalanced.Balanced)

	parallel, ok := report.Phase(PhaseParallel)
	require.True(t, ok)
	assert.Equal(t, 3, parallel.Height)
	assert.True(t, parallel.Balanced)

	_, ok = report.Phase("unknown")
	assert.False(t, ok)
}

func TestRunnerRunMoreSamplesThanWords(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeWords(t, fs, "words.txt", []string{"b", "a", "c"})

	report, err := NewRunner(Props{
		Fs:      fs,
		Path:    "words.txt",
		Samples: 10,
		Logger:  logger,
	}).Run(context.Background())

	require.Nil(t, err)
	assert.Equal(t, 3, report.Words)
	assert.Equal(t, 10, report.Samples)
	for _, phase := range report.Phases {
		assert.Equal(t, 10, phase.Hits, phase.Name)
	}
}

func TestRunnerRunCancelled(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeWords(t, fs, "words.txt", sortedWords)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	progress := &countingProgress{}

	_, err := NewRunner(Props{
		Fs:       fs,
		Path:     "words.txt",
		Samples:  5,
		Logger:   logger,
		Progress: progress,
	}).Run(ctx)

	assert.Equal(t, context.Canceled, errors.Cause(err))
	assert.Empty(t, progress.started)
}

// cancellingProgress cancels the run once the phase
// named by cancelOn starts
type cancellingProgress struct {
	countingProgress
	cancelOn string
	cancel   context.CancelFunc
}

func (p *cancellingProgress) Start(phase string, total int) {
	p.countingProgress.Start(phase, total)
	if phase == p.cancelOn {
		p.cancel()
	}
}

func TestRunnerRunCancelledDuringPhase(t *testing.T) {
	for _, phase := range []string{PhaseLinear, PhaseFileOrder, PhaseRebalanced} {
		t.Run(phase, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			writeWords(t, fs, "words.txt", sortedWords)
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			progress := &cancellingProgress{cancelOn: phase, cancel: cancel}

			report, err := NewRunner(Props{
				Fs:       fs,
				Path:     "words.txt",
				Samples:  1000,
				Logger:   logger,
				Progress: progress,
			}).Run(ctx)

			assert.Nil(t, report)
			assert.Equal(t, context.Canceled, errors.Cause(err))
			assert.Contains(t, err.Error(), phase)
			assert.Equal(t, phase, progress.started[len(progress.started)-1])
			assert.Equal(t, 0, progress.increments%1000)
			assert.Equal(t, len(progress.started), progress.stopped)
		})
	}
}

func TestRunnerRunMissingFile(t *testing.T) {
	_, err := NewRunner(Props{
		Fs:      afero.NewMemMapFs(),
		Path:    "words.txt",
		Samples: 5,
		Logger:  logger,
	}).Run(context.Background())

	assert.Error(t, err)
}

func TestRenderReport(t *testing.T) {
	report := &Report{
		Words:   15,
		Samples: 5,
		Phases: []Phase{
			{Name: PhaseLinear, Hits: 5},
			{Name: PhaseRebalanced, Hits: 5, Tree: true, Height: 3, Balanced: true},
		},
	}

	var buf bytes.Buffer
	require.Nil(t, RenderReport(&buf, report))

	out := buf.String()
	assert.Contains(t, out, "15 words, 5 lookups")
	assert.Contains(t, out, PhaseLinear)
	assert.Contains(t, out, PhaseRebalanced)
	assert.Contains(t, out, "5/5")
}

func TestPhasePerLookup(t *testing.T) {
	assert.Equal(t, time.Duration(0), Phase{Duration: 10 * time.Millisecond}.PerLookup(0))
	assert.Equal(t, 5*time.Millisecond, Phase{Duration: 10 * time.Millisecond}.PerLookup(2))
}
