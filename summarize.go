package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"syscall"

	"ewintr.nl/videonotes/export"
	"ewintr.nl/videonotes/model"
	"ewintr.nl/videonotes/progress"
	"ewintr.nl/videonotes/session"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	detailFlag string
	outFlag    string
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize <video url>",
	Short: "Generate notes for one video and print them as Markdown",
	Args:  cobra.ExactArgs(1),
	RunE:  runSummarize,
}

func init() {
	summarizeCmd.Flags().StringVarP(&detailFlag, "detail", "d", string(model.DetailDetailed), "detail level: concise, detailed or comprehensive")
	summarizeCmd.Flags().StringVarP(&outFlag, "out", "o", "", "write the notes to this file instead of stdout")
}

func runSummarize(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, os.Stderr)
	if err != nil {
		return err
	}
	journal, closeJournal, err := a.journal()
	if err != nil {
		return err
	}
	defer closeJournal()

	line := &progressLine{out: os.Stderr}
	s := session.New(a.pipeline, a.newPresenter(progress.WithOnChange(line.update)), journal, a.clock, a.logger)
	defer s.Close()

	if err := s.Submit(model.Request{
		VideoURL:    args[0],
		DetailLevel: model.DetailLevel(detailFlag),
	}); err != nil {
		return err
	}
	res, err := s.Wait(ctx)
	s.Close()
	line.finish()
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "%s: %s\n", model.StatusError.Message(), err)
		return err
	}

	md := export.Markdown(*res)
	if outFlag == "" {
		fmt.Fprintln(cmd.OutOrStdout(), md)
		return nil
	}
	if err := os.WriteFile(outFlag, []byte(md+"\n"), 0o644); err != nil {
		return fmt.Errorf("could not write notes: %w", err)
	}
	color.New(color.FgGreen).Fprintf(os.Stderr, "notes written to %s\n", outFlag)

	return nil
}

// progressLine redraws a single status line on every presenter change.
type progressLine struct {
	out     io.Writer
	last    string
	written bool
}

func (pl *progressLine) update(state progress.State) {
	text := fmt.Sprintf("[%3d%%] %s", int(math.Floor(state.Progress)), state.Status.Message())
	if state.StillProcessing && !state.Status.Terminal() {
		text += color.YellowString(" still processing...")
	}
	if text == pl.last {
		return
	}
	pl.last = text

	c := color.New(color.FgCyan)
	switch state.Status {
	case model.StatusCompleted:
		c = color.New(color.FgGreen)
	case model.StatusError:
		c = color.New(color.FgRed)
	}
	fmt.Fprintf(pl.out, "\r\033[K%s", c.Sprint(text))
	pl.written = true
}

func (pl *progressLine) finish() {
	if pl.written {
		fmt.Fprintln(pl.out)
	}
}
