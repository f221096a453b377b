package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/algoviz/internal/catalog"
	"github.com/san-kum/algoviz/internal/config"
	"github.com/san-kum/algoviz/internal/export"
	"github.com/san-kum/algoviz/internal/lesson"
	"github.com/san-kum/algoviz/internal/logging"
	"github.com/san-kum/algoviz/internal/metrics"
	"github.com/san-kum/algoviz/internal/player"
	"github.com/san-kum/algoviz/internal/server"
	"github.com/san-kum/algoviz/internal/viz"
	"github.com/san-kum/algoviz/internal/watch"
)

func generate(cmd *cobra.Command, args []string) (*catalog.Run, *config.Config, error) {
	cfg, err := loadConfig(cmd, algorithmArg(args))
	if err != nil {
		return nil, nil, err
	}
	req, err := cfg.Request()
	if err != nil {
		return nil, nil, err
	}
	run, err := catalog.NewRegistry().Generate(cmd.Context(), req)
	if err != nil {
		return nil, nil, err
	}
	return run, cfg, nil
}

func runMenu(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, "")
	if err != nil {
		return err
	}
	p := player.New(player.WithExternalClock(), player.WithSpeed(cfg.Speed.Std()),
		player.WithLogger(logging.FromContext(cmd.Context())))
	defer p.Close()

	_, err = viz.NewProgram(viz.NewMenu(cmd.Context(), catalog.NewRegistry(), cfg, p)).Run()
	return err
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [algorithm]",
		Short: "generate a trace and print its summary",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			progress := logging.NewProgress(logging.FromContext(cmd.Context()))
			run, _, err := generate(cmd, args)
			if err != nil {
				return err
			}
			progress.Done("trace generated")

			final := run.Trace.Final()
			fmt.Printf("run id: %s\n", run.ID)
			fmt.Printf("algorithm: %s\n", run.Algorithm)
			fmt.Printf("steps: %d\n", run.Trace.Len())
			fmt.Printf("result: %s\n", final.Description)
			fmt.Println("\nmetrics:")
			for _, m := range metrics.Collect(run.Trace) {
				fmt.Printf("  %s: %g\n", m.Name, m.Value)
			}
			return nil
		},
	}
}

func newPlayCmd() *cobra.Command {
	var watchFile bool
	cmd := &cobra.Command{
		Use:   "play [algorithm]",
		Short: "play a trace in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if watchFile && configFile == "" {
				return fmt.Errorf("--watch needs --config")
			}
			run, cfg, err := generate(cmd, args)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			p := player.New(player.WithExternalClock(), player.WithSpeed(cfg.Speed.Std()),
				player.WithLogger(logging.FromContext(ctx)))
			defer p.Close()

			title := run.Algorithm
			if info, err := catalog.NewRegistry().Get(run.Algorithm); err == nil {
				title = info.Title
			}
			prog := viz.NewProgram(viz.NewModel(p, run, title, viz.GetTheme(cfg.Theme)))

			if watchFile {
				r := &watch.Reloader{
					Registry: catalog.NewRegistry(),
					Path:     configFile,
					OnRun:    func(run *catalog.Run) { prog.Send(viz.RunMsg{Run: run}) },
					OnError:  func(err error) { prog.Send(viz.ErrMsg{Err: err}) },
				}
				go func() {
					if err := watch.Watch(ctx, r, watch.DefaultDebounce); err != nil {
						prog.Send(viz.ErrMsg{Err: err})
					}
				}()
			}

			_, err = prog.Run()
			return err
		},
	}
	cmd.Flags().BoolVarP(&watchFile, "watch", "w", false, "regenerate when the config file changes")
	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list algorithms",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tTITLE\tKIND\tINPUT\tPRESETS")
			for _, info := range catalog.NewRegistry().List() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					info.Name,
					info.Title,
					info.Kind,
					inputs(info),
					strings.Join(config.ListPresets(info.Name), ","),
				)
			}
			return w.Flush()
		},
	}
}

func inputs(info catalog.Info) string {
	if info.Kind.IsArray() {
		if info.UsesTarget {
			return "array, target"
		}
		return "array"
	}
	var in []string
	if info.UsesStart {
		in = append(in, "start")
	}
	if info.UsesEnd {
		in = append(in, "end")
	}
	if len(in) == 0 {
		return "graph"
	}
	return "graph, " + strings.Join(in, ", ")
}

func newPseudocodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pseudocode [algorithm]",
		Short: "print the pseudocode listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := catalog.NewRegistry().Get(args[0])
			if err != nil {
				return err
			}
			fmt.Println(info.Title)
			for i, line := range info.Pseudocode {
				fmt.Printf("%3d  %s\n", i, line)
			}
			return nil
		},
	}
}

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets [algorithm]",
		Short: "list available presets for an algorithm",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for algorithm: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}
}

func newExportCmd() *cobra.Command {
	var (
		format   string
		compress bool
		step     int
		out      string
	)
	cmd := &cobra.Command{
		Use:   "export [algorithm]",
		Short: "export a trace as json, csv, dot or svg",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			run, _, err := generate(cmd, args)
			if err != nil {
				return err
			}

			w := bufio.NewWriter(os.Stdout)
			if out != "" {
				file, err := os.Create(out)
				if err != nil {
					return err
				}
				defer file.Close()
				w = bufio.NewWriter(file)
			}
			if err := export.Write(cmd.Context(), w, run, export.Options{Format: f, Compress: compress, Step: step}); err != nil {
				return err
			}
			if err := w.Flush(); err != nil {
				return err
			}
			if out != "" {
				logging.FromContext(cmd.Context()).Info("exported", "path", out, "format", f, "id", run.ID)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "json, csv, dot or svg")
	cmd.Flags().BoolVar(&compress, "compress", false, "zstd-compress json output")
	cmd.Flags().IntVar(&step, "step", -1, "snapshot for dot and svg, -1 for the last")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	return cmd
}

func newPlotCmd() *cobra.Command {
	var (
		series string
		index  int
	)
	cmd := &cobra.Command{
		Use:   "plot [algorithm]",
		Short: "plot a per-step series of a trace",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			run, _, err := generate(cmd, args)
			if err != nil {
				return err
			}
			data, err := metrics.SeriesFor(run.Trace, series, index)
			if err != nil {
				return err
			}
			if len(data) == 0 {
				return fmt.Errorf("no data to plot")
			}

			caption := series + " vs step"
			if series == "value" {
				caption = fmt.Sprintf("array[%d] vs step", index)
			}
			fmt.Printf("run: %s\n", run.ID)
			fmt.Printf("algorithm: %s\n", run.Algorithm)
			fmt.Printf("steps: %d\n\n", len(data))
			fmt.Println(asciigraph.Plot(data,
				asciigraph.Height(10),
				asciigraph.Width(80),
				asciigraph.Caption(caption),
			))
			return nil
		},
	}
	cmd.Flags().StringVar(&series, "series", "comparisons", "value, visited or a metric name")
	cmd.Flags().IntVar(&index, "index", 0, "array index for the value series")
	return cmd
}

func newServeCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "serve traces over http",
		RunE: func(cmd *cobra.Command, args []string) error {
			srv := server.New(catalog.NewRegistry(), logging.FromContext(cmd.Context()))
			return srv.ListenAndServe(cmd.Context(), addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	return cmd
}

func newLessonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lesson [file]",
		Short: "run every step of a lesson script",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := lesson.Load(args[0])
			if err != nil {
				return err
			}
			results, err := lesson.Run(cmd.Context(), l, catalog.NewRegistry())
			if len(results) > 0 {
				printLesson(l, results)
			}
			return err
		},
	}
}

func printLesson(l *lesson.Lesson, results []lesson.Result) {
	fmt.Printf("%s\n", l.Name)
	if l.Description != "" {
		fmt.Printf("%s\n", l.Description)
	}
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tTITLE\tALGORITHM\tSTEPS\tRESULT")
	for _, r := range results {
		title := r.Step.Title
		if title == "" {
			title = "-"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\n", r.Index+1, title, r.Run.Algorithm, r.Run.Trace.Len(), r.Summary())
	}
	w.Flush()
}

func newSweepCmd() *cobra.Command {
	var sizes []int
	cmd := &cobra.Command{
		Use:   "sweep [algorithm]",
		Short: "measure an array algorithm over growing input sizes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := lesson.RunSweep(cmd.Context(),
				lesson.Sweep{Algorithm: args[0], Sizes: sizes, Seed: seed}, catalog.NewRegistry())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "SIZE\tSTEPS\tCOMPARISONS\tWRITES")
			comparisons := make([]float64, len(results))
			for i, r := range results {
				fmt.Fprintf(w, "%d\t%d\t%s\t%s\n", r.Size, r.Steps,
					strconv.FormatFloat(r.Comparisons, 'f', -1, 64),
					strconv.FormatFloat(r.Writes, 'f', -1, 64))
				comparisons[i] = r.Comparisons
			}
			if err := w.Flush(); err != nil {
				return err
			}
			if len(comparisons) > 1 {
				fmt.Println()
				fmt.Println(asciigraph.Plot(comparisons,
					asciigraph.Height(10),
					asciigraph.Caption("comparisons by size"),
				))
			}
			return nil
		},
	}
	cmd.Flags().IntSliceVar(&sizes, "sizes", []int{8, 16, 32, 64}, "input sizes")
	return cmd
}
