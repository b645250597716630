package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"simple-list/internal/config"
	"simple-list/internal/platform/helper"
	"simple-list/list"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			helper.Log.Fatalf("Error loading config: %s", err.Error())
		}
	}
	if err := helper.SetLevel(cfg.LogLevel); err != nil {
		helper.Log.Fatalf("Error setting log level: %s", err.Error())
	}

	if err := run(os.Stdout, cfg); err != nil {
		helper.Log.Fatalf("Error running demo: %s", err.Error())
	}
}

func run(w io.Writer, cfg *config.Config) error {
	budget := list.NewBudget(cfg.MaxNodes)
	l := list.New(list.WithAllocator[int](budget))
	defer l.Release()

	for _, v := range cfg.Values {
		if err := l.Append(v); err != nil {
			return fmt.Errorf("append %d: %w", v, err)
		}
	}
	fmt.Fprintf(w, "list:  %s\n", l)
	fmt.Fprintf(w, "count: %d\n", l.Count())
	if l.Count() == 0 {
		return nil
	}

	fmt.Fprintf(w, "nth(1): %d, nth(%d): %d\n", l.Nth(1), l.Count()+2, l.Nth(l.Count()+2))

	sum := 0
	list.Reduce(l, func(acc *int, v int) { *acc += v }, &sum)
	fmt.Fprintf(w, "sum:   %d\n", sum)

	l.DeleteAt(2)
	helper.Log.Debugf("Deleted position 2, %d values left", l.Count())
	fmt.Fprintf(w, "delete_at(2): %s\n", l)

	last := l.Nth(l.Count())
	idx := l.Find(func(_ int, v int) bool { return v == last })
	fmt.Fprintf(w, "find(%d): %d\n", last, idx)

	first := l.Nth(1)
	l.Filter(func(v int) bool { return v != first })
	fmt.Fprintf(w, "filter(!=%d): %s\n", first, l)

	a := list.New(list.WithAllocator[int](budget))
	b := list.New(list.WithAllocator[int](budget))
	if err := l.Split(cfg.SplitAt, a, b); err != nil {
		a.Release()
		b.Release()
		return err
	}
	fmt.Fprintf(w, "split(%d): %s %s\n", cfg.SplitAt, a, b)

	joined := list.Join(a, b)
	fmt.Fprintf(w, "join:  %s\n", joined)
	joined.Release()

	helper.Log.Infof("Demo finished with %d live nodes", budget.Live())
	return nil
}
