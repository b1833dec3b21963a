package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater"
	"github.com/go-pkgz/repeater/strategy"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/umputun/go-flags"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/umputun/primes/app/prime"
	"github.com/umputun/primes/app/search"
	"github.com/umputun/primes/app/store"
)

var opts struct {
	DB      string `short:"d" long:"db" env:"PRIMES_DB" default:"tmp/primes.db" description:"sqlite database file"`
	Workers int    `short:"w" long:"workers" env:"PRIMES_WORKERS" default:"12" description:"divisor scan workers per candidate, 0 for cpu count"`
	Flush   int    `long:"flush" env:"PRIMES_FLUSH" default:"10000" description:"number of primes buffered before write"`
	Until   uint64 `long:"until" env:"PRIMES_UNTIL" description:"stop after this candidate, 0 for no limit"`
	Latest  bool   `long:"latest" description:"print the latest stored prime and exit"`
	Recent  int    `long:"recent" description:"print N most recent stored primes and exit"`
	Dbg     bool   `long:"dbg" env:"PRIMES_DEBUG" description:"debug mode"`

	Repeater struct {
		Attempts int           `long:"attempts" env:"ATTEMPTS" default:"3" description:"how many times to repeat failed flush"`
		Duration time.Duration `long:"duration" env:"DURATION" default:"1s" description:"initial duration"`
		Factor   float64       `long:"factor" env:"FACTOR" default:"3" description:"backoff factor"`
		Jitter   bool          `long:"jitter" env:"JITTER" description:"jitter"`
	} `group:"repeater" namespace:"repeater" env-namespace:"PRIMES_REPEATER"`

	Log struct {
		Enabled         bool   `long:"enabled" env:"ENABLED" description:"enable logging to file"`
		Filename        string `long:"filename" env:"FILENAME" default:"logs/primes.log" description:"log file name"`
		MaxSize         int    `long:"max-size" env:"MAX_SIZE" default:"100" description:"max log file size in megabytes"`
		MaxBackups      int    `long:"max-backups" env:"MAX_BACKUPS" default:"7" description:"max number of rotated files"`
		MaxAge          int    `long:"max-age" env:"MAX_AGE" default:"0" description:"max days to keep rotated files, 0 to keep all"`
		EnabledCompress bool   `long:"compress" env:"COMPRESS" description:"compress rotated files"`
	} `group:"log" namespace:"log" env-namespace:"PRIMES_LOG"`
}

var revision = "unknown"

func main() {
	fmt.Printf("primes %s\n", revision)

	if _, err := flags.Parse(&opts); err != nil {
		os.Exit(2)
	}
	setupLogs()

	defer func() {
		if x := recover(); x != nil {
			log.Printf("[WARN] run time panic:\n%v", x)
			panic(x)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	signals(cancel) // handle SIGQUIT, SIGINT and SIGTERM

	if err := run(ctx); err != nil {
		log.Fatalf("[ERROR] %v", err)
	}
}

func run(ctx context.Context) error {
	engine, err := store.NewSQLite(opts.DB)
	if err != nil {
		return fmt.Errorf("can't open store %s: %w", opts.DB, err)
	}
	queue := store.NewQueue(engine, opts.Flush)
	defer func() {
		if err := queue.Close(context.WithoutCancel(ctx)); err != nil {
			log.Printf("[WARN] can't close store, %v", err)
		}
	}()

	if err := queue.Setup(ctx); err != nil {
		return err
	}

	if opts.Latest || opts.Recent > 0 {
		return report(ctx, os.Stdout, queue, engine)
	}

	workers := makeWorkers()
	log.Printf("[INFO] db: %s, workers: %d, flush: %d", opts.DB, workers, opts.Flush)

	svc := search.Searcher{
		Checker:  prime.NewChecker(workers),
		Queue:    queue,
		Repeater: makeRepeater(),
		Until:    opts.Until,
	}
	return svc.Do(ctx)
}

// report prints stored primes requested by --latest and --recent
func report(ctx context.Context, w io.Writer, queue *store.Queue, engine *store.SQLite) error {
	if opts.Latest {
		latest, err := queue.LatestPrime(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%d\n", latest)
	}

	if opts.Recent > 0 {
		recs, err := engine.Recent(ctx, opts.Recent)
		if err != nil {
			return err
		}
		for _, r := range recs {
			fmt.Fprintf(w, "%d\t%s\t%.6fs\n", r.Number, r.DiscoveredAt.Format(store.TimeLayout), r.Elapsed.Seconds())
		}
	}
	return nil
}

func makeWorkers() int {
	if opts.Workers > 0 {
		return opts.Workers
	}
	n, err := cpu.Counts(true)
	if err != nil || n < 1 {
		log.Printf("[WARN] can't get cpu count, using %d workers: %v", prime.DefaultWorkers, err)
		return prime.DefaultWorkers
	}
	return n
}

func makeRepeater() *repeater.Repeater {
	return repeater.New(&strategy.Backoff{Repeats: opts.Repeater.Attempts, Duration: opts.Repeater.Duration,
		Factor: opts.Repeater.Factor, Jitter: opts.Repeater.Jitter})
}

func setupLogs() io.Writer {
	out := io.Writer(os.Stdout)
	if opts.Log.Enabled {
		out = &lumberjack.Logger{
			Filename:   opts.Log.Filename,
			MaxSize:    opts.Log.MaxSize,
			MaxBackups: opts.Log.MaxBackups,
			MaxAge:     opts.Log.MaxAge,
			Compress:   opts.Log.EnabledCompress,
		}
	}

	if opts.Dbg {
		log.Setup(log.Out(out), log.Debug, log.Msec, log.CallerFunc, log.CallerPkg, log.CallerFile)
		return out
	}
	log.Setup(log.Out(out), log.Msec)
	return out
}

func signals(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	go func() {
		stacktrace := make([]byte, 8192)
		for sig := range sigChan {
			if sig == syscall.SIGQUIT { // catch SIGQUIT and print stack traces
				length := runtime.Stack(stacktrace, true)
				fmt.Println(string(stacktrace[:length]))
				continue
			}
			log.Printf("[INFO] %v received, stopping", sig)
			cancel()
		}
	}()
	signal.Notify(sigChan, syscall.SIGQUIT, syscall.SIGINT, syscall.SIGTERM)
}
