// Command run6502 loads a binary image into a flat 64K address space and
// runs it on the 6502 core with a memory-mapped console, stopping when
// the program traps (jumps or branches to itself).
//
// Conformance images report pass or fail through the trap address:
//
//	run6502 -load 6502_functional_test.bin -entry 0x400 -success 0x3469
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/theinternetftw/cpugo/virt6502"
	"golang.org/x/sync/errgroup"
)

var (
	errTrapped     = errors.New("trapped")
	errCycleLimit  = errors.New("cycle limit reached")
	errInterrupted = errors.New("interrupted")
)

// addrFlag is a 16-bit address flag that remembers whether it was given.
type addrFlag struct {
	addr uint16
	set  bool
}

func (a *addrFlag) String() string {
	if a == nil || !a.set {
		return ""
	}
	return fmt.Sprintf("0x%04x", a.addr)
}

func (a *addrFlag) Set(s string) error {
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return fmt.Errorf("bad address %q: %w", s, err)
	}
	a.addr, a.set = uint16(v), true
	return nil
}

type options struct {
	cfg       virt6502.Config
	load      string
	loadAddr  addrFlag
	entry     addrFlag
	success   addrFlag
	putc      addrFlag
	getc      addrFlag
	testAddr  addrFlag
	hz        uint64
	slice     time.Duration
	trace     bool
	maxCycles uint64
}

func parseOptions(args []string, stderr io.Writer) (*options, error) {
	opts := &options{
		putc:     addrFlag{addr: 0xf001, set: true},
		getc:     addrFlag{addr: 0xf004, set: true},
		testAddr: addrFlag{addr: 0x0200, set: true},
	}

	flagSet := flag.NewFlagSet("run6502", flag.ContinueOnError)
	flagSet.SetOutput(stderr)
	cpu := flagSet.String("cpu", "nmos", "CPU variant: nmos or cmos")
	nes := flagSet.Bool("nes", false, "NES 2A03: NMOS with decimal mode disabled")
	undocumented := flagSet.Bool("undocumented", false, "run NMOS illegal opcodes as their composite ops (default on for nmos)")
	jmpBug := flagSet.Bool("jmp-bug", false, "emulate the JMP ($xxFF) page wrap bug (default on for nmos)")
	flagSet.StringVar(&opts.load, "load", "", "binary image to load")
	flagSet.Var(&opts.loadAddr, "load-addr", "address the image is loaded at")
	flagSet.Var(&opts.entry, "entry", "start address (default: reset vector)")
	flagSet.Var(&opts.success, "success", "trap address that means success")
	flagSet.Var(&opts.putc, "putc", "console output port")
	flagSet.Var(&opts.getc, "getc", "console input port, reads 0 when no key is waiting")
	flagSet.Var(&opts.testAddr, "test-addr", "byte holding the current test number, logged when it changes")
	flagSet.Uint64Var(&opts.hz, "hz", 0, "clock rate to pace to, 0 runs flat out")
	flagSet.DurationVar(&opts.slice, "slice", 10*time.Millisecond, "pacing interval when -hz is set")
	flagSet.BoolVar(&opts.trace, "trace", false, "log every instruction to stderr")
	flagSet.Uint64Var(&opts.maxCycles, "max-cycles", 0, "give up after this many cycles, 0 for no limit")
	flagSet.Usage = func() {
		fmt.Fprintf(stderr, "Usage: run6502 [options] -load image.bin\n\nOptions:\n")
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(args); err != nil {
		return nil, err
	}
	if flagSet.NArg() == 1 && opts.load == "" {
		opts.load = flagSet.Arg(0)
	} else if flagSet.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", flagSet.Args())
	}
	if opts.load == "" {
		return nil, errors.New("no image given, use -load")
	}
	if opts.hz > 0 && opts.slice <= 0 {
		return nil, fmt.Errorf("-slice must be positive, got %v", opts.slice)
	}

	switch {
	case *nes && *cpu != "nmos":
		return nil, errors.New("-nes needs -cpu nmos")
	case *nes:
		opts.cfg = virt6502.NESConfig()
	case *cpu == "nmos":
		opts.cfg = virt6502.NMOSConfig()
	case *cpu == "cmos":
		opts.cfg = virt6502.CMOSConfig()
	default:
		return nil, fmt.Errorf("unknown -cpu %q, want nmos or cmos", *cpu)
	}

	// explicit flags override the preset
	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "undocumented":
			opts.cfg.Undocumented = *undocumented
		case "jmp-bug":
			opts.cfg.IndirectJmpBug = *jmpBug
		}
	})
	return opts, nil
}

func run(ctx context.Context, opts *options, out io.Writer, pump inputPump) error {
	image, err := os.ReadFile(opts.load)
	if err != nil {
		return fmt.Errorf("loading image: %w", err)
	}
	if int(opts.loadAddr.addr)+len(image) > 0x10000 {
		return fmt.Errorf("image %s: %d bytes at $%04X runs past $FFFF", opts.load, len(image), opts.loadAddr.addr)
	}

	mem := &virt6502.RAM{}
	mem.Load(opts.loadAddr.addr, image)
	con := newConsole(mem, opts.putc.addr, opts.getc.addr, out)

	vc := virt6502.New(opts.cfg, con)
	vc.Reset()
	if opts.entry.set {
		vc.PC = opts.entry.addr
	}
	log.Printf("%v: %d bytes at $%04X, starting at $%04X", opts.cfg.Variant, len(image), opts.loadAddr.addr, vc.PC)

	var traceLog *log.Logger
	if opts.trace {
		traceLog = log.New(os.Stderr, "", 0)
	}
	r := newRunner(vc, con, opts, traceLog)

	g, gctx := errgroup.WithContext(ctx)
	inputCtx, stopInput := context.WithCancel(gctx)
	g.Go(func() error {
		defer stopInput()
		return r.run(gctx)
	})
	g.Go(func() error {
		return pump(inputCtx, con)
	})
	return g.Wait()
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("run6502: ")

	opts, err := parseOptions(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Print(err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, opts, os.Stdout, pumpStdin)
	stop()
	if err != nil {
		log.Print(err)
		os.Exit(1)
	}
}
