package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/theinternetftw/cpugo/virt6502"
)

// cycles per batch when not pacing, small enough to notice ctx promptly
const freeRunBatch = 100_000

type runner struct {
	vc    *virt6502.Virt6502
	con   *console
	opts  *options
	trace *log.Logger

	prevPC  uint16
	trapped bool
	trapPC  uint16
	testNum byte
}

func newRunner(vc *virt6502.Virt6502, con *console, opts *options, trace *log.Logger) *runner {
	return &runner{vc: vc, con: con, opts: opts, trace: trace}
}

// afterStep runs on every instruction. An instruction that ends where it
// started is a trap.
func (r *runner) afterStep() {
	if r.trace != nil {
		r.trace.Print(r.vc.DebugStatusLine())
	}
	if !r.trapped && r.vc.PC == r.prevPC {
		r.trapped = true
		r.trapPC = r.vc.PC
	}
	r.prevPC = r.vc.PC

	if r.opts.testAddr.set {
		// straight from RAM, the bus read could eat a console key
		if n := r.con.RAM[r.opts.testAddr.addr]; n != r.testNum {
			r.testNum = n
			log.Printf("test 0x%02x", n)
		}
	}
}

func (r *runner) batchCycles() uint64 {
	if r.opts.hz == 0 {
		return freeRunBatch
	}
	n := uint64(float64(r.opts.hz) * r.opts.slice.Seconds())
	if n == 0 {
		n = 1
	}
	return n
}

// run executes in batches until the program traps, the cycle limit is
// hit or ctx ends. With -hz set, one batch runs per slice.
func (r *runner) run(ctx context.Context) error {
	r.prevPC = r.vc.PC
	if r.opts.testAddr.set {
		r.testNum = r.con.RAM[r.opts.testAddr.addr]
	}
	r.vc.SetHook(r.afterStep)
	defer r.vc.SetHook(nil)

	var tick <-chan time.Time
	if r.opts.hz > 0 {
		ticker := time.NewTicker(r.opts.slice)
		defer ticker.Stop()
		tick = ticker.C
	}
	batch := r.batchCycles()
	start := time.Now()

	for {
		if tick != nil {
			select {
			case <-ctx.Done():
				return r.stopped(ctx)
			case <-tick:
			}
		} else if ctx.Err() != nil {
			return r.stopped(ctx)
		}

		r.vc.Run(batch)

		if err := r.con.Err(); err != nil {
			return err
		}
		if r.trapped {
			return r.verdict(time.Since(start))
		}
		if r.opts.maxCycles > 0 && r.vc.Cycles >= r.opts.maxCycles {
			return fmt.Errorf("%w: %d cycles, PC=$%04X test 0x%02x", errCycleLimit, r.vc.Cycles, r.vc.PC, r.testNum)
		}
	}
}

func (r *runner) stopped(ctx context.Context) error {
	return fmt.Errorf("stopped at $%04X after %d cycles: %w", r.vc.PC, r.vc.Cycles, context.Cause(ctx))
}

func (r *runner) verdict(elapsed time.Duration) error {
	if r.opts.success.set && r.trapPC != r.opts.success.addr {
		return fmt.Errorf("%w at $%04X, test 0x%02x, A=%02x X=%02x Y=%02x P=%02x S=%02x",
			errTrapped, r.trapPC, r.testNum, r.vc.A, r.vc.X, r.vc.Y, r.vc.P, r.vc.S)
	}
	khz := 0.0
	if elapsed > 0 {
		khz = float64(r.vc.Cycles) / elapsed.Seconds() / 1000
	}
	log.Printf("trapped at $%04X after %d instructions, %d cycles (%.0f kHz)", r.trapPC, r.vc.Steps, r.vc.Cycles, khz)
	return nil
}
