// Package metrics implements process-wide atomic counters for the
// fecal encoder and decoder, with CSV export. It is a direct
// repurposing of the kcptun/kcp-go DefaultSnmp pattern (a package-
// level struct of atomic counters, a Header()/ToSlice() pair for CSV
// output, and a periodic file logger) away from transport counters
// and onto FEC codec counters.
package metrics

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"
)

// Counter is a single atomic counter, named for CSV export.
type Counter struct {
	name  string
	value uint64
}

// Add increments the counter by delta and returns the new value.
func (c *Counter) Add(delta uint64) uint64 {
	return atomic.AddUint64(&c.value, delta)
}

// Load returns the counter's current value.
func (c *Counter) Load() uint64 {
	return atomic.LoadUint64(&c.value)
}

// Reset zeroes the counter.
func (c *Counter) Reset() {
	atomic.StoreUint64(&c.value, 0)
}

// Snmp mirrors kcp-go's DefaultSnmp shape: a fixed set of named
// counters a process-wide singleton accumulates into, safe for
// concurrent use across every Encoder/decoder in the process.
type Snmp struct {
	InitCalls       Counter
	InitFailures    Counter
	EncodeCalls     Counter
	BytesProtected  Counter
	DecodeCalls     Counter
	DecodeRecovered Counter
	DecodeErrs      Counter
}

// Default is the process-wide counter set, analogous to kcp-go's
// DefaultSnmp. Library code updates it; nothing reads it unless a
// caller wires up Header/ToSlice/Logger below.
var Default = &Snmp{
	InitCalls:       Counter{name: "InitCalls"},
	InitFailures:    Counter{name: "InitFailures"},
	EncodeCalls:     Counter{name: "EncodeCalls"},
	BytesProtected:  Counter{name: "BytesProtected"},
	DecodeCalls:     Counter{name: "DecodeCalls"},
	DecodeRecovered: Counter{name: "DecodeRecovered"},
	DecodeErrs:      Counter{name: "DecodeErrs"},
}

func (s *Snmp) counters() []*Counter {
	return []*Counter{
		&s.InitCalls, &s.InitFailures, &s.EncodeCalls, &s.BytesProtected,
		&s.DecodeCalls, &s.DecodeRecovered, &s.DecodeErrs,
	}
}

// Header returns the CSV column names, in the same order as ToSlice.
func (s *Snmp) Header() []string {
	names := make([]string, 0, len(s.counters()))
	for _, c := range s.counters() {
		names = append(names, c.name)
	}
	return names
}

// ToSlice returns the current counter values formatted as strings, in
// Header order.
func (s *Snmp) ToSlice() []string {
	vals := make([]string, 0, len(s.counters()))
	for _, c := range s.counters() {
		vals = append(vals, fmt.Sprint(c.Load()))
	}
	return vals
}

// Reset zeroes every counter.
func (s *Snmp) Reset() {
	for _, c := range s.counters() {
		c.Reset()
	}
}

// Logger periodically appends a CSV row of Default's counters to
// path, formatting path with time.Now() exactly as kcptun's
// SnmpLogger does (so "./metrics-20060102.log" rolls by day).
func Logger(path string, interval time.Duration) {
	if path == "" || interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for range ticker.C {
		logdir, logfile := filepath.Split(path)
		f, err := os.OpenFile(logdir+time.Now().Format(logfile), os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			log.Println(err)
			return
		}
		w := csv.NewWriter(f)
		if stat, err := f.Stat(); err == nil && stat.Size() == 0 {
			if err := w.Write(append([]string{"Unix"}, Default.Header()...)); err != nil {
				log.Println(err)
			}
		}
		if err := w.Write(append([]string{fmt.Sprint(time.Now().Unix())}, Default.ToSlice()...)); err != nil {
			log.Println(err)
		}
		w.Flush()
		f.Close()
	}
}
