package gxmonitor

// --------------------------------------------------------------------------
//
//	Gurux Ltd
//
// Filename:        $HeadURL$
//
// Version:         $Revision$,
//
//	$Date$
//	$Author$
//
// # Copyright (c) Gurux Ltd
//
// ---------------------------------------------------------------------------
//
//	DESCRIPTION
//
// This file is a part of Gurux Device Framework.
//
// Gurux Device Framework is Open Source software; you can redistribute it
// and/or modify it under the terms of the GNU General Public License
// as published by the Free Software Foundation; version 2 of the License.
// Gurux Device Framework is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU General Public License for more details.
//
// More information of Gurux products: https://www.gurux.org
//
// This code is licensed under the GNU General Public License v2.
// Full text may be retrieved at http://www.gnu.org/licenses/gpl-2.0.txt
// ---------------------------------------------------------------------------

import (
	"context"
	"errors"
	"io"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const readBufferSize = 4096

// errStreamCanceled is returned by a chunk reader once it has been canceled.
var errStreamCanceled = errors.New("stream canceled")

// chunkReader yields the decoded units of a connection. read returns io.EOF
// when the stream has ended.
type chunkReader interface {
	read() (any, error)
	cancel() error
}

// countingReader counts the bytes that pass through it.
type countingReader struct {
	r io.Reader
	n *atomic.Uint64
}

func (c countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	if n > 0 {
		c.n.Add(uint64(n))
	}
	return n, err
}

// byteReader exposes raw transport chunks as []byte.
type byteReader struct {
	rc       io.ReadCloser
	r        io.Reader
	buf      []byte
	err      error
	canceled atomic.Bool
}

func newByteReader(rc io.ReadCloser, received *atomic.Uint64) *byteReader {
	return &byteReader{rc: rc, r: countingReader{r: rc, n: received}, buf: make([]byte, readBufferSize)}
}

func (b *byteReader) read() (any, error) {
	for b.err == nil {
		n, err := b.r.Read(b.buf)
		b.err = err
		if n > 0 {
			ret := make([]byte, n)
			copy(ret, b.buf[:n])
			return ret, nil
		}
	}
	if b.canceled.Load() {
		return nil, errStreamCanceled
	}
	return nil, b.err
}

func (b *byteReader) cancel() error {
	b.canceled.Store(true)
	return b.rc.Close()
}

// decimalReader renders raw chunks as decimal byte values, each followed by a
// comma, so that no number spans two chunks.
type decimalReader struct {
	src chunkReader
}

func (d decimalReader) read() (any, error) {
	v, err := d.src.read()
	if err != nil {
		return nil, err
	}
	data := v.([]byte)
	var sb strings.Builder
	sb.Grow(len(data) * 4)
	for _, b := range data {
		sb.WriteString(strconv.Itoa(int(b)))
		sb.WriteString(hexDelimiter)
	}
	return sb.String(), nil
}

func (d decimalReader) cancel() error {
	return d.src.cancel()
}

// transformReader runs the units of src through a Transformer. The transformer
// is flushed once when src ends. A canceled stream is not flushed.
type transformReader struct {
	src     chunkReader
	t       Transformer
	pending []string
	flushed bool
}

func newTransformReader(src chunkReader, t Transformer) *transformReader {
	return &transformReader{src: src, t: t}
}

func (r *transformReader) read() (any, error) {
	for len(r.pending) == 0 {
		if r.flushed {
			return nil, io.EOF
		}
		v, err := r.src.read()
		switch {
		case errors.Is(err, io.EOF):
			r.pending = r.t.Flush()
			r.flushed = true
		case err != nil:
			return nil, err
		default:
			r.pending = r.t.Transform(v.(string))
		}
	}
	ret := r.pending[0]
	r.pending = r.pending[1:]
	return ret, nil
}

func (r *transformReader) cancel() error {
	return r.src.cancel()
}

type decoded struct {
	text string
	err  error
}

// decodePipe decodes the raw byte stream as UTF-8 text on its own goroutine.
// done receives the result of the pipe once it has stopped.
type decodePipe struct {
	rc       io.ReadCloser
	out      chan decoded
	stop     chan struct{}
	stopOnce sync.Once
	done     chan error
}

func startDecodePipe(rc io.ReadCloser, received *atomic.Uint64) *decodePipe {
	p := &decodePipe{
		rc:   rc,
		out:  make(chan decoded),
		stop: make(chan struct{}),
		done: make(chan error, 1),
	}
	src := transform.NewReader(countingReader{r: rc, n: received}, unicode.UTF8BOM.NewDecoder())
	go p.pump(src)
	return p
}

func (p *decodePipe) pump(src io.Reader) {
	var ret error
	defer func() {
		close(p.out)
		p.done <- ret
		close(p.done)
	}()
	buf := make([]byte, readBufferSize)
	for {
		n, err := src.Read(buf)
		if n > 0 {
			select {
			case p.out <- decoded{text: string(buf[:n])}:
			case <-p.stop:
				ret = context.Canceled
				return
			}
		}
		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			ret = err
			select {
			case p.out <- decoded{err: err}:
			case <-p.stop:
			}
			return
		}
	}
}

func (p *decodePipe) read() (any, error) {
	select {
	case d, ok := <-p.out:
		if p.stopped() {
			return nil, errStreamCanceled
		}
		if !ok {
			return nil, io.EOF
		}
		if d.err != nil {
			return nil, d.err
		}
		return d.text, nil
	case <-p.stop:
		return nil, errStreamCanceled
	}
}

func (p *decodePipe) stopped() bool {
	select {
	case <-p.stop:
		return true
	default:
		return false
	}
}

func (p *decodePipe) cancel() error {
	p.stopOnce.Do(func() { close(p.stop) })
	return p.rc.Close()
}

// encodeSink writes queued chunks to the transport on its own goroutine.
// Queuing never blocks; chunks are written in the order they were queued.
// done receives the result once the sink has been closed and drained.
type encodeSink struct {
	mu     sync.Mutex
	w      io.WriteCloser
	queue  [][]byte
	closed bool
	notify chan struct{}
	done   chan error
	onErr  func(error)
}

func newEncodeSink(w io.WriteCloser, onErr func(error)) *encodeSink {
	s := &encodeSink{
		w:      w,
		notify: make(chan struct{}, 1),
		done:   make(chan error, 1),
		onErr:  onErr,
	}
	go s.pump()
	return s
}

func (s *encodeSink) pump() {
	var failed error
	for {
		s.mu.Lock()
		batch := s.queue
		s.queue = nil
		closed := s.closed
		s.mu.Unlock()
		if len(batch) == 0 {
			if closed {
				break
			}
			<-s.notify
			continue
		}
		for _, p := range batch {
			if failed != nil {
				break
			}
			if _, err := s.w.Write(p); err != nil {
				failed = err
				if s.onErr != nil {
					s.onErr(err)
				}
			}
		}
	}
	s.done <- errors.Join(failed, s.w.Close())
	close(s.done)
}

// write queues p. It reports false when the sink is already closed.
func (s *encodeSink) write(p []byte) bool {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return false
	}
	s.queue = append(s.queue, p)
	s.mu.Unlock()
	s.wake()
	return true
}

func (s *encodeSink) close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.wake()
}

func (s *encodeSink) wake() {
	select {
	case s.notify <- struct{}{}:
	default:
	}
}

func (s *encodeSink) wait(ctx context.Context) error {
	select {
	case err := <-s.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
