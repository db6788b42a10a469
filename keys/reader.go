package keys

import (
	"errors"
	"io"
	"time"
)

// DefaultEscTimeout is how long Reader waits after a lone ESC byte for
// a follow-up byte before deciding it was a standalone Escape keypress
// rather than the start of a CSI/SS3 sequence or an Alt+key chord.
const DefaultEscTimeout = 50 * time.Millisecond

// Reader decodes a raw byte stream into Msg values one key at a time.
// It owns a single background goroutine that does nothing but read
// bytes off the underlying io.Reader and hand them to the decode loop
// over a channel — the same shape as the teacher's CancelableReader,
// but built around a real per-byte timeout instead of a buffered-bytes
// heuristic, since that's what true ESC disambiguation requires.
type Reader struct {
	src        io.Reader
	escTimeout time.Duration

	bytes chan byte
	errs  chan error
	stop  chan struct{}
}

// NewReader wraps src. escTimeout <= 0 selects DefaultEscTimeout.
func NewReader(src io.Reader, escTimeout time.Duration) *Reader {
	if escTimeout <= 0 {
		escTimeout = DefaultEscTimeout
	}
	r := &Reader{
		src:        src,
		escTimeout: escTimeout,
		bytes:      make(chan byte),
		errs:       make(chan error, 1),
		stop:       make(chan struct{}),
	}
	go r.readLoop()
	return r
}

// readLoop reads one byte at a time and forwards it on r.bytes. It
// exits on read error (forwarded once on r.errs) or when Stop is
// called.
func (r *Reader) readLoop() {
	buf := make([]byte, 1)
	for {
		n, err := r.src.Read(buf)
		if n > 0 {
			select {
			case r.bytes <- buf[0]:
			case <-r.stop:
				return
			}
		}
		if err != nil {
			if err == io.EOF {
				err = ErrClosed
			}
			select {
			case r.errs <- err:
			default:
			}
			return
		}
	}
}

// Stop releases the background goroutine. ReadKey must not be called
// concurrently with or after Stop.
func (r *Reader) Stop() {
	close(r.stop)
}

// ErrClosed is returned by ReadKey once the underlying reader has
// reached EOF. Other read errors are returned as they are.
var ErrClosed = errors.New("keys: reader closed")

// nextByte waits for the next byte, or the timeout elapsing, or a read
// error. ok is false on timeout (with a nil err) and on a read error.
func (r *Reader) nextByte(timeout time.Duration) (b byte, ok bool, err error) {
	var timer <-chan time.Time
	if timeout > 0 {
		t := time.NewTimer(timeout)
		defer t.Stop()
		timer = t.C
	}
	select {
	case b := <-r.bytes:
		return b, true, nil
	case err := <-r.errs:
		return 0, false, err
	case <-timer:
		return 0, false, nil
	}
}

// csiFinal reports whether b terminates a CSI parameter sequence: a
// letter, or '~' for the extended tilde-terminated keys.
func csiFinal(b byte) bool {
	return b == '~' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

// ReadKey blocks until one decoded key event is available. It applies
// the ESC-disambiguation timer: a lone ESC with no follow-up byte
// within escTimeout decodes as Esc; a follow-up byte arriving in time
// is either the start of a CSI/SS3 sequence (collected until a final
// byte) or, if printable, an Alt+key chord.
func (r *Reader) ReadKey() (Msg, error) {
	b, _, err := r.nextByte(0)
	if err != nil {
		return Msg{}, err
	}

	if b != 0x1B {
		return r.decodeNonEscape(b)
	}
	return r.decodeAfterEsc()
}

func (r *Reader) decodeNonEscape(b byte) (Msg, error) {
	if b < 0x80 {
		msg, ok := decodeSingle(b)
		if !ok {
			return Msg{Type: Unknown}, nil
		}
		return msg, nil
	}

	// Leading byte of a multi-byte UTF-8 rune; continuation bytes
	// follow immediately as part of the same write, so read them with
	// no timeout.
	n := utf8SeqLen(b)
	seq := []byte{b}
	for i := 1; i < n; i++ {
		cb, ok, err := r.nextByte(0)
		if err != nil {
			return Msg{}, err
		}
		if !ok {
			break
		}
		seq = append(seq, cb)
	}
	msg, ok := Decode(seq)
	if !ok {
		return Msg{Type: Unknown}, nil
	}
	return msg, nil
}

func (r *Reader) decodeAfterEsc() (Msg, error) {
	b2, ok, err := r.nextByte(r.escTimeout)
	if err != nil {
		return Msg{}, err
	}
	if !ok {
		return Msg{Type: Esc}, nil
	}

	if b2 != '[' && b2 != 'O' {
		if b2 >= 32 && b2 <= 126 {
			return Msg{Type: Rune, Rune: rune(b2), Alt: true}, nil
		}
		return Msg{Type: Unknown}, nil
	}

	body := []byte{b2}
	if b2 == 'O' {
		// SS3 sequences are always exactly ESC O <final>.
		b3, ok, err := r.nextByte(r.escTimeout)
		if err != nil {
			return Msg{}, err
		}
		if !ok {
			return Msg{Type: Unknown}, nil
		}
		body = append(body, b3)
		return DecodeEscape(body), nil
	}

	// CSI: read parameter bytes until a final byte terminates it.
	for {
		nb, ok, err := r.nextByte(r.escTimeout)
		if err != nil {
			return Msg{}, err
		}
		if !ok {
			return Msg{Type: Unknown}, nil
		}
		body = append(body, nb)
		if csiFinal(nb) {
			return DecodeEscape(body), nil
		}
		if len(body) > 16 {
			// Runaway sequence: recover rather than block forever.
			return Msg{Type: Unknown}, nil
		}
	}
}

// utf8SeqLen returns the expected total byte length of a UTF-8
// sequence starting with lead.
func utf8SeqLen(lead byte) int {
	switch {
	case lead&0xE0 == 0xC0:
		return 2
	case lead&0xF0 == 0xE0:
		return 3
	case lead&0xF8 == 0xF0:
		return 4
	default:
		return 1
	}
}
