package reader

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/transform"

	"github.com/c360/linestream/errors"
	"github.com/c360/linestream/lineprotocol"
	"github.com/c360/linestream/metric"
	"github.com/c360/linestream/record"
)

const defaultMaxLineBytes = 1 << 20

// Options configures one reader session
type Options struct {
	// Charset is the IANA name of the source encoding. Empty means UTF-8.
	Charset string

	// Policy selects FAIL or WARN handling of malformed lines.
	Policy Policy

	// Precision is the unit the stream's integer timestamps are expressed
	// in. Parsed values pass through unconverted; the precision shapes the
	// injected default for lines without a timestamp.
	Precision lineprotocol.Precision

	// Logger receives structured warnings for skipped lines. Defaults to
	// slog.Default.
	Logger *slog.Logger

	// Metrics enables Prometheus instrumentation when non-nil.
	Metrics *metric.Registry

	// Now supplies the timestamp default for lines without one. Injected
	// so sessions are reproducible in tests; defaults to time.Now.
	Now func() time.Time

	// MaxLineBytes caps the length of one physical line. Defaults to 1 MiB.
	MaxLineBytes int
}

// Reader is a lazy, single-pass pull iterator over the records of one
// line protocol stream. It exclusively owns its byte source and schema
// accumulator; a Reader must not be shared across goroutines.
type Reader struct {
	session   string
	policy    Policy
	precision lineprotocol.Precision
	logger    *slog.Logger
	metrics   *Metrics

	source  io.Reader
	scanner *bufio.Scanner
	acc     *record.SchemaAccumulator
	asm     *record.Assembler

	lineNo   int
	fatalErr error
	done     bool
	released bool
}

// New creates a reader session over a byte source. An unresolvable
// charset is a configuration error raised here, before any parsing. If
// the source implements io.Closer the reader owns it and releases it on
// completion, abort, or Close.
func New(source io.Reader, opts Options) (*Reader, error) {
	enc, err := LookupCharset(opts.Charset)
	if err != nil {
		return nil, errors.WrapConfiguration(err, "reader", "New", "charset resolution")
	}

	decoded := source
	if enc != nil {
		decoded = transform.NewReader(source, enc.NewDecoder())
	}

	maxLine := opts.MaxLineBytes
	if maxLine <= 0 {
		maxLine = defaultMaxLineBytes
	}
	scanner := bufio.NewScanner(decoded)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLine)

	session := uuid.NewString()

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "line-protocol-reader", "session", session)

	return &Reader{
		session:   session,
		policy:    opts.Policy,
		precision: opts.Precision,
		logger:    logger,
		metrics:   newMetrics(opts.Metrics, session),
		source:    source,
		scanner:   scanner,
		acc:       record.NewSchemaAccumulator(),
		asm:       record.NewAssembler(opts.Precision, opts.Now),
	}, nil
}

// Session returns the unique identifier of this reader session
func (r *Reader) Session() string { return r.session }

// Policy returns the configured malformed-data policy
func (r *Reader) Policy() Policy { return r.policy }

// Precision returns the timestamp unit of this session
func (r *Reader) Precision() lineprotocol.Precision { return r.precision }

// Schema returns a snapshot of the columns accumulated so far
func (r *Reader) Schema() record.Schema { return r.acc.Schema() }

// Next returns the next record of the stream. It advances the source one
// physical line per emitted record, silently passing over comment and
// blank lines and, under PolicyWarn, logged malformed lines. At the end
// of the stream Next releases the source and returns io.EOF. After a
// fatal error every subsequent call returns that same error.
func (r *Reader) Next() (*record.OutputRecord, error) {
	if r.fatalErr != nil {
		return nil, r.fatalErr
	}
	if r.done {
		return nil, io.EOF
	}

	for r.scanner.Scan() {
		r.lineNo++
		line := r.scanner.Text()
		if r.metrics != nil {
			r.metrics.linesRead.Inc()
		}

		if lineprotocol.Skip(line) {
			continue
		}

		point, err := lineprotocol.ParsePoint(line)
		if err != nil {
			wrapped := errors.WrapMalformed(err, "reader", "Next", fmt.Sprintf("line %d", r.lineNo))
			if abort := r.reject(line, wrapped); abort != nil {
				return nil, abort
			}
			continue
		}

		if err := r.acc.Observe(point); err != nil {
			if r.metrics != nil {
				r.metrics.schemaConflicts.Inc()
			}
			wrapped := errors.WrapConflict(err, "reader", "Next", fmt.Sprintf("line %d", r.lineNo))
			if abort := r.reject(line, wrapped); abort != nil {
				return nil, abort
			}
			continue
		}

		if r.metrics != nil {
			r.metrics.recordsEmitted.Inc()
			r.metrics.schemaColumns.Set(float64(r.acc.Len()))
		}
		return r.asm.Assemble(point, r.acc.Schema()), nil
	}

	if err := r.scanner.Err(); err != nil {
		return nil, r.fail(errors.WrapStream(err, "reader", "Next", "source read"))
	}

	r.done = true
	_ = r.release()
	return nil, io.EOF
}

// reject applies the malformed-data policy to one failed line. Under FAIL
// it aborts the session and returns the terminal error; under WARN it
// logs the skip with its line context and returns nil.
func (r *Reader) reject(line string, err error) error {
	if r.metrics != nil {
		r.metrics.malformedLines.Inc()
	}
	if r.policy == PolicyFail {
		return r.fail(err)
	}

	r.logger.Warn("skipping unparsable line",
		"line", r.lineNo,
		"text", line,
		"error", err)
	return nil
}

// fail records a terminal error and releases the source
func (r *Reader) fail(err error) error {
	r.fatalErr = err
	_ = r.release()
	return err
}

// Close releases the byte source before the stream is exhausted. It is
// safe to call more than once; Next returns io.EOF afterwards.
func (r *Reader) Close() error {
	r.done = true
	return r.release()
}

// release closes the underlying source if it is a closer. Idempotent.
func (r *Reader) release() error {
	if r.released {
		return nil
	}
	r.released = true

	if c, ok := r.source.(io.Closer); ok {
		if err := c.Close(); err != nil {
			return errors.WrapStream(err, "reader", "Close", "source release")
		}
	}
	return nil
}
