package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"
	"unicode"

	"go.uber.org/zap"

	zoo "zoocore/internal/core"
)

// Document names inside a bundle.
const (
	ReportFile  = "report.json"
	StatusFile  = "status.txt"
	RoutineFile = "routine.txt"
	AuditFile   = "audit.jsonl"

	dateLayout = "2006-01-02"
	rootPrefix = "zoos/"
)

// Manifest lists the objects written for one bundle.
type Manifest struct {
	Prefix  string   `json:"prefix"`
	Objects []Object `json:"objects"`
}

// Publisher writes one report bundle per zoo and day.
type Publisher struct {
	store  Store
	logger *zap.Logger
}

// NewPublisher returns a publisher writing to store. A nil logger is
// replaced by a no-op logger.
func NewPublisher(store Store, logger *zap.Logger) *Publisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Publisher{store: store, logger: logger}
}

// Slug turns a zoo name into a key segment: lower case ASCII letters and
// digits separated by single dashes.
func Slug(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
			continue
		}
		dash = true
	}
	if b.Len() == 0 {
		return "zoo"
	}
	return b.String()
}

// BundlePrefix returns the key prefix for a zoo's bundle on the given day.
func BundlePrefix(zooName, date string) string {
	return rootPrefix + Slug(zooName) + "/" + date + "/"
}

// Publish writes report, its status and routine narration, and the audit
// trail. A day that already holds a bundle is refused with ErrExists. The
// report document is written last and marks the bundle complete; if any write
// fails, the documents already written for the bundle are deleted again.
func (p *Publisher) Publish(ctx context.Context, report zoo.Report, audit *zoo.AuditLog) (Manifest, error) {
	date := report.GeneratedAt.Format(dateLayout)
	prefix := BundlePrefix(report.Zoo, date)
	existing, err := p.store.List(ctx, prefix)
	if err != nil {
		return Manifest{}, fmt.Errorf("check %s: %w", prefix, err)
	}
	if len(existing) > 0 {
		return Manifest{}, fmt.Errorf("%w: bundle %s", ErrExists, prefix)
	}

	raw, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return Manifest{}, fmt.Errorf("encode report: %w", err)
	}
	var auditBuf bytes.Buffer
	if audit != nil {
		if err := audit.WriteJSONLines(&auditBuf); err != nil {
			return Manifest{}, fmt.Errorf("encode audit: %w", err)
		}
	}
	docs := []struct {
		name, contentType string
		body              []byte
	}{
		{StatusFile, "text/plain; charset=utf-8", lines(report.Enclosures)},
		{RoutineFile, "text/plain; charset=utf-8", lines(report.Routine)},
		{AuditFile, "application/x-ndjson", auditBuf.Bytes()},
		{ReportFile, "application/json", raw},
	}

	md := map[string]string{"zoo": report.Zoo, "date": date}
	m := Manifest{Prefix: prefix}
	for _, d := range docs {
		obj, err := p.store.Put(ctx, prefix+d.name, bytes.NewReader(d.body), PutOptions{ContentType: d.contentType, Metadata: md})
		if err != nil {
			err = fmt.Errorf("archive %s: %w", d.name, err)
			return Manifest{Prefix: prefix}, errors.Join(err, p.rollback(ctx, m))
		}
		m.Objects = append(m.Objects, obj)
	}
	p.logger.Info("report archived",
		zap.String("zoo", report.Zoo),
		zap.String("prefix", prefix),
		zap.String("driver", string(p.store.Driver())),
		zap.Int("objects", len(m.Objects)))
	return m, nil
}

// rollback deletes the objects of a partially written bundle. It runs even
// when ctx is already cancelled.
func (p *Publisher) rollback(ctx context.Context, m Manifest) error {
	ctx = context.WithoutCancel(ctx)
	var errs []error
	for _, obj := range m.Objects {
		if _, err := p.store.Delete(ctx, obj.Key); err != nil {
			errs = append(errs, fmt.Errorf("rollback %s: %w", obj.Key, err))
		}
	}
	if len(errs) > 0 {
		p.logger.Warn("partial bundle left in archive",
			zap.String("prefix", m.Prefix),
			zap.Int("undeleted", len(errs)))
	}
	return errors.Join(errs...)
}

// History lists the days for which zooName has a complete bundle, oldest
// first.
func (p *Publisher) History(ctx context.Context, zooName string) ([]string, error) {
	prefix := rootPrefix + Slug(zooName) + "/"
	objs, err := p.store.List(ctx, prefix)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	var days []string
	for _, o := range objs {
		day, name, ok := strings.Cut(strings.TrimPrefix(o.Key, prefix), "/")
		if !ok || name != ReportFile {
			continue
		}
		if _, dup := seen[day]; dup {
			continue
		}
		seen[day] = struct{}{}
		days = append(days, day)
	}
	sort.Strings(days)
	return days, nil
}

// Fetch loads the report archived for zooName on date.
func (p *Publisher) Fetch(ctx context.Context, zooName, date string) (zoo.Report, error) {
	key := path.Join(BundlePrefix(zooName, date), ReportFile)
	_, rc, err := p.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return zoo.Report{}, fmt.Errorf("no report for %s on %s: %w", zooName, date, err)
		}
		return zoo.Report{}, err
	}
	defer func() { _ = rc.Close() }()
	raw, err := io.ReadAll(rc)
	if err != nil {
		return zoo.Report{}, err
	}
	var report zoo.Report
	if err := json.Unmarshal(raw, &report); err != nil {
		return zoo.Report{}, fmt.Errorf("decode %s: %w", key, err)
	}
	return report, nil
}

func lines(in []string) []byte {
	if len(in) == 0 {
		return nil
	}
	return []byte(strings.Join(in, "\n") + "\n")
}
