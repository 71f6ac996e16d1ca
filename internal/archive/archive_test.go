package archive

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	zoo "zoocore/internal/core"
	"zoocore/internal/infra/archive/memory"
	"zoocore/internal/infra/archive/s3"
	"zoocore/pkg/domain"
)

var archiveDay = time.Date(2025, 10, 26, 18, 30, 0, 0, time.UTC)

func sampleReport(t *testing.T, at time.Time) (zoo.Report, *zoo.AuditLog) {
	t.Helper()
	audit := zoo.NewAuditLog()
	z := zoo.New("Simone's Zoo",
		zoo.WithClock(zoo.ClockFunc(func() time.Time { return at })),
		zoo.WithAuditRecorder(audit))
	leo, err := domain.NewMammal(domain.Profile{Name: "Leo", Species: "Lion", Age: 6, Diet: "meat", Category: "mammal"}, "short")
	require.NoError(t, err)
	plains, err := domain.NewEnclosure(domain.EnclosureSpec{Name: "Savannah Plains", Environment: "savannah", SizeSqM: 1200, AllowedCategory: "mammal"})
	require.NoError(t, err)
	require.NoError(t, z.AddAnimal(leo))
	require.NoError(t, z.AddEnclosure(plains))
	require.NoError(t, z.AssignAnimalToEnclosure(leo, plains))
	return z.Report([]string{"Leo the Lion is sleeping."}), audit
}

func readAll(t *testing.T, store Store, key string) string {
	t.Helper()
	_, rc, err := store.Get(context.Background(), key)
	require.NoError(t, err)
	defer func() { _ = rc.Close() }()
	raw, err := io.ReadAll(rc)
	require.NoError(t, err)
	return string(raw)
}

func TestSlug(t *testing.T) {
	cases := map[string]string{
		"Simone's Zoo":       "simone-s-zoo",
		"  City  Zoo 2 ":     "city-zoo-2",
		"Zoológico Nacional": "zool-gico-nacional",
		"!!!":                "zoo",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slug(in), in)
	}
	assert.Equal(t, "zoos/simone-s-zoo/2025-10-26/", BundlePrefix("Simone's Zoo", "2025-10-26"))
}

func TestPublishWritesBundle(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	observed, logs := observer.New(zapcore.InfoLevel)
	p := NewPublisher(store, zap.New(observed))
	report, audit := sampleReport(t, archiveDay)

	m, err := p.Publish(ctx, report, audit)
	require.NoError(t, err)
	assert.Equal(t, "zoos/simone-s-zoo/2025-10-26/", m.Prefix)
	require.Len(t, m.Objects, 4)
	keys := make([]string, 0, len(m.Objects))
	for _, o := range m.Objects {
		keys = append(keys, o.Key)
		assert.Equal(t, "Simone's Zoo", o.Metadata["zoo"])
	}
	assert.Equal(t, []string{
		m.Prefix + StatusFile,
		m.Prefix + RoutineFile,
		m.Prefix + AuditFile,
		m.Prefix + ReportFile,
	}, keys)

	assert.Equal(t, "Enclosure 'Savannah Plains': savannah, 1200 m^2, cleanliness 95/100, animals: Leo\n", readAll(t, store, m.Prefix+StatusFile))
	assert.Equal(t, "Leo the Lion is sleeping.\n", readAll(t, store, m.Prefix+RoutineFile))
	assert.Contains(t, readAll(t, store, m.Prefix+AuditFile), `"operation":"assign_animal_to_enclosure"`)

	require.Equal(t, 1, logs.FilterMessage("report archived").Len())

	fetched, err := p.Fetch(ctx, "Simone's Zoo", "2025-10-26")
	require.NoError(t, err)
	assert.Equal(t, report.Zoo, fetched.Zoo)
	assert.True(t, report.GeneratedAt.Equal(fetched.GeneratedAt))
	assert.Equal(t, report.Enclosures, fetched.Enclosures)
	assert.Equal(t, report.Species, fetched.Species)
}

func TestPublishRefusesSecondBundleSameDay(t *testing.T) {
	ctx := context.Background()
	p := NewPublisher(memory.New(), nil)
	report, audit := sampleReport(t, archiveDay)
	_, err := p.Publish(ctx, report, audit)
	require.NoError(t, err)

	later, _ := sampleReport(t, archiveDay.Add(time.Hour))
	_, err = p.Publish(ctx, later, nil)
	require.ErrorIs(t, err, ErrExists)

	next, _ := sampleReport(t, archiveDay.Add(24*time.Hour))
	_, err = p.Publish(ctx, next, nil)
	require.NoError(t, err)

	days, err := p.History(ctx, "Simone's Zoo")
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-10-26", "2025-10-27"}, days)

	_, err = p.Fetch(ctx, "Simone's Zoo", "2025-10-01")
	require.ErrorIs(t, err, ErrNotFound)
}

// faultyStore fails Put for keys ending in failOn until the fault is cleared.
type faultyStore struct {
	Store
	failOn string
}

var errDiskFull = errors.New("disk full")

func (f *faultyStore) Put(ctx context.Context, key string, r io.Reader, opts PutOptions) (Object, error) {
	if f.failOn != "" && strings.HasSuffix(key, f.failOn) {
		return Object{}, errDiskFull
	}
	return f.Store.Put(ctx, key, r, opts)
}

func TestPublishRollsBackPartialBundle(t *testing.T) {
	ctx := context.Background()
	store := &faultyStore{Store: memory.New(), failOn: RoutineFile}
	p := NewPublisher(store, nil)
	report, audit := sampleReport(t, archiveDay)

	m, err := p.Publish(ctx, report, audit)
	require.ErrorIs(t, err, errDiskFull)
	assert.Empty(t, m.Objects)
	left, err := store.List(ctx, BundlePrefix(report.Zoo, "2025-10-26"))
	require.NoError(t, err)
	assert.Empty(t, left, "written documents must be removed")
	days, err := p.History(ctx, report.Zoo)
	require.NoError(t, err)
	assert.Empty(t, days)

	store.failOn = ""
	m, err = p.Publish(ctx, report, audit)
	require.NoError(t, err)
	assert.Len(t, m.Objects, 4)
	days, err = p.History(ctx, report.Zoo)
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-10-26"}, days)
}

func TestHistorySkipsIncompleteDays(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	p := NewPublisher(store, nil)
	_, err := store.Put(ctx, BundlePrefix("Simone's Zoo", "2025-10-25")+StatusFile, strings.NewReader("x"), PutOptions{})
	require.NoError(t, err)
	report, audit := sampleReport(t, archiveDay)
	_, err = p.Publish(ctx, report, audit)
	require.NoError(t, err)

	days, err := p.History(ctx, "Simone's Zoo")
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-10-26"}, days)
}

func TestPublishToS3(t *testing.T) {
	ctx := context.Background()
	store, err := s3.NewFake(ctx, "zoo-archive")
	require.NoError(t, err)
	p := NewPublisher(store, nil)
	report, audit := sampleReport(t, archiveDay)

	m, err := p.Publish(ctx, report, audit)
	require.NoError(t, err)
	require.Len(t, m.Objects, 4)

	fetched, err := p.Fetch(ctx, report.Zoo, "2025-10-26")
	require.NoError(t, err)
	assert.Equal(t, report.Health, fetched.Health)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	root := filepath.Join(t.TempDir(), "archive")
	store, err := Open(ctx, Config{FSRoot: root})
	require.NoError(t, err)
	assert.Equal(t, DriverFilesystem, store.Driver())

	store, err = Open(ctx, Config{Driver: DriverMemory})
	require.NoError(t, err)
	assert.Equal(t, DriverMemory, store.Driver())

	_, err = Open(ctx, Config{Driver: DriverS3})
	require.Error(t, err)

	store, err = Open(ctx, Config{Driver: DriverS3, S3: S3Config{Bucket: "zoo", Region: "eu-west-1", AccessKeyID: "a", SecretAccessKey: "b"}})
	require.NoError(t, err)
	assert.Equal(t, DriverS3, store.Driver())

	_, err = Open(ctx, Config{Driver: "tape"})
	require.ErrorContains(t, err, "unknown archive driver")
}
