package scraper

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	// DefaultBaseURL is the OpenJDK project site.
	DefaultBaseURL = "https://openjdk.org"

	// DefaultTagline is used when the caller supplies none.
	DefaultTagline = "The Future of Java"

	defaultTimeout     = 30 * time.Second
	defaultUserAgent   = "jdkdeck/1.0"
	defaultMaxBodySize = 10 * 1024 * 1024 // 10MB
)

// Scraper fetches JDK release pages and assembles Release records.
type Scraper struct {
	baseURL string
	fetcher *Fetcher
	logger  *slog.Logger
}

// Option configures a Scraper.
type Option func(*options)

type options struct {
	baseURL   string
	timeout   time.Duration
	userAgent string
	logger    *slog.Logger
}

// WithBaseURL overrides the OpenJDK base URL (used in tests).
func WithBaseURL(u string) Option {
	return func(o *options) { o.baseURL = u }
}

// WithTimeout overrides the fetch timeout.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithUserAgent overrides the HTTP User-Agent header.
func WithUserAgent(ua string) Option {
	return func(o *options) { o.userAgent = ua }
}

// WithLogger sets the logger; slog.Default() is used otherwise.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// New creates a Scraper for the OpenJDK project site.
func New(opts ...Option) *Scraper {
	o := options{
		baseURL:   DefaultBaseURL,
		timeout:   defaultTimeout,
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return &Scraper{
		baseURL: strings.TrimRight(o.baseURL, "/"),
		fetcher: NewFetcher(o.timeout, o.userAgent, defaultMaxBodySize),
		logger:  o.logger,
	}
}

// ReleaseInfo fetches the release page for a JDK version and extracts a
// Release record. Transport and parse failures are logged and reported as
// a nil result; they never escape as errors. An assembled release may
// still hold zero JEPs — callers decide whether that warrants falling
// back to sample data (see SampleRelease).
func (s *Scraper) ReleaseInfo(ctx context.Context, version string) *Release {
	url := fmt.Sprintf("%s/projects/jdk/%s/", s.baseURL, version)

	body, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		s.logger.Warn("fetching JDK release page failed", "version", version, "url", url, "error", err)
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		s.logger.Warn("parsing JDK release page failed", "version", version, "url", url, "error", err)
		return nil
	}

	jeps := ExtractJEPs(doc, version)

	date, ok := ExtractReleaseDate(doc)
	if !ok {
		date = version + "-03-01"
		s.logger.Debug("no release date found, using fallback", "version", version, "date", date)
	}

	release := &Release{
		Version:     version,
		ReleaseDate: date,
		Tagline:     DefaultTagline,
	}
	for _, jep := range jeps {
		release.AddJEP(jep)
	}

	s.logger.Info("extracted JDK release info",
		"version", version,
		"release_date", release.ReleaseDate,
		"jeps", len(release.JEPs))

	return release
}
