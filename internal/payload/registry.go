package payload

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/time/rate"

	"github.com/GriffinCanCode/InspectOS/internal/infrastructure/config"
	"github.com/GriffinCanCode/InspectOS/internal/infrastructure/logging"
	"github.com/GriffinCanCode/InspectOS/internal/infrastructure/resilience"
)

// Digest and version headers advertised by the registry.
const (
	headerDigest  = "X-Payload-Digest"
	headerVersion = "X-Payload-Version"
)

// Registry fetches payload bundles from a remote registry over HTTP, with
// rate limiting, retries, and a circuit breaker.
type Registry struct {
	client  *resty.Client
	limiter *rate.Limiter
	breaker *resilience.Breaker
	baseURL string
	logger  *logging.Logger
}

// FetchResult carries one fetched bundle stream and its metadata
type FetchResult struct {
	Body    io.ReadCloser
	Version string
	Format  string
	Digest  string
}

// NewRegistry creates a registry client from payload configuration.
// When cert, key, and CA paths are all set the client speaks HTTP/2 with mTLS.
func NewRegistry(cfg config.PayloadConfig, logger *logging.Logger) (*Registry, error) {
	if cfg.RegistryURL == "" {
		return nil, fmt.Errorf("registry URL not configured")
	}

	// Create underlying retryable client
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 3
	retryClient.RetryWaitMin = 1 * time.Second
	retryClient.RetryWaitMax = 30 * time.Second
	retryClient.Logger = nil // Disable logging

	restyClient := resty.New()
	restyClient.
		SetTimeout(60 * time.Second).
		SetHeader("User-Agent", "InspectOS-Registry/1.0")

	if cfg.RegistryCert != "" && cfg.RegistryKey != "" && cfg.RegistryCA != "" {
		transport, err := buildMTLSTransport(cfg.RegistryCert, cfg.RegistryKey, cfg.RegistryCA)
		if err != nil {
			return nil, err
		}
		retryClient.HTTPClient.Transport = transport
	}
	// Retries live in the retryable client's Do, not its transport, so resty
	// has to go through the RoundTripper wrapper for them to run.
	restyClient.SetTransport(&retryablehttp.RoundTripper{Client: retryClient})

	if cfg.RegistryToken != "" {
		restyClient.SetAuthToken(cfg.RegistryToken)
	}

	// Create circuit breaker for registry calls
	breaker := resilience.New("payload-registry", resilience.Settings{
		MaxRequests: 5,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts resilience.Counts) bool {
			// Be lenient - registries vary in reliability
			return counts.ConsecutiveFailures >= 10 ||
				(counts.Requests >= 20 && float64(counts.TotalFailures)/float64(counts.Requests) > 0.7)
		},
	})

	return &Registry{
		client:  restyClient,
		limiter: rate.NewLimiter(rate.Limit(5), 10),
		breaker: breaker,
		baseURL: cfg.RegistryURL,
		logger:  logger,
	}, nil
}

// Fetch downloads one bundle. An empty version asks the registry for latest.
// The caller owns the returned body.
func (r *Registry) Fetch(ctx context.Context, name, version string) (*FetchResult, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit error: %w", err)
	}

	if version == "" {
		version = "latest"
	}
	url := fmt.Sprintf("%s/bundles/%s/%s", r.baseURL, name, version)

	result, err := r.breaker.Execute(func() (interface{}, error) {
		return r.client.R().
			SetContext(ctx).
			SetDoNotParseResponse(true).
			Get(url)
	})

	if err == resilience.ErrCircuitOpen {
		return nil, fmt.Errorf("payload registry unavailable: circuit breaker open")
	}
	if err != nil {
		return nil, fmt.Errorf("registry fetch failed: %w", err)
	}

	resp := result.(*resty.Response)
	body := resp.RawBody()

	if resp.StatusCode() != http.StatusOK {
		body.Close()
		return nil, fmt.Errorf("registry returned %d for %s@%s", resp.StatusCode(), name, version)
	}

	actualVersion := resp.Header().Get(headerVersion)
	if actualVersion == "" {
		actualVersion = version
	}

	format := FormatRaw
	switch resp.Header().Get("Content-Type") {
	case "application/gzip", "application/x-gzip":
		format = FormatGzip
	case "application/zstd":
		format = FormatZstd
	}

	r.logger.Info("fetching payload bundle",
		zap.String("name", name),
		zap.String("version", actualVersion),
		zap.String("format", format),
	)

	return &FetchResult{
		Body:    body,
		Version: actualVersion,
		Format:  format,
		Digest:  resp.Header().Get(headerDigest),
	}, nil
}

// BreakerState exposes the circuit breaker state for health reporting
func (r *Registry) BreakerState() resilience.State {
	return r.breaker.State()
}

// buildMTLSTransport creates an HTTP/2 transport with TLS 1.3 mutual auth
func buildMTLSTransport(certPath, keyPath, caPath string) (*http2.Transport, error) {
	clientCert, err := tls.LoadX509KeyPair(certPath, keyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load client certificate: %w", err)
	}

	caCert, err := os.ReadFile(caPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read CA certificate: %w", err)
	}

	caCertPool := x509.NewCertPool()
	if !caCertPool.AppendCertsFromPEM(caCert) {
		return nil, fmt.Errorf("failed to parse CA certificate")
	}

	tlsConfig := &tls.Config{
		Certificates: []tls.Certificate{clientCert},
		RootCAs:      caCertPool,
		MinVersion:   tls.VersionTLS13,
		MaxVersion:   tls.VersionTLS13,
	}

	return &http2.Transport{
		TLSClientConfig: tlsConfig,
	}, nil
}
