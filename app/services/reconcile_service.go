package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"assethook/app/jss"
	"assethook/app/repo"
	"assethook/global"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const probeCachePrefix = "assethook:devtype:"

// ProbeCache remembers which JSS record type a serial number resolved to.
// Get returns an error on a miss.
type ProbeCache interface {
	Get(ctx context.Context, serial string) (string, error)
	Set(ctx context.Context, serial, value string, ttl time.Duration) error
}

type redisProbeCache struct{ c *redis.Client }

func NewRedisProbeCache(c *redis.Client) ProbeCache { return redisProbeCache{c: c} }

func (r redisProbeCache) Get(ctx context.Context, serial string) (string, error) {
	return r.c.Get(ctx, probeCachePrefix+serial).Result()
}

func (r redisProbeCache) Set(ctx context.Context, serial, value string, ttl time.Duration) error {
	return r.c.Set(ctx, probeCachePrefix+serial, value, ttl).Err()
}

// ReconcileService pushes asset tags from the local registry to the JSS. One
// Submit call issues at most two probe requests and at most two update
// requests, and writes the registry exactly once, on a confirmed 201.
type ReconcileService struct {
	devices  *repo.DeviceRepository
	settings *SettingsService
	cache    ProbeCache // optional probe-type cache
	cacheTTL time.Duration

	httpTimeout time.Duration
	retryDelay  time.Duration
}

func NewReconcileService(devices *repo.DeviceRepository, settings *SettingsService, cache ProbeCache, cacheTTL, httpTimeout, retryDelay time.Duration) *ReconcileService {
	if retryDelay <= 0 {
		retryDelay = 10 * time.Second
	}
	return &ReconcileService{
		devices:     devices,
		settings:    settings,
		cache:       cache,
		cacheTTL:    cacheTTL,
		httpTimeout: httpTimeout,
		retryDelay:  retryDelay,
	}
}

// Submit reconciles one serial number against the JSS. A non-nil known kind
// is trusted (webhook path) and skips both the cache and the probes. The
// returned error is reserved for storage failures; every JSS-side result is
// an Outcome.
func (s *ReconcileService) Submit(ctx context.Context, serial string, known *jss.DeviceKind) (Outcome, error) {
	if serial == "" {
		return Outcome{}, errors.New("serial number required")
	}
	log := global.Logger.With().Str("serial", serial).Logger()

	values, err := s.settings.Load()
	if err != nil {
		return Outcome{}, fmt.Errorf("load settings: %w", err)
	}
	conn, setName, ok := Resolve(values)
	if !ok {
		log.Warn().Msg("submit refused: settings incomplete")
		return Outcome{Code: OutcomeConfigIncomplete}, nil
	}

	device, err := s.devices.FindBySerial(serial)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Outcome{Code: OutcomeNotFound}, nil
	}
	if err != nil {
		return Outcome{}, fmt.Errorf("find device: %w", err)
	}

	client := jss.NewClient(conn, s.httpTimeout)

	var kind jss.DeviceKind
	switch {
	case known != nil:
		kind = *known
	default:
		resolved, outcome := s.resolveKind(ctx, client, serial)
		if outcome != nil {
			return *outcome, nil
		}
		kind = resolved
	}

	name := ""
	if setName && device.DeviceName != "" {
		name = device.DeviceName
	}
	payload, err := jss.BuildPayload(kind, name, device.AssetTag)
	if err != nil {
		return Outcome{}, fmt.Errorf("build payload: %w", err)
	}

	status, err := client.Update(ctx, kind, serial, payload)
	if err != nil {
		log.Error().Err(err).Msg("error submitting to JSS")
		return Outcome{Code: OutcomeConnectionError, Kind: kind, Cause: err}, nil
	}
	if status == http.StatusConflict {
		// The JSS rejects name-less updates issued mid-provisioning with a
		// 409; after a short settle delay the same request goes through.
		// One retry, never more.
		log.Info().Dur("delay", s.retryDelay).Msg("409 from JSS, retrying once after delay")
		select {
		case <-time.After(s.retryDelay):
		case <-ctx.Done():
			return Outcome{Code: OutcomeConnectionError, Kind: kind, Cause: ctx.Err()}, nil
		}
		status, err = client.Update(ctx, kind, serial, payload)
		if err != nil {
			log.Error().Err(err).Msg("error submitting to JSS on retry")
			return Outcome{Code: OutcomeConnectionError, Kind: kind, Cause: err}, nil
		}
	}

	if status != http.StatusCreated {
		log.Warn().Int("status", status).Msg("JSS rejected update")
		return Outcome{Code: OutcomeRejected, Kind: kind, Status: status}, nil
	}

	if err := s.devices.MarkSubmitted(serial, time.Now()); err != nil {
		return Outcome{}, fmt.Errorf("record submission: %w", err)
	}
	log.Info().Str("kind", kind.String()).Msg("asset tag submitted")
	return Outcome{Code: OutcomeUpdated, Kind: kind}, nil
}

// resolveKind determines the device type by cache lookup, then by trying the
// JSS probe endpoints in order. A non-nil outcome short-circuits Submit.
func (s *ReconcileService) resolveKind(ctx context.Context, client *jss.Client, serial string) (jss.DeviceKind, *Outcome) {
	if s.cache != nil {
		if v, err := s.cache.Get(ctx, serial); err == nil {
			if kind, ok := jss.ParseKind(v); ok {
				return kind, nil
			}
		}
	}
	for _, kind := range jss.ProbeOrder {
		found, err := client.Probe(ctx, kind, serial)
		if err != nil {
			global.Logger.Error().Err(err).Str("serial", serial).Msg("type probe failed")
			return "", &Outcome{Code: OutcomeConnectionError, Cause: err}
		}
		if found {
			if s.cache != nil {
				if err := s.cache.Set(ctx, serial, kind.String(), s.cacheTTL); err != nil {
					global.Logger.Debug().Err(err).Msg("probe cache write failed")
				}
			}
			return kind, nil
		}
	}
	global.Logger.Warn().Str("serial", serial).Msg("could not determine device type")
	return "", &Outcome{Code: OutcomeTypeUndetermined}
}

// SubmitAll walks the registry newest first and submits every device with no
// known type. Individual outcomes never stop the loop; they are tallied into
// the returned summary.
func (s *ReconcileService) SubmitAll(ctx context.Context) (string, error) {
	devices, err := s.devices.ListAll()
	if err != nil {
		return "", fmt.Errorf("list devices: %w", err)
	}

	counts := make(map[OutcomeCode]int)
	failures := 0
	for _, d := range devices {
		outcome, err := s.Submit(ctx, d.SerialNumber, nil)
		if err != nil {
			global.Logger.Error().Err(err).Str("serial", d.SerialNumber).Msg("bulk submit error")
			failures++
			continue
		}
		counts[outcome.Code]++
	}

	summary := fmt.Sprintf("submitted %d devices: %d updated", len(devices), counts[OutcomeUpdated])
	if n := counts[OutcomeNotFound]; n > 0 {
		summary += fmt.Sprintf(", %d not found", n)
	}
	if n := counts[OutcomeTypeUndetermined]; n > 0 {
		summary += fmt.Sprintf(", %d type undetermined", n)
	}
	if n := counts[OutcomeRejected]; n > 0 {
		summary += fmt.Sprintf(", %d rejected", n)
	}
	if n := counts[OutcomeConnectionError]; n > 0 {
		summary += fmt.Sprintf(", %d connection errors", n)
	}
	if n := counts[OutcomeConfigIncomplete]; n > 0 {
		summary += fmt.Sprintf(", %d skipped on incomplete settings", n)
	}
	if failures > 0 {
		summary += fmt.Sprintf(", %d storage errors", failures)
	}
	return summary, nil
}
