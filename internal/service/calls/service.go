// Package calls tracks Horizon Europe calls from the Funding and Tenders
// portal grants feed: fetch, filter to pillar 2, normalize into rows that can
// be sorted and filtered by cluster or date, and derive per-year calendar
// entries.
package calls

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cenkalti/backoff/v4"
	"github.com/tangiwai/cordis-summary/internal/domain"
	"github.com/tangiwai/cordis-summary/internal/pkg/constants"
	"github.com/tangiwai/cordis-summary/internal/pkg/logger"
	"github.com/tangiwai/cordis-summary/internal/pkg/store"
)

type Service struct {
	store          store.Store
	grantsURL      string
	clusterNames   map[string]string
	clusterColours map[string]string
	client         *http.Client
}

func NewService(st store.Store, grantsURL string, clusterNames, clusterColours map[string]string) *Service {
	return &Service{
		store:          st,
		grantsURL:      grantsURL,
		clusterNames:   clusterNames,
		clusterColours: clusterColours,
		client:         &http.Client{Timeout: 5 * time.Minute},
	}
}

// Refresh fetches the grants feed, processes it and swaps the cached calls
// table. Returns the calls that were not present before the refresh; with
// newOnly set and nothing new, the cache is left untouched and ErrNotModified
// comes back.
func (s *Service) Refresh(ctx context.Context, newOnly bool) ([]domain.CallRow, error) {
	raw, err := s.fetchGrants(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetchGrants: %w", err)
	}

	var grants grantsFile
	if err := sonic.Unmarshal(raw, &grants); err != nil {
		return nil, fmt.Errorf("sonic.Unmarshal: %w", err)
	}

	rows := s.Process(grants.FundingData.GrantTenderObj)
	logger.Infof(ctx, "processed %d pillar-2 calls", len(rows))

	previous, err := s.store.ListCalls(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.ListCalls: %w", err)
	}
	newRows := CompareNew(rows, previous)

	if len(previous) > 0 && len(newRows) == 0 {
		logger.Infof(ctx, "no new calls in latest feed")
		if newOnly {
			return nil, constants.ErrNotModified
		}
	}

	if err := s.store.ReplaceCalls(ctx, rows); err != nil {
		return nil, fmt.Errorf("store.ReplaceCalls: %w", err)
	}

	return newRows, nil
}

// List returns the cached calls.
func (s *Service) List(ctx context.Context) ([]domain.CallRow, error) {
	rows, err := s.store.ListCalls(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.ListCalls: %w", err)
	}
	return rows, nil
}

// Calendar returns the calendar entries for one call year from the cache.
func (s *Service) Calendar(ctx context.Context, year int) ([]domain.CalendarEntry, error) {
	rows, err := s.store.ListCalls(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.ListCalls: %w", err)
	}
	return s.BuildCalendar(rows, year), nil
}

func (s *Service) fetchGrants(ctx context.Context) ([]byte, error) {
	var body []byte
	err := backoff.Retry(
		func() error {
			req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, s.grantsURL, nil)
			if reqErr != nil {
				return backoff.Permanent(reqErr)
			}

			resp, httpErr := s.client.Do(req)
			if httpErr != nil {
				return fmt.Errorf("http.Get: %w", httpErr)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("status code error: %d %s", resp.StatusCode, resp.Status)
			}

			var readErr error
			body, readErr = io.ReadAll(resp.Body)
			return readErr
		},
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(time.Second), 5),
			ctx,
		),
	)
	if err != nil {
		return nil, err
	}

	return body, nil
}

// CompareNew returns the rows of current whose ccm2Id is absent from previous.
func CompareNew(current, previous []domain.CallRow) []domain.CallRow {
	known := make(map[int64]struct{}, len(previous))
	for _, r := range previous {
		known[r.CCM2ID] = struct{}{}
	}

	var fresh []domain.CallRow
	for _, r := range current {
		if _, ok := known[r.CCM2ID]; !ok {
			fresh = append(fresh, r)
		}
	}
	return fresh
}
