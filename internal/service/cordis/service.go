// Package cordis loads the raw CORDIS relations: it checks the published
// datasets for updates, downloads and extracts the per-programme dumps,
// parses the organisation and project tables and caches them in the store.
package cordis

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"sync"
	"time"

	"github.com/tangiwai/cordis-summary/internal/domain"
	"github.com/tangiwai/cordis-summary/internal/pkg/config"
	"github.com/tangiwai/cordis-summary/internal/pkg/constants"
	"github.com/tangiwai/cordis-summary/internal/pkg/logger"
	"github.com/tangiwai/cordis-summary/internal/pkg/store"
	"golang.org/x/sync/errgroup"
)

type Service struct {
	store   store.Store
	sources []config.Source
	dataDir string
	client  *http.Client
}

func NewService(st store.Store, sources []config.Source, dataDir string) *Service {
	return &Service{
		store:   st,
		sources: sources,
		dataDir: dataDir,
		client:  &http.Client{Timeout: 5 * time.Minute},
	}
}

// RefreshOpts mirror the original flags: Local skips the remote check
// entirely, Force re-downloads even when nothing is newer, NewOnly makes the
// caller treat an unchanged dataset as a stop condition.
type RefreshOpts struct {
	Local   bool
	Force   bool
	NewOnly bool
}

// Refresh brings the cached relations up to date and reports whether any
// programme actually had new data. The three programmes are fetched
// concurrently; one failing fails the refresh.
func (s *Service) Refresh(ctx context.Context, opts RefreshOpts) (bool, error) {
	if opts.Local {
		logger.Infof(ctx, "skipped checking for new CORDIS data")
		return false, nil
	}

	newData := false
	newDataMx := sync.Mutex{}
	eg, egCtx := errgroup.WithContext(ctx)
	for _, src := range s.sources {
		src := src
		eg.Go(func() error {
			updated, err := s.refreshSource(egCtx, src, opts.Force)
			if err != nil {
				return fmt.Errorf("refresh %s: %w", src.Programme, err)
			}
			if updated {
				newDataMx.Lock()
				newData = true
				newDataMx.Unlock()
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return false, err
	}

	if !newData && opts.NewOnly {
		return false, constants.ErrNotModified
	}

	return newData, nil
}

func (s *Service) refreshSource(ctx context.Context, src config.Source, force bool) (bool, error) {
	remoteDate, err := s.checkFeedDate(ctx, src.FeedURL)
	if err != nil {
		return false, fmt.Errorf("checkFeedDate: %w", err)
	}

	marker, err := s.store.GetMarker(ctx, src.Programme)
	if err != nil && err != constants.ErrDBNotFound {
		return false, fmt.Errorf("store.GetMarker: %w", err)
	}
	if marker != nil {
		logger.Infof(ctx, "%s  CORDIS: %s  LOCAL: %s", src.Programme,
			remoteDate.Format(time.RFC3339), marker.PubDate.Format(time.RFC3339))
	} else {
		logger.Infof(ctx, "%s  CORDIS: %s  LOCAL: none", src.Programme, remoteDate.Format(time.RFC3339))
	}

	if marker != nil && !remoteDate.After(marker.PubDate) && !force {
		return false, nil
	}

	logger.Infof(ctx, "fetching online data for %s", src.Programme)
	dir := filepath.Join(s.dataDir, src.Dir)
	if err := s.downloadAndExtract(ctx, src.DownloadURL, dir); err != nil {
		return false, fmt.Errorf("downloadAndExtract: %w", err)
	}

	participations, projects, err := s.parseDump(ctx, dir, src.Programme)
	if err != nil {
		return false, fmt.Errorf("parseDump: %w", err)
	}

	if err := s.store.ReplaceParticipations(ctx, src.Programme, participations); err != nil {
		return false, fmt.Errorf("store.ReplaceParticipations: %w", err)
	}
	if err := s.store.ReplaceProjects(ctx, src.Programme, projects); err != nil {
		return false, fmt.Errorf("store.ReplaceProjects: %w", err)
	}
	if err := s.store.UpsertMarker(ctx, src.Programme, remoteDate); err != nil {
		return false, fmt.Errorf("store.UpsertMarker: %w", err)
	}

	logger.Infof(ctx, "cached %d participations and %d projects for %s",
		len(participations), len(projects), src.Programme)
	return true, nil
}

// Load returns the cached relations across all programmes.
func (s *Service) Load(ctx context.Context) ([]domain.ParticipationRecord, []domain.ProjectRecord, error) {
	participations, err := s.store.ListParticipations(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("store.ListParticipations: %w", err)
	}
	projects, err := s.store.ListProjects(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("store.ListProjects: %w", err)
	}
	if len(participations) == 0 && len(projects) == 0 {
		return nil, nil, constants.ErrNoCachedData
	}
	return participations, projects, nil
}
