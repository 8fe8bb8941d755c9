package cordis

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
)

type rssFeed struct {
	Items []rssItem `xml:"channel>item"`
}

type rssItem struct {
	PubDate string `xml:"pubDate"`
}

// checkFeedDate reads a dataset's RSS feed and returns the publication date
// of its latest item. This is the freshness oracle: the caller compares it
// against the locally stored marker.
func (s *Service) checkFeedDate(ctx context.Context, feedURL string) (time.Time, error) {
	var body []byte
	err := backoff.Retry(
		func() error {
			req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
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
			backoff.WithMaxRetries(backoff.NewConstantBackOff(500*time.Millisecond), 5),
			ctx,
		),
	)
	if err != nil {
		return time.Time{}, err
	}

	var feed rssFeed
	if err := xml.Unmarshal(body, &feed); err != nil {
		return time.Time{}, fmt.Errorf("xml.Unmarshal: %w", err)
	}
	if len(feed.Items) == 0 {
		return time.Time{}, fmt.Errorf("feed has no items")
	}

	// The feed lists one item per publication; the last one is current.
	last := feed.Items[len(feed.Items)-1]
	pubDate, err := time.Parse(time.RFC1123Z, last.PubDate)
	if err != nil {
		// Some feeds emit the GMT variant.
		pubDate, err = time.Parse(time.RFC1123, last.PubDate)
		if err != nil {
			return time.Time{}, fmt.Errorf("failed to parse pubDate %q: %w", last.PubDate, err)
		}
	}

	return pubDate, nil
}
