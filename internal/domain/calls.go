package domain

import "time"

// CallRow is one processed Horizon Europe call topic from the Funding and
// Tenders portal grants feed, after pillar filtering and ccm2Id deduplication.
type CallRow struct {
	CCM2ID      int64     `db:"ccm2_id" json:"ccm2Id"`
	CallYear    int       `db:"call_year" json:"callYear"`
	ClusterCode string    `db:"cluster_code" json:"clusterCode"`
	ClusterName string    `db:"cluster_name" json:"clusterName"`
	Destination string    `db:"destination" json:"destination"`
	DestCode    string    `db:"dest_code" json:"destCode"`
	PubDate     string    `db:"pub_date" json:"pubDate"`
	OpenDate    string    `db:"open_date" json:"openDate"`
	CloseDate   string    `db:"close_date" json:"closeDate"`
	Stage2Date  string    `db:"stage2_date" json:"s2Date"`
	Status      string    `db:"status" json:"status"`
	Process     string    `db:"process" json:"process"`
	ActionType  string    `db:"action_type" json:"actionType"`
	CallID      string    `db:"call_id" json:"callId"`
	CallTitle   string    `db:"call_title" json:"callTitle"`
	TopicID     string    `db:"topic_id" json:"topicId"`
	TopicTitle  string    `db:"topic_title" json:"topicTitle"`
	TopicLink   Link      `db:"-" json:"topicLink,omitempty"`
	FetchedAt   time.Time `db:"fetched_at" json:"-"`
}

// CalendarEntry is one bar of the per-year call calendar: a call's open/close
// range with its cluster colour. One entry per distinct callId.
type CalendarEntry struct {
	CallID      string    `json:"callId"`
	ClusterCode string    `json:"clusterCode"`
	ClusterName string    `json:"clusterName"`
	Colour      string    `json:"colour"`
	OpenDate    time.Time `json:"openDate"`
	CloseDate   time.Time `json:"closeDate"`
	Stage2Date  time.Time `json:"s2Date,omitempty"`
	HasStage2   bool      `json:"hasStage2"`
}
